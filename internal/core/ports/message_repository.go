package ports

import (
	"context"

	"autoparts/internal/core/domain/model/kernel"
	"autoparts/internal/core/domain/model/message"
)

// MessageRepository defines the persistence contract for the conversation
// log. Messages are append-only; there is no update or delete.
type MessageRepository interface {
	// Add appends a message to the conversation log.
	Add(ctx context.Context, aggregate *message.Message) error

	// GetConversation retrieves up to limit messages of one customer,
	// oldest first, so the history reads top to bottom.
	GetConversation(ctx context.Context, customerID kernel.UUID, limit int) ([]*message.Message, error)
}
