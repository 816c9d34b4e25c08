package queries

import (
	"context"
	"time"

	"autoparts/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetConversationQueryHandler reads one customer's message thread from the
// database.
type GetConversationQueryHandler struct {
	db *gorm.DB
}

// NewGetConversationQueryHandler creates a handler for conversation queries.
// Requires a GORM database connection for query execution.
func NewGetConversationQueryHandler(db *gorm.DB) GetConversationQueryHandler {
	return GetConversationQueryHandler{db: db}
}

// Handle executes the query and returns up to the query's limit of the
// customer's most recent messages, ordered oldest first.
func (h GetConversationQueryHandler) Handle(
	ctx context.Context,
	query GetConversationQuery,
) ([]GetConversationQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	// Inner query picks the newest messages, outer flips them back into
	// reading order.
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, direction, text, provider_message_id, media_url, created_at
		FROM (
			SELECT id, direction, text, provider_message_id, media_url, created_at
			FROM messages
			WHERE customer_id = ?
			ORDER BY created_at DESC
			LIMIT ?
		) AS recent
		ORDER BY created_at
	`, query.CustomerID().String(), query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	responses := make([]GetConversationQueryResponse, 0)

	for rows.Next() {
		var (
			id                uuid.UUID
			direction         string
			text              string
			providerMessageID string
			mediaURL          string
			createdAt         time.Time
		)

		if err = rows.Scan(&id, &direction, &text, &providerMessageID, &mediaURL, &createdAt); err != nil {
			return nil, err
		}

		messageID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		responses = append(responses, GetConversationQueryResponse{
			ID:                messageID,
			Direction:         direction,
			Text:              text,
			ProviderMessageID: providerMessageID,
			MediaURL:          mediaURL,
			CreatedAt:         createdAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return responses, nil
}
