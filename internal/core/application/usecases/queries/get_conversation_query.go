package queries

import (
	"errors"
	"time"

	"autoparts/internal/core/domain/model/kernel"
	"autoparts/internal/pkg/guard"
)

const defaultConversationLimit = 50

var ErrGetConversationQueryIsNotConstructed = errors.New(
	"GetConversationQuery must be created via NewGetConversationQuery constructor",
)

// GetConversationQuery retrieves one customer's message history, oldest
// first, so the thread reads top to bottom.
type GetConversationQuery struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	limit      int

	guard guard.ConstructorGuard
}

// NewGetConversationQuery creates a query for a customer's conversation.
// A non-positive limit falls back to the default page size.
func NewGetConversationQuery(customerID kernel.UUID, limit int) (GetConversationQuery, error) {
	conversationQuery := GetConversationQuery{
		limit: limit,
		guard: guard.NewConstructorGuard(),
	}

	if conversationQuery.limit <= 0 {
		conversationQuery.limit = defaultConversationLimit
	}

	if err := conversationQuery.setCustomerID(customerID); err != nil {
		return GetConversationQuery{}, err
	}

	return conversationQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetConversationQueryIsNotConstructed if validation fails.
func (q GetConversationQuery) Validate() error {
	return q.guard.Validate(ErrGetConversationQueryIsNotConstructed)
}

// CustomerID returns the identifier of the conversation's customer.
func (q GetConversationQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// Limit returns the maximum number of messages to return.
func (q GetConversationQuery) Limit() int {
	return q.limit
}

func (q *GetConversationQuery) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	q.customerID = customerID
	return nil
}

// GetConversationQueryResponse is one message of the conversation thread.
type GetConversationQueryResponse struct {
	ID                kernel.UUID
	Direction         string
	Text              string
	ProviderMessageID string
	MediaURL          string
	CreatedAt         time.Time
}
