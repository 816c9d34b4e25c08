package ports

import (
	"context"

	"autoparts/internal/core/domain/model/customer"
	"autoparts/internal/core/domain/model/kernel"
)

// OutgoingMessage is a message to deliver to a customer through the
// messaging provider. MediaURL is optional.
type OutgoingMessage struct {
	Phone    kernel.Phone
	Text     string
	MediaURL string
}

// Messenger defines the contract with the messaging provider.
// Send returns the provider-assigned message identifier.
type Messenger interface {
	Send(ctx context.Context, msg OutgoingMessage) (string, error)
}

// ReplyContext is what the reply generator knows when answering an inbound
// message: who wrote, what they wrote, and how many purchases they have made.
type ReplyContext struct {
	Customer      *customer.Customer
	Text          string
	PurchaseCount int
}

// Reply is a generated answer to an inbound message. MediaURL is optional.
type Reply struct {
	Text     string
	MediaURL string
}

// ReplyGenerator produces an answer for an inbound customer message.
// The shipped implementation is a fixed keyword rule set; a model-backed
// provider can be swapped in behind the same interface. Reply generation is
// deliberately outside the order lifecycle core.
type ReplyGenerator interface {
	GenerateReply(ctx context.Context, replyCtx ReplyContext) (Reply, error)
}
