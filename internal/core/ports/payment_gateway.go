package ports

import (
	"context"

	"autoparts/internal/core/domain/model/order"
)

// PaymentSession is a checkout session issued by the payment provider.
// SessionID becomes the order's payment reference; URL is sent to the
// customer to complete the payment.
type PaymentSession struct {
	URL       string
	SessionID string
}

// PaymentStatus is the provider's answer when a session is polled.
// PaymentRef carries the provider's payment identifier once Paid is true.
type PaymentStatus struct {
	Paid       bool
	PaymentRef string
}

// PaymentGateway defines the contract with the external payment provider.
// The shipped implementation is simulated; a real provider adapter plugs in
// behind the same interface.
type PaymentGateway interface {
	// CreateSession creates a checkout session for the order's total.
	CreateSession(ctx context.Context, aggregate *order.Order) (PaymentSession, error)

	// CheckStatus reports whether the session has been paid.
	CheckStatus(ctx context.Context, sessionID string) (PaymentStatus, error)
}
