package ports

import (
	"context"
	"time"

	"autoparts/internal/core/domain/model/kernel"
	"autoparts/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Failures at this boundary are I/O errors, never business-rule violations:
// implementations wrap transport problems in StoreUnavailableError (retryable
// by the caller) and keep lookup misses as ObjectNotFoundError.
type OrderRepository interface {
	// NextSaleNumber allocates the next sale number from the store's atomic
	// counter. The counter is monotonic and gap-tolerant: two concurrent
	// creations always receive distinct numbers, numbers of rolled-back
	// creations are simply skipped.
	NextSaleNumber(ctx context.Context) (kernel.SaleNumber, error)

	// Add persists a new order aggregate together with its line items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// Line items are immutable after creation and are not rewritten.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByPaymentSession retrieves the order a payment session was issued
	// for. Used by the payment webhook and the polling job.
	GetByPaymentSession(ctx context.Context, sessionID string) (*order.Order, error)

	// GetAllInStatus retrieves all orders currently in the given status,
	// ordered by creation time ascending.
	GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error)

	// GetByCustomer retrieves all orders of one customer, newest first.
	GetByCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error)

	// GetByCreatedRange retrieves orders created within [from, to], bounds
	// inclusive, ordered by creation time ascending.
	GetByCreatedRange(ctx context.Context, from, to time.Time) ([]*order.Order, error)
}
