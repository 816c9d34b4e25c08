package ports

import (
	"context"

	"autoparts/internal/core/domain/model/customer"
	"autoparts/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customers.
// The phone number is the natural key: Upsert resolves conflicts on it.
type CustomerRepository interface {
	// Upsert inserts the customer or, when one with the same phone already
	// exists, updates that record and leaves its identifier intact.
	Upsert(ctx context.Context, aggregate *customer.Customer) (*customer.Customer, error)

	// Update persists changes to an existing customer.
	Update(ctx context.Context, aggregate *customer.Customer) error

	// Get retrieves a customer by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)

	// GetByPhone retrieves a customer by phone number.
	// Returns ObjectNotFoundError when no customer has that phone.
	GetByPhone(ctx context.Context, phone kernel.Phone) (*customer.Customer, error)

	// GetAll retrieves all customers, newest first.
	GetAll(ctx context.Context) ([]*customer.Customer, error)
}
