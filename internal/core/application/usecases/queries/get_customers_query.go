package queries

import (
	"errors"
	"time"

	"autoparts/internal/core/domain/model/kernel"
	"autoparts/internal/pkg/guard"
)

var ErrGetCustomersQueryIsNotConstructed = errors.New(
	"GetCustomersQuery must be created via NewGetCustomersQuery constructor",
)

// GetCustomersQuery retrieves all registered customers, newest first.
type GetCustomersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetCustomersQuery creates a query to list customers.
// This is a parameterless query.
func NewGetCustomersQuery() GetCustomersQuery {
	return GetCustomersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCustomersQueryIsNotConstructed if validation fails.
func (q GetCustomersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomersQueryIsNotConstructed)
}

// GetCustomersQueryResponse is one customer row together with their
// order activity.
type GetCustomersQueryResponse struct {
	ID         kernel.UUID
	Phone      string
	Name       string
	Email      string
	Status     string
	OrderCount int
	CreatedAt  time.Time
}
