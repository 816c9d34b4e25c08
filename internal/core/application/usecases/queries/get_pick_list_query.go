// Package queries contains read-only operations for retrieving system state.
// Implements the Query side of the CQRS architecture: handlers read either
// straight SQL projections or domain aggregates, never modifying anything.
package queries

import (
	"errors"
	"time"

	"autoparts/internal/core/domain/model/kernel"
	"autoparts/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetPickListQueryIsNotConstructed = errors.New(
	"GetPickListQuery must be created via NewGetPickListQuery constructor",
)

// GetPickListQuery retrieves the warehouse pick list: every paid order
// waiting to be picked, oldest first.
//
// Example:
//
//	query := NewGetPickListQuery()
//	handler := NewGetPickListQueryHandler(orderRepo, services.NewFulfillmentProjector())
//
//	pickList, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get pick list: %w", err)
//	}
//	fmt.Printf("%d orders, %d pieces to pick\n", len(pickList.Orders), pickList.TotalPieces)
type GetPickListQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPickListQuery creates a query to retrieve the pick list.
// This is a parameterless query.
func NewGetPickListQuery() GetPickListQuery {
	return GetPickListQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetPickListQueryIsNotConstructed if validation fails.
func (q GetPickListQuery) Validate() error {
	return q.guard.Validate(ErrGetPickListQueryIsNotConstructed)
}

// GetPickListQueryResponse is the pick list projection: the orders to pick
// in FIFO sequence plus warehouse-level totals.
type GetPickListQueryResponse struct {
	Orders          []PickListOrder
	TotalPieces     int
	ShippableOrders int
}

// PickListOrder is one pick list row.
type PickListOrder struct {
	ID              kernel.UUID
	SaleNumber      string
	CustomerID      kernel.UUID
	Pieces          int
	Total           decimal.Decimal
	ShippingAddress string
	PaidAt          *time.Time
	CreatedAt       time.Time
}
