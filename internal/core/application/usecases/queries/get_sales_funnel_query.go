package queries

import (
	"errors"
	"time"

	"autoparts/internal/core/domain/model/kernel"
	"autoparts/internal/core/domain/model/order"
	"autoparts/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetSalesFunnelQueryIsNotConstructed = errors.New(
		"GetSalesFunnelQuery must be created via NewGetSalesFunnelQuery constructor",
	)
	ErrDateRangeIsInvalid = errors.New("date range start must not be after its end")
)

// SalesFunnelFilter narrows the funnel listing. Every field is optional;
// nil means the dimension is not filtered. Date bounds are inclusive.
type SalesFunnelFilter struct {
	Status     *order.Status
	CustomerID *kernel.UUID
	From       *time.Time
	To         *time.Time
}

// GetSalesFunnelQuery retrieves orders across the sales funnel for the
// back office, optionally narrowed by status, customer or creation window.
//
// Example:
//
//	status := order.Quoting
//	query, err := NewGetSalesFunnelQuery(SalesFunnelFilter{Status: &status})
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetSalesFunnelQueryHandler(db)
//	rows, err := handler.Handle(ctx, query)
type GetSalesFunnelQuery struct { //nolint:recvcheck //using for validation
	filter SalesFunnelFilter

	guard guard.ConstructorGuard
}

// NewGetSalesFunnelQuery creates a query to list funnel orders.
// Validates any filter dimensions that are set.
func NewGetSalesFunnelQuery(filter SalesFunnelFilter) (GetSalesFunnelQuery, error) {
	funnelQuery := GetSalesFunnelQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := funnelQuery.setFilter(filter); err != nil {
		return GetSalesFunnelQuery{}, err
	}

	return funnelQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetSalesFunnelQueryIsNotConstructed if validation fails.
func (q GetSalesFunnelQuery) Validate() error {
	return q.guard.Validate(ErrGetSalesFunnelQueryIsNotConstructed)
}

// Filter returns the funnel filter.
func (q GetSalesFunnelQuery) Filter() SalesFunnelFilter {
	return q.filter
}

func (q *GetSalesFunnelQuery) setFilter(filter SalesFunnelFilter) error {
	if filter.Status != nil {
		if err := filter.Status.Validate(); err != nil {
			return err
		}
	}

	if filter.CustomerID != nil {
		if err := filter.CustomerID.Validate(); err != nil {
			return err
		}
	}

	if filter.From != nil && filter.To != nil && filter.From.After(*filter.To) {
		return ErrDateRangeIsInvalid
	}

	q.filter = filter
	return nil
}

// GetSalesFunnelQueryResponse is one funnel row: the order joined with the
// customer it belongs to.
type GetSalesFunnelQueryResponse struct {
	ID           kernel.UUID
	SaleNumber   string
	CustomerID   kernel.UUID
	CustomerName string
	Status       string
	Total        decimal.Decimal
	PaymentRef   string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
