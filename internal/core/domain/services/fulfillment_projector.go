package services

import (
	"sort"

	"autoparts/internal/core/domain/model/order"
)

// FulfillmentProjector is a domain service that derives the warehouse view
// from a snapshot of orders: which orders are waiting to be picked, how many
// pieces that adds up to, and how many of them can already be shipped.
//
// All methods are pure functions over the given snapshot. They never modify
// the orders, take no locks and are safe to call repeatedly on the same
// input: the same snapshot always produces the same projection.
type FulfillmentProjector struct{}

// NewFulfillmentProjector creates a new FulfillmentProjector instance.
func NewFulfillmentProjector() FulfillmentProjector {
	return FulfillmentProjector{}
}

// PendingPickList filters the snapshot to fulfillment-visible orders
// (OrderPending) and returns them oldest first by creation time, so the
// warehouse works first-in-first-out. The input slice is left untouched.
func (p FulfillmentProjector) PendingPickList(orders []*order.Order) []*order.Order {
	pending := make([]*order.Order, 0, len(orders))
	for _, o := range orders {
		if o == nil {
			continue
		}
		if o.Status().IsFulfillmentVisible() {
			pending = append(pending, o)
		}
	}

	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].CreatedAt().Before(pending[j].CreatedAt())
	})

	return pending
}

// AggregatePieceCount returns the total number of pieces across all line
// items of the pending pick list derived from the snapshot.
func (p FulfillmentProjector) AggregatePieceCount(orders []*order.Order) int {
	count := 0
	for _, o := range p.PendingPickList(orders) {
		count += o.PieceCount()
	}
	return count
}

// ShippableCount returns how many pick-list orders already have a shipping
// address and can go out as soon as they are picked.
func (p FulfillmentProjector) ShippableCount(orders []*order.Order) int {
	count := 0
	for _, o := range p.PendingPickList(orders) {
		if o.HasShippingAddress() {
			count++
		}
	}
	return count
}
