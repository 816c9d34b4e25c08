// Package order provides domain entities and business logic for sales
// management. It implements the Order aggregate root with lifecycle
// management and guarded state transitions.
//
// The package includes:
//   - Order: the aggregate root owning line items, totals and the lifecycle
//   - Status: a state machine enforcing the sales funnel workflow
//   - LineItem: an immutable product/quantity/price entry within an order
//
// Key business rules:
//   - Orders are created in MessageReceived status with a non-empty item set
//   - The total always equals the sum of line item subtotals
//   - Status moves forward only: MessageReceived -> Quoting ->
//     AwaitingPayment -> OrderPending -> Completed; backward moves are rejected
//   - A payment session is attached at most once per order
//   - Completed is a retained terminal record, never a deletion
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
