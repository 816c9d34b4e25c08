package order

import (
	"errors"
	"fmt"
	"time"

	"autoparts/internal/core/domain/model/kernel"
	"autoparts/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory methods. This ensures all
// orders are properly validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order represents one sale moving through the lifecycle, from the first
// customer message to a fulfilled shipment. It is the aggregate root that
// owns its line items and guards every state change.
//
// Order invariants:
//   - Must have a valid unique identifier, sale number and customer reference
//   - Must have at least one line item; items are immutable after creation
//   - Total always equals the sum of line item subtotals
//   - Status transitions only move forward along the canonical order
//   - Payment reference is append-only: once attached it is never replaced
//   - updatedAt is stamped on every state mutation
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods.
type Order struct {
	id         kernel.UUID
	saleNumber kernel.SaleNumber
	customerID kernel.UUID

	lineItems []LineItem
	total     decimal.Decimal

	// shippingAddress is free text; presence gates fulfillment projections
	shippingAddress string

	// paymentRef is the external payment session identifier, set at most once
	paymentRef string

	status Status

	createdAt          time.Time
	updatedAt          time.Time
	paymentConfirmedAt *time.Time

	isConstructed bool
}

// NewOrder creates a new Order in MessageReceived status with validation.
// The sale number must come from the store's atomic sequence so concurrent
// creations receive distinct numbers. The total is computed from the line
// item subtotals. Fails before any persistence when the line item set is
// empty or any input is invalid.
func NewOrder(
	id kernel.UUID,
	saleNumber kernel.SaleNumber,
	customerID kernel.UUID,
	lineItems []LineItem,
	shippingAddress string,
) (*Order, error) {
	now := time.Now().UTC()
	order := &Order{
		status:          MessageReceived,
		shippingAddress: shippingAddress,
		createdAt:       now,
		updatedAt:       now,
		isConstructed:   true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setSaleNumber(saleNumber),
		order.setCustomerID(customerID),
		order.setLineItems(lineItems),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an order from persistence without re-running the
// creation rules that only apply to new sales. The stored status and payment
// data are still validated so corrupted rows cannot produce an unusable
// aggregate.
func RestoreOrder(
	id kernel.UUID,
	saleNumber kernel.SaleNumber,
	customerID kernel.UUID,
	lineItems []LineItem,
	shippingAddress string,
	paymentRef string,
	status Status,
	createdAt time.Time,
	updatedAt time.Time,
	paymentConfirmedAt *time.Time,
) (*Order, error) {
	order := &Order{
		shippingAddress:    shippingAddress,
		paymentRef:         paymentRef,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
		paymentConfirmedAt: paymentConfirmedAt,
		isConstructed:      true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setSaleNumber(saleNumber),
		order.setCustomerID(customerID),
		order.setLineItems(lineItems),
		order.setStatus(status),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. This prevents bypassing validation by directly
// instantiating the struct and should be called when reconstructing orders
// from persistence.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// SaleNumber returns the human-readable sale code, e.g. "VTA-000042".
func (o *Order) SaleNumber() kernel.SaleNumber {
	return o.saleNumber
}

// CustomerID returns the identifier of the customer this sale belongs to.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// LineItems returns a copy of the order's line items.
// The copy keeps the aggregate's internal slice immutable from the outside.
func (o *Order) LineItems() []LineItem {
	items := make([]LineItem, len(o.lineItems))
	copy(items, o.lineItems)
	return items
}

// Total returns the order total, always equal to the sum of line item subtotals.
func (o *Order) Total() decimal.Decimal {
	return o.total
}

// ShippingAddress returns the free-text delivery address, empty when the
// customer has not provided one yet.
func (o *Order) ShippingAddress() string {
	return o.shippingAddress
}

// HasShippingAddress reports whether a delivery address has been captured.
// Orders without one are excluded from the shippable count of the pick list.
func (o *Order) HasShippingAddress() bool {
	return o.shippingAddress != ""
}

// PaymentRef returns the external payment session identifier.
// Empty until a payment link is generated for the sale.
func (o *Order) PaymentRef() string {
	return o.paymentRef
}

// Status returns the current lifecycle status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the timestamp of the last state mutation.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// PaymentConfirmedAt returns the payment confirmation timestamp.
// Returns nil while payment has not been confirmed.
func (o *Order) PaymentConfirmedAt() *time.Time {
	return o.paymentConfirmedAt
}

// PieceCount returns the total number of pieces across all line items.
func (o *Order) PieceCount() int {
	count := 0
	for _, item := range o.lineItems {
		count += item.Quantity()
	}
	return count
}

// TransitionTo moves the order to the target lifecycle status.
//
// Only forward moves along the canonical order are allowed; a same-state
// call is a successful no-op that does not stamp updatedAt, since nothing
// mutated. On a disallowed move the order is left unmodified and an
// InvalidTransitionError is returned.
func (o *Order) TransitionTo(target Status) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	if newStatus == o.status {
		return nil
	}

	o.status = newStatus
	o.touch()
	return nil
}

// AttachPayment records the external payment session on the order.
//
// A payment session must not be overwritten once issued: when paymentRef is
// already set the call fails with a PreconditionFailedError and the order is
// left unmodified. When the order is currently Quoting it is advanced to
// AwaitingPayment, matching the funnel's "link sent" step.
func (o *Order) AttachPayment(paymentRef string) error {
	if paymentRef == "" {
		return errs.NewValueIsRequiredError("paymentRef")
	}

	if o.paymentRef != "" {
		return errs.NewPreconditionFailedErrorWithCause("paymentRef",
			fmt.Errorf("payment session %s is already attached", o.paymentRef))
	}

	o.paymentRef = paymentRef
	if o.status == Quoting {
		o.status = AwaitingPayment
	}

	o.touch()
	return nil
}

// ConfirmPayment moves the order from AwaitingPayment to OrderPending and
// stamps the payment confirmation time. Fails with an InvalidTransitionError
// when the order is not awaiting payment.
func (o *Order) ConfirmPayment() error {
	if o.status != AwaitingPayment {
		return errs.NewInvalidTransitionErrorWithCause(o.status.String(), OrderPending.String(),
			fmt.Errorf("payment can only be confirmed while awaiting payment"))
	}

	now := time.Now().UTC()
	o.status = OrderPending
	o.paymentConfirmedAt = &now
	o.touch()
	return nil
}

// MarkFulfilled moves the order from OrderPending to Completed, the terminal
// state. The record is retained, never removed. Fails with an
// InvalidTransitionError when the order is not pending fulfillment.
func (o *Order) MarkFulfilled() error {
	if o.status != OrderPending {
		return errs.NewInvalidTransitionErrorWithCause(o.status.String(), Completed.String(),
			fmt.Errorf("only pending orders can be fulfilled"))
	}

	o.status = Completed
	o.touch()
	return nil
}

func (o *Order) touch() {
	o.updatedAt = time.Now().UTC()
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setSaleNumber(saleNumber kernel.SaleNumber) error {
	if err := saleNumber.Validate(); err != nil {
		return err
	}
	o.saleNumber = saleNumber
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setLineItems(lineItems []LineItem) error {
	if len(lineItems) == 0 {
		return errs.NewValueIsRequiredError("line items")
	}

	total := decimal.Zero
	items := make([]LineItem, len(lineItems))
	for i, item := range lineItems {
		if err := item.Validate(); err != nil {
			return err
		}
		items[i] = item
		total = total.Add(item.Subtotal())
	}

	o.lineItems = items
	o.total = total
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
