package order

import (
	"errors"
	"fmt"

	"autoparts/internal/pkg/errs"
	"autoparts/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrLineItemIsNotConstructed is returned when a LineItem instance was not
// created through the NewLineItem factory method.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// LineItem is a value object representing one product entry within an order:
// a part SKU, a quantity and the unit price at the time of sale.
//
// LineItem invariants:
//   - SKU must be non-empty
//   - Quantity must be positive
//   - Unit price must be non-negative and is a snapshot, not the live price
//   - Subtotal equals quantity * unitPrice, computed once at construction
//
// Line items are owned exclusively by one order and have no lifecycle of
// their own; all fields are immutable after construction.
type LineItem struct { //nolint:recvcheck //using for validation
	sku       string
	quantity  int
	unitPrice decimal.Decimal
	subtotal  decimal.Decimal

	guard guard.ConstructorGuard
}

// NewLineItem creates a validated LineItem and computes its subtotal.
func NewLineItem(sku string, quantity int, unitPrice decimal.Decimal) (LineItem, error) {
	item := LineItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setSKU(sku),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return LineItem{}, err
	}

	item.subtotal = item.unitPrice.Mul(decimal.NewFromInt(int64(item.quantity)))
	return item, nil
}

// Validate ensures the LineItem was created through the constructor.
func (i LineItem) Validate() error {
	return i.guard.Validate(ErrLineItemIsNotConstructed)
}

// SKU returns the product SKU this item refers to.
func (i LineItem) SKU() string {
	return i.sku
}

// Quantity returns the number of pieces ordered.
func (i LineItem) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price per piece at the time of sale.
func (i LineItem) UnitPrice() decimal.Decimal {
	return i.unitPrice
}

// Subtotal returns quantity * unitPrice.
func (i LineItem) Subtotal() decimal.Decimal {
	return i.subtotal
}

func (i *LineItem) setSKU(sku string) error {
	if sku == "" {
		return errs.NewValueIsRequiredError("sku")
	}
	i.sku = sku
	return nil
}

func (i *LineItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *LineItem) setUnitPrice(unitPrice decimal.Decimal) error {
	if unitPrice.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("unit price",
			fmt.Errorf("%s is negative", unitPrice))
	}
	i.unitPrice = unitPrice
	return nil
}
