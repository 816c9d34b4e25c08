package kernel

import (
	"fmt"
	"strconv"
	"strings"

	"autoparts/internal/pkg/errs"
)

// saleNumberPrefix is the human-readable prefix of every sale number.
const saleNumberPrefix = "VTA-"

// ErrSaleNumberIsNotConstructed indicates that a SaleNumber was not created
// via NewSaleNumber or SaleNumberFromString.
var ErrSaleNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"SaleNumber must be created via NewSaleNumber or SaleNumberFromString",
)

// SaleNumber is a value object that represents the human-readable unique code
// of a sale, formatted as "VTA-" followed by a zero-padded six digit sequence
// number. It is assigned exactly once when an order is created and is
// immutable afterwards.
//
// The sequence value comes from the persistence layer's atomic counter, so
// two concurrent creations always receive distinct sale numbers.
type SaleNumber struct {
	sequence int64
}

// NewSaleNumber creates a SaleNumber from a sequence value obtained from the
// store. The sequence must be positive.
func NewSaleNumber(sequence int64) (SaleNumber, error) {
	if sequence <= 0 {
		return SaleNumber{}, errs.NewValueIsInvalidErrorWithCause("sale number sequence",
			fmt.Errorf("%d is not greater than 0", sequence))
	}
	return SaleNumber{sequence: sequence}, nil
}

// SaleNumberFromString parses a sale number in its canonical "VTA-000123"
// form, as stored in the database or received from external systems.
func SaleNumberFromString(s string) (SaleNumber, error) {
	if !strings.HasPrefix(s, saleNumberPrefix) {
		return SaleNumber{}, errs.NewValueIsInvalidErrorWithCause("sale number",
			fmt.Errorf("%q does not start with %q", s, saleNumberPrefix))
	}

	sequence, err := strconv.ParseInt(strings.TrimPrefix(s, saleNumberPrefix), 10, 64)
	if err != nil {
		return SaleNumber{}, errs.NewValueIsInvalidErrorWithCause("sale number", err)
	}

	return NewSaleNumber(sequence)
}

// String returns the canonical representation, e.g. "VTA-000042".
// Sequences above 999999 widen past six digits instead of wrapping.
func (n SaleNumber) String() string {
	return fmt.Sprintf("%s%06d", saleNumberPrefix, n.sequence)
}

// Sequence returns the numeric part of the sale number.
func (n SaleNumber) Sequence() int64 {
	return n.sequence
}

// IsEqual compares two sale numbers by their sequence value.
func (n SaleNumber) IsEqual(other SaleNumber) bool {
	return n.sequence == other.sequence
}

// Validate checks if the SaleNumber is properly constructed.
func (n SaleNumber) Validate() error {
	if n.sequence <= 0 {
		return ErrSaleNumberIsNotConstructed
	}
	return nil
}
