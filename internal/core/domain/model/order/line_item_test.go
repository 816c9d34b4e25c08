package order_test

import (
	"testing"

	"autoparts/internal/core/domain/model/order"
	"autoparts/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLineItem(t *testing.T) {
	t.Run("should compute subtotal as quantity times unit price", func(t *testing.T) {
		item, err := order.NewLineItem("FAR-TY-018", 3, decimal.NewFromFloat(149.50))

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.Equal(t, "FAR-TY-018", item.SKU())
		assert.Equal(t, 3, item.Quantity())
		assert.True(t, item.UnitPrice().Equal(decimal.NewFromFloat(149.50)))
		assert.True(t, item.Subtotal().Equal(decimal.NewFromFloat(448.50)))
	})

	t.Run("should allow zero unit price", func(t *testing.T) {
		item, err := order.NewLineItem("PROMO-01", 1, decimal.Zero)

		require.NoError(t, err)
		assert.True(t, item.Subtotal().IsZero())
	})

	t.Run("should fail with empty sku", func(t *testing.T) {
		_, err := order.NewLineItem("", 1, decimal.NewFromInt(10))

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with zero quantity", func(t *testing.T) {
		_, err := order.NewLineItem("A1", 0, decimal.NewFromInt(10))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "0 is not greater than 0")
	})

	t.Run("should fail with negative quantity", func(t *testing.T) {
		_, err := order.NewLineItem("A1", -2, decimal.NewFromInt(10))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail with negative unit price", func(t *testing.T) {
		_, err := order.NewLineItem("A1", 1, decimal.NewFromInt(-10))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should collect multiple validation errors", func(t *testing.T) {
		_, err := order.NewLineItem("", 0, decimal.NewFromInt(-1))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "sku")
		assert.Contains(t, err.Error(), "quantity")
		assert.Contains(t, err.Error(), "unit price")
	})
}

func TestLineItem_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var item order.LineItem

		err := item.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrLineItemIsNotConstructed, err)
	})
}
