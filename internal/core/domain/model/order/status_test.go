package order_test

import (
	"testing"

	"autoparts/internal/core/domain/model/order"
	"autoparts/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("valid statuses pass", func(t *testing.T) {
		for _, s := range []order.Status{
			order.MessageReceived, order.Quoting, order.AwaitingPayment,
			order.OrderPending, order.Completed,
		} {
			require.NoError(t, s.Validate(), s.String())
		}
	})

	t.Run("unknown is invalid", func(t *testing.T) {
		require.Error(t, order.Unknown.Validate())
	})

	t.Run("out of range value is invalid", func(t *testing.T) {
		require.Error(t, order.Status(42).Validate())
	})
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "MessageReceived", order.MessageReceived.String())
	assert.Equal(t, "Quoting", order.Quoting.String())
	assert.Equal(t, "AwaitingPayment", order.AwaitingPayment.String())
	assert.Equal(t, "OrderPending", order.OrderPending.String())
	assert.Equal(t, "Completed", order.Completed.String())
	assert.Equal(t, "Unknown", order.Status(42).String())
}

func TestStatusFromString(t *testing.T) {
	t.Run("round-trips every valid status", func(t *testing.T) {
		for _, s := range []order.Status{
			order.MessageReceived, order.Quoting, order.AwaitingPayment,
			order.OrderPending, order.Completed,
		} {
			parsed, err := order.StatusFromString(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("rejects unknown names", func(t *testing.T) {
		_, err := order.StatusFromString("Shipped")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects the Unknown name", func(t *testing.T) {
		_, err := order.StatusFromString("Unknown")
		require.Error(t, err)
	})
}

func TestStatus_TransitionTo(t *testing.T) {
	t.Run("forward move is allowed", func(t *testing.T) {
		next, err := order.MessageReceived.TransitionTo(order.Quoting)

		require.NoError(t, err)
		assert.Equal(t, order.Quoting, next)
	})

	t.Run("skipping states forward is allowed", func(t *testing.T) {
		next, err := order.MessageReceived.TransitionTo(order.OrderPending)

		require.NoError(t, err)
		assert.Equal(t, order.OrderPending, next)
	})

	t.Run("same state is a no-op transition", func(t *testing.T) {
		next, err := order.Quoting.TransitionTo(order.Quoting)

		require.NoError(t, err)
		assert.Equal(t, order.Quoting, next)
	})

	t.Run("backward move is rejected", func(t *testing.T) {
		_, err := order.OrderPending.TransitionTo(order.Quoting)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("completed orders never reopen", func(t *testing.T) {
		for _, target := range []order.Status{
			order.MessageReceived, order.Quoting, order.AwaitingPayment, order.OrderPending,
		} {
			_, err := order.Completed.TransitionTo(target)
			require.ErrorIs(t, err, errs.ErrInvalidTransition, target.String())
		}
	})

	t.Run("unknown source is rejected", func(t *testing.T) {
		_, err := order.Unknown.TransitionTo(order.Quoting)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("unknown target is rejected", func(t *testing.T) {
		_, err := order.Quoting.TransitionTo(order.Unknown)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_IsFulfillmentVisible(t *testing.T) {
	assert.True(t, order.OrderPending.IsFulfillmentVisible())

	for _, s := range []order.Status{
		order.MessageReceived, order.Quoting, order.AwaitingPayment, order.Completed,
	} {
		assert.False(t, s.IsFulfillmentVisible(), s.String())
	}
}
