package errs_test

import (
	"errors"
	"testing"

	"autoparts/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvalidTransitionError(t *testing.T) {
	t.Run("NewInvalidTransitionError", func(t *testing.T) {
		err := errs.NewInvalidTransitionError("OrderPending", "Quoting")

		assert.Equal(t, "OrderPending", err.From)
		assert.Equal(t, "Quoting", err.To)
		require.NoError(t, err.Cause)
		assert.Equal(t, "invalid transition: OrderPending -> Quoting", err.Error())
		assert.Equal(t, errs.ErrInvalidTransition, err.Unwrap())
	})

	t.Run("NewInvalidTransitionErrorWithCause", func(t *testing.T) {
		cause := errors.New("backward move")
		err := errs.NewInvalidTransitionErrorWithCause("Completed", "Quoting", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "invalid transition: Completed -> Quoting (cause: backward move)", err.Error())
		assert.Equal(t, errs.ErrInvalidTransition, err.Unwrap())
	})
}

func TestPreconditionFailedError(t *testing.T) {
	t.Run("NewPreconditionFailedError", func(t *testing.T) {
		err := errs.NewPreconditionFailedError("paymentRef")

		assert.Equal(t, "paymentRef", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "precondition failed: paymentRef", err.Error())
		assert.Equal(t, errs.ErrPreconditionFailed, err.Unwrap())
	})

	t.Run("NewPreconditionFailedErrorWithCause", func(t *testing.T) {
		cause := errors.New("payment session already issued")
		err := errs.NewPreconditionFailedErrorWithCause("paymentRef", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "precondition failed: paymentRef (cause: payment session already issued)", err.Error())
	})
}

func TestStoreUnavailableError(t *testing.T) {
	t.Run("NewStoreUnavailableError", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := errs.NewStoreUnavailableError("orders.update", cause)

		assert.Equal(t, "orders.update", err.Op)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "store unavailable: orders.update (cause: connection refused)", err.Error())
		assert.Equal(t, errs.ErrStoreUnavailable, err.Unwrap())
	})
}

func TestLifecycleErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with lifecycle errors", func(t *testing.T) {
		require.ErrorIs(t, errs.NewInvalidTransitionError("Quoting", "MessageReceived"), errs.ErrInvalidTransition)
		require.ErrorIs(t, errs.NewPreconditionFailedError("paymentRef"), errs.ErrPreconditionFailed)
		require.ErrorIs(t, errs.NewStoreUnavailableError("orders.add", errors.New("timeout")), errs.ErrStoreUnavailable)
	})

	t.Run("lifecycle kinds stay distinguishable", func(t *testing.T) {
		err := errs.NewInvalidTransitionError("OrderPending", "Quoting")
		require.NotErrorIs(t, err, errs.ErrPreconditionFailed)
		require.NotErrorIs(t, err, errs.ErrValueIsInvalid)
		require.NotErrorIs(t, err, errs.ErrStoreUnavailable)
	})
}
