package kernel_test

import (
	"testing"

	"autoparts/internal/core/domain/model/kernel"
	"autoparts/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPhone(t *testing.T) {
	t.Run("should accept international format", func(t *testing.T) {
		phone, err := kernel.NewPhone("+525512345678")

		require.NoError(t, err)
		require.NoError(t, phone.Validate())
		assert.Equal(t, "+525512345678", phone.String())
	})

	t.Run("should normalize separators", func(t *testing.T) {
		phone, err := kernel.NewPhone("+52 (55) 1234-5678")

		require.NoError(t, err)
		assert.Equal(t, "+525512345678", phone.String())
	})

	t.Run("normalized numbers compare equal", func(t *testing.T) {
		a, _ := kernel.NewPhone("+52 55 1234 5678")
		b, _ := kernel.NewPhone("+525512345678")

		assert.True(t, a.IsEqual(b))
	})

	t.Run("should fail on empty input", func(t *testing.T) {
		_, err := kernel.NewPhone("")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail on too few digits", func(t *testing.T) {
		_, err := kernel.NewPhone("12345")

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should fail on too many digits", func(t *testing.T) {
		_, err := kernel.NewPhone("+1234567890123456")

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should fail on letters", func(t *testing.T) {
		_, err := kernel.NewPhone("55abc12345")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestPhone_Last4(t *testing.T) {
	t.Run("returns last four digits", func(t *testing.T) {
		phone, _ := kernel.NewPhone("+525512345678")

		assert.Equal(t, "5678", phone.Last4())
	})
}

func TestPhone_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var phone kernel.Phone

		err := phone.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrPhoneIsNotConstructed, err)
	})
}
