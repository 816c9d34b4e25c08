package queries_test

import (
	"testing"

	"autoparts/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetCustomersQuery_Valid(t *testing.T) {
	query := queries.NewGetCustomersQuery()
	err := query.Validate()
	require.NoError(t, err)
}

func TestGetCustomersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetCustomersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetCustomersQueryIsNotConstructed)
}
