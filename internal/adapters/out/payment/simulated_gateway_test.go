package payment_test

import (
	"log/slog"
	"testing"

	"autoparts/internal/adapters/out/payment"
	"autoparts/internal/core/domain/model/kernel"
	"autoparts/internal/core/domain/model/order"
	"autoparts/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQuotedOrder(t *testing.T) *order.Order {
	t.Helper()

	item, err := order.NewLineItem("BRK-PAD-TOY", 2, decimal.NewFromInt(450))
	require.NoError(t, err)

	saleNumber, err := kernel.NewSaleNumber(1)
	require.NoError(t, err)

	aggregate, err := order.NewOrder(
		kernel.NewUUID(), saleNumber, kernel.NewUUID(), []order.LineItem{item}, "",
	)
	require.NoError(t, err)
	require.NoError(t, aggregate.TransitionTo(order.Quoting))
	return aggregate
}

func TestSimulatedGateway_SessionLifecycle(t *testing.T) {
	ctx := t.Context()
	gateway := payment.NewSimulatedGateway("https://pay.example.com/", slog.Default())

	session, err := gateway.CreateSession(ctx, newQuotedOrder(t))
	require.NoError(t, err)
	assert.Contains(t, session.URL, session.SessionID)
	assert.Contains(t, session.SessionID, "cs_sim_")

	status, err := gateway.CheckStatus(ctx, session.SessionID)
	require.NoError(t, err)
	assert.False(t, status.Paid)
	assert.Empty(t, status.PaymentRef)

	ref, err := gateway.MarkPaid(session.SessionID)
	require.NoError(t, err)
	assert.Contains(t, ref, "py_sim_")

	status, err = gateway.CheckStatus(ctx, session.SessionID)
	require.NoError(t, err)
	assert.True(t, status.Paid)
	assert.Equal(t, ref, status.PaymentRef)
}

func TestSimulatedGateway_MarkPaidIsIdempotent(t *testing.T) {
	ctx := t.Context()
	gateway := payment.NewSimulatedGateway("https://pay.example.com", slog.Default())

	session, err := gateway.CreateSession(ctx, newQuotedOrder(t))
	require.NoError(t, err)

	first, err := gateway.MarkPaid(session.SessionID)
	require.NoError(t, err)
	second, err := gateway.MarkPaid(session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSimulatedGateway_UnknownSession(t *testing.T) {
	gateway := payment.NewSimulatedGateway("https://pay.example.com", slog.Default())

	_, err := gateway.CheckStatus(t.Context(), "cs_unknown")
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	_, err = gateway.MarkPaid("cs_unknown")
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestSimulatedGateway_DistinctSessions(t *testing.T) {
	ctx := t.Context()
	gateway := payment.NewSimulatedGateway("https://pay.example.com", slog.Default())

	first, err := gateway.CreateSession(ctx, newQuotedOrder(t))
	require.NoError(t, err)
	second, err := gateway.CreateSession(ctx, newQuotedOrder(t))
	require.NoError(t, err)
	assert.NotEqual(t, first.SessionID, second.SessionID)
}
