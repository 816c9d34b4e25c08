package commands_test

import (
	"context"
	"errors"
	"testing"

	"autoparts/internal/core/application/usecases/commands"
	"autoparts/internal/core/domain/model/order"
	"autoparts/internal/core/ports"
	"autoparts/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPaymentGateway struct{ mock.Mock }

func (m *MockPaymentGateway) CreateSession(ctx context.Context, o *order.Order) (ports.PaymentSession, error) {
	args := m.Called(ctx, o)
	return args.Get(0).(ports.PaymentSession), args.Error(1)
}

func (m *MockPaymentGateway) CheckStatus(ctx context.Context, sessionID string) (ports.PaymentStatus, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).(ports.PaymentStatus), args.Error(1)
}

func TestCreatePaymentLinkCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	stored := newStoredOrder(t, order.Quoting)
	cmd, err := commands.NewCreatePaymentLinkCommand(stored.ID())
	require.NoError(t, err)

	session := ports.PaymentSession{
		URL:       "https://pay.example.com/cs_test_456",
		SessionID: "cs_test_456",
	}

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	gateway := new(MockPaymentGateway)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once(),
		gateway.On("CreateSession", mock.Anything, stored).Return(session, nil).Once(),
		repo.On("Update", mock.Anything, stored).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreatePaymentLinkCommandHandler(factory, gateway)
	got, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, session, got)
	require.Equal(t, order.AwaitingPayment, stored.Status())
	require.Equal(t, "cs_test_456", stored.PaymentRef())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	gateway.AssertExpectations(t)
}

func TestCreatePaymentLinkCommandHandler_Handle_SecondLinkRejected(t *testing.T) {
	ctx := t.Context()
	stored := newStoredOrder(t, order.AwaitingPayment)
	cmd, err := commands.NewCreatePaymentLinkCommand(stored.ID())
	require.NoError(t, err)

	session := ports.PaymentSession{
		URL:       "https://pay.example.com/cs_test_789",
		SessionID: "cs_test_789",
	}

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	gateway := new(MockPaymentGateway)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once(),
		gateway.On("CreateSession", mock.Anything, stored).Return(session, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreatePaymentLinkCommandHandler(factory, gateway)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrPreconditionFailed)
	require.Equal(t, "cs_test_123", stored.PaymentRef())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestCreatePaymentLinkCommandHandler_Handle_GatewayError(t *testing.T) {
	ctx := t.Context()
	stored := newStoredOrder(t, order.Quoting)
	cmd, err := commands.NewCreatePaymentLinkCommand(stored.ID())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	gateway := new(MockPaymentGateway)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once(),
		gateway.On("CreateSession", mock.Anything, stored).
			Return(ports.PaymentSession{}, errors.New("provider down")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreatePaymentLinkCommandHandler(factory, gateway)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.Empty(t, stored.PaymentRef())
	uow.AssertExpectations(t)
}
