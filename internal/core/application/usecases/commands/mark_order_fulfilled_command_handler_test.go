package commands_test

import (
	"testing"

	"autoparts/internal/core/application/usecases/commands"
	"autoparts/internal/core/domain/model/order"
	"autoparts/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMarkOrderFulfilledCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	stored := newStoredOrder(t, order.OrderPending)
	cmd, err := commands.NewMarkOrderFulfilledCommand(stored.ID())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once(),
		repo.On("Update", mock.Anything, stored).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkOrderFulfilledCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, order.Completed, stored.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestMarkOrderFulfilledCommandHandler_Handle_NotYetPaid(t *testing.T) {
	ctx := t.Context()
	stored := newStoredOrder(t, order.AwaitingPayment)
	cmd, err := commands.NewMarkOrderFulfilledCommand(stored.ID())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkOrderFulfilledCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	require.Equal(t, order.AwaitingPayment, stored.Status())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
