package commands

import (
	"context"
)

// MarkOrderFulfilledCommandHandler completes an order after the warehouse
// ships it. Only orders in OrderPending can be completed; anything else is
// rejected by the aggregate.
type MarkOrderFulfilledCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewMarkOrderFulfilledCommandHandler creates a handler for fulfillment confirmations.
func NewMarkOrderFulfilledCommandHandler(uowFactory OrderUoWFactory) MarkOrderFulfilledCommandHandler {
	return MarkOrderFulfilledCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, marks it fulfilled and persists the result.
func (h *MarkOrderFulfilledCommandHandler) Handle(ctx context.Context, cmd MarkOrderFulfilledCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.MarkFulfilled(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
