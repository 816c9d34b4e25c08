package commands

import (
	"context"
)

// ConfirmPaymentCommandHandler records that a checkout session has been paid.
// The order moves from AwaitingPayment to OrderPending, which makes it
// visible to fulfillment.
//
// When the webhook and the polling job both confirm the same session, the
// loser of the race gets an invalid transition error from the aggregate.
// Callers treat that error as an already-handled notification.
type ConfirmPaymentCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewConfirmPaymentCommandHandler creates a handler for payment confirmations.
func NewConfirmPaymentCommandHandler(uowFactory OrderUoWFactory) ConfirmPaymentCommandHandler {
	return ConfirmPaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle resolves the order by its payment session and confirms the payment.
func (h *ConfirmPaymentCommandHandler) Handle(ctx context.Context, cmd ConfirmPaymentCommand) error {
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
	aggregate, err := orderRepo.GetByPaymentSession(ctx, cmd.SessionID())
	if err != nil {
		return err
	}

	if err = aggregate.ConfirmPayment(); err != nil {
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
