package commands

import (
	"context"

	"autoparts/internal/core/ports"
)

// CreatePaymentLinkCommandHandler issues a checkout session for an order and
// attaches the session to the aggregate, moving it to AwaitingPayment.
// Attaching twice is rejected by the aggregate, so at most one session is
// ever bound to an order.
type CreatePaymentLinkCommandHandler struct {
	uowFactory OrderUoWFactory
	gateway    ports.PaymentGateway
}

// NewCreatePaymentLinkCommandHandler creates a handler for payment link issuing.
func NewCreatePaymentLinkCommandHandler(
	uowFactory OrderUoWFactory,
	gateway ports.PaymentGateway,
) CreatePaymentLinkCommandHandler {
	return CreatePaymentLinkCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
	}
}

// Handle loads the order, creates a provider session for its total and binds
// the session to the order. Returns the session so the caller can hand the
// checkout URL to the customer.
//
// The provider call happens inside the transaction: if binding fails the
// order row is untouched and the orphaned session simply expires on the
// provider side.
func (h *CreatePaymentLinkCommandHandler) Handle(
	ctx context.Context,
	cmd CreatePaymentLinkCommand,
) (ports.PaymentSession, error) {
	if err := cmd.Validate(); err != nil {
		return ports.PaymentSession{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ports.PaymentSession{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return ports.PaymentSession{}, err
	}

	session, err := h.gateway.CreateSession(ctx, aggregate)
	if err != nil {
		return ports.PaymentSession{}, err
	}

	if err = aggregate.AttachPayment(session.SessionID); err != nil {
		return ports.PaymentSession{}, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return ports.PaymentSession{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ports.PaymentSession{}, err
	}

	return session, nil
}
