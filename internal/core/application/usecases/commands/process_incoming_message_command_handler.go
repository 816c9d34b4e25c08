package commands

import (
	"context"
	"errors"

	"autoparts/internal/core/domain/model/customer"
	"autoparts/internal/core/domain/model/kernel"
	"autoparts/internal/core/domain/model/message"
	"autoparts/internal/core/domain/model/order"
	"autoparts/internal/core/ports"
	"autoparts/internal/pkg/errs"
)

// ProcessIncomingMessageCommandHandler runs the conversation loop for one
// inbound message: resolve or register the customer by phone, append the
// message to the conversation log, generate a reply and send it back through
// the provider, logging the outbound message as well.
//
// Everything shares one transaction. If the provider send fails the whole
// exchange rolls back and the provider redelivers the inbound message.
type ProcessIncomingMessageCommandHandler struct {
	uowFactory UoWFactory
	messenger  ports.Messenger
	replyGen   ports.ReplyGenerator
}

// NewProcessIncomingMessageCommandHandler creates a handler for inbound messages.
func NewProcessIncomingMessageCommandHandler(
	uowFactory UoWFactory,
	messenger ports.Messenger,
	replyGen ports.ReplyGenerator,
) ProcessIncomingMessageCommandHandler {
	return ProcessIncomingMessageCommandHandler{
		uowFactory: uowFactory,
		messenger:  messenger,
		replyGen:   replyGen,
	}
}

// Handle processes one inbound message and returns the reply that was sent.
func (h *ProcessIncomingMessageCommandHandler) Handle(
	ctx context.Context,
	cmd ProcessIncomingMessageCommand,
) (ports.Reply, error) {
	if err := cmd.Validate(); err != nil {
		return ports.Reply{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ports.Reply{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	sender, err := h.resolveCustomer(ctx, uow, cmd)
	if err != nil {
		return ports.Reply{}, err
	}

	messageRepo := uow.MessageRepository()
	inbound, err := message.NewInbound(
		kernel.NewUUID(), sender.ID(), cmd.Phone(), cmd.Text(), cmd.ProviderMessageID(),
	)
	if err != nil {
		return ports.Reply{}, err
	}

	if err = messageRepo.Add(ctx, inbound); err != nil {
		return ports.Reply{}, err
	}

	purchaseCount, err := h.countPurchases(ctx, uow, sender.ID())
	if err != nil {
		return ports.Reply{}, err
	}

	reply, err := h.replyGen.GenerateReply(ctx, ports.ReplyContext{
		Customer:      sender,
		Text:          cmd.Text(),
		PurchaseCount: purchaseCount,
	})
	if err != nil {
		return ports.Reply{}, err
	}

	providerID, err := h.messenger.Send(ctx, ports.OutgoingMessage{
		Phone:    cmd.Phone(),
		Text:     reply.Text,
		MediaURL: reply.MediaURL,
	})
	if err != nil {
		return ports.Reply{}, err
	}

	outbound, err := message.NewOutbound(
		kernel.NewUUID(), sender.ID(), cmd.Phone(), reply.Text, providerID, reply.MediaURL,
	)
	if err != nil {
		return ports.Reply{}, err
	}

	if err = messageRepo.Add(ctx, outbound); err != nil {
		return ports.Reply{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ports.Reply{}, err
	}

	return reply, nil
}

// resolveCustomer finds the sender by phone, registering them on first
// contact. A known customer's stored name is never overwritten by the
// provider profile name.
func (h *ProcessIncomingMessageCommandHandler) resolveCustomer(
	ctx context.Context,
	uow UoW,
	cmd ProcessIncomingMessageCommand,
) (*customer.Customer, error) {
	customerRepo := uow.CustomerRepository()

	sender, err := customerRepo.GetByPhone(ctx, cmd.Phone())
	if err == nil {
		return sender, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	sender, err = customer.NewCustomer(kernel.NewUUID(), cmd.Phone(), cmd.ProfileName())
	if err != nil {
		return nil, err
	}

	return customerRepo.Upsert(ctx, sender)
}

func (h *ProcessIncomingMessageCommandHandler) countPurchases(
	ctx context.Context,
	uow UoW,
	customerID kernel.UUID,
) (int, error) {
	orders, err := uow.OrderRepository().GetByCustomer(ctx, customerID)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, aggregate := range orders {
		if aggregate.Status() == order.Completed {
			count++
		}
	}

	return count, nil
}
