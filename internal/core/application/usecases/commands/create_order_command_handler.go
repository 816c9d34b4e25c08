package commands

import (
	"context"

	"autoparts/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Allocates the next sale number from the store's counter and opens the
// order at the start of the sales funnel.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateOrderCommand(orderID, customerID, items, "Av. Juarez 12")
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
// Sale number allocation and the insert share one transaction, so a failed
// creation only burns a counter value and never leaves a partial order.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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
	saleNumber, err := orderRepo.NextSaleNumber(ctx)
	if err != nil {
		return err
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(), saleNumber, cmd.CustomerID(), cmd.LineItems(), cmd.ShippingAddress(),
	)
	if err != nil {
		return err
	}

	if err = orderRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
