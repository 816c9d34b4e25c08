package commands

import (
	"errors"

	"autoparts/internal/core/domain/model/kernel"
	"autoparts/internal/core/domain/model/order"
	"autoparts/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrLineItemsAreRequired = errors.New("at least one line item is required")
)

// CreateOrderCommand represents a request to open a new sales order for a
// customer. Carries the quoted line items and an optional shipping address.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	item, _ := order.NewLineItem("BRK-PAD-TOY", 2, decimal.NewFromInt(450))
//	cmd, err := NewCreateOrderCommand(orderID, customerID, []order.LineItem{item}, "Av. Juarez 12")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	customerID      kernel.UUID
	lineItems       []order.LineItem
	shippingAddress string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new sales order.
// Validates that both identifiers are valid and that at least one valid
// line item is present. The shipping address may be empty; such orders are
// held back from the pick list until one is set.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	lineItems []order.LineItem,
	shippingAddress string,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		shippingAddress: shippingAddress,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setCustomerID(customerID),
		orderCommand.setLineItems(lineItems),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the identifier of the customer placing the order.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// LineItems returns the quoted line items.
func (c CreateOrderCommand) LineItems() []order.LineItem {
	return c.lineItems
}

// ShippingAddress returns the delivery address, possibly empty.
func (c CreateOrderCommand) ShippingAddress() string {
	return c.shippingAddress
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setLineItems(lineItems []order.LineItem) error {
	if len(lineItems) == 0 {
		return ErrLineItemsAreRequired
	}

	for _, item := range lineItems {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.lineItems = lineItems
	return nil
}
