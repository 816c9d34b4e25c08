package commands

import (
	"errors"

	"autoparts/internal/core/domain/model/kernel"
	"autoparts/internal/pkg/guard"
)

var ErrCreatePaymentLinkCommandIsNotConstructed = errors.New(
	"CreatePaymentLinkCommand must be created via NewCreatePaymentLinkCommand constructor",
)

// CreatePaymentLinkCommand represents a request to issue a checkout session
// for a quoted order and send the customer its payment link.
type CreatePaymentLinkCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreatePaymentLinkCommand creates a command to issue a payment link.
func NewCreatePaymentLinkCommand(orderID kernel.UUID) (CreatePaymentLinkCommand, error) {
	linkCommand := CreatePaymentLinkCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := linkCommand.setOrderID(orderID); err != nil {
		return CreatePaymentLinkCommand{}, err
	}

	return linkCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePaymentLinkCommand) Validate() error {
	return c.guard.Validate(ErrCreatePaymentLinkCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to bill.
func (c CreatePaymentLinkCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *CreatePaymentLinkCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
