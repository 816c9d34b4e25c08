package commands

import (
	"errors"

	"autoparts/internal/core/domain/model/kernel"
	"autoparts/internal/pkg/guard"
)

var ErrMarkOrderFulfilledCommandIsNotConstructed = errors.New(
	"MarkOrderFulfilledCommand must be created via NewMarkOrderFulfilledCommand constructor",
)

// MarkOrderFulfilledCommand represents warehouse confirmation that an order
// has been picked and shipped.
type MarkOrderFulfilledCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkOrderFulfilledCommand creates a command to close out a shipped order.
func NewMarkOrderFulfilledCommand(orderID kernel.UUID) (MarkOrderFulfilledCommand, error) {
	fulfillCommand := MarkOrderFulfilledCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := fulfillCommand.setOrderID(orderID); err != nil {
		return MarkOrderFulfilledCommand{}, err
	}

	return fulfillCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkOrderFulfilledCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderFulfilledCommandIsNotConstructed)
}

// OrderID returns the identifier of the shipped order.
func (c MarkOrderFulfilledCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *MarkOrderFulfilledCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
