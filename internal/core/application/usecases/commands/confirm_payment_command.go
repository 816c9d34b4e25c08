package commands

import (
	"errors"

	"autoparts/internal/pkg/guard"
)

var (
	ErrConfirmPaymentCommandIsNotConstructed = errors.New(
		"ConfirmPaymentCommand must be created via NewConfirmPaymentCommand constructor",
	)
	ErrSessionIDIsRequired = errors.New("payment session id is required")
)

// ConfirmPaymentCommand represents a provider notification that a checkout
// session has been paid. Issued by the payment webhook and by the polling
// job; both paths converge on the same handler.
type ConfirmPaymentCommand struct { //nolint:recvcheck //using for validation
	sessionID string

	guard guard.ConstructorGuard
}

// NewConfirmPaymentCommand creates a command to confirm a paid session.
func NewConfirmPaymentCommand(sessionID string) (ConfirmPaymentCommand, error) {
	confirmCommand := ConfirmPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := confirmCommand.setSessionID(sessionID); err != nil {
		return ConfirmPaymentCommand{}, err
	}

	return confirmCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmPaymentCommand) Validate() error {
	return c.guard.Validate(ErrConfirmPaymentCommandIsNotConstructed)
}

// SessionID returns the provider's checkout session identifier.
func (c ConfirmPaymentCommand) SessionID() string {
	return c.sessionID
}

func (c *ConfirmPaymentCommand) setSessionID(sessionID string) error {
	if sessionID == "" {
		return ErrSessionIDIsRequired
	}

	c.sessionID = sessionID
	return nil
}
