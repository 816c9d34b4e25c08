package commands

import (
	"errors"

	"autoparts/internal/core/domain/model/kernel"
	"autoparts/internal/pkg/guard"
)

var (
	ErrProcessIncomingMessageCommandIsNotConstructed = errors.New(
		"ProcessIncomingMessageCommand must be created via NewProcessIncomingMessageCommand constructor",
	)
	ErrMessageTextIsRequired = errors.New("message text is required")
)

// ProcessIncomingMessageCommand represents an inbound customer message
// delivered by the messaging provider webhook. ProfileName is the sender
// name reported by the provider and may be empty.
type ProcessIncomingMessageCommand struct { //nolint:recvcheck //using for validation
	phone             kernel.Phone
	text              string
	providerMessageID string
	profileName       string

	guard guard.ConstructorGuard
}

// NewProcessIncomingMessageCommand creates a command for one inbound message.
func NewProcessIncomingMessageCommand(
	phone kernel.Phone,
	text string,
	providerMessageID string,
	profileName string,
) (ProcessIncomingMessageCommand, error) {
	messageCommand := ProcessIncomingMessageCommand{
		providerMessageID: providerMessageID,
		profileName:       profileName,
		guard:             guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		messageCommand.setPhone(phone),
		messageCommand.setText(text),
	); err != nil {
		return ProcessIncomingMessageCommand{}, err
	}

	return messageCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ProcessIncomingMessageCommand) Validate() error {
	return c.guard.Validate(ErrProcessIncomingMessageCommandIsNotConstructed)
}

// Phone returns the sender's phone number.
func (c ProcessIncomingMessageCommand) Phone() kernel.Phone {
	return c.phone
}

// Text returns the message body.
func (c ProcessIncomingMessageCommand) Text() string {
	return c.text
}

// ProviderMessageID returns the provider's identifier for the inbound message.
func (c ProcessIncomingMessageCommand) ProviderMessageID() string {
	return c.providerMessageID
}

// ProfileName returns the sender name reported by the provider, possibly empty.
func (c ProcessIncomingMessageCommand) ProfileName() string {
	return c.profileName
}

func (c *ProcessIncomingMessageCommand) setPhone(phone kernel.Phone) error {
	if err := phone.Validate(); err != nil {
		return err
	}

	c.phone = phone
	return nil
}

func (c *ProcessIncomingMessageCommand) setText(text string) error {
	if text == "" {
		return ErrMessageTextIsRequired
	}

	c.text = text
	return nil
}
