// Package message provides the WhatsApp conversation log entities.
// Messages are append-only records tied to a customer; they are orthogonal
// to the order lifecycle and never mutate an order.
package message

import (
	"errors"
	"fmt"
	"time"

	"autoparts/internal/core/domain/model/kernel"
	"autoparts/internal/pkg/errs"
)

// ErrMessageIsNotConstructed is returned when a Message instance was not
// created through one of the factory methods.
var ErrMessageIsNotConstructed = errors.New("Message must be created via NewInbound or NewOutbound constructor")

// Direction marks whether a message was received from or sent to the customer.
type Direction int

const (
	// DirectionUnknown represents an invalid or undefined direction.
	DirectionUnknown Direction = iota

	// Inbound messages were received from the customer.
	Inbound

	// Outbound messages were sent to the customer.
	Outbound
)

func getValidDirectionStrings() map[Direction]string {
	//nolint:exhaustive // DirectionUnknown is intentionally excluded as it's invalid
	return map[Direction]string{
		Inbound:  "Inbound",
		Outbound: "Outbound",
	}
}

// DirectionFromString parses a direction from its canonical name.
// Used when reconstructing messages loaded from the store.
func DirectionFromString(s string) (Direction, error) {
	for direction, name := range getValidDirectionStrings() {
		if name == s {
			return direction, nil
		}
	}
	return DirectionUnknown, errs.NewValueIsInvalidErrorWithCause("direction",
		fmt.Errorf("%q is not a valid direction", s))
}

// Validate checks if the Direction value is valid.
func (d Direction) Validate() error {
	if _, ok := getValidDirectionStrings()[d]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("direction",
			fmt.Errorf("%d is not a valid direction", d))
	}
	return nil
}

// String returns the canonical name of the direction, or "Unknown" for
// invalid values.
func (d Direction) String() string {
	if str, ok := getValidDirectionStrings()[d]; ok {
		return str
	}
	return "Unknown"
}

// Message is one entry in a customer's WhatsApp conversation history.
// Messages are immutable once created.
type Message struct {
	id         kernel.UUID
	customerID kernel.UUID
	phone      kernel.Phone
	text       string
	direction  Direction

	// providerMessageID is the messaging provider's identifier, empty for
	// outbound messages that were logged before the provider acknowledged
	providerMessageID string

	mediaURL  string
	createdAt time.Time

	isConstructed bool
}

// NewInbound creates a message received from a customer.
func NewInbound(
	id kernel.UUID,
	customerID kernel.UUID,
	phone kernel.Phone,
	text string,
	providerMessageID string,
) (*Message, error) {
	return newMessage(id, customerID, phone, text, Inbound, providerMessageID, "")
}

// NewOutbound creates a message sent to a customer, optionally carrying a
// media attachment URL.
func NewOutbound(
	id kernel.UUID,
	customerID kernel.UUID,
	phone kernel.Phone,
	text string,
	providerMessageID string,
	mediaURL string,
) (*Message, error) {
	return newMessage(id, customerID, phone, text, Outbound, providerMessageID, mediaURL)
}

// RestoreMessage reconstructs a message from persistence.
func RestoreMessage(
	id kernel.UUID,
	customerID kernel.UUID,
	phone kernel.Phone,
	text string,
	direction Direction,
	providerMessageID string,
	mediaURL string,
	createdAt time.Time,
) (*Message, error) {
	m, err := newMessage(id, customerID, phone, text, direction, providerMessageID, mediaURL)
	if err != nil {
		return nil, err
	}

	m.createdAt = createdAt
	return m, nil
}

func newMessage(
	id kernel.UUID,
	customerID kernel.UUID,
	phone kernel.Phone,
	text string,
	direction Direction,
	providerMessageID string,
	mediaURL string,
) (*Message, error) {
	m := &Message{
		providerMessageID: providerMessageID,
		mediaURL:          mediaURL,
		createdAt:         time.Now().UTC(),
		isConstructed:     true,
	}

	if err := errors.Join(
		m.setID(id),
		m.setCustomerID(customerID),
		m.setPhone(phone),
		m.setText(text),
		m.setDirection(direction),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// Validate ensures the Message was created through a factory method.
func (m *Message) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMessageIsNotConstructed
	}
	return nil
}

// ID returns the message's unique identifier.
func (m *Message) ID() kernel.UUID {
	return m.id
}

// CustomerID returns the customer this message belongs to.
func (m *Message) CustomerID() kernel.UUID {
	return m.customerID
}

// Phone returns the customer-side phone number of the conversation.
func (m *Message) Phone() kernel.Phone {
	return m.phone
}

// Text returns the message body.
func (m *Message) Text() string {
	return m.text
}

// Direction returns whether the message was inbound or outbound.
func (m *Message) Direction() Direction {
	return m.direction
}

// ProviderMessageID returns the messaging provider's identifier, empty when
// the provider has not assigned one.
func (m *Message) ProviderMessageID() string {
	return m.providerMessageID
}

// MediaURL returns the attachment URL, empty for text-only messages.
func (m *Message) MediaURL() string {
	return m.mediaURL
}

// CreatedAt returns the timestamp of the message.
func (m *Message) CreatedAt() time.Time {
	return m.createdAt
}

func (m *Message) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *Message) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	m.customerID = customerID
	return nil
}

func (m *Message) setPhone(phone kernel.Phone) error {
	if err := phone.Validate(); err != nil {
		return err
	}
	m.phone = phone
	return nil
}

func (m *Message) setText(text string) error {
	if text == "" {
		return errs.NewValueIsRequiredError("text")
	}
	m.text = text
	return nil
}

func (m *Message) setDirection(direction Direction) error {
	if err := direction.Validate(); err != nil {
		return err
	}
	m.direction = direction
	return nil
}
