// Package customer provides the Customer entity referenced by orders.
// Customers are keyed naturally by phone number: inbound WhatsApp messages
// only carry the sender's phone, so lookup-or-create by phone is the primary
// access path.
package customer

import (
	"errors"
	"time"

	"autoparts/internal/core/domain/model/kernel"
	"autoparts/internal/pkg/errs"
)

// ErrCustomerIsNotConstructed is returned when a Customer instance was not
// created through the NewCustomer or RestoreCustomer factory methods.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer represents a person buying parts through the dashboard. Orders
// reference customers by ID but do not own them; a customer survives all of
// their orders.
//
// Customer invariants:
//   - Must have a valid unique identifier and a valid phone number
//   - The phone number is unique across customers (enforced by the store)
//   - Name is never empty; a placeholder derived from the phone is used for
//     customers auto-created from inbound messages
type Customer struct {
	id        kernel.UUID
	phone     kernel.Phone
	name      string
	email     string
	status    Status
	createdAt time.Time

	isConstructed bool
}

// NewCustomer creates a new active Customer. When name is empty a placeholder
// derived from the phone's last digits is used, matching how customers are
// auto-created from their first inbound message.
func NewCustomer(id kernel.UUID, phone kernel.Phone, name string) (*Customer, error) {
	c := &Customer{
		name:          name,
		status:        Active,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setPhone(phone),
	); err != nil {
		return nil, err
	}

	if c.name == "" {
		c.name = "Cliente " + phone.Last4()
	}

	return c, nil
}

// RestoreCustomer reconstructs a customer from persistence.
func RestoreCustomer(
	id kernel.UUID,
	phone kernel.Phone,
	name string,
	email string,
	status Status,
	createdAt time.Time,
) (*Customer, error) {
	c := &Customer{
		email:         email,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setPhone(phone),
		c.setName(name),
		c.setStatus(status),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate ensures the Customer was created through a factory method.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// IsEqual compares two customers by their unique identifiers.
func (c *Customer) IsEqual(other *Customer) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// Phone returns the customer's phone number, the natural key for upserts.
func (c *Customer) Phone() kernel.Phone {
	return c.phone
}

// Name returns the customer's display name.
func (c *Customer) Name() string {
	return c.name
}

// Email returns the customer's email, empty when unknown.
func (c *Customer) Email() string {
	return c.email
}

// Status returns the informational active/inactive status.
func (c *Customer) Status() Status {
	return c.status
}

// CreatedAt returns the creation timestamp.
func (c *Customer) CreatedAt() time.Time {
	return c.createdAt
}

// Rename updates the customer's display name.
func (c *Customer) Rename(name string) error {
	return c.setName(name)
}

// SetEmail records the customer's email address.
func (c *Customer) SetEmail(email string) {
	c.email = email
}

// Deactivate marks the customer as inactive.
func (c *Customer) Deactivate() {
	c.status = Inactive
}

// Activate marks the customer as active.
func (c *Customer) Activate() {
	c.status = Active
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setPhone(phone kernel.Phone) error {
	if err := phone.Validate(); err != nil {
		return err
	}
	c.phone = phone
	return nil
}

func (c *Customer) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *Customer) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}
