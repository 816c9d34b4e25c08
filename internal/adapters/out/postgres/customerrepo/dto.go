// Package customerrepo provides data transfer objects and mapping functions
// for customer persistence. The phone number is the natural key: inbound
// messages resolve customers by phone before anything else is known about them.
package customerrepo

import (
	"time"

	"autoparts/internal/core/domain/model/customer"
	"autoparts/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomerDTO represents the database structure for persisting customers.
type CustomerDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Phone     string    `gorm:"uniqueIndex"`
	Name      string
	Email     string
	Status    string
	CreatedAt time.Time
}

// TableName specifies the database table name for customer entities.
func (CustomerDTO) TableName() string {
	return "customers"
}

// fromDomain converts a customer domain aggregate to its database representation.
func fromDomain(aggregate *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:        aggregate.ID().Bytes(),
		Phone:     aggregate.Phone().String(),
		Name:      aggregate.Name(),
		Email:     aggregate.Email(),
		Status:    aggregate.Status().String(),
		CreatedAt: aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a customer domain aggregate.
func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	phone, err := kernel.NewPhone(dto.Phone)
	if err != nil {
		return nil, err
	}

	status, err := customer.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return customer.RestoreCustomer(id, phone, dto.Name, dto.Email, status, dto.CreatedAt)
}
