// Package messagerepo provides data transfer objects and mapping functions
// for the conversation log. Messages are append-only: there is no update
// path, only inserts and reads.
package messagerepo

import (
	"time"

	"autoparts/internal/core/domain/model/kernel"
	"autoparts/internal/core/domain/model/message"

	"github.com/google/uuid"
)

// MessageDTO represents the database structure for persisting messages.
type MessageDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID        uuid.UUID `gorm:"type:uuid;index"`
	Phone             string
	Direction         string
	Text              string
	ProviderMessageID string
	MediaURL          string
	CreatedAt         time.Time `gorm:"index"`
}

// TableName specifies the database table name for message entities.
func (MessageDTO) TableName() string {
	return "messages"
}

// fromDomain converts a message domain entity to its database representation.
func fromDomain(aggregate *message.Message) MessageDTO {
	return MessageDTO{
		ID:                aggregate.ID().Bytes(),
		CustomerID:        aggregate.CustomerID().Bytes(),
		Phone:             aggregate.Phone().String(),
		Direction:         aggregate.Direction().String(),
		Text:              aggregate.Text(),
		ProviderMessageID: aggregate.ProviderMessageID(),
		MediaURL:          aggregate.MediaURL(),
		CreatedAt:         aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a message domain entity.
func toDomain(dto MessageDTO) (*message.Message, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	phone, err := kernel.NewPhone(dto.Phone)
	if err != nil {
		return nil, err
	}

	direction, err := message.DirectionFromString(dto.Direction)
	if err != nil {
		return nil, err
	}

	return message.RestoreMessage(
		id,
		customerID,
		phone,
		dto.Text,
		direction,
		dto.ProviderMessageID,
		dto.MediaURL,
		dto.CreatedAt,
	)
}
