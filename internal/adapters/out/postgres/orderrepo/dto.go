// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"autoparts/internal/core/domain/model/kernel"
	"autoparts/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Indexed for the hot lookups: funnel listings by status, webhook resolution
// by payment session and per-customer history.
type OrderDTO struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey"`
	SaleNumber         int64           `gorm:"uniqueIndex"`
	CustomerID         uuid.UUID       `gorm:"type:uuid;index"`
	LineItems          []LineItemDTO   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Total              decimal.Decimal `gorm:"type:numeric(12,2)"`
	ShippingAddress    string
	PaymentRef         string `gorm:"index"`
	Status             string `gorm:"index"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
	PaymentConfirmedAt *time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// LineItemDTO represents one order line in its own table. Line items are
// immutable after creation, so they are written once with the order.
type LineItemDTO struct {
	ID        uint      `gorm:"primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	SKU       string
	Quantity  int
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2)"`
}

// TableName specifies the database table name for order lines.
func (LineItemDTO) TableName() string {
	return "order_line_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]LineItemDTO, 0, len(aggregate.LineItems()))
	for _, item := range aggregate.LineItems() {
		items = append(items, LineItemDTO{
			OrderID:   aggregate.ID().Bytes(),
			SKU:       item.SKU(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice(),
		})
	}

	return OrderDTO{
		ID:                 aggregate.ID().Bytes(),
		SaleNumber:         aggregate.SaleNumber().Sequence(),
		CustomerID:         aggregate.CustomerID().Bytes(),
		LineItems:          items,
		Total:              aggregate.Total(),
		ShippingAddress:    aggregate.ShippingAddress(),
		PaymentRef:         aggregate.PaymentRef(),
		Status:             aggregate.Status().String(),
		CreatedAt:          aggregate.CreatedAt(),
		UpdatedAt:          aggregate.UpdatedAt(),
		PaymentConfirmedAt: aggregate.PaymentConfirmedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including line items using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	saleNumber, err := kernel.NewSaleNumber(dto.SaleNumber)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(dto.LineItems))
	for _, itemDTO := range dto.LineItems {
		item, itemErr := order.NewLineItem(itemDTO.SKU, itemDTO.Quantity, itemDTO.UnitPrice)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		saleNumber,
		customerID,
		items,
		dto.ShippingAddress,
		dto.PaymentRef,
		status,
		dto.CreatedAt,
		dto.UpdatedAt,
		dto.PaymentConfirmedAt,
	)
}
