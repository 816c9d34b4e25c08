package orderrepo

import (
	"context"
	"errors"
	"time"

	"autoparts/internal/core/domain/model/kernel"
	"autoparts/internal/core/domain/model/order"
	"autoparts/internal/pkg/errs"

	"gorm.io/gorm"
)

// Columns an order update is allowed to touch. Identity, line items and
// creation data are immutable after Add.
var updatableColumns = []string{
	"status", "payment_ref", "shipping_address", "updated_at", "payment_confirmed_at",
}

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// NextSaleNumber allocates the next sale number from the database sequence.
// nextval is atomic, so concurrent creations always get distinct numbers;
// rolled-back creations leave gaps, which is fine.
func (r *GormOrderRepository) NextSaleNumber(ctx context.Context) (kernel.SaleNumber, error) {
	var sequence int64
	if err := r.db.WithContext(ctx).Raw("SELECT nextval('sale_numbers')").Scan(&sequence).Error; err != nil {
		return kernel.SaleNumber{}, errs.NewStoreUnavailableError("next sale number", err)
	}

	return kernel.NewSaleNumber(sequence)
}

// Add saves a new order to the database together with its line items.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewStoreUnavailableError("add order", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database.
// Line items are immutable after creation and are not rewritten.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select(updatableColumns).
		Updates(&dto)
	if result.Error != nil {
		return errs.NewStoreUnavailableError("update order", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).Preload("LineItems").First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, errs.NewStoreUnavailableError("get order", err)
	}

	return toDomain(dto)
}

// GetByPaymentSession retrieves the order a payment session was issued for.
func (r *GormOrderRepository) GetByPaymentSession(ctx context.Context, sessionID string) (*order.Order, error) {
	var dto OrderDTO
	err := r.db.WithContext(ctx).Preload("LineItems").First(&dto, "payment_ref = ?", sessionID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("payment_session_id", sessionID)
		}
		return nil, errs.NewStoreUnavailableError("get order by payment session", err)
	}

	return toDomain(dto)
}

// GetAllInStatus retrieves all orders in the given status, oldest first.
func (r *GormOrderRepository) GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("LineItems").
		Order("created_at").
		Find(&dtos, "status = ?", status.String()).Error
	if err != nil {
		return nil, errs.NewStoreUnavailableError("get orders in status", err)
	}

	return toDomainSlice(dtos)
}

// GetByCustomer retrieves all orders of one customer, newest first.
func (r *GormOrderRepository) GetByCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("LineItems").
		Order("created_at DESC").
		Find(&dtos, "customer_id = ?", customerID.Bytes()).Error
	if err != nil {
		return nil, errs.NewStoreUnavailableError("get orders by customer", err)
	}

	return toDomainSlice(dtos)
}

// GetByCreatedRange retrieves orders created within [from, to], bounds
// inclusive, oldest first.
func (r *GormOrderRepository) GetByCreatedRange(ctx context.Context, from, to time.Time) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("LineItems").
		Order("created_at").
		Find(&dtos, "created_at >= ? AND created_at <= ?", from, to).Error
	if err != nil {
		return nil, errs.NewStoreUnavailableError("get orders by created range", err)
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, aggregate)
	}

	return orders, nil
}
