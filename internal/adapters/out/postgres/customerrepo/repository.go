package customerrepo

import (
	"context"
	"errors"

	"autoparts/internal/core/domain/model/customer"
	"autoparts/internal/core/domain/model/kernel"
	"autoparts/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCustomerRepository implements CustomerRepository using GORM.
type GormCustomerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCustomerRepository creates a new GORM customer repository.
func NewGormCustomerRepository(db *gorm.DB, tracker aggregateTracker) *GormCustomerRepository {
	return &GormCustomerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Upsert inserts the customer or, on a phone conflict, refreshes the
// existing record's name, email and status while keeping its identifier.
// Returns the persisted customer, re-read so the caller always holds the
// canonical row.
func (r *GormCustomerRepository) Upsert(ctx context.Context, aggregate *customer.Customer) (*customer.Customer, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(aggregate)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "phone"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "email", "status"}),
	}).Create(&dto).Error
	if err != nil {
		return nil, errs.NewStoreUnavailableError("upsert customer", err)
	}

	persisted, err := r.GetByPhone(ctx, aggregate.Phone())
	if err != nil {
		return nil, err
	}

	r.tracker.TrackAggregate(persisted.ID(), persisted)
	return persisted, nil
}

// Update persists changes to an existing customer.
func (r *GormCustomerRepository) Update(ctx context.Context, aggregate *customer.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&CustomerDTO{}).
		Where("id = ?", dto.ID).
		Select("name", "email", "status").
		Updates(&dto)
	if result.Error != nil {
		return errs.NewStoreUnavailableError("update customer", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("customer", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a customer by ID.
func (r *GormCustomerRepository) Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CustomerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("customer", id.String())
		}
		return nil, errs.NewStoreUnavailableError("get customer", err)
	}

	return toDomain(dto)
}

// GetByPhone retrieves a customer by phone number.
func (r *GormCustomerRepository) GetByPhone(ctx context.Context, phone kernel.Phone) (*customer.Customer, error) {
	if err := phone.Validate(); err != nil {
		return nil, err
	}

	var dto CustomerDTO
	if err := r.db.WithContext(ctx).First(&dto, "phone = ?", phone.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("phone", phone.String())
		}
		return nil, errs.NewStoreUnavailableError("get customer by phone", err)
	}

	return toDomain(dto)
}

// GetAll retrieves all customers, newest first.
func (r *GormCustomerRepository) GetAll(ctx context.Context) ([]*customer.Customer, error) {
	var dtos []CustomerDTO
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&dtos).Error; err != nil {
		return nil, errs.NewStoreUnavailableError("get all customers", err)
	}

	customers := make([]*customer.Customer, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		customers = append(customers, aggregate)
	}

	return customers, nil
}
