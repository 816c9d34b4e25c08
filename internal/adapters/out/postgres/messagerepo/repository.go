package messagerepo

import (
	"context"

	"autoparts/internal/core/domain/model/kernel"
	"autoparts/internal/core/domain/model/message"
	"autoparts/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormMessageRepository implements MessageRepository using GORM.
type GormMessageRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormMessageRepository creates a new GORM message repository.
func NewGormMessageRepository(db *gorm.DB, tracker aggregateTracker) *GormMessageRepository {
	return &GormMessageRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add appends a message to the conversation log.
func (r *GormMessageRepository) Add(ctx context.Context, aggregate *message.Message) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewStoreUnavailableError("add message", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetConversation retrieves up to limit messages of one customer, oldest
// first. The newest messages win when the conversation exceeds the limit.
func (r *GormMessageRepository) GetConversation(
	ctx context.Context,
	customerID kernel.UUID,
	limit int,
) ([]*message.Message, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []MessageDTO
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&dtos, "customer_id = ?", customerID.Bytes()).Error
	if err != nil {
		return nil, errs.NewStoreUnavailableError("get conversation", err)
	}

	messages := make([]*message.Message, 0, len(dtos))
	for i := len(dtos) - 1; i >= 0; i-- {
		aggregate, convErr := toDomain(dtos[i])
		if convErr != nil {
			return nil, convErr
		}
		messages = append(messages, aggregate)
	}

	return messages, nil
}
