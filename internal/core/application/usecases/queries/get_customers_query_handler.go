package queries

import (
	"context"
	"time"

	"autoparts/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCustomersQueryHandler lists registered customers from the database,
// counting each customer's orders in the same pass.
type GetCustomersQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomersQueryHandler creates a handler for customer listings.
// Requires a GORM database connection for query execution.
func NewGetCustomersQueryHandler(db *gorm.DB) GetCustomersQueryHandler {
	return GetCustomersQueryHandler{db: db}
}

// Handle executes the query and returns all customers, newest first.
func (h GetCustomersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomersQuery,
) ([]GetCustomersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			c.id,
			c.phone,
			c.name,
			c.email,
			c.status,
			COUNT(o.id) AS order_count,
			c.created_at
		FROM customers c
		LEFT JOIN orders o ON o.customer_id = c.id
		GROUP BY c.id, c.phone, c.name, c.email, c.status, c.created_at
		ORDER BY c.created_at DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	responses := make([]GetCustomersQueryResponse, 0)

	for rows.Next() {
		var (
			id         uuid.UUID
			phone      string
			name       string
			email      string
			status     string
			orderCount int
			createdAt  time.Time
		)

		if err = rows.Scan(&id, &phone, &name, &email, &status, &orderCount, &createdAt); err != nil {
			return nil, err
		}

		customerID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		responses = append(responses, GetCustomersQueryResponse{
			ID:         customerID,
			Phone:      phone,
			Name:       name,
			Email:      email,
			Status:     status,
			OrderCount: orderCount,
			CreatedAt:  createdAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return responses, nil
}
