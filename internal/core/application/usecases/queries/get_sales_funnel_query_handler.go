package queries

import (
	"context"
	"strings"
	"time"

	"autoparts/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetSalesFunnelQueryHandler lists funnel orders straight from the database.
// The projection joins orders with their customers so the back office sees
// who each sale belongs to without extra lookups.
type GetSalesFunnelQueryHandler struct {
	db *gorm.DB
}

// NewGetSalesFunnelQueryHandler creates a handler for funnel listings.
// Requires a GORM database connection for query execution.
func NewGetSalesFunnelQueryHandler(db *gorm.DB) GetSalesFunnelQueryHandler {
	return GetSalesFunnelQueryHandler{db: db}
}

// Handle executes the query. Filter dimensions that are set narrow the
// listing; date bounds are inclusive. Results are sorted by creation time
// so the funnel reads oldest to newest.
func (h GetSalesFunnelQueryHandler) Handle(
	ctx context.Context,
	query GetSalesFunnelQuery,
) ([]GetSalesFunnelQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlQuery := `
		SELECT
			o.id,
			o.sale_number,
			o.customer_id,
			c.name,
			o.status,
			o.total,
			o.payment_ref,
			o.created_at,
			o.updated_at
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
	`

	conditions := make([]string, 0, 4)
	args := make([]any, 0, 4)

	filter := query.Filter()
	if filter.Status != nil {
		conditions = append(conditions, "o.status = ?")
		args = append(args, filter.Status.String())
	}
	if filter.CustomerID != nil {
		conditions = append(conditions, "o.customer_id = ?")
		args = append(args, filter.CustomerID.String())
	}
	if filter.From != nil {
		conditions = append(conditions, "o.created_at >= ?")
		args = append(args, *filter.From)
	}
	if filter.To != nil {
		conditions = append(conditions, "o.created_at <= ?")
		args = append(args, *filter.To)
	}

	if len(conditions) > 0 {
		sqlQuery += " WHERE " + strings.Join(conditions, " AND ")
	}
	sqlQuery += " ORDER BY o.created_at"

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	responses := make([]GetSalesFunnelQueryResponse, 0)

	for rows.Next() {
		var (
			id           uuid.UUID
			saleSequence int64
			customerID   uuid.UUID
			customerName string
			status       string
			total        decimal.Decimal
			paymentRef   string
			createdAt    time.Time
			updatedAt    time.Time
		)

		if err = rows.Scan(
			&id,
			&saleSequence,
			&customerID,
			&customerName,
			&status,
			&total,
			&paymentRef,
			&createdAt,
			&updatedAt,
		); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		ownerID, idErr := kernel.UUIDFromBytes(customerID[:])
		if idErr != nil {
			return nil, idErr
		}

		saleNumber, numErr := kernel.NewSaleNumber(saleSequence)
		if numErr != nil {
			return nil, numErr
		}

		responses = append(responses, GetSalesFunnelQueryResponse{
			ID:           orderID,
			SaleNumber:   saleNumber.String(),
			CustomerID:   ownerID,
			CustomerName: customerName,
			Status:       status,
			Total:        total,
			PaymentRef:   paymentRef,
			CreatedAt:    createdAt,
			UpdatedAt:    updatedAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return responses, nil
}
