package queries

import (
	"context"

	"autoparts/internal/core/domain/model/order"
	"autoparts/internal/core/domain/services"
	"autoparts/internal/core/ports"
)

// GetPickListQueryHandler builds the warehouse pick list projection.
//
// Unlike the other read handlers this one loads full aggregates instead of
// raw rows: the projection needs line item piece counts, and deriving the
// list from aggregates keeps the FIFO and visibility rules in one place,
// the fulfillment projector.
type GetPickListQueryHandler struct {
	orderRepo ports.OrderRepository
	projector services.FulfillmentProjector
}

// NewGetPickListQueryHandler creates a handler for pick list queries.
func NewGetPickListQueryHandler(
	orderRepo ports.OrderRepository,
	projector services.FulfillmentProjector,
) GetPickListQueryHandler {
	return GetPickListQueryHandler{
		orderRepo: orderRepo,
		projector: projector,
	}
}

// Handle executes the query and returns the pick list, oldest order first.
func (h GetPickListQueryHandler) Handle(
	ctx context.Context,
	query GetPickListQuery,
) (GetPickListQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPickListQueryResponse{}, err
	}

	paid, err := h.orderRepo.GetAllInStatus(ctx, order.OrderPending)
	if err != nil {
		return GetPickListQueryResponse{}, err
	}

	pending := h.projector.PendingPickList(paid)

	response := GetPickListQueryResponse{
		Orders:          make([]PickListOrder, 0, len(pending)),
		TotalPieces:     h.projector.AggregatePieceCount(paid),
		ShippableOrders: h.projector.ShippableCount(paid),
	}

	for _, aggregate := range pending {
		response.Orders = append(response.Orders, PickListOrder{
			ID:              aggregate.ID(),
			SaleNumber:      aggregate.SaleNumber().String(),
			CustomerID:      aggregate.CustomerID(),
			Pieces:          aggregate.PieceCount(),
			Total:           aggregate.Total(),
			ShippingAddress: aggregate.ShippingAddress(),
			PaidAt:          aggregate.PaymentConfirmedAt(),
			CreatedAt:       aggregate.CreatedAt(),
		})
	}

	return response, nil
}
