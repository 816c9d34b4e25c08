// Package http provides the inbound HTTP adapter: the REST API for the
// back office plus the webhook endpoints for the payment and messaging
// providers. Handlers translate HTTP to commands and queries; all business
// rules live in the core.
package http

import (
	"errors"
	"net/http"
	"time"

	"autoparts/internal/core/application/usecases/commands"
	"autoparts/internal/core/application/usecases/queries"
	"autoparts/internal/core/domain/model/kernel"
	"autoparts/internal/core/domain/model/order"
	"autoparts/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// paymentSessionCompleted is the provider event that settles an order.
const paymentSessionCompleted = "checkout.session.completed"

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler    commands.CreateOrderCommandHandler
	changeStatusHandler   commands.ChangeOrderStatusCommandHandler
	paymentLinkHandler    commands.CreatePaymentLinkCommandHandler
	confirmPaymentHandler commands.ConfirmPaymentCommandHandler
	markFulfilledHandler  commands.MarkOrderFulfilledCommandHandler
	processMessageHandler commands.ProcessIncomingMessageCommandHandler

	// Query handlers
	salesFunnelHandler  queries.GetSalesFunnelQueryHandler
	pickListHandler     queries.GetPickListQueryHandler
	customersHandler    queries.GetCustomersQueryHandler
	conversationHandler queries.GetConversationQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	changeStatusHandler commands.ChangeOrderStatusCommandHandler,
	paymentLinkHandler commands.CreatePaymentLinkCommandHandler,
	confirmPaymentHandler commands.ConfirmPaymentCommandHandler,
	markFulfilledHandler commands.MarkOrderFulfilledCommandHandler,
	processMessageHandler commands.ProcessIncomingMessageCommandHandler,
	salesFunnelHandler queries.GetSalesFunnelQueryHandler,
	pickListHandler queries.GetPickListQueryHandler,
	customersHandler queries.GetCustomersQueryHandler,
	conversationHandler queries.GetConversationQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:    createOrderHandler,
		changeStatusHandler:   changeStatusHandler,
		paymentLinkHandler:    paymentLinkHandler,
		confirmPaymentHandler: confirmPaymentHandler,
		markFulfilledHandler:  markFulfilledHandler,
		processMessageHandler: processMessageHandler,
		salesFunnelHandler:    salesFunnelHandler,
		pickListHandler:       pickListHandler,
		customersHandler:      customersHandler,
		conversationHandler:   conversationHandler,
	}
}

// RegisterRoutes wires all endpoints into the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetSalesFunnel)
	api.POST("/orders/:id/status", s.ChangeOrderStatus)
	api.POST("/orders/:id/payment-link", s.CreatePaymentLink)
	api.POST("/orders/:id/fulfill", s.MarkOrderFulfilled)

	api.GET("/picklist", s.GetPickList)
	api.GET("/customers", s.GetCustomers)
	api.GET("/customers/:id/conversation", s.GetConversation)

	api.POST("/webhooks/payments", s.HandlePaymentWebhook)
	api.POST("/webhooks/whatsapp", s.HandleWhatsAppWebhook)
}

// CreateOrder handles POST /api/v1/orders - opens a new sales order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromString(request.CustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer id: "+err.Error())
	}

	items := make([]order.LineItem, 0, len(request.Items))
	for _, itemReq := range request.Items {
		item, itemErr := order.NewLineItem(itemReq.SKU, itemReq.Quantity, itemReq.UnitPrice)
		if itemErr != nil {
			return badRequest(ctx, "Invalid line item: "+itemErr.Error())
		}
		items = append(items, item)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, customerID, items, request.ShippingAddress)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{ID: orderID.String()})
}

// GetSalesFunnel handles GET /api/v1/orders - lists funnel orders.
// Supports optional status, customer_id, from and to query parameters;
// date bounds are inclusive RFC 3339 timestamps.
func (s *Server) GetSalesFunnel(ctx echo.Context) error {
	var filter queries.SalesFunnelFilter

	if raw := ctx.QueryParam("status"); raw != "" {
		status, err := order.StatusFromString(raw)
		if err != nil {
			return badRequest(ctx, "Invalid status: "+raw)
		}
		filter.Status = &status
	}

	if raw := ctx.QueryParam("customer_id"); raw != "" {
		customerID, err := kernel.UUIDFromString(raw)
		if err != nil {
			return badRequest(ctx, "Invalid customer id: "+raw)
		}
		filter.CustomerID = &customerID
	}

	if raw := ctx.QueryParam("from"); raw != "" {
		from, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return badRequest(ctx, "Invalid from timestamp: "+raw)
		}
		filter.From = &from
	}

	if raw := ctx.QueryParam("to"); raw != "" {
		to, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return badRequest(ctx, "Invalid to timestamp: "+raw)
		}
		filter.To = &to
	}

	query, err := queries.NewGetSalesFunnelQuery(filter)
	if err != nil {
		return badRequest(ctx, "Invalid filter: "+err.Error())
	}

	rows, err := s.salesFunnelHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]FunnelOrderResponse, len(rows))
	for i, row := range rows {
		response[i] = FunnelOrderResponse{
			ID:           row.ID.String(),
			SaleNumber:   row.SaleNumber,
			CustomerID:   row.CustomerID.String(),
			CustomerName: row.CustomerName,
			Status:       row.Status,
			Total:        row.Total,
			PaymentRef:   row.PaymentRef,
			CreatedAt:    row.CreatedAt,
			UpdatedAt:    row.UpdatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ChangeOrderStatus handles POST /api/v1/orders/:id/status - moves an order
// along the funnel.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var request ChangeStatusRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	target, err := order.StatusFromString(request.Status)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+request.Status)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, target)
	if err != nil {
		return badRequest(ctx, "Invalid status change: "+err.Error())
	}

	if err = s.changeStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreatePaymentLink handles POST /api/v1/orders/:id/payment-link - issues a
// checkout session and returns its URL.
func (s *Server) CreatePaymentLink(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewCreatePaymentLinkCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid payment link request: "+err.Error())
	}

	session, err := s.paymentLinkHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, PaymentLinkResponse{
		URL:       session.URL,
		SessionID: session.SessionID,
	})
}

// MarkOrderFulfilled handles POST /api/v1/orders/:id/fulfill - closes out a
// shipped order.
func (s *Server) MarkOrderFulfilled(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewMarkOrderFulfilledCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid fulfill request: "+err.Error())
	}

	if err = s.markFulfilledHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetPickList handles GET /api/v1/picklist - the warehouse pick list.
func (s *Server) GetPickList(ctx echo.Context) error {
	query := queries.NewGetPickListQuery()

	pickList, err := s.pickListHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := PickListResponse{
		Orders:          make([]PickListOrderResponse, len(pickList.Orders)),
		TotalPieces:     pickList.TotalPieces,
		ShippableOrders: pickList.ShippableOrders,
	}
	for i, row := range pickList.Orders {
		response.Orders[i] = PickListOrderResponse{
			ID:              row.ID.String(),
			SaleNumber:      row.SaleNumber,
			CustomerID:      row.CustomerID.String(),
			Pieces:          row.Pieces,
			Total:           row.Total,
			ShippingAddress: row.ShippingAddress,
			PaidAt:          row.PaidAt,
			CreatedAt:       row.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetCustomers handles GET /api/v1/customers - lists registered customers.
func (s *Server) GetCustomers(ctx echo.Context) error {
	query := queries.NewGetCustomersQuery()

	customers, err := s.customersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]CustomerResponse, len(customers))
	for i, row := range customers {
		response[i] = CustomerResponse{
			ID:         row.ID.String(),
			Phone:      row.Phone,
			Name:       row.Name,
			Email:      row.Email,
			Status:     row.Status,
			OrderCount: row.OrderCount,
			CreatedAt:  row.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetConversation handles GET /api/v1/customers/:id/conversation - one
// customer's message thread, oldest first.
func (s *Server) GetConversation(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid customer id")
	}

	query, err := queries.NewGetConversationQuery(customerID, 0)
	if err != nil {
		return badRequest(ctx, "Invalid conversation request: "+err.Error())
	}

	messages, err := s.conversationHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]ConversationMessageResponse, len(messages))
	for i, row := range messages {
		response[i] = ConversationMessageResponse{
			ID:                row.ID.String(),
			Direction:         row.Direction,
			Text:              row.Text,
			ProviderMessageID: row.ProviderMessageID,
			MediaURL:          row.MediaURL,
			CreatedAt:         row.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// HandlePaymentWebhook handles POST /api/v1/webhooks/payments - the payment
// provider's event notifications. Events other than session completion are
// acknowledged and ignored. A completion for an order that is already paid
// is treated as a duplicate notification and acknowledged.
func (s *Server) HandlePaymentWebhook(ctx echo.Context) error {
	var request PaymentWebhookRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	if request.Type != paymentSessionCompleted {
		return ctx.NoContent(http.StatusOK)
	}

	cmd, err := commands.NewConfirmPaymentCommand(request.SessionID)
	if err != nil {
		return badRequest(ctx, "Invalid webhook payload: "+err.Error())
	}

	if err = s.confirmPaymentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		if errors.Is(err, errs.ErrInvalidTransition) {
			return ctx.NoContent(http.StatusOK)
		}
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// HandleWhatsAppWebhook handles POST /api/v1/webhooks/whatsapp - inbound
// customer messages from the messaging provider.
func (s *Server) HandleWhatsAppWebhook(ctx echo.Context) error {
	var request WhatsAppWebhookRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	phone, err := kernel.NewPhone(request.From)
	if err != nil {
		return badRequest(ctx, "Invalid sender phone: "+err.Error())
	}

	cmd, err := commands.NewProcessIncomingMessageCommand(
		phone, request.Body, request.MessageSid, request.ProfileName,
	)
	if err != nil {
		return badRequest(ctx, "Invalid webhook payload: "+err.Error())
	}

	reply, err := s.processMessageHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, WhatsAppWebhookResponse{Reply: reply.Text})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// errorResponse maps core errors onto HTTP status codes: validation
// failures are 400, missing objects 404, lifecycle conflicts 409 and store
// outages 503.
func errorResponse(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrPreconditionFailed):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrStoreUnavailable):
		status = http.StatusServiceUnavailable
	}

	return ctx.JSON(status, Error{
		Code:    status,
		Message: err.Error(),
	})
}
