package http

import (
	"time"

	"github.com/shopspring/decimal"
)

// Error is the JSON error envelope returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// LineItemRequest is one quoted line in an order creation request.
type LineItemRequest struct {
	SKU       string          `json:"sku"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	CustomerID      string            `json:"customer_id"`
	ShippingAddress string            `json:"shipping_address"`
	Items           []LineItemRequest `json:"items"`
}

// CreateOrderResponse returns the identifier of the newly opened order.
type CreateOrderResponse struct {
	ID string `json:"id"`
}

// ChangeStatusRequest is the body of POST /api/v1/orders/:id/status.
type ChangeStatusRequest struct {
	Status string `json:"status"`
}

// PaymentLinkResponse is the checkout session issued for an order.
type PaymentLinkResponse struct {
	URL       string `json:"url"`
	SessionID string `json:"session_id"`
}

// FunnelOrderResponse is one row of the sales funnel listing.
type FunnelOrderResponse struct {
	ID           string          `json:"id"`
	SaleNumber   string          `json:"sale_number"`
	CustomerID   string          `json:"customer_id"`
	CustomerName string          `json:"customer_name"`
	Status       string          `json:"status"`
	Total        decimal.Decimal `json:"total"`
	PaymentRef   string          `json:"payment_ref,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// PickListOrderResponse is one row of the warehouse pick list.
type PickListOrderResponse struct {
	ID              string          `json:"id"`
	SaleNumber      string          `json:"sale_number"`
	CustomerID      string          `json:"customer_id"`
	Pieces          int             `json:"pieces"`
	Total           decimal.Decimal `json:"total"`
	ShippingAddress string          `json:"shipping_address,omitempty"`
	PaidAt          *time.Time      `json:"paid_at,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

// PickListResponse is the pick list projection with warehouse totals.
type PickListResponse struct {
	Orders          []PickListOrderResponse `json:"orders"`
	TotalPieces     int                     `json:"total_pieces"`
	ShippableOrders int                     `json:"shippable_orders"`
}

// CustomerResponse is one row of the customer listing.
type CustomerResponse struct {
	ID         string    `json:"id"`
	Phone      string    `json:"phone"`
	Name       string    `json:"name"`
	Email      string    `json:"email,omitempty"`
	Status     string    `json:"status"`
	OrderCount int       `json:"order_count"`
	CreatedAt  time.Time `json:"created_at"`
}

// ConversationMessageResponse is one message of a conversation thread.
type ConversationMessageResponse struct {
	ID                string    `json:"id"`
	Direction         string    `json:"direction"`
	Text              string    `json:"text"`
	ProviderMessageID string    `json:"provider_message_id,omitempty"`
	MediaURL          string    `json:"media_url,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

// PaymentWebhookRequest is the payment provider's event notification.
// Only checkout.session.completed events are acted on.
type PaymentWebhookRequest struct {
	Type      string `json:"type"`
	SessionID string `json:"session_id"`
}

// WhatsAppWebhookRequest is the messaging provider's inbound message
// notification, mirroring the Twilio field names.
type WhatsAppWebhookRequest struct {
	From        string `json:"From"`
	Body        string `json:"Body"`
	MessageSid  string `json:"MessageSid"`
	ProfileName string `json:"ProfileName"`
}

// WhatsAppWebhookResponse carries the generated reply back to the provider.
type WhatsAppWebhookResponse struct {
	Reply string `json:"reply"`
}
