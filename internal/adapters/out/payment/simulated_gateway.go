// Package payment provides the outbound adapter for the payment provider.
// The shipped gateway is simulated: it issues checkout sessions locally and
// lets tests and local environments flip them to paid. A real provider
// adapter implements the same port.
package payment

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"autoparts/internal/core/domain/model/order"
	"autoparts/internal/core/ports"
	"autoparts/internal/pkg/errs"

	"github.com/google/uuid"
)

type session struct {
	paid       bool
	paymentRef string
}

// SimulatedGateway implements ports.PaymentGateway in memory.
type SimulatedGateway struct {
	checkoutBaseURL string
	logger          *slog.Logger

	mu       sync.Mutex
	sessions map[string]*session
}

// NewSimulatedGateway creates a gateway issuing checkout URLs under the
// given base URL.
func NewSimulatedGateway(checkoutBaseURL string, logger *slog.Logger) *SimulatedGateway {
	return &SimulatedGateway{
		checkoutBaseURL: strings.TrimRight(checkoutBaseURL, "/"),
		logger:          logger.With("component", "simulated_payment_gateway"),
		sessions:        make(map[string]*session),
	}
}

// CreateSession creates a checkout session for the order's total.
// The session starts unpaid; MarkPaid or the provider webhook settles it.
func (g *SimulatedGateway) CreateSession(ctx context.Context, aggregate *order.Order) (ports.PaymentSession, error) {
	if err := aggregate.Validate(); err != nil {
		return ports.PaymentSession{}, err
	}

	sessionID := "cs_sim_" + strings.ReplaceAll(uuid.NewString(), "-", "")

	g.mu.Lock()
	g.sessions[sessionID] = &session{}
	g.mu.Unlock()

	g.logger.InfoContext(ctx, "Checkout session created",
		"session_id", sessionID,
		"order_id", aggregate.ID().String(),
		"total", aggregate.Total().String(),
	)

	return ports.PaymentSession{
		URL:       fmt.Sprintf("%s/checkout/%s", g.checkoutBaseURL, sessionID),
		SessionID: sessionID,
	}, nil
}

// CheckStatus reports whether the session has been paid.
func (g *SimulatedGateway) CheckStatus(_ context.Context, sessionID string) (ports.PaymentStatus, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	s, ok := g.sessions[sessionID]
	if !ok {
		return ports.PaymentStatus{}, errs.NewObjectNotFoundError("payment_session_id", sessionID)
	}

	return ports.PaymentStatus{
		Paid:       s.paid,
		PaymentRef: s.paymentRef,
	}, nil
}

// MarkPaid settles a session, simulating the customer completing checkout.
// Returns the provider payment reference.
func (g *SimulatedGateway) MarkPaid(sessionID string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	s, ok := g.sessions[sessionID]
	if !ok {
		return "", errs.NewObjectNotFoundError("payment_session_id", sessionID)
	}

	if !s.paid {
		s.paid = true
		s.paymentRef = "py_sim_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	}

	return s.paymentRef, nil
}
