// Package whatsapp provides the outbound adapters for the messaging channel:
// a messenger that delivers replies and the keyword-based reply generator.
// The shipped messenger is a stub that logs instead of calling a provider;
// a Twilio-style adapter implements the same port.
package whatsapp

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"autoparts/internal/core/ports"

	"github.com/google/uuid"
)

// StubMessenger implements ports.Messenger without an external provider.
// Sent messages are logged and assigned a synthetic provider identifier,
// which keeps the conversation log coherent in local environments.
type StubMessenger struct {
	logger *slog.Logger

	mu   sync.Mutex
	sent []ports.OutgoingMessage
}

// NewStubMessenger creates a messenger that records instead of delivering.
func NewStubMessenger(logger *slog.Logger) *StubMessenger {
	return &StubMessenger{
		logger: logger.With("component", "stub_messenger"),
	}
}

// Send records the message and returns a synthetic provider message ID.
func (m *StubMessenger) Send(ctx context.Context, msg ports.OutgoingMessage) (string, error) {
	m.mu.Lock()
	m.sent = append(m.sent, msg)
	m.mu.Unlock()

	providerID := "SM_sim_" + strings.ReplaceAll(uuid.NewString(), "-", "")

	m.logger.InfoContext(ctx, "Outgoing message",
		"phone", msg.Phone.String(),
		"provider_message_id", providerID,
		"has_media", msg.MediaURL != "",
	)

	return providerID, nil
}

// Sent returns a copy of everything sent so far.
func (m *StubMessenger) Sent() []ports.OutgoingMessage {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]ports.OutgoingMessage, len(m.sent))
	copy(out, m.sent)
	return out
}
