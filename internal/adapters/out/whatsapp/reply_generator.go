package whatsapp

import (
	"context"
	"fmt"
	"strings"

	"autoparts/internal/core/ports"
)

// Keyword groups the rule set matches against, lowercased.
var (
	priceKeywords        = []string{"precio", "costo", "cuanto", "cuánto"}
	availabilityKeywords = []string{"disponible", "tiene", "hay"}
)

// KeywordReplyGenerator implements ports.ReplyGenerator with a fixed rule
// set over Spanish keywords. Price questions ask for the vehicle details
// needed to quote, availability questions ask for the exact part, anything
// else gets a greeting.
type KeywordReplyGenerator struct{}

// NewKeywordReplyGenerator creates the keyword rule set.
func NewKeywordReplyGenerator() KeywordReplyGenerator {
	return KeywordReplyGenerator{}
}

// GenerateReply answers an inbound message. Price keywords win over
// availability keywords when both appear, matching how the store's staff
// triage questions.
func (g KeywordReplyGenerator) GenerateReply(_ context.Context, replyCtx ports.ReplyContext) (ports.Reply, error) {
	text := strings.ToLower(replyCtx.Text)

	if containsAny(text, priceKeywords) {
		return ports.Reply{
			Text: "Para cotizarte necesito los datos de tu auto: marca, modelo, año y versión. " +
				"¿Me los compartes junto con la pieza que buscas?",
		}, nil
	}

	if containsAny(text, availabilityKeywords) {
		return ports.Reply{
			Text: "¡Claro! Dime exactamente qué pieza necesitas y para qué auto, " +
				"y reviso la disponibilidad en el almacén.",
		}, nil
	}

	if replyCtx.PurchaseCount > 0 {
		return ports.Reply{
			Text: fmt.Sprintf(
				"¡Hola de nuevo, %s! Soy tu asistente de AutoPartes. ¿En qué te ayudo hoy?",
				replyCtx.Customer.Name(),
			),
		}, nil
	}

	return ports.Reply{
		Text: "¡Hola! Soy tu asistente de AutoPartes. Puedo cotizarte refacciones y " +
			"revisar disponibilidad. ¿Qué pieza buscas?",
	}, nil
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}
