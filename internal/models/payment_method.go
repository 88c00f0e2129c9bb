package models

// PaymentMethod is round-tripped to the payment provider and never
// persisted here; only the card id lands on the student row.
type PaymentMethod struct {
	// Provider card token, e.g. a Stripe source token.
	TokenID         string `json:"tokenId,omitempty"`
	Brand           string `json:"brand,omitempty"`
	Last4           string `json:"last4,omitempty"`
	ExpirationMonth int    `json:"expirationMonth,omitempty"`
	ExpirationYear  int    `json:"expirationYear,omitempty"`
}
