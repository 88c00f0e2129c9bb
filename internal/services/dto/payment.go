package dto

import "tutorlift_backend/internal/models"

// CreatePaymentRequest replaces the caller's stored card with the one
// represented by the provider token.
type CreatePaymentRequest struct {
	Token string `json:"token" validate:"required"`
}

type PaymentMethodResponse struct {
	PaymentMethod *models.PaymentMethod `json:"paymentMethod,omitempty"`
}
