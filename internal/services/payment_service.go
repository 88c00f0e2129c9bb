package services

import (
	"context"
	"errors"
	"fmt"

	"tutorlift_backend/internal/apperrors"
	"tutorlift_backend/internal/clients"
	"tutorlift_backend/internal/logger"
	"tutorlift_backend/internal/models"
	"tutorlift_backend/internal/repositories"
	"tutorlift_backend/internal/services/dto"
)

// PaymentService manages the single stored card of a student. Card data
// lives at the payment provider; this service only keeps the customer
// and card references on the student row.
type PaymentService interface {
	GetPaymentMethod(ctx context.Context, userID string) (*dto.PaymentMethodResponse, error)
	ReplacePaymentMethod(ctx context.Context, userID string, req *dto.CreatePaymentRequest) (*dto.PaymentMethodResponse, error)
	DeletePaymentMethod(ctx context.Context, userID string) error
}

type PaymentServiceImpl struct {
	profiles repositories.ProfileRepository
	payments clients.PaymentService
}

func NewPaymentService(profiles repositories.ProfileRepository, payments clients.PaymentService) PaymentService {
	return &PaymentServiceImpl{profiles: profiles, payments: payments}
}

func (s *PaymentServiceImpl) GetPaymentMethod(ctx context.Context, userID string) (*dto.PaymentMethodResponse, error) {
	student, err := s.findStudent(ctx, userID)
	if err != nil {
		return nil, err
	}
	if student.CardID == nil {
		return nil, apperrors.ErrNotFound
	}

	card, err := s.payments.GetCard(ctx, student.StripeID, *student.CardID)
	if err != nil {
		return nil, providerFault(err, apperrors.ErrInvalidPayment)
	}
	return &dto.PaymentMethodResponse{PaymentMethod: paymentMethodFrom(card)}, nil
}

func (s *PaymentServiceImpl) ReplacePaymentMethod(ctx context.Context, userID string, req *dto.CreatePaymentRequest) (*dto.PaymentMethodResponse, error) {
	student, err := s.findStudent(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Accounts predating provider enrollment get their customer here.
	if student.StripeID == "" {
		customerID, err := s.payments.CreateCustomer(ctx, student.Email, fmt.Sprintf("user %s", userID))
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		student.StripeID = customerID
	}

	card, err := s.payments.CreateCard(ctx, student.StripeID, req.Token)
	if err != nil {
		if errors.Is(err, clients.ErrCardDeclined) {
			return nil, apperrors.ErrInvalidPayment.WithError(err)
		}
		return nil, providerFault(err, apperrors.ErrInvalidPayment)
	}

	// One card per student. The replaced card is detached best effort;
	// a dangling provider card costs nothing and can be cleaned later.
	if student.CardID != nil && *student.CardID != card.ID {
		if err := s.payments.DeleteCard(ctx, student.StripeID, *student.CardID); err != nil {
			logger.FromContext(ctx).Warn("failed to detach replaced card",
				"user_id", userID, "error", err)
		}
	}

	student.CardID = &card.ID
	if err := s.profiles.SaveProfiles(ctx, student, nil); err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Echo the card summary but not the provider token.
	method := paymentMethodFrom(card)
	method.TokenID = ""
	return &dto.PaymentMethodResponse{PaymentMethod: method}, nil
}

func (s *PaymentServiceImpl) DeletePaymentMethod(ctx context.Context, userID string) error {
	student, err := s.findStudent(ctx, userID)
	if err != nil {
		return err
	}
	if student.CardID == nil {
		return nil
	}

	if err := s.payments.DeleteCard(ctx, student.StripeID, *student.CardID); err != nil {
		// A card the provider no longer knows is already deleted.
		if !errors.Is(err, clients.ErrCardDeclined) {
			return providerFault(err, apperrors.ErrInvalidPayment)
		}
		logger.FromContext(ctx).Warn("card already missing at provider", "user_id", userID)
	}

	student.CardID = nil
	if err := s.profiles.SaveProfiles(ctx, student, nil); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *PaymentServiceImpl) findStudent(ctx context.Context, userID string) (*models.Student, error) {
	student, err := s.profiles.FindStudentByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return student, nil
}

func paymentMethodFrom(card *clients.Card) *models.PaymentMethod {
	return &models.PaymentMethod{
		TokenID:         card.ID,
		Brand:           card.Brand,
		Last4:           card.Last4,
		ExpirationMonth: card.ExpMonth,
		ExpirationYear:  card.ExpYear,
	}
}
