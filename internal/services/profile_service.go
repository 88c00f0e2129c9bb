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
	"tutorlift_backend/internal/validator"
)

type ProfileService interface {
	GetStudent(ctx context.Context, userID string) (*dto.StudentResponse, error)
	CreateStudent(ctx context.Context, userID, email string, req *dto.CreateStudentRequest) (*dto.StudentResponse, error)
	UpdateStudent(ctx context.Context, userID string, req *dto.UpdateStudentRequest) (*dto.StudentResponse, error)

	GetTutor(ctx context.Context, userID string) (*dto.TutorResponse, error)
	CreateTutor(ctx context.Context, userID string, req *dto.CreateTutorRequest) (*dto.TutorResponse, error)
	UpdateTutor(ctx context.Context, userID string, req *dto.UpdateTutorRequest) (*dto.TutorResponse, error)
}

type ProfileServiceImpl struct {
	profiles repositories.ProfileRepository
	courses  repositories.CourseRepository
	identity clients.IdentityService
	geocoder clients.GeocodingService
	payments clients.PaymentService
}

func NewProfileService(
	profiles repositories.ProfileRepository,
	courses repositories.CourseRepository,
	identity clients.IdentityService,
	geocoder clients.GeocodingService,
	payments clients.PaymentService,
) ProfileService {
	return &ProfileServiceImpl{
		profiles: profiles,
		courses:  courses,
		identity: identity,
		geocoder: geocoder,
		payments: payments,
	}
}

func (s *ProfileServiceImpl) GetStudent(ctx context.Context, userID string) (*dto.StudentResponse, error) {
	student, err := s.profiles.FindStudentByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.StudentResponseFrom(student), nil
}

func (s *ProfileServiceImpl) CreateStudent(ctx context.Context, userID, email string, req *dto.CreateStudentRequest) (*dto.StudentResponse, error) {
	if !validator.IsValidName(req.FirstName) {
		return nil, apperrors.ErrInvalidFirstName
	}
	if !validator.IsValidName(req.LastName) {
		return nil, apperrors.ErrInvalidLastName
	}
	if req.Headline != nil && !validator.IsValidHeadline(*req.Headline) {
		return nil, apperrors.ErrInvalidHeadline
	}

	if _, err := s.profiles.FindStudentByID(ctx, userID); err == nil {
		return nil, apperrors.ErrProfileExists
	} else if !errors.Is(err, repositories.ErrProfileNotFound) {
		return nil, apperrors.InternalError(err)
	}

	customerID, err := s.payments.CreateCustomer(ctx, email, fmt.Sprintf("user %s", userID))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	student := &models.Student{
		ID:                   userID,
		PictureURL:           req.PictureURL,
		Email:                email,
		FirstName:            req.FirstName,
		LastName:             req.LastName,
		Headline:             req.Headline,
		DefaultPaymentMethod: models.PaymentMethodCash,
		UserType:             models.UserTypeStudent,
		StripeID:             customerID,
	}

	if err := s.profiles.CreateStudent(ctx, &models.User{ID: userID}, student); err != nil {
		if errors.Is(err, repositories.ErrProfileAlreadyExists) {
			return nil, apperrors.ErrProfileExists
		}
		return nil, apperrors.InternalError(err)
	}

	logger.FromContext(ctx).Info("student profile created", "user_id", userID)
	return dto.StudentResponseFrom(student), nil
}

func (s *ProfileServiceImpl) UpdateStudent(ctx context.Context, userID string, req *dto.UpdateStudentRequest) (*dto.StudentResponse, error) {
	student, err := s.profiles.FindStudentByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	changes, err := applyStudentUpdate(student, req)
	if err != nil {
		return nil, err
	}

	// Shared fields cascade to the tutor profile when one exists, so
	// both rows go out in the same write.
	var tutor *models.Tutor
	if changes.Shared && student.UserType == models.UserTypeTutor {
		tutor, err = s.profiles.FindTutorByID(ctx, userID)
		if err != nil && !errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.InternalError(err)
		}
		if tutor != nil {
			mirrorSharedToTutor(student, tutor)
		}
	}

	// The identity provider is the source of truth for login email, so
	// it must accept the change before anything is committed here.
	if changes.EmailChanged {
		if err := s.pushEmailChange(ctx, userID, student.Email); err != nil {
			return nil, err
		}
	}

	if err := s.profiles.SaveProfiles(ctx, student, tutor); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.StudentResponseFrom(student), nil
}

func (s *ProfileServiceImpl) GetTutor(ctx context.Context, userID string) (*dto.TutorResponse, error) {
	tutor, err := s.profiles.FindTutorByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.TutorResponseFrom(tutor), nil
}

func (s *ProfileServiceImpl) CreateTutor(ctx context.Context, userID string, req *dto.CreateTutorRequest) (*dto.TutorResponse, error) {
	student, err := s.profiles.FindStudentByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrStudentRequired
		}
		return nil, apperrors.InternalError(err)
	}

	if _, err := s.profiles.FindTutorByID(ctx, userID); err == nil {
		return nil, apperrors.ErrProfileExists
	} else if !errors.Is(err, repositories.ErrProfileNotFound) {
		return nil, apperrors.InternalError(err)
	}

	if !validator.IsValidPostalCode(req.PostalCode) {
		return nil, apperrors.ErrInvalidPostalCode
	}
	if req.Bio != nil && !validator.IsValidBio(*req.Bio) {
		return nil, apperrors.ErrInvalidBio
	}
	if req.Rate != nil && !validator.IsValidRate(*req.Rate) {
		return nil, apperrors.ErrInvalidRate
	}
	if err := s.validateCourses(ctx, req.Courses); err != nil {
		return nil, err
	}

	postal := validator.NormalizePostalCode(req.PostalCode)
	tutor := &models.Tutor{
		ID:               userID,
		PictureURL:       student.PictureURL,
		Email:            student.Email,
		FirstName:        student.FirstName,
		LastName:         student.LastName,
		Headline:         student.Headline,
		Bio:              req.Bio,
		PostalCode:       &postal,
		Rate:             req.Rate,
		Courses:          req.Courses,
		IsOnlineLesson:   req.IsOnlineLesson,
		IsInPersonLesson: req.IsInPersonLesson,
		// New tutors always start visible.
		IsHidden:     false,
		IsSearchable: true,
	}
	if err := s.geocodeInto(ctx, tutor, postal); err != nil {
		return nil, err
	}

	student.UserType = models.UserTypeTutor

	if err := s.profiles.CreateTutor(ctx, tutor, student); err != nil {
		if errors.Is(err, repositories.ErrProfileAlreadyExists) {
			return nil, apperrors.ErrProfileExists
		}
		return nil, apperrors.InternalError(err)
	}

	logger.FromContext(ctx).Info("tutor profile created", "user_id", userID)
	return dto.TutorResponseFrom(tutor), nil
}

func (s *ProfileServiceImpl) UpdateTutor(ctx context.Context, userID string, req *dto.UpdateTutorRequest) (*dto.TutorResponse, error) {
	tutor, err := s.profiles.FindTutorByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Courses != nil {
		if err := s.validateCourses(ctx, *req.Courses); err != nil {
			return nil, err
		}
	}

	changes, err := applyTutorUpdate(tutor, req)
	if err != nil {
		return nil, err
	}

	if changes.PostalChanged {
		if err := s.geocodeInto(ctx, tutor, *tutor.PostalCode); err != nil {
			return nil, err
		}
	}

	tutor.IsSearchable = IsSearchable(tutor)

	var student *models.Student
	if changes.Shared {
		student, err = s.profiles.FindStudentByID(ctx, userID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		mirrorSharedToStudent(tutor, student)
	}

	if changes.EmailChanged {
		if err := s.pushEmailChange(ctx, userID, tutor.Email); err != nil {
			return nil, err
		}
	}

	if err := s.profiles.SaveProfiles(ctx, student, tutor); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.TutorResponseFrom(tutor), nil
}

// pushEmailChange updates the login email at the identity provider and
// drops its verified flag. A provider rejection means the address is
// unusable, which is the caller's fault.
func (s *ProfileServiceImpl) pushEmailChange(ctx context.Context, userID, email string) error {
	verified := false
	update := clients.IdentityUpdate{Email: &email, EmailVerified: &verified}
	if err := s.identity.UpdateUser(ctx, userID, update); err != nil {
		return providerFault(err, apperrors.ErrInvalidEmail)
	}
	return nil
}

// geocodeInto resolves the postal code and stamps city, province and
// coordinates onto the tutor. No geocoder result means the code does not
// exist even though it parses.
func (s *ProfileServiceImpl) geocodeInto(ctx context.Context, tutor *models.Tutor, postalCode string) error {
	loc, err := s.geocoder.Geocode(ctx, postalCode)
	if err != nil {
		return providerFault(err, apperrors.ErrInvalidPostalCode)
	}
	if loc == nil {
		return apperrors.ErrInvalidPostalCode
	}

	tutor.Latitude = &loc.Latitude
	tutor.Longitude = &loc.Longitude
	tutor.City = nil
	if loc.City != "" {
		tutor.City = &loc.City
	}
	tutor.Province = nil
	if loc.Province != "" {
		tutor.Province = &loc.Province
	}
	return nil
}

func (s *ProfileServiceImpl) validateCourses(ctx context.Context, names []string) error {
	for _, name := range names {
		if _, err := s.courses.FindByName(ctx, name); err != nil {
			if errors.Is(err, repositories.ErrCourseNotFound) {
				return apperrors.ErrInvalidCourse.WithDetails(name)
			}
			return apperrors.InternalError(err)
		}
	}
	return nil
}

// providerFault maps an external provider error: 4xx responses become
// the given client error, everything else is internal.
func providerFault(err error, clientErr *apperrors.AppError) error {
	var pErr *clients.ProviderError
	if errors.As(err, &pErr) && pErr.ClientFault() {
		return clientErr.WithError(err)
	}
	return apperrors.InternalError(err)
}
