package services

import (
	"tutorlift_backend/internal/apperrors"
	"tutorlift_backend/internal/models"
	"tutorlift_backend/internal/services/dto"
	"tutorlift_backend/internal/validator"
)

// The student and tutor profiles of one user share their picture, email,
// name and headline. Updates stage changes on the loaded row first, then
// the service mirrors the shared fields across and writes both rows in
// one transaction.

// profileChanges summarizes what a staged update actually touched.
type profileChanges struct {
	Shared        bool
	EmailChanged  bool
	PostalChanged bool
}

func applyStudentUpdate(student *models.Student, req *dto.UpdateStudentRequest) (profileChanges, error) {
	var changes profileChanges

	if req.PictureURL != nil && !strPtrEqual(student.PictureURL, req.PictureURL) {
		student.PictureURL = req.PictureURL
		changes.Shared = true
	}
	if req.Email != nil {
		if !validator.IsValidEmail(*req.Email) {
			return changes, apperrors.ErrInvalidEmail
		}
		if *req.Email != student.Email {
			student.Email = *req.Email
			changes.Shared = true
			changes.EmailChanged = true
		}
	}
	if req.FirstName != nil {
		if !validator.IsValidName(*req.FirstName) {
			return changes, apperrors.ErrInvalidFirstName
		}
		if *req.FirstName != student.FirstName {
			student.FirstName = *req.FirstName
			changes.Shared = true
		}
	}
	if req.LastName != nil {
		if !validator.IsValidName(*req.LastName) {
			return changes, apperrors.ErrInvalidLastName
		}
		if *req.LastName != student.LastName {
			student.LastName = *req.LastName
			changes.Shared = true
		}
	}
	if req.Headline != nil {
		if !validator.IsValidHeadline(*req.Headline) {
			return changes, apperrors.ErrInvalidHeadline
		}
		if !strPtrEqual(student.Headline, req.Headline) {
			student.Headline = req.Headline
			changes.Shared = true
		}
	}
	if req.DefaultPaymentMethod != nil {
		switch *req.DefaultPaymentMethod {
		case models.PaymentMethodCard, models.PaymentMethodApplePay, models.PaymentMethodCash:
			student.DefaultPaymentMethod = *req.DefaultPaymentMethod
		default:
			return changes, apperrors.ErrInvalidPayment
		}
	}
	return changes, nil
}

// applyTutorUpdate stages req onto the tutor row. Course existence is
// checked by the caller before staging; everything else is checked here.
func applyTutorUpdate(tutor *models.Tutor, req *dto.UpdateTutorRequest) (profileChanges, error) {
	var changes profileChanges

	if req.PictureURL != nil && !strPtrEqual(tutor.PictureURL, req.PictureURL) {
		tutor.PictureURL = req.PictureURL
		changes.Shared = true
	}
	if req.Email != nil {
		if !validator.IsValidEmail(*req.Email) {
			return changes, apperrors.ErrInvalidEmail
		}
		if *req.Email != tutor.Email {
			tutor.Email = *req.Email
			changes.Shared = true
			changes.EmailChanged = true
		}
	}
	if req.FirstName != nil {
		if !validator.IsValidName(*req.FirstName) {
			return changes, apperrors.ErrInvalidFirstName
		}
		if *req.FirstName != tutor.FirstName {
			tutor.FirstName = *req.FirstName
			changes.Shared = true
		}
	}
	if req.LastName != nil {
		if !validator.IsValidName(*req.LastName) {
			return changes, apperrors.ErrInvalidLastName
		}
		if *req.LastName != tutor.LastName {
			tutor.LastName = *req.LastName
			changes.Shared = true
		}
	}
	if req.Headline != nil {
		if !validator.IsValidHeadline(*req.Headline) {
			return changes, apperrors.ErrInvalidHeadline
		}
		if !strPtrEqual(tutor.Headline, req.Headline) {
			tutor.Headline = req.Headline
			changes.Shared = true
		}
	}
	if req.Bio != nil {
		if !validator.IsValidBio(*req.Bio) {
			return changes, apperrors.ErrInvalidBio
		}
		tutor.Bio = req.Bio
	}
	if req.PostalCode != nil {
		if !validator.IsValidPostalCode(*req.PostalCode) {
			return changes, apperrors.ErrInvalidPostalCode
		}
		normalized := validator.NormalizePostalCode(*req.PostalCode)
		if tutor.PostalCode == nil || *tutor.PostalCode != normalized {
			tutor.PostalCode = &normalized
			changes.PostalChanged = true
		}
	}
	if req.Rate != nil {
		if !validator.IsValidRate(*req.Rate) {
			return changes, apperrors.ErrInvalidRate
		}
		tutor.Rate = req.Rate
	}
	if req.Courses != nil {
		tutor.Courses = *req.Courses
	}
	if req.IsOnlineLesson != nil {
		tutor.IsOnlineLesson = req.IsOnlineLesson
	}
	if req.IsInPersonLesson != nil {
		tutor.IsInPersonLesson = req.IsInPersonLesson
	}
	if req.IsHidden != nil {
		tutor.IsHidden = *req.IsHidden
	}
	return changes, nil
}

func mirrorSharedToTutor(student *models.Student, tutor *models.Tutor) {
	tutor.PictureURL = student.PictureURL
	tutor.Email = student.Email
	tutor.FirstName = student.FirstName
	tutor.LastName = student.LastName
	tutor.Headline = student.Headline
}

func mirrorSharedToStudent(tutor *models.Tutor, student *models.Student) {
	student.PictureURL = tutor.PictureURL
	student.Email = tutor.Email
	student.FirstName = tutor.FirstName
	student.LastName = tutor.LastName
	student.Headline = tutor.Headline
}

func strPtrEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
