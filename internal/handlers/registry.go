package handlers

import (
	"tutorlift_backend/internal/services"
	"tutorlift_backend/internal/validator"
)

// AppHandlers bundles every HTTP handler for route registration.
type AppHandlers struct {
	Student *StudentHandler
	Tutor   *TutorHandler
	Course  *CourseHandler
	Payment *PaymentHandler
}

func NewAppHandlers(container *services.ServiceContainer) *AppHandlers {
	base := NewBaseHandler(validator.New())

	return &AppHandlers{
		Student: NewStudentHandler(base, container.Profile),
		Tutor:   NewTutorHandler(base, container.Profile, container.Search),
		Course:  NewCourseHandler(base, container.Course),
		Payment: NewPaymentHandler(base, container.Payment),
	}
}
