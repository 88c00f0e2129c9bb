package services

import (
	"gorm.io/gorm"

	"tutorlift_backend/internal/clients"
	"tutorlift_backend/internal/config"
	"tutorlift_backend/internal/repositories"
)

// ServiceContainer bundles every service for wiring at startup.
type ServiceContainer struct {
	Profile ProfileService
	Search  SearchService
	Course  CourseService
	Payment PaymentService
}

func NewServiceContainer(db *gorm.DB, ext *clients.Clients, cfg *config.Config) *ServiceContainer {
	profileRepo := repositories.NewProfileRepository(db)
	courseRepo := repositories.NewCourseRepository(db)

	return &ServiceContainer{
		Profile: NewProfileService(profileRepo, courseRepo, ext.Identity, ext.Geocoder, ext.Payments),
		Search:  NewSearchService(profileRepo, courseRepo, cfg),
		Course:  NewCourseService(courseRepo, cfg),
		Payment: NewPaymentService(profileRepo, ext.Payments),
	}
}
