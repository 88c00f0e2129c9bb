package database

import (
	"fmt"

	"gorm.io/gorm"

	"tutorlift_backend/internal/models"
)

// AutoMigrate brings the schema up to date and seeds the course
// catalogue on an empty database.
func AutoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Student{},
		&models.Tutor{},
		&models.Course{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return seedCourses(db)
}

// seedCourses loads the Alberta high school catalogue once. Existing
// rows are left alone so operators can extend the catalogue by hand.
func seedCourses(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Course{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count courses: %w", err)
	}
	if count > 0 {
		return nil
	}

	courses := []models.Course{
		{Name: "Math 10C", Subject: "Mathematics"},
		{Name: "Math 20-1", Subject: "Mathematics"},
		{Name: "Math 20-2", Subject: "Mathematics"},
		{Name: "Math 30-1", Subject: "Mathematics"},
		{Name: "Math 30-2", Subject: "Mathematics"},
		{Name: "Math 31", Subject: "Mathematics"},
		{Name: "Science 10", Subject: "Science"},
		{Name: "Physics 20", Subject: "Physics"},
		{Name: "Physics 30", Subject: "Physics"},
		{Name: "Chemistry 20", Subject: "Chemistry"},
		{Name: "Chemistry 30", Subject: "Chemistry"},
		{Name: "Biology 20", Subject: "Biology"},
		{Name: "Biology 30", Subject: "Biology"},
		{Name: "English 10-1", Subject: "English"},
		{Name: "English 20-1", Subject: "English"},
		{Name: "English 30-1", Subject: "English"},
		{Name: "Social Studies 10-1", Subject: "Social Studies"},
		{Name: "Social Studies 20-1", Subject: "Social Studies"},
		{Name: "Social Studies 30-1", Subject: "Social Studies"},
	}
	if err := db.Create(&courses).Error; err != nil {
		return fmt.Errorf("seed courses: %w", err)
	}
	return nil
}
