package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"tutorlift_backend/internal/models"
)

var ErrCourseNotFound = errors.New("course not found")

type CourseRepository interface {
	// FindByName resolves a course by its exact name.
	FindByName(ctx context.Context, name string) (*models.Course, error)

	// List returns one page of the catalogue ordered by name, plus the
	// offset of the next page.
	List(ctx context.Context, offset, limit int) ([]models.Course, int, error)
}

type CourseRepositoryImpl struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) CourseRepository {
	return &CourseRepositoryImpl{db: db}
}

func (r *CourseRepositoryImpl) FindByName(ctx context.Context, name string) (*models.Course, error) {
	var course models.Course
	err := r.db.WithContext(ctx).First(&course, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, fmt.Errorf("find course %q: %w", name, err)
	}
	return &course, nil
}

func (r *CourseRepositoryImpl) List(ctx context.Context, offset, limit int) ([]models.Course, int, error) {
	var courses []models.Course
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Offset(offset).
		Limit(limit).
		Find(&courses).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list courses: %w", err)
	}
	return courses, offset + len(courses), nil
}
