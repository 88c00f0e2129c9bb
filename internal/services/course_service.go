package services

import (
	"context"
	"strconv"

	"tutorlift_backend/internal/apperrors"
	"tutorlift_backend/internal/config"
	"tutorlift_backend/internal/repositories"
	"tutorlift_backend/internal/services/dto"
	"tutorlift_backend/internal/validator"
)

type CourseService interface {
	// ListCourses returns one page of the catalogue. Arguments are the
	// raw per-page and page query values, empty when absent.
	ListCourses(ctx context.Context, perPageRaw, pageToken string) (*dto.CourseListResponse, error)
}

type CourseServiceImpl struct {
	courses        repositories.CourseRepository
	perPageDefault int
}

func NewCourseService(courses repositories.CourseRepository, cfg *config.Config) CourseService {
	return &CourseServiceImpl{courses: courses, perPageDefault: cfg.Search.CoursesPerPage}
}

func (s *CourseServiceImpl) ListCourses(ctx context.Context, perPageRaw, pageToken string) (*dto.CourseListResponse, error) {
	perPage := s.perPageDefault
	if perPageRaw != "" {
		n, err := strconv.Atoi(perPageRaw)
		if err != nil || !validator.IsValidPerPage(n) {
			return nil, apperrors.ErrInvalidPerPage
		}
		perPage = n
	}

	offset := 0
	if pageToken != "" {
		var err error
		offset, err = repositories.DecodeCursor(pageToken)
		if err != nil {
			return nil, apperrors.ErrInvalidPage
		}
	}

	courses, nextOffset, err := s.courses.List(ctx, offset, perPage)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	items := make([]dto.CourseResponse, 0, len(courses))
	for i := range courses {
		items = append(items, dto.CourseResponseFrom(&courses[i]))
	}
	return &dto.CourseListResponse{
		Courses:       items,
		NextPageToken: repositories.EncodeCursor(nextOffset),
	}, nil
}
