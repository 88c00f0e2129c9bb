package services

import (
	"context"
	"errors"
	"net/url"
	"strconv"
	"strings"

	"tutorlift_backend/internal/apperrors"
	"tutorlift_backend/internal/config"
	"tutorlift_backend/internal/models"
	"tutorlift_backend/internal/repositories"
	"tutorlift_backend/internal/services/dto"
)

// SearchOptions are the policy knobs of the tutor search planner.
type SearchOptions struct {
	DefaultCity     string
	DefaultProvince string
	PerPageDefault  int
	PerPageMax      int
}

type SearchService interface {
	// SearchTutors serves GET /tutors from its raw query parameters.
	SearchTutors(ctx context.Context, params url.Values) (*dto.TutorSearchResponse, error)
}

type SearchServiceImpl struct {
	profiles repositories.ProfileRepository
	courses  repositories.CourseRepository
	options  SearchOptions
}

func NewSearchService(profiles repositories.ProfileRepository, courses repositories.CourseRepository, cfg *config.Config) SearchService {
	return &SearchServiceImpl{
		profiles: profiles,
		courses:  courses,
		options: SearchOptions{
			DefaultCity:     cfg.Search.DefaultCity,
			DefaultProvince: cfg.Search.DefaultProvince,
			PerPageDefault:  cfg.Search.PerPageDefault,
			PerPageMax:      cfg.Search.PerPageMax,
		},
	}
}

func (s *SearchServiceImpl) SearchTutors(ctx context.Context, params url.Values) (*dto.TutorSearchResponse, error) {
	plan, err := BuildTutorSearchPlan(params, s.options)
	if err != nil {
		return nil, err
	}

	// Course names come straight from the query, so they get the query
	// flavoured error, unlike profile edits. First unknown name wins.
	for _, name := range plan.Courses {
		if _, err := s.courses.FindByName(ctx, name); err != nil {
			if errors.Is(err, repositories.ErrCourseNotFound) {
				return nil, apperrors.ErrInvalidCourseQuery.WithDetails(name)
			}
			return nil, apperrors.InternalError(err)
		}
	}

	tutors, err := s.profiles.SearchTutors(ctx, plan)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	items := make([]*dto.TutorResponse, 0, len(tutors))
	for i := range tutors {
		items = append(items, dto.TutorSearchItemFrom(&tutors[i]))
	}

	resp := &dto.TutorSearchResponse{Tutors: items}
	// Point lookups are not resumable; only collection queries get a
	// cursor.
	if plan.ID == "" {
		resp.NextPageToken = repositories.EncodeCursor(plan.Offset + len(tutors))
	}
	return resp, nil
}

// reserved query keys that never name a filter property.
var reservedSearchParams = map[string]bool{
	"id":         true,
	"properties": true,
	"courses":    true,
	"per-page":   true,
	"page":       true,
}

// BuildTutorSearchPlan translates raw query parameters into an
// executable plan. It is pure: anything needing storage (course
// existence) is left for the caller.
//
// Two modes exist. With an id parameter the query is a point lookup and
// no other parameter is allowed. Without one it is a catalogue search
// over searchable tutors that must name at least one course.
func BuildTutorSearchPlan(params url.Values, opts SearchOptions) (repositories.TutorSearchPlan, error) {
	var plan repositories.TutorSearchPlan

	if params.Has("id") {
		if len(params) > 1 {
			return plan, apperrors.ErrBadRequest.WithDetails("id cannot be combined with other parameters")
		}
		// A point lookup is unprojected; the caller gets the whole
		// tutor, not the catalogue card.
		plan.ID = params.Get("id")
		return plan, nil
	}

	projection, err := parseProjection(splitList(params["properties"]))
	if err != nil {
		return plan, err
	}
	plan.Columns = projectionColumns(projection)

	plan.Courses = splitList(params["courses"])
	if len(plan.Courses) == 0 {
		return plan, apperrors.ErrCourseRequired
	}

	plan.Limit = opts.PerPageDefault
	if raw := params.Get("per-page"); raw != "" {
		perPage, err := strconv.Atoi(raw)
		if err != nil || perPage <= 0 || perPage >= opts.PerPageMax {
			return plan, apperrors.ErrInvalidPerPage
		}
		plan.Limit = perPage
	}

	if token := params.Get("page"); token != "" {
		offset, err := repositories.DecodeCursor(token)
		if err != nil {
			return plan, apperrors.ErrInvalidPage
		}
		plan.Offset = offset
	}

	filters, hasLocation, err := parseFilters(params)
	if err != nil {
		return plan, err
	}
	// Searches are local by nature. Without an explicit location the
	// query falls back to the home market.
	if !hasLocation {
		filters = append(filters,
			repositories.TutorFilter{Column: "city", Value: opts.DefaultCity},
			repositories.TutorFilter{Column: "province", Value: opts.DefaultProvince},
		)
	}
	plan.Filters = filters
	plan.OnlySearchable = true
	return plan, nil
}

// splitList flattens repeated parameters and comma separated values
// into one list, dropping empties.
func splitList(values []string) []string {
	var out []string
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func parseProjection(names []string) ([]models.TutorProperty, error) {
	if len(names) == 0 {
		return models.DefaultSearchProjection, nil
	}
	projection := make([]models.TutorProperty, 0, len(names))
	for _, name := range names {
		prop := models.TutorProperty(name)
		if !prop.Valid() {
			return nil, apperrors.ErrInvalidTutorProperty.WithDetails(name)
		}
		projection = append(projection, prop)
	}
	return projection, nil
}

// projectionColumns flattens properties to storage columns. The id
// column always rides along so every result row stays addressable.
func projectionColumns(projection []models.TutorProperty) []string {
	columns := make([]string, 0, len(projection)+1)
	seen := map[string]bool{}
	add := func(cols ...string) {
		for _, col := range cols {
			if !seen[col] {
				seen[col] = true
				columns = append(columns, col)
			}
		}
	}
	add("id")
	for _, prop := range projection {
		add(prop.Columns()...)
	}
	return columns
}

func parseFilters(params url.Values) ([]repositories.TutorFilter, bool, error) {
	var filters []repositories.TutorFilter
	hasLocation := false

	for key, values := range params {
		if reservedSearchParams[key] || len(values) == 0 {
			continue
		}
		prop := models.TutorProperty(key)
		if !prop.Valid() {
			return nil, false, apperrors.ErrInvalidTutorProperty.WithDetails(key)
		}
		value := values[0]

		switch prop {
		case models.TutorPropertyCity:
			filters = append(filters, repositories.TutorFilter{Column: "city", Value: value})
			hasLocation = true
		case models.TutorPropertyProvince:
			filters = append(filters, repositories.TutorFilter{Column: "province", Value: value})
			hasLocation = true
		case models.TutorPropertyRate:
			rate, err := strconv.Atoi(value)
			if err != nil {
				return nil, false, apperrors.ErrBadRequest.WithDetails("rate filter must be an integer")
			}
			filters = append(filters, repositories.TutorFilter{Column: "rate", Value: rate})
		case models.TutorPropertyRating:
			rating, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return nil, false, apperrors.ErrBadRequest.WithDetails("rating filter must be a number")
			}
			filters = append(filters, repositories.TutorFilter{Column: "rating", Value: rating})
		case models.TutorPropertyLessonType:
			switch value {
			case "online":
				filters = append(filters, repositories.TutorFilter{Column: "is_online_lesson", Value: true})
			case "in-person":
				filters = append(filters, repositories.TutorFilter{Column: "is_in_person_lesson", Value: true})
			default:
				return nil, false, apperrors.ErrBadRequest.WithDetails("lesson-type filter must be online or in-person")
			}
		case models.TutorPropertyID, models.TutorPropertyGeoPoint:
			// id has its own mode and geo-point has no single column.
			return nil, false, apperrors.ErrInvalidTutorProperty.WithDetails(key)
		default:
			filters = append(filters, repositories.TutorFilter{Column: prop.Columns()[0], Value: value})
		}
	}
	return filters, hasLocation, nil
}
