package dto

import "tutorlift_backend/internal/models"

// CreateStudentRequest creates the caller's student profile. Identity
// and email come from the auth token, never from the body.
type CreateStudentRequest struct {
	PictureURL *string `json:"pictureURL"`
	FirstName  string  `json:"firstName" validate:"required"`
	LastName   string  `json:"lastName" validate:"required"`
	Headline   *string `json:"headline"`
}

// UpdateStudentRequest is a partial update. Nil fields are untouched.
type UpdateStudentRequest struct {
	PictureURL           *string `json:"pictureURL"`
	Email                *string `json:"email"`
	FirstName            *string `json:"firstName"`
	LastName             *string `json:"lastName"`
	Headline             *string `json:"headline"`
	DefaultPaymentMethod *string `json:"defaultPaymentMethod"`
}

// CreateTutorRequest creates the caller's tutor profile. Shared fields
// (picture, name, email, headline) are copied from the student profile.
type CreateTutorRequest struct {
	Bio              *string  `json:"bio"`
	PostalCode       string   `json:"postalCode" validate:"required"`
	Rate             *int     `json:"rate"`
	Courses          []string `json:"courses"`
	IsOnlineLesson   *bool    `json:"isOnlineLesson"`
	IsInPersonLesson *bool    `json:"isInPersonLesson"`
}

// UpdateTutorRequest is a partial update. Nil fields are untouched.
type UpdateTutorRequest struct {
	PictureURL       *string   `json:"pictureURL"`
	Email            *string   `json:"email"`
	FirstName        *string   `json:"firstName"`
	LastName         *string   `json:"lastName"`
	Headline         *string   `json:"headline"`
	Bio              *string   `json:"bio"`
	PostalCode       *string   `json:"postalCode"`
	Rate             *int      `json:"rate"`
	Courses          *[]string `json:"courses"`
	IsOnlineLesson   *bool     `json:"isOnlineLesson"`
	IsInPersonLesson *bool     `json:"isInPersonLesson"`
	IsHidden         *bool     `json:"isHidden"`
}

type StudentResponse struct {
	ID                   string  `json:"id"`
	PictureURL           *string `json:"pictureURL,omitempty"`
	Email                string  `json:"email"`
	FirstName            string  `json:"firstName"`
	LastName             string  `json:"lastName"`
	Headline             *string `json:"headline,omitempty"`
	DefaultPaymentMethod string  `json:"defaultPaymentMethod"`
	UserType             string  `json:"userType"`
}

func StudentResponseFrom(s *models.Student) *StudentResponse {
	return &StudentResponse{
		ID:                   s.ID,
		PictureURL:           s.PictureURL,
		Email:                s.Email,
		FirstName:            s.FirstName,
		LastName:             s.LastName,
		Headline:             s.Headline,
		DefaultPaymentMethod: s.DefaultPaymentMethod,
		UserType:             s.UserType,
	}
}

type TutorResponse struct {
	ID               string           `json:"id"`
	PictureURL       *string          `json:"pictureURL,omitempty"`
	Email            string           `json:"email,omitempty"`
	FirstName        string           `json:"firstName,omitempty"`
	LastName         string           `json:"lastName,omitempty"`
	Rating           *float64         `json:"rating,omitempty"`
	Headline         *string          `json:"headline,omitempty"`
	Bio              *string          `json:"bio,omitempty"`
	PostalCode       *string          `json:"postalCode,omitempty"`
	City             *string          `json:"city,omitempty"`
	Province         *string          `json:"province,omitempty"`
	GeoPoint         *models.GeoPoint `json:"geoPoint,omitempty"`
	Rate             *int             `json:"rate,omitempty"`
	Courses          []string         `json:"courses,omitempty"`
	IsOnlineLesson   *bool            `json:"isOnlineLesson,omitempty"`
	IsInPersonLesson *bool            `json:"isInPersonLesson,omitempty"`
	IsHidden         *bool            `json:"isHidden,omitempty"`
	IsSearchable     *bool            `json:"isSearchable,omitempty"`
}

// TutorResponseFrom converts a full tutor row, visibility flags included.
// Owners read their own profile through this shape.
func TutorResponseFrom(t *models.Tutor) *TutorResponse {
	resp := TutorSearchItemFrom(t)
	resp.IsHidden = &t.IsHidden
	resp.IsSearchable = &t.IsSearchable
	return resp
}

// TutorSearchItemFrom converts a possibly projected tutor row. Visibility
// flags are never exposed to searchers.
func TutorSearchItemFrom(t *models.Tutor) *TutorResponse {
	return &TutorResponse{
		ID:               t.ID,
		PictureURL:       t.PictureURL,
		Email:            t.Email,
		FirstName:        t.FirstName,
		LastName:         t.LastName,
		Rating:           t.Rating,
		Headline:         t.Headline,
		Bio:              t.Bio,
		PostalCode:       t.PostalCode,
		City:             t.City,
		Province:         t.Province,
		GeoPoint:         t.GeoPoint(),
		Rate:             t.Rate,
		Courses:          t.Courses,
		IsOnlineLesson:   t.IsOnlineLesson,
		IsInPersonLesson: t.IsInPersonLesson,
	}
}
