package services

import "tutorlift_backend/internal/models"

// IsSearchable reports whether a tutor profile is complete enough to
// appear in search. Every condition must hold: a hidden or partially
// filled profile stays out of results.
func IsSearchable(t *models.Tutor) bool {
	if t.IsHidden {
		return false
	}
	if t.PictureURL == nil || *t.PictureURL == "" {
		return false
	}
	if t.FirstName == "" || t.LastName == "" {
		return false
	}
	if t.Headline == nil || *t.Headline == "" {
		return false
	}
	if t.PostalCode == nil || *t.PostalCode == "" {
		return false
	}
	online := t.IsOnlineLesson != nil && *t.IsOnlineLesson
	inPerson := t.IsInPersonLesson != nil && *t.IsInPersonLesson
	if !online && !inPerson {
		return false
	}
	if t.Rate == nil {
		return false
	}
	if len(t.Courses) == 0 {
		return false
	}
	return true
}
