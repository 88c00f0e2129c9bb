package dto

import "tutorlift_backend/internal/models"

// TutorSearchResponse is one page of tutor search results.
// NextPageToken is always present on collection queries so clients can
// poll past the last page (an exhausted cursor yields an empty next
// page); point lookups by id carry no cursor.
type TutorSearchResponse struct {
	Tutors        []*TutorResponse `json:"tutors"`
	NextPageToken string           `json:"nextPageToken,omitempty"`
}

// CourseResponse is one catalogue entry.
type CourseResponse struct {
	Name    string `json:"name"`
	Subject string `json:"subject"`
}

func CourseResponseFrom(c *models.Course) CourseResponse {
	return CourseResponse{Name: c.Name, Subject: c.Subject}
}

// CourseListResponse is one page of the course catalogue.
type CourseListResponse struct {
	Courses       []CourseResponse `json:"courses"`
	NextPageToken string           `json:"nextPageToken"`
}
