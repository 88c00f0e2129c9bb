package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tutorlift_backend/internal/models"
)

func completeTutor() *models.Tutor {
	picture := "https://cdn.example.com/p.jpg"
	headline := "Math tutor"
	postal := "T2N4V5"
	rate := 40
	online := true
	inPerson := false
	return &models.Tutor{
		ID:               "tutor-1",
		PictureURL:       &picture,
		Email:            "tutor@example.com",
		FirstName:        "Ada",
		LastName:         "Lovelace",
		Headline:         &headline,
		PostalCode:       &postal,
		Rate:             &rate,
		Courses:          []string{"Math 30-1"},
		IsOnlineLesson:   &online,
		IsInPersonLesson: &inPerson,
		IsHidden:         false,
	}
}

func TestIsSearchableCompleteProfile(t *testing.T) {
	t.Parallel()

	assert.True(t, IsSearchable(completeTutor()))
}

func TestIsSearchableEachConditionBlocks(t *testing.T) {
	t.Parallel()

	empty := ""
	off := false

	cases := map[string]func(*models.Tutor){
		"hidden":             func(tu *models.Tutor) { tu.IsHidden = true },
		"no picture":         func(tu *models.Tutor) { tu.PictureURL = nil },
		"empty picture":      func(tu *models.Tutor) { tu.PictureURL = &empty },
		"no first name":      func(tu *models.Tutor) { tu.FirstName = "" },
		"no last name":       func(tu *models.Tutor) { tu.LastName = "" },
		"no headline":        func(tu *models.Tutor) { tu.Headline = nil },
		"empty headline":     func(tu *models.Tutor) { tu.Headline = &empty },
		"no postal code":     func(tu *models.Tutor) { tu.PostalCode = nil },
		"no lesson type":     func(tu *models.Tutor) { tu.IsOnlineLesson = &off; tu.IsInPersonLesson = &off },
		"nil lesson flags":   func(tu *models.Tutor) { tu.IsOnlineLesson = nil; tu.IsInPersonLesson = nil },
		"no rate":            func(tu *models.Tutor) { tu.Rate = nil },
		"no courses":         func(tu *models.Tutor) { tu.Courses = nil },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			tutor := completeTutor()
			mutate(tutor)
			assert.False(t, IsSearchable(tutor))
		})
	}
}

func TestIsSearchableInPersonOnlyIsEnough(t *testing.T) {
	t.Parallel()

	tutor := completeTutor()
	on := true
	off := false
	tutor.IsOnlineLesson = &off
	tutor.IsInPersonLesson = &on
	assert.True(t, IsSearchable(tutor))
}
