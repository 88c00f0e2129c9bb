package services

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tutorlift_backend/internal/apperrors"
	"tutorlift_backend/internal/models"
	"tutorlift_backend/internal/repositories"
)

func newTestSearchService(repo *fakeProfileRepo, courses *fakeCourseRepo) SearchService {
	return &SearchServiceImpl{
		profiles: repo,
		courses:  courses,
		options:  testSearchOptions,
	}
}

func TestSearchTutorsRejectsUnknownCourse(t *testing.T) {
	t.Parallel()

	service := newTestSearchService(newFakeProfileRepo(), newFakeCourseRepo("Math 30-1"))

	params, _ := url.ParseQuery("courses=Alchemy+30")
	_, err := service.SearchTutors(context.Background(), params)
	assert.ErrorIs(t, err, apperrors.ErrInvalidCourseQuery)
}

func TestSearchTutorsAlwaysReturnsNextPageToken(t *testing.T) {
	t.Parallel()

	repo := newFakeProfileRepo()
	service := newTestSearchService(repo, newFakeCourseRepo("Math 30-1"))

	params, _ := url.ParseQuery("courses=Math+30-1")
	resp, err := service.SearchTutors(context.Background(), params)
	require.NoError(t, err)

	assert.Empty(t, resp.Tutors)
	assert.NotEmpty(t, resp.NextPageToken)

	offset, err := repositories.DecodeCursor(resp.NextPageToken)
	require.NoError(t, err)
	assert.Zero(t, offset)
}

func TestSearchTutorsCursorAdvancesByPageSize(t *testing.T) {
	t.Parallel()

	repo := newFakeProfileRepo()
	repo.searchResult = []models.Tutor{
		*completeTutor(),
		*completeTutor(),
	}
	service := newTestSearchService(repo, newFakeCourseRepo("Math 30-1"))

	token := repositories.EncodeCursor(10)
	params, _ := url.ParseQuery("courses=Math+30-1&page=" + url.QueryEscape(token))
	resp, err := service.SearchTutors(context.Background(), params)
	require.NoError(t, err)

	require.Len(t, resp.Tutors, 2)
	next, err := repositories.DecodeCursor(resp.NextPageToken)
	require.NoError(t, err)
	assert.Equal(t, 12, next)
}

func TestSearchTutorsResultsHideVisibilityFlags(t *testing.T) {
	t.Parallel()

	repo := newFakeProfileRepo()
	repo.searchResult = []models.Tutor{*completeTutor()}
	service := newTestSearchService(repo, newFakeCourseRepo("Math 30-1"))

	params, _ := url.ParseQuery("courses=Math+30-1")
	resp, err := service.SearchTutors(context.Background(), params)
	require.NoError(t, err)

	require.Len(t, resp.Tutors, 1)
	assert.Nil(t, resp.Tutors[0].IsHidden)
	assert.Nil(t, resp.Tutors[0].IsSearchable)
}

func TestSearchTutorsSingleIDSkipsCourseValidation(t *testing.T) {
	t.Parallel()

	repo := newFakeProfileRepo()
	repo.searchResult = []models.Tutor{*completeTutor()}
	service := newTestSearchService(repo, newFakeCourseRepo())

	params, _ := url.ParseQuery("id=tutor-1")
	resp, err := service.SearchTutors(context.Background(), params)
	require.NoError(t, err)

	assert.Equal(t, "tutor-1", repo.lastPlan.ID)
	assert.Empty(t, repo.lastPlan.Columns)
	require.Len(t, resp.Tutors, 1)
	// Point lookups are not resumable.
	assert.Empty(t, resp.NextPageToken)
}

func TestSearchTutorsSingleIDNotFound(t *testing.T) {
	t.Parallel()

	service := newTestSearchService(newFakeProfileRepo(), newFakeCourseRepo())

	params, _ := url.ParseQuery("id=no-such-tutor")
	_, err := service.SearchTutors(context.Background(), params)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
