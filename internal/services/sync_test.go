package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tutorlift_backend/internal/apperrors"
	"tutorlift_backend/internal/models"
	"tutorlift_backend/internal/services/dto"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }
func boolPtr(b bool) *bool    { return &b }

func baseStudent() *models.Student {
	return &models.Student{
		ID:                   "user-1",
		Email:                "old@example.com",
		FirstName:            "Ada",
		LastName:             "Lovelace",
		DefaultPaymentMethod: models.PaymentMethodCash,
		UserType:             models.UserTypeStudent,
	}
}

func TestApplyStudentUpdateNilFieldsUntouched(t *testing.T) {
	t.Parallel()

	student := baseStudent()
	changes, err := applyStudentUpdate(student, &dto.UpdateStudentRequest{})
	require.NoError(t, err)

	assert.False(t, changes.Shared)
	assert.False(t, changes.EmailChanged)
	assert.Equal(t, "old@example.com", student.Email)
	assert.Equal(t, "Ada", student.FirstName)
}

func TestApplyStudentUpdateSharedFieldMarksCascade(t *testing.T) {
	t.Parallel()

	student := baseStudent()
	changes, err := applyStudentUpdate(student, &dto.UpdateStudentRequest{
		FirstName: strPtr("Grace"),
	})
	require.NoError(t, err)

	assert.True(t, changes.Shared)
	assert.False(t, changes.EmailChanged)
	assert.Equal(t, "Grace", student.FirstName)
}

func TestApplyStudentUpdateSameValueIsNotAChange(t *testing.T) {
	t.Parallel()

	student := baseStudent()
	changes, err := applyStudentUpdate(student, &dto.UpdateStudentRequest{
		Email:     strPtr("old@example.com"),
		FirstName: strPtr("Ada"),
	})
	require.NoError(t, err)

	assert.False(t, changes.Shared)
	assert.False(t, changes.EmailChanged)
}

func TestApplyStudentUpdateEmailChange(t *testing.T) {
	t.Parallel()

	student := baseStudent()
	changes, err := applyStudentUpdate(student, &dto.UpdateStudentRequest{
		Email: strPtr("new@example.com"),
	})
	require.NoError(t, err)

	assert.True(t, changes.EmailChanged)
	assert.True(t, changes.Shared)
	assert.Equal(t, "new@example.com", student.Email)
}

func TestApplyStudentUpdateValidation(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		req  dto.UpdateStudentRequest
		want error
	}{
		"bad email":     {dto.UpdateStudentRequest{Email: strPtr("nope")}, apperrors.ErrInvalidEmail},
		"empty name":    {dto.UpdateStudentRequest{FirstName: strPtr("")}, apperrors.ErrInvalidFirstName},
		"long surname":  {dto.UpdateStudentRequest{LastName: strPtr("abcdefghijklmnopqrstu")}, apperrors.ErrInvalidLastName},
		"bad payment":   {dto.UpdateStudentRequest{DefaultPaymentMethod: strPtr("Barter")}, apperrors.ErrInvalidPayment},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			student := baseStudent()
			_, err := applyStudentUpdate(student, &tc.req)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestApplyStudentUpdatePaymentMethod(t *testing.T) {
	t.Parallel()

	student := baseStudent()
	changes, err := applyStudentUpdate(student, &dto.UpdateStudentRequest{
		DefaultPaymentMethod: strPtr(models.PaymentMethodApplePay),
	})
	require.NoError(t, err)

	// Payment preference is student-only; it never cascades.
	assert.False(t, changes.Shared)
	assert.Equal(t, models.PaymentMethodApplePay, student.DefaultPaymentMethod)
}

func TestApplyTutorUpdatePostalChange(t *testing.T) {
	t.Parallel()

	tutor := completeTutor()
	changes, err := applyTutorUpdate(tutor, &dto.UpdateTutorRequest{
		PostalCode: strPtr("t3a 0h6"),
	})
	require.NoError(t, err)

	assert.True(t, changes.PostalChanged)
	assert.Equal(t, "T3A0H6", *tutor.PostalCode)
}

func TestApplyTutorUpdateSamePostalIsNotAChange(t *testing.T) {
	t.Parallel()

	tutor := completeTutor()
	changes, err := applyTutorUpdate(tutor, &dto.UpdateTutorRequest{
		PostalCode: strPtr("t2n 4v5"), // normalizes to the stored value
	})
	require.NoError(t, err)

	assert.False(t, changes.PostalChanged)
}

func TestApplyTutorUpdateValidation(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		req  dto.UpdateTutorRequest
		want error
	}{
		"bad postal": {dto.UpdateTutorRequest{PostalCode: strPtr("12345")}, apperrors.ErrInvalidPostalCode},
		"low rate":   {dto.UpdateTutorRequest{Rate: intPtr(10)}, apperrors.ErrInvalidRate},
		"high rate":  {dto.UpdateTutorRequest{Rate: intPtr(2000)}, apperrors.ErrInvalidRate},
		"bad email":  {dto.UpdateTutorRequest{Email: strPtr("nope")}, apperrors.ErrInvalidEmail},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			tutor := completeTutor()
			_, err := applyTutorUpdate(tutor, &tc.req)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestApplyTutorUpdateHiddenFlag(t *testing.T) {
	t.Parallel()

	tutor := completeTutor()
	changes, err := applyTutorUpdate(tutor, &dto.UpdateTutorRequest{
		IsHidden: boolPtr(true),
	})
	require.NoError(t, err)

	assert.True(t, tutor.IsHidden)
	assert.False(t, changes.Shared)
	// The service recomputes searchability after staging; hiding the
	// profile must then take it out of search.
	assert.False(t, IsSearchable(tutor))
}

func TestMirrorSharedFields(t *testing.T) {
	t.Parallel()

	student := baseStudent()
	tutor := completeTutor()

	mirrorSharedToTutor(student, tutor)
	assert.Equal(t, student.Email, tutor.Email)
	assert.Equal(t, student.FirstName, tutor.FirstName)
	assert.Equal(t, student.LastName, tutor.LastName)
	assert.Equal(t, student.PictureURL, tutor.PictureURL)
	assert.Equal(t, student.Headline, tutor.Headline)

	tutor.Email = "tutor-side@example.com"
	tutor.Headline = strPtr("New headline")
	mirrorSharedToStudent(tutor, student)
	assert.Equal(t, "tutor-side@example.com", student.Email)
	assert.Equal(t, "New headline", *student.Headline)
}
