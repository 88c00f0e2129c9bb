package apperrors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorCode identifies one failure cause.
type ErrorCode string

// AppError is the application error carried from services up to the
// HTTP layer.
type AppError struct {
	Code     ErrorCode   `json:"code"`
	Message  string      `json:"message"`
	Details  interface{} `json:"details,omitempty"`
	Err      error       `json:"-"`
	HTTPCode int         `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches AppErrors by code, so detail-bearing clones still compare
// equal to their sentinel.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	return ok && t.Code == e.Code
}

func New(code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		HTTPCode: httpCode,
	}
}

func Wrap(err error, code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Err:      err,
		HTTPCode: httpCode,
	}
}

func (e *AppError) WithDetails(details interface{}) *AppError {
	clone := *e
	clone.Details = details
	return &clone
}

func (e *AppError) WithError(err error) *AppError {
	clone := *e
	clone.Err = err
	return &clone
}

func (e *AppError) MarshalJSON() ([]byte, error) {
	type alias struct {
		Code    ErrorCode   `json:"code"`
		Message string      `json:"message"`
		Details interface{} `json:"details,omitempty"`
	}
	return json.Marshal(&alias{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
	})
}

// Is and As mirror the standard errors helpers so callers don't need a
// second import.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// Predeclared errors. One named error per failure cause; the API never
// reports a generic message for a specific validation failure.
var (
	// Authentication
	ErrUnauthorized    = New(CodeUnauthorized, "Unauthorized", http.StatusUnauthorized)
	ErrEmailUnverified = New(CodeEmailUnverified, "Email Confirmation Required", http.StatusUnauthorized)
	ErrAccountDisabled = New(CodeAccountDisabled, "Account is disabled", http.StatusUnauthorized)

	// Field validation
	ErrInvalidEmail      = New(CodeInvalidEmail, "Invalid Email", http.StatusBadRequest)
	ErrInvalidFirstName  = New(CodeInvalidFirstName, "Invalid First Name", http.StatusBadRequest)
	ErrInvalidLastName   = New(CodeInvalidLastName, "Invalid Last Name", http.StatusBadRequest)
	ErrInvalidHeadline   = New(CodeInvalidHeadline, "Invalid Headline", http.StatusBadRequest)
	ErrInvalidBio        = New(CodeInvalidBio, "Invalid Bio", http.StatusBadRequest)
	ErrInvalidPostalCode = New(CodeInvalidPostalCode, "Invalid Postal Code", http.StatusBadRequest)
	ErrInvalidRate       = New(CodeInvalidRate, "Invalid Rate", http.StatusBadRequest)
	ErrInvalidCourse     = New(CodeInvalidCourse, "Invalid Course", http.StatusBadRequest)
	ErrInvalidPayment    = New(CodeInvalidPayment, "Invalid payment method", http.StatusBadRequest)

	// Profile lifecycle
	ErrStudentRequired = New(CodeStudentRequired, "Student Profile Required to be Created First", http.StatusBadRequest)
	ErrProfileExists   = New(CodeProfileExists, "Profile already exists for this user", http.StatusBadRequest)
	ErrBadRequest      = New(CodeBadRequest, "Bad Request", http.StatusBadRequest)

	// Search query parameters
	ErrInvalidTutorProperty = New(CodeInvalidTutorProperty, "Invalid Tutor Property In The Query", http.StatusBadRequest)
	ErrCourseRequired       = New(CodeCourseRequired, "Course Required In The Query", http.StatusBadRequest)
	ErrInvalidCourseQuery   = New(CodeInvalidCourseQuery, "Invalid Course In The Query", http.StatusBadRequest)
	ErrInvalidPage          = New(CodeInvalidPage, "Invalid Page In The Query", http.StatusBadRequest)
	ErrInvalidPerPage       = New(CodeInvalidPerPage, "Invalid Per Page In The Query", http.StatusBadRequest)

	// Resources
	ErrNotFound = New(CodeNotFound, "Resource Not Found", http.StatusNotFound)

	// System
	ErrValidationFailed = New(CodeValidationFailed, "Validation failed", http.StatusBadRequest)
)

func ValidationError(details interface{}) *AppError {
	return ErrValidationFailed.WithDetails(details)
}

func InternalError(err error) *AppError {
	return Wrap(err, CodeInternalError, "Internal Server Error", http.StatusInternalServerError)
}

func NewBadRequestError(message string) *AppError {
	return New(CodeBadRequest, message, http.StatusBadRequest)
}

func NewUnauthorizedError(message string) *AppError {
	return New(CodeUnauthorized, message, http.StatusUnauthorized)
}

func NewNotFoundError(message string) *AppError {
	return New(CodeNotFound, message, http.StatusNotFound)
}
