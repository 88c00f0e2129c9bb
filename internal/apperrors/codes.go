package apperrors

// Error codes grouped by domain.
const (
	// Authentication
	CodeUnauthorized    ErrorCode = "UNAUTHORIZED"
	CodeEmailUnverified ErrorCode = "EMAIL_CONFIRMATION_REQUIRED"
	CodeAccountDisabled ErrorCode = "ACCOUNT_DISABLED"

	// Validation
	CodeValidationFailed   ErrorCode = "VALIDATION_FAILED"
	CodeInvalidEmail       ErrorCode = "INVALID_EMAIL"
	CodeInvalidFirstName   ErrorCode = "INVALID_FIRST_NAME"
	CodeInvalidLastName    ErrorCode = "INVALID_LAST_NAME"
	CodeInvalidHeadline    ErrorCode = "INVALID_HEADLINE"
	CodeInvalidBio         ErrorCode = "INVALID_BIO"
	CodeInvalidPostalCode  ErrorCode = "INVALID_POSTAL_CODE"
	CodeInvalidRate        ErrorCode = "INVALID_RATE"
	CodeInvalidCourse      ErrorCode = "INVALID_COURSE"
	CodeInvalidPayment     ErrorCode = "INVALID_PAYMENT_METHOD"
	CodeStudentRequired    ErrorCode = "STUDENT_PROFILE_REQUIRED"
	CodeProfileExists      ErrorCode = "PROFILE_ALREADY_EXISTS"
	CodeBadRequest         ErrorCode = "BAD_REQUEST"

	// Search query parameters
	CodeInvalidTutorProperty ErrorCode = "INVALID_TUTOR_PROPERTY_IN_THE_QUERY"
	CodeCourseRequired       ErrorCode = "COURSE_REQUIRED_IN_THE_QUERY"
	CodeInvalidCourseQuery   ErrorCode = "INVALID_COURSE_IN_THE_QUERY"
	CodeInvalidPage          ErrorCode = "INVALID_PAGE_IN_THE_QUERY"
	CodeInvalidPerPage       ErrorCode = "INVALID_PER_PAGE_IN_THE_QUERY"

	// Resources
	CodeNotFound ErrorCode = "NOT_FOUND"

	// System
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
)
