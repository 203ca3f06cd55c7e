package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Authentication ────────────────────────────────────────────────
	ErrInvalidCredentials  ErrCode = "INVALID_CREDENTIALS"
	ErrAdminAuthRequired   ErrCode = "ADMIN_AUTH_REQUIRED"
	ErrStudentAuthRequired ErrCode = "STUDENT_AUTH_REQUIRED"
	ErrLogoutFailed        ErrCode = "LOGOUT_FAILED"

	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation      ErrCode = "VALIDATION_ERROR"
	ErrInvalidID       ErrCode = "INVALID_ID"
	ErrInvalidPayload  ErrCode = "INVALID_PAYLOAD"
	ErrEmptyPatch      ErrCode = "EMPTY_PATCH"
	ErrInvalidCourse   ErrCode = "INVALID_COURSE"
	ErrInvalidQuestion ErrCode = "INVALID_QUESTION"

	// ─── Duplicates ────────────────────────────────────────────────────
	ErrEmailTaken      ErrCode = "EMAIL_TAKEN"
	ErrStudentIDTaken  ErrCode = "STUDENT_ID_TAKEN"
	ErrCourseCodeTaken ErrCode = "COURSE_CODE_TAKEN"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrAdminNotFound    ErrCode = "ADMIN_NOT_FOUND"
	ErrStudentNotFound  ErrCode = "STUDENT_NOT_FOUND"
	ErrQuestionNotFound ErrCode = "QUESTION_NOT_FOUND"
	ErrTestNotFound     ErrCode = "TEST_NOT_FOUND"

	// ─── Test workflow ─────────────────────────────────────────────────
	ErrTestAlreadyCompleted ErrCode = "TEST_ALREADY_COMPLETED"

	// ─── Live feed ─────────────────────────────────────────────────────
	ErrFeedUnavailable ErrCode = "FEED_UNAVAILABLE"

	// ─── Rate Limiting ─────────────────────────────────────────────────
	ErrRateLimitExceeded ErrCode = "RATE_LIMIT_EXCEEDED"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	// ─── Authentication ────────────────────────────────────────────────
	case ErrInvalidCredentials:
		return "Invalid credentials"
	case ErrAdminAuthRequired:
		return "Admin authentication required"
	case ErrStudentAuthRequired:
		return "Student authentication required"
	case ErrLogoutFailed:
		return "Could not log out"

	// ─── Validation ────────────────────────────────────────────────────
	case ErrValidation:
		return "Validation failed"
	case ErrInvalidID:
		return "Invalid ID format"
	case ErrInvalidPayload:
		return "Invalid request payload"
	case ErrEmptyPatch:
		return "No fields to update"
	case ErrInvalidCourse:
		return "Course does not exist"
	case ErrInvalidQuestion:
		return "Question does not exist"

	// ─── Duplicates ────────────────────────────────────────────────────
	case ErrEmailTaken:
		return "Student with this email already exists"
	case ErrStudentIDTaken:
		return "Student ID already exists"
	case ErrCourseCodeTaken:
		return "Course with this code already exists"

	// ─── Resources ─────────────────────────────────────────────────────
	case ErrAdminNotFound:
		return "Admin not found"
	case ErrStudentNotFound:
		return "Student not found"
	case ErrQuestionNotFound:
		return "Question not found"
	case ErrTestNotFound:
		return "Test not found"

	// ─── Test workflow ─────────────────────────────────────────────────
	case ErrTestAlreadyCompleted:
		return "Test already completed"

	// ─── Live feed ─────────────────────────────────────────────────────
	case ErrFeedUnavailable:
		return "Live activity feed is not available"

	// ─── Rate Limiting ─────────────────────────────────────────────────
	case ErrRateLimitExceeded:
		return "Too many requests, please try again later"

	// ─── Server ────────────────────────────────────────────────────────
	default:
		return "Server error"
	}
}
