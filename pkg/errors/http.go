package errors

import (
	"errors"
)

func HTTPStatusCode(err error) int {
	if err == nil {
		return StatusInternalServerError
	}

	errorType := GetErrorType(err)

	switch errorType {
	case ErrorTypeNotFound:
		return StatusNotFound
	case ErrorTypeInvalidRequest:
		return StatusBadRequest
	case ErrorTypeConflict:
		return StatusConflict
	case ErrorTypeUnauthorized:
		return StatusUnauthorized
	case ErrorTypeForbidden:
		return StatusForbidden
	case ErrorTypeTooManyRequests, ErrorTypeRateLimitExceeded:
		return StatusTooManyRequests
	case ErrorTypeRequestTimeout:
		return StatusRequestTimeout
	case ErrorTypeMethodNotAllowed:
		return StatusMethodNotAllowed
	case ErrorTypeNoContent:
		return StatusNoContent
	case ErrorTypeDatabaseError:
		return StatusInternalServerError
	case ErrorTypeInternalServerError:
		return StatusInternalServerError
	default:
		return StatusInternalServerError
	}
}

// InternalServerErrorMessage is the only message a caller ever sees for a
// 5xx outcome; the underlying cause is logged server-side.
const InternalServerErrorMessage = "Internal server error"

func GetHumanReadableMessage(err error) string {
	if err == nil {
		return InternalServerErrorMessage
	}

	// SECURITY: database and internal errors carry wrapped causes that must
	// never reach the caller, so anything mapping to a 5xx collapses to the
	// fixed message.
	if HTTPStatusCode(err) >= StatusInternalServerError {
		return InternalServerErrorMessage
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}

	return InternalServerErrorMessage
}
