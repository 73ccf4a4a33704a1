package router

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/pdelaplana/marvin/internal/log"
)

func GetLogger(ctx *RequestContext) *log.Logger {
	if logger := ctx.Request.Context().Value(log.LoggerKeyForContext); logger != nil {
		if l, ok := logger.(*log.Logger); ok {
			return l
		}
	}

	baseLogger := log.NewLoggerWithJSONOutput()
	return baseLogger.WithCorrelationID(ctx.Request.Context())
}

func OKResult(data any, message string) *ServiceResult {
	return &ServiceResult{
		StatusCode: http.StatusOK,
		Success:    true,
		Data:       data,
		Message:    message,
	}
}

// CreatedResult reports a newly created resource; id lands at the top level
// of the envelope so callers can pick it up without digging into data.
func CreatedResult(id string, data any, message string) *ServiceResult {
	return &ServiceResult{
		StatusCode: http.StatusCreated,
		Success:    true,
		ID:         id,
		Data:       data,
		Message:    message,
	}
}

func TooManyRequestsResult(data RateLimitResponse) *ServiceResult {
	return &ServiceResult{
		StatusCode: http.StatusTooManyRequests,
		Data:       data,
		Message:    "Too Many Requests",
	}
}

func BadRequestResult(message string, payload any) *ServiceResult {
	return &ServiceResult{
		StatusCode: http.StatusBadRequest,
		Data:       payload,
		Message:    message,
	}
}

func NotFoundResult(message string) *ServiceResult {
	return &ServiceResult{
		StatusCode: http.StatusNotFound,
		Message:    message,
	}
}

func InternalServerErrorResult(message string) *ServiceResult {
	return &ServiceResult{
		StatusCode: http.StatusInternalServerError,
		Message:    message,
	}
}

func ConflictResult(message string) *ServiceResult {
	return &ServiceResult{
		StatusCode: http.StatusConflict,
		Message:    message,
	}
}

func ErrorResult(statusCode int, message string, data any) *ServiceResult {
	return &ServiceResult{
		StatusCode: statusCode,
		Success:    statusCode < 400,
		Data:       data,
		Message:    message,
	}
}

// ParseUUIDParam validates a :param path segment as a UUID.
func ParseUUIDParam(ctx *RequestContext, paramName string) (string, *ServiceResult) {
	logger := GetLogger(ctx)

	idParam := ctx.Param(paramName)
	id, err := uuid.Parse(idParam)

	if err != nil {
		logger.Error("Invalid ID parameter", "param", paramName, "value", idParam, "error", err)
		return "", BadRequestResult("Invalid ID parameter", nil)
	}

	return id.String(), nil
}
