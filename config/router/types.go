package router

import (
	"github.com/gin-gonic/gin"
)

type RequestContext = gin.Context

type MiddlewareFunc = gin.HandlerFunc

// ServiceResult is the uniform handler outcome. It serializes to the
// service-wide envelope {success, id?, data?, message}.
type ServiceResult struct {
	StatusCode int    `json:"-"`
	Success    bool   `json:"success"`
	ID         string `json:"id,omitempty"`
	Data       any    `json:"data,omitempty"`
	Message    string `json:"message"`
}

type RateLimitResponse struct {
	Limit      int    `json:"limit"`
	Window     string `json:"window"`
	RetryAfter string `json:"retry_after"`
}

type HandlerFunction func(*RequestContext) *ServiceResult

type RESTController struct {
	name         string
	mountPoint   string
	version      string
	handlerCount int
	prepare      func(*RouterService, *RESTController)
}

func (result *ServiceResult) ToJSON() gin.H {
	body := gin.H{
		"success": result.Success,
		"message": result.Message,
	}
	if result.ID != "" {
		body["id"] = result.ID
	}
	if result.Data != nil {
		body["data"] = result.Data
	}
	return body
}

func (result *ServiceResult) IsSuccess() bool {
	return result.StatusCode >= 200 && result.StatusCode < 300
}

func (result *ServiceResult) IsError() bool {
	return result.StatusCode >= 400
}
