package waitlist

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pdelaplana/marvin/config/router"
	"github.com/pdelaplana/marvin/internal/log"
	apperrors "github.com/pdelaplana/marvin/pkg/errors"
	"github.com/pdelaplana/marvin/pkg/ratelimit"
	"gorm.io/gorm"
)

// NewWaitlistController mounts the public signup endpoint. The path is
// unversioned: it is the URL embedded in landing-page forms.
func NewWaitlistController(
	db *gorm.DB,
	logger *log.Logger,
) *router.RESTController {

	return router.NewRESTController(
		"WaitlistController",
		"/join-waitlist",
		func(rs *router.RouterService, c *router.RESTController) {
			repository := NewWaitlistRepository(db)
			service := NewWaitlistService(logger, repository)

			signupLimiter := createSignupRateLimiter(rs)

			rs.AddPostHandler(c, signupLimiter, "", joinWaitlistHandler(service))
			rs.AddGetHandler(c, nil, "/:id", getWaitlistEntryHandler(service))
		},
	)
}

func createSignupRateLimiter(routerService *router.RouterService) ratelimit.RateLimiter {
	const signupRequestsPerMinute = 30 // More permissive than monitoring (10/min)

	config := &ratelimit.RateLimitConfig{
		Requests: signupRequestsPerMinute,
		Window:   time.Minute, // 1 minute window
		Redis:    nil,         // For now, use in-memory (could be enhanced to use Redis)
		Logger:   nil,         // Logger not needed for in-memory limiter
	}

	return ratelimit.NewRateLimiter(config)
}

func joinWaitlistHandler(service WaitlistService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		logger := router.GetLogger(ctx)

		var req JoinWaitlistRequest

		if err := ctx.ShouldBindJSON(&req); err != nil {
			logger.Error("Failed to bind request", "error", err)

			// Absent required fields and unparseable bodies share one fixed
			// message; only well-formed payloads with bad optional values get
			// field-level detail.
			if !hasRequiredFieldError(err) {
				if validationErrors := apperrors.FormatValidationErrors(err, &req); len(validationErrors) > 0 {
					return router.BadRequestResult("Invalid request payload", validationErrors)
				}
			}

			return router.BadRequestResult("Missing required fields", nil)
		}

		meta := &RequestMetadata{
			IPAddress: ctx.ClientIP(),
			UserAgent: ctx.Request.UserAgent(),
			Referrer:  ctx.Request.Referer(),
		}

		response, err := service.Join(ctx.Request.Context(), &req, meta)
		if err != nil {
			return router.ErrorResult(
				apperrors.HTTPStatusCode(err),
				apperrors.GetHumanReadableMessage(err),
				nil,
			)
		}

		return router.CreatedResult(response.ID, response, "Successfully joined waitlist")
	}
}

func getWaitlistEntryHandler(service WaitlistService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		id, errResult := router.ParseUUIDParam(ctx, "id")
		if errResult != nil {
			return errResult
		}

		response, err := service.FindEntryByID(ctx.Request.Context(), id)
		if err != nil {
			return router.ErrorResult(
				apperrors.HTTPStatusCode(err),
				apperrors.GetHumanReadableMessage(err),
				nil,
			)
		}

		return router.OKResult(response, "Waitlist entry retrieved successfully")
	}
}

func hasRequiredFieldError(err error) bool {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		// Not a validation error at all, so the body did not parse.
		return true
	}
	for _, fieldError := range validationErrors {
		if fieldError.Tag() == "required" {
			return true
		}
	}
	return false
}
