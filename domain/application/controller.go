package application

import (
	"strconv"

	"github.com/pdelaplana/marvin/config/router"
	"github.com/pdelaplana/marvin/internal/log"
	apperrors "github.com/pdelaplana/marvin/pkg/errors"
	"gorm.io/gorm"
)

func NewApplicationController(
	db *gorm.DB,
	logger *log.Logger,
) *router.RESTController {

	return router.NewVersionedRESTController(
		"ApplicationController",
		"v1",
		"/applications",
		func(rs *router.RouterService, c *router.RESTController) {
			repository := NewApplicationRepository(db)
			service := NewApplicationService(logger, repository)

			rs.AddPostHandler(c, nil, "", createApplicationHandler(service))
			rs.AddGetHandler(c, nil, "", getAllApplicationsHandler(service))
			rs.AddGetHandler(c, nil, "/:id", getApplicationHandler(service))
			rs.AddPatchHandler(c, nil, "/:id/active", setActiveHandler(service))
			rs.AddGetHandler(c, nil, "/:id/entries", getEntriesHandler(service))
		},
	)
}

func createApplicationHandler(service ApplicationService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		logger := router.GetLogger(ctx)

		var req CreateApplicationRequest

		if err := ctx.ShouldBindJSON(&req); err != nil {
			logger.Error("Failed to bind request", "error", err)

			validationErrors := apperrors.FormatValidationErrors(err, &req)
			if len(validationErrors) > 0 {
				return router.BadRequestResult("Invalid request payload", validationErrors)
			}

			return router.BadRequestResult("Invalid request body", nil)
		}

		response, err := service.CreateApplication(ctx.Request.Context(), &req)
		if err != nil {
			return router.ErrorResult(
				apperrors.HTTPStatusCode(err),
				apperrors.GetHumanReadableMessage(err),
				nil,
			)
		}

		return router.CreatedResult(response.ID, response, "Application created successfully")
	}
}

func getApplicationHandler(service ApplicationService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		id, errResult := router.ParseUUIDParam(ctx, "id")
		if errResult != nil {
			return errResult
		}

		response, err := service.FindApplicationByID(ctx.Request.Context(), id)
		if err != nil {
			return router.ErrorResult(
				apperrors.HTTPStatusCode(err),
				apperrors.GetHumanReadableMessage(err),
				nil,
			)
		}

		return router.OKResult(response, "Application retrieved successfully")
	}
}

func getAllApplicationsHandler(service ApplicationService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		response, err := service.GetAllApplications(ctx.Request.Context())
		if err != nil {
			return router.ErrorResult(
				apperrors.HTTPStatusCode(err),
				apperrors.GetHumanReadableMessage(err),
				nil,
			)
		}

		return router.OKResult(response, "Applications retrieved successfully")
	}
}

func setActiveHandler(service ApplicationService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		logger := router.GetLogger(ctx)

		id, errResult := router.ParseUUIDParam(ctx, "id")
		if errResult != nil {
			return errResult
		}

		var req SetActiveRequest

		if err := ctx.ShouldBindJSON(&req); err != nil {
			logger.Error("Failed to bind request", "error", err)

			validationErrors := apperrors.FormatValidationErrors(err, &req)
			if len(validationErrors) > 0 {
				return router.BadRequestResult("Invalid request payload", validationErrors)
			}

			return router.BadRequestResult("Invalid request body", nil)
		}

		if err := service.SetActive(ctx.Request.Context(), id, *req.Active); err != nil {
			return router.ErrorResult(
				apperrors.HTTPStatusCode(err),
				apperrors.GetHumanReadableMessage(err),
				nil,
			)
		}

		return router.OKResult(nil, "Application updated successfully")
	}
}

func getEntriesHandler(service ApplicationService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		id, errResult := router.ParseUUIDParam(ctx, "id")
		if errResult != nil {
			return errResult
		}

		limit := parsePositiveIntQuery(ctx, "limit", 100)
		offset := parsePositiveIntQuery(ctx, "offset", 0)

		response, err := service.GetEntries(ctx.Request.Context(), id, limit, offset)
		if err != nil {
			return router.ErrorResult(
				apperrors.HTTPStatusCode(err),
				apperrors.GetHumanReadableMessage(err),
				nil,
			)
		}

		return router.OKResult(response, "Waitlist entries retrieved successfully")
	}
}

func parsePositiveIntQuery(ctx *router.RequestContext, name string, fallback int) int {
	raw := ctx.Query(name)
	if raw == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed < 0 {
		return fallback
	}
	return parsed
}
