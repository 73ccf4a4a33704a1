package application

import (
	"context"
	"strings"

	"github.com/pdelaplana/marvin/internal/log"
	apperrors "github.com/pdelaplana/marvin/pkg/errors"
)

// ApplicationService is the admin surface for tenant provisioning. The signup
// handler never writes applications; this service is the "out-of-band" path
// that creates and toggles them.
type ApplicationService interface {
	CreateApplication(ctx context.Context, req *CreateApplicationRequest) (*ApplicationResponse, error)
	FindApplicationByID(ctx context.Context, id string) (*ApplicationResponse, error)
	GetAllApplications(ctx context.Context) ([]ApplicationResponse, error)
	SetActive(ctx context.Context, id string, active bool) error
	GetEntries(ctx context.Context, applicationID string, limit, offset int) ([]ApplicationEntryResponse, error)
}

type applicationService struct {
	logger     *log.Logger
	repository ApplicationRepository
}

func NewApplicationService(logger *log.Logger, repository ApplicationRepository) ApplicationService {
	return &applicationService{logger: logger, repository: repository}
}

func (s *applicationService) CreateApplication(ctx context.Context, req *CreateApplicationRequest) (*ApplicationResponse, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	if req == nil || strings.TrimSpace(req.Name) == "" {
		logger.Error("CreateApplication received empty request")
		return nil, apperrors.NewInvalidRequestError("application name is required", nil)
	}

	req.Name = strings.TrimSpace(req.Name)

	app, err := s.repository.Create(ctx, ToApplicationModel(req))
	if err != nil {
		logger.Error("Failed to create application", "name", req.Name, "error", err)
		return nil, err
	}

	response := ToApplicationResponse(app)
	return &response, nil
}

func (s *applicationService) FindApplicationByID(ctx context.Context, id string) (*ApplicationResponse, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	app, err := s.repository.FindByID(ctx, id)
	if err != nil {
		logger.Error("Failed to find application", "id", id, "error", err)
		return nil, err
	}

	response := ToApplicationResponse(app)
	return &response, nil
}

func (s *applicationService) GetAllApplications(ctx context.Context) ([]ApplicationResponse, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	apps, err := s.repository.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to get applications", "error", err)
		return nil, err
	}

	responses := make([]ApplicationResponse, 0, len(apps))
	for _, app := range apps {
		responses = append(responses, ToApplicationResponse(app))
	}

	return responses, nil
}

func (s *applicationService) SetActive(ctx context.Context, id string, active bool) error {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	if err := s.repository.SetActive(ctx, id, active); err != nil {
		logger.Error("Failed to update application active flag", "id", id, "active", active, "error", err)
		return err
	}

	logger.Info("Application active flag updated", "id", id, "active", active)
	return nil
}

func (s *applicationService) GetEntries(ctx context.Context, applicationID string, limit, offset int) ([]ApplicationEntryResponse, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	// Listing entries of a missing application should 404, not return [].
	if _, err := s.repository.FindByID(ctx, applicationID); err != nil {
		logger.Error("Failed to find application for entry listing", "id", applicationID, "error", err)
		return nil, err
	}

	entries, err := s.repository.FindEntries(ctx, applicationID, limit, offset)
	if err != nil {
		logger.Error("Failed to get waitlist entries", "application_id", applicationID, "error", err)
		return nil, err
	}

	responses := make([]ApplicationEntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, ToApplicationEntryResponse(entry))
	}

	return responses, nil
}
