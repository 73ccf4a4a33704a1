package application

import (
	"context"
	"testing"
	"time"

	"github.com/pdelaplana/marvin/internal/log"
	"github.com/pdelaplana/marvin/internal/models"
	apperrors "github.com/pdelaplana/marvin/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestApplicationService_CreateApplication(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockApplicationRepository(ctrl)
	logger := log.NewLoggerWithJSONOutput()
	service := NewApplicationService(logger, mockRepo)

	t.Run("successful creation defaults to active", func(t *testing.T) {
		req := &CreateApplicationRequest{Name: "Marvin Landing Page"}

		mockRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, app *models.Application) (*models.Application, error) {
				assert.True(t, app.Active)
				app.ID = "48bc5a4b-9c51-4e7a-8d30-32f1b1a2c6de"
				app.CreatedAt = time.Now()
				return app, nil
			})

		result, err := service.CreateApplication(context.Background(), req)

		assert.NoError(t, err)
		assert.NotNil(t, result)
		assert.Equal(t, "Marvin Landing Page", result.Name)
		assert.True(t, result.Active)
		assert.NotEmpty(t, result.ID)
	})

	t.Run("blank name rejected", func(t *testing.T) {
		result, err := service.CreateApplication(context.Background(), &CreateApplicationRequest{Name: "   "})

		assert.Error(t, err)
		assert.Nil(t, result)
		assert.Equal(t, apperrors.ErrorTypeInvalidRequest, apperrors.GetErrorType(err))
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil, apperrors.NewDatabaseError("unable to create application", nil))

		result, err := service.CreateApplication(context.Background(), &CreateApplicationRequest{Name: "Broken"})

		assert.Error(t, err)
		assert.Nil(t, result)
	})
}

func TestApplicationService_SetActive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockApplicationRepository(ctrl)
	logger := log.NewLoggerWithJSONOutput()
	service := NewApplicationService(logger, mockRepo)

	t.Run("deactivate", func(t *testing.T) {
		mockRepo.EXPECT().
			SetActive(gomock.Any(), "app-1", false).
			Return(nil)

		assert.NoError(t, service.SetActive(context.Background(), "app-1", false))
	})

	t.Run("unknown application", func(t *testing.T) {
		mockRepo.EXPECT().
			SetActive(gomock.Any(), "missing", true).
			Return(apperrors.NewNotFoundError("application not found", nil))

		err := service.SetActive(context.Background(), "missing", true)

		assert.Error(t, err)
		assert.Equal(t, apperrors.ErrorTypeNotFound, apperrors.GetErrorType(err))
	})
}

func TestApplicationService_GetEntries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockApplicationRepository(ctrl)
	logger := log.NewLoggerWithJSONOutput()
	service := NewApplicationService(logger, mockRepo)

	t.Run("entries returned in signup order", func(t *testing.T) {
		app := &models.Application{ID: "app-1", Name: "App", Active: true}
		entries := []*models.WaitlistEntry{
			{ID: "e1", ApplicationID: "app-1", Email: "first@example.com", SourceURL: "https://x.com"},
			{ID: "e2", ApplicationID: "app-1", Email: "second@example.com", SourceURL: "https://x.com"},
		}

		mockRepo.EXPECT().FindByID(gomock.Any(), "app-1").Return(app, nil)
		mockRepo.EXPECT().FindEntries(gomock.Any(), "app-1", 100, 0).Return(entries, nil)

		result, err := service.GetEntries(context.Background(), "app-1", 100, 0)

		assert.NoError(t, err)
		assert.Len(t, result, 2)
		assert.Equal(t, "first@example.com", result[0].Email)
	})

	t.Run("missing application is a not-found, not an empty list", func(t *testing.T) {
		mockRepo.EXPECT().
			FindByID(gomock.Any(), "missing").
			Return(nil, apperrors.NewNotFoundError("application not found", nil))

		result, err := service.GetEntries(context.Background(), "missing", 0, 0)

		assert.Error(t, err)
		assert.Nil(t, result)
		assert.Equal(t, apperrors.ErrorTypeNotFound, apperrors.GetErrorType(err))
	})
}
