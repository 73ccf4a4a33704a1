package waitlist

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

const testApplicationID = "48bc5a4b-9c51-4e7a-8d30-32f1b1a2c6de"

func activeApplication() *models.Application {
	return &models.Application{
		ID:     testApplicationID,
		Name:   "Marvin Landing Page",
		Active: true,
	}
}

func TestWaitlistService_Join(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockWaitlistRepository(ctrl)
	logger := log.NewLoggerWithJSONOutput()
	service := NewWaitlistService(logger, mockRepo)

	t.Run("successful signup", func(t *testing.T) {
		req := &JoinWaitlistRequest{
			ApplicationID: testApplicationID,
			Email:         "a@example.com",
			SourceURL:     "https://x.com",
			Country:       "US",
		}

		createdAt := time.Now()

		mockRepo.EXPECT().
			FindApplicationByID(gomock.Any(), testApplicationID).
			Return(activeApplication(), nil)

		mockRepo.EXPECT().
			CreateEntry(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, entry *models.WaitlistEntry) (*models.WaitlistEntry, error) {
				entry.ID = "0d6f91de-5f2f-4a64-9a34-5b7a2f1d88aa"
				entry.CreatedAt = createdAt
				return entry, nil
			})

		mockRepo.EXPECT().
			CountEntriesUpTo(gomock.Any(), testApplicationID, createdAt).
			Return(int64(3), nil)

		result, err := service.Join(context.Background(), req, &RequestMetadata{IPAddress: "203.0.113.9"})

		assert.NoError(t, err)
		assert.NotNil(t, result)
		assert.Equal(t, "0d6f91de-5f2f-4a64-9a34-5b7a2f1d88aa", result.ID)
		assert.Equal(t, int64(3), result.Position)
	})

	t.Run("email is lower-cased and trimmed before storage", func(t *testing.T) {
		req := &JoinWaitlistRequest{
			ApplicationID: testApplicationID,
			Email:         "  User@Example.com ",
			SourceURL:     "https://x.com",
		}

		var storedEmail string

		mockRepo.EXPECT().
			FindApplicationByID(gomock.Any(), testApplicationID).
			Return(activeApplication(), nil)

		mockRepo.EXPECT().
			CreateEntry(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, entry *models.WaitlistEntry) (*models.WaitlistEntry, error) {
				storedEmail = entry.Email
				return entry, nil
			})

		mockRepo.EXPECT().
			CountEntriesUpTo(gomock.Any(), testApplicationID, gomock.Any()).
			Return(int64(1), nil)

		_, err := service.Join(context.Background(), req, nil)

		assert.NoError(t, err)
		assert.Equal(t, "user@example.com", storedEmail)
	})

	t.Run("unknown application", func(t *testing.T) {
		req := &JoinWaitlistRequest{
			ApplicationID: "0b7f7cb0-92cf-4f0d-9f43-1a97a7a42e11",
			Email:         "a@example.com",
			SourceURL:     "https://x.com",
		}

		mockRepo.EXPECT().
			FindApplicationByID(gomock.Any(), req.ApplicationID).
			Return(nil, apperrors.NewNotFoundError("application not found", nil))

		result, err := service.Join(context.Background(), req, nil)

		assert.Error(t, err)
		assert.Nil(t, result)
		assert.Equal(t, apperrors.ErrorTypeInvalidRequest, apperrors.GetErrorType(err))
		assert.Equal(t, "Invalid application ID", apperrors.GetHumanReadableMessage(err))
	})

	t.Run("inactive application", func(t *testing.T) {
		req := &JoinWaitlistRequest{
			ApplicationID: testApplicationID,
			Email:         "a@example.com",
			SourceURL:     "https://x.com",
		}

		app := activeApplication()
		app.Active = false

		mockRepo.EXPECT().
			FindApplicationByID(gomock.Any(), testApplicationID).
			Return(app, nil)

		result, err := service.Join(context.Background(), req, nil)

		assert.Error(t, err)
		assert.Nil(t, result)
		assert.Equal(t, "Invalid application ID", apperrors.GetHumanReadableMessage(err))
	})

	t.Run("duplicate email surfaces as conflict", func(t *testing.T) {
		req := &JoinWaitlistRequest{
			ApplicationID: testApplicationID,
			Email:         "a@example.com",
			SourceURL:     "https://x.com",
		}

		mockRepo.EXPECT().
			FindApplicationByID(gomock.Any(), testApplicationID).
			Return(activeApplication(), nil)

		mockRepo.EXPECT().
			CreateEntry(gomock.Any(), gomock.Any()).
			Return(nil, apperrors.NewConflictError("Email already registered", nil))

		result, err := service.Join(context.Background(), req, nil)

		assert.Error(t, err)
		assert.Nil(t, result)
		assert.Equal(t, apperrors.ErrorTypeConflict, apperrors.GetErrorType(err))
		assert.Equal(t, "Email already registered", apperrors.GetHumanReadableMessage(err))
	})

	t.Run("malformed email rejected before any repository call", func(t *testing.T) {
		req := &JoinWaitlistRequest{
			ApplicationID: testApplicationID,
			Email:         "not-an-email",
			SourceURL:     "https://x.com",
		}

		result, err := service.Join(context.Background(), req, nil)

		assert.Error(t, err)
		assert.Nil(t, result)
		assert.Equal(t, apperrors.ErrorTypeInvalidRequest, apperrors.GetErrorType(err))
		assert.Equal(t, "Invalid email address", apperrors.GetHumanReadableMessage(err))
	})

	t.Run("display-name email form rejected", func(t *testing.T) {
		// mail.ParseAddress accepts this; only the bare address may pass.
		req := &JoinWaitlistRequest{
			ApplicationID: testApplicationID,
			Email:         "Jane Doe <jane@example.com>",
			SourceURL:     "https://x.com",
		}

		result, err := service.Join(context.Background(), req, nil)

		assert.Error(t, err)
		assert.Nil(t, result)
		assert.Equal(t, apperrors.ErrorTypeInvalidRequest, apperrors.GetErrorType(err))
		assert.Equal(t, "Invalid email address", apperrors.GetHumanReadableMessage(err))
	})

	t.Run("email without dotted domain rejected", func(t *testing.T) {
		req := &JoinWaitlistRequest{
			ApplicationID: testApplicationID,
			Email:         "user@localhost",
			SourceURL:     "https://x.com",
		}

		result, err := service.Join(context.Background(), req, nil)

		assert.Error(t, err)
		assert.Nil(t, result)
		assert.Equal(t, "Invalid email address", apperrors.GetHumanReadableMessage(err))
	})

	t.Run("blank required fields", func(t *testing.T) {
		req := &JoinWaitlistRequest{
			ApplicationID: testApplicationID,
			Email:         "   ",
			SourceURL:     "https://x.com",
		}

		result, err := service.Join(context.Background(), req, nil)

		assert.Error(t, err)
		assert.Nil(t, result)
		assert.Equal(t, "Missing required fields", apperrors.GetHumanReadableMessage(err))
	})

	t.Run("position count failure does not fail the signup", func(t *testing.T) {
		req := &JoinWaitlistRequest{
			ApplicationID: testApplicationID,
			Email:         "a@example.com",
			SourceURL:     "https://x.com",
		}

		mockRepo.EXPECT().
			FindApplicationByID(gomock.Any(), testApplicationID).
			Return(activeApplication(), nil)

		mockRepo.EXPECT().
			CreateEntry(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, entry *models.WaitlistEntry) (*models.WaitlistEntry, error) {
				entry.ID = "e6f2d1c0-8bb4-4a7e-9a77-43b6ad5c2f01"
				entry.CreatedAt = time.Now()
				return entry, nil
			})

		mockRepo.EXPECT().
			CountEntriesUpTo(gomock.Any(), testApplicationID, gomock.Any()).
			Return(int64(0), apperrors.NewDatabaseError("unable to count waitlist entries", nil))

		result, err := service.Join(context.Background(), req, &RequestMetadata{})

		assert.NoError(t, err)
		assert.NotNil(t, result)
		assert.Equal(t, int64(0), result.Position)
	})
}

func TestWaitlistService_FindEntryByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockWaitlistRepository(ctrl)
	logger := log.NewLoggerWithJSONOutput()
	service := NewWaitlistService(logger, mockRepo)

	t.Run("found", func(t *testing.T) {
		entry := &models.WaitlistEntry{
			ID:            "0d6f91de-5f2f-4a64-9a34-5b7a2f1d88aa",
			ApplicationID: testApplicationID,
			Email:         "a@example.com",
			SourceURL:     "https://x.com",
			CreatedAt:     time.Now(),
		}

		mockRepo.EXPECT().
			FindEntryByID(gomock.Any(), entry.ID).
			Return(entry, nil)

		result, err := service.FindEntryByID(context.Background(), entry.ID)

		assert.NoError(t, err)
		assert.NotNil(t, result)
		assert.Equal(t, entry.Email, result.Email)
	})

	t.Run("empty id", func(t *testing.T) {
		result, err := service.FindEntryByID(context.Background(), " ")

		assert.Error(t, err)
		assert.Nil(t, result)
	})
}
