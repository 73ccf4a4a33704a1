package application

import (
	"context"
	"errors"

	"github.com/pdelaplana/marvin/internal/models"
	apperrors "github.com/pdelaplana/marvin/pkg/errors"
	"gorm.io/gorm"
)

type ApplicationRepository interface {
	// Create persists a new application.
	Create(ctx context.Context, app *models.Application) (*models.Application, error)
	// FindByID retrieves an application by its identifier.
	FindByID(ctx context.Context, id string) (*models.Application, error)
	// FindAll returns every application, newest first.
	FindAll(ctx context.Context) ([]*models.Application, error)
	// SetActive flips the active flag on an application.
	SetActive(ctx context.Context, id string, active bool) error
	// FindEntries returns the waitlist entries of one application in signup order.
	FindEntries(ctx context.Context, applicationID string, limit, offset int) ([]*models.WaitlistEntry, error)
}

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (ar *applicationRepository) Create(ctx context.Context, app *models.Application) (*models.Application, error) {
	if err := ar.db.WithContext(ctx).Create(app).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || apperrors.IsDuplicateKeyError(err) {
			return nil, apperrors.NewConflictError("application already exists", err)
		}
		return nil, apperrors.NewDatabaseError("unable to create application", err)
	}
	return app, nil
}

func (ar *applicationRepository) FindByID(ctx context.Context, id string) (*models.Application, error) {
	var app models.Application
	if err := ar.db.WithContext(ctx).First(&app, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("application not found", err)
		}
		return nil, apperrors.NewDatabaseError("failed to fetch application", err)
	}
	return &app, nil
}

func (ar *applicationRepository) FindAll(ctx context.Context) ([]*models.Application, error) {
	var apps []*models.Application
	if err := ar.db.WithContext(ctx).Order("created_at DESC").Find(&apps).Error; err != nil {
		return nil, apperrors.NewDatabaseError("unable to fetch applications", err)
	}
	return apps, nil
}

func (ar *applicationRepository) SetActive(ctx context.Context, id string, active bool) error {
	result := ar.db.WithContext(ctx).
		Model(&models.Application{}).
		Where("id = ?", id).
		Update("active", active)

	if result.Error != nil {
		return apperrors.NewDatabaseError("unable to update application", result.Error)
	}

	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("application not found", nil)
	}

	return nil
}

func (ar *applicationRepository) FindEntries(ctx context.Context, applicationID string, limit, offset int) ([]*models.WaitlistEntry, error) {
	var entries []*models.WaitlistEntry

	query := ar.db.WithContext(ctx).
		Where("application_id = ?", applicationID).
		Order("created_at ASC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&entries).Error; err != nil {
		return nil, apperrors.NewDatabaseError("unable to fetch waitlist entries", err)
	}

	return entries, nil
}
