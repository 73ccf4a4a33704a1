package waitlist

import (
	"context"
	"errors"
	"time"

	"github.com/pdelaplana/marvin/internal/models"
	apperrors "github.com/pdelaplana/marvin/pkg/errors"
	"gorm.io/gorm"
)

type WaitlistRepository interface {
	// FindApplicationByID retrieves the application a signup refers to.
	FindApplicationByID(ctx context.Context, id string) (*models.Application, error)
	// CreateEntry persists a new waitlist entry. The composite unique index
	// on (application_id, email) is the sole duplicate detection; a violation
	// surfaces as a conflict error.
	CreateEntry(ctx context.Context, entry *models.WaitlistEntry) (*models.WaitlistEntry, error)
	// FindEntryByID retrieves a waitlist entry by its unique ID.
	FindEntryByID(ctx context.Context, id string) (*models.WaitlistEntry, error)
	// CountEntriesUpTo returns the number of entries for an application
	// created at or before the given time. Used for signup position.
	CountEntriesUpTo(ctx context.Context, applicationID string, until time.Time) (int64, error)
}

type waitlistRepository struct {
	db *gorm.DB
}

func NewWaitlistRepository(db *gorm.DB) WaitlistRepository {
	return &waitlistRepository{db: db}
}

func (wr *waitlistRepository) FindApplicationByID(ctx context.Context, id string) (*models.Application, error) {
	var app models.Application

	if err := wr.db.WithContext(ctx).First(&app, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("application not found", err)
		}
		return nil, apperrors.NewDatabaseError("failed to fetch application", err)
	}

	return &app, nil
}

func (wr *waitlistRepository) CreateEntry(ctx context.Context, entry *models.WaitlistEntry) (*models.WaitlistEntry, error) {
	if err := wr.db.WithContext(ctx).Create(entry).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, apperrors.NewConflictError("Email already registered", err)
		}
		return nil, apperrors.NewDatabaseError("unable to create waitlist entry", err)
	}

	return entry, nil
}

func (wr *waitlistRepository) FindEntryByID(ctx context.Context, id string) (*models.WaitlistEntry, error) {
	var entry models.WaitlistEntry

	if err := wr.db.WithContext(ctx).First(&entry, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("waitlist entry not found", err)
		}
		return nil, apperrors.NewDatabaseError("failed to fetch waitlist entry", err)
	}

	return &entry, nil
}

func (wr *waitlistRepository) CountEntriesUpTo(ctx context.Context, applicationID string, until time.Time) (int64, error) {
	var count int64

	err := wr.db.WithContext(ctx).
		Model(&models.WaitlistEntry{}).
		Where("application_id = ? AND created_at <= ?", applicationID, until).
		Count(&count).Error
	if err != nil {
		return 0, apperrors.NewDatabaseError("unable to count waitlist entries", err)
	}

	return count, nil
}

func isDuplicateKey(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) || apperrors.IsDuplicateKeyError(err)
}
