package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WaitlistEntry is one signup record tied to an Application. Entries are
// immutable after creation; email uniqueness per application is enforced by
// the composite unique index, not in application code.
type WaitlistEntry struct {
	ID            string    `gorm:"type:text;primaryKey" json:"id"`
	ApplicationID string    `gorm:"not null;uniqueIndex:idx_waitlist_app_email" json:"application_id"`
	Email         string    `gorm:"not null;uniqueIndex:idx_waitlist_app_email" json:"email"`
	SourceURL     string    `gorm:"not null" json:"source_url"`
	Country       string    `gorm:"type:varchar(3)" json:"country,omitempty"`
	IPAddress     string    `json:"ip_address,omitempty"`
	UserAgent     string    `json:"user_agent,omitempty"`
	Referrer      string    `json:"referrer,omitempty"`
	CreatedAt     time.Time `gorm:"not null;index" json:"created_at"`

	Application Application `gorm:"foreignKey:ApplicationID" json:"-"`
}

func (e *WaitlistEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	return nil
}
