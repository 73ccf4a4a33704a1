package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Application is a tenant namespace under which waitlist entries are grouped.
// Applications are provisioned out-of-band (admin API or CLI) and are
// read-only from the signup handler's perspective.
type Application struct {
	ID        string    `gorm:"type:text;primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Active    bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`

	Entries []WaitlistEntry `gorm:"foreignKey:ApplicationID" json:"-"`
}

func (a *Application) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return nil
}
