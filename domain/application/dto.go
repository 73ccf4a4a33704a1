package application

import (
	"github.com/pdelaplana/marvin/internal/models"
	"github.com/pdelaplana/marvin/pkg/constants"
)

type CreateApplicationRequest struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
}

type SetActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

type ApplicationResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Active    bool   `json:"active"`
	CreatedAt string `json:"created_at"`
}

type ApplicationEntryResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	SourceURL string `json:"source_url"`
	Country   string `json:"country,omitempty"`
	CreatedAt string `json:"created_at"`
}

// ========================================
// Mappers
// ========================================

func ToApplicationModel(req *CreateApplicationRequest) *models.Application {
	if req == nil {
		return nil
	}
	return &models.Application{
		Name:   req.Name,
		Active: true,
	}
}

func ToApplicationResponse(app *models.Application) ApplicationResponse {
	if app == nil {
		return ApplicationResponse{}
	}
	return ApplicationResponse{
		ID:        app.ID,
		Name:      app.Name,
		Active:    app.Active,
		CreatedAt: app.CreatedAt.Format(constants.RFC3339DateTimeFormat),
	}
}

func ToApplicationEntryResponse(entry *models.WaitlistEntry) ApplicationEntryResponse {
	if entry == nil {
		return ApplicationEntryResponse{}
	}
	return ApplicationEntryResponse{
		ID:        entry.ID,
		Email:     entry.Email,
		SourceURL: entry.SourceURL,
		Country:   entry.Country,
		CreatedAt: entry.CreatedAt.Format(constants.RFC3339DateTimeFormat),
	}
}
