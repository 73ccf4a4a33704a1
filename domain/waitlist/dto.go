package waitlist

import (
	"github.com/pdelaplana/marvin/internal/models"
	"github.com/pdelaplana/marvin/pkg/constants"
)

// JoinWaitlistRequest is the public signup payload. Presence is enforced by
// binding; syntax and referential checks happen in the service so every
// missing-field combination maps to the same fixed 400 response.
type JoinWaitlistRequest struct {
	ApplicationID string `json:"applicationId" binding:"required"`
	Email         string `json:"email" binding:"required"`
	SourceURL     string `json:"sourceUrl" binding:"required"`
	Country       string `json:"country" binding:"omitempty,alpha,min=2,max=3"`
}

// RequestMetadata carries per-request attributes captured at the HTTP edge.
type RequestMetadata struct {
	IPAddress string
	UserAgent string
	Referrer  string
}

type JoinWaitlistResponse struct {
	ID       string `json:"-"`
	Position int64  `json:"position"`
}

type WaitlistEntryResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	SourceURL string `json:"source_url"`
	Country   string `json:"country,omitempty"`
	CreatedAt string `json:"created_at"`
}

// ========================================
// Mappers
// ========================================

func ToWaitlistEntryModel(req *JoinWaitlistRequest, meta *RequestMetadata) *models.WaitlistEntry {
	if req == nil {
		return nil
	}
	entry := &models.WaitlistEntry{
		ApplicationID: req.ApplicationID,
		Email:         req.Email,
		SourceURL:     req.SourceURL,
		Country:       req.Country,
	}
	if meta != nil {
		entry.IPAddress = meta.IPAddress
		entry.UserAgent = meta.UserAgent
		entry.Referrer = meta.Referrer
	}
	return entry
}

func ToWaitlistEntryResponse(entry *models.WaitlistEntry) WaitlistEntryResponse {
	if entry == nil {
		return WaitlistEntryResponse{}
	}
	return WaitlistEntryResponse{
		ID:        entry.ID,
		Email:     entry.Email,
		SourceURL: entry.SourceURL,
		Country:   entry.Country,
		CreatedAt: entry.CreatedAt.Format(constants.RFC3339DateTimeFormat),
	}
}
