package waitlist

import (
	"context"
	"net/mail"
	"strings"

	"github.com/pdelaplana/marvin/internal/log"
	apperrors "github.com/pdelaplana/marvin/pkg/errors"
)

type WaitlistService interface {
	// Join validates the referenced application, normalizes the email and
	// inserts exactly one entry. Duplicate (application, email) pairs are
	// detected by the storage layer and reported as a conflict.
	Join(ctx context.Context, req *JoinWaitlistRequest, meta *RequestMetadata) (*JoinWaitlistResponse, error)

	// FindEntryByID retrieves a single waitlist entry.
	FindEntryByID(ctx context.Context, id string) (*WaitlistEntryResponse, error)
}

type waitlistService struct {
	logger     *log.Logger
	repository WaitlistRepository
}

func NewWaitlistService(logger *log.Logger, repository WaitlistRepository) WaitlistService {
	return &waitlistService{logger: logger, repository: repository}
}

func (s *waitlistService) Join(ctx context.Context, req *JoinWaitlistRequest, meta *RequestMetadata) (*JoinWaitlistResponse, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	if req == nil {
		logger.Error("Join received empty request")
		return nil, apperrors.NewInvalidRequestError("Missing required fields", nil)
	}

	// Normalization happens before any other check so the stored value and
	// the uniqueness comparison always see the same form.
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.ApplicationID = strings.TrimSpace(req.ApplicationID)
	req.SourceURL = strings.TrimSpace(req.SourceURL)
	req.Country = strings.ToUpper(strings.TrimSpace(req.Country))

	if req.ApplicationID == "" || req.Email == "" || req.SourceURL == "" {
		logger.Error("Join received request with blank required fields")
		return nil, apperrors.NewInvalidRequestError("Missing required fields", nil)
	}

	// The parsed address must round-trip to the input: RFC 5322 allows
	// display-name forms like `Jane <jane@example.com>` that must not be
	// stored as the email.
	addr, err := mail.ParseAddress(req.Email)
	if err != nil || addr.Address != req.Email || !strings.Contains(emailDomain(req.Email), ".") {
		logger.Error("Join received malformed email", "email", req.Email)
		return nil, apperrors.NewInvalidRequestError("Invalid email address", nil)
	}

	// Read-then-use: the application could vanish between this check and the
	// insert. Accepted; email uniqueness is still atomic at the storage layer.
	app, err := s.repository.FindApplicationByID(ctx, req.ApplicationID)
	if err != nil {
		if apperrors.GetErrorType(err) == apperrors.ErrorTypeNotFound {
			logger.Warn("Join referenced unknown application", "application_id", req.ApplicationID)
			return nil, apperrors.NewInvalidRequestError("Invalid application ID", err)
		}
		logger.Error("Failed to look up application", "application_id", req.ApplicationID, "error", err)
		return nil, err
	}

	if !app.Active {
		logger.Warn("Join referenced inactive application", "application_id", app.ID)
		return nil, apperrors.NewInvalidRequestError("Invalid application ID", nil)
	}

	entry, err := s.repository.CreateEntry(ctx, ToWaitlistEntryModel(req, meta))
	if err != nil {
		logger.Error("Failed to create waitlist entry", "application_id", req.ApplicationID, "error", err)
		return nil, err
	}

	// Ordinal position among the application's signups. Best effort: a count
	// failure after a successful insert must not fail the signup.
	position, err := s.repository.CountEntriesUpTo(ctx, entry.ApplicationID, entry.CreatedAt)
	if err != nil {
		logger.Warn("Failed to compute waitlist position", "entry_id", entry.ID, "error", err)
		position = 0
	}

	return &JoinWaitlistResponse{ID: entry.ID, Position: position}, nil
}

func (s *waitlistService) FindEntryByID(ctx context.Context, id string) (*WaitlistEntryResponse, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	if strings.TrimSpace(id) == "" {
		logger.Error("FindEntryByID received empty ID")
		return nil, apperrors.NewInvalidRequestError("invalid entry ID", nil)
	}

	entry, err := s.repository.FindEntryByID(ctx, id)
	if err != nil {
		logger.Error("Failed to find waitlist entry", "id", id, "error", err)
		return nil, err
	}

	response := ToWaitlistEntryResponse(entry)
	return &response, nil
}

func emailDomain(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return ""
	}
	return email[at+1:]
}
