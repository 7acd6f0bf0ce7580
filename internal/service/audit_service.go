package service

import (
	"context"
	"time"
	"unicode/utf8"

	"datavision/internal/model"
	"datavision/internal/repository"
)

// maxEndpointLen matches the column size of RequestLog.Endpoint.
const maxEndpointLen = 255

// LogEntry is an audit entry joined with the owning user's display name.
type LogEntry struct {
	ID       uint      `json:"id"`
	Username string    `json:"username"`
	Endpoint string    `json:"endpoint"`
	LoggedAt time.Time `json:"logged_at"`
}

// AuditService records and queries the append-only request audit trail.
type AuditService interface {
	Record(ctx context.Context, userID uint, endpoint string) error
	ListForUser(ctx context.Context, userID uint) ([]LogEntry, error)
	ListAll(ctx context.Context) ([]LogEntry, error)
	EndpointStats(ctx context.Context) ([]repository.EndpointCount, error)
}

type auditService struct {
	logRepo repository.LogRepository
}

// NewAuditService creates a new audit service.
func NewAuditService(logRepo repository.LogRepository) AuditService {
	return &auditService{logRepo: logRepo}
}

// Record appends one audit entry. Callers on the request path treat failures
// as best-effort and must not surface them to the client.
func (s *auditService) Record(ctx context.Context, userID uint, endpoint string) error {
	endpoint = truncateEndpoint(endpoint)
	entry := &model.RequestLog{
		UserID:   userID,
		Endpoint: endpoint,
	}
	return s.logRepo.Create(ctx, entry)
}

// ListForUser returns the user's entries, newest first.
func (s *auditService) ListForUser(ctx context.Context, userID uint) ([]LogEntry, error) {
	entries, err := s.logRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toLogEntries(entries), nil
}

// ListAll returns every entry, newest first. Admin-only enforcement lives at
// the route boundary, not here.
func (s *auditService) ListAll(ctx context.Context) ([]LogEntry, error) {
	entries, err := s.logRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return toLogEntries(entries), nil
}

// EndpointStats returns per-endpoint hit counts, most frequent first.
func (s *auditService) EndpointStats(ctx context.Context) ([]repository.EndpointCount, error) {
	return s.logRepo.CountByEndpoint(ctx)
}

// truncateEndpoint caps endpoint at maxEndpointLen bytes without splitting a
// rune, so the stored value stays valid UTF-8 for the column.
func truncateEndpoint(endpoint string) string {
	if len(endpoint) <= maxEndpointLen {
		return endpoint
	}
	cut := maxEndpointLen
	for cut > 0 && !utf8.RuneStart(endpoint[cut]) {
		cut--
	}
	return endpoint[:cut]
}

func toLogEntries(entries []model.RequestLog) []LogEntry {
	out := make([]LogEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, LogEntry{
			ID:       e.ID,
			Username: e.User.Username,
			Endpoint: e.Endpoint,
			LoggedAt: e.CreatedAt,
		})
	}
	return out
}
