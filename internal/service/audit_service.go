package service

import (
	"context"
	"log"
	"time"

	"clinicportal/internal/model"
	"clinicportal/internal/repository"
)

// AuditService records privileged actions. Recording never fails the action itself.
type AuditService interface {
	Record(ctx context.Context, sess *model.Session, action, subject string, err error)
	Recent(ctx context.Context, limit int) ([]model.AuditEntry, error)
}

type auditService struct {
	repo repository.AuditRepository
	now  func() time.Time
}

// NewAuditService creates an audit service. A nil repository disables the audit log.
func NewAuditService(repo repository.AuditRepository) AuditService {
	return &auditService{repo: repo, now: time.Now}
}

// Record stores the outcome of action. err is the action's result; nil means success.
func (s *auditService) Record(ctx context.Context, sess *model.Session, action, subject string, err error) {
	if s.repo == nil {
		return
	}
	entry := &model.AuditEntry{
		Action:    action,
		Subject:   subject,
		Success:   err == nil,
		CreatedAt: s.now(),
	}
	if sess != nil {
		entry.SessionID = sess.ID
		entry.Role = sess.Role.String()
	}
	if err != nil {
		entry.Message = truncate(err.Error(), 500)
	}
	// The request may already be finished; the entry should still land.
	if werr := s.repo.Create(context.WithoutCancel(ctx), entry); werr != nil {
		log.Printf("audit: record %s: %v", action, werr)
	}
}

// Recent returns the newest audit entries, or none when the audit log is off.
func (s *auditService) Recent(ctx context.Context, limit int) ([]model.AuditEntry, error) {
	if s.repo == nil {
		return []model.AuditEntry{}, nil
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.repo.ListRecent(ctx, limit)
}

// truncate keeps the first n characters of s.
func truncate(s string, n int) string {
	count := 0
	for pos := range s {
		if count == n {
			return s[:pos]
		}
		count++
	}
	return s
}
