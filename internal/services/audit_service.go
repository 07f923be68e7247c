package services

import (
	"log"

	"storefront/internal/models"
	"storefront/internal/repositories"
)

// AuditService appends admin actions to the audit log. Recording is
// best-effort: a failed append is logged and never blocks the operation
// being audited.
type AuditService struct {
	auditRepo repositories.AuditRepository
}

// NewAuditService creates a new AuditService.
func NewAuditService(auditRepo repositories.AuditRepository) *AuditService {
	return &AuditService{
		auditRepo: auditRepo,
	}
}

// Record appends one audit entry for the actor's action.
func (s *AuditService) Record(actor *models.User, action, entityType, entityID, detail string) {
	if s == nil || s.auditRepo == nil {
		return
	}
	entry := &models.AuditLog{
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Detail:     detail,
	}
	if actor != nil {
		entry.ActorID = actor.ID
		entry.ActorRole = actor.Role
	}
	if err := s.auditRepo.Append(entry); err != nil {
		log.Printf("Warning: failed to append audit entry for %s on %s/%s: %v", action, entityType, entityID, err)
	}
}

// Recent returns the most recent audit entries.
func (s *AuditService) Recent(limit int) ([]models.AuditLog, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	return s.auditRepo.GetRecent(limit)
}
