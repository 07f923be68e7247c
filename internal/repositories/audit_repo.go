package repositories

import "storefront/internal/models"

// AuditRepository defines the interface for the append-only audit log.
type AuditRepository interface {
	Append(entry *models.AuditLog) error
	GetRecent(limit int) ([]models.AuditLog, error)
}
