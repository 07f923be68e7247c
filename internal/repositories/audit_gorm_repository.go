package repositories

import (
	"fmt"

	"storefront/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMAuditRepository is a GORM implementation of AuditRepository.
type GORMAuditRepository struct {
	db *gorm.DB
}

// NewGORMAuditRepository creates a new instance of GORMAuditRepository.
func NewGORMAuditRepository(db *gorm.DB) *GORMAuditRepository {
	return &GORMAuditRepository{
		db: db,
	}
}

// Append records one audit entry. Entries are never updated or deleted.
func (r *GORMAuditRepository) Append(entry *models.AuditLog) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if err := r.db.Create(entry).Error; err != nil {
		return fmt.Errorf("failed to append audit entry: %w", err)
	}
	return nil
}

// GetRecent retrieves the most recent audit entries.
func (r *GORMAuditRepository) GetRecent(limit int) ([]models.AuditLog, error) {
	var entries []models.AuditLog
	if err := r.db.Order("created_at DESC").Limit(limit).Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to get audit entries: %w", err)
	}
	return entries, nil
}
