package models

import "time"

// AuditLog records one admin mutation. Rows are append-only.
type AuditLog struct {
	ID         string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	ActorID    string    `json:"actor_id" gorm:"type:varchar(36);index"`
	ActorRole  Role      `json:"actor_role" gorm:"type:varchar(20)"`
	Action     string    `json:"action" gorm:"type:varchar(100);index"` // e.g. "coupon.create", "order.status_change"
	EntityType string    `json:"entity_type" gorm:"type:varchar(50)"`
	EntityID   string    `json:"entity_id" gorm:"type:varchar(36);index"`
	Detail     string    `json:"detail"`
	CreatedAt  time.Time `json:"created_at"`
}
