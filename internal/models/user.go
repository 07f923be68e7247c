package models

import "gorm.io/gorm"

// Role identifies the access level of a user account.
type Role string

const (
	RoleUser       Role = "USER"
	RoleAdmin      Role = "ADMIN"
	RoleSuperAdmin Role = "SUPER_ADMIN"
)

// Permission is a capability required by an admin-only operation.
type Permission string

const (
	PermManageCoupons  Permission = "manage_coupons"
	PermManageOrders   Permission = "manage_orders"
	PermManageProducts Permission = "manage_products"
	PermManageBlog     Permission = "manage_blog"
	PermViewAuditLog   Permission = "view_audit_log"
)

// rolePermissions maps each role to the permissions it grants.
// SUPER_ADMIN is a superset of ADMIN; plain users hold no admin permissions.
var rolePermissions = map[Role]map[Permission]bool{
	RoleAdmin: {
		PermManageCoupons:  true,
		PermManageOrders:   true,
		PermManageProducts: true,
		PermManageBlog:     true,
	},
	RoleSuperAdmin: {
		PermManageCoupons:  true,
		PermManageOrders:   true,
		PermManageProducts: true,
		PermManageBlog:     true,
		PermViewAuditLog:   true,
	},
}

// Authorize reports whether the given role grants the given permission.
// This is the single authorization check shared by every admin operation.
func Authorize(role Role, perm Permission) bool {
	return rolePermissions[role][perm]
}

// User represents a user of the store.
type User struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Username   string `json:"username" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=3,max=100"`
	Email      string `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password   string `gorm:"type:varchar(255)" validate:"required,min=6"` // No json tag for security
	Role       Role   `json:"role" gorm:"type:varchar(20);default:'USER'"`
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
