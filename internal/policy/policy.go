package policy

import (
	"rw-be-svc/internal/models"
)

// Permission names an action guarded by role
type Permission string

const (
	ComplaintUpdateStatus Permission = "complaint:update_status"
	CommentDeleteAny      Permission = "comment:delete_any"
	UserManage            Permission = "user:manage"
	TransactionCreate     Permission = "transaction:create"
	TransactionRead       Permission = "transaction:read"
	ProfileEditAny        Permission = "profile:edit_any"
	ProfileChangeRole     Permission = "profile:change_role"
)

var allRoles = []models.Role{models.RoleAdmin, models.RoleRW, models.RoleRT, models.RoleWarga}

var admins = []models.Role{models.RoleAdmin, models.RoleRW}

// rules is read-only after init
var rules = map[Permission][]models.Role{
	ComplaintUpdateStatus: {models.RoleAdmin, models.RoleRW, models.RoleRT},
	CommentDeleteAny:      admins,
	UserManage:            admins,
	TransactionCreate:     allRoles,
	TransactionRead:       allRoles,
	ProfileEditAny:        admins,
	ProfileChangeRole:     admins,
}

// Can reports whether role is granted permission. Unknown permissions are denied.
func Can(role models.Role, permission Permission) bool {
	for _, r := range rules[permission] {
		if r == role {
			return true
		}
	}
	return false
}

// Roles returns the roles granted permission
func Roles(permission Permission) []models.Role {
	granted := rules[permission]
	out := make([]models.Role, len(granted))
	copy(out, granted)
	return out
}
