package models

import (
	"time"
)

// Role is the access level of a user account
type Role string

const (
	RoleAdmin Role = "admin"
	RoleRW    Role = "rw"
	RoleRT    Role = "rt"
	RoleWarga Role = "warga"
)

// Valid reports whether r is one of the known roles
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleRW, RoleRT, RoleWarga:
		return true
	}
	return false
}

// IsAdmin reports whether r has administrative privileges.
// The single RW account is treated as an administrator.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin || r == RoleRW
}

// Unique index names on the users table, used to translate constraint violations
const (
	UsersUsernameIndex = "uq_users_username"
	UsersEmailIndex    = "uq_users_email"
	UsersRTNumberIndex = "uq_users_rt_number"
	UsersSingleRWIndex = "uq_users_single_rw"
)

// User represents the users table
type User struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Username  string    `json:"username" gorm:"column:username;size:100;not null;uniqueIndex:uq_users_username"`
	Email     *string   `json:"email" gorm:"column:email;size:255;uniqueIndex:uq_users_email"`
	Password  string    `json:"-" gorm:"column:password;not null"`
	Name      string    `json:"name" gorm:"column:name;size:255;not null"`
	Role      Role      `json:"role" gorm:"column:role;size:20;not null;default:warga"`
	RTNumber  *string   `json:"rt_number" gorm:"column:rt_number;size:10"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName sets the insert table name for User
func (User) TableName() string {
	return "users"
}
