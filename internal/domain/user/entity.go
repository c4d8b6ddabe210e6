package user

import (
	"time"

	"github.com/google/uuid"
)

// Role represents user role in the system (matches user_role enum)
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleModerator Role = "moderator"
	RoleMember    Role = "member"
	RolePending   Role = "pending"
)

// NormalizeRole maps a raw role value to a closed variant. Unknown or
// empty values collapse to member so a malformed record can never
// resolve to an elevated role.
func NormalizeRole(raw string) Role {
	switch Role(raw) {
	case RoleAdmin, RoleModerator, RoleMember, RolePending:
		return Role(raw)
	default:
		return RoleMember
	}
}

// IsValidRole checks if role is one of the closed variants
func IsValidRole(role string) bool {
	switch Role(role) {
	case RoleAdmin, RoleModerator, RoleMember, RolePending:
		return true
	}
	return false
}

// User represents a user account (matches users table)
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         Role      `db:"role" json:"role"`
	IsBanned     bool      `db:"is_banned" json:"is_banned"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// IsAdmin returns true if user is an admin
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsStaff returns true if user is an admin or moderator
func (u *User) IsStaff() bool {
	return u.Role == RoleAdmin || u.Role == RoleModerator
}

// IsActive returns true if user is not banned
func (u *User) IsActive() bool {
	return !u.IsBanned
}
