package models

import "time"

// Role IDs used by route guards.
const (
	RoleBrother = 1 // may submit points and view the queue
	RoleEboard  = 2 // may approve or reject submissions
	RoleAdmin   = 3 // full access, including purging the pending queue
)

type User struct {
	UserID      int        `gorm:"primaryKey;column:user_id" json:"user_id"`
	Username    string     `gorm:"column:username;unique" json:"username"`
	DisplayName string     `gorm:"column:display_name" json:"display_name"`
	Password    string     `gorm:"column:password" json:"-"`
	RoleID      int        `gorm:"column:role_id" json:"role_id"`
	CreateAt    *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt    *time.Time `gorm:"column:update_at" json:"update_at"`
	DeleteAt    *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`

	// Relations
	Role Role `gorm:"foreignKey:RoleID" json:"role,omitempty"`
}

type Role struct {
	RoleID   int        `gorm:"primaryKey;column:role_id" json:"role_id"`
	Role     string     `gorm:"column:role" json:"role"`
	CreateAt *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt *time.Time `gorm:"column:update_at" json:"update_at"`
	DeleteAt *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`
}

// CanApprove reports whether the role may decide pending submissions.
func CanApprove(roleID int) bool {
	return roleID == RoleEboard || roleID == RoleAdmin
}

// TableName overrides
func (User) TableName() string {
	return "users"
}

func (Role) TableName() string {
	return "roles"
}
