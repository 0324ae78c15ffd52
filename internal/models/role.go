package models

import (
	"time"

	"gorm.io/gorm"
)

// Built-in role names. Additional roles can be created at runtime.
const (
	RoleAdmin    = "admin"
	RoleExecutor = "executor"
	RoleClient   = "client"
)

type Role struct {
	gorm.Model

	Name string `gorm:"uniqueIndex;not null"`
}

// UserRole grants a role to a user. The composite unique index rejects
// duplicate grants at the storage layer. No soft delete: a revoked grant must
// not block a later re-grant on the unique index.
type UserRole struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time

	UserID uint `gorm:"not null;uniqueIndex:idx_user_role"`
	RoleID uint `gorm:"not null;uniqueIndex:idx_user_role"`

	// Relationships
	User User `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Role Role `gorm:"foreignKey:RoleID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
