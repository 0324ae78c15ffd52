package services

import (
	"errors"

	"github.com/orderdesk-dev/orderdesk/internal/models"
	"gorm.io/gorm"
)

// Grant results, reported to the admin UI as-is.
const (
	GrantCreated = "created"
	GrantExisted = "existed"
	GrantError   = "error"
)

// RoleService manages role memberships.
type RoleService struct {
	DB *gorm.DB
}

func NewRoleService(conn *gorm.DB) *RoleService {
	return &RoleService{DB: conn}
}

// Grant gives the user the role. Idempotent: an existing grant reports
// "existed" without mutation. The unique index on (user_id, role_id) closes
// the check-then-act race; a concurrent duplicate insert also reports
// "existed".
func (s *RoleService) Grant(userID, roleID uint) string {
	var existing int64
	err := s.DB.Model(&models.UserRole{}).
		Where("user_id = ? AND role_id = ?", userID, roleID).
		Count(&existing).Error
	if err != nil {
		return GrantError
	}
	if existing > 0 {
		return GrantExisted
	}

	err = s.DB.Create(&models.UserRole{UserID: userID, RoleID: roleID}).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return GrantExisted
	}
	if err != nil {
		return GrantError
	}

	return GrantCreated
}

// Revoke removes the membership and reports whether a row was actually
// deleted.
func (s *RoleService) Revoke(userID, roleID uint) (bool, error) {
	res := s.DB.
		Where("user_id = ? AND role_id = ?", userID, roleID).
		Delete(&models.UserRole{})

	return res.RowsAffected > 0, res.Error
}

// Executors lists the users holding the executor role. When the role itself
// is missing it returns ErrRoleUnconfigured instead of dereferencing nothing.
func (s *RoleService) Executors() ([]models.User, error) {
	var role models.Role
	err := s.DB.Where("name = ?", models.RoleExecutor).First(&role).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrRoleUnconfigured
	}
	if err != nil {
		return nil, err
	}

	memberIDs := s.DB.Model(&models.UserRole{}).
		Select("user_id").
		Where("role_id = ?", role.ID)

	var executors []models.User
	if err := s.DB.Where("id IN (?)", memberIDs).Find(&executors).Error; err != nil {
		return nil, err
	}

	return executors, nil
}
