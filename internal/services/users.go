package services

import (
	"errors"
	"strings"

	"github.com/orderdesk-dev/orderdesk/internal/models"
	"github.com/orderdesk-dev/orderdesk/internal/types"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService implements the admin user queries and mutations.
type UserService struct {
	DB *gorm.DB
}

func NewUserService(conn *gorm.DB) *UserService {
	return &UserService{DB: conn}
}

// UserListing is one page of users plus the role list for the filter UI.
type UserListing struct {
	Users types.Page[models.User] `json:"users"`
	Roles []models.Role           `json:"roles"`
}

type CreateUserParams struct {
	Name         string
	Email        string
	Address      string
	Organization string
	PhoneNumber  string
	Password     string
}

// List returns users, optionally restricted to one role's members. Zero
// roleID means no filter.
func (s *UserService) List(roleID uint, page int) (UserListing, error) {
	listing := UserListing{}

	query := s.DB.Model(&models.User{})

	if roleID != 0 {
		memberIDs := s.DB.Model(&models.UserRole{}).
			Select("user_id").
			Where("role_id = ?", roleID)
		query = query.Where("id IN (?)", memberIDs)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return listing, err
	}

	var users []models.User
	err := query.
		Order("id").
		Limit(types.PageSize).
		Offset(types.Offset(page)).
		Find(&users).Error
	if err != nil {
		return listing, err
	}

	listing.Users = types.NewPage(users, page, total)

	if err := s.DB.Order("id").Find(&listing.Roles).Error; err != nil {
		return listing, err
	}

	return listing, nil
}

// Create stores a new user with a bcrypt password hash. A taken email maps
// to ErrConflict.
func (s *UserService) Create(params CreateUserParams) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Name:         params.Name,
		Email:        strings.ToLower(strings.TrimSpace(params.Email)),
		Address:      params.Address,
		Organization: params.Organization,
		PhoneNumber:  params.PhoneNumber,
		PasswordHash: string(hash),
	}

	err = s.DB.Create(&user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, models.ErrConflict
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// Delete removes the user if the id resolves; false otherwise.
func (s *UserService) Delete(userID uint) (bool, error) {
	var user models.User
	if err := s.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	if err := s.DB.Delete(&user).Error; err != nil {
		return false, err
	}

	return true, nil
}

// DeleteComment removes the comment if the id resolves; false otherwise.
func (s *UserService) DeleteComment(commentID uint) (bool, error) {
	var comment models.Comment
	if err := s.DB.First(&comment, commentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	if err := s.DB.Delete(&comment).Error; err != nil {
		return false, err
	}

	return true, nil
}

// Info returns one user with memberships loaded plus the full role list, for
// the role-management page.
func (s *UserService) Info(userID uint) (*models.User, []models.Role, error) {
	var roles []models.Role
	if err := s.DB.Order("id").Find(&roles).Error; err != nil {
		return nil, nil, err
	}

	var user models.User
	err := s.DB.Preload("Memberships.Role").First(&user, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, roles, nil
	}
	if err != nil {
		return nil, roles, err
	}

	return &user, roles, nil
}
