package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/orderdesk-dev/orderdesk/db"
	"github.com/orderdesk-dev/orderdesk/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory database migrated and seeded like
// production.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))

	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = conn.AutoMigrate(
		&models.User{},
		&models.Role{},
		&models.UserRole{},
		&models.Service{},
		&models.Status{},
		&models.Order{},
		&models.OrderItem{},
		&models.OrderExecutor{},
		&models.Comment{},
		&models.ContactRequest{},
	)
	require.NoError(t, err)

	require.NoError(t, db.Seed(conn))

	return conn
}

func itoa(id uint) string {
	return fmt.Sprintf("%d", id)
}

func createUser(t *testing.T, conn *gorm.DB, name string) *models.User {
	t.Helper()

	user := models.User{
		Name:         name,
		Email:        strings.ToLower(name) + "@example.com",
		PasswordHash: "x",
	}
	require.NoError(t, conn.Create(&user).Error)

	return &user
}

func roleID(t *testing.T, conn *gorm.DB, name string) uint {
	t.Helper()

	var role models.Role
	require.NoError(t, conn.Where("name = ?", name).First(&role).Error)

	return role.ID
}

func statusID(t *testing.T, conn *gorm.DB, name string) uint {
	t.Helper()

	var status models.Status
	require.NoError(t, conn.Where("name = ?", name).First(&status).Error)

	return status.ID
}

func createOrder(t *testing.T, conn *gorm.DB, clientID uint, status *uint) *models.Order {
	t.Helper()

	order := models.Order{UserID: clientID, StatusID: status}
	require.NoError(t, conn.Create(&order).Error)

	return &order
}

// createExecutor creates a user already holding the executor role.
func createExecutor(t *testing.T, conn *gorm.DB, name string) *models.User {
	t.Helper()

	user := createUser(t, conn, name)
	grant := models.UserRole{UserID: user.ID, RoleID: roleID(t, conn, models.RoleExecutor)}
	require.NoError(t, conn.Create(&grant).Error)

	return user
}
