package handlers_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/orderdesk-dev/orderdesk/db"
	"github.com/orderdesk-dev/orderdesk/internal/auth"
	"github.com/orderdesk-dev/orderdesk/internal/handlers"
	"github.com/orderdesk-dev/orderdesk/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTest points the global connection at an isolated in-memory database
// and configures the JWT secret.
func setupTest(t *testing.T) *gorm.DB {
	t.Helper()

	gin.SetMode(gin.TestMode)

	t.Setenv("JWT_SECRET", "handler-test-secret")
	require.NoError(t, auth.InitJWTSecret())

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

	db.DB = conn

	return conn
}

// createUserWithRoles stores a user holding the given roles and returns it
// with an auth cookie for requests on its behalf.
func createUserWithRoles(t *testing.T, conn *gorm.DB, name string, roles ...string) (*models.User, *http.Cookie) {
	t.Helper()

	user := models.User{
		Name:         name,
		Email:        strings.ToLower(name) + "@example.com",
		PasswordHash: "x",
	}
	require.NoError(t, conn.Create(&user).Error)

	for _, roleName := range roles {
		var role models.Role
		require.NoError(t, conn.Where("name = ?", roleName).First(&role).Error)
		require.NoError(t, conn.Create(&models.UserRole{UserID: user.ID, RoleID: role.ID}).Error)
	}

	token, err := auth.GenerateJWT(user.ID, user.Email)
	require.NoError(t, err)

	return &user, &http.Cookie{Name: "token", Value: token}
}

func doRequest(t *testing.T, r *gin.Engine, method, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	return rec
}

func cartCookieFrom(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()

	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == handlers.CartCookie {
			return cookie
		}
	}

	t.Fatal("no cart session cookie in response")
	return nil
}
