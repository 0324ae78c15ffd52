package db

import (
	"errors"

	"github.com/orderdesk-dev/orderdesk/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDatabase(dsn string) error {
	var err error

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})

	if err != nil {
		return err
	}

	return nil
}

func MigrateDatabase() error {
	models := []interface{}{
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
	}

	return DB.AutoMigrate(models...)
}

// SeedDefaults creates the built-in roles and the default status set if they
// are missing. Safe to run on every startup.
func SeedDefaults() error {
	return Seed(DB)
}

func Seed(conn *gorm.DB) error {
	roles := []string{models.RoleAdmin, models.RoleExecutor, models.RoleClient}

	for _, name := range roles {
		var role models.Role

		err := conn.Where("name = ?", name).First(&role).Error

		if errors.Is(err, gorm.ErrRecordNotFound) {
			err = conn.Create(&models.Role{Name: name}).Error
		}

		if err != nil {
			return err
		}
	}

	statuses := []models.Status{
		{Name: "in progress", Position: 1},
		{Name: "done", Position: 2},
	}

	for _, status := range statuses {
		var existing models.Status

		err := conn.Where("name = ?", status.Name).First(&existing).Error

		if errors.Is(err, gorm.ErrRecordNotFound) {
			err = conn.Create(&status).Error
		}

		if err != nil {
			return err
		}
	}

	return nil
}
