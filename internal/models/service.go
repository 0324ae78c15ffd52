package models

import "gorm.io/gorm"

type Service struct {
	gorm.Model

	Name        string `gorm:"not null"`
	Description string
	Price       float64 `gorm:"not null"`
	Active      bool    `gorm:"not null;default:true"`
}
