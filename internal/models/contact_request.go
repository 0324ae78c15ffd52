package models

import "gorm.io/gorm"

// ContactRequest is a persisted contact-form submission.
type ContactRequest struct {
	gorm.Model

	Name     string `gorm:"not null"`
	Phone    string `gorm:"not null"`
	Comments string
}
