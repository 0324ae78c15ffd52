package models

import "gorm.io/gorm"

type Comment struct {
	gorm.Model

	OrderID uint   `gorm:"not null;index"`
	UserID  uint   `gorm:"not null;index"`
	Text    string `gorm:"not null"`

	// Relationships
	User User `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
