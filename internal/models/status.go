package models

import "gorm.io/gorm"

// Status is a named stage of the order lifecycle. Position is a display
// ordering hint only; any status may follow any other.
type Status struct {
	gorm.Model

	Name     string `gorm:"uniqueIndex;not null"`
	Position int    `gorm:"not null;default:0"`
}

// StatusNew is the display name for orders without a status row.
const StatusNew = "new"
