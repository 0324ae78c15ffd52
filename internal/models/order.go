package models

import "gorm.io/gorm"

// Order is a client's request for one or more services. A nil StatusID means
// the order is new and has not been taken into processing yet.
type Order struct {
	gorm.Model

	UserID      uint  `gorm:"not null;index"`
	StatusID    *uint `gorm:"index"`
	Description string

	// Relationships
	User      User            `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Status    *Status         `gorm:"foreignKey:StatusID;constraint:OnUpdate:Cascade,OnDelete:SET NULL"`
	Items     []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Executors []OrderExecutor `gorm:"foreignKey:OrderID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Comments  []Comment       `gorm:"foreignKey:OrderID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}

// OrderItem is one cart line frozen at confirmation time. Price is the unit
// price of the service when the order was placed.
type OrderItem struct {
	gorm.Model

	OrderID   uint `gorm:"not null;index"`
	ServiceID uint `gorm:"not null;index"`
	Quantity  int  `gorm:"not null"`
	Price     float64

	// Relationships
	Service Service `gorm:"foreignKey:ServiceID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
