package models

import "time"

// OrderExecutor links an order to an assigned executor. The composite unique
// index rejects duplicate assignments at the storage layer. No soft delete: a
// revoked assignment must not block a later re-assignment on the unique index.
type OrderExecutor struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time

	OrderID uint `gorm:"not null;uniqueIndex:idx_order_executor"`
	UserID  uint `gorm:"not null;uniqueIndex:idx_order_executor"`

	// Relationships
	Order Order `gorm:"foreignKey:OrderID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	User  User  `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
