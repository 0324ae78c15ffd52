package models

import "errors"

var (
	// ErrConflict means a write collided with an existing row.
	ErrConflict = errors.New("record conflicts with existing data")
	// ErrRoleUnconfigured means a built-in role row is missing entirely.
	ErrRoleUnconfigured = errors.New("role is not configured")
	// ErrEmptyCart means an order confirmation was attempted with no cart lines.
	ErrEmptyCart = errors.New("cart is empty")
)
