package session

import (
	"sync"

	"github.com/google/uuid"
	"github.com/orderdesk-dev/orderdesk/internal/cart"
)

// Store keeps per-session carts in memory, keyed by an opaque session token.
// Carts live for the session only; confirming an order or losing the token
// discards them. Concurrent requests for the same token are last-write-wins.
type Store struct {
	mu    sync.RWMutex
	carts map[string]*cart.Cart
}

func NewStore() *Store {
	return &Store{carts: make(map[string]*cart.Cart)}
}

// NewToken returns a fresh session token.
func NewToken() string {
	return uuid.NewString()
}

// Cart returns a snapshot of the session's cart, or false when the session
// has no cart yet.
func (s *Store) Cart(token string) (*cart.Cart, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored, ok := s.carts[token]
	if !ok {
		return nil, false
	}

	return stored.Clone(), true
}

// Put stores the cart snapshot for the session, creating the session entry on
// first write.
func (s *Store) Put(token string, c *cart.Cart) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.carts[token] = c.Clone()
}

// Clear removes the session's cart, e.g. after order confirmation.
func (s *Store) Clear(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, token)
}
