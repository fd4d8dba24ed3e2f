package cart

import (
	"sync"

	"github.com/google/uuid"
)

// Store keeps one cart per shopper token. Each browser tab holding its own
// token is an independent actor; there is no cross-tab coordination.
type Store struct {
	mu       sync.Mutex
	carts    map[string]*Cart
	notifier Notifier
}

func NewStore(n Notifier) *Store {
	return &Store{
		carts:    make(map[string]*Cart),
		notifier: n,
	}
}

// Create returns a fresh cart token.
func (s *Store) Create() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	token := uuid.NewString()
	s.carts[token] = New(s.notifier)
	return token
}

// Get returns the cart for a token, or nil if the token is unknown.
func (s *Store) Get(token string) *Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.carts[token]
}

// Drop forgets a cart entirely (session teardown).
func (s *Store) Drop(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, token)
}
