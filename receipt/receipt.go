// Package receipt keeps the last successful order around for re-display:
// one named slot, overwritten by every new order, never merged.
package receipt

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"
)

type Line struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Price       int64  `json:"price"`
	Quantity    int    `json:"quantity"`
	Meta        string `json:"meta,omitempty"`
}

// Snapshot is the receipt view of one placed order.
type Snapshot struct {
	ID              string    `json:"id"`
	OrderCode       string    `json:"order_code"`
	Status          string    `json:"status"`
	CustomerName    string    `json:"customer_name"`
	CustomerPhone   string    `json:"customer_phone"`
	CustomerAddress string    `json:"customer_address"`
	Total           int64     `json:"total"`
	Items           []Line    `json:"items"`
	PlacedAt        time.Time `json:"placed_at"`
}

// Slot persists the most recent snapshot as a JSON file.
type Slot struct {
	mu   sync.Mutex
	path string
}

func NewSlot(path string) *Slot {
	return &Slot{path: path}
}

// Save overwrites the slot with the new snapshot.
func (s *Slot) Save(snap Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	body, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, body, 0o644)
}

// Load returns the stored snapshot, or nil when no order has been placed yet.
func (s *Slot) Load() (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	body, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal(body, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}
