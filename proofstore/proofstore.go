// Package proofstore persists proof-of-payment images. Two deployment modes
// exist: plain files served from the uploads directory, or inline base64
// data URLs stored directly in the order row to avoid any storage tier.
package proofstore

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Store saves one proof image keyed by order id and returns the value to
// persist in the order's proof_url field.
type Store interface {
	SaveProof(orderID, filename string, r io.Reader) (string, error)
}

// DiskStore writes proofs under <Dir>/order-proofs and returns a URL path
// under /uploads, matching how the router serves the uploads directory.
type DiskStore struct {
	Dir string
}

func NewDiskStore(dir string) *DiskStore {
	return &DiskStore{Dir: dir}
}

func (s *DiskStore) SaveProof(orderID, filename string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp":
	default:
		ext = ".jpg"
	}

	dir := filepath.Join(s.Dir, "order-proofs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	// Keyed by order id so proofs from different orders cannot collide.
	name := orderID + ext
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", err
	}
	return fmt.Sprintf("/uploads/order-proofs/%s", name), nil
}
