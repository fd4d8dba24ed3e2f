package docstore

import "errors"

// ErrNotFound is returned by Update when the target document does not exist.
var ErrNotFound = errors.New("document not found")

// Doc is a decoded document body. The "id", "created_at" and "updated_at"
// fields are filled in by the store on reads.
type Doc map[string]any

// Filter is an equality condition on a document field.
type Filter struct {
	Field string
	Value any
}

type ListOptions struct {
	Where   []Filter
	OrderBy string
	Desc    bool
	Limit   int
}

// Store is the generic collection API the admin content screens run on. The
// backend enforces no schema; only calling convention does.
type Store interface {
	List(collection string, opt ListOptions) ([]Doc, error)
	// Get returns nil with no error when the document does not exist.
	Get(collection, id string) (Doc, error)
	// Upsert merges data into the document, creating it if needed.
	Upsert(collection, id string, data Doc) error
	// Update writes only the given fields and fails on a missing document.
	Update(collection, id string, fields Doc) error
	Delete(collection, id string) error
}
