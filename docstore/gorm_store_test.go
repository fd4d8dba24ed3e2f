package docstore_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/felizhandmade/feliz-store/docstore"
	"github.com/felizhandmade/feliz-store/models"
)

func setupStore(t *testing.T) *docstore.GormStore {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(&models.Document{}); err != nil {
		t.Fatal(err)
	}
	return docstore.NewGormStore(db)
}

func TestUpsertCreatesAndMerges(t *testing.T) {
	s := setupStore(t)

	assert.NoError(t, s.Upsert("vlog_video_posts", "v-1", docstore.Doc{
		"title": "Studio tour", "sort_order": 10,
	}))

	// Merge: new field added, old field kept.
	assert.NoError(t, s.Upsert("vlog_video_posts", "v-1", docstore.Doc{
		"video_url": "https://example.com/v1",
	}))

	doc, err := s.Get("vlog_video_posts", "v-1")
	assert.NoError(t, err)
	assert.Equal(t, "Studio tour", doc["title"])
	assert.Equal(t, "https://example.com/v1", doc["video_url"])
	assert.Equal(t, "v-1", doc["id"])
}

func TestGetMissingReturnsNil(t *testing.T) {
	s := setupStore(t)
	doc, err := s.Get("pages", "nope")
	assert.NoError(t, err)
	assert.Nil(t, doc)
}

func TestUpdateRequiresExistingDocument(t *testing.T) {
	s := setupStore(t)

	err := s.Update("orders_meta", "missing", docstore.Doc{"status": "paid"})
	assert.ErrorIs(t, err, docstore.ErrNotFound)

	assert.NoError(t, s.Upsert("orders_meta", "o-1", docstore.Doc{"status": "pending"}))
	assert.NoError(t, s.Update("orders_meta", "o-1", docstore.Doc{"status": "paid"}))

	doc, err := s.Get("orders_meta", "o-1")
	assert.NoError(t, err)
	assert.Equal(t, "paid", doc["status"])
}

func TestListFilterSortLimit(t *testing.T) {
	s := setupStore(t)
	assert.NoError(t, s.Upsert("posts", "a", docstore.Doc{"kind": "exp", "sort_order": 30}))
	assert.NoError(t, s.Upsert("posts", "b", docstore.Doc{"kind": "exp", "sort_order": 10}))
	assert.NoError(t, s.Upsert("posts", "c", docstore.Doc{"kind": "video", "sort_order": 20}))

	docs, err := s.List("posts", docstore.ListOptions{
		Where:   []docstore.Filter{{Field: "kind", Value: "exp"}},
		OrderBy: "sort_order",
	})
	assert.NoError(t, err)
	assert.Len(t, docs, 2)
	assert.Equal(t, "b", docs[0]["id"])
	assert.Equal(t, "a", docs[1]["id"])

	docs, err = s.List("posts", docstore.ListOptions{OrderBy: "sort_order", Desc: true, Limit: 1})
	assert.NoError(t, err)
	assert.Len(t, docs, 1)
	assert.Equal(t, "a", docs[0]["id"])
}

func TestDelete(t *testing.T) {
	s := setupStore(t)
	assert.NoError(t, s.Upsert("pages", "about", docstore.Doc{"title": "About"}))
	assert.NoError(t, s.Delete("pages", "about"))

	doc, err := s.Get("pages", "about")
	assert.NoError(t, err)
	assert.Nil(t, doc)

	docs, err := s.List("pages", docstore.ListOptions{})
	assert.NoError(t, err)
	assert.Empty(t, docs)
}
