package docstore

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/felizhandmade/feliz-store/models"
)

// GormStore keeps every collection in one documents table with a JSON body.
// Filtering and ordering are applied over the decoded documents; collections
// here are small content sets, not query workloads.
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

func decode(row models.Document) (Doc, error) {
	doc := Doc{}
	if err := json.Unmarshal([]byte(row.Data), &doc); err != nil {
		return nil, fmt.Errorf("decode document %s/%s: %w", row.Collection, row.ID, err)
	}
	doc["id"] = row.ID
	doc["created_at"] = row.CreatedAt.UTC().Format(time.RFC3339Nano)
	doc["updated_at"] = row.UpdatedAt.UTC().Format(time.RFC3339Nano)
	return doc, nil
}

func matches(doc Doc, where []Filter) bool {
	for _, f := range where {
		if fmt.Sprint(doc[f.Field]) != fmt.Sprint(f.Value) {
			return false
		}
	}
	return true
}

// less orders numbers numerically and everything else lexically.
func less(a, b any) bool {
	af, aok := a.(float64)
	bf, bok := b.(float64)
	if aok && bok {
		return af < bf
	}
	return fmt.Sprint(a) < fmt.Sprint(b)
}

func (s *GormStore) List(collection string, opt ListOptions) ([]Doc, error) {
	var rows []models.Document
	if err := s.DB.Where("collection = ?", collection).Find(&rows).Error; err != nil {
		return nil, err
	}

	docs := make([]Doc, 0, len(rows))
	for _, row := range rows {
		doc, err := decode(row)
		if err != nil {
			return nil, err
		}
		if matches(doc, opt.Where) {
			docs = append(docs, doc)
		}
	}

	if opt.OrderBy != "" {
		sort.SliceStable(docs, func(i, j int) bool {
			if opt.Desc {
				return less(docs[j][opt.OrderBy], docs[i][opt.OrderBy])
			}
			return less(docs[i][opt.OrderBy], docs[j][opt.OrderBy])
		})
	}
	if opt.Limit > 0 && len(docs) > opt.Limit {
		docs = docs[:opt.Limit]
	}
	return docs, nil
}

func (s *GormStore) Get(collection, id string) (Doc, error) {
	var row models.Document
	err := s.DB.Where("collection = ? AND id = ?", collection, id).First(&row).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return decode(row)
}

func (s *GormStore) Upsert(collection, id string, data Doc) error {
	var row models.Document
	err := s.DB.Where("collection = ? AND id = ?", collection, id).First(&row).Error
	if err == gorm.ErrRecordNotFound {
		body, merr := json.Marshal(stripMeta(data))
		if merr != nil {
			return merr
		}
		return s.DB.Create(&models.Document{
			Collection: collection,
			ID:         id,
			Data:       string(body),
		}).Error
	}
	if err != nil {
		return err
	}

	existing := map[string]any{}
	if uerr := json.Unmarshal([]byte(row.Data), &existing); uerr != nil {
		return uerr
	}
	for k, v := range stripMeta(data) {
		existing[k] = v
	}
	body, merr := json.Marshal(existing)
	if merr != nil {
		return merr
	}
	return s.DB.Model(&models.Document{}).
		Where("collection = ? AND id = ?", collection, id).
		Updates(map[string]any{"data": string(body), "updated_at": time.Now()}).Error
}

func (s *GormStore) Update(collection, id string, fields Doc) error {
	var row models.Document
	err := s.DB.Where("collection = ? AND id = ?", collection, id).First(&row).Error
	if err == gorm.ErrRecordNotFound {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	existing := map[string]any{}
	if uerr := json.Unmarshal([]byte(row.Data), &existing); uerr != nil {
		return uerr
	}
	for k, v := range stripMeta(fields) {
		existing[k] = v
	}
	body, merr := json.Marshal(existing)
	if merr != nil {
		return merr
	}
	return s.DB.Model(&models.Document{}).
		Where("collection = ? AND id = ?", collection, id).
		Updates(map[string]any{"data": string(body), "updated_at": time.Now()}).Error
}

func (s *GormStore) Delete(collection, id string) error {
	return s.DB.Where("collection = ? AND id = ?", collection, id).
		Delete(&models.Document{}).Error
}

// stripMeta drops the store-managed fields so they never end up duplicated
// inside the JSON body.
func stripMeta(data Doc) Doc {
	out := Doc{}
	for k, v := range data {
		if k == "id" || k == "created_at" || k == "updated_at" {
			continue
		}
		out[k] = v
	}
	return out
}
