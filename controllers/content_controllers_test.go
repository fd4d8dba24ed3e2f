package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/felizhandmade/feliz-store/controllers"
	"github.com/felizhandmade/feliz-store/docstore"
	"github.com/felizhandmade/feliz-store/models"
	"github.com/felizhandmade/feliz-store/utils"
)

func setupContentRouter(t *testing.T) *gin.Engine {
	utils.InitLogger()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	if err := db.AutoMigrate(&models.Document{}); err != nil {
		panic(err)
	}

	ctrl := controllers.NewContentController(docstore.NewGormStore(db))
	router := gin.Default()
	router.GET("/content/:collection", ctrl.ListDocs)
	router.GET("/content/:collection/:doc_id", ctrl.GetDoc)
	router.PUT("/admin/content/:collection/:doc_id", ctrl.UpsertDoc)
	router.DELETE("/admin/content/:collection/:doc_id", ctrl.DeleteDoc)
	return router
}

func putDoc(t *testing.T, router *gin.Engine, path string, doc map[string]interface{}) {
	body, _ := json.Marshal(doc)
	req, _ := http.NewRequest("PUT", path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestContentUpsertMergesFields(t *testing.T) {
	router := setupContentRouter(t)

	putDoc(t, router, "/admin/content/milestones/m-2024", map[string]interface{}{
		"title": "First pop-up market", "year": 2024,
	})
	putDoc(t, router, "/admin/content/milestones/m-2024", map[string]interface{}{
		"title": "First pop-up market, Yangon",
	})

	req, _ := http.NewRequest("GET", "/content/milestones/m-2024", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "First pop-up market, Yangon", data["title"])
	// Merge keeps fields the second write did not mention.
	assert.Equal(t, float64(2024), data["year"])
}

func TestContentUnknownCollectionRejected(t *testing.T) {
	router := setupContentRouter(t)

	req, _ := http.NewRequest("GET", "/content/secret_stuff", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestContentListOrderAndLimit(t *testing.T) {
	router := setupContentRouter(t)

	for i := 1; i <= 5; i++ {
		putDoc(t, router, fmt.Sprintf("/admin/content/quick_view_items/q-%d", i), map[string]interface{}{
			"label": fmt.Sprintf("Item %d", i), "rank": i,
		})
	}

	req, _ := http.NewRequest("GET", "/content/quick_view_items?order_by=rank&desc=1&limit=2", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].([]interface{})
	assert.Len(t, data, 2)
	assert.Equal(t, float64(5), data[0].(map[string]interface{})["rank"])
}

func TestContentDeleteThenGet(t *testing.T) {
	router := setupContentRouter(t)
	putDoc(t, router, "/admin/content/pages/about", map[string]interface{}{"body": "Hello"})

	req, _ := http.NewRequest("DELETE", "/admin/content/pages/about", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	req, _ = http.NewRequest("GET", "/content/pages/about", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
