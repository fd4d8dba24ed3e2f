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
	"github.com/felizhandmade/feliz-store/models"
	"github.com/felizhandmade/feliz-store/utils"
)

func setupSettingsRouter(t *testing.T) (*gorm.DB, *gin.Engine) {
	utils.InitLogger()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	if err := db.AutoMigrate(&models.Setting{}); err != nil {
		panic(err)
	}

	ctrl := controllers.NewSettingsController(db)
	router := gin.Default()
	router.GET("/settings", ctrl.GetSettings)
	router.GET("/admin/settings", ctrl.ListSettings)
	router.PUT("/admin/settings", ctrl.UpsertSettings)
	return db, router
}

func TestGetSettingsFallsBackToDefaults(t *testing.T) {
	_, router := setupSettingsRouter(t)

	req, _ := http.NewRequest("GET", "/settings?keys=checkout_bank_name,base_customization_price", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "Feliz Bank — Premium Branch", data["checkout_bank_name"])
	assert.Equal(t, "120000", data["base_customization_price"])
}

func TestGetSettingsRejectsUnknownKey(t *testing.T) {
	_, router := setupSettingsRouter(t)

	req, _ := http.NewRequest("GET", "/settings?keys=favorite_dinosaur", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpsertSettingsRoundTrip(t *testing.T) {
	_, router := setupSettingsRouter(t)

	body, _ := json.Marshal([]map[string]string{
		{"key": "shop_title", "value": "New arrivals"},
	})
	req, _ := http.NewRequest("PUT", "/admin/settings", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	req, _ = http.NewRequest("GET", "/settings?keys=shop_title", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "New arrivals", data["shop_title"])
}

func TestUpsertSettingsRejectsUnknownKey(t *testing.T) {
	_, router := setupSettingsRouter(t)

	body, _ := json.Marshal([]map[string]string{
		{"key": "not_a_setting", "value": "x"},
	})
	req, _ := http.NewRequest("PUT", "/admin/settings", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEmptyStoredValueFallsBackToDefault(t *testing.T) {
	db, router := setupSettingsRouter(t)

	// A saved-but-blank value behaves as if unset.
	assert.NoError(t, db.Save(&models.Setting{Key: "shop_banner", Value: ""}).Error)

	req, _ := http.NewRequest("GET", "/settings?keys=shop_banner", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, controllers.SettingDefaults["shop_banner"], data["shop_banner"])
}
