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

	"github.com/felizhandmade/feliz-store/cart"
	"github.com/felizhandmade/feliz-store/controllers"
	"github.com/felizhandmade/feliz-store/models"
	"github.com/felizhandmade/feliz-store/utils"
)

func setupCartRouter(t *testing.T) *gin.Engine {
	utils.InitLogger()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	if err := db.AutoMigrate(&models.Product{}); err != nil {
		panic(err)
	}
	db.Create(&models.Product{ID: "p-test", Name: "Test Bracelet", Price: 95000})

	ctrl := controllers.NewCartController(db, cart.NewStore(nil))
	router := gin.Default()
	router.POST("/carts", ctrl.CreateCart)
	router.GET("/carts/:cart_id", ctrl.GetCart)
	router.POST("/carts/:cart_id/items", ctrl.AddItem)
	router.PATCH("/carts/:cart_id/items/:item_id", ctrl.SetItemQuantity)
	router.DELETE("/carts/:cart_id/items/:item_id", ctrl.RemoveItem)
	return router
}

func createCart(t *testing.T, router *gin.Engine) string {
	req, _ := http.NewRequest("POST", "/carts", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp["data"].(map[string]interface{})["cart_id"].(string)
}

func addTestItem(t *testing.T, router *gin.Engine, cartID string, quantity int) map[string]interface{} {
	body, _ := json.Marshal(map[string]interface{}{"product_id": "p-test", "quantity": quantity})
	req, _ := http.NewRequest("POST", "/carts/"+cartID+"/items", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp["data"].(map[string]interface{})
}

func TestAddItemMergesLines(t *testing.T) {
	router := setupCartRouter(t)
	cartID := createCart(t, router)

	addTestItem(t, router, cartID, 1)
	data := addTestItem(t, router, cartID, 1)

	items := data["items"].([]interface{})
	assert.Len(t, items, 1)
	assert.Equal(t, float64(2), data["item_count"])
	assert.Equal(t, float64(190000), data["subtotal"])
	assert.Equal(t, true, data["is_open"])
}

func TestAddItemUnknownProduct(t *testing.T) {
	router := setupCartRouter(t)
	cartID := createCart(t, router)

	body, _ := json.Marshal(map[string]interface{}{"product_id": "p-ghost"})
	req, _ := http.NewRequest("POST", "/carts/"+cartID+"/items", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSetQuantityClampsToOne(t *testing.T) {
	router := setupCartRouter(t)
	cartID := createCart(t, router)
	addTestItem(t, router, cartID, 3)

	// Non-numeric input falls back to 1, same as zero or negative.
	req, _ := http.NewRequest("PATCH", "/carts/"+cartID+"/items/p-test?quantity=abc", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["item_count"])
}

func TestRemoveItem(t *testing.T) {
	router := setupCartRouter(t)
	cartID := createCart(t, router)
	addTestItem(t, router, cartID, 1)

	req, _ := http.NewRequest("DELETE", "/carts/"+cartID+"/items/p-test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(0), data["item_count"])
	assert.Equal(t, float64(0), data["subtotal"])
}

func TestGetUnknownCart(t *testing.T) {
	router := setupCartRouter(t)

	req, _ := http.NewRequest("GET", "/carts/no-such-token", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
