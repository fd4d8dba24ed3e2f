package controllers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/felizhandmade/feliz-store/controllers"
	"github.com/felizhandmade/feliz-store/models"
	"github.com/felizhandmade/feliz-store/utils"
)

func setupAdminRouter(t *testing.T) (*gorm.DB, *gin.Engine) {
	utils.InitLogger()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	if err := db.AutoMigrate(&models.Order{}, &models.OrderItem{}); err != nil {
		panic(err)
	}

	ctrl := controllers.NewAdminController(db)
	router := gin.Default()
	router.GET("/admin/dashboard/stats", ctrl.GetDashboardStats)
	return db, router
}

func TestDashboardRevenueCountsOnlyVerifiedStatuses(t *testing.T) {
	db, router := setupAdminRouter(t)

	statuses := map[string]int64{
		models.OrderStatusPendingPayment: 100000,
		models.OrderStatusPaid:           200000,
		models.OrderStatusShipped:        300000,
		models.OrderStatusCompleted:      400000,
		models.OrderStatusCancelled:      500000,
	}
	for status, total := range statuses {
		db.Create(&models.Order{
			ID:        uuid.NewString(),
			OrderCode: utils.MakeOrderCode(),
			Status:    status,
			Total:     total,
		})
	}

	req, _ := http.NewRequest("GET", "/admin/dashboard/stats", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})

	assert.Equal(t, float64(5), data["total_orders"])
	// pending_payment and cancelled never count as revenue.
	assert.Equal(t, float64(200000+300000+400000), data["total_revenue"])

	orderStats := data["order_stats"].(map[string]interface{})
	assert.Equal(t, float64(1), orderStats["pending_payment"])
	assert.Equal(t, float64(1), orderStats["cancelled"])

	recent := data["recent_orders"].([]interface{})
	assert.Len(t, recent, 5)
}
