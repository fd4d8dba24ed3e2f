package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/felizhandmade/feliz-store/live"
	"github.com/felizhandmade/feliz-store/models"
	"github.com/felizhandmade/feliz-store/utils"
)

type AdminController struct {
	DB *gorm.DB
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db}
}

// revenueStatuses are the statuses that count as money in the till. A
// pending_payment order has an unverified proof, cancelled never paid.
var revenueStatuses = []string{
	models.OrderStatusPaid,
	models.OrderStatusShipped,
	models.OrderStatusCompleted,
}

// GetDashboardStats assembles the admin landing-page numbers and pushes the
// same payload to connected panels.
func (ac *AdminController) GetDashboardStats(c *gin.Context) {
	today := time.Now().Format("2006-01-02")

	var stats struct {
		TotalOrders  int64 `json:"total_orders"`
		TodayOrders  int64 `json:"today_orders"`
		TotalRevenue int64 `json:"total_revenue"`
		TodayRevenue int64 `json:"today_revenue"`
		OrderStats   struct {
			PendingPayment int64 `json:"pending_payment"`
			Paid           int64 `json:"paid"`
			Shipped        int64 `json:"shipped"`
			Completed      int64 `json:"completed"`
			Cancelled      int64 `json:"cancelled"`
		} `json:"order_stats"`
		RecentOrders []models.Order `json:"recent_orders"`
	}

	ac.DB.Model(&models.Order{}).Count(&stats.TotalOrders)
	ac.DB.Model(&models.Order{}).Where("DATE(created_at) = ?", today).Count(&stats.TodayOrders)

	ac.DB.Model(&models.Order{}).Where("status = ?", models.OrderStatusPendingPayment).Count(&stats.OrderStats.PendingPayment)
	ac.DB.Model(&models.Order{}).Where("status = ?", models.OrderStatusPaid).Count(&stats.OrderStats.Paid)
	ac.DB.Model(&models.Order{}).Where("status = ?", models.OrderStatusShipped).Count(&stats.OrderStats.Shipped)
	ac.DB.Model(&models.Order{}).Where("status = ?", models.OrderStatusCompleted).Count(&stats.OrderStats.Completed)
	ac.DB.Model(&models.Order{}).Where("status = ?", models.OrderStatusCancelled).Count(&stats.OrderStats.Cancelled)

	ac.DB.Model(&models.Order{}).Where("status IN ?", revenueStatuses).
		Select("COALESCE(SUM(total), 0)").Row().Scan(&stats.TotalRevenue)
	ac.DB.Model(&models.Order{}).
		Where("status IN ? AND DATE(created_at) = ?", revenueStatuses, today).
		Select("COALESCE(SUM(total), 0)").Row().Scan(&stats.TodayRevenue)

	if err := ac.DB.Preload("OrderItems").
		Order("created_at desc").
		Limit(10).
		Find(&stats.RecentOrders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	live.BroadcastDashboardUpdate(stats)

	utils.RespondJSON(c, http.StatusOK, "Dashboard stats", stats)
}
