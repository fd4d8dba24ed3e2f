package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/felizhandmade/feliz-store/cart"
	"github.com/felizhandmade/feliz-store/live"
	"github.com/felizhandmade/feliz-store/models"
	"github.com/felizhandmade/feliz-store/proofstore"
	"github.com/felizhandmade/feliz-store/receipt"
	"github.com/felizhandmade/feliz-store/utils"
)

type OrderController struct {
	DB       *gorm.DB
	Carts    *cart.Store
	Proofs   proofstore.Store
	Receipts *receipt.Slot
}

func NewOrderController(db *gorm.DB, carts *cart.Store, proofs proofstore.Store, receipts *receipt.Slot) *OrderController {
	return &OrderController{DB: db, Carts: carts, Proofs: proofs, Receipts: receipts}
}

// Checkout places an order from a cart: proof upload first, then the order
// row, then one item row per cart line. There is no transaction across the
// writes; a crash mid-way can leave an order without items, which admins
// see and cancel by hand. On any failure the cart and form are untouched.
func (oc *OrderController) Checkout(c *gin.Context) {
	ct := oc.Carts.Get(c.PostForm("cart_id"))
	if ct == nil {
		utils.RespondError(c, http.StatusNotFound, fmt.Errorf("cart not found"))
		return
	}

	items := ct.Items()
	if len(items) == 0 {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("Cart is empty"))
		return
	}

	name := strings.TrimSpace(c.PostForm("name"))
	phone := strings.TrimSpace(c.PostForm("phone"))
	address := strings.TrimSpace(c.PostForm("address"))
	if name == "" || phone == "" || address == "" {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("Please fill in your delivery details"))
		return
	}

	file, header, err := c.Request.FormFile("proof")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("Please upload your transfer proof"))
		return
	}
	defer file.Close()

	orderID := uuid.NewString()
	orderCode := utils.MakeOrderCode()

	proofURL, err := oc.Proofs.SaveProof(orderID, header.Filename, file)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	order := models.Order{
		ID:              orderID,
		OrderCode:       orderCode,
		Status:          models.OrderStatusPendingPayment,
		CustomerName:    name,
		CustomerPhone:   phone,
		CustomerAddress: address,
		Total:           ct.Subtotal(),
		ProofURL:        proofURL,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}
	if err := oc.DB.Create(&order).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	for _, item := range items {
		orderItem := models.OrderItem{
			ID:          uuid.NewString(),
			OrderID:     orderID,
			ProductID:   item.ID,
			ProductName: item.Name,
			Price:       item.Price,
			Quantity:    item.Quantity,
			Meta:        item.Meta,
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		}
		if err := oc.DB.Create(&orderItem).Error; err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
		order.OrderItems = append(order.OrderItems, orderItem)
	}

	// The order is in; everything below is cleanup and best-effort.
	ct.Clear()

	snap := receipt.Snapshot{
		ID:              order.ID,
		OrderCode:       order.OrderCode,
		Status:          order.Status,
		CustomerName:    order.CustomerName,
		CustomerPhone:   order.CustomerPhone,
		CustomerAddress: order.CustomerAddress,
		Total:           order.Total,
		PlacedAt:        order.CreatedAt,
	}
	for _, item := range order.OrderItems {
		snap.Items = append(snap.Items, receipt.Line{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Price:       item.Price,
			Quantity:    item.Quantity,
			Meta:        item.Meta,
		})
	}
	if err := oc.Receipts.Save(snap); err != nil {
		utils.ErrorLogger.Printf("save receipt slot: %v", err)
	}

	live.BroadcastOrderCreated(order)

	utils.InfoLogger.Printf("Order %s placed (%s, total %s)",
		order.OrderCode, order.ID, utils.FormatMMK(order.Total))

	utils.RespondJSON(c, http.StatusCreated, "Order placed", gin.H{
		"id":         order.ID,
		"order_code": order.OrderCode,
		"total":      order.Total,
		"proof_url":  order.ProofURL,
		"receipt":    snap,
	})
}

// GetLastReceipt returns the single receipt slot, the storefront's "view my
// last order" page.
func (oc *OrderController) GetLastReceipt(c *gin.Context) {
	snap, err := oc.Receipts.Load()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if snap == nil {
		utils.RespondError(c, http.StatusNotFound, fmt.Errorf("no receipt yet"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Last receipt", snap)
}

// GetOrderByCode -> public order lookup with the short code.
func (oc *OrderController) GetOrderByCode(c *gin.Context) {
	var order models.Order
	if err := oc.DB.Preload("OrderItems").
		First(&order, "order_code = ?", c.Param("order_code")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

// GetOrderReceiptPDF renders the downloadable receipt.
func (oc *OrderController) GetOrderReceiptPDF(c *gin.Context) {
	var order models.Order
	if err := oc.DB.Preload("OrderItems").
		First(&order, "order_code = ?", c.Param("order_code")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	body, err := receipt.RenderPDF(order)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=receipt-%s.pdf", order.OrderCode))
	c.Data(http.StatusOK, "application/pdf", body)
}

// GetAllOrders -> admin list, newest first.
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	query := oc.DB.Preload("OrderItems").Order("created_at desc")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
}

func (oc *OrderController) GetOrderByID(c *gin.Context) {
	var order models.Order
	if err := oc.DB.Preload("OrderItems").
		First(&order, "id = ?", c.Param("order_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

// UpdateOrderStatus writes the new status and nothing else. Transitions are
// deliberately unrestricted: payment is verified by a human reading the
// proof image, so admins may move an order between any two statuses.
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	var order models.Order
	if err := oc.DB.First(&order, "id = ?", c.Param("order_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if !models.IsValidOrderStatus(req.Status) {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("unknown order status %q", req.Status))
		return
	}

	if err := oc.DB.Model(&order).
		Updates(map[string]any{"status": req.Status, "updated_at": time.Now()}).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	order.Status = req.Status

	live.BroadcastOrderUpdate(order)

	utils.RespondJSON(c, http.StatusOK, "Order status updated", order)
}

// DeleteOrder removes the order's items first, then the order itself, so no
// orphaned items are left referencing a deleted order.
func (oc *OrderController) DeleteOrder(c *gin.Context) {
	orderID := c.Param("order_id")

	var order models.Order
	if err := oc.DB.First(&order, "id = ?", orderID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	tx := oc.DB.Begin()
	if err := tx.Where("order_id = ?", orderID).Delete(&models.OrderItem{}).Error; err != nil {
		tx.Rollback()
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if err := tx.Delete(&models.Order{}, "id = ?", orderID).Error; err != nil {
		tx.Rollback()
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if err := tx.Commit().Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	live.BroadcastOrderDeleted(orderID)

	utils.RespondJSON(c, http.StatusOK, "Order deleted", gin.H{"order_id": orderID})
}
