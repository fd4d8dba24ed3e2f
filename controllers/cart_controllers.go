package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/felizhandmade/feliz-store/cart"
	"github.com/felizhandmade/feliz-store/models"
	"github.com/felizhandmade/feliz-store/utils"
)

type CartController struct {
	DB    *gorm.DB
	Carts *cart.Store
}

func NewCartController(db *gorm.DB, carts *cart.Store) *CartController {
	return &CartController{DB: db, Carts: carts}
}

func (cc *CartController) cartByToken(c *gin.Context) *cart.Cart {
	ct := cc.Carts.Get(c.Param("cart_id"))
	if ct == nil {
		utils.RespondError(c, http.StatusNotFound, fmt.Errorf("cart not found"))
		return nil
	}
	return ct
}

func cartState(ct *cart.Cart) gin.H {
	return gin.H{
		"items":      ct.Items(),
		"subtotal":   ct.Subtotal(),
		"item_count": ct.ItemCount(),
		"is_open":    ct.IsOpen(),
	}
}

// CreateCart hands out a cart token; one per tab, no cross-tab coordination.
func (cc *CartController) CreateCart(c *gin.Context) {
	token := cc.Carts.Create()
	utils.RespondJSON(c, http.StatusCreated, "Cart created", gin.H{"cart_id": token})
}

func (cc *CartController) GetCart(c *gin.Context) {
	ct := cc.cartByToken(c)
	if ct == nil {
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Cart", cartState(ct))
}

// AddItem resolves the product server-side so the line price always comes
// from the catalog, then merges it into the cart.
func (cc *CartController) AddItem(c *gin.Context) {
	ct := cc.cartByToken(c)
	if ct == nil {
		return
	}

	var req struct {
		ProductID string `json:"product_id" binding:"required"`
		Quantity  int    `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var product models.Product
	if err := cc.DB.First(&product, "id = ?", req.ProductID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, fmt.Errorf("product not found"))
		return
	}

	ct.Add(cart.Item{
		ID:       product.ID,
		Name:     product.Name,
		Price:    product.Price,
		Quantity: req.Quantity,
	})

	utils.RespondJSON(c, http.StatusOK, "Added to cart", cartState(ct))
}

// SetItemQuantity clamps to a minimum of 1; anything unparseable counts as 1.
func (cc *CartController) SetItemQuantity(c *gin.Context) {
	ct := cc.cartByToken(c)
	if ct == nil {
		return
	}

	qty, err := strconv.Atoi(c.Query("quantity"))
	if err != nil {
		qty = 1
	}
	ct.SetQuantity(c.Param("item_id"), qty)

	utils.RespondJSON(c, http.StatusOK, "Quantity updated", cartState(ct))
}

func (cc *CartController) RemoveItem(c *gin.Context) {
	ct := cc.cartByToken(c)
	if ct == nil {
		return
	}

	ct.Remove(c.Param("item_id"))
	utils.RespondJSON(c, http.StatusOK, "Removed from cart", cartState(ct))
}

// OpenCart / CloseCart track the drawer flag so a reload restores it.
func (cc *CartController) OpenCart(c *gin.Context) {
	ct := cc.cartByToken(c)
	if ct == nil {
		return
	}
	ct.Open()
	utils.RespondJSON(c, http.StatusOK, "Cart opened", cartState(ct))
}

func (cc *CartController) CloseCart(c *gin.Context) {
	ct := cc.cartByToken(c)
	if ct == nil {
		return
	}
	ct.Close()
	utils.RespondJSON(c, http.StatusOK, "Cart closed", cartState(ct))
}
