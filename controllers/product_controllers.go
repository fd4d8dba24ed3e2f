package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/felizhandmade/feliz-store/models"
	"github.com/felizhandmade/feliz-store/utils"
)

type ProductController struct {
	DB *gorm.DB
}

func NewProductController(db *gorm.DB) *ProductController {
	return &ProductController{DB: db}
}

// GetAllProducts -> full catalog for the shop page.
func (pc *ProductController) GetAllProducts(c *gin.Context) {
	var products []models.Product
	if err := pc.DB.Order("sort_order asc").Find(&products).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of products", products)
}

// GetHomeProducts -> the featured subset shown on the landing page.
func (pc *ProductController) GetHomeProducts(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "6"))
	if err != nil || limit < 1 {
		limit = 6
	}

	var products []models.Product
	if err := pc.DB.Where("show_on_home = ?", true).
		Order("sort_order asc").
		Limit(limit).
		Find(&products).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Featured products", products)
}

func (pc *ProductController) GetProductByID(c *gin.Context) {
	var product models.Product
	if err := pc.DB.First(&product, "id = ?", c.Param("product_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Product detail", product)
}

type productPayload struct {
	Type        string `json:"type"`
	Category    string `json:"category"`
	Name        string `json:"name" binding:"required"`
	Knot        string `json:"knot"`
	Colors      string `json:"colors"`
	Price       int64  `json:"price"`
	Image       string `json:"image"`
	Description string `json:"description"`
	ShowOnHome  bool   `json:"show_on_home"`
	SortOrder   int    `json:"sort_order"`
}

// UpsertProduct -> admin create-or-replace by id, mirroring the content
// editor's save button.
func (pc *ProductController) UpsertProduct(c *gin.Context) {
	id := c.Param("product_id")

	var req productPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	product := models.Product{
		ID:          id,
		Type:        req.Type,
		Category:    req.Category,
		Name:        req.Name,
		Knot:        req.Knot,
		Colors:      req.Colors,
		Price:       req.Price,
		Image:       req.Image,
		Description: req.Description,
		ShowOnHome:  req.ShowOnHome,
		SortOrder:   req.SortOrder,
		UpdatedAt:   time.Now(),
	}

	var existing models.Product
	err := pc.DB.First(&existing, "id = ?", id).Error
	if err == gorm.ErrRecordNotFound {
		product.CreatedAt = time.Now()
		if err := pc.DB.Create(&product).Error; err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
		utils.RespondJSON(c, http.StatusCreated, "Product created", product)
		return
	}
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	product.CreatedAt = existing.CreatedAt
	if err := pc.DB.Save(&product).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Product updated", product)
}

func (pc *ProductController) DeleteProduct(c *gin.Context) {
	id := c.Param("product_id")
	if err := pc.DB.Delete(&models.Product{}, "id = ?", id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Product deleted", gin.H{"product_id": id})
}
