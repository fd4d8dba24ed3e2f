package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/felizhandmade/feliz-store/cart"
	"github.com/felizhandmade/feliz-store/customize"
	"github.com/felizhandmade/feliz-store/models"
	"github.com/felizhandmade/feliz-store/utils"
)

type CustomizationController struct {
	DB       *gorm.DB
	Sessions *customize.Store
	Carts    *cart.Store
	Settings *SettingsController
}

func NewCustomizationController(db *gorm.DB, sessions *customize.Store, carts *cart.Store, settings *SettingsController) *CustomizationController {
	return &CustomizationController{DB: db, Sessions: sessions, Carts: carts, Settings: settings}
}

// GetOptions -> the designer catalog: knots, colors, ropes, accessories.
func (cc *CustomizationController) GetOptions(c *gin.Context) {
	var knots []models.Knot
	var colors []models.ColorOption
	var ropes []models.Rope
	var accessories []models.Accessory

	if err := cc.DB.Order("sort_order asc").Find(&knots).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if err := cc.DB.Order("sort_order asc").Find(&colors).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if err := cc.DB.Order("sort_order asc").Find(&ropes).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if err := cc.DB.Order("sort_order asc").Find(&accessories).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Customization options", gin.H{
		"knots":       knots,
		"colors":      colors,
		"ropes":       ropes,
		"accessories": accessories,
	})
}

// basePrice reads base_customization_price from settings, falling back to
// the documented default when unset or unparseable.
func (cc *CustomizationController) basePrice() int64 {
	value, err := cc.Settings.settingValue("base_customization_price")
	if err == nil {
		if base, perr := strconv.ParseInt(value, 10, 64); perr == nil && base >= 0 {
			return base
		}
	}
	return 120000
}

func (cc *CustomizationController) sessionByToken(c *gin.Context) *customize.Session {
	s := cc.Sessions.Get(c.Param("session_id"))
	if s == nil {
		utils.RespondError(c, http.StatusNotFound, fmt.Errorf("designer session not found"))
		return nil
	}
	return s
}

func (cc *CustomizationController) sessionState(s *customize.Session) gin.H {
	sel := s.Selection()

	knotIDs := make([]string, 0, len(sel.Knots))
	for _, k := range sel.Knots {
		knotIDs = append(knotIDs, k.ID)
	}

	state := gin.H{
		"step":        s.Step(),
		"knots":       knotIDs,
		"estimate":    s.Estimate(cc.basePrice()),
		"can_advance": s.CanAdvance(),
	}
	if sel.Color1 != nil {
		state["color1"] = sel.Color1.ID
	}
	if sel.Color2 != nil {
		state["color2"] = sel.Color2.ID
	}
	if sel.Rope != nil {
		state["rope"] = sel.Rope.ID
	}
	if sel.Accessory != nil {
		state["accessory"] = sel.Accessory.ID
	}
	return state
}

func (cc *CustomizationController) StartSession(c *gin.Context) {
	token := cc.Sessions.Create()
	utils.RespondJSON(c, http.StatusCreated, "Designer session started", gin.H{"session_id": token})
}

func (cc *CustomizationController) GetSession(c *gin.Context) {
	s := cc.sessionByToken(c)
	if s == nil {
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Designer session", cc.sessionState(s))
}

// ToggleKnot selects or deselects; a fifth distinct knot is rejected with a
// user-facing warning and the selection left unchanged.
func (cc *CustomizationController) ToggleKnot(c *gin.Context) {
	s := cc.sessionByToken(c)
	if s == nil {
		return
	}

	var knot models.Knot
	if err := cc.DB.First(&knot, "id = ?", c.Param("knot_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, fmt.Errorf("knot not found"))
		return
	}

	if err := s.ToggleKnot(knot); err != nil {
		if errors.Is(err, customize.ErrMaxKnots) {
			utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("Maximum 4 knots allowed"))
			return
		}
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Knot selection updated", cc.sessionState(s))
}

// SelectOption handles the single-choice steps: color1, rope, color2,
// accessory. Passing "none" for the accessory clears it.
func (cc *CustomizationController) SelectOption(c *gin.Context) {
	s := cc.sessionByToken(c)
	if s == nil {
		return
	}

	slot := c.Param("slot")
	optionID := c.Param("option_id")

	switch slot {
	case "color1", "color2":
		var color models.ColorOption
		if err := cc.DB.First(&color, "id = ?", optionID).Error; err != nil {
			utils.RespondError(c, http.StatusNotFound, fmt.Errorf("color not found"))
			return
		}
		if slot == "color1" {
			s.SetColor1(color)
		} else {
			s.SetColor2(color)
		}
	case "rope":
		var rope models.Rope
		if err := cc.DB.First(&rope, "id = ?", optionID).Error; err != nil {
			utils.RespondError(c, http.StatusNotFound, fmt.Errorf("rope not found"))
			return
		}
		s.SetRope(rope)
	case "accessory":
		if optionID == "none" {
			s.SetAccessory(nil)
			break
		}
		var accessory models.Accessory
		if err := cc.DB.First(&accessory, "id = ?", optionID).Error; err != nil {
			utils.RespondError(c, http.StatusNotFound, fmt.Errorf("accessory not found"))
			return
		}
		s.SetAccessory(&accessory)
	default:
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("unknown selection slot %q", slot))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Selection updated", cc.sessionState(s))
}

// UpsertOption -> admin create-or-replace for one designer catalog row.
// Kind selects the table: knots, colors, ropes, accessories.
func (cc *CustomizationController) UpsertOption(c *gin.Context) {
	id := c.Param("option_id")

	var req struct {
		Name        string `json:"name" binding:"required"`
		Meaning     string `json:"meaning"`
		Description string `json:"description"`
		Image       string `json:"image"`
		Hex         string `json:"hex"`
		PriceAdd    int64  `json:"priceAdd"`
		SortOrder   int    `json:"sort_order"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var row any
	switch c.Param("kind") {
	case "knots":
		row = &models.Knot{ID: id, Name: req.Name, Meaning: req.Meaning,
			Description: req.Description, Image: req.Image,
			PriceAdd: req.PriceAdd, SortOrder: req.SortOrder}
	case "colors":
		row = &models.ColorOption{ID: id, Name: req.Name, Hex: req.Hex,
			PriceAdd: req.PriceAdd, SortOrder: req.SortOrder}
	case "ropes":
		row = &models.Rope{ID: id, Name: req.Name, Description: req.Description,
			PriceAdd: req.PriceAdd, SortOrder: req.SortOrder}
	case "accessories":
		row = &models.Accessory{ID: id, Name: req.Name, Image: req.Image,
			PriceAdd: req.PriceAdd, SortOrder: req.SortOrder}
	default:
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("unknown option kind %q", c.Param("kind")))
		return
	}

	if err := cc.DB.Save(row).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Option saved", row)
}

// DeleteOption removes a designer catalog row. Live sessions that already
// picked it keep their snapshot; the row just stops being offered.
func (cc *CustomizationController) DeleteOption(c *gin.Context) {
	id := c.Param("option_id")

	var model any
	switch c.Param("kind") {
	case "knots":
		model = &models.Knot{}
	case "colors":
		model = &models.ColorOption{}
	case "ropes":
		model = &models.Rope{}
	case "accessories":
		model = &models.Accessory{}
	default:
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("unknown option kind %q", c.Param("kind")))
		return
	}

	if err := cc.DB.Delete(model, "id = ?", id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Option deleted", gin.H{"option_id": id})
}

// NextStep advances if the current step's guard holds.
func (cc *CustomizationController) NextStep(c *gin.Context) {
	s := cc.sessionByToken(c)
	if s == nil {
		return
	}

	if err := s.Next(); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Step advanced", cc.sessionState(s))
}

func (cc *CustomizationController) PrevStep(c *gin.Context) {
	s := cc.sessionByToken(c)
	if s == nil {
		return
	}

	s.Prev()
	utils.RespondJSON(c, http.StatusOK, "Step back", cc.sessionState(s))
}

// Confirm synthesizes the composite cart line, adds it to the shopper's
// cart, and retires the session.
func (cc *CustomizationController) Confirm(c *gin.Context) {
	s := cc.sessionByToken(c)
	if s == nil {
		return
	}

	var req struct {
		CartID string `json:"cart_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	ct := cc.Carts.Get(req.CartID)
	if ct == nil {
		utils.RespondError(c, http.StatusNotFound, fmt.Errorf("cart not found"))
		return
	}

	item, err := s.Confirm(cc.basePrice())
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	ct.Add(item)
	cc.Sessions.Drop(c.Param("session_id"))

	utils.RespondJSON(c, http.StatusOK, "Added to cart", gin.H{
		"item":       item,
		"subtotal":   ct.Subtotal(),
		"item_count": ct.ItemCount(),
	})
}
