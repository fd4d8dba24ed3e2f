package controllers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/felizhandmade/feliz-store/models"
	"github.com/felizhandmade/feliz-store/utils"
)

// SettingDefaults enumerates every known settings key with its fallback
// value. Lookups outside this map are rejected rather than silently empty.
var SettingDefaults = map[string]string{
	"home_hero_badge":          "FELIZ • HANDMADE",
	"home_hero_title":          "Handmade knots, made with love",
	"home_hero_subtitle":       "Bracelets, keychains, and custom colors — crafted in our studio.",
	"home_hero_image":          "",
	"home_collection_eyebrow":  "Collection",
	"home_collection_title":    "Best sellers",
	"home_collection_subtitle": "A few favorites to get you started.",
	"shop_eyebrow":             "Shop",
	"shop_title":               "Browse the collection",
	"shop_subtitle":            "Pick your colors and knot style.",
	"shop_banner":              "Custom orders available — message us with your idea.",
	"checkout_bank_name":       "Feliz Bank — Premium Branch",
	"checkout_account_name":    "Feliz Handmade Studio",
	"checkout_account_number":  "123-456-7890",
	"checkout_note":            "",
	"base_customization_price": "120000",
}

type SettingsController struct {
	DB *gorm.DB
}

func NewSettingsController(db *gorm.DB) *SettingsController {
	return &SettingsController{DB: db}
}

// settingValue returns the stored value for a known key, or its default.
func (sc *SettingsController) settingValue(key string) (string, error) {
	fallback, known := SettingDefaults[key]
	if !known {
		return "", fmt.Errorf("unknown settings key %q", key)
	}

	var row models.Setting
	err := sc.DB.First(&row, "key = ?", key).Error
	if err == gorm.ErrRecordNotFound {
		return fallback, nil
	}
	if err != nil {
		return "", err
	}
	if row.Value == "" {
		return fallback, nil
	}
	return row.Value, nil
}

// GetSettings -> resolve the requested keys (comma-separated ?keys=), every
// page fetches only the copy it renders.
func (sc *SettingsController) GetSettings(c *gin.Context) {
	keysParam := c.Query("keys")
	if keysParam == "" {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("keys query parameter is required"))
		return
	}

	out := gin.H{}
	for _, key := range strings.Split(keysParam, ",") {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		value, err := sc.settingValue(key)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
		out[key] = value
	}

	utils.RespondJSON(c, http.StatusOK, "Settings", out)
}

// ListSettings -> admin view of every known key with its effective value.
func (sc *SettingsController) ListSettings(c *gin.Context) {
	type entry struct {
		Key   string `json:"key"`
		Value string `json:"value"`
	}

	entries := make([]entry, 0, len(SettingDefaults))
	for key := range SettingDefaults {
		value, err := sc.settingValue(key)
		if err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
		entries = append(entries, entry{Key: key, Value: value})
	}

	utils.RespondJSON(c, http.StatusOK, "All settings", entries)
}

// UpsertSettings -> admin bulk save.
func (sc *SettingsController) UpsertSettings(c *gin.Context) {
	var req []struct {
		Key   string `json:"key" binding:"required"`
		Value string `json:"value"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	for _, e := range req {
		if _, known := SettingDefaults[e.Key]; !known {
			utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("unknown settings key %q", e.Key))
			return
		}
	}

	for _, e := range req {
		row := models.Setting{Key: e.Key, Value: e.Value}
		if err := sc.DB.Save(&row).Error; err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
	}

	utils.RespondJSON(c, http.StatusOK, "Settings saved", gin.H{"count": len(req)})
}
