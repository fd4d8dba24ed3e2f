// Command seed loads the demo catalog: products, designer options, and page
// copy. Safe to re-run; every row is written with Save so existing ids are
// overwritten, and customer data (orders, users) is never touched.
//
// Set ADMIN_EMAIL to promote an existing account to admin.
package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/felizhandmade/feliz-store/config"
	"github.com/felizhandmade/feliz-store/controllers"
	"github.com/felizhandmade/feliz-store/models"
	"github.com/felizhandmade/feliz-store/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}
	utils.InitLogger()

	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Knot{},
		&models.ColorOption{},
		&models.Rope{},
		&models.Accessory{},
		&models.Order{},
		&models.OrderItem{},
		&models.Setting{},
		&models.Document{},
	); err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}

	seedProducts(db)
	seedKnots(db)
	seedColors(db)
	seedRopes(db)
	seedAccessories(db)
	seedSettings(db)
	promoteAdmin(db)

	utils.InfoLogger.Println("Seed completed.")
}

func save[T any](db *gorm.DB, rows []T) {
	for i := range rows {
		if err := db.Save(&rows[i]).Error; err != nil {
			utils.ErrorLogger.Fatalf("seed: %v", err)
		}
	}
}

func seedProducts(db *gorm.DB) {
	save(db, []models.Product{
		{ID: "p-ice-knot-bracelet", Type: "bracelet", Category: "bracelets", Name: "Ice Knot Bracelet",
			Knot: "snake", Colors: `["sky-blue","white-jade"]`, Price: 95000,
			Description: "Cool-toned snake knot with a jade bead.", ShowOnHome: true, SortOrder: 1},
		{ID: "p-dragon-red-bracelet", Type: "bracelet", Category: "bracelets", Name: "Dragon Red Bracelet",
			Knot: "dragon", Colors: `["red","gold"]`, Price: 145000,
			Description: "Dragon knot in lucky red with gold trim.", ShowOnHome: true, SortOrder: 2},
		{ID: "p-clover-green-bracelet", Type: "bracelet", Category: "bracelets", Name: "Clover Green Bracelet",
			Knot: "clover", Colors: `["emerald"]`, Price: 110000,
			Description: "Four-leaf clover knot in deep emerald.", ShowOnHome: true, SortOrder: 3},
		{ID: "p-fortune-keychain", Type: "keychain", Category: "keychains", Name: "Fortune Keychain",
			Knot: "fortune", Colors: `["gold","black-onyx"]`, Price: 65000,
			Description: "Pocket-sized fortune knot charm.", ShowOnHome: true, SortOrder: 4},
		{ID: "p-mystic-pink-bracelet", Type: "bracelet", Category: "bracelets", Name: "Mystic Pink Bracelet",
			Knot: "mystic", Colors: `["soft-pink","white-jade"]`, Price: 120000,
			Description: "Mystic knot in soft pink, our gift favorite.", ShowOnHome: true, SortOrder: 5},
		{ID: "p-double-coin-keychain", Type: "keychain", Category: "keychains", Name: "Double Coin Keychain",
			Knot: "double-coin", Colors: `["sapphire"]`, Price: 55000,
			Description: "Double coin knot for everyday carry.", ShowOnHome: true, SortOrder: 6},
	})
}

func seedKnots(db *gorm.DB) {
	save(db, []models.Knot{
		{ID: "dragon", Name: "Dragon", Meaning: "Strength and protection", PriceAdd: 22000, SortOrder: 1},
		{ID: "mystic", Name: "Mystic", Meaning: "Endless luck", PriceAdd: 18000, SortOrder: 2},
		{ID: "double-coin", Name: "Double Coin", Meaning: "Prosperity", PriceAdd: 16000, SortOrder: 3},
		{ID: "clover", Name: "Clover", Meaning: "Good fortune", PriceAdd: 14000, SortOrder: 4},
		{ID: "fortune", Name: "Fortune", Meaning: "Wealth and blessing", PriceAdd: 20000, SortOrder: 5},
	})
}

func seedColors(db *gorm.DB) {
	save(db, []models.ColorOption{
		{ID: "red", Name: "Red", Hex: "#C0392B", PriceAdd: 8000, SortOrder: 1},
		{ID: "gold", Name: "Gold", Hex: "#D4AC0D", PriceAdd: 10000, SortOrder: 2},
		{ID: "emerald", Name: "Emerald", Hex: "#1E8449", PriceAdd: 9000, SortOrder: 3},
		{ID: "sapphire", Name: "Sapphire", Hex: "#1F618D", PriceAdd: 9000, SortOrder: 4},
		{ID: "white-jade", Name: "White Jade", Hex: "#FDFEFE", PriceAdd: 12000, SortOrder: 5},
		{ID: "black-onyx", Name: "Black Onyx", Hex: "#17202A", PriceAdd: 10000, SortOrder: 6},
		{ID: "soft-pink", Name: "Soft Pink", Hex: "#F5B7B1", PriceAdd: 8000, SortOrder: 7},
		{ID: "sky-blue", Name: "Sky Blue", Hex: "#85C1E9", PriceAdd: 9000, SortOrder: 8},
	})
}

func seedRopes(db *gorm.DB) {
	save(db, []models.Rope{
		{ID: "standard", Name: "Standard", Description: "Braided nylon, everyday wear", PriceAdd: 9000, SortOrder: 1},
		{ID: "silk", Name: "Silk", Description: "Smooth silk cord", PriceAdd: 15000, SortOrder: 2},
		{ID: "waxed", Name: "Waxed", Description: "Water-resistant waxed cotton", PriceAdd: 12000, SortOrder: 3},
	})
}

func seedAccessories(db *gorm.DB) {
	save(db, []models.Accessory{
		{ID: "silver-bead", Name: "Silver Bead", PriceAdd: 12000, SortOrder: 1},
		{ID: "jade-ring", Name: "Jade Ring", PriceAdd: 18000, SortOrder: 2},
		{ID: "gold-charm", Name: "Gold Charm", PriceAdd: 25000, SortOrder: 3},
	})
}

func seedSettings(db *gorm.DB) {
	for key, value := range controllers.SettingDefaults {
		if err := db.Save(&models.Setting{Key: key, Value: value}).Error; err != nil {
			utils.ErrorLogger.Fatalf("seed settings: %v", err)
		}
	}
}

func promoteAdmin(db *gorm.DB) {
	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		return
	}

	result := db.Model(&models.User{}).Where("email = ?", email).Update("admin", true)
	if result.Error != nil {
		utils.ErrorLogger.Fatalf("promote admin: %v", result.Error)
	}
	if result.RowsAffected == 0 {
		utils.InfoLogger.Printf("No account with email %s yet; register first, then re-run seed.", email)
		return
	}
	utils.InfoLogger.Printf("Granted admin to %s", email)
}
