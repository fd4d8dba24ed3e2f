package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/felizhandmade/feliz-store/config"
	"github.com/felizhandmade/feliz-store/middlewares"
	"github.com/felizhandmade/feliz-store/models"
	"github.com/felizhandmade/feliz-store/router"
	"github.com/felizhandmade/feliz-store/utils"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}
	utils.InitLogger()
}

func main() {
	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}
	utils.InitDB(db)

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	autoMigrate(db)

	rateLimiter := middlewares.NewRateLimiter(50, 1)

	r := router.SetupRouter(db)
	r.Use(rateLimiter.RateLimit())

	r.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	utils.InfoLogger.Printf("Listening on port %s", port)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

func autoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
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
	)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")
}
