package router

import (
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/felizhandmade/feliz-store/cart"
	"github.com/felizhandmade/feliz-store/controllers"
	"github.com/felizhandmade/feliz-store/customize"
	"github.com/felizhandmade/feliz-store/docstore"
	"github.com/felizhandmade/feliz-store/middlewares"
	"github.com/felizhandmade/feliz-store/proofstore"
	"github.com/felizhandmade/feliz-store/receipt"
	"github.com/felizhandmade/feliz-store/utils"
)

// proofStoreFromEnv picks how transfer proofs are kept. STORAGE_MODE=inline
// re-encodes the image into a data URL stored on the order row, for hosts
// with no writable disk.
func proofStoreFromEnv(uploadDir string) proofstore.Store {
	if os.Getenv("STORAGE_MODE") == "inline" {
		return proofstore.NewInlineStore()
	}
	return proofstore.NewDiskStore(uploadDir)
}

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	workDir, _ := os.Getwd()
	uploadDir := filepath.Join(workDir, "public", "uploads")
	r.Static("/uploads", uploadDir)

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	carts := cart.NewStore(cart.NotifierFunc(func(message string) {
		utils.InfoLogger.Printf("cart: %s", message)
	}))
	sessions := customize.NewStore()
	receipts := receipt.NewSlot(filepath.Join(workDir, "data", "last-receipt.json"))
	proofs := proofStoreFromEnv(uploadDir)

	userCtrl := controllers.NewUserController(db)
	productCtrl := controllers.NewProductController(db)
	settingsCtrl := controllers.NewSettingsController(db)
	contentCtrl := controllers.NewContentController(docstore.NewGormStore(db))
	cartCtrl := controllers.NewCartController(db, carts)
	customizeCtrl := controllers.NewCustomizationController(db, sessions, carts, settingsCtrl)
	orderCtrl := controllers.NewOrderController(db, carts, proofs, receipts)
	adminCtrl := controllers.NewAdminController(db)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/register", userCtrl.Register)
		public.POST("/login", userCtrl.Login)
	}

	// Storefront catalog and page copy
	r.GET("/products", productCtrl.GetAllProducts)
	r.GET("/products/home", productCtrl.GetHomeProducts)
	r.GET("/products/:product_id", productCtrl.GetProductByID)
	r.GET("/settings", settingsCtrl.GetSettings)
	r.GET("/content/:collection", contentCtrl.ListDocs)
	r.GET("/content/:collection/:doc_id", contentCtrl.GetDoc)

	// Cart
	r.POST("/carts", cartCtrl.CreateCart)
	r.GET("/carts/:cart_id", cartCtrl.GetCart)
	r.POST("/carts/:cart_id/items", cartCtrl.AddItem)
	r.PATCH("/carts/:cart_id/items/:item_id", cartCtrl.SetItemQuantity)
	r.DELETE("/carts/:cart_id/items/:item_id", cartCtrl.RemoveItem)
	r.POST("/carts/:cart_id/open", cartCtrl.OpenCart)
	r.POST("/carts/:cart_id/close", cartCtrl.CloseCart)

	// Bracelet designer
	r.GET("/customize/options", customizeCtrl.GetOptions)
	r.POST("/customize/sessions", customizeCtrl.StartSession)
	r.GET("/customize/sessions/:session_id", customizeCtrl.GetSession)
	r.POST("/customize/sessions/:session_id/knots/:knot_id", customizeCtrl.ToggleKnot)
	r.POST("/customize/sessions/:session_id/select/:slot/:option_id", customizeCtrl.SelectOption)
	r.POST("/customize/sessions/:session_id/next", customizeCtrl.NextStep)
	r.POST("/customize/sessions/:session_id/prev", customizeCtrl.PrevStep)
	r.POST("/customize/sessions/:session_id/confirm", customizeCtrl.Confirm)

	// Checkout and receipts
	r.POST("/checkout", orderCtrl.Checkout)
	r.GET("/orders/code/:order_code", orderCtrl.GetOrderByCode)
	r.GET("/orders/code/:order_code/receipt.pdf", orderCtrl.GetOrderReceiptPDF)
	r.GET("/receipt/last", orderCtrl.GetLastReceipt)

	// ----------------------------------------------------------------
	//                      ADMIN ROUTES
	// ----------------------------------------------------------------
	admin := r.Group("/admin")
	admin.Use(middlewares.AuthMiddleware(), middlewares.AdminOnly())

	admin.GET("/profile", userCtrl.GetProfile)
	admin.GET("/users", userCtrl.GetAllUsers)

	admin.GET("/dashboard/stats", adminCtrl.GetDashboardStats)

	admin.GET("/orders", orderCtrl.GetAllOrders)
	admin.GET("/orders/:order_id", orderCtrl.GetOrderByID)
	admin.PATCH("/orders/:order_id/status", orderCtrl.UpdateOrderStatus)
	admin.DELETE("/orders/:order_id", orderCtrl.DeleteOrder)

	admin.PUT("/products/:product_id", productCtrl.UpsertProduct)
	admin.DELETE("/products/:product_id", productCtrl.DeleteProduct)

	admin.PUT("/customize/:kind/:option_id", customizeCtrl.UpsertOption)
	admin.DELETE("/customize/:kind/:option_id", customizeCtrl.DeleteOption)

	admin.GET("/settings", settingsCtrl.ListSettings)
	admin.PUT("/settings", settingsCtrl.UpsertSettings)

	admin.PUT("/content/:collection/:doc_id", contentCtrl.UpsertDoc)
	admin.DELETE("/content/:collection/:doc_id", contentCtrl.DeleteDoc)

	// WebSocket endpoint for the live admin panel
	wsGroup := r.Group("/ws")
	wsGroup.Use(middlewares.WebSocketAuthMiddleware())
	{
		wsGroup.GET("/admin", controllers.LiveHandler)
	}

	return r
}
