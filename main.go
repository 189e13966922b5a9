package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Tahabaig044/luxury-admin/internal/config"
	"github.com/Tahabaig044/luxury-admin/internal/database"
	"github.com/Tahabaig044/luxury-admin/internal/handlers"
	"github.com/Tahabaig044/luxury-admin/internal/middleware"
	"github.com/Tahabaig044/luxury-admin/internal/payments"
)

func main() {
	config.Load()

	client, err := database.Connect(config.AppEnv.MongoURI)
	if err != nil {
		log.Fatal(err)
	}

	db := client.Database(config.AppEnv.DBName)

	log.Println("MongoDB connected to:", db.Name())

	if err := database.EnsureCustomerIndexes(db); err != nil {
		log.Printf("customer index warning: %v", err)
	}
	if err := database.EnsureOrderIndexes(db); err != nil {
		log.Printf("order index warning: %v", err)
	}
	if err := database.EnsureProductIndexes(db); err != nil {
		log.Printf("product index warning: %v", err)
	}
	if err := database.EnsureWebhookEventIndexes(db); err != nil {
		log.Printf("webhook event index warning: %v", err)
	}

	stripeClient := payments.NewClient(config.AppEnv.StripeSecretKey)

	r := gin.Default()

	// Storefront-facing endpoints; any origin may call them.
	store := r.Group("/")
	store.Use(cors.Default())
	{
		store.POST("/checkout", handlers.CreateCheckoutSession(stripeClient, config.AppEnv.StoreURL))
		store.POST("/orders/cod", handlers.CreateCODOrder(db))
	}

	// Server-to-server only, no CORS.
	r.POST("/webhooks", handlers.HandleWebhook(db, stripeClient, config.AppEnv.StripeWebhookSecret))

	admin := r.Group("/")
	admin.Use(middleware.AdminCORS(config.AppEnv.AdminURL))
	admin.Use(middleware.StaffAuth(config.AppEnv.JWTSecret))
	{
		admin.GET("/collections", handlers.GetCollections(db))
		admin.POST("/collections", handlers.CreateCollection(db))
		admin.GET("/collections/:id", handlers.GetCollection(db))
		admin.POST("/collections/:id", handlers.UpdateCollection(db))
		admin.DELETE("/collections/:id", handlers.DeleteCollection(db))

		admin.GET("/products", handlers.GetProducts(db))
		admin.POST("/products", handlers.CreateProduct(db))
		admin.GET("/products/:id", handlers.GetProduct(db))
		admin.POST("/products/:id", handlers.UpdateProduct(db))
		admin.DELETE("/products/:id", handlers.DeleteProduct(db))

		admin.GET("/orders", handlers.GetOrders(db))
		admin.GET("/orders/:id", handlers.GetOrder(db))
		admin.PATCH("/orders/:id", handlers.UpdateOrderPaymentStatus(db))
		admin.DELETE("/orders/:id", handlers.DeleteOrder(db))

		admin.GET("/customers", handlers.GetCustomers(db))
		admin.PATCH("/customers/:id", handlers.UpdateCustomerVIP(db))

		admin.GET("/dashboard", handlers.GetDashboard(db))
	}

	if err := r.Run(":" + config.AppEnv.Port); err != nil {
		log.Fatal(err)
	}
}
