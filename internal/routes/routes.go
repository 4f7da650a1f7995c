package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"teklif-api/internal/config"
	"teklif-api/internal/email"
	"teklif-api/internal/handlers"
	"teklif-api/internal/middleware"
	"teklif-api/internal/pdf"
	"teklif-api/internal/repository"
	"teklif-api/internal/storage"
	"teklif-api/internal/visitor"
)

// RegisterRoutes wires repositories, services and handlers onto the /api
// prefix. Admin-gated routes check Basic credentials on every call.
func RegisterRoutes(router *gin.Engine, db *mongo.Database, cfg *config.Config, redisClient *redis.Client) {
	admins := repository.NewAdminRepository(db)
	categories := repository.NewCategoryRepository(db)
	products := repository.NewProductRepository(db)
	quotes := repository.NewQuoteRepository(db)
	customers := repository.NewCustomerRepository(db)
	campaigns := repository.NewCampaignRepository(db)
	vehicles := repository.NewVehicleRepository(db)
	contacts := repository.NewContactRepository(db)
	settings := repository.NewSettingsRepository(db)
	visitors := repository.NewVisitorRepository(db)

	mailer := email.NewMailer(cfg)
	pdfBuilder := pdf.NewBuilder()
	tracker := visitor.NewTracker(visitors)
	persistentStore := storage.New(cfg.StorageDriver, cfg.UploadDir)

	adminHandler := handlers.NewAdminHandler(admins)
	categoryHandler := handlers.NewCategoryHandler(categories)
	productHandler := handlers.NewProductHandler(products)
	quoteHandler := handlers.NewQuoteHandler(quotes, settings, mailer, pdfBuilder)
	customerHandler := handlers.NewCustomerHandler(customers, quotes, cfg.JWTSecret)
	campaignHandler := handlers.NewCampaignHandler(campaigns)
	vehicleHandler := handlers.NewVehicleHandler(vehicles)
	contactHandler := handlers.NewContactHandler(contacts)
	settingsHandler := handlers.NewSettingsHandler(settings)
	uploadHandler := handlers.NewUploadHandler(persistentStore)
	visitorHandler := handlers.NewVisitorHandler(visitors, tracker)

	requireAdmin := middleware.RequireAdmin(admins)
	requireCustomer := middleware.RequireCustomerOrAdmin(admins, cfg.JWTSecret)
	limiter := middleware.RateLimiter(redisClient)

	// Uploaded files double as static assets.
	router.Static("/uploads", cfg.UploadDir)

	api := router.Group("/api")
	{
		api.GET("/", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "Teklif Sistemi API"})
		})

		api.POST("/admin/login", limiter, adminHandler.Login)
		api.POST("/admin/init", adminHandler.Init)
		api.PUT("/admin/password", requireAdmin, adminHandler.ChangePassword)

		api.GET("/categories", categoryHandler.List)
		api.POST("/categories", requireAdmin, categoryHandler.Create)
		api.PUT("/categories/:id", requireAdmin, categoryHandler.Update)
		api.DELETE("/categories/:id", requireAdmin, categoryHandler.Delete)

		api.GET("/products", productHandler.List)
		api.GET("/products/low-stock/list", requireAdmin, productHandler.LowStockList)
		api.GET("/products/:id", productHandler.Get)
		api.POST("/products", requireAdmin, productHandler.Create)
		api.PUT("/products/:id", requireAdmin, productHandler.Update)
		api.DELETE("/products/:id", requireAdmin, productHandler.Delete)

		api.POST("/quotes", quoteHandler.Create)
		api.GET("/quotes", requireAdmin, quoteHandler.List)
		api.GET("/quotes/:id", requireAdmin, quoteHandler.Get)
		api.PUT("/quotes/:id", requireAdmin, quoteHandler.Update)
		api.DELETE("/quotes/:id", requireAdmin, quoteHandler.Delete)
		api.GET("/quotes/:id/pdf", requireAdmin, quoteHandler.PDF)
		api.POST("/quotes/:id/send-email", requireAdmin, quoteHandler.SendEmail)

		api.POST("/customer/register", limiter, customerHandler.Register)
		api.POST("/customer/login", limiter, customerHandler.Login)
		api.GET("/customer/profile/:id", requireCustomer, customerHandler.GetProfile)
		api.PUT("/customer/profile/:id", requireCustomer, customerHandler.UpdateProfile)
		api.GET("/customer/quotes/:email", requireCustomer, customerHandler.QuotesByEmail)

		api.POST("/upload", uploadHandler.UploadInline)
		api.POST("/upload-file", uploadHandler.UploadFile)

		api.GET("/settings", settingsHandler.Get)
		api.POST("/settings", requireAdmin, settingsHandler.Save)

		api.GET("/campaigns", requireAdmin, campaignHandler.List)
		api.GET("/campaigns/active", campaignHandler.Active)
		api.POST("/campaigns", requireAdmin, campaignHandler.Create)
		api.PUT("/campaigns/:id", requireAdmin, campaignHandler.Update)
		api.DELETE("/campaigns/:id", requireAdmin, campaignHandler.Delete)

		api.GET("/vehicles", requireAdmin, vehicleHandler.List)
		api.GET("/vehicles/:id", requireAdmin, vehicleHandler.Get)
		api.POST("/vehicles", requireAdmin, vehicleHandler.Create)
		api.PUT("/vehicles/:id", requireAdmin, vehicleHandler.Update)
		api.DELETE("/vehicles/:id", requireAdmin, vehicleHandler.Delete)

		api.POST("/contact", contactHandler.Create)
		api.GET("/contact", requireAdmin, contactHandler.List)
		api.GET("/contact/:id", requireAdmin, contactHandler.Get)
		api.PUT("/contact/:id", requireAdmin, contactHandler.Update)
		api.DELETE("/contact/:id", requireAdmin, contactHandler.Delete)

		api.POST("/visitors/track", visitorHandler.Track)
		api.GET("/visitors", requireAdmin, visitorHandler.List)
	}
}
