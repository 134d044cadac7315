package router

import (
	"time"

	"artistry/config"
	"artistry/internal/handler"
	"artistry/internal/middleware"
	"artistry/internal/repository"
	"artistry/internal/service"
	"artistry/internal/ws"
	"artistry/pkg/cloudinary"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Setup(cfg *config.Config, db *gorm.DB, cloud cloudinary.Client) (*gin.Engine, error) {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RateLimit(middleware.NewInMemoryRateLimiter(100, 60*time.Second)))

	// Repositories
	cakeRepo := repository.NewCakeRepository(db)
	bouquetRepo := repository.NewBouquetRepository(db)
	paintingRepo := repository.NewPaintingRepository(db)
	inquiryRepo := repository.NewInquiryRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	settingRepo := repository.NewSettingRepository(db)

	hub := ws.NewHub()

	authSvc, err := service.NewAuthService(cfg)
	if err != nil {
		return nil, err
	}

	// Handlers
	cakeHandler := handler.NewCakeHandler(cakeRepo)
	bouquetHandler := handler.NewBouquetHandler(bouquetRepo)
	paintingHandler := handler.NewPaintingHandler(paintingRepo)
	inquiryHandler := handler.NewInquiryHandler(inquiryRepo, hub)
	orderHandler := handler.NewOrderHandler(orderRepo, hub)
	settingsHandler := handler.NewSettingsHandler(settingRepo)
	statsHandler := handler.NewStatsHandler(cakeRepo, bouquetRepo, paintingRepo, inquiryRepo, orderRepo)
	authHandler := handler.NewAuthHandler(authSvc)
	uploadHandler := handler.NewUploadHandler(cloud)

	adminMw := middleware.AdminRequired(&cfg.Admin)
	// Login gets a tighter limiter than the rest of the API.
	loginLimiter := middleware.RateLimit(middleware.NewInMemoryRateLimiter(10, 60*time.Second))

	api := r.Group("/api")
	{
		// Public catalog
		api.GET("/cakes", cakeHandler.List)
		api.GET("/bouquets", bouquetHandler.List)
		api.GET("/paintings", paintingHandler.List)
		api.GET("/settings", settingsHandler.Get)

		// Public intake forms
		api.POST("/inquiry", inquiryHandler.Create)
		api.POST("/orders", orderHandler.Create)

		api.POST("/admin/login", loginLimiter, authHandler.Login)

		// Catalog management
		api.POST("/cakes", adminMw, cakeHandler.Create)
		api.PUT("/cakes/:id", adminMw, cakeHandler.Update)
		api.DELETE("/cakes/:id", adminMw, cakeHandler.Delete)
		api.POST("/bouquets", adminMw, bouquetHandler.Create)
		api.PUT("/bouquets/:id", adminMw, bouquetHandler.Update)
		api.DELETE("/bouquets/:id", adminMw, bouquetHandler.Delete)
		api.POST("/paintings", adminMw, paintingHandler.Create)
		api.PUT("/paintings/:id", adminMw, paintingHandler.Update)
		api.DELETE("/paintings/:id", adminMw, paintingHandler.Delete)

		// Inquiry inbox
		api.GET("/inquiry", adminMw, inquiryHandler.List)
		api.GET("/inquiry/:id", adminMw, inquiryHandler.Get)
		api.PUT("/inquiry/:id", adminMw, inquiryHandler.Update)
		api.PATCH("/inquiry/:id", adminMw, inquiryHandler.Update)
		api.DELETE("/inquiry/:id", adminMw, inquiryHandler.Delete)

		// Custom-order inbox
		api.GET("/orders", adminMw, orderHandler.List)
		api.DELETE("/orders/:id", adminMw, orderHandler.Delete)

		api.PUT("/settings", adminMw, settingsHandler.Put)
		api.POST("/upload", adminMw, uploadHandler.Upload)

		// Admin tables: search + enum filter + pagination
		admin := api.Group("/admin")
		admin.Use(adminMw)
		{
			admin.GET("/cakes", cakeHandler.ListAdmin)
			admin.GET("/bouquets", bouquetHandler.ListAdmin)
			admin.GET("/paintings", paintingHandler.ListAdmin)
			admin.GET("/inquiries", inquiryHandler.ListAdmin)
			admin.GET("/orders", orderHandler.ListAdmin)
			admin.GET("/stats", statsHandler.Get)
		}
	}

	r.GET("/ws/admin", ws.UpgradeAdminWS(&cfg.Admin, hub))

	return r, nil
}
