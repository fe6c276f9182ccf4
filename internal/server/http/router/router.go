package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/sweetworks/sweetshop/internal/server/http/handlers"
	"github.com/sweetworks/sweetshop/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.ShopFacade, logger *slog.Logger, limiter *middleware.ClientLimiter) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))
	engine.Use(limiter.Middleware())

	authHandler := handlers.NewAuthHandler(facade)
	sweetHandler := handlers.NewSweetHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	reviewHandler := handlers.NewReviewHandler(facade)
	contactHandler := handlers.NewContactHandler(facade)

	authRequired := middleware.AuthRequired(facade)
	adminRequired := middleware.AdminRequired()

	api := engine.Group("/api/v1")

	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	users := api.Group("/users", authRequired)
	users.GET("/me", authHandler.Me)

	sweets := api.Group("/sweets")
	sweets.GET("", sweetHandler.List)
	sweets.GET("/search", sweetHandler.Search)
	sweets.GET("/filters/categories", sweetHandler.Categories)
	sweets.GET("/filters/price-range", sweetHandler.PriceRange)
	sweets.GET("/:id", sweetHandler.Get)
	sweets.POST("/:id/purchase", authRequired, sweetHandler.Purchase)
	sweets.POST("", authRequired, adminRequired, sweetHandler.Create)
	sweets.PUT("/:id", authRequired, adminRequired, sweetHandler.Update)
	sweets.DELETE("/:id", authRequired, adminRequired, sweetHandler.Delete)
	sweets.POST("/:id/restock", authRequired, adminRequired, sweetHandler.Restock)

	orders := api.Group("/orders", authRequired)
	orders.POST("", orderHandler.Create)
	orders.GET("/my-orders", orderHandler.Mine)
	orders.GET("/:id", orderHandler.Get)
	orders.GET("", adminRequired, orderHandler.List)
	orders.PUT("/:id", orderHandler.Update)

	reviews := api.Group("/reviews")
	reviews.POST("", authRequired, reviewHandler.Create)
	reviews.GET("/sweet/:id", reviewHandler.BySweet)
	reviews.GET("/user/me", authRequired, reviewHandler.Mine)
	reviews.GET("/purchasable-items", authRequired, reviewHandler.Reviewable)
	reviews.PUT("/:id", authRequired, reviewHandler.Update)
	reviews.DELETE("/:id", authRequired, reviewHandler.Delete)

	contact := api.Group("/contact")
	contact.POST("", contactHandler.Create)
	contact.GET("", authRequired, adminRequired, contactHandler.List)
	contact.GET("/unprocessed", authRequired, adminRequired, contactHandler.Unprocessed)
	contact.PUT("/:id", authRequired, adminRequired, contactHandler.Update)
	contact.DELETE("/:id", authRequired, adminRequired, contactHandler.Delete)

	return engine
}
