package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/gigline/gigline/internal/server/http/handlers"
	"github.com/gigline/gigline/internal/server/http/middleware"
)

// Setup configures the gin router with handlers and middleware.
func Setup(facade handlers.MarketplaceFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	profileHandler := handlers.NewProfileHandler(facade)
	offerHandler := handlers.NewOfferHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	reviewHandler := handlers.NewReviewHandler(facade)
	statsHandler := handlers.NewStatsHandler(facade)

	api := engine.Group("/api")

	api.POST("/registration", authHandler.Register)
	api.POST("/login", authHandler.Login)
	api.GET("/offers", offerHandler.List)
	api.GET("/offers/:id", offerHandler.Get)
	api.GET("/offerdetails/:id", offerHandler.GetDetail)
	api.GET("/base-info", statsHandler.BaseInfo)

	authed := api.Group("")
	authed.Use(middleware.AuthRequired(facade))

	authed.GET("/profile/:id", profileHandler.Get)
	authed.PATCH("/profile/:id", profileHandler.Update)
	authed.GET("/profiles/customer", profileHandler.ListCustomers)
	authed.GET("/profiles/business", profileHandler.ListBusinesses)

	authed.POST("/offers", offerHandler.Create)
	authed.PATCH("/offers/:id", offerHandler.Update)
	authed.DELETE("/offers/:id", offerHandler.Delete)

	authed.POST("/orders", orderHandler.Create)
	authed.GET("/orders", orderHandler.List)
	authed.PATCH("/orders/:id", orderHandler.UpdateStatus)
	authed.DELETE("/orders/:id", orderHandler.Delete)
	authed.GET("/order-count/:business_user_id", orderHandler.CountInProgress)
	authed.GET("/completed-order-count/:business_user_id", orderHandler.CountCompleted)

	authed.POST("/reviews", reviewHandler.Create)
	authed.GET("/reviews", reviewHandler.List)
	authed.GET("/reviews/:id", reviewHandler.Get)
	authed.PATCH("/reviews/:id", reviewHandler.Update)
	authed.DELETE("/reviews/:id", reviewHandler.Delete)

	return engine
}
