package router

import (
	"pesqueriaOutfitters/internal/middleware"
	"pesqueriaOutfitters/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupProductRoutes(api *echo.Group, handler *rest.ProductHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	products := api.Group("/products")

	products.GET("", handler.GetAllProducts)
	products.GET("/:id", handler.GetProductByID)
	products.POST("", handler.CreateProduct, authRequired, adminOnly)
	products.PUT("/:id", handler.UpdateProduct, authRequired, adminOnly)
	products.DELETE("/:id", handler.DeleteProduct, authRequired, adminOnly)
}

func SetupCategoryRoutes(api *echo.Group, handler *rest.CategoryHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	categories := api.Group("/categories")

	categories.GET("", handler.GetAllCategories)
	categories.GET("/:id", handler.GetCategoryByID)
	categories.POST("", handler.CreateCategory, authRequired, adminOnly)
	categories.PUT("/:id", handler.UpdateCategory, authRequired, adminOnly)
	categories.DELETE("/:id", handler.DeleteCategory, authRequired, adminOnly)
}

func SetRecommendationRoutes(api *echo.Group, handler *rest.RecommendationHandler) {
	reco := api.Group("/recommendations", middleware.OptionalAuth())
	reco.GET("", handler.Recommend)
}

func SetAnalyticsRoutes(api *echo.Group, handler *rest.AnalyticsHandler) {
	analytics := api.Group("/analytics", middleware.OptionalAuth())
	analytics.POST("/track", handler.Track)
}

func SetInsightsRoutes(api *echo.Group, handler *rest.InsightsHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	insights := api.Group("/admin/insights", authRequired, adminOnly)

	insights.GET("/browsing/:session_id", handler.BrowsingPattern)
	insights.GET("/trending-views", handler.TrendingViews)
	insights.GET("/most-viewed", handler.MostViewed)
	insights.GET("/high-conversion", handler.HighConversion)
}
