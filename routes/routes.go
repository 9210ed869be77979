package routes

import (
	"time"

	"github.com/Philip2024394/website-massage--sub024/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterProviderRoutes registers stored-provider resolution endpoints.
func RegisterProviderRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/providers")
	{
		api.GET("/:id/pricing", hb.GetPricingHandler)
		api.GET("/:id/status", hb.GetStatusHandler)
		api.GET("/:id/catalog", hb.GetCatalogHandler)
		api.POST("/:id/refresh", hb.RefreshHandler)
	}
	r.POST("/api/resolve", hb.ResolveHandler)
}

// RegisterViewRoutes registers view session endpoints.
func RegisterViewRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	views := r.Group("/api/views")
	{
		views.POST("", hb.OpenViewHandler)
		views.GET("/:viewID", hb.GetViewHandler)
		views.POST("/:viewID/refresh", hb.ReloadViewHandler)
		views.PUT("/:viewID/active-booking", hb.SetActiveBookingHandler)
		views.POST("/:viewID/actions/:kind", hb.ActionHandler)
		views.GET("/:viewID/countdown", hb.CountdownHandler)
		views.DELETE("/:viewID", hb.CloseViewHandler)
	}
}

// RegisterHealthRoute registers health-check and metrics endpoints.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.HealthHandler)
	if hb.MetricsHandler != nil {
		r.GET("/metrics", hb.MetricsHandler)
	}
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r, hb)
	RegisterProviderRoutes(r, hb)
	RegisterViewRoutes(r, hb)
}
