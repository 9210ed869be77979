package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Stored provider endpoints
	GetPricingHandler gin.HandlerFunc
	GetStatusHandler  gin.HandlerFunc
	GetCatalogHandler gin.HandlerFunc
	RefreshHandler    gin.HandlerFunc

	// Inline resolution
	ResolveHandler gin.HandlerFunc

	// View session endpoints
	OpenViewHandler         gin.HandlerFunc
	GetViewHandler          gin.HandlerFunc
	ReloadViewHandler       gin.HandlerFunc
	SetActiveBookingHandler gin.HandlerFunc
	ActionHandler           gin.HandlerFunc
	CountdownHandler        gin.HandlerFunc
	CloseViewHandler        gin.HandlerFunc

	HealthHandler  gin.HandlerFunc
	MetricsHandler gin.HandlerFunc
}

// NewHandlerBundle assembles the bundle from the two handler groups.
func NewHandlerBundle(ph *ProviderHandler, vh *ViewHandler, health, metrics gin.HandlerFunc) *HandlerBundle {
	return &HandlerBundle{
		GetPricingHandler: ph.GetPricingHandler,
		GetStatusHandler:  ph.GetStatusHandler,
		GetCatalogHandler: ph.GetCatalogHandler,
		RefreshHandler:    ph.RefreshHandler,
		ResolveHandler:    ph.ResolveHandler,

		OpenViewHandler:         vh.OpenViewHandler,
		GetViewHandler:          vh.GetViewHandler,
		ReloadViewHandler:       vh.ReloadViewHandler,
		SetActiveBookingHandler: vh.SetActiveBookingHandler,
		ActionHandler:           vh.ActionHandler,
		CountdownHandler:        vh.CountdownHandler,
		CloseViewHandler:        vh.CloseViewHandler,

		HealthHandler:  health,
		MetricsHandler: metrics,
	}
}
