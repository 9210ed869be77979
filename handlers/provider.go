package handlers

import (
	"net/http"

	"github.com/Philip2024394/website-massage--sub024/services/provider"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ProviderHandler struct {
	Service provider.ProviderService
}

func NewProviderHandler(svc provider.ProviderService) *ProviderHandler {
	return &ProviderHandler{Service: svc}
}

// GetPricingHandler returns the resolved price map and service label of a provider.
func (h *ProviderHandler) GetPricingHandler(c *gin.Context) {
	id := c.Param("id")
	view, err := h.Service.GetProviderPricing(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"providerId":    view.ProviderID,
		"prices":        view.Prices,
		"serviceName":   view.ServiceName,
		"pricingSource": view.PricingSource,
	})
}

// GetStatusHandler returns the live availability of a provider. It is never cached.
func (h *ProviderHandler) GetStatusHandler(c *gin.Context) {
	id := c.Param("id")
	status, err := h.Service.GetProviderStatus(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// GetCatalogHandler returns the combined display catalog, synthetic entries flagged.
func (h *ProviderHandler) GetCatalogHandler(c *gin.Context) {
	id := c.Param("id")
	view, err := h.Service.GetProviderPricing(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"providerId": view.ProviderID,
		"catalog":    view.Catalog,
	})
}

// RefreshHandler queues a background recompute of a provider's pricing.
func (h *ProviderHandler) RefreshHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	taskID, err := h.Service.EnqueueRefresh(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	logger.Info("Pricing refresh queued", zap.String("providerID", id), zap.String("taskID", taskID))
	c.JSON(http.StatusAccepted, gin.H{"providerId": id, "taskId": taskID})
}

// ResolveHandler resolves a raw provider document posted inline.
func (h *ProviderHandler) ResolveHandler(c *gin.Context) {
	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		getLogger(c).Warn("Invalid resolve request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.Service.ResolveRaw(raw))
}
