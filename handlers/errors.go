package handlers

import (
	"errors"
	"net/http"

	providerRepo "github.com/Philip2024394/website-massage--sub024/database/repository/provider"
	"github.com/Philip2024394/website-massage--sub024/models"
	"github.com/Philip2024394/website-massage--sub024/services/booking"
	"github.com/Philip2024394/website-massage--sub024/services/pricing"
	"github.com/Philip2024394/website-massage--sub024/services/provider"
	"github.com/Philip2024394/website-massage--sub024/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError maps service errors onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	logger := getLogger(c)

	var guardErr *booking.GuardError
	switch {
	case errors.Is(err, providerRepo.ErrProviderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Provider not found"})
	case errors.Is(err, provider.ErrViewNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "View session not found or expired"})
	case errors.Is(err, models.ErrUnsupportedDuration):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, pricing.ErrNoPriceForDuration):
		c.JSON(http.StatusConflict, gin.H{"error": "No price is listed for this duration. Please contact the provider."})
	case errors.As(err, &guardErr):
		if guardErr.Silent() {
			c.JSON(http.StatusTooManyRequests, gin.H{"reason": guardErr.Code})
			return
		}
		c.JSON(http.StatusConflict, gin.H{"error": guardErr.Message, "reason": guardErr.Code})
	default:
		logger.Error("Request failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal server error", "")
	}
}
