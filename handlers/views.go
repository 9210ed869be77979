package handlers

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/Philip2024394/website-massage--sub024/models"
	"github.com/Philip2024394/website-massage--sub024/services/availability"
	"github.com/Philip2024394/website-massage--sub024/services/booking"
	"github.com/Philip2024394/website-massage--sub024/services/provider"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ViewHandler struct {
	Service      provider.ProviderService
	TickInterval time.Duration
	Clock        func() time.Time
}

func NewViewHandler(svc provider.ProviderService, tick time.Duration) *ViewHandler {
	if tick <= 0 {
		tick = availability.DefaultTickInterval
	}
	return &ViewHandler{Service: svc, TickInterval: tick, Clock: time.Now}
}

func (h *ViewHandler) now() time.Time {
	if h.Clock == nil {
		return time.Now()
	}
	return h.Clock()
}

type actionRequest struct {
	DurationMinutes int `json:"durationMinutes"`
}

type activeBookingRequest struct {
	Active *bool `json:"active" binding:"required"`
}

// OpenViewHandler opens a view session for a stored provider.
func (h *ViewHandler) OpenViewHandler(c *gin.Context) {
	var req provider.OpenViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		getLogger(c).Warn("Invalid open view request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	viewID, snap, err := h.Service.OpenView(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"viewId": viewID, "view": snap})
}

func (h *ViewHandler) GetViewHandler(c *gin.Context) {
	snap, err := h.Service.GetView(c.Param("viewID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// ReloadViewHandler re-reads the provider record behind a view.
func (h *ViewHandler) ReloadViewHandler(c *gin.Context) {
	snap, err := h.Service.ReloadView(c.Request.Context(), c.Param("viewID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

func (h *ViewHandler) SetActiveBookingHandler(c *gin.Context) {
	var req activeBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	snap, err := h.Service.SetActiveScheduledBooking(c.Param("viewID"), *req.Active)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// ActionHandler runs a guarded book/schedule/price_view action.
func (h *ViewHandler) ActionHandler(c *gin.Context) {
	logger := getLogger(c)

	kind, err := booking.ParseActionKind(c.Param("kind"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req actionRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil && err != io.EOF {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}
	}

	result, err := h.Service.AttemptAction(c.Param("viewID"), kind, req.DurationMinutes)
	if err != nil {
		respondError(c, err)
		return
	}
	if !result.Decision.Allowed {
		logger.Debug("Action rejected",
			zap.String("viewID", c.Param("viewID")),
			zap.String("kind", string(kind)),
			zap.String("reason", string(result.Decision.Reason)))
		respondError(c, result.Decision.Err())
		return
	}
	c.JSON(http.StatusOK, result)
}

// CountdownHandler streams one countdown reading per tick as server-sent events until
// the client goes away or the view session is closed. Views without a booked-until
// deadline get a single empty reading.
func (h *ViewHandler) CountdownHandler(c *gin.Context) {
	logger := getLogger(c)
	viewID := c.Param("viewID")

	session, err := h.Service.Session(viewID)
	if err != nil {
		respondError(c, err)
		return
	}
	var countdown availability.Countdown
	session.With(func(v *provider.ViewState) { countdown = v.Countdown })

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Status(http.StatusOK)

	// Without a deadline there is nothing to tick: one empty reading ends the stream.
	if !countdown.Valid() {
		c.SSEvent("countdown", countdown.At(h.now()))
		c.Writer.Flush()
		return
	}

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()
	go func() {
		select {
		case <-session.Done():
			cancel()
		case <-ctx.Done():
		}
	}()

	err = countdown.Run(ctx, h.TickInterval, h.Clock, func(r models.CountdownReading) error {
		c.SSEvent("countdown", r)
		c.Writer.Flush()
		return nil
	})
	if err != nil && ctx.Err() == nil {
		logger.Warn("Countdown stream stopped", zap.String("viewID", viewID), zap.Error(err))
	}
}

func (h *ViewHandler) CloseViewHandler(c *gin.Context) {
	if err := h.Service.CloseView(c.Param("viewID")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
