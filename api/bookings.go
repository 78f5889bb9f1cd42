package api

import (
	"net/http"
	"strconv"

	"github.com/Domenick1991/travelagent/internal/service/trip"
	"github.com/gin-gonic/gin"
)

const defaultRecentLimit = 8

type BookingHandler struct {
	service trip.TripUseCase
}

func NewBookingHandler(service trip.TripUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.GET("/recent", h.recent)
}

func (h *BookingHandler) recent(c *gin.Context) {
	limit := defaultRecentLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = parsed
	}

	summaries, err := h.service.RecentBookings(c.Request.Context(), limit)
	if err != nil {
		// Listing is a status surface: an unreachable store is reported,
		// not fatal.
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Booking DB unavailable."})
		return
	}

	c.JSON(http.StatusOK, summaries)
}
