package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/Domenick1991/travelagent/internal/domain"
	"github.com/Domenick1991/travelagent/internal/service/trip"
	"github.com/Domenick1991/travelagent/internal/session"
	"github.com/gin-gonic/gin"
)

type TripHandler struct {
	service trip.TripUseCase
}

type searchRequest struct {
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	TravelDate  string  `json:"travel_date"`
	Budget      float64 `json:"budget"`
	Nights      int     `json:"nights"`
}

type sessionResponse struct {
	SessionID string `json:"session_id"`
}

type selectionResponse struct {
	SelectedID string `json:"selected_id"`
	Resolved   bool   `json:"resolved"`
	Message    string `json:"message,omitempty"`

	Flight *domain.Flight `json:"flight,omitempty"`
	Hotel  *domain.Hotel  `json:"hotel,omitempty"`
}

type currentSelectionResponse struct {
	Flight selectionResponse `json:"flight"`
	Hotel  selectionResponse `json:"hotel"`
}

type itineraryResponse struct {
	Itinerary string `json:"itinerary"`
}

type confirmRequest struct {
	Email string `json:"email"`
}

type confirmResponse struct {
	BookingID        int64  `json:"booking_id"`
	ConfirmationCode string `json:"confirmation_code"`
	Origin           string `json:"origin"`
	Destination      string `json:"destination"`
	TravelDate       string `json:"travel_date"`
	CreatedAt        string `json:"created_at"`
}

func NewTripHandler(service trip.TripUseCase) *TripHandler {
	return &TripHandler{service: service}
}

func (h *TripHandler) Register(router *gin.RouterGroup) {
	router.POST("/", h.create)
	router.POST("/:id/search", h.search)
	router.PUT("/:id/flight/:flightID", h.selectFlight)
	router.PUT("/:id/hotel/:hotelID", h.selectHotel)
	router.GET("/:id/selection", h.selection)
	router.GET("/:id/itinerary", h.itinerary)
	router.POST("/:id/confirm", h.confirm)
}

func (h *TripHandler) create(c *gin.Context) {
	id, err := h.service.CreateSession(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, sessionResponse{SessionID: id})
}

func (h *TripHandler) search(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	results, err := h.service.Search(c.Request.Context(), c.Param("id"), domain.SearchCriteria{
		Origin:      req.Origin,
		Destination: req.Destination,
		TravelDate:  req.TravelDate,
		Budget:      req.Budget,
		Nights:      req.Nights,
	})
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case domain.IsValidation(err):
			status = http.StatusBadRequest
		case errors.Is(err, session.ErrNotFound):
			status = http.StatusNotFound
		case errors.Is(err, domain.ErrDataUnavailable):
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, results)
}

func (h *TripHandler) selectFlight(c *gin.Context) {
	flightID := c.Param("flightID")
	flight, err := h.service.SelectFlight(c.Request.Context(), c.Param("id"), flightID)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		// Stale or unknown ids stick as the selection; only display degrades.
		c.JSON(http.StatusOK, selectionResponse{
			SelectedID: flightID,
			Resolved:   false,
			Message:    "flight " + flightID + " (not in cached list)",
		})
		return
	}

	c.JSON(http.StatusOK, selectionResponse{SelectedID: flightID, Resolved: true, Flight: flight})
}

func (h *TripHandler) selectHotel(c *gin.Context) {
	hotelID := c.Param("hotelID")
	hotel, err := h.service.SelectHotel(c.Request.Context(), c.Param("id"), hotelID)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, selectionResponse{
			SelectedID: hotelID,
			Resolved:   false,
			Message:    "hotel " + hotelID + " (not in cached list)",
		})
		return
	}

	c.JSON(http.StatusOK, selectionResponse{SelectedID: hotelID, Resolved: true, Hotel: hotel})
}

func (h *TripHandler) selection(c *gin.Context) {
	sel, err := h.service.CurrentSelection(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, currentSelectionResponse{
		Flight: selectionResponse{SelectedID: sel.FlightID, Resolved: sel.Flight != nil, Flight: sel.Flight},
		Hotel:  selectionResponse{SelectedID: sel.HotelID, Resolved: sel.Hotel != nil, Hotel: sel.Hotel},
	})
}

func (h *TripHandler) itinerary(c *gin.Context) {
	text, err := h.service.Itinerary(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, itineraryResponse{Itinerary: text})
}

func (h *TripHandler) confirm(c *gin.Context) {
	var req confirmRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	booking, err := h.service.ConfirmBooking(c.Request.Context(), c.Param("id"), trip.ConfirmBookingInput{Email: req.Email})
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case domain.IsValidation(err):
			status = http.StatusBadRequest
		case errors.Is(err, session.ErrNotFound):
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, confirmResponse{
		BookingID:        booking.ID,
		ConfirmationCode: booking.ConfirmationCode(),
		Origin:           booking.Origin,
		Destination:      booking.Destination,
		TravelDate:       booking.TravelDate,
		CreatedAt:        booking.CreatedAt.Format(time.RFC3339),
	})
}
