package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Domenick1991/travelagent/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestBookingHandler_recent(t *testing.T) {
	mockService := &MockTripUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest("GET", "/bookings/recent?limit=3", nil)

	summaries := []domain.BookingSummary{
		{ID: 5, Origin: "Delhi", Destination: "Paris", TravelDate: "2025-10-05", ConfirmationCode: "TRV-000005", CreatedAt: time.Now()},
		{ID: 4, Origin: "Delhi", Destination: "Rome", TravelDate: "2025-10-01", ConfirmationCode: "TRV-000004", CreatedAt: time.Now().Add(-time.Hour)},
		{ID: 3, Origin: "Delhi", Destination: "Tokyo", TravelDate: "2025-09-20", ConfirmationCode: "TRV-000003", CreatedAt: time.Now().Add(-2 * time.Hour)},
	}
	mockService.On("RecentBookings", c.Request.Context(), 3).Return(summaries, nil)

	handler.recent(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response []domain.BookingSummary
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Len(t, response, 3)
	assert.Equal(t, int64(5), response[0].ID)

	mockService.AssertExpectations(t)
}

func TestBookingHandler_recent_defaultLimit(t *testing.T) {
	mockService := &MockTripUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest("GET", "/bookings/recent", nil)

	mockService.On("RecentBookings", c.Request.Context(), defaultRecentLimit).Return([]domain.BookingSummary{}, nil)

	handler.recent(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestBookingHandler_recent_invalidLimit(t *testing.T) {
	mockService := &MockTripUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest("GET", "/bookings/recent?limit=abc", nil)

	handler.recent(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "RecentBookings")
}

func TestBookingHandler_recent_storeUnavailable(t *testing.T) {
	mockService := &MockTripUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest("GET", "/bookings/recent", nil)

	mockService.On("RecentBookings", c.Request.Context(), defaultRecentLimit).Return(nil, domain.ErrPersistenceUnavailable)

	handler.recent(c)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	mockService.AssertExpectations(t)
}
