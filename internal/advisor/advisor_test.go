package advisor

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Domenick1991/travelagent/internal/domain"
	"github.com/stretchr/testify/assert"
)

func testRequest() Request {
	return Request{
		Destination: "Paris",
		Nights:      3,
		Flights:     []domain.Flight{{ID: "F1", Airline: "IndiGo", PriceUSD: 500}},
		Hotels:      []domain.Hotel{{ID: "H1", Name: "Hotel Lumiere", PricePerNight: 90}},
	}
}

func TestStub_ReturnsNotGeneratedPlaceholder(t *testing.T) {
	stub := NewStub()

	text, err := stub.Itinerary(context.Background(), testRequest())
	assert.NoError(t, err)
	assert.Equal(t, PlaceholderNotGenerated, text)
}

func TestGeminiClient_RequiresAPIKey(t *testing.T) {
	_, err := NewGeminiClient("", "", "", 0)
	assert.Error(t, err)
}

func TestGeminiClient_Itinerary(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.URL.Path, "gemini-2.0-flash-001")
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Day 1: Louvre. Dinner: bistro."}]}}]}`))
	}))
	defer server.Close()

	client, err := NewGeminiClient("test-key", "gemini-2.0-flash-001", server.URL, time.Second)
	assert.NoError(t, err)

	text, err := client.Itinerary(context.Background(), testRequest())
	assert.NoError(t, err)
	assert.Equal(t, "Day 1: Louvre. Dinner: bistro.", text)
}

func TestGeminiClient_PromptContainsResultSets(t *testing.T) {
	var prompt string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		prompt = string(body)
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"ok"}]}}]}`))
	}))
	defer server.Close()

	client, _ := NewGeminiClient("test-key", "", server.URL, time.Second)
	_, err := client.Itinerary(context.Background(), testRequest())
	assert.NoError(t, err)

	assert.True(t, strings.Contains(prompt, "3-day itinerary for Paris"))
	assert.True(t, strings.Contains(prompt, "F1"))
	assert.True(t, strings.Contains(prompt, "Hotel Lumiere"))
	assert.True(t, strings.Contains(prompt, "day-by-day plan with 1-2 activities and a dining suggestion"))
}

func TestGeminiClient_ServerErrorIsReturned(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client, _ := NewGeminiClient("test-key", "", server.URL, time.Second)
	_, err := client.Itinerary(context.Background(), testRequest())
	assert.ErrorIs(t, err, domain.ErrAdvisoryFailure)
}

func TestGeminiClient_EmptyCandidatesIsAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer server.Close()

	client, _ := NewGeminiClient("test-key", "", server.URL, time.Second)
	_, err := client.Itinerary(context.Background(), testRequest())
	assert.Error(t, err)
}
