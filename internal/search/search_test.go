package search

import (
	"context"
	"errors"
	"testing"

	"github.com/Domenick1991/travelagent/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockCache struct {
	mock.Mock
}

func (m *MockCache) GetResults(ctx context.Context, key string) (*domain.SearchResults, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SearchResults), args.Error(1)
}

func (m *MockCache) SetResults(ctx context.Context, key string, results domain.SearchResults) error {
	args := m.Called(ctx, key, results)
	return args.Error(0)
}

func flight(id, origin, destination, depart string, price float64) domain.Flight {
	return domain.Flight{
		ID:             id,
		Airline:        "TestAir",
		FlightNumber:   "TA" + id,
		Origin:         origin,
		Destination:    destination,
		DepartDateTime: depart,
		PriceUSD:       price,
	}
}

func hotel(id, city string, price, rating float64, rooms int) domain.Hotel {
	return domain.Hotel{
		ID:                id,
		Name:              "Hotel " + id,
		City:              city,
		PricePerNight:     price,
		Rating:            rating,
		AvailabilityRooms: rooms,
	}
}

func TestSearch_FlightExactMatch(t *testing.T) {
	service := NewService(nil, 0, 0)

	flights := []domain.Flight{
		flight("F1", "Delhi", "Paris", "2025-10-05T10:00", 500),
		flight("F2", "Delhi", "London", "2025-10-05T11:00", 400),
	}

	results, err := service.Search(context.Background(), flights, nil, domain.SearchCriteria{
		Origin:      "Delhi",
		Destination: "Paris",
		TravelDate:  "2025-10-05",
		Budget:      150,
	})

	assert.NoError(t, err)
	assert.Len(t, results.Flights, 1)
	assert.Equal(t, "F1", results.Flights[0].ID)
}

func TestSearch_FlightMatchIsCaseInsensitiveAndTrimmed(t *testing.T) {
	service := NewService(nil, 0, 0)

	flights := []domain.Flight{
		flight("F1", "Delhi", "Paris", "2025-10-05T10:00", 500),
	}

	results, err := service.Search(context.Background(), flights, nil, domain.SearchCriteria{
		Origin:      "  delhi ",
		Destination: "PARIS",
		TravelDate:  "2025-10-05",
	})

	assert.NoError(t, err)
	assert.Len(t, results.Flights, 1)
}

func TestSearch_FlightDateMustMatchDeparturePrefix(t *testing.T) {
	service := NewService(nil, 0, 0)

	flights := []domain.Flight{
		flight("F1", "Delhi", "Paris", "2025-10-05T10:00", 500),
		flight("F2", "Delhi", "Paris", "2025-10-06T10:00", 300),
	}

	results, err := service.Search(context.Background(), flights, nil, domain.SearchCriteria{
		Origin:      "Delhi",
		Destination: "Paris",
		TravelDate:  "2025-10-05",
	})

	assert.NoError(t, err)
	assert.Len(t, results.Flights, 1)
	assert.Equal(t, "F1", results.Flights[0].ID)
}

func TestSearch_FlightsSortedByPriceAndCapped(t *testing.T) {
	service := NewService(nil, 0, 0)

	flights := make([]domain.Flight, 0, 15)
	for i := 0; i < 15; i++ {
		flights = append(flights, flight(
			string(rune('A'+i)),
			"Delhi", "Paris", "2025-10-05T10:00",
			float64(1000-i*10),
		))
	}

	results, err := service.Search(context.Background(), flights, nil, domain.SearchCriteria{
		Origin:      "Delhi",
		Destination: "Paris",
		TravelDate:  "2025-10-05",
	})

	assert.NoError(t, err)
	assert.Len(t, results.Flights, DefaultDisplayCap)
	for i := 1; i < len(results.Flights); i++ {
		assert.LessOrEqual(t, results.Flights[i-1].PriceUSD, results.Flights[i].PriceUSD)
	}
}

func TestSearch_HotelBudgetCeiling(t *testing.T) {
	service := NewService(nil, 0, 0)

	hotels := []domain.Hotel{
		hotel("H1", "Paris", 120, 4.5, 3),
		hotel("H2", "Paris", 90, 4.0, 3),
	}

	results, err := service.Search(context.Background(), nil, hotels, domain.SearchCriteria{
		Origin:      "Delhi",
		Destination: "Paris",
		TravelDate:  "2025-10-05",
		Budget:      100,
	})

	assert.NoError(t, err)
	assert.Len(t, results.Hotels, 1)
	assert.Equal(t, "H2", results.Hotels[0].ID)
}

func TestSearch_HotelZeroAvailabilityExcluded(t *testing.T) {
	service := NewService(nil, 0, 0)

	hotels := []domain.Hotel{
		hotel("H1", "Paris", 80, 4.5, 0),
		hotel("H2", "Paris", 90, 4.0, 2),
	}

	results, err := service.Search(context.Background(), nil, hotels, domain.SearchCriteria{
		Origin:      "Delhi",
		Destination: "Paris",
		TravelDate:  "2025-10-05",
		Budget:      100,
	})

	assert.NoError(t, err)
	assert.Len(t, results.Hotels, 1)
	assert.Equal(t, "H2", results.Hotels[0].ID)
}

func TestSearch_HotelSortPriceThenRatingAscending(t *testing.T) {
	service := NewService(nil, 0, 0)

	hotels := []domain.Hotel{
		hotel("H1", "Paris", 90, 4.8, 2),
		hotel("H2", "Paris", 90, 4.1, 2),
		hotel("H3", "Paris", 70, 3.0, 2),
	}

	results, err := service.Search(context.Background(), nil, hotels, domain.SearchCriteria{
		Origin:      "Delhi",
		Destination: "Paris",
		TravelDate:  "2025-10-05",
		Budget:      100,
	})

	assert.NoError(t, err)
	assert.Equal(t, []string{"H3", "H2", "H1"}, []string{results.Hotels[0].ID, results.Hotels[1].ID, results.Hotels[2].ID})
}

func TestSearch_EmptyResultsAreNotAnError(t *testing.T) {
	service := NewService(nil, 0, 0)

	results, err := service.Search(context.Background(), nil, nil, domain.SearchCriteria{
		Origin:      "Delhi",
		Destination: "Paris",
		TravelDate:  "2025-10-05",
	})

	assert.NoError(t, err)
	assert.Empty(t, results.Flights)
	assert.Empty(t, results.Hotels)
}

func TestSearch_MissingOriginIsValidationError(t *testing.T) {
	service := NewService(nil, 0, 0)

	_, err := service.Search(context.Background(), nil, nil, domain.SearchCriteria{
		Destination: "Paris",
		TravelDate:  "2025-10-05",
	})

	assert.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func TestSearch_CacheHit(t *testing.T) {
	mockCache := &MockCache{}
	service := NewService(mockCache, 0, 0)

	cached := &domain.SearchResults{
		Flights: []domain.Flight{flight("F9", "Delhi", "Paris", "2025-10-05T10:00", 100)},
	}
	mockCache.On("GetResults", mock.Anything, mock.Anything).Return(cached, nil)

	results, err := service.Search(context.Background(), nil, nil, domain.SearchCriteria{
		Origin:      "Delhi",
		Destination: "Paris",
		TravelDate:  "2025-10-05",
	})

	assert.NoError(t, err)
	assert.Equal(t, *cached, results)
	mockCache.AssertExpectations(t)
}

func TestSearch_CacheMissStoresResults(t *testing.T) {
	mockCache := &MockCache{}
	service := NewService(mockCache, 0, 0)

	mockCache.On("GetResults", mock.Anything, mock.Anything).Return(nil, errors.New("miss"))
	mockCache.On("SetResults", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	flights := []domain.Flight{flight("F1", "Delhi", "Paris", "2025-10-05T10:00", 500)}

	results, err := service.Search(context.Background(), flights, nil, domain.SearchCriteria{
		Origin:      "Delhi",
		Destination: "Paris",
		TravelDate:  "2025-10-05",
	})

	assert.NoError(t, err)
	assert.Len(t, results.Flights, 1)
	mockCache.AssertExpectations(t)
}
