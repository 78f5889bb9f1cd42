package search

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"github.com/Domenick1991/travelagent/internal/domain"
)

const (
	DefaultMatchCap   = 12
	DefaultDisplayCap = 8
)

type SearchUseCase interface {
	Search(ctx context.Context, flights []domain.Flight, hotels []domain.Hotel, criteria domain.SearchCriteria) (domain.SearchResults, error)
}

type Cache interface {
	GetResults(ctx context.Context, key string) (*domain.SearchResults, error)
	SetResults(ctx context.Context, key string, results domain.SearchResults) error
}

// Service filters and ranks the in-memory datasets. Flights match on
// origin/destination and the departure date prefix, sorted by price. Hotels
// match on city, budget ceiling and availability, sorted by price then rating
// ascending (the rating direction is the observed behavior, kept pending
// product clarification). Both sets are capped before surfacing.
type Service struct {
	cache      Cache
	matchCap   int
	displayCap int
}

func NewService(cache Cache, matchCap, displayCap int) *Service {
	if matchCap <= 0 {
		matchCap = DefaultMatchCap
	}
	if displayCap <= 0 {
		displayCap = DefaultDisplayCap
	}
	return &Service{cache: cache, matchCap: matchCap, displayCap: displayCap}
}

func (s *Service) Search(ctx context.Context, flights []domain.Flight, hotels []domain.Hotel, criteria domain.SearchCriteria) (domain.SearchResults, error) {
	if err := criteria.Validate(); err != nil {
		return domain.SearchResults{}, err
	}

	key := cacheKey(criteria)
	if s.cache != nil {
		if cached, err := s.cache.GetResults(ctx, key); err == nil && cached != nil {
			return *cached, nil
		}
	}

	results := domain.SearchResults{
		Flights: s.matchFlights(flights, criteria),
		Hotels:  s.matchHotels(hotels, criteria),
	}

	if s.cache != nil {
		_ = s.cache.SetResults(ctx, key, results)
	}
	return results, nil
}

func (s *Service) matchFlights(flights []domain.Flight, criteria domain.SearchCriteria) []domain.Flight {
	origin := normalize(criteria.Origin)
	destination := normalize(criteria.Destination)

	matched := make([]domain.Flight, 0)
	for _, f := range flights {
		if normalize(f.Origin) != origin || normalize(f.Destination) != destination {
			continue
		}
		if !strings.HasPrefix(f.DepartDateTime, criteria.TravelDate) {
			continue
		}
		matched = append(matched, f)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].PriceUSD < matched[j].PriceUSD
	})

	matched = truncateFlights(matched, s.matchCap)
	return truncateFlights(matched, s.displayCap)
}

func (s *Service) matchHotels(hotels []domain.Hotel, criteria domain.SearchCriteria) []domain.Hotel {
	city := normalize(criteria.Destination)

	matched := make([]domain.Hotel, 0)
	for _, h := range hotels {
		if normalize(h.City) != city {
			continue
		}
		if h.PricePerNight > criteria.Budget {
			continue
		}
		if h.AvailabilityRooms <= 0 {
			continue
		}
		matched = append(matched, h)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].PricePerNight != matched[j].PricePerNight {
			return matched[i].PricePerNight < matched[j].PricePerNight
		}
		return matched[i].Rating < matched[j].Rating
	})

	matched = truncateHotels(matched, s.matchCap)
	return truncateHotels(matched, s.displayCap)
}

func cacheKey(c domain.SearchCriteria) string {
	return strings.Join([]string{
		normalize(c.Origin),
		normalize(c.Destination),
		c.TravelDate,
		strconv.FormatFloat(c.Budget, 'f', -1, 64),
	}, "|")
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func truncateFlights(flights []domain.Flight, cap int) []domain.Flight {
	if len(flights) > cap {
		return flights[:cap]
	}
	return flights
}

func truncateHotels(hotels []domain.Hotel, cap int) []domain.Hotel {
	if len(hotels) > cap {
		return hotels[:cap]
	}
	return hotels
}

var _ SearchUseCase = (*Service)(nil)
