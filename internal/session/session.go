package session

import (
	"errors"
	"sync"

	"github.com/Domenick1991/travelagent/internal/domain"
	"github.com/google/uuid"
)

var ErrNotFound = errors.New("session not found")

// Session holds the per-user state carried across interactions: the last
// search context, the current ranked result sets, the flight/hotel selection
// and the itinerary text generated for the current search.
type Session struct {
	mu sync.Mutex

	id               string
	lastSearch       domain.SearchCriteria
	results          domain.SearchResults
	selectedFlightID string
	selectedHotelID  string
	itinerary        string
}

func (s *Session) ID() string {
	return s.id
}

// ApplyResults installs a new search: the previous result set is replaced and
// the itinerary text cleared. Selections made against the prior result set
// are intentionally kept; a now-stale id resolves to not-found.
func (s *Session) ApplyResults(criteria domain.SearchCriteria, results domain.SearchResults) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSearch = criteria
	s.results = results
	s.itinerary = ""
}

func (s *Session) LastSearch() domain.SearchCriteria {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSearch
}

func (s *Session) Results() domain.SearchResults {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.results
}

// SelectFlight records the selection unconditionally, overwriting any prior
// one. The id is not checked against the current result set here.
func (s *Session) SelectFlight(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedFlightID = id
}

func (s *Session) SelectHotel(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedHotelID = id
}

func (s *Session) Selection() (flightID, hotelID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedFlightID, s.selectedHotelID
}

// ResolveFlight looks the selected id up in the current result set.
func (s *Session) ResolveFlight() (*domain.Flight, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selectedFlightID == "" {
		return nil, domain.ErrSelectionNotFound
	}
	for _, f := range s.results.Flights {
		if f.ID == s.selectedFlightID {
			flight := f
			return &flight, nil
		}
	}
	return nil, domain.ErrSelectionNotFound
}

func (s *Session) ResolveHotel() (*domain.Hotel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selectedHotelID == "" {
		return nil, domain.ErrSelectionNotFound
	}
	for _, h := range s.results.Hotels {
		if h.ID == s.selectedHotelID {
			hotel := h
			return &hotel, nil
		}
	}
	return nil, domain.ErrSelectionNotFound
}

func (s *Session) Itinerary() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.itinerary
}

func (s *Session) SetItinerary(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.itinerary = text
}

// Store keeps live sessions in memory for the process lifetime.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

func (st *Store) Create() *Session {
	s := &Session{id: uuid.NewString()}
	st.mu.Lock()
	st.sessions[s.id] = s
	st.mu.Unlock()
	return s
}

func (st *Store) Get(id string) (*Session, error) {
	st.mu.RLock()
	s, ok := st.sessions[id]
	st.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}
