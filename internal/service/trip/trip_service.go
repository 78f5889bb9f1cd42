package trip

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Domenick1991/travelagent/internal/advisor"
	"github.com/Domenick1991/travelagent/internal/domain"
	"github.com/Domenick1991/travelagent/internal/kafka"
	"github.com/Domenick1991/travelagent/internal/repository"
	"github.com/Domenick1991/travelagent/internal/search"
	"github.com/Domenick1991/travelagent/internal/session"
)

type TripUseCase interface {
	CreateSession(ctx context.Context) (string, error)
	Search(ctx context.Context, sessionID string, criteria domain.SearchCriteria) (domain.SearchResults, error)
	SelectFlight(ctx context.Context, sessionID, flightID string) (*domain.Flight, error)
	SelectHotel(ctx context.Context, sessionID, hotelID string) (*domain.Hotel, error)
	CurrentSelection(ctx context.Context, sessionID string) (Selection, error)
	Itinerary(ctx context.Context, sessionID string) (string, error)
	ConfirmBooking(ctx context.Context, sessionID string, input ConfirmBookingInput) (*domain.Booking, error)
	RecentBookings(ctx context.Context, limit int) ([]domain.BookingSummary, error)
}

// DatasetSource is the cached dataset loader seen by the service.
type DatasetSource interface {
	Flights(path string) ([]domain.Flight, error)
	Hotels(path string) ([]domain.Hotel, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type ConfirmBookingInput struct {
	Email string `json:"email"`
}

// Selection is the current selection state with the records resolved against
// the current result set. A nil record means the id does not resolve.
type Selection struct {
	FlightID string
	HotelID  string
	Flight   *domain.Flight
	Hotel    *domain.Hotel
}

type TripService struct {
	bookings           repository.BookingRepository
	searcher           search.SearchUseCase
	sessions           *session.Store
	datasets           DatasetSource
	flightsPath        string
	hotelsPath         string
	advisor            advisor.Advisor
	producer           Producer
	notificationsTopic string
}

type TripServiceOption func(*TripService)

func WithNotificationsTopic(topic string) TripServiceOption {
	return func(s *TripService) {
		s.notificationsTopic = topic
	}
}

func WithProducer(producer Producer) TripServiceOption {
	return func(s *TripService) {
		s.producer = producer
	}
}

func NewTripService(
	bookings repository.BookingRepository,
	searcher search.SearchUseCase,
	sessions *session.Store,
	datasets DatasetSource,
	flightsPath, hotelsPath string,
	adv advisor.Advisor,
	opts ...TripServiceOption,
) *TripService {
	service := &TripService{
		bookings:    bookings,
		searcher:    searcher,
		sessions:    sessions,
		datasets:    datasets,
		flightsPath: flightsPath,
		hotelsPath:  hotelsPath,
		advisor:     adv,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *TripService) CreateSession(ctx context.Context) (string, error) {
	return s.sessions.Create().ID(), nil
}

// Search runs the filter over the cached datasets and installs the ranked
// result sets into the session, replacing the previous ones and clearing any
// generated itinerary. Selections from the prior search are kept.
func (s *TripService) Search(ctx context.Context, sessionID string, criteria domain.SearchCriteria) (domain.SearchResults, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return domain.SearchResults{}, err
	}

	flights, err := s.datasets.Flights(s.flightsPath)
	if err != nil {
		return domain.SearchResults{}, err
	}
	hotels, err := s.datasets.Hotels(s.hotelsPath)
	if err != nil {
		return domain.SearchResults{}, err
	}

	results, err := s.searcher.Search(ctx, flights, hotels, criteria)
	if err != nil {
		return domain.SearchResults{}, err
	}

	sess.ApplyResults(criteria, results)
	return results, nil
}

// SelectFlight records the selection unconditionally and resolves it against
// the current result set. ErrSelectionNotFound is display-only: the selection
// sticks even when the id is not in the cached list.
func (s *TripService) SelectFlight(ctx context.Context, sessionID, flightID string) (*domain.Flight, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}
	sess.SelectFlight(flightID)
	return sess.ResolveFlight()
}

func (s *TripService) SelectHotel(ctx context.Context, sessionID, hotelID string) (*domain.Hotel, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}
	sess.SelectHotel(hotelID)
	return sess.ResolveHotel()
}

func (s *TripService) CurrentSelection(ctx context.Context, sessionID string) (Selection, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return Selection{}, err
	}

	sel := Selection{}
	sel.FlightID, sel.HotelID = sess.Selection()
	if flight, err := sess.ResolveFlight(); err == nil {
		sel.Flight = flight
	}
	if hotel, err := sess.ResolveHotel(); err == nil {
		sel.Hotel = hotel
	}
	return sel, nil
}

// Itinerary returns the itinerary for the current search, generating it once
// per search. Generation failures degrade to placeholder text, no retry.
func (s *TripService) Itinerary(ctx context.Context, sessionID string) (string, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return "", err
	}

	if text := sess.Itinerary(); text != "" {
		return text, nil
	}

	results := sess.Results()
	if s.advisor == nil || results.Empty() {
		sess.SetItinerary(advisor.PlaceholderNotGenerated)
		return advisor.PlaceholderNotGenerated, nil
	}

	criteria := sess.LastSearch()
	text, err := s.advisor.Itinerary(ctx, advisor.Request{
		Destination: criteria.Destination,
		Nights:      criteria.Nights,
		Flights:     results.Flights,
		Hotels:      results.Hotels,
	})
	if err != nil {
		log.Printf("WARNING: itinerary generation failed for session %s: %v", sessionID, err)
		sess.SetItinerary(advisor.PlaceholderFailed)
		return advisor.PlaceholderFailed, nil
	}

	sess.SetItinerary(text)
	return text, nil
}

// ConfirmBooking persists a booking built from the session's last search and
// resolved selections. Both selections must resolve against the current
// result set. Save errors propagate: persistence is correctness-critical.
// Every confirm inserts a new row, there is no idempotency key.
func (s *TripService) ConfirmBooking(ctx context.Context, sessionID string, input ConfirmBookingInput) (*domain.Booking, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}

	flight, err := sess.ResolveFlight()
	if err != nil {
		return nil, &domain.ValidationError{Field: "selection", Reason: "please select both a flight and a hotel before confirming"}
	}
	hotel, err := sess.ResolveHotel()
	if err != nil {
		return nil, &domain.ValidationError{Field: "selection", Reason: "please select both a flight and a hotel before confirming"}
	}

	criteria := sess.LastSearch()
	booking := &domain.Booking{
		Origin:      criteria.Origin,
		Destination: criteria.Destination,
		TravelDate:  criteria.TravelDate,
		Flight:      *flight,
		Hotel:       *hotel,
		Itinerary:   sess.Itinerary(),
	}

	if err := s.bookings.Save(ctx, booking); err != nil {
		return nil, fmt.Errorf("save booking: %w", err)
	}

	if err := s.publish(ctx, "booking_confirmed", booking, input.Email); err != nil {
		log.Printf("WARNING: failed to publish booking_confirmed event for %s: %v", booking.ConfirmationCode(), err)
	}
	return booking, nil
}

func (s *TripService) RecentBookings(ctx context.Context, limit int) ([]domain.BookingSummary, error) {
	return s.bookings.ListRecent(ctx, limit)
}

func (s *TripService) publish(ctx context.Context, eventType string, booking *domain.Booking, recipient string) error {
	if s.producer == nil || s.notificationsTopic == "" {
		return nil
	}
	event := kafka.BookingEvent{
		Type:             eventType,
		ConfirmationCode: booking.ConfirmationCode(),
		Origin:           booking.Origin,
		Destination:      booking.Destination,
		TravelDate:       booking.TravelDate,
		Email:            recipient,
		CreatedAt:        time.Now(),
	}
	return s.producer.Publish(ctx, s.notificationsTopic, event.ConfirmationCode, event)
}

var _ TripUseCase = (*TripService)(nil)
