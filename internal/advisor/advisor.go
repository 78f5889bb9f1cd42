package advisor

import (
	"context"

	"github.com/Domenick1991/travelagent/internal/domain"
)

// Placeholder texts shown instead of generated itineraries. Stable strings,
// surfaced directly to users.
const (
	PlaceholderNotGenerated = "No itinerary yet. Search and then generate."
	PlaceholderFailed       = "Itinerary could not be generated (agent error)."
)

type Request struct {
	Destination string
	Nights      int
	Flights     []domain.Flight
	Hotels      []domain.Hotel
}

// Advisor produces free-text day-by-day itineraries. The output is opaque to
// the rest of the system; any failure degrades to placeholder text upstream.
type Advisor interface {
	Itinerary(ctx context.Context, req Request) (string, error)
}

// Stub stands in when no API credential is configured.
type Stub struct{}

func NewStub() *Stub {
	return &Stub{}
}

func (s *Stub) Itinerary(ctx context.Context, req Request) (string, error) {
	return PlaceholderNotGenerated, nil
}

var _ Advisor = (*Stub)(nil)
