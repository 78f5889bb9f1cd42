package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/Domenick1991/travelagent/internal/domain"
)

// Loader reads the flight and hotel CSV datasets fully into memory and caches
// them per path. Within the TTL window repeat calls return the cached slice
// without touching storage; records are read-only after load.
type Loader struct {
	ttl time.Duration

	mu      sync.RWMutex
	flights map[string]flightsEntry
	hotels  map[string]hotelsEntry
}

type flightsEntry struct {
	records []domain.Flight
	expiry  time.Time
}

type hotelsEntry struct {
	records []domain.Hotel
	expiry  time.Time
}

func NewLoader(ttl time.Duration) *Loader {
	return &Loader{
		ttl:     ttl,
		flights: make(map[string]flightsEntry),
		hotels:  make(map[string]hotelsEntry),
	}
}

func (l *Loader) Flights(path string) ([]domain.Flight, error) {
	l.mu.RLock()
	entry, ok := l.flights[path]
	l.mu.RUnlock()
	if ok && time.Now().Before(entry.expiry) {
		return entry.records, nil
	}

	rows, header, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	records := make([]domain.Flight, 0, len(rows))
	for _, row := range rows {
		get := fieldGetter(header, row)
		records = append(records, domain.Flight{
			ID:             get("flight_id"),
			Airline:        get("airline"),
			FlightNumber:   get("flight_number"),
			Origin:         get("origin"),
			Destination:    get("destination"),
			DepartDateTime: get("depart_datetime"),
			ArriveDateTime: get("arrive_datetime"),
			Duration:       get("duration"),
			PriceUSD:       parseFloat(get("price_usd")),
			Stops:          parseInt(get("num_stops")),
			Cabin:          get("cabin"),
			Refundable:     parseBool(get("refundable")),
			Wifi:           parseBool(get("wifi")),
			BaggageKg:      parseInt(get("bag_allowance_kg")),
		})
	}

	l.mu.Lock()
	l.flights[path] = flightsEntry{records: records, expiry: time.Now().Add(l.ttl)}
	l.mu.Unlock()
	return records, nil
}

func (l *Loader) Hotels(path string) ([]domain.Hotel, error) {
	l.mu.RLock()
	entry, ok := l.hotels[path]
	l.mu.RUnlock()
	if ok && time.Now().Before(entry.expiry) {
		return entry.records, nil
	}

	rows, header, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	records := make([]domain.Hotel, 0, len(rows))
	for _, row := range rows {
		get := fieldGetter(header, row)
		records = append(records, domain.Hotel{
			ID:                get("hotel_id"),
			Name:              get("name"),
			City:              get("city"),
			Address:           get("address"),
			Amenities:         get("amenities"),
			PricePerNight:     parseFloat(get("price_per_night")),
			Rating:            parseFloat(get("rating")),
			Stars:             parseInt(get("stars")),
			AvailabilityRooms: parseInt(get("availability_rooms")),
		})
	}

	l.mu.Lock()
	l.hotels[path] = hotelsEntry{records: records, expiry: time.Now().Add(l.ttl)}
	l.mu.Unlock()
	return records, nil
}

func readCSV(path string) ([][]string, map[string]int, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, nil, fmt.Errorf("%w: %s", domain.ErrDataUnavailable, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s", domain.ErrDataUnavailable, path)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	all, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(all) == 0 {
		return nil, map[string]int{}, nil
	}

	header := make(map[string]int, len(all[0]))
	for i, name := range all[0] {
		header[strings.TrimSpace(strings.ToLower(name))] = i
	}
	return all[1:], header, nil
}

func fieldGetter(header map[string]int, row []string) func(string) string {
	return func(name string) string {
		idx, ok := header[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}
}

func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func parseInt(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return int(parseFloat(s))
	}
	return v
}

func parseBool(s string) bool {
	switch strings.ToLower(s) {
	case "true", "1", "yes":
		return true
	}
	return false
}
