package domain

import "strings"

// SearchCriteria is the user-supplied search context. TravelDate is a
// YYYY-MM-DD calendar day matched against the departure timestamp prefix.
type SearchCriteria struct {
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	TravelDate  string  `json:"travel_date"`
	Budget      float64 `json:"budget"`
	Nights      int     `json:"nights"`
}

func (c SearchCriteria) Validate() error {
	if strings.TrimSpace(c.Origin) == "" {
		return &ValidationError{Field: "origin", Reason: "origin is required"}
	}
	if strings.TrimSpace(c.Destination) == "" {
		return &ValidationError{Field: "destination", Reason: "destination is required"}
	}
	return nil
}

// SearchResults is one ranked, capped result set. It replaces the previous
// set entirely on every new search.
type SearchResults struct {
	Flights []Flight `json:"flights"`
	Hotels  []Hotel  `json:"hotels"`
}

func (r SearchResults) Empty() bool {
	return len(r.Flights) == 0 && len(r.Hotels) == 0
}
