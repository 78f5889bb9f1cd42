package domain

// Flight is a single row of the flights dataset. Records are immutable once
// loaded; IDs are unique within one dataset snapshot.
type Flight struct {
	ID             string  `json:"flight_id"`
	Airline        string  `json:"airline"`
	FlightNumber   string  `json:"flight_number"`
	Origin         string  `json:"origin"`
	Destination    string  `json:"destination"`
	DepartDateTime string  `json:"depart_datetime"`
	ArriveDateTime string  `json:"arrive_datetime"`
	Duration       string  `json:"duration"`
	PriceUSD       float64 `json:"price_usd"`
	Stops          int     `json:"num_stops"`
	Cabin          string  `json:"cabin"`
	Refundable     bool    `json:"refundable"`
	Wifi           bool    `json:"wifi"`
	BaggageKg      int     `json:"bag_allowance_kg"`
}
