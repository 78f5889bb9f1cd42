package domain

type Hotel struct {
	ID                string  `json:"hotel_id"`
	Name              string  `json:"name"`
	City              string  `json:"city"`
	Address           string  `json:"address"`
	Amenities         string  `json:"amenities"`
	PricePerNight     float64 `json:"price_per_night"`
	Rating            float64 `json:"rating"`
	Stars             int     `json:"stars"`
	AvailabilityRooms int     `json:"availability_rooms"`
}
