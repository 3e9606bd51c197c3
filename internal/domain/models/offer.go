package models

// RouteOffer is a bookable scheduled trip returned by a search. Offers are
// immutable within a session; a new search replaces the whole set.
type RouteOffer struct {
	ID               int64    `json:"id"`
	Operator         string   `json:"operator"`
	Plate            string   `json:"plate"`
	Origin           string   `json:"origin"`
	Destination      string   `json:"destination"`
	TripDate         string   `json:"trip_date"`
	DepartureTime    string   `json:"departure_time"` // "HH:MM AM/PM"
	ArrivalTime      string   `json:"arrival_time"`
	UnitPrice        int64    `json:"unit_price"`
	Rating           float64  `json:"rating"`
	Amenities        []string `json:"amenities,omitempty"`
	AvailableSeats   int      `json:"available_seats"`
	TotalSeats       int      `json:"total_seats"`
	UnavailableSeats []string `json:"unavailable_seats,omitempty"`
}

// SearchParams holds the four user-entered search fields. Presence is the only
// validation applied before querying.
type SearchParams struct {
	Origin         string `json:"origin"`
	Destination    string `json:"destination"`
	TripDate       string `json:"trip_date"`
	PassengerCount int    `json:"passenger_count"`
}

// OfferFilters narrows an in-memory offer list. Nil pointer fields mean the
// criterion is not applied.
type OfferFilters struct {
	MinPrice  *int64   `json:"min_price,omitempty"`
	MaxPrice  *int64   `json:"max_price,omitempty"`
	MinRating *float64 `json:"min_rating,omitempty"`
	Amenities []string `json:"amenities,omitempty"`
	Query     string   `json:"query,omitempty"`
}
