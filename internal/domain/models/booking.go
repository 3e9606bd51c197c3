package models

import "time"

// Booking statuses as persisted. Cancellation is only legal from "confirmed".
const (
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// ConfirmedBooking is the immutable record returned after a successful
// submission. All draft fields are frozen into it.
type ConfirmedBooking struct {
	ID            int64             `json:"id"`
	Reference     string            `json:"reference"`
	UserID        int64             `json:"user_id"`
	OfferID       int64             `json:"offer_id"`
	Origin        string            `json:"origin"`
	Destination   string            `json:"destination"`
	TripDate      string            `json:"trip_date"`
	DepartureTime string            `json:"departure_time"`
	Seats         []string          `json:"seats"`
	Passengers    []PassengerDetail `json:"passengers,omitempty"`
	UnitPrice     int64             `json:"unit_price"`
	FixedFee      int64             `json:"fixed_fee"`
	TotalPrice    int64             `json:"total_price"`
	PaymentMethod string            `json:"payment_method"`
	Status        string            `json:"status"`
	CreatedAt     time.Time         `json:"created_at"`
}
