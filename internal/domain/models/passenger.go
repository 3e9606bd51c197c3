package models

// PassengerDetail is created when a seat is added and destroyed when its seat
// is removed. SeatID links it to the selection explicitly; there is no reliance
// on array-index alignment between seats and passengers.
type PassengerDetail struct {
	ID     string `json:"id"`
	SeatID string `json:"seat_id,omitempty"`
	Name   string `json:"name"`
	Age    string `json:"age,omitempty"` // raw text input, validated on change
	Valid  bool   `json:"valid"`
}
