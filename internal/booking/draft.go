package booking

import (
	"strconv"
	"strings"

	"busticket/internal/config"
	"busticket/internal/domain"
	"busticket/internal/domain/models"
	"busticket/internal/utils"

	"github.com/google/uuid"
)

// State of a draft as it moves through submission.
type State string

// A failed submission is not a terminal state: the draft returns to Composing
// with LastError set, so composition state survives for a retry.
const (
	StateComposing  State = "composing"
	StateSubmitting State = "submitting"
	StateConfirmed  State = "confirmed"
)

// ErrSeatCapReached is returned by seat/passenger additions at the policy cap.
// Callers surface it as a notice; the draft is unchanged.
var ErrSeatCapReached = domain.ValidationError{Field: "seats", Msg: "seat limit reached for this booking"}

// Draft is the in-progress booking composed from a selected offer. Seats and
// passengers are kept in sync by the operations below: every selected seat is
// bound to exactly one passenger through PassengerDetail.SeatID, so
// len(Seats) <= len(Passengers) holds structurally and a passenger without a
// seat is the only slack allowed.
type Draft struct {
	Offer      models.RouteOffer        `json:"offer"`
	Params     models.SearchParams      `json:"params"`
	Seats      []string                 `json:"seats"`
	Passengers []models.PassengerDetail `json:"passengers"`
	Payment    models.PaymentSelection  `json:"payment"`
	TotalPrice int64                    `json:"total_price"`
	State      State                    `json:"state"`
	// LastError holds the most recent submit failure message, scoped to this
	// draft only.
	LastError string `json:"last_error,omitempty"`

	policy      config.Policy
	unavailable map[string]bool
}

// NewDraft starts composition for the selected offer. A draft always carries
// at least one passenger.
func NewDraft(offer models.RouteOffer, params models.SearchParams, policy config.Policy) *Draft {
	d := &Draft{
		Offer:       offer,
		Params:      params,
		Seats:       []string{},
		Passengers:  []models.PassengerDetail{newPassenger()},
		State:       StateComposing,
		policy:      policy,
		unavailable: map[string]bool{},
	}
	for _, s := range offer.UnavailableSeats {
		d.unavailable[utils.NormalizeSeat(s)] = true
	}
	d.recomputeTotal()
	return d
}

func newPassenger() models.PassengerDetail {
	return models.PassengerDetail{ID: uuid.NewString()}
}

// Policy exposes the constants this draft was built with.
func (d *Draft) Policy() config.Policy { return d.policy }

// ToggleSeat selects or deselects a seat. Deselecting cascades to the bound
// passenger; selecting binds the seat to the first seatless passenger or
// appends a fresh one, up to the seat cap.
func (d *Draft) ToggleSeat(seatID string) error {
	seat := utils.NormalizeSeat(seatID)
	if seat == "" {
		return domain.ValidationError{Field: "seat", Msg: "seat id is required"}
	}

	defer d.recomputeTotal()

	if d.hasSeat(seat) {
		d.removeSeat(seat)
		return nil
	}

	if d.unavailable[seat] {
		return domain.ValidationError{Field: "seat", Msg: "seat " + seat + " is not available"}
	}

	if i := d.firstSeatless(); i >= 0 {
		d.Seats = append(d.Seats, seat)
		d.Passengers[i].SeatID = seat
		return nil
	}

	if len(d.Seats) >= d.policy.SeatCap {
		return ErrSeatCapReached
	}

	p := newPassenger()
	p.SeatID = seat
	d.Seats = append(d.Seats, seat)
	d.Passengers = append(d.Passengers, p)
	return nil
}

func (d *Draft) hasSeat(seat string) bool {
	for _, s := range d.Seats {
		if s == seat {
			return true
		}
	}
	return false
}

func (d *Draft) firstSeatless() int {
	for i := range d.Passengers {
		if d.Passengers[i].SeatID == "" {
			return i
		}
	}
	return -1
}

func (d *Draft) removeSeat(seat string) {
	kept := d.Seats[:0]
	for _, s := range d.Seats {
		if s != seat {
			kept = append(kept, s)
		}
	}
	d.Seats = kept

	for i := range d.Passengers {
		if d.Passengers[i].SeatID != seat {
			continue
		}
		if len(d.Passengers) == 1 {
			// The last passenger survives with the seat unbound.
			d.Passengers[i].SeatID = ""
		} else {
			d.Passengers = append(d.Passengers[:i], d.Passengers[i+1:]...)
		}
		return
	}
}

// AddPassenger appends an empty passenger detail, capped by policy.
func (d *Draft) AddPassenger() (models.PassengerDetail, error) {
	if len(d.Passengers) >= d.policy.SeatCap {
		return models.PassengerDetail{}, ErrSeatCapReached
	}
	p := newPassenger()
	d.Passengers = append(d.Passengers, p)
	d.recomputeTotal()
	return p, nil
}

// RemovePassenger deletes the passenger and releases its seat. Removing the
// last remaining passenger is refused.
func (d *Draft) RemovePassenger(id string) error {
	if len(d.Passengers) == 1 {
		return domain.ValidationError{Field: "passengers", Msg: "at least one passenger is required"}
	}
	for i := range d.Passengers {
		if d.Passengers[i].ID != id {
			continue
		}
		if seat := d.Passengers[i].SeatID; seat != "" {
			kept := d.Seats[:0]
			for _, s := range d.Seats {
				if s != seat {
					kept = append(kept, s)
				}
			}
			d.Seats = kept
		}
		d.Passengers = append(d.Passengers[:i], d.Passengers[i+1:]...)
		if len(d.Seats) > len(d.Passengers) {
			d.Seats = d.Seats[:len(d.Passengers)]
		}
		d.recomputeTotal()
		return nil
	}
	return domain.NotFoundError{Resource: "passenger"}
}

// UpdatePassengerField mutates one field of a passenger and revalidates it.
func (d *Draft) UpdatePassengerField(id, field, value string) error {
	for i := range d.Passengers {
		if d.Passengers[i].ID != id {
			continue
		}
		switch strings.ToLower(strings.TrimSpace(field)) {
		case "name":
			d.Passengers[i].Name = utils.NormalizeSpace(value)
		case "age":
			d.Passengers[i].Age = strings.TrimSpace(value)
		default:
			return domain.ValidationError{Field: "field", Msg: "unknown passenger field " + field}
		}
		d.revalidate(i)
		return nil
	}
	return domain.NotFoundError{Resource: "passenger"}
}

func (d *Draft) revalidate(i int) {
	p := &d.Passengers[i]
	p.Valid = false

	if len(strings.TrimSpace(p.Name)) < d.policy.MinNameLen {
		return
	}
	if d.policy.RequireAge || strings.TrimSpace(p.Age) != "" {
		age, err := strconv.Atoi(strings.TrimSpace(p.Age))
		if err != nil || age <= 0 || age >= 120 {
			return
		}
	}
	p.Valid = true
}

// ChoosePayment stores the payment selection after local format validation.
func (d *Draft) ChoosePayment(sel models.PaymentSelection) error {
	if err := ValidatePayment(sel); err != nil {
		return err
	}
	d.Payment = sel
	return nil
}

func (d *Draft) recomputeTotal() {
	d.TotalPrice = Total(d.Offer.UnitPrice, len(d.Passengers), d.policy.FixedFee)
}
