package booking

import (
	"context"

	"busticket/internal/domain"
	"busticket/internal/domain/models"
)

// Store persists a validated draft. Implemented by the MySQL booking
// repository; tests substitute their own.
type Store interface {
	CreateBooking(ctx context.Context, draft *Draft, userID int64) (models.ConfirmedBooking, error)
}

// Coordinator runs the submit transition: Composing -> Submitting ->
// {Confirmed | Failed}. A failed submission puts the draft back in Composing
// with its seats, passengers, and offer untouched, so the user retries without
// re-entering anything. Retries are always user-initiated.
type Coordinator struct {
	Store     Store
	RequestID string
}

// Submit validates the draft, persists it, and returns the confirmed booking.
// Validation failures never reach the store.
func (c Coordinator) Submit(ctx context.Context, d *Draft, userID int64) (models.ConfirmedBooking, error) {
	if d == nil {
		return models.ConfirmedBooking{}, domain.ValidationError{Field: "draft", Msg: "no active draft"}
	}
	if d.State == StateSubmitting {
		return models.ConfirmedBooking{}, domain.ConflictError{Resource: "draft", Msg: "submission already in progress"}
	}
	if d.State == StateConfirmed {
		return models.ConfirmedBooking{}, domain.ConflictError{Resource: "draft", Msg: "draft already confirmed"}
	}

	if err := c.validate(d); err != nil {
		d.LastError = err.Error()
		return models.ConfirmedBooking{}, err
	}

	d.State = StateSubmitting
	confirmed, err := c.Store.CreateBooking(ctx, d, userID)
	if err != nil {
		// Back to Composing with the draft intact for a retry; the failure
		// itself is surfaced through LastError.
		d.State = StateComposing
		d.LastError = err.Error()
		return models.ConfirmedBooking{}, err
	}

	d.State = StateConfirmed
	d.LastError = ""
	return confirmed, nil
}

func (c Coordinator) validate(d *Draft) error {
	if len(d.Seats) == 0 {
		return domain.ValidationError{Field: "seats", Msg: "select at least one seat"}
	}
	if len(d.Seats) != len(d.Passengers) {
		return domain.ValidationError{Field: "passengers", Msg: "every passenger needs a seat"}
	}
	for i := range d.Passengers {
		if d.Passengers[i].SeatID == "" {
			return domain.ValidationError{Field: "passengers", Msg: "every passenger needs a seat"}
		}
		if !d.Passengers[i].Valid {
			return domain.ValidationError{Field: "passengers", Msg: "passenger details are incomplete"}
		}
	}
	return ValidatePayment(d.Payment)
}
