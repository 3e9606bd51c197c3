package services

import (
	"context"
	"time"

	"busticket/internal/config"
	"busticket/internal/domain"
	"busticket/internal/domain/models"
	"busticket/internal/offers"
	"busticket/internal/utils"
)

// BookingReader is the slice of the booking repository this service needs.
type BookingReader interface {
	GetByID(ctx context.Context, bookingID int64) (models.ConfirmedBooking, error)
	ListByUser(ctx context.Context, userID int64) ([]models.ConfirmedBooking, error)
	UpdateStatus(ctx context.Context, bookingID int64, status string) error
}

// BookingService covers booking history and cancellation.
type BookingService struct {
	Repo      BookingReader
	Policy    config.Policy
	RequestID string
	// Now is overridable in tests.
	Now func() time.Time
}

func (s BookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// History lists a user's bookings, newest first.
func (s BookingService) History(ctx context.Context, userID int64) ([]models.ConfirmedBooking, error) {
	if userID <= 0 {
		return nil, domain.ValidationError{Field: "user_id", Msg: "invalid user"}
	}
	return s.Repo.ListByUser(ctx, userID)
}

// Detail loads one booking scoped to its owner. A booking that belongs to
// someone else reads as not found.
func (s BookingService) Detail(ctx context.Context, bookingID, userID int64) (models.ConfirmedBooking, error) {
	b, err := s.Repo.GetByID(ctx, bookingID)
	if err != nil {
		return models.ConfirmedBooking{}, err
	}
	if b.UserID != userID {
		return models.ConfirmedBooking{}, domain.NotFoundError{Resource: "booking"}
	}
	return b, nil
}

// Cancel transitions a booking to cancelled. Only "confirmed" bookings
// qualify, and only while departure is at least Policy.CancelWindow away.
func (s BookingService) Cancel(ctx context.Context, bookingID, userID int64) error {
	b, err := s.Repo.GetByID(ctx, bookingID)
	if err != nil {
		return err
	}
	if b.UserID != userID {
		return domain.NotFoundError{Resource: "booking"}
	}
	if b.Status != models.StatusConfirmed {
		return domain.ConflictError{Resource: "booking", Msg: "only confirmed bookings can be cancelled"}
	}

	if dep, ok := departureAt(b); ok {
		if s.now().Add(s.Policy.CancelWindow).After(dep) {
			return domain.ValidationError{
				Field: "booking",
				Msg:   "too close to departure to cancel",
			}
		}
	}

	if err := s.Repo.UpdateStatus(ctx, bookingID, models.StatusCancelled); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "booking", "cancel", "booking cancelled ref="+b.Reference)
	return nil
}

// departureAt combines trip date and the 12-hour departure string. A booking
// with unparseable scheduling data skips the window check rather than
// blocking cancellation.
func departureAt(b models.ConfirmedBooking) (time.Time, bool) {
	day, err := utils.ParseDate(b.TripDate)
	if err != nil {
		return time.Time{}, false
	}
	minutes, err := offers.ParseClock(b.DepartureTime)
	if err != nil {
		return time.Time{}, false
	}
	return day.Add(time.Duration(minutes) * time.Minute), true
}
