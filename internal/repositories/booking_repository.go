package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"

	"busticket/internal/booking"
	intconfig "busticket/internal/config"
	"busticket/internal/domain"
	"busticket/internal/domain/models"
)

type BookingRepo struct {
	DB *sql.DB
}

func (r BookingRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// CreateBooking persists a validated draft in one transaction: the booking
// row, one seat row per selected seat, and one passenger row per passenger.
// A duplicate (offer_id, seat_code) pair means someone else booked the seat
// first and surfaces as a ConflictError.
func (r BookingRepo) CreateBooking(ctx context.Context, d *booking.Draft, userID int64) (models.ConfirmedBooking, error) {
	db := r.db()
	if db == nil {
		return models.ConfirmedBooking{}, domain.InternalError{Msg: "database not available"}
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return models.ConfirmedBooking{}, domain.InternalError{Err: err}
	}
	defer func() { _ = tx.Rollback() }()

	ref := uuid.NewString()
	now := time.Now()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO bookings
			(reference, user_id, offer_id, origin, destination, trip_date, departure_time,
			 unit_price, fixed_fee, total_price, payment_method, status, created_at)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		ref, userID, d.Offer.ID, d.Params.Origin, d.Params.Destination, d.Offer.TripDate,
		d.Offer.DepartureTime, d.Offer.UnitPrice, d.Policy().FixedFee, d.TotalPrice,
		paymentLabel(d.Payment), models.StatusConfirmed, now,
	)
	if err != nil {
		return models.ConfirmedBooking{}, domain.InternalError{Err: err}
	}
	bookingID, err := res.LastInsertId()
	if err != nil {
		return models.ConfirmedBooking{}, domain.InternalError{Err: err}
	}

	for _, seat := range d.Seats {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO booking_seats (booking_id, offer_id, seat_code) VALUES (?,?,?)`,
			bookingID, d.Offer.ID, strings.ToUpper(strings.TrimSpace(seat)),
		); err != nil {
			if isDuplicate(err) {
				return models.ConfirmedBooking{}, domain.ConflictError{
					Resource: "seat",
					Msg:      "seat " + seat + " was just booked by someone else",
					Err:      err,
				}
			}
			return models.ConfirmedBooking{}, domain.InternalError{Err: err}
		}
	}

	for _, p := range d.Passengers {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO booking_passengers (booking_id, seat_code, passenger_name, passenger_age) VALUES (?,?,?,?)`,
			bookingID, p.SeatID, strings.TrimSpace(p.Name), strings.TrimSpace(p.Age),
		); err != nil {
			return models.ConfirmedBooking{}, domain.InternalError{Err: err}
		}
	}

	if err := tx.Commit(); err != nil {
		return models.ConfirmedBooking{}, domain.InternalError{Err: err}
	}

	confirmed := models.ConfirmedBooking{
		ID:            bookingID,
		Reference:     ref,
		UserID:        userID,
		OfferID:       d.Offer.ID,
		Origin:        d.Params.Origin,
		Destination:   d.Params.Destination,
		TripDate:      d.Offer.TripDate,
		DepartureTime: d.Offer.DepartureTime,
		Seats:         append([]string{}, d.Seats...),
		Passengers:    append([]models.PassengerDetail{}, d.Passengers...),
		UnitPrice:     d.Offer.UnitPrice,
		FixedFee:      d.Policy().FixedFee,
		TotalPrice:    d.TotalPrice,
		PaymentMethod: paymentLabel(d.Payment),
		Status:        models.StatusConfirmed,
		CreatedAt:     now,
	}
	return confirmed, nil
}

// UpdateStatus transitions a booking out of "confirmed". The status guard in
// the WHERE clause makes cancelling a completed or already-cancelled booking
// a conflict rather than a silent overwrite.
func (r BookingRepo) UpdateStatus(ctx context.Context, bookingID int64, status string) error {
	db := r.db()
	if db == nil {
		return domain.InternalError{Msg: "database not available"}
	}

	res, err := db.ExecContext(ctx,
		`UPDATE bookings SET status=? WHERE id=? AND status=?`,
		status, bookingID, models.StatusConfirmed,
	)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	n, err := res.RowsAffected()
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if n == 0 {
		return domain.ConflictError{Resource: "booking", Msg: "not in a cancellable state"}
	}
	return nil
}

// GetByID loads a single booking with its seats.
func (r BookingRepo) GetByID(ctx context.Context, bookingID int64) (models.ConfirmedBooking, error) {
	db := r.db()
	if db == nil {
		return models.ConfirmedBooking{}, domain.InternalError{Msg: "database not available"}
	}

	var b models.ConfirmedBooking
	err := db.QueryRowContext(ctx, `
		SELECT id, reference, user_id, offer_id, origin, destination, trip_date,
		       departure_time, unit_price, fixed_fee, total_price, payment_method,
		       status, created_at
		FROM bookings WHERE id=? LIMIT 1`, bookingID,
	).Scan(
		&b.ID, &b.Reference, &b.UserID, &b.OfferID, &b.Origin, &b.Destination,
		&b.TripDate, &b.DepartureTime, &b.UnitPrice, &b.FixedFee, &b.TotalPrice,
		&b.PaymentMethod, &b.Status, &b.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ConfirmedBooking{}, domain.NotFoundError{Resource: "booking"}
	}
	if err != nil {
		return models.ConfirmedBooking{}, domain.InternalError{Err: err}
	}

	seats, err := r.seatsFor(ctx, db, b.ID)
	if err != nil {
		return models.ConfirmedBooking{}, err
	}
	b.Seats = seats
	return b, nil
}

// ListByUser returns a user's bookings, newest first.
func (r BookingRepo) ListByUser(ctx context.Context, userID int64) ([]models.ConfirmedBooking, error) {
	db := r.db()
	if db == nil {
		return nil, domain.InternalError{Msg: "database not available"}
	}

	rows, err := db.QueryContext(ctx, `
		SELECT id, reference, user_id, offer_id, origin, destination, trip_date,
		       departure_time, unit_price, fixed_fee, total_price, payment_method,
		       status, created_at
		FROM bookings WHERE user_id=? ORDER BY created_at DESC, id DESC`, userID)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	out := []models.ConfirmedBooking{}
	for rows.Next() {
		var b models.ConfirmedBooking
		if err := rows.Scan(
			&b.ID, &b.Reference, &b.UserID, &b.OfferID, &b.Origin, &b.Destination,
			&b.TripDate, &b.DepartureTime, &b.UnitPrice, &b.FixedFee, &b.TotalPrice,
			&b.PaymentMethod, &b.Status, &b.CreatedAt,
		); err != nil {
			return nil, domain.InternalError{Err: err}
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.InternalError{Err: err}
	}

	for i := range out {
		seats, err := r.seatsFor(ctx, db, out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].Seats = seats
	}
	return out, nil
}

func (r BookingRepo) seatsFor(ctx context.Context, db *sql.DB, bookingID int64) ([]string, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT seat_code FROM booking_seats WHERE booking_id=? ORDER BY id ASC`, bookingID)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, domain.InternalError{Err: err}
		}
		out = append(out, code)
	}
	return out, rows.Err()
}

func paymentLabel(sel models.PaymentSelection) string {
	if strings.TrimSpace(sel.MethodRef) != "" {
		return sel.MethodRef
	}
	if sel.NewCard != nil {
		digits := strings.NewReplacer(" ", "", "-", "").Replace(sel.NewCard.Number)
		if len(digits) >= 4 {
			return "card ****" + digits[len(digits)-4:]
		}
	}
	return ""
}

func isDuplicate(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == 1062
}
