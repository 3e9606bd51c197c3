package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	intconfig "busticket/internal/config"
	"busticket/internal/domain"
	"busticket/internal/domain/models"
	"busticket/internal/utils"
)

type RouteRepo struct {
	DB *sql.DB
}

func (r RouteRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// QueryRoutes returns the offers for an origin/destination/date triple along
// with each offer's currently unavailable seats.
func (r RouteRepo) QueryRoutes(ctx context.Context, params models.SearchParams) ([]models.RouteOffer, error) {
	db := r.db()
	if db == nil {
		return nil, domain.InternalError{Msg: "database not available"}
	}

	rows, err := db.QueryContext(ctx, `
		SELECT id, operator, COALESCE(plate,''), origin, destination, trip_date,
		       departure_time, COALESCE(arrival_time,''), unit_price,
		       COALESCE(rating,0), COALESCE(amenities,''), total_seats
		FROM route_offers
		WHERE origin=? AND destination=? AND trip_date=?
		ORDER BY id ASC`,
		strings.TrimSpace(params.Origin),
		strings.TrimSpace(params.Destination),
		strings.TrimSpace(params.TripDate),
	)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	out := []models.RouteOffer{}
	for rows.Next() {
		var o models.RouteOffer
		var amenities string
		if err := rows.Scan(
			&o.ID, &o.Operator, &o.Plate, &o.Origin, &o.Destination, &o.TripDate,
			&o.DepartureTime, &o.ArrivalTime, &o.UnitPrice, &o.Rating, &amenities, &o.TotalSeats,
		); err != nil {
			return nil, domain.InternalError{Err: err}
		}
		o.Amenities = utils.SplitList(amenities)
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.InternalError{Err: err}
	}

	for i := range out {
		taken, err := r.takenSeats(ctx, db, out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].UnavailableSeats = taken
		out[i].AvailableSeats = out[i].TotalSeats - len(taken)
	}
	return out, nil
}

// takenSeats lists seat codes held by non-cancelled bookings on an offer.
func (r RouteRepo) takenSeats(ctx context.Context, db *sql.DB, offerID int64) ([]string, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT bs.seat_code
		FROM booking_seats bs
		JOIN bookings b ON b.id = bs.booking_id
		WHERE bs.offer_id=? AND b.status <> ?
		ORDER BY bs.seat_code ASC`, offerID, models.StatusCancelled)
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
		if code = strings.TrimSpace(code); code != "" {
			out = append(out, code)
		}
	}
	return out, rows.Err()
}

// GetOffer loads one offer by id, including unavailable seats.
func (r RouteRepo) GetOffer(ctx context.Context, id int64) (models.RouteOffer, error) {
	db := r.db()
	if db == nil {
		return models.RouteOffer{}, domain.InternalError{Msg: "database not available"}
	}

	var o models.RouteOffer
	var amenities string
	err := db.QueryRowContext(ctx, `
		SELECT id, operator, COALESCE(plate,''), origin, destination, trip_date,
		       departure_time, COALESCE(arrival_time,''), unit_price,
		       COALESCE(rating,0), COALESCE(amenities,''), total_seats
		FROM route_offers WHERE id=? LIMIT 1`, id,
	).Scan(
		&o.ID, &o.Operator, &o.Plate, &o.Origin, &o.Destination, &o.TripDate,
		&o.DepartureTime, &o.ArrivalTime, &o.UnitPrice, &o.Rating, &amenities, &o.TotalSeats,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.RouteOffer{}, domain.NotFoundError{Resource: "offer"}
	}
	if err != nil {
		return models.RouteOffer{}, domain.InternalError{Err: err}
	}

	o.Amenities = utils.SplitList(amenities)
	taken, err := r.takenSeats(ctx, db, o.ID)
	if err != nil {
		return models.RouteOffer{}, err
	}
	o.UnavailableSeats = taken
	o.AvailableSeats = o.TotalSeats - len(taken)
	return o, nil
}
