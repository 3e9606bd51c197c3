package repositories

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"busticket/internal/domain/models"
)

func TestQueryRoutesMapsRowsAndSeats(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	offerRows := sqlmock.NewRows([]string{
		"id", "operator", "plate", "origin", "destination", "trip_date",
		"departure_time", "arrival_time", "unit_price", "rating", "amenities", "total_seats",
	}).AddRow(1, "Horizon Express", "BA-1021", "Accra", "Kumasi", "2026-09-01",
		"08:30 AM", "02:15 PM", 120, 4.5, "WiFi, AC", 40)

	mock.ExpectQuery("FROM route_offers").
		WithArgs("Accra", "Kumasi", "2026-09-01").
		WillReturnRows(offerRows)
	mock.ExpectQuery("FROM booking_seats").
		WithArgs(int64(1), models.StatusCancelled).
		WillReturnRows(sqlmock.NewRows([]string{"seat_code"}).AddRow("A1").AddRow("B2"))

	repo := RouteRepo{DB: db}
	got, err := repo.QueryRoutes(context.Background(), models.SearchParams{
		Origin: "Accra", Destination: "Kumasi", TripDate: "2026-09-01",
	})
	if err != nil {
		t.Fatalf("QueryRoutes error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected one offer, got %d", len(got))
	}

	o := got[0]
	if len(o.Amenities) != 2 || o.Amenities[0] != "WiFi" {
		t.Fatalf("amenities not split, got %+v", o.Amenities)
	}
	if len(o.UnavailableSeats) != 2 || o.AvailableSeats != 38 {
		t.Fatalf("seat availability wrong: %+v avail=%d", o.UnavailableSeats, o.AvailableSeats)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestQueryRoutesEmptyResult(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM route_offers").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "operator", "plate", "origin", "destination", "trip_date",
			"departure_time", "arrival_time", "unit_price", "rating", "amenities", "total_seats",
		}))

	repo := RouteRepo{DB: db}
	got, err := repo.QueryRoutes(context.Background(), models.SearchParams{Origin: "X", Destination: "Y", TripDate: "2026-01-01"})
	if err != nil {
		t.Fatalf("QueryRoutes error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %+v", got)
	}
}
