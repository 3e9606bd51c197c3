package services

import (
	"context"
	"testing"

	"busticket/internal/domain/models"
)

func TestDocsServiceGenerate(t *testing.T) {
	loader := func(ctx context.Context, id int64) (models.ConfirmedBooking, error) {
		return models.ConfirmedBooking{
			ID:            id,
			Reference:     "7c1f6c1a",
			Origin:        "Accra",
			Destination:   "Kumasi",
			TripDate:      "2026-09-01",
			DepartureTime: "08:30 AM",
			Seats:         []string{"A1", "A2"},
			Passengers: []models.PassengerDetail{
				{Name: "Ama Serwaa", SeatID: "A1"},
				{Name: "Kofi Boateng", SeatID: "A2"},
			},
			UnitPrice:     120,
			FixedFee:      10,
			TotalPrice:    250,
			PaymentMethod: "card ****4242",
			Status:        models.StatusConfirmed,
		}, nil
	}

	svc := DocsService{Loader: loader}

	pdf, filename, err := svc.GenerateETicket(context.Background(), 1)
	if err != nil {
		t.Fatalf("GenerateETicket returned error: %v", err)
	}
	if len(pdf) == 0 || filename == "" {
		t.Fatalf("GenerateETicket returned empty data")
	}

	invoice, invName, err := svc.GenerateInvoice(context.Background(), 1)
	if err != nil {
		t.Fatalf("GenerateInvoice returned error: %v", err)
	}
	if len(invoice) == 0 || invName == "" {
		t.Fatalf("GenerateInvoice returned empty data")
	}
}
