package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"

	"busticket/internal/domain/models"
	"busticket/internal/utils"
)

// BookingLoader fetches a confirmed booking for document rendering. The MySQL
// booking repository satisfies it; tests plug in a stub.
type BookingLoader func(ctx context.Context, bookingID int64) (models.ConfirmedBooking, error)

// DocsService renders e-ticket and invoice PDFs for confirmed bookings.
type DocsService struct {
	Loader    BookingLoader
	RequestID string
}

func (s DocsService) GenerateETicket(ctx context.Context, bookingID int64) ([]byte, string, error) {
	b, err := s.Loader(ctx, bookingID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_eticket", fmt.Sprintf("booking_id=%d", bookingID))
	return buildETicketPDF(b)
}

func (s DocsService) GenerateInvoice(ctx context.Context, bookingID int64) ([]byte, string, error) {
	b, err := s.Loader(ctx, bookingID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_invoice", fmt.Sprintf("booking_id=%d", bookingID))
	return buildInvoicePDF(b)
}

func buildETicketPDF(b models.ConfirmedBooking) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("E-Ticket", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "E-TICKET")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Booking ref : %s", safe(b.Reference, "-")),
		fmt.Sprintf("Route       : %s -> %s", safe(b.Origin, "-"), safe(b.Destination, "-")),
		fmt.Sprintf("Date / Time : %s %s", safe(b.TripDate, "-"), safe(b.DepartureTime, "-")),
		fmt.Sprintf("Seats       : %s", safe(strings.Join(b.Seats, ", "), "-")),
		fmt.Sprintf("Status      : %s", safe(b.Status, "-")),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	if len(b.Passengers) > 0 {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 7, "Passengers")
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 11)
		for _, p := range b.Passengers {
			pdf.Cell(0, 6, fmt.Sprintf("%s - seat %s", safe(p.Name, "-"), safe(p.SeatID, "-")))
			pdf.Ln(6)
		}
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Please present this e-ticket at boarding.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("ETICKET_%s.pdf", safeFilenamePart(b.Reference))
	return buf.Bytes(), filename, nil
}

func buildInvoicePDF(b models.ConfirmedBooking) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Invoice", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "INVOICE")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "Invoice no : INV-"+safeFilenamePart(b.Reference))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Issued     : "+time.Now().Format("2006-01-02 15:04"))
	pdf.Ln(10)

	desc := fmt.Sprintf("Bus ticket %s -> %s (%s %s), %d seat(s)",
		safe(b.Origin, "-"), safe(b.Destination, "-"),
		safe(b.TripDate, "-"), safe(b.DepartureTime, "-"), len(b.Seats),
	)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Details:")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, "1) "+desc, "", "", false)
	pdf.Ln(2)
	pdf.Cell(0, 6, fmt.Sprintf("Price per seat : %s", utils.FormatAmount(b.UnitPrice)))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Booking fee    : %s", utils.FormatAmount(b.FixedFee)))
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Total: "+utils.FormatAmount(b.TotalPrice))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, fmt.Sprintf("Paid via %s.", safe(b.PaymentMethod, "-")), "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("INVOICE_%s.pdf", safeFilenamePart(b.Reference))
	return buf.Bytes(), filename, nil
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}
