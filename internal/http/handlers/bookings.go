package handlers

import (
	"context"
	"net/http"

	"busticket/internal/services"

	"github.com/gin-gonic/gin"
)

// BookingHandler covers booking history, cancellation and travel documents.
type BookingHandler struct {
	Service services.BookingService
	Docs    services.DocsService
}

// GET /api/bookings
func (h BookingHandler) List(c *gin.Context) {
	rc, ok := requireUser(c)
	if !ok {
		return
	}
	bookings, err := h.Service.History(c.Request.Context(), rc.UserID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings, "count": len(bookings)})
}

// GET /api/bookings/:id
func (h BookingHandler) Get(c *gin.Context) {
	rc, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	b, err := h.Service.Detail(c.Request.Context(), id, rc.UserID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b})
}

// POST /api/bookings/:id/cancel
func (h BookingHandler) Cancel(c *gin.Context) {
	rc, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.Service.Cancel(c.Request.Context(), id, rc.UserID); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "booking cancelled"})
}

// GET /api/bookings/:id/e-ticket
func (h BookingHandler) ETicket(c *gin.Context) {
	h.document(c, h.Docs.GenerateETicket)
}

// GET /api/bookings/:id/invoice
func (h BookingHandler) Invoice(c *gin.Context) {
	h.document(c, h.Docs.GenerateInvoice)
}

func (h BookingHandler) document(c *gin.Context, generate func(ctx context.Context, bookingID int64) ([]byte, string, error)) {
	rc, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	// Ownership gate before touching the generator.
	if _, err := h.Service.Detail(c.Request.Context(), id, rc.UserID); err != nil {
		RespondDomainError(c, err)
		return
	}

	pdf, filename, err := generate(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
