package handlers

import (
	"net/http"

	"busticket/internal/booking"
	"busticket/internal/domain/models"
	"busticket/internal/repositories"
	"busticket/internal/services"

	"github.com/gin-gonic/gin"
)

// DraftHandler exposes the booking composition workflow. Every route requires
// an authenticated user; drafts live server-side in the session service.
type DraftHandler struct {
	Sessions *services.SessionService
	Routes   repositories.RouteRepo
}

type createDraftRequest struct {
	OfferID int64               `json:"offer_id"`
	Params  models.SearchParams `json:"params"`
}

func draftPayload(id string, d *booking.Draft) gin.H {
	return gin.H{"session_id": id, "draft": d}
}

// POST /api/drafts
func (h DraftHandler) Create(c *gin.Context) {
	rc, ok := requireUser(c)
	if !ok {
		return
	}
	var req createDraftRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	offer, err := h.Routes.GetOffer(c.Request.Context(), req.OfferID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	id, draft := h.Sessions.Create(rc.UserID, offer, req.Params)
	c.JSON(http.StatusCreated, draftPayload(id, draft))
}

// GET /api/drafts/:id
func (h DraftHandler) Get(c *gin.Context) {
	rc, ok := requireUser(c)
	if !ok {
		return
	}
	id := c.Param("id")
	draft, err := h.Sessions.With(id, rc.UserID, func(*booking.Draft) error { return nil })
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, draftPayload(id, draft))
}

type toggleSeatRequest struct {
	Seat string `json:"seat"`
}

// POST /api/drafts/:id/toggle-seat
func (h DraftHandler) ToggleSeat(c *gin.Context) {
	rc, ok := requireUser(c)
	if !ok {
		return
	}
	var req toggleSeatRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	id := c.Param("id")
	draft, err := h.Sessions.With(id, rc.UserID, func(d *booking.Draft) error {
		return d.ToggleSeat(req.Seat)
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, draftPayload(id, draft))
}

// POST /api/drafts/:id/passengers
func (h DraftHandler) AddPassenger(c *gin.Context) {
	rc, ok := requireUser(c)
	if !ok {
		return
	}
	id := c.Param("id")
	draft, err := h.Sessions.With(id, rc.UserID, func(d *booking.Draft) error {
		_, err := d.AddPassenger()
		return err
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, draftPayload(id, draft))
}

// DELETE /api/drafts/:id/passengers/:pid
func (h DraftHandler) RemovePassenger(c *gin.Context) {
	rc, ok := requireUser(c)
	if !ok {
		return
	}
	id := c.Param("id")
	draft, err := h.Sessions.With(id, rc.UserID, func(d *booking.Draft) error {
		return d.RemovePassenger(c.Param("pid"))
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, draftPayload(id, draft))
}

type updatePassengerRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// PATCH /api/drafts/:id/passengers/:pid
func (h DraftHandler) UpdatePassenger(c *gin.Context) {
	rc, ok := requireUser(c)
	if !ok {
		return
	}
	var req updatePassengerRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	id := c.Param("id")
	draft, err := h.Sessions.With(id, rc.UserID, func(d *booking.Draft) error {
		return d.UpdatePassengerField(c.Param("pid"), req.Field, req.Value)
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, draftPayload(id, draft))
}

// POST /api/drafts/:id/payment
func (h DraftHandler) ChoosePayment(c *gin.Context) {
	rc, ok := requireUser(c)
	if !ok {
		return
	}
	var sel models.PaymentSelection
	if !BindJSONOrError(c, &sel) {
		return
	}

	id := c.Param("id")
	draft, err := h.Sessions.With(id, rc.UserID, func(d *booking.Draft) error {
		return d.ChoosePayment(sel)
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, draftPayload(id, draft))
}

// POST /api/drafts/:id/submit
func (h DraftHandler) Submit(c *gin.Context) {
	rc, ok := requireUser(c)
	if !ok {
		return
	}
	id := c.Param("id")
	confirmed, err := h.Sessions.Submit(c.Request.Context(), id, rc.UserID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"booking": confirmed})
}

// DELETE /api/drafts/:id
func (h DraftHandler) Abandon(c *gin.Context) {
	rc, ok := requireUser(c)
	if !ok {
		return
	}
	if err := h.Sessions.Abandon(c.Param("id"), rc.UserID); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
