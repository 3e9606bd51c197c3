package handlers

import (
	"net/http"
	"strconv"

	"busticket/internal/domain/models"
	"busticket/internal/http/middleware"
	"busticket/internal/offers"
	"busticket/internal/search"

	"github.com/gin-gonic/gin"
)

// SearchHandler runs route searches. Each client gets its own sequenced
// searcher so a slow response can never overwrite a newer one.
type SearchHandler struct {
	Registry *search.Registry
}

// searchRequest accepts origin and destination as either a bare string or a
// structured suggestion record; the union is resolved at the JSON boundary.
type searchRequest struct {
	Origin         models.LocationSuggestion `json:"origin"`
	Destination    models.LocationSuggestion `json:"destination"`
	TripDate       string                    `json:"trip_date"`
	PassengerCount int                       `json:"passenger_count"`
	Filters        models.OfferFilters       `json:"filters"`
	Sort           string                    `json:"sort"`
}

// POST /api/search
func (h SearchHandler) Search(c *gin.Context) {
	var req searchRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	s := h.Registry.For(clientKey(c))
	if err := s.SetParams(models.SearchParams{
		Origin:         req.Origin.Name,
		Destination:    req.Destination.Name,
		TripDate:       req.TripDate,
		PassengerCount: req.PassengerCount,
	}); err != nil {
		RespondDomainError(c, err)
		return
	}

	results, err := s.Search(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	out := offers.ApplyFilters(results, req.Filters)
	if req.Sort != "" {
		out = offers.SortOffers(out, offers.SortKey(req.Sort))
	}

	c.JSON(http.StatusOK, gin.H{
		"params": s.Params(),
		"offers": out,
		"count":  len(out),
	})
}

// clientKey scopes a searcher to the authenticated user, falling back to the
// client IP for anonymous searches.
func clientKey(c *gin.Context) string {
	if rc, ok := middleware.GetUser(c); ok && rc.UserID > 0 {
		return "user:" + strconv.FormatInt(rc.UserID, 10)
	}
	return "ip:" + c.ClientIP()
}
