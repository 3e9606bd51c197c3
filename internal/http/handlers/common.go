package handlers

import (
	"net/http"
	"strconv"

	"busticket/internal/domain"
	"busticket/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		respondError(c, http.StatusBadRequest, "validation_error", "empty body")
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", "invalid payload: "+err.Error())
		return false
	}
	return true
}

// requireUser pulls the authenticated user or writes a 401 and returns false.
func requireUser(c *gin.Context) (domain.RequestContext, bool) {
	rc, ok := middleware.GetUser(c)
	if !ok || rc.UserID <= 0 {
		respondError(c, http.StatusUnauthorized, "unauthorized", "authentication required")
		return domain.RequestContext{}, false
	}
	return rc, true
}

// pathID parses a numeric :id style path param.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "validation_error", "invalid "+name)
		return 0, false
	}
	return id, true
}
