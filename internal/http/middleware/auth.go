package middleware

import (
	"net/http"
	"strings"

	"busticket/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const userKey = "auth_user"

// RequireAuth rejects requests without a valid Bearer token and stores the
// authenticated user in the gin context.
func RequireAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		rc, err := parseBearer(c, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":      err.Error(),
				"request_id": GetRequestID(c),
			})
			return
		}
		c.Set(userKey, rc)
		c.Next()
	}
}

// AuthOptional stores the user when a valid token is present and passes
// through otherwise.
func AuthOptional(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rc, err := parseBearer(c, secret); err == nil {
			c.Set(userKey, rc)
		}
		c.Next()
	}
}

// GetUser returns the authenticated user stored by RequireAuth/AuthOptional.
func GetUser(c *gin.Context) (domain.RequestContext, bool) {
	v, ok := c.Get(userKey)
	if !ok {
		return domain.RequestContext{}, false
	}
	rc, ok := v.(domain.RequestContext)
	return rc, ok
}

func parseBearer(c *gin.Context, secret []byte) (domain.RequestContext, error) {
	header := c.GetHeader("Authorization")
	raw, found := strings.CutPrefix(header, "Bearer ")
	if !found || strings.TrimSpace(raw) == "" {
		return domain.RequestContext{}, domain.ValidationError{Field: "authorization", Msg: "missing bearer token"}
	}

	token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ValidationError{Field: "authorization", Msg: "unexpected signing method"}
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return domain.RequestContext{}, domain.ValidationError{Field: "authorization", Msg: "invalid token"}
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return domain.RequestContext{}, domain.ValidationError{Field: "authorization", Msg: "invalid claims"}
	}

	rc := domain.RequestContext{}
	if v, ok := claims["user_id"].(float64); ok {
		rc.UserID = int64(v)
	}
	if v, ok := claims["role"].(string); ok {
		rc.Role = v
	}
	if rc.UserID == 0 {
		return domain.RequestContext{}, domain.ValidationError{Field: "authorization", Msg: "invalid claims"}
	}
	return rc, nil
}
