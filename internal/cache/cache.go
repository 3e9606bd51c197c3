package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"busticket/internal/domain/models"
	"busticket/internal/search"
)

const DefaultTTL = 5 * time.Minute

// Routes wraps a route querier with a redis JSON cache keyed by the search
// params. Cache failures are treated as misses; the backend answer always
// wins over a broken cache.
type Routes struct {
	Next   search.Querier
	Client *redis.Client
	TTL    time.Duration
}

func NewRoutes(next search.Querier, client *redis.Client) *Routes {
	return &Routes{Next: next, Client: client, TTL: DefaultTTL}
}

func (c *Routes) QueryRoutes(ctx context.Context, params models.SearchParams) ([]models.RouteOffer, error) {
	if c.Client == nil {
		return c.Next.QueryRoutes(ctx, params)
	}

	key := Key(params)
	if data, err := c.Client.Get(ctx, key).Bytes(); err == nil {
		var offers []models.RouteOffer
		if err := json.Unmarshal(data, &offers); err == nil {
			return offers, nil
		}
	}

	offers, err := c.Next.QueryRoutes(ctx, params)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(offers); err == nil {
		_ = c.Client.Set(ctx, key, data, c.TTL).Err()
	}
	return offers, nil
}

// Key hashes the search params into a stable cache key.
func Key(params models.SearchParams) string {
	data, _ := json.Marshal(struct {
		Origin      string
		Destination string
		TripDate    string
	}{params.Origin, params.Destination, params.TripDate})
	sum := sha256.Sum256(data)
	return "routes:" + hex.EncodeToString(sum[:])
}
