package cache

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"

	"busticket/internal/domain/models"
)

type countingQuerier struct {
	calls int
	out   []models.RouteOffer
}

func (q *countingQuerier) QueryRoutes(ctx context.Context, p models.SearchParams) ([]models.RouteOffer, error) {
	q.calls++
	return q.out, nil
}

func TestCacheMissFetchesAndStores(t *testing.T) {
	client, mock := redismock.NewClientMock()
	next := &countingQuerier{out: []models.RouteOffer{{ID: 1, Operator: "Metro Coach"}}}
	c := &Routes{Next: next, Client: client, TTL: time.Minute}

	params := models.SearchParams{Origin: "Accra", Destination: "Kumasi", TripDate: "2026-09-01"}
	key := Key(params)
	payload, _ := json.Marshal(next.out)

	mock.ExpectGet(key).RedisNil()
	mock.ExpectSet(key, payload, time.Minute).SetVal("OK")

	offers, err := c.QueryRoutes(context.Background(), params)

	assert.NoError(t, err)
	assert.Len(t, offers, 1)
	assert.Equal(t, 1, next.calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCacheHitSkipsBackend(t *testing.T) {
	client, mock := redismock.NewClientMock()
	next := &countingQuerier{}
	c := &Routes{Next: next, Client: client, TTL: time.Minute}

	params := models.SearchParams{Origin: "Accra", Destination: "Tamale", TripDate: "2026-09-02"}
	cached, _ := json.Marshal([]models.RouteOffer{{ID: 9}})
	mock.ExpectGet(Key(params)).SetVal(string(cached))

	offers, err := c.QueryRoutes(context.Background(), params)

	assert.NoError(t, err)
	assert.Equal(t, int64(9), offers[0].ID)
	assert.Equal(t, 0, next.calls, "cache hit must not reach the backend")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNilClientPassesThrough(t *testing.T) {
	next := &countingQuerier{out: []models.RouteOffer{{ID: 2}}}
	c := NewRoutes(next, nil)

	offers, err := c.QueryRoutes(context.Background(), models.SearchParams{})
	assert.NoError(t, err)
	assert.Len(t, offers, 1)
	assert.Equal(t, 1, next.calls)
}
