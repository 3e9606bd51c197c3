package search

import (
	"context"
	"errors"
	"sync"
	"testing"

	"busticket/internal/domain"
	"busticket/internal/domain/models"

	"github.com/stretchr/testify/assert"
)

type scriptedQuerier struct {
	replies [][]models.RouteOffer
	errs    []error
	call    int
}

func (q *scriptedQuerier) QueryRoutes(ctx context.Context, p models.SearchParams) ([]models.RouteOffer, error) {
	i := q.call
	q.call++
	var err error
	if i < len(q.errs) {
		err = q.errs[i]
	}
	var out []models.RouteOffer
	if i < len(q.replies) {
		out = q.replies[i]
	}
	return out, err
}

func validParams() models.SearchParams {
	return models.SearchParams{Origin: "Accra", Destination: "Kumasi", TripDate: "2026-09-01", PassengerCount: 2}
}

func TestSetParamsPresenceOnly(t *testing.T) {
	s := NewSearcher(&scriptedQuerier{})

	err := s.SetParams(models.SearchParams{Destination: "Kumasi", TripDate: "2026-09-01"})
	assert.True(t, domain.IsValidation(err))

	assert.NoError(t, s.SetParams(validParams()))

	p := validParams()
	p.PassengerCount = 0
	assert.NoError(t, s.SetParams(p))
	assert.Equal(t, 1, s.Params().PassengerCount, "zero passengers defaults to one")
}

func TestSearchReplacesResultsWholesale(t *testing.T) {
	q := &scriptedQuerier{replies: [][]models.RouteOffer{
		{{ID: 1}, {ID: 2}},
		{{ID: 3}},
	}}
	s := NewSearcher(q)
	assert.NoError(t, s.SetParams(validParams()))

	_, err := s.Search(context.Background())
	assert.NoError(t, err)
	assert.Len(t, s.Results(), 2)

	_, err = s.Search(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(3), s.Results()[0].ID)
	assert.Len(t, s.Results(), 1, "no merge between result sets")
}

func TestSearchErrorScopedAndRecoverable(t *testing.T) {
	q := &scriptedQuerier{
		replies: [][]models.RouteOffer{nil, {{ID: 5}}},
		errs:    []error{errors.New("backend down"), nil},
	}
	s := NewSearcher(q)
	assert.NoError(t, s.SetParams(validParams()))

	_, err := s.Search(context.Background())
	assert.Error(t, err)
	assert.Error(t, s.Err())
	assert.False(t, s.Loading())

	// Recovery is a new manual call.
	_, err = s.Search(context.Background())
	assert.NoError(t, err)
	assert.NoError(t, s.Err())
	assert.Len(t, s.Results(), 1)
}

// blockingQuerier reports when each call enters and holds it until released,
// so the test controls resolution order exactly.
type blockingQuerier struct {
	mu      sync.Mutex
	call    int
	started chan int
	release []chan struct{}
	replies [][]models.RouteOffer
}

func (q *blockingQuerier) QueryRoutes(ctx context.Context, p models.SearchParams) ([]models.RouteOffer, error) {
	q.mu.Lock()
	i := q.call
	q.call++
	q.mu.Unlock()

	q.started <- i
	<-q.release[i]
	return q.replies[i], nil
}

func TestStaleResponseDiscarded(t *testing.T) {
	q := &blockingQuerier{
		started: make(chan int, 2),
		release: []chan struct{}{make(chan struct{}), make(chan struct{})},
		replies: [][]models.RouteOffer{{{ID: 100}}, {{ID: 200}}},
	}
	s := NewSearcher(q)
	assert.NoError(t, s.SetParams(validParams()))

	firstDone := make(chan struct{})
	go func() {
		_, _ = s.Search(context.Background())
		close(firstDone)
	}()
	<-q.started // first search issued and in flight

	secondDone := make(chan struct{})
	go func() {
		_, _ = s.Search(context.Background())
		close(secondDone)
	}()
	<-q.started // second search issued while first still pending

	// The newer search resolves first and installs its results.
	close(q.release[1])
	<-secondDone

	// The stale one resolves afterwards and must be discarded.
	close(q.release[0])
	<-firstDone

	results := s.Results()
	if assert.Len(t, results, 1) {
		assert.Equal(t, int64(200), results[0].ID, "stale first response must not clobber the newer one")
	}
	assert.False(t, s.Loading())
}
