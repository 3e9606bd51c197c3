package search

import (
	"context"
	"strings"
	"sync"

	"busticket/internal/domain"
	"busticket/internal/domain/models"
)

// Querier is the route lookup this package depends on; the MySQL repository
// (optionally wrapped by the redis cache) implements it.
type Querier interface {
	QueryRoutes(ctx context.Context, params models.SearchParams) ([]models.RouteOffer, error)
}

// Searcher holds the four search fields and runs sequenced queries against a
// Querier. Every issued search gets a monotonically increasing sequence
// number; a response that is no longer the latest issued is discarded instead
// of clobbering newer results. The error slot is scoped to this searcher's
// search operation only.
type Searcher struct {
	querier Querier

	mu       sync.Mutex
	params   models.SearchParams
	seq      uint64 // latest issued
	resolved uint64 // latest installed
	results  []models.RouteOffer
	err      error
}

func NewSearcher(q Querier) *Searcher {
	return &Searcher{querier: q}
}

// SetParams stores the search fields. Presence is the only validation.
func (s *Searcher) SetParams(p models.SearchParams) error {
	if strings.TrimSpace(p.Origin) == "" {
		return domain.ValidationError{Field: "origin", Msg: "origin is required"}
	}
	if strings.TrimSpace(p.Destination) == "" {
		return domain.ValidationError{Field: "destination", Msg: "destination is required"}
	}
	if strings.TrimSpace(p.TripDate) == "" {
		return domain.ValidationError{Field: "trip_date", Msg: "trip date is required"}
	}
	if p.PassengerCount <= 0 {
		p.PassengerCount = 1
	}

	s.mu.Lock()
	s.params = p
	s.mu.Unlock()
	return nil
}

func (s *Searcher) Params() models.SearchParams {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.params
}

// Search queries the backend with the stored params. The previous result set
// is replaced wholesale on success; a failure surfaces once through Err and
// recovery is a new call. There is no automatic retry.
func (s *Searcher) Search(ctx context.Context) ([]models.RouteOffer, error) {
	s.mu.Lock()
	s.seq++
	seq := s.seq
	params := s.params
	s.mu.Unlock()

	offers, err := s.querier.QueryRoutes(ctx, params)

	s.mu.Lock()
	defer s.mu.Unlock()

	// A newer search was issued while this one was in flight; its answer
	// wins regardless of arrival order.
	if seq != s.seq {
		return offers, err
	}

	s.resolved = seq
	if err != nil {
		s.err = err
		return nil, err
	}
	s.err = nil
	s.results = offers
	return offers, nil
}

// Results returns a copy of the installed result set.
func (s *Searcher) Results() []models.RouteOffer {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.RouteOffer, len(s.results))
	copy(out, s.results)
	return out
}

// Err reports the latest installed search failure, if any.
func (s *Searcher) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Loading reports whether the latest issued search has not resolved yet.
func (s *Searcher) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resolved != s.seq
}
