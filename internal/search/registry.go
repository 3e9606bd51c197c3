package search

import "sync"

// Registry hands out one Searcher per client key so that overlapping
// requests from the same client share a sequence counter.
type Registry struct {
	Querier Querier

	mu sync.Mutex
	m  map[string]*Searcher
}

func NewRegistry(q Querier) *Registry {
	return &Registry{Querier: q, m: map[string]*Searcher{}}
}

// For returns the Searcher bound to key, creating it on first use.
func (r *Registry) For(key string) *Searcher {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.m[key]; ok {
		return s
	}
	s := NewSearcher(r.Querier)
	r.m[key] = s
	return s
}
