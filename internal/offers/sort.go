package offers

import (
	"sort"

	"busticket/internal/domain/models"
)

type SortKey string

const (
	SortPriceAsc     SortKey = "price_asc"
	SortPriceDesc    SortKey = "price_desc"
	SortRatingDesc   SortKey = "rating_desc"
	SortDepartureAsc SortKey = "departure_asc"
)

// SortOffers returns a new slice ordered by key. The sort is stable, so equal
// keys preserve the input's relative order, and the input slice is never
// mutated. An unknown key returns an unmodified copy.
func SortOffers(in []models.RouteOffer, key SortKey) []models.RouteOffer {
	out := make([]models.RouteOffer, len(in))
	copy(out, in)

	switch key {
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].UnitPrice < out[j].UnitPrice })
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].UnitPrice > out[j].UnitPrice })
	case SortRatingDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	case SortDepartureAsc:
		keys := make([]int, len(out))
		for i, o := range out {
			m, err := ParseClock(o.DepartureTime)
			if err != nil {
				// Unparseable departures sort after every valid one,
				// keeping their own input order.
				m = 24*60 + 1
			}
			keys[i] = m
		}
		sort.Stable(sorterWithKeys{offers: out, keys: keys})
	}

	return out
}

// sorterWithKeys pairs the offer slice with precomputed departure minutes so
// swaps keep both aligned.
type sorterWithKeys struct {
	offers []models.RouteOffer
	keys   []int
}

func (s sorterWithKeys) Len() int           { return len(s.offers) }
func (s sorterWithKeys) Less(i, j int) bool { return s.keys[i] < s.keys[j] }
func (s sorterWithKeys) Swap(i, j int) {
	s.offers[i], s.offers[j] = s.offers[j], s.offers[i]
	s.keys[i], s.keys[j] = s.keys[j], s.keys[i]
}
