package offers

import (
	"strings"

	"busticket/internal/domain/models"
)

// ApplyFilters returns the subsequence of offers matching every supplied
// criterion. The input is never mutated and never reordered. Offers with
// missing optional fields fail the filters depending on them instead of
// breaking the pass: no amenities fails an amenity filter, a blank operator
// name is simply skipped during text search.
func ApplyFilters(in []models.RouteOffer, filters models.OfferFilters) []models.RouteOffer {
	out := make([]models.RouteOffer, 0, len(in))
	for _, offer := range in {
		if matches(offer, filters) {
			out = append(out, offer)
		}
	}
	return out
}

func matches(o models.RouteOffer, f models.OfferFilters) bool {
	if f.MinPrice != nil && o.UnitPrice < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && o.UnitPrice > *f.MaxPrice {
		return false
	}
	if f.MinRating != nil && o.Rating < *f.MinRating {
		return false
	}

	// Every requested amenity must be present (AND semantics).
	if len(f.Amenities) > 0 {
		have := make(map[string]bool, len(o.Amenities))
		for _, a := range o.Amenities {
			have[strings.ToLower(strings.TrimSpace(a))] = true
		}
		for _, want := range f.Amenities {
			if !have[strings.ToLower(strings.TrimSpace(want))] {
				return false
			}
		}
	}

	if q := strings.ToLower(strings.TrimSpace(f.Query)); q != "" {
		found := false
		for _, field := range []string{o.Operator, o.Plate, o.Origin, o.Destination} {
			if field == "" {
				continue
			}
			if strings.Contains(strings.ToLower(field), q) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}
