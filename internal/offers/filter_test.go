package offers

import (
	"testing"

	"busticket/internal/domain/models"
)

func sampleOffers() []models.RouteOffer {
	return []models.RouteOffer{
		{ID: 1, Operator: "Horizon Express", Plate: "BA-1021", Origin: "Accra", Destination: "Kumasi", UnitPrice: 120, Rating: 4.5, Amenities: []string{"WiFi", "AC"}},
		{ID: 2, Operator: "Metro Coach", Plate: "BA-2044", Origin: "Accra", Destination: "Tamale", UnitPrice: 200, Rating: 3.8, Amenities: []string{"AC"}},
		{ID: 3, Operator: "", Plate: "", Origin: "Takoradi", Destination: "Accra", UnitPrice: 90, Rating: 4.9},
		{ID: 4, Operator: "Horizon Express", Plate: "BA-1087", Origin: "Kumasi", Destination: "Accra", UnitPrice: 150, Rating: 4.1, Amenities: []string{"WiFi", "AC", "USB"}},
	}
}

func TestApplyFiltersPriceRangeInclusive(t *testing.T) {
	min, max := int64(120), int64(150)
	got := ApplyFilters(sampleOffers(), models.OfferFilters{MinPrice: &min, MaxPrice: &max})
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 4 {
		t.Fatalf("expected offers 1 and 4 on inclusive bounds, got %+v", got)
	}
}

func TestApplyFiltersAmenitiesAreAndSemantics(t *testing.T) {
	got := ApplyFilters(sampleOffers(), models.OfferFilters{Amenities: []string{"wifi", "usb"}})
	if len(got) != 1 || got[0].ID != 4 {
		t.Fatalf("expected only offer 4 to carry both amenities, got %+v", got)
	}
}

func TestApplyFiltersMissingAmenitiesFailAmenityFilter(t *testing.T) {
	got := ApplyFilters(sampleOffers(), models.OfferFilters{Amenities: []string{"AC"}})
	for _, o := range got {
		if o.ID == 3 {
			t.Fatalf("offer without amenities must fail the amenity filter")
		}
	}
}

func TestApplyFiltersTextQuerySkipsBlankFields(t *testing.T) {
	// Offer 3 has no operator/plate; query still matches its origin without
	// tripping on the blanks.
	got := ApplyFilters(sampleOffers(), models.OfferFilters{Query: "takoradi"})
	if len(got) != 1 || got[0].ID != 3 {
		t.Fatalf("expected offer 3 by origin substring, got %+v", got)
	}

	got = ApplyFilters(sampleOffers(), models.OfferFilters{Query: "horizon"})
	if len(got) != 2 {
		t.Fatalf("case-insensitive operator match failed, got %+v", got)
	}
}

func TestApplyFiltersOutputIsSubsequence(t *testing.T) {
	in := sampleOffers()
	rating := 4.0
	got := ApplyFilters(in, models.OfferFilters{MinRating: &rating})

	// Every element of got must appear in the input in the same order.
	pos := 0
	for _, o := range got {
		found := false
		for ; pos < len(in); pos++ {
			if in[pos].ID == o.ID {
				found = true
				pos++
				break
			}
		}
		if !found {
			t.Fatalf("output is not a subsequence of input: offer %d out of order", o.ID)
		}
	}
	if len(in) != 4 {
		t.Fatalf("input mutated, len=%d", len(in))
	}
}
