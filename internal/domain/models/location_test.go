package models

import (
	"encoding/json"
	"testing"
)

func TestLocationSuggestionUnmarshalUnion(t *testing.T) {
	var plain LocationSuggestion
	if err := json.Unmarshal([]byte(`"  Accra "`), &plain); err != nil {
		t.Fatalf("plain string: %v", err)
	}
	if plain.Name != "Accra" || plain.Structured {
		t.Fatalf("unexpected plain result: %+v", plain)
	}

	var structured LocationSuggestion
	raw := `{"name":"Kumasi","region":"Ashanti","country":"Ghana"}`
	if err := json.Unmarshal([]byte(raw), &structured); err != nil {
		t.Fatalf("structured: %v", err)
	}
	if !structured.Structured || structured.Region != "Ashanti" {
		t.Fatalf("unexpected structured result: %+v", structured)
	}
	if got := structured.Display(); got != "Kumasi, Ashanti, Ghana" {
		t.Fatalf("display = %q", got)
	}
}

func TestLocationSuggestionMixedList(t *testing.T) {
	var list []LocationSuggestion
	raw := `["Tamale", {"name":"Cape Coast","region":"Central"}]`
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		t.Fatalf("mixed list: %v", err)
	}
	if len(list) != 2 || list[0].Structured || !list[1].Structured {
		t.Fatalf("unexpected list: %+v", list)
	}
	if list[1].Display() != "Cape Coast, Central" {
		t.Fatalf("display = %q", list[1].Display())
	}
}
