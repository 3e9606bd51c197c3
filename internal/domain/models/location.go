package models

import (
	"bytes"
	"encoding/json"
	"strings"
)

// LocationSuggestion tolerates the two shapes the suggestion feed produces:
// a bare string, or a structured record {name, region, country}. The shape is
// resolved here at the JSON boundary so downstream code only sees the union.
type LocationSuggestion struct {
	Name    string `json:"name"`
	Region  string `json:"region,omitempty"`
	Country string `json:"country,omitempty"`
	// Structured is false when the source was a plain string.
	Structured bool `json:"-"`
}

func (l *LocationSuggestion) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*l = LocationSuggestion{}
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*l = LocationSuggestion{Name: strings.TrimSpace(s)}
		return nil
	}

	var raw struct {
		Name    string `json:"name"`
		Region  string `json:"region"`
		Country string `json:"country"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*l = LocationSuggestion{
		Name:       strings.TrimSpace(raw.Name),
		Region:     strings.TrimSpace(raw.Region),
		Country:    strings.TrimSpace(raw.Country),
		Structured: true,
	}
	return nil
}

// Display renders the suggestion for text fields ("Name, Region, Country"
// with empty parts dropped).
func (l LocationSuggestion) Display() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{l.Name, l.Region, l.Country} {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, strings.TrimSpace(p))
		}
	}
	return strings.Join(parts, ", ")
}
