package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Sentinel field values that bypass strict equality filtering.
const (
	FieldAny           = "Any Field"
	LocationNationwide = "Nationwide"
	SentimentAll       = "all"
)

// Review is user feedback attached to a scholarship, with its own
// pre-computed sentiment score.
type Review struct {
	Text      string  `json:"text"`
	Sentiment float64 `json:"sentiment"`
}

// Scholarship is a single catalog entry. Optional fields stay pointers so
// "absent" survives a round trip: a scholarship without a sentiment score is
// unrated, which filters treat differently from a neutral 0.5.
type Scholarship struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Provider        string   `json:"provider"`
	Amount          string   `json:"amount"`
	Deadline        string   `json:"deadline"`
	Eligibility     []string `json:"eligibility"`
	Category        string   `json:"category"`
	Field           string   `json:"field"`
	Location        string   `json:"location"`
	Description     string   `json:"description"`
	Sentiment       *float64 `json:"sentiment,omitempty"`
	ApplicationLink string   `json:"applicationLink,omitempty"`
	Reviews         []Review `json:"reviews,omitempty"`

	// Provenance, set by discovery.
	Source      string `json:"source,omitempty"`
	ScrapedAt   string `json:"scrapedAt,omitempty"`
	SourceRunID string `json:"sourceRunId,omitempty"`
}

// UnmarshalJSON tolerates the loose upstream data: ids arrive as numbers or
// strings, sentiment as a float or a numeric string. Both are coerced here,
// once, so everything downstream works with a single representation.
func (s *Scholarship) UnmarshalJSON(data []byte) error {
	type alias Scholarship
	aux := struct {
		ID        json.RawMessage `json:"id"`
		Sentiment json.RawMessage `json:"sentiment"`
		*alias
	}{alias: (*alias)(s)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	s.ID = flexString(aux.ID)
	s.Sentiment = flexFloat(aux.Sentiment)
	return nil
}

// flexString decodes a JSON string or number into its string form.
func flexString(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		return str
	}
	var num json.Number
	if err := json.Unmarshal(raw, &num); err == nil {
		return num.String()
	}
	return strings.Trim(string(raw), `"`)
}

// flexFloat decodes a JSON number or numeric string; anything else is nil.
func flexFloat(raw json.RawMessage) *float64 {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return &f
	}
	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		if v, perr := strconv.ParseFloat(strings.TrimSpace(str), 64); perr == nil {
			return &v
		}
	}
	return nil
}
