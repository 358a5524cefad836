package models

// Deadline bucket names accepted by FilterSet.Deadline.
const (
	DeadlineWeek     = "week"
	DeadlineMonth    = "month"
	DeadlineQuarter  = "quarter"
	DeadlineHalfYear = "halfyear"
)

// Sentiment bucket names accepted by FilterSet.Sentiment.
const (
	SentimentHigh   = "high"
	SentimentMedium = "medium"
)

// FilterSet is the active set of catalog filters. Every criterion is
// optional; an empty value matches everything. Criteria are AND-combined.
type FilterSet struct {
	Search      string `json:"search"`      // case-insensitive substring, OR-matched across text fields
	AmountRange string `json:"amountRange"` // "min-max" or open-ended "min+"
	Category    string `json:"category"`
	Field       string `json:"field"`
	Location    string `json:"location"`
	Deadline    string `json:"deadline"`  // week | month | quarter | halfyear
	Sentiment   string `json:"sentiment"` // high | medium | all
}

// IsZero reports whether no criterion is set.
func (f FilterSet) IsZero() bool {
	return f == FilterSet{}
}
