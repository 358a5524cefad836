package match

import "github.com/mvaldez/scholarmatch/internal/models"

// Stats summarizes the whole catalog plus how much of it survives the active
// filters. Totals always cover the unfiltered catalog.
type Stats struct {
	TotalScholarships int     `json:"totalScholarships"`
	TotalAmount       int     `json:"totalAmount"`
	AvgSentiment      float64 `json:"avgSentiment"`
	Matching          int     `json:"matchingScholarships"`
}

// ComputeStats aggregates over the full catalog. Unrated scholarships count
// as 0.5 toward the sentiment average; that default is for averaging only and
// does not make them "rated" anywhere else.
func ComputeStats(catalog []models.Scholarship, matching int) Stats {
	stats := Stats{
		TotalScholarships: len(catalog),
		Matching:          matching,
	}
	var sentimentSum float64
	for _, s := range catalog {
		stats.TotalAmount += AmountValue(s.Amount)
		if s.Sentiment != nil {
			sentimentSum += *s.Sentiment
		} else {
			sentimentSum += 0.5
		}
	}
	if len(catalog) > 0 {
		stats.AvgSentiment = sentimentSum / float64(len(catalog))
	}
	return stats
}
