// Package match implements the scholarship matching engine: the filter
// predicate, the profile match scorer, and the ranking pipeline. Everything
// here is a pure function of its arguments; state lives with the caller.
package match

import (
	"strings"
	"time"

	"github.com/mvaldez/scholarmatch/internal/models"
)

// deadlineBuckets maps a named deadline filter to its maximum days remaining.
var deadlineBuckets = map[string]int{
	models.DeadlineWeek:     7,
	models.DeadlineMonth:    30,
	models.DeadlineQuarter:  90,
	models.DeadlineHalfYear: 180,
}

// Matches reports whether a scholarship satisfies every criterion in the
// filter set. An empty criterion matches everything, so a zero FilterSet is
// the identity filter. The student profile plays no part here.
func Matches(s models.Scholarship, f models.FilterSet, now time.Time) bool {
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(s.Title), needle) &&
			!strings.Contains(strings.ToLower(s.Provider), needle) &&
			!strings.Contains(strings.ToLower(s.Description), needle) &&
			!strings.Contains(strings.ToLower(s.Category), needle) &&
			!strings.Contains(strings.ToLower(s.Field), needle) {
			return false
		}
	}

	if f.AmountRange != "" && !amountInRange(AmountValue(s.Amount), f.AmountRange) {
		return false
	}

	if f.Category != "" && s.Category != f.Category {
		return false
	}
	if f.Field != "" && s.Field != f.Field && s.Field != models.FieldAny {
		return false
	}
	if f.Location != "" && s.Location != f.Location && s.Location != models.LocationNationwide {
		return false
	}

	if f.Deadline != "" {
		// Unparseable deadlines are kept: unknown is not expired.
		if deadline, ok := models.ParseDeadline(s.Deadline); ok {
			days := models.DaysUntil(deadline, now)
			if days < 0 {
				return false
			}
			if limit, ok := deadlineBuckets[f.Deadline]; ok && days > limit {
				return false
			}
		}
	}

	if f.Sentiment != "" && f.Sentiment != models.SentimentAll {
		if s.Sentiment == nil {
			return false
		}
		switch f.Sentiment {
		case models.SentimentHigh:
			if *s.Sentiment < 0.8 {
				return false
			}
		case models.SentimentMedium:
			if *s.Sentiment < 0.6 {
				return false
			}
		}
	}

	return true
}

// amountInRange checks a parsed amount against a "min-max" or open-ended
// "min+" range. Both bounds are inclusive.
func amountInRange(amount int, rng string) bool {
	if open, ok := strings.CutSuffix(rng, "+"); ok {
		return amount >= parseBound(open)
	}
	minStr, maxStr, hasMax := strings.Cut(rng, "-")
	if amount < parseBound(minStr) {
		return false
	}
	if hasMax && maxStr != "" && amount > parseBound(maxStr) {
		return false
	}
	return true
}
