// Package sentiment provides the text sentiment capability used by the
// review analysis panel. The implementation is a fixed keyword lexicon, not a
// model: the scoring rule is part of the product contract.
package sentiment

import (
	"context"
	"strings"
	"time"
)

// Labels derived from the score thresholds.
const (
	LabelPositive = "Positive"
	LabelNegative = "Negative"
	LabelNeutral  = "Neutral"
)

// Result is a single analysis outcome. Score is in [0,1]; Confidence is the
// distance from neutral rescaled to [0,1].
type Result struct {
	Score      float64 `json:"score"`
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

// Analyzer scores a piece of text. Implementations may take a while and must
// honor cancellation.
type Analyzer interface {
	Analyze(ctx context.Context, text string) (Result, error)
}

var (
	positiveWords = []string{"excellent", "amazing", "great", "wonderful", "fantastic", "outstanding", "incredible", "perfect", "love", "best"}
	negativeWords = []string{"terrible", "awful", "bad", "horrible", "worst", "hate", "disappointing", "poor", "difficult", "problems"}
)

// KeywordAnalyzer scores text against the positive/negative word lists:
// 0.5 baseline, +0.1 per positive hit, -0.1 per negative hit, clamped to
// [0,1]. Latency simulates the call this stands in for.
type KeywordAnalyzer struct {
	Latency time.Duration
}

// NewKeywordAnalyzer returns the production analyzer with its simulated
// one-second latency.
func NewKeywordAnalyzer() *KeywordAnalyzer {
	return &KeywordAnalyzer{Latency: time.Second}
}

func (a *KeywordAnalyzer) Analyze(ctx context.Context, text string) (Result, error) {
	if a.Latency > 0 {
		select {
		case <-time.After(a.Latency):
		case <-ctx.Done():
			return Result{}, ctx.Err()
		}
	}

	score := 0.5
	for _, word := range strings.Fields(strings.ToLower(text)) {
		switch {
		case contains(positiveWords, word):
			score += 0.1
		case contains(negativeWords, word):
			score -= 0.1
		}
	}
	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}

	return Result{
		Score:      score,
		Label:      Label(score),
		Confidence: confidence(score),
	}, nil
}

// Label maps a score to its display label: >0.6 positive, <0.4 negative,
// neutral in between.
func Label(score float64) string {
	switch {
	case score > 0.6:
		return LabelPositive
	case score < 0.4:
		return LabelNegative
	default:
		return LabelNeutral
	}
}

func confidence(score float64) float64 {
	c := score - 0.5
	if c < 0 {
		c = -c
	}
	return c * 2
}

func contains(words []string, w string) bool {
	for _, candidate := range words {
		if candidate == w {
			return true
		}
	}
	return false
}
