package match

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/mvaldez/scholarmatch/internal/models"
)

// gpaPattern picks the first decimal-looking number out of a requirement
// string ("GPA 3.5+" -> 3.5). Requirements listing several numbers yield the
// first one; that is the documented behavior, not an accident.
var gpaPattern = regexp.MustCompile(`\d+(?:\.\d+)?`)

// Score computes the 0-100 relevance of a scholarship for a profile. The
// model is additive: each signal contributes a fixed number of points and the
// raw total is clamped at the end, so an unmet GPA requirement can drag an
// otherwise strong match down but never below zero.
func Score(s models.Scholarship, p models.StudentProfile) int {
	score := 0

	if p.GPA != "" {
		gpa, err := strconv.ParseFloat(strings.TrimSpace(p.GPA), 64)
		if err != nil {
			gpa = math.NaN()
		}
		if req, ok := gpaRequirement(s.Eligibility); ok {
			if gpa >= req {
				score += 25
			} else {
				score -= 10
			}
		} else {
			// Has a GPA, no GPA barrier.
			score += 5
		}
	}

	if p.Major != "" && s.Field != "" && s.Field != models.FieldAny {
		field := strings.ToLower(s.Field)
		major := strings.ToLower(p.Major)
		if strings.Contains(field, major) || strings.Contains(major, field) {
			score += 30
		}
	} else if s.Field == models.FieldAny {
		score += 15
	}

	if p.Location != "" && s.Location != "" && s.Location != models.LocationNationwide {
		if s.Location == p.Location {
			score += 20
		}
	} else if s.Location == models.LocationNationwide {
		score += 10
	}

	if len(p.Interests) > 0 {
		haystack := strings.ToLower(s.Description + " " + s.Title + " " + strings.Join(s.Eligibility, " "))
		for _, interest := range p.Interests {
			if interest != "" && strings.Contains(haystack, strings.ToLower(interest)) {
				score += 15
				break
			}
		}
	}

	if p.FinancialNeed {
		for _, req := range s.Eligibility {
			if strings.Contains(strings.ToLower(req), "financial need") {
				score += 10
				break
			}
		}
	}

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// gpaRequirement scans eligibility entries for the first one mentioning
// "gpa" and extracts its required value. A mention with no parseable number
// counts as a requirement of 0.
func gpaRequirement(eligibility []string) (float64, bool) {
	for _, req := range eligibility {
		if !strings.Contains(strings.ToLower(req), "gpa") {
			continue
		}
		if m := gpaPattern.FindString(req); m != "" {
			if v, err := strconv.ParseFloat(m, 64); err == nil {
				return v, true
			}
		}
		return 0, true
	}
	return 0, false
}
