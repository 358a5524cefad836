package models

import "strings"

// StudentProfile holds everything the match scorer knows about the student.
// GPA and CommunityService stay strings: they come from free-form inputs and
// are parsed only where a number is actually needed.
type StudentProfile struct {
	Name             string   `json:"name"`
	GPA              string   `json:"gpa"`
	Major            string   `json:"major"`
	Year             string   `json:"year"`
	Location         string   `json:"location"`
	Interests        []string `json:"interests"`
	CommunityService string   `json:"communityService"`
	FinancialNeed    bool     `json:"financialNeed"`
}

// DefaultProfile returns the all-empty profile used before the student has
// saved anything, and after a reset.
func DefaultProfile() StudentProfile {
	return StudentProfile{Interests: []string{}}
}

// AddInterest appends an interest, skipping blanks and case-insensitive
// duplicates. Insertion order is preserved.
func (p *StudentProfile) AddInterest(interest string) {
	interest = strings.TrimSpace(interest)
	if interest == "" {
		return
	}
	for _, existing := range p.Interests {
		if strings.EqualFold(existing, interest) {
			return
		}
	}
	p.Interests = append(p.Interests, interest)
}
