package models

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
)

var sanitizePolicy = bluemonday.StrictPolicy()

// Normalize cleans a scholarship in place at the data-model boundary:
// whitespace collapsed, descriptions stripped of any HTML, eligibility
// entries deduplicated. Downstream filtering and scoring assume records have
// been through here exactly once.
func Normalize(s *Scholarship) {
	s.ID = strings.TrimSpace(s.ID)
	s.Title = cleanText(s.Title)
	s.Provider = cleanText(s.Provider)
	s.Amount = strings.TrimSpace(s.Amount)
	s.Deadline = strings.TrimSpace(s.Deadline)
	s.Category = cleanText(s.Category)
	s.Field = cleanText(s.Field)
	s.Location = cleanText(s.Location)
	s.Description = cleanText(HTMLToText(s.Description))

	var eligibility []string
	for _, req := range s.Eligibility {
		eligibility = appendUnique(eligibility, cleanText(req))
	}
	s.Eligibility = eligibility
}

// HTMLToText converts HTML to plain text. The sanitizer runs first so that
// script/style bodies never leak into the text.
func HTMLToText(html string) string {
	if !strings.ContainsAny(html, "<&") {
		return html
	}
	sanitized := sanitizePolicy.Sanitize(html)
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(sanitized))
	if err != nil {
		return sanitized
	}
	return doc.Text()
}

// cleanText collapses runs of whitespace into single spaces and trims.
func cleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// appendUnique appends v unless it is blank or already present
// (case-insensitive).
func appendUnique(list []string, v string) []string {
	if v == "" {
		return list
	}
	for _, existing := range list {
		if strings.EqualFold(existing, v) {
			return list
		}
	}
	return append(list, v)
}
