package catalog

import (
	"fmt"
	"math/rand"

	"github.com/mvaldez/scholarmatch/internal/models"
)

// seedSeed fixes the generated tail of the seed catalog so every fresh data
// directory starts from identical contents.
const seedSeed = 7

const seedTailCount = 100

func ptr(f float64) *float64 { return &f }

// Seed returns the built-in catalog used when no persisted catalog exists or
// the persisted one fails to load: six curated entries plus a generated tail.
func Seed() []models.Scholarship {
	seed := []models.Scholarship{
		{
			ID:              "1",
			Title:           "Merit Excellence Scholarship",
			Provider:        "National Education Foundation",
			Amount:          "$5,000",
			Deadline:        "2026-09-15",
			Eligibility:     []string{"GPA 3.5+", "Undergraduate", "US Citizen"},
			Category:        "Merit-Based",
			Description:     "Awarded to outstanding students demonstrating academic excellence and leadership potential.",
			ApplicationLink: "https://example.com/apply1",
			Location:        models.LocationNationwide,
			Field:           models.FieldAny,
			Sentiment:       ptr(0.8),
			Reviews: []models.Review{
				{Text: "Amazing opportunity! The application process was straightforward.", Sentiment: 0.9},
				{Text: "Great scholarship program with excellent support.", Sentiment: 0.8},
			},
		},
		{
			ID:              "2",
			Title:           "STEM Innovation Grant",
			Provider:        "Tech Future Foundation",
			Amount:          "$10,000",
			Deadline:        "2026-10-20",
			Eligibility:     []string{"STEM Major", "GPA 3.0+", "Junior/Senior"},
			Category:        "Field-Specific",
			Description:     "Supporting the next generation of STEM innovators and researchers.",
			ApplicationLink: "https://example.com/apply2",
			Location:        "California",
			Field:           "STEM",
			Sentiment:       ptr(0.9),
			Reviews: []models.Review{
				{Text: "Incredible program for STEM students! Highly recommend applying.", Sentiment: 0.95},
				{Text: "The mentorship component is invaluable.", Sentiment: 0.85},
			},
		},
		{
			ID:              "3",
			Title:           "Community Leadership Award",
			Provider:        "Civic Engagement Institute",
			Amount:          "$3,000",
			Deadline:        "2026-11-10",
			Eligibility:     []string{"Community Service 100+ hours", "Any GPA", "Any Major"},
			Category:        "Community Service",
			Description:     "Recognizing students who make a difference in their communities.",
			ApplicationLink: "https://example.com/apply3",
			Location:        "Texas",
			Field:           models.FieldAny,
			Sentiment:       ptr(0.7),
			Reviews: []models.Review{
				{Text: "Good scholarship for community-minded students.", Sentiment: 0.7},
				{Text: "Application process could be improved.", Sentiment: 0.6},
			},
		},
		{
			ID:              "4",
			Title:           "First-Generation College Success",
			Provider:        "Educational Equity Foundation",
			Amount:          "$7,500",
			Deadline:        "2026-12-01",
			Eligibility:     []string{"First-Generation College Student", "GPA 2.5+", "Financial Need"},
			Category:        "Need-Based",
			Description:     "Supporting first-generation college students in achieving their educational goals.",
			ApplicationLink: "https://example.com/apply4",
			Location:        "New York",
			Field:           models.FieldAny,
			Sentiment:       ptr(0.85),
			Reviews: []models.Review{
				{Text: "Life-changing opportunity for first-gen students!", Sentiment: 0.9},
				{Text: "Excellent support system and resources provided.", Sentiment: 0.8},
			},
		},
		{
			ID:              "5",
			Title:           "Creative Arts Excellence",
			Provider:        "Arts & Culture Foundation",
			Amount:          "$4,500",
			Deadline:        "2027-01-15",
			Eligibility:     []string{"Arts Major", "Portfolio Required", "GPA 3.2+"},
			Category:        "Field-Specific",
			Description:     "Celebrating creativity and artistic achievement in higher education.",
			ApplicationLink: "https://example.com/apply5",
			Location:        "Illinois",
			Field:           "Arts",
			Sentiment:       ptr(0.75),
			Reviews: []models.Review{
				{Text: "Great for creative students, but portfolio requirements are strict.", Sentiment: 0.7},
				{Text: "Wonderful opportunity to showcase artistic talent.", Sentiment: 0.8},
			},
		},
		{
			ID:              "6",
			Title:           "Business Leadership Scholarship",
			Provider:        "Corporate Excellence Institute",
			Amount:          "$8,000",
			Deadline:        "2027-02-28",
			Eligibility:     []string{"Business Major", "Leadership Experience", "GPA 3.3+"},
			Category:        "Field-Specific",
			Description:     "Developing the next generation of business leaders and entrepreneurs.",
			ApplicationLink: "https://example.com/apply6",
			Location:        "Florida",
			Field:           "Business",
			Sentiment:       ptr(0.82),
			Reviews: []models.Review{
				{Text: "Excellent networking opportunities and mentorship.", Sentiment: 0.85},
				{Text: "Competitive but worth the effort to apply.", Sentiment: 0.8},
			},
		},
	}

	return append(seed, seedTail(seedTailCount)...)
}

// seedTail pads the catalog with generated entries so filtering and ranking
// have something to chew on out of the box.
func seedTail(count int) []models.Scholarship {
	categories := []string{"Merit-Based", "Need-Based", "Field-Specific", "Community Service", "Minority", "Athletic"}
	fields := []string{"STEM", "Business", "Arts", "Medicine", "Education", "Humanities", "Social Sciences", "Law", models.FieldAny}
	locations := []string{models.LocationNationwide, "California", "Texas", "New York", "Florida", "Illinois", "Online", "International"}
	providers := []string{
		"Global Scholarship Fund", "Future Leaders Initiative", "Academic Achievers Program", "Community Builders Grant",
		"Innovation Hub Scholarships", "Diversity in Tech Award", "Student Success Foundation", "Bright Minds Scholarship",
		"The Hope Scholarship", "Pioneer's Grant",
	}

	rng := rand.New(rand.NewSource(seedSeed))
	tail := make([]models.Scholarship, 0, count)
	for i := 0; i < count; i++ {
		id := 7 + i
		amount := (rng.Intn(19) + 2) * 500                   // $1,000 to $10,000
		gpa := fmt.Sprintf("%.1f", rng.Float64()*1.5+2.5)    // 2.5 to 4.0
		sentiment := float64(int(rng.Float64()*40+50)) / 100 // 0.50 to 0.90
		year := 2026 + i/50                                  // spread deadlines over two years
		month := rng.Intn(12) + 1
		day := rng.Intn(28) + 1

		citizenship := "Any Nationality"
		if i%3 == 0 {
			citizenship = "US Citizen"
		}
		level := "Graduate"
		if i%2 == 0 {
			level = "Undergraduate"
		}

		tail = append(tail, models.Scholarship{
			ID:       fmt.Sprintf("%d", id),
			Title:    fmt.Sprintf("Scholarship Opportunity #%d", id),
			Provider: providers[i%len(providers)],
			Amount:   fmt.Sprintf("$%s", formatThousands(amount)),
			Deadline: fmt.Sprintf("%d-%02d-%02d", year, month, day),
			Eligibility: []string{
				fmt.Sprintf("GPA %s+", gpa),
				level,
				citizenship,
			},
			Category: categories[i%len(categories)],
			Description: fmt.Sprintf(
				"A promising scholarship for dedicated students in %s. This scholarship aims to support students who demonstrate potential in their chosen field and a commitment to their education.",
				fields[i%len(fields)]),
			ApplicationLink: fmt.Sprintf("https://example.com/apply%d", id),
			Location:        locations[i%len(locations)],
			Field:           fields[i%len(fields)],
			Sentiment:       ptr(sentiment),
			Reviews: []models.Review{
				{Text: "Seems like a good opportunity, worth checking out.", Sentiment: clamp(sentiment-0.1, 0.5, 0.9)},
				{Text: "The provider has a decent reputation.", Sentiment: clamp(sentiment+0.1, 0.5, 0.9)},
			},
		})
	}
	return tail
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// formatThousands renders 10000 as "10,000".
func formatThousands(n int) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	return s[:len(s)-3] + "," + s[len(s)-3:]
}
