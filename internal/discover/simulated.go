package discover

import (
	"context"
	"fmt"
	"math/rand"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mvaldez/scholarmatch/internal/models"
)

// Field value tables for generated records. Shared across sources so repeated
// runs produce plausible overlap for the dedup path to reject.
var (
	genCategories = []string{"Merit-Based", "Need-Based", "Field-Specific", "Community Service", "Minority", "Athletic", "Research", "Essay Contest"}
	genFields     = []string{"STEM", "Business", "Arts", "Medicine", "Education", "Humanities", "Social Sciences", "Law", "Environmental Science", "Journalism", models.FieldAny}
	genLocations  = []string{models.LocationNationwide, "California", "Texas", "New York", "Florida", "Illinois", "Online", "International", "Massachusetts", "Washington"}
)

// Simulated is the production Discoverer. There is no live scraping in this
// system; discovery synthesizes records shaped exactly like real source data,
// behind the same interface a real fetcher would implement.
type Simulated struct {
	registry *Registry

	mu  sync.Mutex
	rng *rand.Rand

	latency bool
	now     func() time.Time
}

// NewSimulated builds the production discoverer: time-seeded randomness and
// simulated source latency.
func NewSimulated(reg *Registry) *Simulated {
	return &Simulated{
		registry: reg,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		latency:  true,
		now:      time.Now,
	}
}

// NewDeterministic builds a discoverer for tests: fixed seed, no latency,
// fixed clock.
func NewDeterministic(reg *Registry, seed int64, now time.Time) *Simulated {
	return &Simulated{
		registry: reg,
		rng:      rand.New(rand.NewSource(seed)),
		latency:  false,
		now:      func() time.Time { return now },
	}
}

func (d *Simulated) Discover(ctx context.Context, sources []string) ([]models.Scholarship, error) {
	if len(sources) == 0 {
		sources = d.registry.ActiveNames()
	}
	if err := d.sleep(ctx, 2500, 1500); err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	var batch []models.Scholarship
	d.mu.Lock()
	for _, source := range sources {
		min, max := d.registry.Lookup(source).Bounds()
		count := d.rng.Intn(max-min+1) + min
		for i := 0; i < count; i++ {
			batch = append(batch, d.makeScholarship(len(batch), source, runID))
		}
	}
	d.mu.Unlock()
	return batch, nil
}

func (d *Simulated) DiscoverFromURL(ctx context.Context, rawURL string) ([]models.Scholarship, error) {
	parsed, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || parsed.Hostname() == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidURL, rawURL)
	}
	if err := d.sleep(ctx, 1500, 1000); err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	d.mu.Lock()
	count := d.rng.Intn(5) + 3 // 3 to 7 from a custom URL
	batch := make([]models.Scholarship, 0, count)
	for i := 0; i < count; i++ {
		batch = append(batch, d.makeScholarship(i, parsed.Hostname(), runID))
	}
	d.mu.Unlock()
	return batch, nil
}

// makeScholarship synthesizes one record attributed to the given source.
// Index feeds the rotating field tables and the record id, so records within
// a batch are distinct while overlapping across runs.
func (d *Simulated) makeScholarship(index int, source, runID string) models.Scholarship {
	now := d.now()
	amount := (d.rng.Intn(38) + 5) * 250                   // $1,250 to $10,500
	gpa := fmt.Sprintf("%.1f", d.rng.Float64()*1.8+2.2)    // 2.2 to 4.0
	sentiment := float64(int(d.rng.Float64()*30+60)) / 100 // 0.60 to 0.90
	year := now.Year() + index/25
	month := d.rng.Intn(12) + 1
	day := d.rng.Intn(28) + 1

	field := genFields[index%len(genFields)]
	level := "Graduate"
	if index%2 == 0 {
		level = "Undergraduate"
	}

	return models.Scholarship{
		ID:          fmt.Sprintf("scraped-%s-%d", sourceSlug(source), index+1),
		Title:       fmt.Sprintf("Discovered %s Grant #%d", field, index+1),
		Provider:    fmt.Sprintf("From %s", source),
		Amount:      fmt.Sprintf("$%s", formatAmount(amount)),
		Deadline:    fmt.Sprintf("%d-%02d-%02d", year, month, day),
		Description: fmt.Sprintf("An exciting new scholarship opportunity for students in %s. Found via automated discovery from %s.", field, source),
		Eligibility: []string{
			fmt.Sprintf("GPA %s+", gpa),
			level,
			genLocations[index%len(genLocations)],
		},
		Category:    genCategories[index%len(genCategories)],
		Field:       field,
		Location:    genLocations[index%len(genLocations)],
		Sentiment:   &sentiment,
		Source:      source,
		ScrapedAt:   now.UTC().Format(time.RFC3339),
		SourceRunID: runID,
	}
}

// sleep simulates source latency: baseMillis plus up to jitterMillis more.
// Returns early with the context error on cancellation.
func (d *Simulated) sleep(ctx context.Context, baseMillis, jitterMillis int) error {
	if !d.latency {
		return nil
	}
	d.mu.Lock()
	delay := time.Duration(baseMillis+d.rng.Intn(jitterMillis)) * time.Millisecond
	d.mu.Unlock()

	select {
	case <-time.After(delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// sourceSlug turns "TopScholarships.com" into "topscholarships".
func sourceSlug(source string) string {
	slug := strings.ToLower(source)
	for _, suffix := range []string{".com", ".org", ".edu", ".net"} {
		slug = strings.ReplaceAll(slug, suffix, "")
	}
	return slug
}

func formatAmount(n int) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	return s[:len(s)-3] + "," + s[len(s)-3:]
}
