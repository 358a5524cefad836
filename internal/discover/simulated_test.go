package discover

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mvaldez/scholarmatch/internal/models"
)

var testNow = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

func testRegistry() *Registry {
	return &Registry{Sources: []SourceConfig{
		{Name: "TopScholarships.com", Active: true},
		{Name: "GrantFinder.org", Active: true},
		{Name: "Dormant.net", Active: false},
	}}
}

func TestSourceConfigBounds(t *testing.T) {
	tests := []struct {
		name    string
		cfg     SourceConfig
		wantMin int
		wantMax int
	}{
		{"defaults", SourceConfig{}, 5, 14},
		{"explicit", SourceConfig{MinItems: 3, MaxItems: 8}, 3, 8},
		{"min only", SourceConfig{MinItems: 10}, 10, 14},
		{"max below min clamps", SourceConfig{MinItems: 20, MaxItems: 6}, 20, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			min, max := tt.cfg.Bounds()
			if min != tt.wantMin || max != tt.wantMax {
				t.Errorf("got %d-%d, want %d-%d", min, max, tt.wantMin, tt.wantMax)
			}
		})
	}
}

func TestDiscover_HonorsSourceBounds(t *testing.T) {
	reg := &Registry{Sources: []SourceConfig{
		{Name: "Tiny.org", Active: true, MinItems: 2, MaxItems: 2},
	}}
	for seed := int64(0); seed < 5; seed++ {
		d := NewDeterministic(reg, seed, testNow)
		batch, err := d.Discover(context.Background(), nil)
		if err != nil {
			t.Fatalf("discover: %v", err)
		}
		if len(batch) != 2 {
			t.Fatalf("seed %d: got %d records, want exactly 2", seed, len(batch))
		}
	}
}

func TestLoadRegistry(t *testing.T) {
	reg, err := LoadRegistry()
	if err != nil {
		t.Fatalf("load registry: %v", err)
	}
	names := reg.ActiveNames()
	if len(names) == 0 {
		t.Fatal("registry has no active sources")
	}
	for _, name := range names {
		if name == "" {
			t.Fatal("active source with empty name")
		}
	}

	if min, max := reg.Lookup("GrantFinder.org").Bounds(); min != 8 || max != 12 {
		t.Errorf("GrantFinder.org bounds: got %d-%d, want 8-12", min, max)
	}
	if min, max := reg.Lookup("unknown.example").Bounds(); min != 5 || max != 14 {
		t.Errorf("unknown source bounds: got %d-%d, want defaults 5-14", min, max)
	}
}

func TestDiscover_UsesDefaultSources(t *testing.T) {
	d := NewDeterministic(testRegistry(), 1, testNow)
	batch, err := d.Discover(context.Background(), nil)
	if err != nil {
		t.Fatalf("discover: %v", err)
	}
	// 2 active sources, 5-14 records each.
	if len(batch) < 10 || len(batch) > 28 {
		t.Fatalf("unexpected batch size %d", len(batch))
	}

	sources := map[string]bool{}
	for _, s := range batch {
		sources[s.Source] = true
	}
	if sources["Dormant.net"] {
		t.Fatal("inactive source produced records")
	}
	if !sources["TopScholarships.com"] || !sources["GrantFinder.org"] {
		t.Fatalf("missing sources in batch: %v", sources)
	}
}

func TestDiscover_RecordsAreWellFormed(t *testing.T) {
	d := NewDeterministic(testRegistry(), 42, testNow)
	batch, err := d.Discover(context.Background(), []string{"EduAwards.net"})
	if err != nil {
		t.Fatalf("discover: %v", err)
	}
	if len(batch) == 0 {
		t.Fatal("empty batch")
	}

	runID := batch[0].SourceRunID
	for i, s := range batch {
		if s.ID == "" || s.Title == "" || s.Provider == "" {
			t.Fatalf("record %d missing identity fields: %+v", i, s)
		}
		if s.Source != "EduAwards.net" {
			t.Errorf("record %d source: got %q", i, s.Source)
		}
		if s.ScrapedAt == "" {
			t.Errorf("record %d missing scrapedAt", i)
		}
		if s.SourceRunID != runID {
			t.Errorf("record %d has a different run id", i)
		}
		if s.Sentiment == nil || *s.Sentiment < 0.6 || *s.Sentiment > 0.9 {
			t.Errorf("record %d sentiment out of range: %v", i, s.Sentiment)
		}
		if _, ok := models.ParseDeadline(s.Deadline); !ok {
			t.Errorf("record %d deadline unparseable: %q", i, s.Deadline)
		}
	}
}

func TestDiscover_Deterministic(t *testing.T) {
	a, _ := NewDeterministic(testRegistry(), 7, testNow).Discover(context.Background(), []string{"X.com"})
	b, _ := NewDeterministic(testRegistry(), 7, testNow).Discover(context.Background(), []string{"X.com"})
	if len(a) != len(b) {
		t.Fatalf("batch sizes differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].ID != b[i].ID || a[i].Amount != b[i].Amount || a[i].Deadline != b[i].Deadline {
			t.Fatalf("record %d differs between identical runs", i)
		}
	}
}

func TestDiscoverFromURL(t *testing.T) {
	d := NewDeterministic(testRegistry(), 3, testNow)
	batch, err := d.DiscoverFromURL(context.Background(), "https://scholarships.example.org/list")
	if err != nil {
		t.Fatalf("discover from url: %v", err)
	}
	if len(batch) < 3 || len(batch) > 7 {
		t.Fatalf("unexpected batch size %d", len(batch))
	}
	for _, s := range batch {
		if s.Source != "scholarships.example.org" {
			t.Fatalf("source should be the hostname, got %q", s.Source)
		}
	}
}

func TestDiscoverFromURL_Invalid(t *testing.T) {
	d := NewDeterministic(testRegistry(), 3, testNow)
	for _, raw := range []string{"", "   ", "not a url", "/relative/only"} {
		if _, err := d.DiscoverFromURL(context.Background(), raw); !errors.Is(err, ErrInvalidURL) {
			t.Errorf("url %q: expected ErrInvalidURL, got %v", raw, err)
		}
	}
}

func TestDiscover_CancelledContext(t *testing.T) {
	d := NewSimulated(testRegistry())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := d.Discover(ctx, nil); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestSourceSlug(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"TopScholarships.com", "topscholarships"},
		{"GrantFinder.org", "grantfinder"},
		{"EduAwards.net", "eduawards"},
		{"plain", "plain"},
	}
	for _, tt := range tests {
		if got := sourceSlug(tt.in); got != tt.want {
			t.Errorf("sourceSlug(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
