package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/mvaldez/scholarmatch/internal/catalog"
	"github.com/mvaldez/scholarmatch/internal/discover"
	"github.com/mvaldez/scholarmatch/internal/models"
	"github.com/mvaldez/scholarmatch/internal/sentiment"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	persister, err := catalog.NewFilePersister(t.TempDir())
	if err != nil {
		t.Fatalf("new persister: %v", err)
	}
	store := catalog.NewStore(persister)

	reg := &discover.Registry{Sources: []discover.SourceConfig{{Name: "Test.com", Active: true}}}
	discoverer := discover.NewDeterministic(reg, 1, time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC))

	return NewServer(store, discoverer, &sentiment.KeywordAnalyzer{Latency: 0})
}

func doJSON(t *testing.T, srv *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	srv.Echo.ServeHTTP(rec, req)
	return rec
}

func TestListScholarships(t *testing.T) {
	srv := newTestServer(t)
	rec := doJSON(t, srv, http.MethodGet, "/api/v1/scholarships", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d", rec.Code)
	}

	var resp struct {
		Scholarships []struct {
			Title      string `json:"title"`
			MatchScore int    `json:"matchScore"`
		} `json:"scholarships"`
		Stats struct {
			TotalScholarships int `json:"totalScholarships"`
			Matching          int `json:"matchingScholarships"`
		} `json:"stats"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Scholarships) == 0 {
		t.Fatal("expected seeded scholarships")
	}
	if resp.Stats.TotalScholarships != len(resp.Scholarships) {
		t.Fatalf("no filters set: total %d should equal matching %d", resp.Stats.TotalScholarships, len(resp.Scholarships))
	}
	for i, s := range resp.Scholarships {
		if s.MatchScore < 0 || s.MatchScore > 100 {
			t.Fatalf("entry %d score out of range: %d", i, s.MatchScore)
		}
	}
}

func TestListScholarships_Filtered(t *testing.T) {
	srv := newTestServer(t)
	rec := doJSON(t, srv, http.MethodGet, "/api/v1/scholarships?search=merit+excellence", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d", rec.Code)
	}

	var resp struct {
		Scholarships []struct {
			Title string `json:"title"`
		} `json:"scholarships"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Scholarships) != 1 || resp.Scholarships[0].Title != "Merit Excellence Scholarship" {
		t.Fatalf("unexpected filtered result: %+v", resp.Scholarships)
	}
}

func TestProfileRoundTrip(t *testing.T) {
	srv := newTestServer(t)

	body := `{"name":"Dana","gpa":"3.8","major":"STEM","interests":["robotics","Robotics","coding"]}`
	rec := doJSON(t, srv, http.MethodPut, "/api/v1/profile", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("put status: got %d, body %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, srv, http.MethodGet, "/api/v1/profile", "")
	var profile models.StudentProfile
	if err := json.Unmarshal(rec.Body.Bytes(), &profile); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if profile.Name != "Dana" || profile.GPA != "3.8" {
		t.Fatalf("profile: %+v", profile)
	}
	if len(profile.Interests) != 2 {
		t.Fatalf("interests should be deduplicated on insert: %v", profile.Interests)
	}
}

func TestDiscoverEndpoint(t *testing.T) {
	srv := newTestServer(t)
	before := len(srv.Store.Scholarships())

	rec := doJSON(t, srv, http.MethodPost, "/api/v1/discover", `{"sources":["Test.com"]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, body %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Discovered int `json:"discovered"`
		Added      int `json:"added"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Discovered == 0 {
		t.Fatal("expected discovered records")
	}
	if got := len(srv.Store.Scholarships()); got != before+resp.Added {
		t.Fatalf("catalog size %d, want %d", got, before+resp.Added)
	}
}

func TestDiscoverFromURLEndpoint_InvalidURL(t *testing.T) {
	srv := newTestServer(t)
	rec := doJSON(t, srv, http.MethodPost, "/api/v1/discover/url", `{"url":"/not-absolute"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want 400", rec.Code)
	}
}

func TestSentimentEndpoint(t *testing.T) {
	srv := newTestServer(t)
	rec := doJSON(t, srv, http.MethodPost, "/api/v1/sentiment", `{"text":"excellent and amazing program"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, body %s", rec.Code, rec.Body.String())
	}

	var result sentiment.Result
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if result.Label != sentiment.LabelPositive {
		t.Fatalf("label: got %q", result.Label)
	}

	rec = doJSON(t, srv, http.MethodPost, "/api/v1/sentiment", `{"text":""}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("empty text should 400, got %d", rec.Code)
	}
}
