package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mvaldez/scholarmatch/internal/discover"
	"github.com/mvaldez/scholarmatch/internal/match"
	"github.com/mvaldez/scholarmatch/internal/models"
)

// listResponse is the ranked catalog view plus the aggregate stats the
// frontend renders above it.
type listResponse struct {
	Scholarships []match.Ranked `json:"scholarships"`
	Stats        match.Stats    `json:"stats"`
}

func (s *Server) handleListScholarships(c echo.Context) error {
	filters := models.FilterSet{
		Search:      c.QueryParam("search"),
		AmountRange: c.QueryParam("amount_range"),
		Category:    c.QueryParam("category"),
		Field:       c.QueryParam("field"),
		Location:    c.QueryParam("location"),
		Deadline:    c.QueryParam("deadline"),
		Sentiment:   c.QueryParam("sentiment"),
	}

	catalog := s.Store.Scholarships()
	ranked := match.Rank(catalog, filters, s.Store.Profile(), time.Now())

	return c.JSON(http.StatusOK, listResponse{
		Scholarships: ranked,
		Stats:        match.ComputeStats(catalog, len(ranked)),
	})
}

func (s *Server) handleGetStats(c echo.Context) error {
	catalog := s.Store.Scholarships()
	ranked := match.Rank(catalog, models.FilterSet{}, s.Store.Profile(), time.Now())
	return c.JSON(http.StatusOK, match.ComputeStats(catalog, len(ranked)))
}

func (s *Server) handleGetProfile(c echo.Context) error {
	return c.JSON(http.StatusOK, s.Store.Profile())
}

func (s *Server) handleUpdateProfile(c echo.Context) error {
	var profile models.StudentProfile
	if err := c.Bind(&profile); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid profile"})
	}

	// Re-insert interests through the dedup path; the wire format is an
	// ordered list that may contain repeats.
	interests := profile.Interests
	profile.Interests = nil
	for _, interest := range interests {
		profile.AddInterest(interest)
	}
	if profile.Interests == nil {
		profile.Interests = []string{}
	}

	s.Store.SetProfile(profile)
	return c.JSON(http.StatusOK, profile)
}

func (s *Server) handleResetProfile(c echo.Context) error {
	s.Store.ResetProfile()
	return c.JSON(http.StatusOK, s.Store.Profile())
}

type discoverRequest struct {
	Sources []string `json:"sources"`
	URL     string   `json:"url"`
}

// discoverResponse reports both counts so the frontend can tell "nothing
// found", "some added", and "found but all duplicates" apart.
type discoverResponse struct {
	Discovered   int                  `json:"discovered"`
	Added        int                  `json:"added"`
	Scholarships []models.Scholarship `json:"scholarships"`
}

func (s *Server) handleDiscover(c echo.Context) error {
	var req discoverRequest
	// Body is optional; no body means the default source registry.
	_ = c.Bind(&req)

	batch, err := s.Discoverer.Discover(c.Request().Context(), req.Sources)
	if err != nil {
		return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
	}

	added := s.Store.Ingest(batch)
	return c.JSON(http.StatusOK, discoverResponse{
		Discovered:   len(batch),
		Added:        added,
		Scholarships: batch,
	})
}

func (s *Server) handleDiscoverFromURL(c echo.Context) error {
	var req discoverRequest
	if err := c.Bind(&req); err != nil || req.URL == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "A url is required"})
	}

	batch, err := s.Discoverer.DiscoverFromURL(c.Request().Context(), req.URL)
	if err != nil {
		if errors.Is(err, discover.ErrInvalidURL) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
	}

	added := s.Store.Ingest(batch)
	return c.JSON(http.StatusOK, discoverResponse{
		Discovered:   len(batch),
		Added:        added,
		Scholarships: batch,
	})
}

type sentimentRequest struct {
	Text string `json:"text"`
}

func (s *Server) handleAnalyzeSentiment(c echo.Context) error {
	var req sentimentRequest
	if err := c.Bind(&req); err != nil || req.Text == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Text is required"})
	}

	result, err := s.Sentiment.Analyze(c.Request().Context(), req.Text)
	if err != nil {
		return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, result)
}
