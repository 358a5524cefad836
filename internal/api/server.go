// Package api exposes the engine to the local browser frontend over HTTP.
// The server is single-user by design; there is no auth layer, only CORS
// scoped to the frontend origins.
package api

import (
	"net/http"
	"os"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/mvaldez/scholarmatch/internal/catalog"
	"github.com/mvaldez/scholarmatch/internal/discover"
	"github.com/mvaldez/scholarmatch/internal/sentiment"
)

type Server struct {
	Store      *catalog.Store
	Discoverer discover.Discoverer
	Sentiment  sentiment.Analyzer
	Echo       *echo.Echo
}

func NewServer(store *catalog.Store, discoverer discover.Discoverer, analyzer sentiment.Analyzer) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// CORS: allow frontend origins from env or default to localhost
	allowedOrigins := []string{"http://localhost:5173", "http://localhost:3000"}
	if extra := os.Getenv("CORS_ORIGINS"); extra != "" {
		for _, o := range strings.Split(extra, ",") {
			o = strings.TrimSpace(o)
			if o != "" {
				allowedOrigins = append(allowedOrigins, o)
			}
		}
	}
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	s := &Server{
		Store:      store,
		Discoverer: discoverer,
		Sentiment:  analyzer,
		Echo:       e,
	}

	s.routes()
	return s
}

func (s *Server) routes() {
	s.Echo.GET("/health", s.handleHealth)

	api := s.Echo.Group("/api/v1")
	api.GET("/scholarships", s.handleListScholarships)
	api.GET("/stats", s.handleGetStats)
	api.GET("/profile", s.handleGetProfile)
	api.PUT("/profile", s.handleUpdateProfile)
	api.POST("/profile/reset", s.handleResetProfile)
	api.POST("/discover", s.handleDiscover)
	api.POST("/discover/url", s.handleDiscoverFromURL)
	api.POST("/sentiment", s.handleAnalyzeSentiment)
}

func (s *Server) Start(port string) error {
	return s.Echo.Start(":" + port)
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
