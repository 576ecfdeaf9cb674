// Package server exposes the matching and region engines over a small JSON
// API so the desktop app can call them without shelling out.
package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/bizzlechizzle/atlas-cli/internal/catalog"
	"github.com/bizzlechizzle/atlas-cli/internal/matcher"
	"github.com/bizzlechizzle/atlas-cli/internal/region"
)

// Server wires the engines behind HTTP handlers. All dependencies are
// injected; the server owns none of them.
type Server struct {
	matcher  *matcher.Matcher
	resolver *region.Resolver
	dataset  *region.Dataset
	source   catalog.Source
	adjOpts  region.AdjacentOptions
	workers  int
}

// New builds a Server. workers bounds batch parallelism for /match.
func New(m *matcher.Matcher, r *region.Resolver, ds *region.Dataset, src catalog.Source, adjOpts region.AdjacentOptions, workers int) *Server {
	return &Server{
		matcher:  m,
		resolver: r,
		dataset:  ds,
		source:   src,
		adjOpts:  adjOpts,
		workers:  workers,
	}
}

// Router builds the chi router with all routes mounted.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	}))

	r.Get("/health", s.handleHealth)
	r.Post("/match", s.handleMatch)
	r.Route("/regions", func(r chi.Router) {
		r.Post("/resolve", s.handleResolve)
		r.Get("/adjacent", s.handleAdjacent)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// matchRequest is the /match body. State narrows the catalog snapshot the
// points are classified against; empty means the whole catalog.
type matchRequest struct {
	Points []catalog.ReferencePoint `json:"points"`
	State  string                   `json:"state,omitempty"`
}

func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req matchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Points) == 0 {
		writeError(w, http.StatusBadRequest, "points is required")
		return
	}

	candidates, err := s.source.Snapshot(r.Context(), req.State)
	if err != nil {
		zap.L().Error("catalog snapshot failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "catalog unavailable")
		return
	}

	report, err := s.matcher.BatchMatchParallel(r.Context(), req.Points, candidates, s.workers)
	if err != nil {
		zap.L().Error("batch match failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "match failed")
		return
	}

	writeJSON(w, http.StatusOK, report)
}

// resolveRequest is the /regions/resolve body. Every field is optional.
type resolveRequest struct {
	AddressCounty string   `json:"addressCounty,omitempty"`
	County        string   `json:"county,omitempty"`
	AddressState  string   `json:"addressState,omitempty"`
	State         string   `json:"state,omitempty"`
	Country       string   `json:"country,omitempty"`
	Continent     string   `json:"continent,omitempty"`
	Lat           *float64 `json:"latitude,omitempty"`
	Lng           *float64 `json:"longitude,omitempty"`
}

func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	var req resolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	fields := s.resolver.Resolve(region.Input{
		AddressCounty: req.AddressCounty,
		County:        req.County,
		AddressState:  req.AddressState,
		State:         req.State,
		Country:       req.Country,
		Continent:     req.Continent,
		Lat:           req.Lat,
		Lng:           req.Lng,
	})

	writeJSON(w, http.StatusOK, fields)
}

func (s *Server) handleAdjacent(w http.ResponseWriter, r *http.Request) {
	state := r.URL.Query().Get("state")
	if state == "" {
		writeError(w, http.StatusBadRequest, "state is required")
		return
	}

	var lat, lng *float64
	if latStr := r.URL.Query().Get("lat"); latStr != "" {
		v, err := strconv.ParseFloat(latStr, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid lat")
			return
		}
		lat = &v
	}
	if lngStr := r.URL.Query().Get("lng"); lngStr != "" {
		v, err := strconv.ParseFloat(lngStr, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid lng")
			return
		}
		lng = &v
	}

	regions := s.dataset.FilterAdjacentRegions(state, lat, lng, s.adjOpts)
	if regions == nil {
		regions = []string{}
	}
	writeJSON(w, http.StatusOK, map[string][]string{"regions": regions})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Error("encode response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
