// Package stub is an in-memory stand-in for the remote trip service. It
// speaks the exact wire contract the client expects (snake_case point keys,
// opaque Authorization credential, server-assigned ids) without a database,
// so the editor can be developed and demonstrated offline.
//
// Sending the header "X-Debug-Fail: 1" with any write makes it fail with
// 500, which is the easiest way to exercise the client's abort-and-shake
// paths by hand.
package stub

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/mkraev/trip-planner/internal/middleware"
)

// maxBodySize caps write payloads; a point is a few hundred bytes.
const maxBodySize = 64 << 10

// point is the service-side wire record. The stub stores exactly what it
// serves, so the JSON tags double as its schema.
type point struct {
	ID          string   `json:"id"`
	Type        string   `json:"type"`
	Destination string   `json:"destination"`
	DateFrom    string   `json:"date_from"`
	DateTo      string   `json:"date_to"`
	BasePrice   int      `json:"base_price"`
	IsFavorite  bool     `json:"is_favorite"`
	Offers      []string `json:"offers"`
}

type picture struct {
	Src         string `json:"src"`
	Description string `json:"description"`
}

type destination struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Pictures    []picture `json:"pictures"`
}

type offer struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Price int    `json:"price"`
}

type offerGroup struct {
	Type   string  `json:"type"`
	Offers []offer `json:"offers"`
}

// Server holds the in-memory datasets. Safe for concurrent use — unlike the
// client core, this side faces a real HTTP listener.
type Server struct {
	mu           sync.Mutex
	points       []point
	destinations []destination
	offers       []offerGroup
}

// NewServer returns a stub pre-seeded with sample data.
func NewServer() *Server {
	s := &Server{}
	s.seed()
	return s
}

// Handler builds the full HTTP handler: router, request logging, body size
// cap, CORS, and the credential check.
func (s *Server) Handler(log *slog.Logger, corsOrigins []string) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(corsOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(maxBodySize))
	r.Use(requireCredential)

	r.Get("/points", s.listPoints)
	r.Post("/points", s.createPoint)
	r.Put("/points/{id}", s.updatePoint)
	r.Delete("/points/{id}", s.deletePoint)
	r.Get("/destinations", s.listDestinations)
	r.Get("/offers", s.listOffers)

	return r
}

// requireCredential rejects requests without an Authorization header. The
// credential is opaque: presence is all the stub checks.
func requireCredential(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "" {
			writeError(w, http.StatusUnauthorized, "missing credential")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// failInjected reports whether the request asked for a simulated failure.
func failInjected(w http.ResponseWriter, r *http.Request) bool {
	if r.Header.Get("X-Debug-Fail") == "" {
		return false
	}
	writeError(w, http.StatusInternalServerError, "injected failure")
	return true
}

func (s *Server) listPoints(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	points := make([]point, len(s.points))
	copy(points, s.points)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, points)
}

func (s *Server) createPoint(w http.ResponseWriter, r *http.Request) {
	if failInjected(w, r) {
		return
	}
	var p point
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "malformed point")
		return
	}
	p.ID = uuid.NewString()
	s.mu.Lock()
	s.points = append(s.points, p)
	s.mu.Unlock()
	writeJSON(w, http.StatusCreated, p)
}

func (s *Server) updatePoint(w http.ResponseWriter, r *http.Request) {
	if failInjected(w, r) {
		return
	}
	id := chi.URLParam(r, "id")
	var p point
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "malformed point")
		return
	}
	p.ID = id

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.points {
		if s.points[i].ID == id {
			s.points[i] = p
			writeJSON(w, http.StatusOK, p)
			return
		}
	}
	writeError(w, http.StatusNotFound, "point not found")
}

func (s *Server) deletePoint(w http.ResponseWriter, r *http.Request) {
	if failInjected(w, r) {
		return
	}
	id := chi.URLParam(r, "id")

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.points {
		if s.points[i].ID == id {
			s.points = append(s.points[:i], s.points[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	writeError(w, http.StatusNotFound, "point not found")
}

func (s *Server) listDestinations(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	destinations := make([]destination, len(s.destinations))
	copy(destinations, s.destinations)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, destinations)
}

func (s *Server) listOffers(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	offers := make([]offerGroup, len(s.offers))
	copy(offers, s.offers)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, offers)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
