// Package server implements the built-in mock well-being backend.
//
// It mimics the real backend's HTTP surface so the dashboards can be
// developed and demoed without sensor hardware: randomized metrics in
// the documented ranges, open CORS, plain JSON over GET.
package server

import (
	"context"
	"encoding/json"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/classpulse/classpulse/internal/api"
	"github.com/classpulse/classpulse/internal/logger"
)

// modules are the course modules the instructor summary cycles through.
var modules = []string{"Module 1", "Module 2", "Module 3", "Module 4"}

// signalQualities are the labels the student endpoint picks from.
var signalQualities = []string{api.SignalGood, api.SignalMedium, api.SignalPoor}

// Server serves randomized well-being metrics.
type Server struct {
	addr string
	log  logger.Logger

	mu  sync.Mutex
	rng *rand.Rand

	httpSrv *http.Server
}

// New creates a server listening on addr, seeded from the clock.
func New(addr string) *Server {
	return NewWithSeed(addr, time.Now().UnixNano())
}

// NewWithSeed creates a server with a fixed random seed, for
// deterministic payloads in tests.
func NewWithSeed(addr string, seed int64) *Server {
	return &Server{
		addr: addr,
		log:  logger.NewEnvLogger("[serve]"),
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Handler returns the full route table, CORS included.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(api.PathStudentInsights, s.handleStudentInsights)
	mux.HandleFunc(api.PathInstructorSummary, s.handleInstructorSummary)
	mux.HandleFunc(api.PathHealth, s.handleHealth)
	return withCORS(mux)
}

// ListenAndServe blocks serving requests until Shutdown or failure.
func (s *Server) ListenAndServe() error {
	s.httpSrv = &http.Server{
		Addr:         s.addr,
		Handler:      s.Handler(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
	}
	s.log.Info("mock backend listening on %s", s.addr)
	return s.httpSrv.ListenAndServe()
}

// Shutdown gracefully stops a running server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpSrv == nil {
		return nil
	}
	return s.httpSrv.Shutdown(ctx)
}

func (s *Server) handleStudentInsights(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	s.mu.Lock()
	insights := api.StudentInsights{
		Focus:         s.uniform(0.4, 0.95),
		Stress:        s.uniform(0.2, 0.9),
		Engagement:    s.uniform(0.5, 1.0),
		Relaxation:    s.uniform(0.3, 0.9),
		SignalQuality: signalQualities[s.rng.Intn(len(signalQualities))],
	}
	s.mu.Unlock()

	writeJSON(w, insights)
}

func (s *Server) handleInstructorSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	s.mu.Lock()
	summary := api.InstructorSummary{
		Module:             modules[s.rng.Intn(len(modules))],
		AvgFocus:           s.uniform(0.5, 0.9),
		AvgStress:          s.uniform(0.3, 0.8),
		AvgEngagement:      s.uniform(0.5, 0.95),
		StudentsHighStress: 5 + s.rng.Intn(21),
		StudentsTotal:      30,
	}
	s.mu.Unlock()

	writeJSON(w, summary)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, api.Health{Status: "ok"})
}

// uniform draws from [lo, hi) rounded to two decimals, matching the
// precision the real backend reports. Caller holds s.mu.
func (s *Server) uniform(lo, hi float64) float64 {
	v := lo + s.rng.Float64()*(hi-lo)
	return float64(int(v*100+0.5)) / 100
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "encode error", http.StatusInternalServerError)
	}
}

// withCORS opens the API to any origin, like the real backend's
// development configuration.
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "*")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
