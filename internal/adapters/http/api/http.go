// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/okian/awards/internal/domain/types"
)

// maxBodyBytes caps request bodies. A championship event carries a few
// hundred teams, far below this.
const maxBodyBytes = 8 << 20

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	ProgramDependencies
	EligibilityDependencies
	SnapshotDependencies
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler      *HealthHandler
	statsHandler       *StatsHandler
	programsHandler    *ProgramsHandler
	eligibilityHandler *EligibilityHandler
	snapshotHandler    *SnapshotHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:      NewHealthHandler(),
		statsHandler:       NewStatsHandler(statsProvider),
		programsHandler:    NewProgramsHandler(deps),
		eligibilityHandler: NewEligibilityHandler(deps),
		snapshotHandler:    NewSnapshotHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("GET /stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("GET /programs", MetricsMiddleware(s.programsHandler.HandleGetPrograms, "programs"))
	mux.HandleFunc("POST /eligibility", MetricsMiddleware(s.eligibilityHandler.HandlePostEligibility, "eligibility"))
	mux.HandleFunc("GET /events/{id}/eligibility", MetricsMiddleware(s.eligibilityHandler.HandleGetEventEligibility, "event_eligibility"))
	mux.HandleFunc("PUT /events/{id}/snapshot", MetricsMiddleware(s.snapshotHandler.HandlePutSnapshot, "snapshot"))
	mux.HandleFunc("GET /events/{id}/snapshot", MetricsMiddleware(s.snapshotHandler.HandleGetSnapshot, "snapshot"))
	mux.HandleFunc("DELETE /events/{id}/snapshot", MetricsMiddleware(s.snapshotHandler.HandleDeleteSnapshot, "snapshot"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// fail writes err with the status its kind maps to.
func fail(w http.ResponseWriter, err error) {
	status, code := statusFor(err)
	writeError(w, status, code, err)
}

// decodeJSON reads a single JSON document from r into v.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("request body must contain a single JSON document")
	}
	return nil
}

// ProgramDependencies lists the supported programs.
type ProgramDependencies interface {
	Programs(ctx context.Context) []types.ProgramEntry
}
