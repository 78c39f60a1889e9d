// Package http exposes a transition table and a snapshot store over a JSON
// HTTP API: read-only documentation and graph queries, plus stateful
// instance management backed by a ports.SnapshotStore.
package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/aretw0/automat/internal/docgen"
	"github.com/aretw0/automat/internal/logging"
	"github.com/aretw0/automat/internal/query"
	"github.com/aretw0/automat/internal/runtime"
	"github.com/aretw0/automat/pkg/domain"
	"github.com/aretw0/automat/pkg/observability"
	"github.com/aretw0/automat/pkg/ports"
)

// Server routes API requests onto one table and one snapshot store.
type Server struct {
	table      *domain.Table
	store      ports.SnapshotStore
	metrics    *observability.Metrics
	logger     *slog.Logger
	maxHistory int
}

// Option configures the server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMetrics wires Prometheus counters into instance activity.
func WithMetrics(m *observability.Metrics) Option {
	return func(s *Server) {
		s.metrics = m
	}
}

// WithMaxHistory sets the history capacity for instances created by the API.
func WithMaxHistory(capacity int) Option {
	return func(s *Server) {
		s.maxHistory = capacity
	}
}

// NewHandler builds the chi router for the given table and store.
func NewHandler(table *domain.Table, store ports.SnapshotStore, opts ...Option) http.Handler {
	s := &Server{
		table:      table,
		store:      store,
		logger:     logging.NewNop(),
		maxHistory: runtime.DefaultMaxHistory,
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()

	r.Get("/docs", s.handleDocs)
	r.Get("/docs/diagram", s.handleDiagram)
	r.Get("/docs/table", s.handleTable)
	r.Get("/stats", s.handleStats)

	r.Get("/graph/reachable", s.handleReachable)
	r.Get("/graph/path", s.handlePath)

	r.Post("/instances", s.handleCreate)
	r.Get("/instances", s.handleList)
	r.Get("/instances/{id}", s.handleGet)
	r.Post("/instances/{id}/transition", s.handleTransition)
	r.Delete("/instances/{id}", s.handleDelete)

	return r
}

// -- Documentation endpoints --

func (s *Server) handleDocs(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	fmt.Fprint(w, docgen.FullDocumentation(s.table))
}

func (s *Server) handleDiagram(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, docgen.Mermaid(s.table))
}

func (s *Server) handleTable(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	fmt.Fprint(w, docgen.TransitionTable(s.table))
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, docgen.Statistics(s.table))
}

// -- Graph query endpoints --

func (s *Server) handleReachable(w http.ResponseWriter, r *http.Request) {
	from := domain.State(r.URL.Query().Get("from"))
	if !s.table.HasState(from) {
		writeError(w, http.StatusNotFound, fmt.Sprintf("unknown state %q", from))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"from":      from,
		"reachable": query.ReachableStates(s.table, from),
	})
}

func (s *Server) handlePath(w http.ResponseWriter, r *http.Request) {
	from := domain.State(r.URL.Query().Get("from"))
	to := domain.State(r.URL.Query().Get("to"))
	if !s.table.HasState(from) || !s.table.HasState(to) {
		writeError(w, http.StatusNotFound, "unknown state")
		return
	}
	path := query.ShortestPath(s.table, from, to)
	writeJSON(w, http.StatusOK, map[string]any{
		"from":  from,
		"to":    to,
		"found": path != nil,
		"path":  path,
	})
}

// -- Instance endpoints --

type instanceResponse struct {
	ID          string                `json:"id"`
	Current     domain.State          `json:"current"`
	ValidInputs []domain.Input        `json:"valid_inputs"`
	History     []domain.HistoryEntry `json:"history,omitempty"`
}

func (s *Server) instanceResponse(id string, inst *runtime.Instance, withHistory bool) instanceResponse {
	resp := instanceResponse{
		ID:          id,
		Current:     inst.CurrentState(),
		ValidInputs: inst.ValidInputs(),
	}
	if withHistory {
		resp.History = inst.History()
	}
	return resp
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	id := uuid.NewString()
	inst := runtime.NewInstance(s.table, runtime.WithMaxHistory(s.maxHistory))

	if err := s.store.Save(r.Context(), id, inst.Snapshot()); err != nil {
		s.logger.Error("failed to save instance", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to persist instance")
		return
	}

	s.logger.Info("instance created", "id", id, "machine", s.table.Name())
	writeJSON(w, http.StatusCreated, s.instanceResponse(id, inst, false))
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	ids, err := s.store.List(r.Context())
	if err != nil {
		s.logger.Error("failed to list instances", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list instances")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"instances": ids})
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	inst, ok := s.loadInstance(w, r, id)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, s.instanceResponse(id, inst, true))
}

type transitionRequest struct {
	Input domain.Input `json:"input"`
}

func (s *Server) handleTransition(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req transitionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Input == "" {
		writeError(w, http.StatusBadRequest, "input is required")
		return
	}

	inst, ok := s.loadInstance(w, r, id)
	if !ok {
		return
	}

	if s.metrics != nil {
		inst.OnAnyTransition(s.metrics.TransitionObserver(s.table.Name()))
	}

	if _, err := inst.Transition(req.Input); err != nil {
		var invalid *domain.InvalidTransitionError
		if errors.As(err, &invalid) {
			if s.metrics != nil {
				s.metrics.Rejected(s.table.Name(), invalid.State, invalid.Input)
			}
			writeError(w, http.StatusConflict, invalid.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "transition failed")
		return
	}

	if err := s.store.Save(r.Context(), id, inst.Snapshot()); err != nil {
		s.logger.Error("failed to save instance", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to persist instance")
		return
	}

	writeJSON(w, http.StatusOK, s.instanceResponse(id, inst, true))
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.store.Delete(r.Context(), id); err != nil {
		s.logger.Error("failed to delete instance", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to delete instance")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// loadInstance rebuilds a runtime instance from its stored snapshot.
// Writes the error response and returns false when the instance cannot be
// produced.
func (s *Server) loadInstance(w http.ResponseWriter, r *http.Request, id string) (*runtime.Instance, bool) {
	snap, err := s.store.Load(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrSnapshotNotFound) {
			writeError(w, http.StatusNotFound, "instance not found")
			return nil, false
		}
		s.logger.Error("failed to load instance", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load instance")
		return nil, false
	}

	inst := runtime.NewInstance(s.table, runtime.WithMaxHistory(s.maxHistory))
	if err := inst.Restore(snap); err != nil {
		s.logger.Error("stored snapshot does not match table", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "stored snapshot does not match machine definition")
		return nil, false
	}
	return inst, true
}

// -- Helpers --

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
