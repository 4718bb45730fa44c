// Package http exposes a read-only debug API over the animator: known nodes,
// their running animations, recorded timeline trails, and Prometheus metrics.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/avezina/kinetic/pkg/domain"
	"github.com/avezina/kinetic/pkg/layer"
)

// Engine defines the surface the debug server reads. *kinetic.Animator
// satisfies it.
type Engine interface {
	Nodes() []*layer.Node
	Node(id string) (*layer.Node, error)
	Trails(ctx context.Context) ([]string, error)
	Trail(ctx context.Context, name string) ([]domain.Record, error)
}

// Server serves the debug API.
type Server struct {
	engine   Engine
	gatherer prometheus.Gatherer
	logger   *slog.Logger
}

// Option configures the Server.
type Option func(*Server)

// WithGatherer serves Prometheus metrics from the given gatherer on /metrics.
func WithGatherer(g prometheus.Gatherer) Option {
	return func(s *Server) {
		s.gatherer = g
	}
}

// WithLogger sets the request-failure logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// nodeSummary is the wire shape of one node.
type nodeSummary struct {
	ID            string             `json:"id"`
	Attached      bool               `json:"attached"`
	Values        map[string]any     `json:"values,omitempty"`
	AnimationKeys []string           `json:"animation_keys,omitempty"`
	Animations    []domain.Animation `json:"animations,omitempty"`
}

// NewHandler creates the HTTP handler for the debug API.
func NewHandler(engine Engine, opts ...Option) http.Handler {
	s := &Server{
		engine: engine,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/nodes", s.listNodes)
	r.Get("/nodes/{id}", s.getNode)
	r.Get("/nodes/{id}/animations", s.getAnimations)
	r.Get("/trails", s.listTrails)
	r.Get("/trails/{name}", s.getTrail)

	if s.gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}
	return r
}

func (s *Server) listNodes(w http.ResponseWriter, r *http.Request) {
	nodes := s.engine.Nodes()
	out := make([]nodeSummary, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, nodeSummary{
			ID:            n.ID(),
			Attached:      n.Attached(),
			AnimationKeys: n.AnimationKeys(),
		})
	}
	s.writeJSON(w, out)
}

func (s *Server) getNode(w http.ResponseWriter, r *http.Request) {
	n, err := s.engine.Node(chi.URLParam(r, "id"))
	if err != nil {
		s.notFoundOr500(w, err, domain.ErrNodeNotFound)
		return
	}
	s.writeJSON(w, nodeSummary{
		ID:            n.ID(),
		Attached:      n.Attached(),
		Values:        n.Values(),
		AnimationKeys: n.AnimationKeys(),
		Animations:    n.Animations(),
	})
}

func (s *Server) getAnimations(w http.ResponseWriter, r *http.Request) {
	n, err := s.engine.Node(chi.URLParam(r, "id"))
	if err != nil {
		s.notFoundOr500(w, err, domain.ErrNodeNotFound)
		return
	}
	s.writeJSON(w, n.Animations())
}

func (s *Server) listTrails(w http.ResponseWriter, r *http.Request) {
	trails, err := s.engine.Trails(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if trails == nil {
		trails = []string{}
	}
	s.writeJSON(w, trails)
}

func (s *Server) getTrail(w http.ResponseWriter, r *http.Request) {
	records, err := s.engine.Trail(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		s.notFoundOr500(w, err, domain.ErrTrailNotFound)
		return
	}
	s.writeJSON(w, records)
}

func (s *Server) notFoundOr500(w http.ResponseWriter, err, sentinel error) {
	if errors.Is(err, sentinel) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", "err", err)
	}
}
