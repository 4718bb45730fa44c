package main

import (
	"log/slog"
	"time"

	"github.com/avezina/kinetic"
	"github.com/avezina/kinetic/internal/config"
	"github.com/avezina/kinetic/internal/logging"
	"github.com/avezina/kinetic/pkg/adapters/memory"
	redisAdapter "github.com/avezina/kinetic/pkg/adapters/redis"
	"github.com/avezina/kinetic/pkg/observability"
	"github.com/avezina/kinetic/pkg/ports"
	"github.com/prometheus/client_golang/prometheus"
)

// buildEngine assembles the animator, its timeline store and the metrics
// registry from the loaded configuration.
func buildEngine(cfg config.Config) (*kinetic.Animator, ports.TimelineStore, *prometheus.Registry) {
	var store ports.TimelineStore
	switch cfg.Recorder.Backend {
	case "redis":
		opts := []redisAdapter.Option{}
		if cfg.Recorder.Redis.Prefix != "" {
			opts = append(opts, redisAdapter.WithPrefix(cfg.Recorder.Redis.Prefix))
		}
		if cfg.Recorder.Redis.TTL > 0 {
			opts = append(opts, redisAdapter.WithTTL(time.Duration(cfg.Recorder.Redis.TTL)))
		}
		store = redisAdapter.New(cfg.Recorder.Redis.Addr, cfg.Recorder.Redis.Password, cfg.Recorder.Redis.DB, opts...)
	default:
		store = memory.NewStore()
	}

	reg := prometheus.NewRegistry()
	a := kinetic.New(
		kinetic.WithBaseline(cfg.Baseline.Duration, cfg.Baseline.Curve),
		kinetic.WithRecorder(store, cfg.Recorder.Trail),
		kinetic.WithMetrics(observability.NewMetrics(reg)),
		kinetic.WithLogger(logging.New(slog.LevelInfo)),
	)
	return a, store, reg
}
