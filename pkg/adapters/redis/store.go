package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/avezina/kinetic/pkg/domain"
	backend "github.com/redis/go-redis/v9"
)

// Store implements ports.TimelineStore using Redis. Each trail is a list of
// JSON records; an index ZSET tracks the known trail names.
type Store struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

// Option configures the Store.
type Option func(*Store)

// WithTTL sets the expiration for trails.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		s.ttl = ttl
	}
}

// WithPrefix sets the key prefix for trails.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// New creates a new Redis store with options.
func New(address, password string, db int, opts ...Option) *Store {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis store from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	store := &Store{
		client: client,
		prefix: "kinetic:trail:",
		ttl:    0, // No expiration by default
	}

	for _, opt := range opts {
		opt(store)
	}

	return store
}

func (s *Store) key(trail string) string {
	return s.prefix + trail
}

func (s *Store) indexKey() string {
	return s.prefix + "index"
}

// Append adds one record to the end of a trail.
func (s *Store) Append(ctx context.Context, trail string, rec domain.Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	pipe := s.client.Pipeline()

	// 1. Append to the trail list, refreshing the TTL.
	pipe.RPush(ctx, s.key(trail), data)
	if s.ttl > 0 {
		pipe.Expire(ctx, s.key(trail), s.ttl)
	}

	// 2. Track the trail in the index (ZSET, scored by last write).
	pipe.ZAdd(ctx, s.indexKey(), backend.Z{
		Score:  float64(time.Now().Unix()),
		Member: trail,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to append record: %w", err)
	}
	return nil
}

// List returns a trail's records in append order.
func (s *Store) List(ctx context.Context, trail string) ([]domain.Record, error) {
	raw, err := s.client.LRange(ctx, s.key(trail), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read trail: %w", err)
	}
	if len(raw) == 0 {
		return nil, domain.ErrTrailNotFound
	}

	records := make([]domain.Record, 0, len(raw))
	for _, item := range raw {
		var rec domain.Record
		if err := json.Unmarshal([]byte(item), &rec); err != nil {
			return nil, fmt.Errorf("failed to unmarshal record: %w", err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// Delete removes a trail and unindexes it.
func (s *Store) Delete(ctx context.Context, trail string) error {
	pipe := s.client.Pipeline()
	pipe.Del(ctx, s.key(trail))
	pipe.ZRem(ctx, s.indexKey(), trail)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete trail: %w", err)
	}
	return nil
}

// Trails returns the indexed trail names. Trails whose list expired are
// pruned from the index lazily.
func (s *Store) Trails(ctx context.Context) ([]string, error) {
	names, err := s.client.ZRange(ctx, s.indexKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read index: %w", err)
	}

	alive := make([]string, 0, len(names))
	for _, name := range names {
		exists, err := s.client.Exists(ctx, s.key(name)).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to check trail %q: %w", name, err)
		}
		if exists == 0 {
			_ = s.client.ZRem(ctx, s.indexKey(), name)
			continue
		}
		alive = append(alive, name)
	}
	return alive, nil
}
