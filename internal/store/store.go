package store

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/idilsaglam/listmanager/internal/model"
)

// In-memory item collection behind a simulated network.
// Nothing here ever touches disk; the list dies with the process.

const tracerName = "github.com/idilsaglam/listmanager/internal/store"

// maxIDAttempts bounds regeneration when the ID source repeats itself.
const maxIDAttempts = 8

var errDuplicateID = errors.New("duplicate item id")

// Latency is the artificial delay applied to each operation.
type Latency struct {
	Load   time.Duration
	Add    time.Duration
	Edit   time.Duration
	Delete time.Duration
}

// DefaultLatency mirrors a slow-ish remote backend.
func DefaultLatency() Latency {
	return Latency{
		Load:   700 * time.Millisecond,
		Add:    400 * time.Millisecond,
		Edit:   500 * time.Millisecond,
		Delete: 500 * time.Millisecond,
	}
}

type Option func(*Store)

func WithLatency(l Latency) Option { return func(s *Store) { s.latency = l } }

func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(s *Store) {
		if tp != nil {
			s.tracer = tp.Tracer(tracerName)
		}
	}
}

// WithClock overrides time.Now for CreatedAt stamps.
func WithClock(now func() time.Time) Option { return func(s *Store) { s.now = now } }

// WithIDGenerator overrides the UUID source.
func WithIDGenerator(gen func() string) Option { return func(s *Store) { s.newID = gen } }

// Store owns the authoritative item list, oldest first.
type Store struct {
	mu    sync.RWMutex
	items []model.Item

	inflight atomic.Int32

	latency Latency
	log     *zap.Logger
	tracer  trace.Tracer
	now     func() time.Time
	newID   func() string
}

func New(opts ...Option) *Store {
	s := &Store{
		items:   []model.Item{},
		latency: DefaultLatency(),
		log:     zap.NewNop(),
		tracer:  otel.Tracer(tracerName),
		now:     time.Now,
		newID:   func() string { return uuid.New().String() },
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Loading reports whether any call is inside its simulated delay.
// It is advisory only; callers are not blocked by it.
func (s *Store) Loading() bool { return s.inflight.Load() > 0 }

// Items returns a snapshot of the collection in insertion order.
func (s *Store) Items() []model.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Item, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

func (s *Store) Get(id string) (model.Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexOf(id); i >= 0 {
		return s.items[i], true
	}
	return model.Item{}, false
}

// Load simulates the initial fetch and replaces the collection with seed.
func (s *Store) Load(ctx context.Context, seed []model.Item) (err error) {
	ctx, span := s.tracer.Start(ctx, "store.Load", trace.WithAttributes(attribute.Int("item.count", len(seed))))
	defer func() { endSpan(span, err) }()

	if err := s.simulate(ctx, s.latency.Load); err != nil {
		return err
	}

	seen := make(map[string]struct{}, len(seed))
	for _, it := range seed {
		if it.ID == "" {
			continue
		}
		if _, dup := seen[it.ID]; dup {
			return fmt.Errorf("load seed: %w: %s", errDuplicateID, it.ID)
		}
		seen[it.ID] = struct{}{}
	}

	items := make([]model.Item, 0, len(seed))
	for _, it := range seed {
		if it.ID == "" {
			id, err := s.uniqueID(seen)
			if err != nil {
				return err
			}
			it.ID = id
			seen[id] = struct{}{}
		}
		if it.CreatedAt.IsZero() {
			it.CreatedAt = s.now()
		}
		items = append(items, it)
	}

	s.mu.Lock()
	s.items = items
	s.mu.Unlock()

	s.log.Debug("items loaded", zap.Int("count", len(items)))
	return nil
}

// Add appends a new item with a fresh ID. Input is stored as given;
// validation belongs to the caller.
func (s *Store) Add(ctx context.Context, title, subtitle string) (it model.Item, err error) {
	ctx, span := s.tracer.Start(ctx, "store.Add")
	defer func() { endSpan(span, err) }()

	if err := s.simulate(ctx, s.latency.Add); err != nil {
		return model.Item{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]struct{}, len(s.items))
	for _, x := range s.items {
		seen[x.ID] = struct{}{}
	}
	id, err := s.uniqueID(seen)
	if err != nil {
		return model.Item{}, err
	}

	it = model.Item{
		ID:        id,
		Title:     title,
		Subtitle:  subtitle,
		CreatedAt: s.now(),
	}
	s.items = append(s.items, it)

	span.SetAttributes(attribute.String("item.id", id))
	s.log.Debug("item added", zap.String("id", id))
	return it, nil
}

// Edit replaces title and subtitle of the matching item.
// An unknown id is a silent no-op.
func (s *Store) Edit(ctx context.Context, id, title, subtitle string) (err error) {
	ctx, span := s.tracer.Start(ctx, "store.Edit", trace.WithAttributes(attribute.String("item.id", id)))
	defer func() { endSpan(span, err) }()

	if err := s.simulate(ctx, s.latency.Edit); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		s.log.Debug("edit: no such item", zap.String("id", id))
		return nil
	}
	s.items[i].Title = title
	s.items[i].Subtitle = subtitle
	s.log.Debug("item edited", zap.String("id", id))
	return nil
}

// Delete removes the matching item. An unknown id is a silent no-op.
func (s *Store) Delete(ctx context.Context, id string) (err error) {
	ctx, span := s.tracer.Start(ctx, "store.Delete", trace.WithAttributes(attribute.String("item.id", id)))
	defer func() { endSpan(span, err) }()

	if err := s.simulate(ctx, s.latency.Delete); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		s.log.Debug("delete: no such item", zap.String("id", id))
		return nil
	}
	s.items = slices.Delete(s.items, i, i+1)
	s.log.Debug("item deleted", zap.String("id", id))
	return nil
}

// simulate stands in for the network round trip. The loading counter
// covers exactly the wait.
func (s *Store) simulate(ctx context.Context, d time.Duration) error {
	s.inflight.Add(1)
	defer s.inflight.Add(-1)

	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// caller holds mu
func (s *Store) indexOf(id string) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) uniqueID(taken map[string]struct{}) (string, error) {
	for range maxIDAttempts {
		id := s.newID()
		if _, dup := taken[id]; !dup && id != "" {
			return id, nil
		}
	}
	return "", fmt.Errorf("generate item id: %w", errDuplicateID)
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
