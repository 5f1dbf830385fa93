// Package dataset owns the process-wide performance dataset: one normalized
// record collection plus the active filters, with every derived view
// recomputed in full on each state transition. The store holds a single
// snapshot reference that is replaced atomically — derived views are never
// patched in place.
package dataset

import (
	"sort"
	"sync"
	"time"

	"github.com/dalemusser/storepulse/internal/app/system/analytics"
	"github.com/dalemusser/storepulse/internal/domain/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Snapshot is a consistent view of the dataset and every structure derived
// from it. All slices and maps belong to the snapshot; the store hands out
// fresh copies so callers can never mutate shared state.
type Snapshot struct {
	Version  uuid.UUID // changes on every state transition
	Source   string    // "sample", the fetched URL, or "upload"
	LoadedAt time.Time // when the record collection was last replaced

	Records []models.PerformanceRecord // normalized, date-ascending
	Stores  []string                   // distinct store names, sorted

	Filters      models.Filters
	Filtered     []models.PerformanceRecord
	KPIs         models.KPIs
	StoreTotals  []models.StoreTotal
	DailySummary []models.DailySummary
	Groups       models.StoreGroup
}

// Store guards the current snapshot for concurrent HTTP access.
type Store struct {
	mu   sync.RWMutex
	cur  Snapshot
	log  *zap.Logger
	seen bool // a Replace has happened
}

// New creates an empty dataset store. The store is not Ready until the
// first Replace.
func New(logger *zap.Logger) *Store {
	return &Store{log: logger}
}

// Ready reports whether an initial dataset load has happened.
func (s *Store) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.seen
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySnapshot(s.cur)
}

// Replace swaps in a wholesale-new normalized record collection, keeping
// the active filters, and recomputes every derived view. The previous
// collection is discarded; it is never incrementally patched.
func (s *Store) Replace(records []models.PerformanceRecord, source string) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.cur
	next.Records = records
	next.Stores = distinctStores(records)
	next.Source = source
	next.LoadedAt = time.Now().UTC()
	s.swap(next)
	s.seen = true

	s.log.Info("dataset replaced",
		zap.String("source", source),
		zap.Int("records", len(records)),
		zap.Int("stores", len(next.Stores)),
		zap.String("version", s.cur.Version.String()),
	)
	return copySnapshot(s.cur)
}

// SetDateRange sets or clears the inclusive date bounds and recomputes.
func (s *Store) SetDateRange(from, to *time.Time) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.cur
	next.Filters.From = from
	next.Filters.To = to
	s.swap(next)
	return copySnapshot(s.cur)
}

// SetFilters replaces both the date bounds and the store selection in one
// state transition and recomputes.
func (s *Store) SetFilters(from, to *time.Time, names []string) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.cur
	next.Filters.From = from
	next.Filters.To = to
	next.Filters.Stores = nil
	if len(names) > 0 {
		next.Filters.Stores = make(map[string]bool, len(names))
		for _, n := range names {
			next.Filters.Stores[n] = true
		}
	}
	s.swap(next)
	return copySnapshot(s.cur)
}

// SetStores replaces the store selection. An empty list clears the store
// filter, which means "all stores".
func (s *Store) SetStores(names []string) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.cur
	next.Filters.Stores = nil
	if len(names) > 0 {
		next.Filters.Stores = make(map[string]bool, len(names))
		for _, n := range names {
			next.Filters.Stores[n] = true
		}
	}
	s.swap(next)
	return copySnapshot(s.cur)
}

// ToggleStore flips one store in or out of the active store set.
func (s *Store) ToggleStore(name string) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.cur
	set := make(map[string]bool, len(next.Filters.Stores)+1)
	for k, v := range next.Filters.Stores {
		if v {
			set[k] = true
		}
	}
	if set[name] {
		delete(set, name)
	} else {
		set[name] = true
	}
	if len(set) == 0 {
		set = nil
	}
	next.Filters.Stores = set
	s.swap(next)
	return copySnapshot(s.cur)
}

// ClearFilters drops the date bounds and the store selection.
func (s *Store) ClearFilters() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.cur
	next.Filters = models.Filters{}
	s.swap(next)
	return copySnapshot(s.cur)
}

// swap recomputes all derived views for next and installs it as current.
// Callers must hold the write lock.
func (s *Store) swap(next Snapshot) {
	f := next.Filters
	next.Filtered = analytics.Filter(next.Records, f.From, f.To, f.Stores)
	next.KPIs = analytics.ComputeKPIs(next.Filtered)
	next.StoreTotals = analytics.ComputeStoreTotals(next.Filtered)
	next.DailySummary = analytics.ComputeDailySummary(next.Filtered)
	next.Groups = analytics.GroupByStore(next.Filtered)
	next.Version = uuid.New()
	s.cur = next
}

func distinctStores(records []models.PerformanceRecord) []string {
	seen := make(map[string]bool, 8)
	var names []string
	for _, rec := range records {
		if !seen[rec.Store] {
			seen[rec.Store] = true
			names = append(names, rec.Store)
		}
	}
	sort.Strings(names)
	return names
}

// copySnapshot deep-copies the slices and maps so the caller owns the
// result outright.
func copySnapshot(in Snapshot) Snapshot {
	out := in
	out.Records = append([]models.PerformanceRecord(nil), in.Records...)
	out.Stores = append([]string(nil), in.Stores...)
	out.Filtered = append([]models.PerformanceRecord(nil), in.Filtered...)
	out.StoreTotals = append([]models.StoreTotal(nil), in.StoreTotals...)
	out.DailySummary = append([]models.DailySummary(nil), in.DailySummary...)
	if in.Filters.Stores != nil {
		out.Filters.Stores = make(map[string]bool, len(in.Filters.Stores))
		for k, v := range in.Filters.Stores {
			out.Filters.Stores[k] = v
		}
	}
	if in.Groups != nil {
		out.Groups = make(models.StoreGroup, len(in.Groups))
		for k, v := range in.Groups {
			out.Groups[k] = append([]models.PerformanceRecord(nil), v...)
		}
	}
	return out
}
