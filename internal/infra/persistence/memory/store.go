// Package memory is an in-process persistence backend with the same observable guarantees as the PostgreSQL one.
// Units of work are serialized and operate on a private copy that replaces the committed state on Commit.
package memory

import (
	"context"
	"sync"
	"time"

	"majorexplorer/internal/domain/entity"
)

// MajorStat is one statistics row of a catalog major.
type MajorStat struct {
	MajorID int64
	entity.MajorJobStat
}

// Catalog is the read-only reference data served by the store.
type Catalog struct {
	InterestAreas []entity.InterestArea
	Majors        []entity.Major
	Stats         []MajorStat
}

type comparisonRow struct {
	id        int64
	accountID int64
	majorID   int64
	savedAt   time.Time
}

// dataset is the mutable state. Catalog slices are shared between copies because nothing writes them.
type dataset struct {
	accounts         map[int64]entity.Account
	nextAccountID    int64
	comparisons      []comparisonRow
	nextComparisonID int64
	catalog          *Catalog
}

func (d *dataset) clone() *dataset {
	accounts := make(map[int64]entity.Account, len(d.accounts))
	for id, account := range d.accounts {
		accounts[id] = account
	}

	comparisons := make([]comparisonRow, len(d.comparisons))
	copy(comparisons, d.comparisons)

	return &dataset{
		accounts:         accounts,
		nextAccountID:    d.nextAccountID,
		comparisons:      comparisons,
		nextComparisonID: d.nextComparisonID,
		catalog:          d.catalog,
	}
}

func (d *dataset) major(id int64) (entity.Major, bool) {
	for _, major := range d.catalog.Majors {
		if major.ID == id {
			return major, true
		}
	}

	return entity.Major{}, false
}

// Store owns the committed dataset.
type Store struct {
	// writer admits one unit of work or standalone write at a time.
	writer chan struct{}

	mu   sync.RWMutex
	data *dataset

	now func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithCatalog replaces the sample catalog.
func WithCatalog(catalog Catalog) Option {
	return func(s *Store) {
		c := catalog
		s.data.catalog = &c
	}
}

// WithClock sets the time source used for saved-at and account timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// NewStore returns an empty store serving DefaultCatalog unless WithCatalog is given.
func NewStore(opts ...Option) *Store {
	catalog := DefaultCatalog()
	s := &Store{
		writer: make(chan struct{}, 1),
		data: &dataset{
			accounts:         make(map[int64]entity.Account),
			nextAccountID:    1,
			nextComparisonID: 1,
			catalog:          &catalog,
		},
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Store) acquireWriter(ctx context.Context) error {
	select {
	case s.writer <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Store) releaseWriter() {
	<-s.writer
}

// snapshot returns a private copy of the committed state.
func (s *Store) snapshot() *dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.data.clone()
}

func (s *Store) publish(d *dataset) {
	s.mu.Lock()
	s.data = d
	s.mu.Unlock()
}

// read runs fn against the committed state.
func (s *Store) read(fn func(d *dataset) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return fn(s.data)
}

// write runs fn as a single-statement unit of work.
func (s *Store) write(ctx context.Context, fn func(d *dataset) error) error {
	if err := s.acquireWriter(ctx); err != nil {
		return err
	}
	defer s.releaseWriter()

	next := s.snapshot()
	if err := fn(next); err != nil {
		return err
	}
	s.publish(next)

	return nil
}

// scope is where a repository reads and writes: the committed state or an open unit of work.
type scope interface {
	read(fn func(d *dataset) error) error
	write(ctx context.Context, fn func(d *dataset) error) error
}
