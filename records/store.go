// Package records owns the in-memory case record collection and keeps the
// persisted copy in step with it.
package records

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/parsa000721/records/databases"
	"github.com/parsa000721/records/models"
)

// Store is the single owner of the case record collection. The collection is
// ordered most recent first. Every method is safe for concurrent use and
// operations are applied one at a time.
type Store struct {
	mu       sync.Mutex
	db       databases.CaseRecordDatabase
	records  []models.CaseRecord
	notifier Notifier
	newID    func() string
}

// Option configures a Store
type Option func(*Store)

// WithNotifier replaces the default zap backed notifier
func WithNotifier(n Notifier) Option {
	return func(s *Store) { s.notifier = n }
}

// WithIDGenerator replaces the default UUIDv7 generator
func WithIDGenerator(f func() string) Option {
	return func(s *Store) { s.newID = f }
}

// Open loads the persisted collection and returns a Store ready for use.
// A failed load is reported to the notifier and leaves the collection empty.
func Open(ctx context.Context, db databases.CaseRecordDatabase, opts ...Option) *Store {
	s := &Store{
		db:       db,
		records:  []models.CaseRecord{},
		notifier: NewLogNotifier(),
		newID:    newUUID,
	}
	for _, opt := range opts {
		opt(s)
	}

	records, err := db.Load(ctx)
	if err != nil {
		persistenceFailuresTotal.WithLabelValues("load").Inc()
		s.notifier.LoadFailed(err)
		records = nil
	}
	if records != nil {
		s.records = records
	}
	collectionSize.Set(float64(len(s.records)))
	return s
}

func newUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// List returns a copy of the collection, most recent first
func (s *Store) List() []models.CaseRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.CaseRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Len returns the number of records held
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// Get returns the record with the given id
func (s *Store) Get(id string) (models.CaseRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return models.CaseRecord{}, false
	}
	return s.records[i], true
}

// Add assigns a fresh id to details, places the record first and persists
func (s *Store) Add(ctx context.Context, details models.CaseDetails) models.CaseRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.newID()
	for s.indexOf(id) >= 0 {
		id = s.newID()
	}
	rec := models.CaseRecord{ID: id, CaseDetails: details}

	s.records = append([]models.CaseRecord{rec}, s.records...)
	s.persist(ctx, "add")
	return rec
}

// Update replaces the details of the record with the given id, keeping its
// position. It returns false and changes nothing when the id is unknown.
func (s *Store) Update(ctx context.Context, id string, details models.CaseDetails) (models.CaseRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.CaseRecord{}, false
	}
	s.records[i].CaseDetails = details
	s.persist(ctx, "update")
	return s.records[i], true
}

// Remove asks confirm with DeletePrompt and, on yes, drops the record with the
// given id and persists. A no leaves everything untouched. The result reports
// whether a record was actually removed.
func (s *Store) Remove(ctx context.Context, id string, confirm Confirmer) bool {
	if confirm == nil || !confirm.Confirm(ctx, DeletePrompt) {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := false
	kept := make([]models.CaseRecord, 0, len(s.records))
	for _, r := range s.records {
		if r.ID == id {
			removed = true
			continue
		}
		kept = append(kept, r)
	}
	s.records = kept
	s.persist(ctx, "remove")
	return removed
}

func (s *Store) indexOf(id string) int {
	for i := range s.records {
		if s.records[i].ID == id {
			return i
		}
	}
	return -1
}

// persist must be called with mu held
func (s *Store) persist(ctx context.Context, op string) {
	mutationsTotal.WithLabelValues(op).Inc()
	collectionSize.Set(float64(len(s.records)))
	if err := s.db.Save(ctx, s.records); err != nil {
		persistenceFailuresTotal.WithLabelValues("save").Inc()
		s.notifier.SaveFailed(err)
	}
}
