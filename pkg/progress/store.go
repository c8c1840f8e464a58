package progress

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/kerbaras/lectures/pkg/data"
	"go.uber.org/zap"
)

// Record marks one lecture as completed. Records only ever exist with
// Completed set; un-completing deletes the record.
type Record struct {
	Completed   bool      `json:"completed"`
	CompletedAt time.Time `json:"completedAt"`
}

// Key builds the lecture key used in the persisted map.
func Key(teacherID data.TeacherID, classIndex int, title string) string {
	return fmt.Sprintf("%s_%d_%s", teacherID, classIndex, title)
}

// Store is the single owner of per-lecture completion state. Every mutation
// is written through to the backing data.Store as one JSON document.
type Store struct {
	mu          sync.RWMutex
	backend     data.Store
	records     map[string]Record
	logger      *zap.Logger
	now         func() time.Time
	sessionOnly bool
}

type Option func(*Store)

// WithClock overrides the time source used for CompletedAt.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// NewStore loads the persisted map from backend. Missing or unreadable data
// starts the store empty.
func NewStore(backend data.Store, logger *zap.Logger, opts ...Option) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{
		backend: backend,
		records: make(map[string]Record),
		logger:  logger,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.load()
	return s
}

func (s *Store) load() {
	raw, err := s.backend.Get(data.ProgressKey)
	if errors.Is(err, data.ErrKeyNotFound) {
		return
	}
	if err != nil {
		s.logger.Warn("failed to read progress, starting empty", zap.Error(err))
		return
	}

	var records map[string]Record
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		s.logger.Warn("failed to parse progress, starting empty", zap.Error(err))
		return
	}

	for key, rec := range records {
		if rec.Completed {
			s.records[key] = rec
		}
	}
	s.logger.Debug("progress loaded", zap.Int("records", len(s.records)))
}

// persist writes the whole map. Caller holds the write lock. A failed write
// is retried once; after that the store keeps working in memory only.
func (s *Store) persist() {
	if s.sessionOnly {
		return
	}

	payload, err := json.Marshal(s.records)
	if err != nil {
		s.logger.Error("failed to encode progress", zap.Error(err))
		return
	}

	err = s.backend.Set(data.ProgressKey, string(payload))
	if err == nil {
		return
	}
	s.logger.Warn("progress write failed, retrying", zap.Error(err))

	if err = s.backend.Set(data.ProgressKey, string(payload)); err != nil {
		s.sessionOnly = true
		s.logger.Warn("progress write failed twice, keeping progress for this session only", zap.Error(err))
	}
}

// SessionOnly reports whether writes were given up after a storage failure.
func (s *Store) SessionOnly() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessionOnly
}

func (s *Store) IsCompleted(teacherID data.TeacherID, classIndex int, title string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[Key(teacherID, classIndex, title)]
	return ok && rec.Completed
}

// Record returns the completion record of a lecture, if any.
func (s *Store) Record(teacherID data.TeacherID, classIndex int, title string) (Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[Key(teacherID, classIndex, title)]
	return rec, ok
}

// Toggle flips the completion of a lecture and returns the new state.
func (s *Store) Toggle(teacherID data.TeacherID, classIndex int, title string) bool {
	key := Key(teacherID, classIndex, title)

	s.mu.Lock()
	defer s.mu.Unlock()

	completed := false
	if rec, ok := s.records[key]; ok && rec.Completed {
		delete(s.records, key)
	} else {
		s.records[key] = Record{Completed: true, CompletedAt: s.now()}
		completed = true
	}
	s.persist()

	s.logger.Debug("lecture toggled", zap.String("key", key), zap.Bool("completed", completed))
	return completed
}

// MarkCompleted records a lecture as completed if it is not already. It
// never un-marks and reports whether a record was added.
func (s *Store) MarkCompleted(teacherID data.TeacherID, classIndex int, title string) bool {
	key := Key(teacherID, classIndex, title)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[key]; ok {
		return false
	}
	s.records[key] = Record{Completed: true, CompletedAt: s.now()}
	s.persist()

	s.logger.Debug("lecture marked completed", zap.String("key", key))
	return true
}

// Len returns the number of completed lectures across all datasets.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
