package store

import (
	"errors"
	"strings"
	"sync"

	"github.com/aaronzipp/undercover/internal/models"
)

var (
	// ErrRoomNotFound is returned when no aggregate exists for a room id
	ErrRoomNotFound = errors.New("room not found")

	// ErrCodeConflict is returned when a create races another room onto the
	// same code. Callers are expected to regenerate and retry.
	ErrCodeConflict = errors.New("room code already in use")
)

// MemoryStore keeps room aggregates in memory. Each aggregate carries its own
// mutex, so commands against the same room are serialized (read-modify-write
// is linearizable per room) while different rooms proceed independently.
type MemoryStore struct {
	mu     sync.RWMutex
	rooms  map[string]*entry  // room id -> aggregate
	byCode map[string]string  // active code -> room id
}

type entry struct {
	mu  sync.Mutex
	agg *models.Aggregate
}

// NewMemoryStore creates an empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		rooms:  make(map[string]*entry),
		byCode: make(map[string]string),
	}
}

// CodeInUse reports whether the code belongs to a non-finished room
func (s *MemoryStore) CodeInUse(code string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, exists := s.byCode[strings.ToUpper(code)]
	return exists
}

// Create inserts a new aggregate and registers its room code
func (s *MemoryStore) Create(agg *models.Aggregate) error {
	code := strings.ToUpper(agg.Room.Code)

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byCode[code]; exists {
		return ErrCodeConflict
	}
	s.rooms[agg.Room.ID] = &entry{agg: agg}
	s.byCode[code] = agg.Room.ID
	return nil
}

// RoomIDByCode resolves an active room code to a room id
func (s *MemoryStore) RoomIDByCode(code string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, exists := s.byCode[strings.ToUpper(code)]
	return id, exists
}

// Update runs fn on the room's aggregate under its lock. If fn returns an
// error the mutation is considered failed and nothing else happens; on
// success a room that reached the finished state has its code released, so
// codes stay unique among active rooms only.
func (s *MemoryStore) Update(roomID string, fn func(agg *models.Aggregate) error) error {
	s.mu.RLock()
	e, exists := s.rooms[roomID]
	s.mu.RUnlock()
	if !exists {
		return ErrRoomNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if err := fn(e.agg); err != nil {
		return err
	}
	if e.agg.Room.Status == models.StatusFinished {
		s.releaseCode(e.agg.Room)
	}
	return nil
}

// View runs fn on the room's aggregate under its lock, for reads. fn must
// not retain the aggregate; copy out what it needs (see Aggregate.Snapshot).
func (s *MemoryStore) View(roomID string, fn func(agg *models.Aggregate) error) error {
	s.mu.RLock()
	e, exists := s.rooms[roomID]
	s.mu.RUnlock()
	if !exists {
		return ErrRoomNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.agg)
}

func (s *MemoryStore) releaseCode(room *models.Room) {
	code := strings.ToUpper(room.Code)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.byCode[code] == room.ID {
		delete(s.byCode, code)
	}
}
