package state

import (
	"log"
	"sync"

	"goal-chatter/internal/errreport"
	"goal-chatter/internal/history"
	"goal-chatter/internal/llm"
)

// Store keeps one UserRecord per user id in memory and snapshots the full set
// to the backend after every mutation. Persistence is best effort: load and
// save failures are logged and the in-memory state stays authoritative.
type Store struct {
	mu           sync.Mutex
	records      map[int64]*UserRecord
	backend      Backend
	historyLimit int
}

// New creates a store and loads whatever the backend holds. A nil backend
// keeps state in memory only.
func New(backend Backend, historyLimit int) *Store {
	if historyLimit <= 0 {
		historyLimit = history.DefaultLimit
	}
	s := &Store{
		records:      make(map[int64]*UserRecord),
		backend:      backend,
		historyLimit: historyLimit,
	}
	if backend == nil {
		return s
	}
	loaded, err := backend.Load()
	if err != nil {
		log.Printf("⚠️ failed to load user state, starting empty: %v", err)
		errreport.Capture(err, "state.load")
		return s
	}
	for id, rec := range loaded {
		r := rec
		if r.Goals == nil {
			r.Goals = []string{}
		}
		r.ChatHistory = history.Trim(r.ChatHistory, historyLimit)
		s.records[id] = &r
	}
	log.Printf("📂 loaded state for %d users", len(s.records))
	return s
}

// Get returns a copy of the user's record, creating a default one on first access.
func (s *Store) Get(userID int64) UserRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[userID]
	if !ok {
		rec = newRecord()
		s.records[userID] = rec
		s.saveLocked()
	}
	return rec.clone()
}

func (s *Store) AppendGoal(userID int64, text string) {
	s.mutate(userID, func(r *UserRecord) {
		r.Goals = append(r.Goals, text)
	})
}

func (s *Store) AppendHistory(userID int64, role, text string) {
	s.mutate(userID, func(r *UserRecord) {
		h := history.New(s.historyLimit, r.ChatHistory...)
		switch role {
		case llm.RoleUser:
			h.AppendUser(text)
		case llm.RoleAssistant:
			h.AppendAssistant(text)
		default:
			h.Append(llm.Message{Role: role, Content: text})
		}
		r.ChatHistory = h.Messages()
	})
}

func (s *Store) SetDialogMode(userID int64, enabled bool) {
	s.mutate(userID, func(r *UserRecord) {
		r.DialogMode = enabled
	})
}

func (s *Store) SetName(userID int64, name string) {
	s.mutate(userID, func(r *UserRecord) {
		r.Name = name
	})
}

// Snapshot writes the current state to the backend.
func (s *Store) Snapshot() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saveLocked()
}

// Len reports the number of known users.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

func (s *Store) mutate(userID int64, fn func(r *UserRecord)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[userID]
	if !ok {
		rec = newRecord()
		s.records[userID] = rec
	}
	fn(rec)
	s.saveLocked()
}

func (s *Store) saveLocked() {
	if s.backend == nil {
		return
	}
	snapshot := make(map[int64]UserRecord, len(s.records))
	for id, rec := range s.records {
		snapshot[id] = rec.clone()
	}
	if err := s.backend.Save(snapshot); err != nil {
		log.Printf("⚠️ failed to persist user state: %v", err)
		errreport.Capture(err, "state.save")
	}
}
