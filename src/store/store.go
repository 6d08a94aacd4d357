package store

import (
	"sync"
	"time"

	"keep-app/src/domain"

	"github.com/sirupsen/logrus"
)

// Snapshot is an immutable point-in-time copy of the note/label collections
type Snapshot struct {
	Notes  []domain.Note  `json:"notes"`
	Labels []domain.Label `json:"labels"`
}

// Subscriber receives a snapshot after every mutation
type Subscriber func(Snapshot)

// Store holds the authoritative note and label collections.
// 全ての変更はコレクション全体をアトミックに置き換える。
// HTTPハンドラーから並行に呼ばれるため単一ライターのmutexで直列化する
type Store struct {
	mu     sync.RWMutex
	notes  []domain.Note
	labels []domain.Label
	subs   []Subscriber
	logger *logrus.Logger
}

// New creates an empty store
func New(logger *logrus.Logger) *Store {
	return &Store{logger: logger}
}

// Load replaces both collections without notifying subscribers.
// 起動時の初期スナップショット読み込み専用
func (s *Store) Load(notes []domain.Note, labels []domain.Label) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notes = cloneNotes(notes)
	s.labels = append([]domain.Label(nil), labels...)
}

// Subscribe registers a snapshot-changed subscriber
func (s *Store) Subscribe(fn Subscriber) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// Notes returns a deep copy of the current note collection (most-recent-first)
func (s *Store) Notes() []domain.Note {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneNotes(s.notes)
}

// Labels returns a copy of the current label collection
func (s *Store) Labels() []domain.Label {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Label(nil), s.labels...)
}

// Snapshot returns a deep copy of both collections
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// GetNote looks up a note by id; nil if not found.
// 毎回コレクションから引き直すことで古い参照を持たない
func (s *Store) GetNote(id string) *domain.Note {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, n := range s.notes {
		if n.ID == id {
			clone := n.Clone()
			return &clone
		}
	}
	return nil
}

// snapshotLocked builds a deep-copied snapshot; caller must hold the lock
func (s *Store) snapshotLocked() Snapshot {
	return Snapshot{
		Notes:  cloneNotes(s.notes),
		Labels: append([]domain.Label(nil), s.labels...),
	}
}

// notify delivers the snapshot to all subscribers outside the lock
func (s *Store) notify(snap Snapshot) {
	s.mu.RLock()
	subs := append([]Subscriber(nil), s.subs...)
	s.mu.RUnlock()
	for _, fn := range subs {
		fn(snap)
	}
}

// mutateNote applies fn to the note with the given id and refreshes UpdatedAt.
// 不明なIDは黙って無視する（削除との競合でUIを壊さないため）
func (s *Store) mutateNote(id string, fn func(*domain.Note)) bool {
	s.mu.Lock()
	found := false
	next := make([]domain.Note, len(s.notes))
	for i, n := range s.notes {
		if n.ID == id {
			clone := n.Clone()
			fn(&clone)
			clone.UpdatedAt = time.Now()
			next[i] = clone
			found = true
		} else {
			next[i] = n
		}
	}
	if !found {
		s.mu.Unlock()
		return false
	}
	s.notes = next
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.notify(snap)
	return true
}

// mutateNoteIf is mutateNote guarded by a precondition; when the condition
// fails the note is left untouched (UpdatedAtも更新しない)
func (s *Store) mutateNoteIf(id string, cond func(domain.Note) bool, fn func(*domain.Note)) bool {
	s.mu.Lock()
	found := false
	next := make([]domain.Note, len(s.notes))
	for i, n := range s.notes {
		if n.ID == id {
			if !cond(n) {
				s.mu.Unlock()
				return false
			}
			clone := n.Clone()
			fn(&clone)
			clone.UpdatedAt = time.Now()
			next[i] = clone
			found = true
		} else {
			next[i] = n
		}
	}
	if !found {
		s.mu.Unlock()
		return false
	}
	s.notes = next
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.notify(snap)
	return true
}

func cloneNotes(notes []domain.Note) []domain.Note {
	out := make([]domain.Note, len(notes))
	for i, n := range notes {
		out[i] = n.Clone()
	}
	return out
}
