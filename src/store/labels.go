package store

import (
	"keep-app/src/domain"
	"keep-app/src/idgen"
)

// CreateLabel creates a new label; the name is stored verbatim
func (s *Store) CreateLabel(name string) domain.Label {
	label := domain.Label{
		ID:   idgen.NewID(),
		Name: name,
	}

	s.mu.Lock()
	s.labels = append(s.labels, label)
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.notify(snap)

	s.logger.WithField("label_id", label.ID).Info("ラベルを作成しました")
	return label
}

// RenameLabel replaces the label name; no-op on unknown id
func (s *Store) RenameLabel(id, name string) bool {
	s.mu.Lock()
	found := false
	next := make([]domain.Label, len(s.labels))
	for i, l := range s.labels {
		if l.ID == id {
			l.Name = name
			found = true
		}
		next[i] = l
	}
	if !found {
		s.mu.Unlock()
		return false
	}
	s.labels = next
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.notify(snap)
	return true
}

// DeleteLabel removes the label and cascades the removal of its id from
// every note's label set.
// 単一のロック内で両コレクションを置き換えるため、死んだラベルを指す
// ノートが観測されることはない
func (s *Store) DeleteLabel(id string) bool {
	s.mu.Lock()
	kept := s.labels[:0:0]
	found := false
	for _, l := range s.labels {
		if l.ID == id {
			found = true
			continue
		}
		kept = append(kept, l)
	}
	if !found {
		s.mu.Unlock()
		return false
	}
	s.labels = kept

	next := make([]domain.Note, len(s.notes))
	for i, n := range s.notes {
		if !n.HasLabel(id) {
			next[i] = n
			continue
		}
		clone := n.Clone()
		labels := clone.Labels[:0:0]
		for _, labelID := range clone.Labels {
			if labelID != id {
				labels = append(labels, labelID)
			}
		}
		clone.Labels = labels
		next[i] = clone
	}
	s.notes = next

	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.notify(snap)

	s.logger.WithField("label_id", id).Info("ラベルを削除し、全ノートから除去しました")
	return true
}
