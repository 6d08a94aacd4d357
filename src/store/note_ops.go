package store

import (
	"time"

	"keep-app/src/domain"
	"keep-app/src/idgen"
)

// NoteDraft represents partial input for creating a note
type NoteDraft struct {
	Title          string
	Content        string
	Color          domain.Color
	Pinned         bool
	Labels         []string
	IsChecklist    bool
	ChecklistItems []domain.ChecklistItem
	Images         []string
}

// NoteUpdate represents a partial update; nil fields are left unchanged
type NoteUpdate struct {
	Title          *string
	Content        *string
	Color          *domain.Color
	Pinned         *bool
	IsChecklist    *bool
	ChecklistItems []domain.ChecklistItem
	Labels         []string
	Images         []string
}

// CreateNote builds a new note from the draft and prepends it to the collection.
// 保存順は常に作成日時の新しい順。ピン留めは表示側のグルーピングのみで並びは変えない
func (s *Store) CreateNote(draft NoteDraft) domain.Note {
	now := time.Now()
	color := draft.Color
	if color == "" {
		color = domain.ColorDefault
	}

	items := make([]domain.ChecklistItem, len(draft.ChecklistItems))
	for i, item := range draft.ChecklistItems {
		items[i] = item
		if items[i].ID == "" {
			items[i].ID = idgen.NewID()
		}
	}

	note := domain.Note{
		ID:             idgen.NewID(),
		Title:          draft.Title,
		Content:        draft.Content,
		Color:          color,
		Pinned:         draft.Pinned,
		Archived:       false,
		Trashed:        false,
		CreatedAt:      now,
		UpdatedAt:      now,
		Reminder:       nil,
		Labels:         append([]string{}, draft.Labels...),
		IsChecklist:    draft.IsChecklist,
		ChecklistItems: items,
		Images:         append([]string{}, draft.Images...),
	}

	s.mu.Lock()
	s.notes = append([]domain.Note{note}, s.notes...)
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.notify(snap)

	s.logger.WithField("note_id", note.ID).Info("ノートを作成しました")
	return note.Clone()
}

// UpdateNote merges the given fields into the note; no-op on unknown id
func (s *Store) UpdateNote(id string, upd NoteUpdate) bool {
	return s.mutateNote(id, func(n *domain.Note) {
		if upd.Title != nil {
			n.Title = *upd.Title
		}
		if upd.Content != nil {
			n.Content = *upd.Content
		}
		if upd.Color != nil {
			n.Color = *upd.Color
		}
		if upd.Pinned != nil {
			n.Pinned = *upd.Pinned
		}
		if upd.IsChecklist != nil {
			n.IsChecklist = *upd.IsChecklist
		}
		if upd.ChecklistItems != nil {
			n.ChecklistItems = append([]domain.ChecklistItem{}, upd.ChecklistItems...)
		}
		if upd.Labels != nil {
			n.Labels = append([]string{}, upd.Labels...)
		}
		if upd.Images != nil {
			n.Images = append([]string{}, upd.Images...)
		}
	})
}

// DeleteNote permanently removes the note and its checklist items
func (s *Store) DeleteNote(id string) bool {
	s.mu.Lock()
	next := s.notes[:0:0]
	found := false
	for _, n := range s.notes {
		if n.ID == id {
			found = true
			continue
		}
		next = append(next, n)
	}
	if !found {
		s.mu.Unlock()
		return false
	}
	s.notes = next
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.notify(snap)

	s.logger.WithField("note_id", id).Info("ノートを完全に削除しました")
	return true
}

// TogglePin flips the pinned flag
func (s *Store) TogglePin(id string) bool {
	return s.mutateNote(id, func(n *domain.Note) {
		n.Pinned = !n.Pinned
	})
}

// SetColor sets the note color.
// パレット外の値もそのまま保存する（表示側でdefaultにフォールバック）
func (s *Store) SetColor(id string, color domain.Color) bool {
	if !color.IsValid() {
		s.logger.WithFields(map[string]interface{}{
			"note_id": id,
			"color":   color.String(),
		}).Warn("パレット外の色が指定されました")
	}
	return s.mutateNote(id, func(n *domain.Note) {
		n.Color = color
	})
}

// Trash moves the note to trash; trashing always removes it from the archive
func (s *Store) Trash(id string) bool {
	return s.mutateNote(id, func(n *domain.Note) {
		n.Trashed = true
		n.Archived = false
	})
}

// Restore clears the trashed flag.
// ゴミ箱に入れた時点でarchivedは落ちているため、復元先は常にアクティブ
func (s *Store) Restore(id string) bool {
	return s.mutateNote(id, func(n *domain.Note) {
		n.Trashed = false
	})
}

// Archive moves the note to the archive and out of the trash
func (s *Store) Archive(id string) bool {
	return s.mutateNote(id, func(n *domain.Note) {
		n.Archived = true
		n.Trashed = false
	})
}

// Unarchive clears the archived flag
func (s *Store) Unarchive(id string) bool {
	return s.mutateNote(id, func(n *domain.Note) {
		n.Archived = false
	})
}

// EmptyTrash permanently deletes every trashed note and returns the count
func (s *Store) EmptyTrash() int {
	s.mu.Lock()
	next := s.notes[:0:0]
	removed := 0
	for _, n := range s.notes {
		if n.Trashed {
			removed++
			continue
		}
		next = append(next, n)
	}
	if removed == 0 {
		s.mu.Unlock()
		return 0
	}
	s.notes = next
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.notify(snap)

	s.logger.WithField("removed", removed).Info("ゴミ箱を空にしました")
	return removed
}

// Duplicate clones the note with a fresh id and current timestamps;
// nil if the id is unknown
func (s *Store) Duplicate(id string) *domain.Note {
	s.mu.Lock()
	var dup *domain.Note
	for _, n := range s.notes {
		if n.ID == id {
			clone := n.Clone()
			clone.ID = idgen.NewID()
			now := time.Now()
			clone.CreatedAt = now
			clone.UpdatedAt = now
			dup = &clone
			break
		}
	}
	if dup == nil {
		s.mu.Unlock()
		return nil
	}
	s.notes = append([]domain.Note{*dup}, s.notes...)
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.notify(snap)

	s.logger.WithFields(map[string]interface{}{
		"source_id": id,
		"note_id":   dup.ID,
	}).Info("ノートを複製しました")
	result := dup.Clone()
	return &result
}

// SetReminder sets or clears (nil) the reminder timestamp
func (s *Store) SetReminder(id string, reminder *time.Time) bool {
	return s.mutateNote(id, func(n *domain.Note) {
		if reminder != nil {
			r := *reminder
			n.Reminder = &r
		} else {
			n.Reminder = nil
		}
	})
}

// ClearReminder removes the reminder
func (s *Store) ClearReminder(id string) bool {
	return s.SetReminder(id, nil)
}

// AddLabelToNote attaches the label id to the note; idempotent
func (s *Store) AddLabelToNote(noteID, labelID string) bool {
	return s.mutateNote(noteID, func(n *domain.Note) {
		if n.HasLabel(labelID) {
			return
		}
		n.Labels = append(n.Labels, labelID)
	})
}

// RemoveLabelFromNote detaches the label id from the note; no-op if absent
func (s *Store) RemoveLabelFromNote(noteID, labelID string) bool {
	return s.mutateNote(noteID, func(n *domain.Note) {
		kept := n.Labels[:0:0]
		for _, id := range n.Labels {
			if id != labelID {
				kept = append(kept, id)
			}
		}
		n.Labels = kept
	})
}
