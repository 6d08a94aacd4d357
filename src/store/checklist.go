package store

import (
	"strings"

	"keep-app/src/domain"
	"keep-app/src/idgen"
)

// AddChecklistItem appends a new unchecked item to the end of the note's list
func (s *Store) AddChecklistItem(noteID, text string) bool {
	return s.mutateNote(noteID, func(n *domain.Note) {
		n.ChecklistItems = append(n.ChecklistItems, domain.ChecklistItem{
			ID:      idgen.NewID(),
			Text:    text,
			Checked: false,
		})
	})
}

// ToggleChecklistItem flips the checked flag of the item
func (s *Store) ToggleChecklistItem(noteID, itemID string) bool {
	return s.mutateNote(noteID, func(n *domain.Note) {
		for i, item := range n.ChecklistItems {
			if item.ID == itemID {
				n.ChecklistItems[i].Checked = !item.Checked
				return
			}
		}
	})
}

// UpdateChecklistItemText replaces the text of the item
func (s *Store) UpdateChecklistItemText(noteID, itemID, text string) bool {
	return s.mutateNote(noteID, func(n *domain.Note) {
		for i, item := range n.ChecklistItems {
			if item.ID == itemID {
				n.ChecklistItems[i].Text = text
				return
			}
		}
	})
}

// DeleteChecklistItem removes the item by id
func (s *Store) DeleteChecklistItem(noteID, itemID string) bool {
	return s.mutateNote(noteID, func(n *domain.Note) {
		kept := n.ChecklistItems[:0:0]
		for _, item := range n.ChecklistItems {
			if item.ID != itemID {
				kept = append(kept, item)
			}
		}
		n.ChecklistItems = kept
	})
}

// ConvertToChecklist splits the content on line boundaries into unchecked items.
// 空行は捨てられるため逆変換しても完全には元に戻らない
func (s *Store) ConvertToChecklist(noteID string) bool {
	return s.mutateNoteIf(noteID, func(n domain.Note) bool {
		return !n.IsChecklist
	}, func(n *domain.Note) {
		var items []domain.ChecklistItem
		for _, line := range strings.Split(n.Content, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			items = append(items, domain.ChecklistItem{
				ID:      idgen.NewID(),
				Text:    line,
				Checked: false,
			})
		}
		n.IsChecklist = true
		n.ChecklistItems = items
		n.Content = ""
	})
}

// ConvertToNote joins all item texts (checked or not) back into the content
func (s *Store) ConvertToNote(noteID string) bool {
	return s.mutateNoteIf(noteID, func(n domain.Note) bool {
		return n.IsChecklist
	}, func(n *domain.Note) {
		texts := make([]string, len(n.ChecklistItems))
		for i, item := range n.ChecklistItems {
			texts[i] = item.Text
		}
		n.IsChecklist = false
		n.Content = strings.Join(texts, "\n")
		n.ChecklistItems = []domain.ChecklistItem{}
	})
}
