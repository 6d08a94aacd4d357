package models

import (
	"time"

	"keep-app/src/domain"
)

// ChecklistItemInput represents a checklist item in a create request
type ChecklistItemInput struct {
	Text    string `json:"text"`
	Checked bool   `json:"checked"`
}

// CreateNoteRequest represents the request payload for creating a note.
// タイトルも本文も任意（全て空白のドラフトは呼び出し側の規約で抑止される）
type CreateNoteRequest struct {
	Title          string               `json:"title"`
	Content        string               `json:"content"`
	Color          string               `json:"color"`
	Pinned         bool                 `json:"pinned"`
	Labels         []string             `json:"labels"`
	IsChecklist    bool                 `json:"isChecklist"`
	ChecklistItems []ChecklistItemInput `json:"checklistItems"`
	Images         []string             `json:"images"`
}

// UpdateNoteRequest represents a partial update; omitted fields are unchanged
type UpdateNoteRequest struct {
	Title          *string                `json:"title,omitempty"`
	Content        *string                `json:"content,omitempty"`
	Color          *string                `json:"color,omitempty"`
	Pinned         *bool                  `json:"pinned,omitempty"`
	IsChecklist    *bool                  `json:"isChecklist,omitempty"`
	ChecklistItems []domain.ChecklistItem `json:"checklistItems,omitempty"`
	Labels         []string               `json:"labels,omitempty"`
	Images         []string               `json:"images,omitempty"`
}

// NoteFilter represents view selection for note listings
type NoteFilter struct {
	View  string `form:"view" binding:"omitempty,oneof=active archived trash reminders"`
	Query string `form:"q"`
	Label string `form:"label"`
}

// NoteListResponse represents the response for note listings.
// PinnedとOthersはアクティブ系ビューのみ（表示側のグルーピング規則）
type NoteListResponse struct {
	Notes  []domain.Note `json:"notes"`
	Pinned []domain.Note `json:"pinned,omitempty"`
	Others []domain.Note `json:"others,omitempty"`
	Total  int           `json:"total"`
}

// SetColorRequest represents the payload for changing a note color
type SetColorRequest struct {
	Color string `json:"color" binding:"required"`
}

// SetReminderRequest represents the payload for setting a reminder.
// nullでリマインダーを解除する
type SetReminderRequest struct {
	Reminder *time.Time `json:"reminder"`
}

// ConvertRequest represents the payload for note/checklist mode conversion
type ConvertRequest struct {
	To string `json:"to" binding:"required,oneof=checklist note"`
}

// AddChecklistItemRequest represents the payload for appending a checklist item
type AddChecklistItemRequest struct {
	Text string `json:"text"`
}

// UpdateChecklistItemRequest represents the payload for a checklist item;
// textが無い場合はチェック状態のトグルとして扱う
type UpdateChecklistItemRequest struct {
	Text *string `json:"text"`
}

// EmptyTrashResponse represents the result of emptying the trash
type EmptyTrashResponse struct {
	Removed int `json:"removed"`
}
