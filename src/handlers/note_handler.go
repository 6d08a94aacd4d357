package handlers

import (
	"io"
	"net/http"

	"keep-app/src/domain"
	"keep-app/src/models"
	"keep-app/src/query"
	"keep-app/src/store"
	"keep-app/src/validator"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// NoteHandler represents the note handler
type NoteHandler struct {
	store  *store.Store
	logger *logrus.Logger
}

// NewNoteHandler creates a new note handler
func NewNoteHandler(s *store.Store, logger *logrus.Logger) *NoteHandler {
	return &NoteHandler{
		store:  s,
		logger: logger,
	}
}

// CreateNote creates a new note.
// 完全に空白のドラフトはノートを作らず204を返す（呼び出し側規約の実装点）
func (h *NoteHandler) CreateNote(c *gin.Context) {
	var req models.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("リクエストのバインドに失敗")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "details": err.Error()})
		return
	}

	itemTexts := make([]string, len(req.ChecklistItems))
	for i, item := range req.ChecklistItems {
		itemTexts[i] = item.Text
	}
	if validator.IsBlankNoteDraft(req.Title, req.Content, itemTexts) {
		h.logger.Debug("空白のみのドラフトのため作成を抑止")
		c.Status(http.StatusNoContent)
		return
	}

	items := make([]domain.ChecklistItem, len(req.ChecklistItems))
	for i, item := range req.ChecklistItems {
		items[i] = domain.ChecklistItem{Text: item.Text, Checked: item.Checked}
	}

	note := h.store.CreateNote(store.NoteDraft{
		Title:          req.Title,
		Content:        req.Content,
		Color:          domain.Color(req.Color),
		Pinned:         req.Pinned,
		Labels:         req.Labels,
		IsChecklist:    req.IsChecklist,
		ChecklistItems: items,
		Images:         req.Images,
	})

	c.JSON(http.StatusCreated, note)
}

// GetNote retrieves a note by ID
func (h *NoteHandler) GetNote(c *gin.Context) {
	note := h.store.GetNote(c.Param("id"))
	if note == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Note not found"})
		return
	}
	c.JSON(http.StatusOK, note)
}

// ListNotes retrieves notes for the requested view.
// 派生ビューは毎リクエスト最新スナップショットから再計算される
func (h *NoteHandler) ListNotes(c *gin.Context) {
	var filter models.NoteFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.logger.WithError(err).Error("クエリパラメータのバインドに失敗")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters", "details": err.Error()})
		return
	}

	notes := h.store.Notes()

	var result []domain.Note
	grouped := false
	switch {
	case filter.Label != "":
		result = query.ByLabel(notes, filter.Label)
	case filter.Query != "":
		result = query.Search(notes, filter.Query)
		grouped = true
	case filter.View == "archived":
		result = query.Archived(notes)
	case filter.View == "trash":
		result = query.Trashed(notes)
	case filter.View == "reminders":
		result = query.WithReminders(notes)
	default:
		result = query.Active(notes)
		grouped = true
	}

	resp := models.NoteListResponse{
		Notes: result,
		Total: len(result),
	}
	if grouped {
		resp.Pinned, resp.Others = query.Partition(result)
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateNote merges the given fields into a note
func (h *NoteHandler) UpdateNote(c *gin.Context) {
	id := c.Param("id")

	var req models.UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("リクエストのバインドに失敗")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "details": err.Error()})
		return
	}

	upd := store.NoteUpdate{
		Title:          req.Title,
		Content:        req.Content,
		Pinned:         req.Pinned,
		IsChecklist:    req.IsChecklist,
		ChecklistItems: req.ChecklistItems,
		Labels:         req.Labels,
		Images:         req.Images,
	}
	if req.Color != nil {
		color := domain.Color(*req.Color)
		upd.Color = &color
	}

	if !h.store.UpdateNote(id, upd) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Note not found"})
		return
	}

	h.logger.WithField("note_id", id).Info("ノートを更新しました")
	c.JSON(http.StatusOK, h.store.GetNote(id))
}

// DeleteNote permanently deletes a note
func (h *NoteHandler) DeleteNote(c *gin.Context) {
	id := c.Param("id")
	if !h.store.DeleteNote(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Note not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

// EmptyTrash permanently deletes every trashed note
func (h *NoteHandler) EmptyTrash(c *gin.Context) {
	removed := h.store.EmptyTrash()
	c.JSON(http.StatusOK, models.EmptyTrashResponse{Removed: removed})
}

// TogglePin flips the pinned flag
func (h *NoteHandler) TogglePin(c *gin.Context) {
	h.applyLifecycle(c, h.store.TogglePin)
}

// ArchiveNote moves a note to the archive
func (h *NoteHandler) ArchiveNote(c *gin.Context) {
	h.applyLifecycle(c, h.store.Archive)
}

// UnarchiveNote moves a note out of the archive
func (h *NoteHandler) UnarchiveNote(c *gin.Context) {
	h.applyLifecycle(c, h.store.Unarchive)
}

// TrashNote moves a note to the trash
func (h *NoteHandler) TrashNote(c *gin.Context) {
	h.applyLifecycle(c, h.store.Trash)
}

// RestoreNote restores a note from the trash
func (h *NoteHandler) RestoreNote(c *gin.Context) {
	h.applyLifecycle(c, h.store.Restore)
}

// applyLifecycle runs a single-id store operation and returns the updated note
func (h *NoteHandler) applyLifecycle(c *gin.Context, op func(string) bool) {
	id := c.Param("id")
	if !op(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Note not found"})
		return
	}
	c.JSON(http.StatusOK, h.store.GetNote(id))
}

// SetColor sets the note color (パレット外の値も寛容に受け付ける)
func (h *NoteHandler) SetColor(c *gin.Context) {
	id := c.Param("id")

	var req models.SetColorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "details": err.Error()})
		return
	}

	if !h.store.SetColor(id, domain.Color(req.Color)) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Note not found"})
		return
	}
	c.JSON(http.StatusOK, h.store.GetNote(id))
}

// DuplicateNote clones a note with a fresh id and current timestamps
func (h *NoteHandler) DuplicateNote(c *gin.Context) {
	id := c.Param("id")
	dup := h.store.Duplicate(id)
	if dup == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Note not found"})
		return
	}
	c.JSON(http.StatusCreated, dup)
}

// SetReminder sets or clears the reminder timestamp
func (h *NoteHandler) SetReminder(c *gin.Context) {
	id := c.Param("id")

	var req models.SetReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "details": err.Error()})
		return
	}

	if !h.store.SetReminder(id, req.Reminder) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Note not found"})
		return
	}
	c.JSON(http.StatusOK, h.store.GetNote(id))
}

// ClearReminder removes the reminder
func (h *NoteHandler) ClearReminder(c *gin.Context) {
	h.applyLifecycle(c, h.store.ClearReminder)
}

// ConvertNote switches between free-text and checklist mode.
// 既に目的のモードの場合は何も変えずに現在のノートを返す
func (h *NoteHandler) ConvertNote(c *gin.Context) {
	id := c.Param("id")

	var req models.ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "details": err.Error()})
		return
	}

	var converted bool
	if req.To == "checklist" {
		converted = h.store.ConvertToChecklist(id)
	} else {
		converted = h.store.ConvertToNote(id)
	}

	note := h.store.GetNote(id)
	if note == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Note not found"})
		return
	}
	if converted {
		h.logger.WithFields(logrus.Fields{"note_id": id, "to": req.To}).Info("ノートのモードを変換しました")
	}
	c.JSON(http.StatusOK, note)
}

// AddChecklistItem appends a new unchecked item
func (h *NoteHandler) AddChecklistItem(c *gin.Context) {
	id := c.Param("id")

	var req models.AddChecklistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "details": err.Error()})
		return
	}

	if !h.store.AddChecklistItem(id, req.Text) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Note not found"})
		return
	}
	c.JSON(http.StatusCreated, h.store.GetNote(id))
}

// UpdateChecklistItem updates the item text, or toggles it when no text is given
func (h *NoteHandler) UpdateChecklistItem(c *gin.Context) {
	id := c.Param("id")
	itemID := c.Param("itemId")

	// ボディなしのPATCHはトグルとして扱う
	var req models.UpdateChecklistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil && err != io.EOF {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "details": err.Error()})
		return
	}

	var ok bool
	if req.Text != nil {
		ok = h.store.UpdateChecklistItemText(id, itemID, *req.Text)
	} else {
		ok = h.store.ToggleChecklistItem(id, itemID)
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Note not found"})
		return
	}
	c.JSON(http.StatusOK, h.store.GetNote(id))
}

// DeleteChecklistItem removes the item by id
func (h *NoteHandler) DeleteChecklistItem(c *gin.Context) {
	id := c.Param("id")
	itemID := c.Param("itemId")

	if !h.store.DeleteChecklistItem(id, itemID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Note not found"})
		return
	}
	c.JSON(http.StatusOK, h.store.GetNote(id))
}

// AddLabelToNote attaches a label to a note (冪等)
func (h *NoteHandler) AddLabelToNote(c *gin.Context) {
	id := c.Param("id")
	labelID := c.Param("labelId")

	if !h.store.AddLabelToNote(id, labelID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Note not found"})
		return
	}
	c.JSON(http.StatusOK, h.store.GetNote(id))
}

// RemoveLabelFromNote detaches a label from a note
func (h *NoteHandler) RemoveLabelFromNote(c *gin.Context) {
	id := c.Param("id")
	labelID := c.Param("labelId")

	if !h.store.RemoveLabelFromNote(id, labelID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Note not found"})
		return
	}
	c.JSON(http.StatusOK, h.store.GetNote(id))
}
