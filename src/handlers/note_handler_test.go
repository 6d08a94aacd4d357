package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"keep-app/src/config"
	"keep-app/src/domain"
	"keep-app/src/handlers"
	"keep-app/src/middleware"
	"keep-app/src/models"
	"keep-app/src/routes"
	"keep-app/src/service"
	"keep-app/src/store"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:   "test-secret",
			TokenExpiry: time.Hour,
		},
	}
}

// setupRouter ボードロック無効のルーターとストアを作成
func setupRouter(t *testing.T) (*gin.Engine, *store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := testLogger()
	st := store.New(logger)

	tokens := service.NewBoardTokenService(testConfig())
	authHandler, err := handlers.NewAuthHandler("", tokens, logger)
	require.NoError(t, err)

	r := gin.New()
	routes.SetupRoutes(r,
		handlers.NewNoteHandler(st, logger),
		handlers.NewLabelHandler(st, logger),
		authHandler,
		middleware.AuthMiddleware(tokens, false),
	)
	return r, st
}

func performRequest(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeNote(t *testing.T, w *httptest.ResponseRecorder) domain.Note {
	t.Helper()
	var note domain.Note
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &note))
	return note
}

func TestCreateNote(t *testing.T) {
	r, _ := setupRouter(t)

	w := performRequest(r, http.MethodPost, "/api/notes", models.CreateNoteRequest{
		Title:   "Buy milk",
		Content: "2 liters",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	note := decodeNote(t, w)
	assert.NotEmpty(t, note.ID)
	assert.Equal(t, "Buy milk", note.Title)
	assert.Equal(t, domain.ColorDefault, note.Color)
	assert.NotNil(t, note.Labels)
	assert.NotNil(t, note.ChecklistItems)
}

func TestCreateNoteBlankDraftIsSuppressed(t *testing.T) {
	r, st := setupRouter(t)

	tests := []struct {
		name string
		req  models.CreateNoteRequest
	}{
		{
			name: "empty draft",
			req:  models.CreateNoteRequest{},
		},
		{
			name: "whitespace only",
			req:  models.CreateNoteRequest{Title: "   ", Content: "\n\t"},
		},
		{
			name: "blank checklist items",
			req: models.CreateNoteRequest{
				IsChecklist:    true,
				ChecklistItems: []models.ChecklistItemInput{{Text: "  "}, {Text: ""}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performRequest(r, http.MethodPost, "/api/notes", tt.req)
			assert.Equal(t, http.StatusNoContent, w.Code)
		})
	}
	assert.Empty(t, st.Notes())
}

func TestCreateNoteInvalidJSON(t *testing.T) {
	r, _ := setupRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/notes", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetNote(t *testing.T) {
	r, st := setupRouter(t)
	note := st.CreateNote(store.NoteDraft{Title: "hello"})

	w := performRequest(r, http.MethodGet, "/api/notes/"+note.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, note.ID, decodeNote(t, w).ID)

	w = performRequest(r, http.MethodGet, "/api/notes/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListNotesViews(t *testing.T) {
	r, st := setupRouter(t)

	a := st.CreateNote(store.NoteDraft{Title: "plain"})
	b := st.CreateNote(store.NoteDraft{Title: "pinned", Pinned: true})
	c := st.CreateNote(store.NoteDraft{Title: "archived"})
	d := st.CreateNote(store.NoteDraft{Title: "trashed"})
	st.Archive(c.ID)
	st.Trash(d.ID)

	var resp models.NoteListResponse

	// アクティブビューはピン留めとそれ以外に分かれる
	w := performRequest(r, http.MethodGet, "/api/notes", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Total)
	require.Len(t, resp.Pinned, 1)
	assert.Equal(t, b.ID, resp.Pinned[0].ID)
	require.Len(t, resp.Others, 1)
	assert.Equal(t, a.ID, resp.Others[0].ID)

	w = performRequest(r, http.MethodGet, "/api/notes?view=archived", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, c.ID, resp.Notes[0].ID)
	assert.Empty(t, resp.Pinned)

	w = performRequest(r, http.MethodGet, "/api/notes?view=trash", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, d.ID, resp.Notes[0].ID)
}

func TestListNotesSearch(t *testing.T) {
	r, st := setupRouter(t)

	milk := st.CreateNote(store.NoteDraft{Title: "Buy Milk"})
	st.CreateNote(store.NoteDraft{Title: "Other"})
	archived := st.CreateNote(store.NoteDraft{Title: "Old milk"})
	st.Archive(archived.ID)

	var resp models.NoteListResponse
	w := performRequest(r, http.MethodGet, "/api/notes?q=milk", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	// 検索はアクティブなノートのみが対象
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, milk.ID, resp.Notes[0].ID)
}

func TestListNotesByLabel(t *testing.T) {
	r, st := setupRouter(t)

	label := st.CreateLabel("work")
	tagged := st.CreateNote(store.NoteDraft{Title: "tagged"})
	st.CreateNote(store.NoteDraft{Title: "untagged"})
	require.True(t, st.AddLabelToNote(tagged.ID, label.ID))

	var resp models.NoteListResponse
	w := performRequest(r, http.MethodGet, "/api/notes?label="+label.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, tagged.ID, resp.Notes[0].ID)
}

func TestListNotesRejectsUnknownView(t *testing.T) {
	r, _ := setupRouter(t)

	w := performRequest(r, http.MethodGet, "/api/notes?view=bogus", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateNoteMergesFields(t *testing.T) {
	r, st := setupRouter(t)
	note := st.CreateNote(store.NoteDraft{Title: "before", Content: "keep me"})

	newTitle := "after"
	w := performRequest(r, http.MethodPut, "/api/notes/"+note.ID, models.UpdateNoteRequest{
		Title: &newTitle,
	})

	require.Equal(t, http.StatusOK, w.Code)
	updated := decodeNote(t, w)
	assert.Equal(t, "after", updated.Title)
	// 省略されたフィールドは変更されない
	assert.Equal(t, "keep me", updated.Content)
}

func TestUpdateNoteNotFound(t *testing.T) {
	r, _ := setupRouter(t)

	title := "x"
	w := performRequest(r, http.MethodPut, "/api/notes/missing", models.UpdateNoteRequest{Title: &title})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLifecycleEndpoints(t *testing.T) {
	r, st := setupRouter(t)
	note := st.CreateNote(store.NoteDraft{Title: "cycle"})

	w := performRequest(r, http.MethodPatch, "/api/notes/"+note.ID+"/pin", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decodeNote(t, w).Pinned)

	w = performRequest(r, http.MethodPatch, "/api/notes/"+note.ID+"/archive", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decodeNote(t, w).Archived)

	// アーカイブ済みをゴミ箱へ移すとアーカイブフラグは外れる
	w = performRequest(r, http.MethodPatch, "/api/notes/"+note.ID+"/trash", nil)
	require.Equal(t, http.StatusOK, w.Code)
	trashed := decodeNote(t, w)
	assert.True(t, trashed.Trashed)
	assert.False(t, trashed.Archived)

	// 復元はアクティブに戻る
	w = performRequest(r, http.MethodPatch, "/api/notes/"+note.ID+"/restore", nil)
	require.Equal(t, http.StatusOK, w.Code)
	restored := decodeNote(t, w)
	assert.False(t, restored.Trashed)
	assert.False(t, restored.Archived)

	w = performRequest(r, http.MethodPatch, "/api/notes/missing/archive", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteNoteAndEmptyTrash(t *testing.T) {
	r, st := setupRouter(t)

	keep := st.CreateNote(store.NoteDraft{Title: "keep"})
	gone := st.CreateNote(store.NoteDraft{Title: "gone"})
	st.Trash(gone.ID)

	w := performRequest(r, http.MethodDelete, "/api/notes/trash", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp models.EmptyTrashResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Removed)
	assert.NotNil(t, st.GetNote(keep.ID))
	assert.Nil(t, st.GetNote(gone.ID))

	w = performRequest(r, http.MethodDelete, "/api/notes/"+keep.ID, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = performRequest(r, http.MethodDelete, "/api/notes/"+keep.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDuplicateNote(t *testing.T) {
	r, st := setupRouter(t)
	note := st.CreateNote(store.NoteDraft{Title: "original"})

	w := performRequest(r, http.MethodPost, "/api/notes/"+note.ID+"/duplicate", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	dup := decodeNote(t, w)
	assert.NotEqual(t, note.ID, dup.ID)
	assert.Equal(t, "original", dup.Title)

	w = performRequest(r, http.MethodPost, "/api/notes/missing/duplicate", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSetColor(t *testing.T) {
	r, st := setupRouter(t)
	note := st.CreateNote(store.NoteDraft{Title: "colored"})

	w := performRequest(r, http.MethodPatch, "/api/notes/"+note.ID+"/color", models.SetColorRequest{Color: "mint"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, domain.ColorMint, decodeNote(t, w).Color)

	// colorフィールドは必須
	w = performRequest(r, http.MethodPatch, "/api/notes/"+note.ID+"/color", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReminderEndpoints(t *testing.T) {
	r, st := setupRouter(t)
	note := st.CreateNote(store.NoteDraft{Title: "remind me"})

	at := time.Now().Add(time.Hour).UTC().Truncate(time.Second)
	w := performRequest(r, http.MethodPatch, "/api/notes/"+note.ID+"/reminder", models.SetReminderRequest{Reminder: &at})
	require.Equal(t, http.StatusOK, w.Code)
	got := decodeNote(t, w)
	require.NotNil(t, got.Reminder)
	assert.Equal(t, at.Unix(), got.Reminder.Unix())

	w = performRequest(r, http.MethodDelete, "/api/notes/"+note.ID+"/reminder", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, decodeNote(t, w).Reminder)
}

func TestConvertNote(t *testing.T) {
	r, st := setupRouter(t)
	note := st.CreateNote(store.NoteDraft{Title: "list", Content: "a\nb"})

	w := performRequest(r, http.MethodPatch, "/api/notes/"+note.ID+"/convert", models.ConvertRequest{To: "checklist"})
	require.Equal(t, http.StatusOK, w.Code)
	converted := decodeNote(t, w)
	assert.True(t, converted.IsChecklist)
	require.Len(t, converted.ChecklistItems, 2)
	assert.Empty(t, converted.Content)

	// 既に目的のモードなら現在の状態をそのまま返す
	w = performRequest(r, http.MethodPatch, "/api/notes/"+note.ID+"/convert", models.ConvertRequest{To: "checklist"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decodeNote(t, w).IsChecklist)

	w = performRequest(r, http.MethodPatch, "/api/notes/"+note.ID+"/convert", models.ConvertRequest{To: "bogus"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = performRequest(r, http.MethodPatch, "/api/notes/missing/convert", models.ConvertRequest{To: "note"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestChecklistItemEndpoints(t *testing.T) {
	r, st := setupRouter(t)
	note := st.CreateNote(store.NoteDraft{Title: "todo", IsChecklist: true})

	w := performRequest(r, http.MethodPost, "/api/notes/"+note.ID+"/checklist", models.AddChecklistItemRequest{Text: "Milk"})
	require.Equal(t, http.StatusCreated, w.Code)
	got := decodeNote(t, w)
	require.Len(t, got.ChecklistItems, 1)
	item := got.ChecklistItems[0]
	assert.Equal(t, "Milk", item.Text)
	assert.False(t, item.Checked)

	// テキスト付きPATCHは本文を更新する
	text := "Oat milk"
	w = performRequest(r, http.MethodPatch, "/api/notes/"+note.ID+"/checklist/"+item.ID, models.UpdateChecklistItemRequest{Text: &text})
	require.Equal(t, http.StatusOK, w.Code)
	got = decodeNote(t, w)
	assert.Equal(t, "Oat milk", got.ChecklistItems[0].Text)
	assert.False(t, got.ChecklistItems[0].Checked)

	// ボディなしのPATCHはチェック状態をトグルする
	w = performRequest(r, http.MethodPatch, "/api/notes/"+note.ID+"/checklist/"+item.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decodeNote(t, w).ChecklistItems[0].Checked)

	w = performRequest(r, http.MethodDelete, "/api/notes/"+note.ID+"/checklist/"+item.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeNote(t, w).ChecklistItems)

	w = performRequest(r, http.MethodPost, "/api/notes/missing/checklist", models.AddChecklistItemRequest{Text: "x"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNoteLabelEndpoints(t *testing.T) {
	r, st := setupRouter(t)
	note := st.CreateNote(store.NoteDraft{Title: "tagged"})
	label := st.CreateLabel("work")

	w := performRequest(r, http.MethodPut, "/api/notes/"+note.ID+"/labels/"+label.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{label.ID}, decodeNote(t, w).Labels)

	// 付与は冪等
	w = performRequest(r, http.MethodPut, "/api/notes/"+note.ID+"/labels/"+label.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{label.ID}, decodeNote(t, w).Labels)

	w = performRequest(r, http.MethodDelete, "/api/notes/"+note.ID+"/labels/"+label.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeNote(t, w).Labels)

	w = performRequest(r, http.MethodPut, "/api/notes/missing/labels/"+label.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
