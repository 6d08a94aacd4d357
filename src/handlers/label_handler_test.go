package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"keep-app/src/domain"
	"keep-app/src/models"
	"keep-app/src/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListLabels(t *testing.T) {
	r, st := setupRouter(t)

	w := performRequest(r, http.MethodGet, "/api/labels", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())

	st.CreateLabel("work")
	st.CreateLabel("home")

	w = performRequest(r, http.MethodGet, "/api/labels", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var labels []domain.Label
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &labels))
	require.Len(t, labels, 2)
	assert.Equal(t, "work", labels[0].Name)
	assert.Equal(t, "home", labels[1].Name)
}

func TestCreateLabel(t *testing.T) {
	r, _ := setupRouter(t)

	w := performRequest(r, http.MethodPost, "/api/labels", models.CreateLabelRequest{Name: "groceries"})
	require.Equal(t, http.StatusCreated, w.Code)
	var label domain.Label
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &label))
	assert.NotEmpty(t, label.ID)
	assert.Equal(t, "groceries", label.Name)
}

func TestCreateLabelRejectsBlankName(t *testing.T) {
	r, st := setupRouter(t)

	// nameは必須（バインディング）
	w := performRequest(r, http.MethodPost, "/api/labels", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// 空白のみの名前はハンドラー側で弾く
	w = performRequest(r, http.MethodPost, "/api/labels", models.CreateLabelRequest{Name: "   "})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	assert.Empty(t, st.Labels())
}

func TestRenameLabel(t *testing.T) {
	r, st := setupRouter(t)
	label := st.CreateLabel("old")

	w := performRequest(r, http.MethodPut, "/api/labels/"+label.ID, models.RenameLabelRequest{Name: "new"})
	assert.Equal(t, http.StatusNoContent, w.Code)

	labels := st.Labels()
	require.Len(t, labels, 1)
	assert.Equal(t, "new", labels[0].Name)

	w = performRequest(r, http.MethodPut, "/api/labels/missing", models.RenameLabelRequest{Name: "x"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteLabelCascadesIntoNotes(t *testing.T) {
	r, st := setupRouter(t)

	label := st.CreateLabel("doomed")
	other := st.CreateLabel("survivor")
	note := st.CreateNote(store.NoteDraft{Title: "tagged"})
	require.True(t, st.AddLabelToNote(note.ID, label.ID))
	require.True(t, st.AddLabelToNote(note.ID, other.ID))

	w := performRequest(r, http.MethodDelete, "/api/labels/"+label.ID, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	// ノート側の参照も一括で外れ、他のラベルは残る
	got := st.GetNote(note.ID)
	require.NotNil(t, got)
	assert.Equal(t, []string{other.ID}, got.Labels)

	w = performRequest(r, http.MethodDelete, "/api/labels/"+label.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
