package handlers

import (
	"net/http"

	"keep-app/src/models"
	"keep-app/src/store"
	"keep-app/src/validator"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// LabelHandler represents the label handler
type LabelHandler struct {
	store  *store.Store
	logger *logrus.Logger
}

// NewLabelHandler creates a new label handler
func NewLabelHandler(s *store.Store, logger *logrus.Logger) *LabelHandler {
	return &LabelHandler{
		store:  s,
		logger: logger,
	}
}

// ListLabels returns all labels
func (h *LabelHandler) ListLabels(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Labels())
}

// CreateLabel creates a new label.
// ストアは空の名前も受け付けるため、空白のみの名前はここで弾く
func (h *LabelHandler) CreateLabel(c *gin.Context) {
	var req models.CreateLabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("リクエストのバインドに失敗")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "details": err.Error()})
		return
	}

	if validator.IsBlankLabelName(req.Name) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Label name cannot be blank"})
		return
	}

	label := h.store.CreateLabel(req.Name)
	c.JSON(http.StatusCreated, label)
}

// RenameLabel replaces the label name
func (h *LabelHandler) RenameLabel(c *gin.Context) {
	id := c.Param("id")

	var req models.RenameLabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "details": err.Error()})
		return
	}

	if validator.IsBlankLabelName(req.Name) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Label name cannot be blank"})
		return
	}

	if !h.store.RenameLabel(id, req.Name) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Label not found"})
		return
	}

	h.logger.WithField("label_id", id).Info("ラベル名を変更しました")
	c.Status(http.StatusNoContent)
}

// DeleteLabel removes the label and cascades into every note's label set
func (h *LabelHandler) DeleteLabel(c *gin.Context) {
	id := c.Param("id")
	if !h.store.DeleteLabel(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Label not found"})
		return
	}
	c.Status(http.StatusNoContent)
}
