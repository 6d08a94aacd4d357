package models

// CreateLabelRequest represents the request payload for creating a label
type CreateLabelRequest struct {
	Name string `json:"name" binding:"required"`
}

// RenameLabelRequest represents the request payload for renaming a label
type RenameLabelRequest struct {
	Name string `json:"name" binding:"required"`
}
