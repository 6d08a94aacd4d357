package domain

import (
	"time"
)

// Note represents a note domain entity
type Note struct {
	ID             string          `json:"id"`
	Title          string          `json:"title"`
	Content        string          `json:"content"`
	Color          Color           `json:"color"`
	Pinned         bool            `json:"pinned"`
	Archived       bool            `json:"archived"`
	Trashed        bool            `json:"trashed"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
	Reminder       *time.Time      `json:"reminder"`
	Labels         []string        `json:"labels"`
	IsChecklist    bool            `json:"isChecklist"`
	ChecklistItems []ChecklistItem `json:"checklistItems"`
	Images         []string        `json:"images"`
}

// ChecklistItem represents a single checkable item owned by a note
type ChecklistItem struct {
	ID      string `json:"id"`
	Text    string `json:"text"`
	Checked bool   `json:"checked"`
}

// Color represents a note color swatch
type Color string

const (
	ColorDefault Color = "default"
	ColorCoral   Color = "coral"
	ColorPeach   Color = "peach"
	ColorSand    Color = "sand"
	ColorMint    Color = "mint"
	ColorSage    Color = "sage"
	ColorFog     Color = "fog"
	ColorStorm   Color = "storm"
	ColorDusk    Color = "dusk"
	ColorBlossom Color = "blossom"
	ColorClay    Color = "clay"
	ColorChalk   Color = "chalk"
)

// IsValid validates if the color is one of the palette swatches.
// 未知の色も保存自体は許可される（レンダリング時にdefaultへフォールバック）
func (c Color) IsValid() bool {
	switch c {
	case ColorDefault, ColorCoral, ColorPeach, ColorSand, ColorMint, ColorSage,
		ColorFog, ColorStorm, ColorDusk, ColorBlossom, ColorClay, ColorChalk:
		return true
	default:
		return false
	}
}

// String returns string representation of Color
func (c Color) String() string {
	return string(c)
}

// Clone returns a deep copy of the note
func (n Note) Clone() Note {
	clone := n
	if n.Reminder != nil {
		r := *n.Reminder
		clone.Reminder = &r
	}
	clone.Labels = append([]string(nil), n.Labels...)
	clone.ChecklistItems = append([]ChecklistItem(nil), n.ChecklistItems...)
	clone.Images = append([]string(nil), n.Images...)
	return clone
}

// HasLabel reports whether the note carries the given label id
func (n Note) HasLabel(labelID string) bool {
	for _, id := range n.Labels {
		if id == labelID {
			return true
		}
	}
	return false
}
