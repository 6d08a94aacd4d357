package validator_test

import (
	"testing"

	"keep-app/src/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsBlankNoteDraft(t *testing.T) {
	tests := []struct {
		name      string
		title     string
		content   string
		itemTexts []string
		expected  bool
	}{
		{
			name:     "everything empty",
			expected: true,
		},
		{
			name:      "whitespace only",
			title:     "  ",
			content:   "\n\t",
			itemTexts: []string{" ", ""},
			expected:  true,
		},
		{
			name:     "title set",
			title:    "hello",
			expected: false,
		},
		{
			name:     "content set",
			content:  "body",
			expected: false,
		},
		{
			name:      "one checklist item has text",
			itemTexts: []string{"  ", "Milk"},
			expected:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, validator.IsBlankNoteDraft(tt.title, tt.content, tt.itemTexts))
		})
	}
}

func TestIsBlankLabelName(t *testing.T) {
	assert.True(t, validator.IsBlankLabelName(""))
	assert.True(t, validator.IsBlankLabelName("   "))
	assert.False(t, validator.IsBlankLabelName("work"))
	assert.False(t, validator.IsBlankLabelName(" work "))
}

func TestCustomValidator(t *testing.T) {
	cv := validator.NewCustomValidator()

	type payload struct {
		Name string `validate:"required"`
		Mode string `validate:"omitempty,oneof=note checklist"`
	}

	assert.NoError(t, cv.Validate(payload{Name: "x", Mode: "note"}))

	err := cv.Validate(payload{Mode: "bogus"})
	require.Error(t, err)

	verrs, ok := err.(validator.ValidationErrors)
	require.True(t, ok)
	assert.Len(t, verrs.Errors, 2)
}
