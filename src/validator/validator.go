package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// CustomValidator はリクエスト構造体の拡張バリデーションを提供
type CustomValidator struct {
	validator *validator.Validate
}

// ValidationError はバリデーションエラーの詳細情報
type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
	Value   any    `json:"value,omitempty"`
}

// ValidationErrors は複数のバリデーションエラー
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

func (ve ValidationErrors) Error() string {
	return fmt.Sprintf("validation failed: %d errors", len(ve.Errors))
}

// NewCustomValidator creates a new custom validator instance
func NewCustomValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate validates a struct and returns detailed error information
func (cv *CustomValidator) Validate(s interface{}) error {
	if err := cv.validator.Struct(s); err != nil {
		var validationErrors []ValidationError
		for _, err := range err.(validator.ValidationErrors) {
			validationErrors = append(validationErrors, ValidationError{
				Field:   err.Field(),
				Tag:     err.Tag(),
				Value:   err.Value(),
				Message: fmt.Sprintf("%s failed on the '%s' rule", err.Field(), err.Tag()),
			})
		}
		return ValidationErrors{Errors: validationErrors}
	}
	return nil
}

// IsBlankNoteDraft reports whether a creation draft is entirely blank:
// タイトル・本文・全チェックリスト項目が空白のみの場合に真。
// ストア側では強制されない呼び出し側の規約
func IsBlankNoteDraft(title, content string, itemTexts []string) bool {
	if strings.TrimSpace(title) != "" || strings.TrimSpace(content) != "" {
		return false
	}
	for _, text := range itemTexts {
		if strings.TrimSpace(text) != "" {
			return false
		}
	}
	return true
}

// IsBlankLabelName reports whether a label name is blank.
// 空白のみのラベルを避けるのは呼び出し側の責務
func IsBlankLabelName(name string) bool {
	return strings.TrimSpace(name) == ""
}
