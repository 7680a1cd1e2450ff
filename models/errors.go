package models

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// ValidationError reports bad input shape or bounds. It is the caller's
// fault and is never retried.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func trimPrompt(s string) string {
	return strings.TrimSpace(s)
}

func validatePrompt(s string) error {
	if s == "" {
		return &ValidationError{Field: "product_prompt", Message: "product prompt cannot be empty or only whitespace"}
	}
	if n := utf8.RuneCountInString(s); n < MinPromptLen || n > MaxPromptLen {
		return &ValidationError{Field: "product_prompt", Message: fmt.Sprintf("product prompt must be between %d and %d characters", MinPromptLen, MaxPromptLen)}
	}
	return nil
}
