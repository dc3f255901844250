package utils

import (
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
)

// TextProcessor provides utilities for cleaning up submitted text
type TextProcessor struct {
	logger *zap.Logger
}

// NewTextProcessor creates a new TextProcessor
func NewTextProcessor(logger *zap.Logger) *TextProcessor {
	return &TextProcessor{
		logger: logger,
	}
}

// Normalize sanitizes a submitted field and trims surrounding whitespace
func (tp *TextProcessor) Normalize(text string) string {
	return strings.TrimSpace(tp.SanitizeUTF8(text))
}

// Length returns the length of text in characters rather than bytes
func (tp *TextProcessor) Length(text string) int {
	return utf8.RuneCountInString(text)
}

// Preview shortens text to at most maxChars characters for display
func (tp *TextProcessor) Preview(text string, maxChars int) string {
	if maxChars <= 0 || utf8.RuneCountInString(text) <= maxChars {
		return text
	}

	runes := []rune(text)
	return string(runes[:maxChars]) + "..."
}

// SanitizeUTF8 drops invalid UTF-8 bytes from text
func (tp *TextProcessor) SanitizeUTF8(text string) string {
	if utf8.ValidString(text) {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	for i, r := range text {
		if r == utf8.RuneError {
			if _, size := utf8.DecodeRuneInString(text[i:]); size == 1 {
				continue
			}
		}
		b.WriteRune(r)
	}

	tp.logger.Debug("Text sanitized",
		zap.Int("original_size", len(text)),
		zap.Int("sanitized_size", b.Len()))

	return b.String()
}
