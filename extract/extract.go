// Package extract reads plain-text documents for comparison.
package extract

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/fwojciec/docdiff"
)

// Compile-time interface verification.
var _ docdiff.Extractor = (*Text)(nil)

// Text extracts plain-text documents: UTF-8 with a Latin-1 fallback,
// line endings normalized to "\n".
type Text struct{}

// NewText creates a new Text extractor.
func NewText() *Text {
	return &Text{}
}

// Extract reads r to the end and returns its normalized text.
func (e *Text) Extract(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	text := string(data)
	if !utf8.Valid(data) {
		decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
		if err != nil {
			return "", fmt.Errorf("decoding as Latin-1: %w", err)
		}
		text = string(decoded)
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return text, nil
}
