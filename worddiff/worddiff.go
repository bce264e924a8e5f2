// Package worddiff computes word-level change spans between two lines.
package worddiff

import (
	"strings"

	"github.com/fwojciec/docdiff"
	"github.com/fwojciec/docdiff/align"
)

// Compile-time interface verification.
var _ docdiff.WordDiffer = (*Differ)(nil)

// Differ tokenizes lines at word granularity and maps alignment opcodes
// to word spans.
type Differ struct{}

// NewDiffer creates a new Differ instance.
func NewDiffer() *Differ {
	return &Differ{}
}

// Tokenize splits s into maximal runs of non-whitespace and whitespace.
// Whitespace runs are kept as their own tokens so that concatenating the
// tokens reproduces s exactly.
func Tokenize(s string) []string {
	if len(s) == 0 {
		return nil
	}
	tokens := make([]string, 0, len(s)/4+1)
	start := 0
	inSpace := isSpace(s[0])
	for i := 1; i < len(s); i++ {
		if isSpace(s[i]) != inSpace {
			tokens = append(tokens, s[start:i])
			start = i
			inSpace = !inSpace
		}
	}
	return append(tokens, s[start:])
}

// Diff returns the ordered spans describing how old becomes new: one
// span per opcode side. A replace opcode expands into a deleted span
// followed by an added span, with no further alignment inside it.
func (d *Differ) Diff(old, new string) []docdiff.WordSpan {
	oldTokens := Tokenize(old)
	newTokens := Tokenize(new)

	var spans []docdiff.WordSpan
	for _, op := range align.Diff(oldTokens, newTokens) {
		switch op.Kind {
		case align.Equal:
			spans = append(spans, span(newTokens[op.J1:op.J2], docdiff.SpanUnchanged))
		case align.Delete:
			spans = append(spans, span(oldTokens[op.I1:op.I2], docdiff.SpanDeleted))
		case align.Insert:
			spans = append(spans, span(newTokens[op.J1:op.J2], docdiff.SpanAdded))
		case align.Replace:
			spans = append(spans,
				span(oldTokens[op.I1:op.I2], docdiff.SpanDeleted),
				span(newTokens[op.J1:op.J2], docdiff.SpanAdded))
		}
	}
	return spans
}

func span(tokens []string, kind docdiff.SpanKind) docdiff.WordSpan {
	return docdiff.WordSpan{Text: strings.Join(tokens, ""), Kind: kind}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
