// Package docdiff provides domain types for reconciling two versions of a
// document into a structured sequence of change blocks.
package docdiff

import (
	"context"
	"io"
)

// BlockStatus classifies a ChangeBlock.
type BlockStatus string

// Block statuses.
const (
	StatusEqual    BlockStatus = "equal"
	StatusAdded    BlockStatus = "added"
	StatusDeleted  BlockStatus = "deleted"
	StatusModified BlockStatus = "modified"
)

// ValidStatus reports whether s is one of the four block statuses.
func ValidStatus(s BlockStatus) bool {
	switch s {
	case StatusEqual, StatusAdded, StatusDeleted, StatusModified:
		return true
	}
	return false
}

// ChangeBlock is the externally visible unit of diff output: one
// contiguous changed or unchanged segment of the two documents.
// Invariants: added blocks have empty OldText, deleted blocks have empty
// NewText, equal blocks have OldText == NewText, and WordDiffs is set
// only on modified blocks.
type ChangeBlock struct {
	Status    BlockStatus `json:"status"`
	OldText   string      `json:"old_text"`
	NewText   string      `json:"new_text"`
	WordDiffs []WordSpan  `json:"word_diffs,omitempty"`
}

// SpanKind classifies a WordSpan within a modified block.
type SpanKind string

// Span kinds.
const (
	SpanUnchanged SpanKind = "unchanged"
	SpanAdded     SpanKind = "added"
	SpanDeleted   SpanKind = "deleted"
)

// WordSpan is a word-level annotation inside a modified block.
// Concatenating the unchanged and deleted span texts reproduces the
// block's old text; unchanged and added spans reproduce the new text.
type WordSpan struct {
	Text string   `json:"text"`
	Kind SpanKind `json:"kind"`
}

// Chunk is a token-budgeted slice of a document used to stay within an
// external processing limit. The ordered concatenation of all chunk
// texts reproduces the source document exactly.
type Chunk struct {
	Text       string
	TokenCount int
}

// RawBlock is an untrusted change-block record as produced by the
// external oracle. Fields are pointers so that a missing field can be
// distinguished from an empty one during validation.
type RawBlock struct {
	Status  *string `json:"status"`
	OldText *string `json:"old_text"`
	NewText *string `json:"new_text"`
}

// Summary aggregates counts over a sequence of change blocks.
type Summary struct {
	Equal        int
	Added        int
	Deleted      int
	Modified     int
	LinesAdded   int
	LinesDeleted int
	WordsAdded   int
	WordsDeleted int
}

// Result is the unified output of a comparison, consumed by rendering.
type Result struct {
	Blocks  []ChangeBlock
	Summary Summary

	// Identical is set when the documents compare equal after
	// normalization; IdenticalRaw when the raw extracted texts were
	// already byte-identical.
	Identical    bool
	IdenticalRaw bool
}

// WordDiffer computes word-level change spans between two lines of text.
type WordDiffer interface {
	// Diff returns the ordered spans describing how old becomes new.
	Diff(old, new string) []WordSpan
}

// Oracle is the external semantic-comparison service. Its output is
// untrusted and must pass through ValidateBlocks before reaching a
// Result.
type Oracle interface {
	// ChangeBlocks returns the oracle's change-block records for one
	// chunk pair.
	ChangeBlocks(ctx context.Context, oldChunk, newChunk string) ([]RawBlock, error)
}

// Extractor produces a document's plain text with line endings
// normalized to "\n".
type Extractor interface {
	Extract(r io.Reader) (string, error)
}

// TokenCounter reports how many tokens a tokenizer would produce for
// text. It is injected wherever token budgets apply so the core stays
// independent of any specific tokenizer.
type TokenCounter func(text string) int
