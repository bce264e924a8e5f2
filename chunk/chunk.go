// Package chunk partitions document text into token-budgeted chunks for
// processing by an external service with a bounded context window.
package chunk

import (
	"regexp"
	"strings"

	"github.com/fwojciec/docdiff"
)

// Cut-point patterns, tried in strict fallback order. Each match marks a
// position after which the text may be cut; separators stay attached to
// the unit before them, so splitting loses nothing.
var levels = []*regexp.Regexp{
	regexp.MustCompile(`\n[ \t]*\n[\s]*`), // paragraph boundaries (blank-line runs)
	regexp.MustCompile(`[.!?]+\s+`),       // sentence boundaries
	regexp.MustCompile(`\n`),              // line boundaries
	regexp.MustCompile(`\s+`),             // word boundaries
}

// Splitter splits text into chunks whose token counts stay within
// MaxTokens, as measured by the injected Count function. A unit that
// still exceeds the budget after word-level splitting is emitted as its
// own oversized chunk rather than truncated.
type Splitter struct {
	MaxTokens int
	Count     docdiff.TokenCounter
}

// NewSplitter creates a Splitter with the given budget and counter.
func NewSplitter(maxTokens int, count docdiff.TokenCounter) *Splitter {
	return &Splitter{MaxTokens: maxTokens, Count: count}
}

// Split partitions text into chunks. The ordered concatenation of the
// chunk texts reproduces text exactly; the reconstruction invariant is
// checked defensively and a violation surfaces as
// *docdiff.InconsistentChunkingError.
func (s *Splitter) Split(text string) ([]docdiff.Chunk, error) {
	if text == "" {
		return nil, nil
	}
	chunks := s.pack(s.explode(text, 0))

	reconstructed := 0
	var joined strings.Builder
	for _, c := range chunks {
		reconstructed += len(c.Text)
		joined.WriteString(c.Text)
	}
	if joined.String() != text {
		return nil, &docdiff.InconsistentChunkingError{
			Chunks:        len(chunks),
			Reconstructed: reconstructed,
			Source:        len(text),
		}
	}
	return chunks, nil
}

// Pair pads the shorter chunk sequence with empty chunks at the end so
// both documents have the same chunk count and chunk i of old is always
// compared against chunk i of new. Pairing is positional, not
// content-based: a document with a large inserted or deleted section
// will misalign chunk boundaries downstream of the insertion.
func Pair(old, new []docdiff.Chunk) ([]docdiff.Chunk, []docdiff.Chunk) {
	for len(old) < len(new) {
		old = append(old, docdiff.Chunk{})
	}
	for len(new) < len(old) {
		new = append(new, docdiff.Chunk{})
	}
	return old, new
}

// explode splits text into units that fit the budget, descending through
// the cut-point levels. A unit no level can split further is returned as
// is, even when oversized.
func (s *Splitter) explode(text string, level int) []string {
	if s.Count(text) <= s.MaxTokens || level >= len(levels) {
		return []string{text}
	}
	parts := cutAfter(text, levels[level])
	if len(parts) == 1 {
		return s.explode(text, level+1)
	}
	var units []string
	for _, p := range parts {
		units = append(units, s.explode(p, level+1)...)
	}
	return units
}

// pack greedily joins consecutive units into chunks while the joined
// text stays within the budget. The budget is checked against the
// counter applied to the joined text, since token counts need not be
// additive across concatenation.
func (s *Splitter) pack(units []string) []docdiff.Chunk {
	var chunks []docdiff.Chunk
	current := ""
	for _, u := range units {
		switch {
		case current == "":
			current = u
		case s.Count(current+u) <= s.MaxTokens:
			current += u
		default:
			chunks = append(chunks, docdiff.Chunk{Text: current, TokenCount: s.Count(current)})
			current = u
		}
	}
	if current != "" {
		chunks = append(chunks, docdiff.Chunk{Text: current, TokenCount: s.Count(current)})
	}
	return chunks
}

// cutAfter splits text after every match of re. A match ending at the
// end of text produces no cut, so the final unit keeps its separator.
func cutAfter(text string, re *regexp.Regexp) []string {
	locs := re.FindAllStringIndex(text, -1)
	parts := make([]string, 0, len(locs)+1)
	prev := 0
	for _, loc := range locs {
		if loc[1] >= len(text) {
			break
		}
		parts = append(parts, text[prev:loc[1]])
		prev = loc[1]
	}
	if prev < len(text) {
		parts = append(parts, text[prev:])
	}
	return parts
}
