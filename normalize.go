package docdiff

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// NormalizeOptions selects the transformations Normalize applies before
// alignment.
type NormalizeOptions struct {
	FoldCase         bool // Lowercase all alphabetic characters
	StripPunctuation bool // Remove punctuation, collapsing whitespace within lines
	Dehyphenate      bool // Rejoin words split by a line-final hyphen
}

// punctuation is the fixed set removed by StripPunctuation.
const punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// Normalize applies the selected transformations to text. It is pure
// and idempotent: normalizing already-normalized text is a no-op.
//
// Dehyphenation runs first, on the raw text, so that case folding
// cannot turn an uppercase continuation into a joinable one. The
// remaining transformations operate within lines and never change the
// line count.
func Normalize(text string, opts NormalizeOptions) string {
	if opts.Dehyphenate {
		text = dehyphenate(text)
	}
	if !opts.FoldCase && !opts.StripPunctuation {
		return text
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if opts.FoldCase {
			line = strings.ToLower(line)
		}
		if opts.StripPunctuation {
			line = stripPunctuation(line)
		}
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

// dehyphenate removes a line-final hyphen and its line break when the
// continuation starts with a lowercase letter. A blank line, uppercase
// letter, or digit after the break leaves the hyphen intact.
func dehyphenate(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); {
		if text[i] == '-' && i+1 < len(text) && text[i+1] == '\n' {
			r, _ := utf8.DecodeRuneInString(text[i+2:])
			if unicode.IsLower(r) {
				i += 2 // drop the hyphen and the break
				continue
			}
		}
		b.WriteByte(text[i])
		i++
	}
	return b.String()
}

// stripPunctuation removes the fixed punctuation set from a single line
// and collapses the resulting whitespace runs to single spaces, trimming
// the line's edges.
func stripPunctuation(line string) string {
	var b strings.Builder
	b.Grow(len(line))
	pendingSpace := false
	for _, r := range line {
		if r < utf8.RuneSelf && strings.ContainsRune(punctuation, r) {
			continue
		}
		if r == ' ' || r == '\t' {
			pendingSpace = true
			continue
		}
		if pendingSpace && b.Len() > 0 {
			b.WriteByte(' ')
		}
		pendingSpace = false
		b.WriteRune(r)
	}
	return b.String()
}
