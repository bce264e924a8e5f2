package docdiff

import "strings"

// Summarize computes aggregate counts over blocks: block counts per
// status plus line and word deltas for the summary view.
func Summarize(blocks []ChangeBlock) Summary {
	var s Summary
	for _, b := range blocks {
		switch b.Status {
		case StatusEqual:
			s.Equal++
		case StatusAdded:
			s.Added++
			s.LinesAdded += countLines(b.NewText)
			s.WordsAdded += countWords(b.NewText)
		case StatusDeleted:
			s.Deleted++
			s.LinesDeleted += countLines(b.OldText)
			s.WordsDeleted += countWords(b.OldText)
		case StatusModified:
			s.Modified++
			for _, span := range b.WordDiffs {
				switch span.Kind {
				case SpanAdded:
					s.WordsAdded += countWords(span.Text)
				case SpanDeleted:
					s.WordsDeleted += countWords(span.Text)
				}
			}
		}
	}
	return s
}

func countLines(text string) int {
	if text == "" {
		return 0
	}
	return strings.Count(text, "\n") + 1
}

func countWords(text string) int {
	return len(strings.Fields(text))
}
