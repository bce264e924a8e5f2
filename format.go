package docdiff

import (
	"fmt"
	"strings"
)

// FormatText renders a Result as plain text. Each block line carries a
// marker: space for equal, '+' for added, '-' for deleted and '~' for
// modified. Word spans inside modified blocks use wdiff-style markup:
// deleted text in [-...-], added text in {+...+}.
func FormatText(res *Result) string {
	var sb strings.Builder
	for _, b := range res.Blocks {
		switch b.Status {
		case StatusEqual:
			writeMarked(&sb, ' ', b.NewText)
		case StatusAdded:
			writeMarked(&sb, '+', b.NewText)
		case StatusDeleted:
			writeMarked(&sb, '-', b.OldText)
		case StatusModified:
			sb.WriteString("~ ")
			for _, span := range b.WordDiffs {
				switch span.Kind {
				case SpanDeleted:
					sb.WriteString("[-")
					sb.WriteString(span.Text)
					sb.WriteString("-]")
				case SpanAdded:
					sb.WriteString("{+")
					sb.WriteString(span.Text)
					sb.WriteString("+}")
				default:
					sb.WriteString(span.Text)
				}
			}
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// FormatSummary renders summary counts as a single human-readable line.
func FormatSummary(s Summary) string {
	return fmt.Sprintf("blocks: %d equal, %d added, %d deleted, %d modified | lines: +%d -%d | words: +%d -%d",
		s.Equal, s.Added, s.Deleted, s.Modified,
		s.LinesAdded, s.LinesDeleted, s.WordsAdded, s.WordsDeleted)
}

func writeMarked(sb *strings.Builder, marker byte, text string) {
	if text == "" {
		return
	}
	for _, line := range strings.Split(text, "\n") {
		sb.WriteByte(marker)
		sb.WriteByte(' ')
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
}
