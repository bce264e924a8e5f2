// Package compare implements the document comparison pipelines: a
// deterministic line/word alignment path and a chunked semantic path
// backed by an external oracle.
package compare

import (
	"strings"

	"github.com/fwojciec/docdiff"
	"github.com/fwojciec/docdiff/align"
)

// Basic compares two documents deterministically: normalized lines are
// aligned and lines paired inside a replace span get word-level diffs.
type Basic struct {
	Options docdiff.NormalizeOptions
	Differ  docdiff.WordDiffer
}

// NewBasic creates a Basic comparer with the given normalization options
// and word differ.
func NewBasic(opts docdiff.NormalizeOptions, differ docdiff.WordDiffer) *Basic {
	return &Basic{Options: opts, Differ: differ}
}

// Compare produces a Result for the two documents. Identical inputs
// short-circuit without aligning.
func (b *Basic) Compare(oldText, newText string) *docdiff.Result {
	res := &docdiff.Result{}
	if oldText == newText {
		res.Identical = true
		res.IdenticalRaw = true
		return res
	}

	oldNorm := docdiff.Normalize(oldText, b.Options)
	newNorm := docdiff.Normalize(newText, b.Options)
	if oldNorm == newNorm {
		res.Identical = true
		return res
	}

	oldLines := strings.Split(oldNorm, "\n")
	newLines := strings.Split(newNorm, "\n")

	var blocks []docdiff.ChangeBlock
	for _, op := range align.Diff(oldLines, newLines) {
		switch op.Kind {
		case align.Equal:
			for _, line := range oldLines[op.I1:op.I2] {
				blocks = append(blocks, docdiff.ChangeBlock{
					Status:  docdiff.StatusEqual,
					OldText: line,
					NewText: line,
				})
			}
		case align.Insert:
			for _, line := range newLines[op.J1:op.J2] {
				blocks = append(blocks, docdiff.ChangeBlock{
					Status:  docdiff.StatusAdded,
					NewText: line,
				})
			}
		case align.Delete:
			for _, line := range oldLines[op.I1:op.I2] {
				blocks = append(blocks, docdiff.ChangeBlock{
					Status:  docdiff.StatusDeleted,
					OldText: line,
				})
			}
		case align.Replace:
			blocks = append(blocks, b.replaceBlocks(oldLines[op.I1:op.I2], newLines[op.J1:op.J2])...)
		}
	}

	res.Blocks = blocks
	res.Summary = docdiff.Summarize(blocks)
	return res
}

// replaceBlocks pairs the lines of a replace span index-wise: paired
// lines become modified blocks with word diffs, leftovers on either side
// become added or deleted blocks.
func (b *Basic) replaceBlocks(oldLines, newLines []string) []docdiff.ChangeBlock {
	n := max(len(oldLines), len(newLines))
	blocks := make([]docdiff.ChangeBlock, 0, n)
	for i := 0; i < n; i++ {
		var oldLine, newLine string
		if i < len(oldLines) {
			oldLine = oldLines[i]
		}
		if i < len(newLines) {
			newLine = newLines[i]
		}
		switch {
		case oldLine != "" && newLine != "":
			blocks = append(blocks, docdiff.ChangeBlock{
				Status:    docdiff.StatusModified,
				OldText:   oldLine,
				NewText:   newLine,
				WordDiffs: b.Differ.Diff(oldLine, newLine),
			})
		case newLine != "":
			blocks = append(blocks, docdiff.ChangeBlock{
				Status:  docdiff.StatusAdded,
				NewText: newLine,
			})
		case oldLine != "":
			blocks = append(blocks, docdiff.ChangeBlock{
				Status:  docdiff.StatusDeleted,
				OldText: oldLine,
			})
		}
	}
	return blocks
}
