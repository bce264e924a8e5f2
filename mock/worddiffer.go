package mock

import "github.com/fwojciec/docdiff"

// Compile-time interface verification.
var _ docdiff.WordDiffer = (*WordDiffer)(nil)

// WordDiffer is a mock implementation of docdiff.WordDiffer.
type WordDiffer struct {
	DiffFn func(old, new string) []docdiff.WordSpan
}

func (d *WordDiffer) Diff(old, new string) []docdiff.WordSpan {
	return d.DiffFn(old, new)
}
