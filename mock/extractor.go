package mock

import (
	"io"

	"github.com/fwojciec/docdiff"
)

// Compile-time interface verification.
var _ docdiff.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of docdiff.Extractor.
type Extractor struct {
	ExtractFn func(r io.Reader) (string, error)
}

func (e *Extractor) Extract(r io.Reader) (string, error) {
	return e.ExtractFn(r)
}
