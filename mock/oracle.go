// Package mock provides mock implementations of docdiff interfaces for
// testing.
package mock

import (
	"context"

	"github.com/fwojciec/docdiff"
)

// Compile-time interface verification.
var _ docdiff.Oracle = (*Oracle)(nil)

// Oracle is a mock implementation of docdiff.Oracle.
type Oracle struct {
	ChangeBlocksFn func(ctx context.Context, oldChunk, newChunk string) ([]docdiff.RawBlock, error)
}

func (o *Oracle) ChangeBlocks(ctx context.Context, oldChunk, newChunk string) ([]docdiff.RawBlock, error) {
	return o.ChangeBlocksFn(ctx, oldChunk, newChunk)
}
