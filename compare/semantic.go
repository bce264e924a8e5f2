package compare

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/fwojciec/docdiff"
	"github.com/fwojciec/docdiff/chunk"
)

// Semantic compares two documents through an external change-block
// oracle, one chunk pair at a time. Both documents are split with the
// same budget and padded to the same chunk count; chunk i of the old
// document is always compared against chunk i of the new one. Trivial
// pairs (blank, one-sided, byte-identical) never reach the oracle.
type Semantic struct {
	Oracle   docdiff.Oracle
	Splitter *chunk.Splitter
	Differ   docdiff.WordDiffer

	// Concurrency caps in-flight oracle calls; values below 1 mean
	// sequential processing. Results are reassembled in chunk order
	// regardless.
	Concurrency int

	calls atomic.Int64
}

// NewSemantic creates a sequential Semantic comparer.
func NewSemantic(oracle docdiff.Oracle, splitter *chunk.Splitter, differ docdiff.WordDiffer) *Semantic {
	return &Semantic{Oracle: oracle, Splitter: splitter, Differ: differ, Concurrency: 1}
}

// Compare produces a Result for the two documents. Any chunking,
// oracle, or validation failure aborts the comparison; the error is
// wrapped with the failing chunk's index so the caller can decide
// retry/drop policy.
func (s *Semantic) Compare(ctx context.Context, oldText, newText string) (*docdiff.Result, error) {
	res := &docdiff.Result{}
	if oldText == newText {
		res.Identical = true
		res.IdenticalRaw = true
		return res, nil
	}

	oldChunks, err := s.Splitter.Split(oldText)
	if err != nil {
		return nil, fmt.Errorf("splitting old document: %w", err)
	}
	newChunks, err := s.Splitter.Split(newText)
	if err != nil {
		return nil, fmt.Errorf("splitting new document: %w", err)
	}
	oldChunks, newChunks = chunk.Pair(oldChunks, newChunks)

	perChunk := make([][]docdiff.ChangeBlock, len(oldChunks))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(s.Concurrency, 1))
	for i := range oldChunks {
		g.Go(func() error {
			blocks, err := s.comparePair(ctx, oldChunks[i].Text, newChunks[i].Text)
			if err != nil {
				return fmt.Errorf("chunk %d: %w", i, err)
			}
			perChunk[i] = blocks
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, blocks := range perChunk {
		res.Blocks = append(res.Blocks, blocks...)
	}
	res.Summary = docdiff.Summarize(res.Blocks)
	return res, nil
}

// Calls reports how many oracle calls this comparer has made.
func (s *Semantic) Calls() int {
	return int(s.calls.Load())
}

func (s *Semantic) comparePair(ctx context.Context, oldChunk, newChunk string) ([]docdiff.ChangeBlock, error) {
	oldBlank := strings.TrimSpace(oldChunk) == ""
	newBlank := strings.TrimSpace(newChunk) == ""
	switch {
	case oldBlank && newBlank:
		return nil, nil
	case oldBlank:
		return []docdiff.ChangeBlock{{Status: docdiff.StatusAdded, NewText: newChunk}}, nil
	case newBlank:
		return []docdiff.ChangeBlock{{Status: docdiff.StatusDeleted, OldText: oldChunk}}, nil
	case oldChunk == newChunk:
		return []docdiff.ChangeBlock{{Status: docdiff.StatusEqual, OldText: oldChunk, NewText: newChunk}}, nil
	}

	s.calls.Add(1)
	raw, err := s.Oracle.ChangeBlocks(ctx, oldChunk, newChunk)
	if err != nil {
		return nil, err
	}
	return docdiff.ValidateBlocks(raw, s.Differ)
}
