package align_test

import (
	"testing"

	"github.com/fwojciec/docdiff/align"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiff_IdenticalSequences(t *testing.T) {
	t.Parallel()

	seq := []string{"a", "b", "c", "d"}
	ops := align.Diff(seq, seq)

	require.Len(t, ops, 1)
	assert.Equal(t, align.Opcode{Kind: align.Equal, I1: 0, I2: 4, J1: 0, J2: 4}, ops[0])
}

func TestDiff_EmptySequences(t *testing.T) {
	t.Parallel()

	t.Run("both empty yields no opcodes", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, align.Diff[string](nil, nil))
	})

	t.Run("empty old yields a single insert", func(t *testing.T) {
		t.Parallel()

		ops := align.Diff(nil, []string{"a", "b"})
		require.Len(t, ops, 1)
		assert.Equal(t, align.Opcode{Kind: align.Insert, I1: 0, I2: 0, J1: 0, J2: 2}, ops[0])
	})

	t.Run("empty new yields a single delete", func(t *testing.T) {
		t.Parallel()

		ops := align.Diff([]string{"a", "b"}, nil)
		require.Len(t, ops, 1)
		assert.Equal(t, align.Opcode{Kind: align.Delete, I1: 0, I2: 2, J1: 0, J2: 0}, ops[0])
	})
}

func TestDiff_ReplaceInMiddle(t *testing.T) {
	t.Parallel()

	ops := align.Diff([]string{"a", "b", "c"}, []string{"a", "x", "c"})

	require.Len(t, ops, 3)
	assert.Equal(t, align.Opcode{Kind: align.Equal, I1: 0, I2: 1, J1: 0, J2: 1}, ops[0])
	assert.Equal(t, align.Opcode{Kind: align.Replace, I1: 1, I2: 2, J1: 1, J2: 2}, ops[1])
	assert.Equal(t, align.Opcode{Kind: align.Equal, I1: 2, I2: 3, J1: 2, J2: 3}, ops[2])
}

func TestDiff_TieBreakPrefersLowestOldIndex(t *testing.T) {
	t.Parallel()

	// Two equally long matching blocks exist in old (at 1 and 3); the
	// one starting earlier must win.
	ops := align.Diff([]string{"x", "a", "b", "a", "b"}, []string{"a", "b"})

	require.Len(t, ops, 3)
	assert.Equal(t, align.Opcode{Kind: align.Delete, I1: 0, I2: 1, J1: 0, J2: 0}, ops[0])
	assert.Equal(t, align.Opcode{Kind: align.Equal, I1: 1, I2: 3, J1: 0, J2: 2}, ops[1])
	assert.Equal(t, align.Opcode{Kind: align.Delete, I1: 3, I2: 5, J1: 2, J2: 2}, ops[2])
}

// Opcode ranges must be contiguous, non-overlapping, and cover both
// sequences exactly once, in order; equal opcodes must name equal tokens.
func TestDiff_CoverageInvariant(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		old, new []string
	}{
		{"disjoint", []string{"a", "b"}, []string{"x", "y", "z"}},
		{"shared prefix and suffix", []string{"a", "b", "c", "d"}, []string{"a", "x", "d"}},
		{"interleaved", []string{"a", "x", "b", "y", "c"}, []string{"a", "b", "c"}},
		{"repeats", []string{"a", "a", "b", "a"}, []string{"a", "b", "b", "a"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ops := align.Diff(tc.old, tc.new)

			i, j := 0, 0
			var oldSide, newSide []string
			for _, op := range ops {
				require.Equal(t, i, op.I1, "old ranges must be contiguous")
				require.Equal(t, j, op.J1, "new ranges must be contiguous")
				if op.Kind == align.Equal {
					assert.Equal(t, tc.old[op.I1:op.I2], tc.new[op.J1:op.J2])
				}
				oldSide = append(oldSide, tc.old[op.I1:op.I2]...)
				newSide = append(newSide, tc.new[op.J1:op.J2]...)
				i, j = op.I2, op.J2
			}
			assert.Equal(t, len(tc.old), i)
			assert.Equal(t, len(tc.new), j)
			assert.Equal(t, tc.old, oldSide, "old-side opcode ranges must reconstruct old")
			assert.Equal(t, tc.new, newSide, "new-side opcode ranges must reconstruct new")
		})
	}
}

func TestMatchingBlocks_EndsWithSentinel(t *testing.T) {
	t.Parallel()

	old := []int{1, 2, 3}
	new := []int{2, 3, 4}
	blocks := align.MatchingBlocks(old, new)

	require.NotEmpty(t, blocks)
	last := blocks[len(blocks)-1]
	assert.Equal(t, align.Match{A: 3, B: 3, Size: 0}, last)
}

func TestRatio(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1.0, align.Ratio([]string{"a", "b"}, []string{"a", "b"}))
	assert.Equal(t, 0.0, align.Ratio([]string{"a"}, []string{"b"}))
	assert.Equal(t, 1.0, align.Ratio[string](nil, nil))
	assert.Equal(t, 0.5, align.Ratio([]string{"a", "b", "c"}, []string{"c"}))
}
