package chunk_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/docdiff"
	"github.com/fwojciec/docdiff/chunk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// wordCount is the token counter used throughout: one token per
// whitespace-delimited word.
func wordCount(s string) int {
	return len(strings.Fields(s))
}

func joinChunks(chunks []docdiff.Chunk) string {
	var sb strings.Builder
	for _, c := range chunks {
		sb.WriteString(c.Text)
	}
	return sb.String()
}

func TestSplitter_Split_Lossless(t *testing.T) {
	t.Parallel()

	texts := []string{
		"one two three four five six seven eight",
		"First paragraph here.\n\nSecond paragraph follows.\n\nThird one.",
		"One sentence. Another sentence! A third? And more text after.",
		"line one\nline two\nline three\nline four",
		"trailing separators keep their place.\n\n",
	}

	for _, maxTokens := range []int{1, 2, 3, 100} {
		s := chunk.NewSplitter(maxTokens, wordCount)
		for _, text := range texts {
			chunks, err := s.Split(text)
			require.NoError(t, err)
			assert.Equal(t, text, joinChunks(chunks), "max %d text %q", maxTokens, text)
		}
	}
}

func TestSplitter_Split_RespectsBudget(t *testing.T) {
	t.Parallel()

	s := chunk.NewSplitter(3, wordCount)
	text := "Alpha beta gamma delta. Epsilon zeta eta theta.\n\nIota kappa lambda mu nu xi."

	chunks, err := s.Split(text)
	require.NoError(t, err)
	require.NotEmpty(t, chunks)

	for i, c := range chunks {
		assert.LessOrEqual(t, c.TokenCount, 3, "chunk %d: %q", i, c.Text)
		assert.Equal(t, wordCount(c.Text), c.TokenCount)
	}
}

func TestSplitter_Split_PrefersParagraphBoundaries(t *testing.T) {
	t.Parallel()

	s := chunk.NewSplitter(4, wordCount)
	text := "one two three\n\nfour five six"

	chunks, err := s.Split(text)
	require.NoError(t, err)

	require.Len(t, chunks, 2)
	assert.Equal(t, "one two three\n\n", chunks[0].Text)
	assert.Equal(t, "four five six", chunks[1].Text)
}

func TestSplitter_Split_OversizedIndivisibleUnit(t *testing.T) {
	t.Parallel()

	// A single word that exceeds the budget is emitted as its own
	// oversized chunk, never truncated.
	s := chunk.NewSplitter(2, func(s string) int { return len(s) })

	chunks, err := s.Split("supercalifragilistic")
	require.NoError(t, err)

	require.Len(t, chunks, 1)
	assert.Equal(t, "supercalifragilistic", chunks[0].Text)
	assert.Greater(t, chunks[0].TokenCount, 2)
}

func TestSplitter_Split_SmallTextIsOneChunk(t *testing.T) {
	t.Parallel()

	s := chunk.NewSplitter(100, wordCount)

	chunks, err := s.Split("fits in one chunk")
	require.NoError(t, err)

	require.Len(t, chunks, 1)
	assert.Equal(t, "fits in one chunk", chunks[0].Text)
	assert.Equal(t, 4, chunks[0].TokenCount)
}

func TestSplitter_Split_Empty(t *testing.T) {
	t.Parallel()

	s := chunk.NewSplitter(10, wordCount)

	chunks, err := s.Split("")
	require.NoError(t, err)
	assert.Empty(t, chunks)
}

func TestPair(t *testing.T) {
	t.Parallel()

	t.Run("pads the shorter old side", func(t *testing.T) {
		t.Parallel()

		old := []docdiff.Chunk{{Text: "a", TokenCount: 1}}
		new := []docdiff.Chunk{{Text: "a", TokenCount: 1}, {Text: "b", TokenCount: 1}, {Text: "c", TokenCount: 1}}

		old, new = chunk.Pair(old, new)

		require.Len(t, old, 3)
		require.Len(t, new, 3)
		assert.Equal(t, docdiff.Chunk{}, old[1])
		assert.Equal(t, docdiff.Chunk{}, old[2])
	})

	t.Run("pads the shorter new side", func(t *testing.T) {
		t.Parallel()

		old := []docdiff.Chunk{{Text: "a"}, {Text: "b"}}
		new := []docdiff.Chunk{{Text: "a"}}

		old, new = chunk.Pair(old, new)

		require.Len(t, old, 2)
		require.Len(t, new, 2)
		assert.Equal(t, docdiff.Chunk{}, new[1])
	})

	t.Run("equal lengths are unchanged", func(t *testing.T) {
		t.Parallel()

		old := []docdiff.Chunk{{Text: "a"}}
		new := []docdiff.Chunk{{Text: "b"}}

		gotOld, gotNew := chunk.Pair(old, new)
		assert.Equal(t, old, gotOld)
		assert.Equal(t, new, gotNew)
	})
}
