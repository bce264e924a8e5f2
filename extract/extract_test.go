package extract_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fwojciec/docdiff/extract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestText_Extract_UTF8Passthrough(t *testing.T) {
	t.Parallel()

	e := extract.NewText()

	got, err := e.Extract(strings.NewReader("héllo wörld\nsecond line"))
	require.NoError(t, err)
	assert.Equal(t, "héllo wörld\nsecond line", got)
}

func TestText_Extract_NormalizesLineEndings(t *testing.T) {
	t.Parallel()

	e := extract.NewText()

	got, err := e.Extract(strings.NewReader("one\r\ntwo\rthree\n"))
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo\nthree\n", got)
}

func TestText_Extract_Latin1Fallback(t *testing.T) {
	t.Parallel()

	e := extract.NewText()

	// "café" encoded as Latin-1: 0xE9 is not valid UTF-8 on its own.
	got, err := e.Extract(bytes.NewReader([]byte{'c', 'a', 'f', 0xE9}))
	require.NoError(t, err)
	assert.Equal(t, "café", got)
}

func TestText_Extract_Empty(t *testing.T) {
	t.Parallel()

	e := extract.NewText()

	got, err := e.Extract(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, "", got)
}
