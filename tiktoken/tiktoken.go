// Package tiktoken provides a token counter backed by the tiktoken BPE
// vocabularies.
package tiktoken

import (
	"github.com/tiktoken-go/tokenizer"

	"github.com/fwojciec/docdiff"
)

// NewCounter returns a docdiff.TokenCounter using the cl100k_base
// encoding. When a string cannot be encoded the counter falls back to a
// rough bytes/4 estimate rather than failing.
func NewCounter() (docdiff.TokenCounter, error) {
	enc, err := tokenizer.Get(tokenizer.Cl100kBase)
	if err != nil {
		return nil, err
	}
	return func(text string) int {
		count, err := enc.Count(text)
		if err != nil {
			return len(text) / 4
		}
		return count
	}, nil
}
