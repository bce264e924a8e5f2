package docdiff

import "fmt"

// MalformedBlockError reports a raw oracle record that is missing a
// required field or carries a status outside the fixed enumeration.
// It is fatal for the containing comparison; callers decide whether to
// drop the chunk pair's blocks or abort the comparison.
type MalformedBlockError struct {
	Index  int    // Position of the record in the validated sequence
	Field  string // Name of the missing field, if any
	Status string // The invalid status value, if any
}

// Error implements the error interface.
func (e *MalformedBlockError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("block %d: missing required field %q", e.Index, e.Field)
	}
	return fmt.Sprintf("block %d: invalid status %q (must be one of equal, added, deleted, modified)",
		e.Index, e.Status)
}

// InconsistentChunkingError reports a violation of the lossless-splitting
// invariant: the concatenated chunk texts did not reproduce the source.
// Unreachable under correct splitting logic, but checked defensively.
type InconsistentChunkingError struct {
	Chunks        int // Number of chunks produced
	Reconstructed int // Byte length of the concatenated chunk texts
	Source        int // Byte length of the source text
}

// Error implements the error interface.
func (e *InconsistentChunkingError) Error() string {
	return fmt.Sprintf("chunking is not lossless: %d chunks reconstruct %d bytes, source has %d bytes",
		e.Chunks, e.Reconstructed, e.Source)
}
