package docdiff

// ValidateBlocks verifies and repairs a sequence of raw oracle records
// against the change-block invariants, producing fresh ChangeBlock
// values. It is the sole trust boundary between the oracle and the
// output model: no unvalidated record may reach a Result.
//
// A record missing a required field or carrying an unknown status fails
// the whole sequence with a MalformedBlockError. Well-formed records are
// repaired in order:
//
//  1. added blocks have their old text forced empty (old-side content on
//     an added block is oracle noise, not a deletion),
//  2. deleted blocks have their new text forced empty,
//  3. equal blocks with differing texts are reclassified as modified,
//  4. modified blocks get word-level spans from differ.
func ValidateBlocks(raw []RawBlock, differ WordDiffer) ([]ChangeBlock, error) {
	blocks := make([]ChangeBlock, 0, len(raw))
	for i, r := range raw {
		switch {
		case r.Status == nil:
			return nil, &MalformedBlockError{Index: i, Field: "status"}
		case r.OldText == nil:
			return nil, &MalformedBlockError{Index: i, Field: "old_text"}
		case r.NewText == nil:
			return nil, &MalformedBlockError{Index: i, Field: "new_text"}
		}
		status := BlockStatus(*r.Status)
		if !ValidStatus(status) {
			return nil, &MalformedBlockError{Index: i, Status: *r.Status}
		}

		b := ChangeBlock{Status: status, OldText: *r.OldText, NewText: *r.NewText}
		switch b.Status {
		case StatusAdded:
			b.OldText = ""
		case StatusDeleted:
			b.NewText = ""
		case StatusEqual:
			if b.OldText != b.NewText {
				b.Status = StatusModified
			}
		}
		if b.Status == StatusModified {
			b.WordDiffs = differ.Diff(b.OldText, b.NewText)
		}
		blocks = append(blocks, b)
	}
	return blocks, nil
}
