// Package align computes a longest-common-subsequence alignment between
// two token sequences, producing edit opcodes. Granularity is a property
// of the token type: the same algorithm serves line-level and word-level
// alignment.
package align

import "sort"

// Kind labels an Opcode.
type Kind int

// Opcode kinds.
const (
	Equal Kind = iota
	Insert
	Delete
	Replace
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case Equal:
		return "equal"
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	case Replace:
		return "replace"
	}
	return "unknown"
}

// Opcode describes how old[I1:I2] maps to new[J1:J2]. The opcodes
// returned by Diff are contiguous, non-overlapping, and cover both
// sequences exactly once, in order.
type Opcode struct {
	Kind           Kind
	I1, I2, J1, J2 int
}

// Match is a maximal run of equal tokens: old[A:A+Size] == new[B:B+Size].
type Match struct {
	A, B, Size int
}

// Diff aligns old and new and returns the opcodes describing the edit.
// Aligning two empty sequences yields no opcodes; an empty old against a
// non-empty new yields a single insert, and symmetrically for delete.
func Diff[T comparable](old, new []T) []Opcode {
	matches := MatchingBlocks(old, new)
	ops := make([]Opcode, 0, len(matches)*2)
	i, j := 0, 0
	for _, m := range matches {
		if i < m.A || j < m.B {
			kind := Replace
			switch {
			case j == m.B:
				kind = Delete
			case i == m.A:
				kind = Insert
			}
			ops = append(ops, Opcode{Kind: kind, I1: i, I2: m.A, J1: j, J2: m.B})
		}
		if m.Size > 0 {
			ops = append(ops, Opcode{Kind: Equal, I1: m.A, I2: m.A + m.Size, J1: m.B, J2: m.B + m.Size})
		}
		i, j = m.A+m.Size, m.B+m.Size
	}
	return ops
}

// MatchingBlocks returns the matching blocks between old and new, in
// ascending order, terminated by a zero-size sentinel at (len(old),
// len(new)). The matching greedily takes the longest block, then repeats
// on the unmatched regions before and after it, using an explicit
// worklist rather than recursion.
func MatchingBlocks[T comparable](old, new []T) []Match {
	// Index every token of new by value for near-linear matching.
	b2j := make(map[T][]int, len(new))
	for j, tok := range new {
		b2j[tok] = append(b2j[tok], j)
	}

	type region struct{ alo, ahi, blo, bhi int }
	queue := []region{{0, len(old), 0, len(new)}}
	var matches []Match
	for len(queue) > 0 {
		r := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		m := longestMatch(old, b2j, r.alo, r.ahi, r.blo, r.bhi)
		if m.Size == 0 {
			continue
		}
		matches = append(matches, m)
		if r.alo < m.A && r.blo < m.B {
			queue = append(queue, region{r.alo, m.A, r.blo, m.B})
		}
		if m.A+m.Size < r.ahi && m.B+m.Size < r.bhi {
			queue = append(queue, region{m.A + m.Size, r.ahi, m.B + m.Size, r.bhi})
		}
	}
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].A != matches[j].A {
			return matches[i].A < matches[j].A
		}
		return matches[i].B < matches[j].B
	})

	// Merge adjacent blocks so each match is maximal.
	merged := make([]Match, 0, len(matches)+1)
	for _, m := range matches {
		if n := len(merged); n > 0 &&
			merged[n-1].A+merged[n-1].Size == m.A &&
			merged[n-1].B+merged[n-1].Size == m.B {
			merged[n-1].Size += m.Size
			continue
		}
		merged = append(merged, m)
	}
	return append(merged, Match{A: len(old), B: len(new)})
}

// Ratio returns a similarity measure in [0, 1]: twice the number of
// matched tokens over the total number of tokens in both sequences.
func Ratio[T comparable](old, new []T) float64 {
	total := len(old) + len(new)
	if total == 0 {
		return 1
	}
	matched := 0
	for _, m := range MatchingBlocks(old, new) {
		matched += m.Size
	}
	return 2 * float64(matched) / float64(total)
}

// longestMatch finds the longest block of equal tokens with
// old[A:A+Size] inside [alo:ahi) and new[B:B+Size] inside [blo:bhi).
// Among blocks of equal length it prefers the one starting earliest in
// old, then earliest in new.
func longestMatch[T comparable](old []T, b2j map[T][]int, alo, ahi, blo, bhi int) Match {
	best := Match{A: alo, B: blo}
	// j2len[j] is the length of the longest match ending at old[i-1],
	// new[j]; rebuilt row by row.
	j2len := map[int]int{}
	for i := alo; i < ahi; i++ {
		row := make(map[int]int)
		for _, j := range b2j[old[i]] {
			if j < blo {
				continue
			}
			if j >= bhi {
				break
			}
			k := j2len[j-1] + 1
			row[j] = k
			if k > best.Size {
				best = Match{A: i - k + 1, B: j - k + 1, Size: k}
			}
		}
		j2len = row
	}
	return best
}
