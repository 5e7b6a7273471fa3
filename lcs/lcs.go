// Package lcs aligns token sequences by longest common subsequence. It
// labels blocks for training against gold text and scores extracted text.
package lcs

import "math/bits"

// DPCellLimit is the largest table, in cells, the dynamic programme
// allocates. Larger inputs use Hunt–Szymanski.
const DPCellLimit = 1 << 22

// HSPairLimit is the largest number of matching pairs Hunt–Szymanski is
// given. Its link storage grows with the pair count, so denser inputs
// beyond DPCellLimit fall back to Hirschberg's linear-space algorithm.
const HSPairLimit = 1 << 22

// Method identifies the algorithm that produced an Alignment.
type Method string

// Alignment methods.
const (
	MethodDP            Method = "dp"
	MethodHuntSzymanski Method = "hunt-szymanski"
	MethodHirschberg    Method = "hirschberg"
)

// Alignment maps candidate positions onto reference positions.
type Alignment struct {
	// Match holds, for each candidate position, the aligned reference
	// position, or -1 if the candidate token is not part of the LCS.
	Match []int

	// Length is the length of the longest common subsequence.
	Length int

	// Truncated is set when the token budget cut either input.
	Truncated bool

	Method Method
}

// Matched returns the matched candidate positions in order.
func (a Alignment) Matched() []int {
	out := make([]int, 0, a.Length)
	for i, j := range a.Match {
		if j >= 0 {
			out = append(out, i)
		}
	}
	return out
}

// Align computes a longest common subsequence of candidate and reference.
// Both inputs are truncated to budget tokens when budget is positive; the
// result is then the alignment of the truncated prefixes. Small inputs and
// inputs with many matching pairs use the O(n·m) dynamic programme; the
// rest use Hunt–Szymanski, or Hirschberg when the pairs exceed
// HSPairLimit. When several subsequences are longest, the dynamic programme
// and Hunt–Szymanski report the one matching the earliest candidate
// positions; Hirschberg reports any of them.
func Align[T comparable](candidate, reference []T, budget int) Alignment {
	n := len(candidate)
	a, b, truncated := truncate(candidate, reference, budget)

	var match []int
	method := choose(a, b)
	switch method {
	case MethodDP:
		match = DynamicProgramming(a, b)
	case MethodHirschberg:
		match = Hirschberg(a, b)
	default:
		match = HuntSzymanski(a, b)
	}

	out := Alignment{Match: make([]int, n), Truncated: truncated, Method: method}
	for i := range out.Match {
		out.Match[i] = -1
	}
	for i, j := range match {
		out.Match[i] = j
		if j >= 0 {
			out.Length++
		}
	}
	return out
}

// Length returns the LCS length of a and b. It is symmetric in its arguments.
func Length[T comparable](a, b []T) int {
	return Align(a, b, 0).Length
}

func truncate[T comparable](a, b []T, budget int) ([]T, []T, bool) {
	if budget <= 0 {
		return a, b, false
	}
	truncated := false
	if len(a) > budget {
		a, truncated = a[:budget], true
	}
	if len(b) > budget {
		b, truncated = b[:budget], true
	}
	return a, b, truncated
}

// choose picks the cheapest method for a and b. The dynamic programme
// wins when the table fits DPCellLimit and the matching pairs, which drive
// Hunt–Szymanski's cost, are not sparse relative to the table.
func choose[T comparable](a, b []T) Method {
	counts := make(map[T]int, len(b))
	for _, t := range b {
		counts[t]++
	}
	pairs := 0
	for _, t := range a {
		pairs += counts[t]
	}

	cells := (len(a) + 1) * (len(b) + 1)
	if cells <= DPCellLimit {
		logN := bits.Len(uint(len(a)) + 1)
		if pairs*logN >= cells/4 {
			return MethodDP
		}
		return MethodHuntSzymanski
	}
	if pairs > HSPairLimit {
		return MethodHirschberg
	}
	return MethodHuntSzymanski
}
