package lcs

// Hirschberg returns, for each position of a, the matched position in b of
// one longest common subsequence, or -1. It takes O(len(a)·len(b)) time and
// O(len(b)) space per recursion level, so it serves inputs too dense for
// Hunt–Szymanski and too large for the full table.
func Hirschberg[T comparable](a, b []T) []int {
	match := make([]int, len(a))
	for i := range match {
		match[i] = -1
	}
	hirschberg(a, b, 0, 0, match)
	return match
}

func hirschberg[T comparable](a, b []T, ia, ib int, match []int) {
	if len(a) == 0 || len(b) == 0 {
		return
	}
	if len(a) == 1 {
		for j, t := range b {
			if t == a[0] {
				match[ia] = ib + j
				return
			}
		}
		return
	}

	mid := len(a) / 2
	fwd := prefixLengths(a[:mid], b)
	bwd := suffixLengths(a[mid:], b)

	split, best := 0, -1
	for j := range fwd {
		if v := fwd[j] + bwd[j]; v > best {
			split, best = j, v
		}
	}
	hirschberg(a[:mid], b[:split], ia, ib, match)
	hirschberg(a[mid:], b[split:], ia+mid, ib+split, match)
}

// prefixLengths returns row[j] = LCS length of a and b[:j].
func prefixLengths[T comparable](a, b []T) []int {
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for _, x := range a {
		cur[0] = 0
		for j := 1; j <= len(b); j++ {
			if x == b[j-1] {
				cur[j] = prev[j-1] + 1
			} else {
				cur[j] = max(prev[j], cur[j-1])
			}
		}
		prev, cur = cur, prev
	}
	return prev
}

// suffixLengths returns row[j] = LCS length of a and b[j:].
func suffixLengths[T comparable](a, b []T) []int {
	m := len(b)
	prev := make([]int, m+1)
	cur := make([]int, m+1)
	for i := len(a) - 1; i >= 0; i-- {
		cur[m] = 0
		for j := m - 1; j >= 0; j-- {
			if a[i] == b[j] {
				cur[j] = prev[j+1] + 1
			} else {
				cur[j] = max(prev[j], cur[j+1])
			}
		}
		prev, cur = cur, prev
	}
	return prev
}
