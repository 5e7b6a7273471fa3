package lcs

import "sort"

// hsLink records one matched pair and the pair preceding it in its chain.
type hsLink struct {
	i, j int
	prev int
}

// HuntSzymanski aligns a against b in O((r + n) log n) time, where r is
// the number of matching position pairs. It is the cheaper method when
// matches are sparse, as they are for long documents over a large
// vocabulary. The result holds, for each position of a, its matched
// position in b or -1.
func HuntSzymanski[T comparable](a, b []T) []int {
	match := make([]int, len(a))
	for i := range match {
		match[i] = -1
	}
	if len(a) == 0 || len(b) == 0 {
		return match
	}

	positions := make(map[T][]int)
	for j, t := range b {
		positions[t] = append(positions[t], j)
	}

	// thresh[k] is the smallest reference position ending a common
	// subsequence of length k+1; heads[k] is the link that ends it.
	var thresh []int
	var heads []int
	var links []hsLink

	for i, t := range a {
		ps := positions[t]
		// Descending order keeps one candidate position from extending
		// a chain that already uses it.
		for p := len(ps) - 1; p >= 0; p-- {
			j := ps[p]
			k := sort.SearchInts(thresh, j)
			if k < len(thresh) && thresh[k] == j {
				continue
			}
			prev := -1
			if k > 0 {
				prev = heads[k-1]
			}
			links = append(links, hsLink{i: i, j: j, prev: prev})
			if k == len(thresh) {
				thresh = append(thresh, j)
				heads = append(heads, len(links)-1)
			} else {
				thresh[k] = j
				heads[k] = len(links) - 1
			}
		}
	}

	if len(heads) == 0 {
		return match
	}
	for l := heads[len(heads)-1]; l >= 0; l = links[l].prev {
		match[links[l].i] = links[l].j
	}
	return match
}
