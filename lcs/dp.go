package lcs

// DynamicProgramming aligns a against b with the classic suffix-table
// dynamic programme in O(len(a)·len(b)) time and space. The result holds,
// for each position of a, its matched position in b or -1.
func DynamicProgramming[T comparable](a, b []T) []int {
	n, m := len(a), len(b)
	match := make([]int, n)
	for i := range match {
		match[i] = -1
	}
	if n == 0 || m == 0 {
		return match
	}

	// l[i*(m+1)+j] is the LCS length of a[i:] and b[j:].
	w := m + 1
	l := make([]int32, (n+1)*w)
	for i := n - 1; i >= 0; i-- {
		for j := m - 1; j >= 0; j-- {
			switch {
			case a[i] == b[j]:
				l[i*w+j] = l[(i+1)*w+j+1] + 1
			case l[(i+1)*w+j] >= l[i*w+j+1]:
				l[i*w+j] = l[(i+1)*w+j]
			default:
				l[i*w+j] = l[i*w+j+1]
			}
		}
	}

	// Walk forward, matching as soon as possible. On ties the reference
	// advances so that the current candidate token can still match.
	i, j := 0, 0
	for i < n && j < m {
		switch {
		case a[i] == b[j]:
			match[i] = j
			i++
			j++
		case l[i*w+j+1] >= l[(i+1)*w+j]:
			j++
		default:
			i++
		}
	}
	return match
}
