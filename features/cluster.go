package features

import "math"

// Clustering is the result of a two-means run over a scalar sequence.
type Clustering struct {
	// Assign holds the cluster index, 0 or 1, of each point.
	Assign []int

	// Centroids are the final cluster means.
	Centroids [2]float64

	// Iterations is the number of update rounds performed.
	Iterations int

	// Converged is false if the iteration cap stopped the run.
	Converged bool
}

// High returns the index of the higher-mean centroid.
func (c Clustering) High() int {
	if c.Centroids[0] > c.Centroids[1] {
		return 0
	}
	return 1
}

// TwoMeans partitions xs into two clusters. Centroids start at the minimum
// and maximum of xs; each round assigns every point to the nearer centroid
// (ties go to centroid 0) and moves each centroid to its cluster mean. The
// run stops once assignments no longer change or after maxIter rounds. A
// final assignment pass against the final centroids guarantees that every
// point is at least as close to its own centroid as to the other.
func TwoMeans(xs []float64, maxIter int) Clustering {
	c := Clustering{Assign: make([]int, len(xs))}
	if len(xs) == 0 {
		c.Converged = true
		return c
	}
	if maxIter < 1 {
		maxIter = 1
	}

	lo, hi := xs[0], xs[0]
	for _, x := range xs[1:] {
		lo = math.Min(lo, x)
		hi = math.Max(hi, x)
	}
	c.Centroids = [2]float64{lo, hi}

	for i := range c.Assign {
		c.Assign[i] = -1
	}
	for c.Iterations < maxIter {
		c.Iterations++
		if !assign(xs, c.Centroids, c.Assign) {
			c.Converged = true
			break
		}
		c.Centroids = means(xs, c.Assign, c.Centroids)
	}
	assign(xs, c.Centroids, c.Assign)
	return c
}

// assign labels each point with its nearer centroid and reports whether
// any label changed.
func assign(xs []float64, centroids [2]float64, labels []int) bool {
	changed := false
	for i, x := range xs {
		k := 0
		if math.Abs(x-centroids[1]) < math.Abs(x-centroids[0]) {
			k = 1
		}
		if labels[i] != k {
			labels[i] = k
			changed = true
		}
	}
	return changed
}

// means recomputes cluster means. An empty cluster keeps its centroid.
func means(xs []float64, labels []int, prev [2]float64) [2]float64 {
	var sum [2]float64
	var n [2]int
	for i, x := range xs {
		sum[labels[i]] += x
		n[labels[i]]++
	}
	out := prev
	for k := range out {
		if n[k] > 0 {
			out[k] = sum[k] / float64(n[k])
		}
	}
	return out
}

// Smooth returns the moving average of xs over a symmetric window of
// 2*radius+1 points, truncated at the sequence edges.
func Smooth(xs []float64, radius int) []float64 {
	out := make([]float64, len(xs))
	if radius <= 0 {
		copy(out, xs)
		return out
	}

	// Prefix sums keep the cost linear in len(xs).
	prefix := make([]float64, len(xs)+1)
	for i, x := range xs {
		prefix[i+1] = prefix[i] + x
	}
	for i := range xs {
		lo := max(0, i-radius)
		hi := min(len(xs), i+radius+1)
		out[i] = (prefix[hi] - prefix[lo]) / float64(hi-lo)
	}
	return out
}
