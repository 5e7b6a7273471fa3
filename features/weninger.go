package features

import (
	"math"

	"github.com/fwojciec/dragnet"
)

// Ensure Weninger implements dragnet.FeatureExtractor at compile time.
var _ dragnet.FeatureExtractor = (*Weninger)(nil)

// Weninger computes content-extraction-via-tag-ratio features: the
// smoothed words-per-tag ratio of each block is split into a dense and a
// sparse cluster. With link clustering enabled, an independent clustering
// of link densities adds a second indicator.
type Weninger struct{}

// NewWeninger creates a new Weninger feature family.
func NewWeninger() *Weninger {
	return &Weninger{}
}

// Name returns the family name.
func (w *Weninger) Name() string {
	return WeningerName
}

// Names returns the feature names, in row order.
func (w *Weninger) Names(opts dragnet.Options) []string {
	names := []string{"tag_ratio_cluster", "tag_ratio_distance"}
	if opts.LinkClustering {
		names = append(names, "link_density_cluster")
	}
	return names
}

// Extract computes one row per block.
func (w *Weninger) Extract(blocks []dragnet.Block, opts dragnet.Options) (dragnet.FeatureMatrix, error) {
	if opts.SmoothingRadius < 0 {
		return nil, dragnet.Errorf(dragnet.EINVALID, "smoothing radius must not be negative, got %d", opts.SmoothingRadius)
	}

	ratios := make([]float64, len(blocks))
	for i := range blocks {
		ratios[i] = TagRatio(&blocks[i])
	}
	smoothed := Smooth(ratios, opts.SmoothingRadius)
	tagClusters := TwoMeans(smoothed, opts.ClusterIterations)
	high := tagClusters.High()

	var linkClusters Clustering
	if opts.LinkClustering {
		ld := make([]float64, len(blocks))
		for i := range blocks {
			ld[i] = blocks[i].LinkDensity()
		}
		linkClusters = TwoMeans(ld, opts.ClusterIterations)
	}

	m := make(dragnet.FeatureMatrix, len(blocks))
	for i := range blocks {
		row := dragnet.FeatureVector{
			indicator(tagClusters.Assign[i] == high && tagClusters.Centroids[0] != tagClusters.Centroids[1]),
			math.Abs(smoothed[i] - tagClusters.Centroids[high]),
		}
		if opts.LinkClustering {
			lh := linkClusters.High()
			row = append(row, indicator(linkClusters.Assign[i] == lh && linkClusters.Centroids[0] != linkClusters.Centroids[1]))
		}
		m[i] = row
	}
	return m, nil
}

// TagRatio returns the block's words per element, counting at least one element.
func TagRatio(b *dragnet.Block) float64 {
	return float64(len(b.Words)) / float64(max(b.Tags, 1))
}

func indicator(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
