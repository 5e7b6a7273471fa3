package dragnet

import (
	"math"
	"strings"
)

// FeatureVector is the ordered feature values of one block.
type FeatureVector []float64

// FeatureMatrix holds one FeatureVector per block, indexed in parallel
// with the block slice it was computed from.
type FeatureMatrix []FeatureVector

// FeatureExtractor computes one family of per-block features.
type FeatureExtractor interface {
	// Name identifies the family in WeightModel.Features.
	Name() string

	// Names returns the names of the family's feature dimensions, in order.
	// Its length is the family's dimensionality.
	Names(opts Options) []string

	// Extract computes one row per block. Every value must be finite.
	Extract(blocks []Block, opts Options) (FeatureMatrix, error)
}

// FeatureSet is an ordered list of feature families whose outputs are
// concatenated into a single vector per block.
type FeatureSet []FeatureExtractor

// Names returns the concatenated dimension names of all families.
func (s FeatureSet) Names(opts Options) []string {
	var names []string
	for _, f := range s {
		names = append(names, f.Names(opts)...)
	}
	return names
}

// Dim returns the total dimensionality of the set.
func (s FeatureSet) Dim(opts Options) int {
	n := 0
	for _, f := range s {
		n += len(f.Names(opts))
	}
	return n
}

// Extract computes every family and concatenates the rows.
// Returns EINTERNAL if a family returns a row of the wrong length or a
// non-finite value.
func (s FeatureSet) Extract(blocks []Block, opts Options) (FeatureMatrix, error) {
	dim := s.Dim(opts)
	out := make(FeatureMatrix, len(blocks))
	for i := range out {
		out[i] = make(FeatureVector, 0, dim)
	}
	for _, f := range s {
		want := len(f.Names(opts))
		m, err := f.Extract(blocks, opts)
		if err != nil {
			return nil, err
		}
		if len(m) != len(blocks) {
			return nil, Errorf(EINTERNAL, "feature family %q returned %d rows for %d blocks", f.Name(), len(m), len(blocks))
		}
		for i, row := range m {
			if len(row) != want {
				return nil, Errorf(EINTERNAL, "feature family %q returned %d values, want %d", f.Name(), len(row), want)
			}
			for j, v := range row {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					return nil, Errorf(EINTERNAL, "feature %q of block %d is not finite", f.Names(opts)[j], i)
				}
			}
			out[i] = append(out[i], row...)
		}
	}
	return out, nil
}

// FeatureRegistry resolves feature families by name.
type FeatureRegistry interface {
	Get(name string) FeatureExtractor
	List() []string
}

// ResolveFeatures looks up each family name in order.
// Returns ENOTFOUND for an unknown family.
func ResolveFeatures(reg FeatureRegistry, names []string) (FeatureSet, error) {
	set := make(FeatureSet, 0, len(names))
	for _, name := range names {
		f := reg.Get(name)
		if f == nil {
			return nil, Errorf(ENOTFOUND, "unknown feature family %q (available: %s)", name, strings.Join(reg.List(), ", "))
		}
		set = append(set, f)
	}
	return set, nil
}
