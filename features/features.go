// Package features computes the per-block feature families consumed by
// dragnet classifiers: text and link density (Kohlschuetter), clustered
// tag ratios (Weninger), and heuristic container scores (Readability).
package features

import "github.com/fwojciec/dragnet"

// Family names used in dragnet.WeightModel.Features.
const (
	KohlschuetterName = "kohlschuetter"
	WeningerName      = "weninger"
	ReadabilityName   = "readability"
)

// Ensure Registry implements dragnet.FeatureRegistry at compile time.
var _ dragnet.FeatureRegistry = (*Registry)(nil)

// Registry resolves feature families by name.
type Registry struct {
	names    []string
	families map[string]dragnet.FeatureExtractor
}

// NewRegistry returns a Registry holding every built-in family.
func NewRegistry() *Registry {
	r := &Registry{families: make(map[string]dragnet.FeatureExtractor)}
	r.Register(NewKohlschuetter())
	r.Register(NewWeninger())
	r.Register(NewReadability())
	return r
}

// Register adds a family, replacing any family with the same name.
func (r *Registry) Register(f dragnet.FeatureExtractor) {
	if _, ok := r.families[f.Name()]; !ok {
		r.names = append(r.names, f.Name())
	}
	r.families[f.Name()] = f
}

// Get returns the named family, or nil.
func (r *Registry) Get(name string) dragnet.FeatureExtractor {
	return r.families[name]
}

// List returns family names in registration order.
func (r *Registry) List() []string {
	return append([]string(nil), r.names...)
}

// DefaultFamilies is the feature layout of models that don't name one.
var DefaultFamilies = []string{KohlschuetterName, WeningerName, ReadabilityName}

// ratio divides a by b, returning 0 when b is 0.
func ratio(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}
