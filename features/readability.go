package features

import (
	"strings"

	"github.com/fwojciec/dragnet"
)

// Ensure Readability implements dragnet.FeatureExtractor at compile time.
var _ dragnet.FeatureExtractor = (*Readability)(nil)

// Readability scores blocks with Arc90-style lexical heuristics. Each
// block's own score rewards commas and penalizes link density and
// boilerplate-sounding class or id names. Scores flow up the block's
// ancestor chain, damped per level, so containers of dense prose score
// highly; each block then sees the best container above it.
type Readability struct{}

// NewReadability creates a new Readability feature family.
func NewReadability() *Readability {
	return &Readability{}
}

// Name returns the family name.
func (r *Readability) Name() string {
	return ReadabilityName
}

// Names returns the feature names, in row order.
func (r *Readability) Names(_ dragnet.Options) []string {
	return []string{"own_score", "container_score"}
}

// container accumulates the propagated score of one ancestor element.
type container struct {
	score       float64
	words       int
	anchorWords int
}

// Extract computes one row per block.
func (r *Readability) Extract(blocks []dragnet.Block, opts dragnet.Options) (dragnet.FeatureMatrix, error) {
	if opts.Damping < 0 || opts.Damping > 1 {
		return nil, dragnet.Errorf(dragnet.EINVALID, "damping must be within [0,1], got %g", opts.Damping)
	}

	pos := lowerAll(opts.PositiveNames)
	neg := lowerAll(opts.NegativeNames)

	containers := make(map[int]*container)
	lexical := make([]float64, len(blocks))
	for i := range blocks {
		b := &blocks[i]
		lexical[i] = opts.CommaWeight*float64(b.CommaCount()) - opts.LinkDensityWeight*b.LinkDensity()

		weight := 1.0
		for _, elem := range ancestors(b.Path, opts.AncestorLevels) {
			c, ok := containers[elem.Index]
			if !ok {
				c = &container{score: classWeight(elem, pos, neg, opts.ClassWeight)}
				containers[elem.Index] = c
			}
			c.score += lexical[i] * weight
			c.words += len(b.Words)
			c.anchorWords += b.AnchorWords
			weight *= opts.Damping
		}
	}

	best := 0.0
	for _, c := range containers {
		if c.words > 0 {
			c.score *= 1 - float64(c.anchorWords)/float64(c.words)
		}
		best = max(best, c.score)
	}

	m := make(dragnet.FeatureMatrix, len(blocks))
	for i := range blocks {
		b := &blocks[i]
		own := lexical[i]
		if len(b.Path) > 0 {
			own += classWeight(b.Owner(), pos, neg, opts.ClassWeight)
		}

		var top float64
		for j, elem := range ancestors(b.Path, opts.AncestorLevels) {
			s := containers[elem.Index].score
			if j == 0 || s > top {
				top = s
			}
		}
		m[i] = dragnet.FeatureVector{own, ratio(top, best)}
	}
	return m, nil
}

// ancestors returns the block's owner followed by up to levels ancestors,
// innermost first.
func ancestors(path []dragnet.PathElem, levels int) []dragnet.PathElem {
	n := min(len(path), levels+1)
	out := make([]dragnet.PathElem, 0, n)
	for i := len(path) - 1; i >= len(path)-n; i-- {
		out = append(out, path[i])
	}
	return out
}

// ClassWeight returns the class/id bonus of an element: for each of its
// class and id, -weight on a negative name match and +weight on a
// positive name match. Matching is case-insensitive substring search.
func ClassWeight(elem dragnet.PathElem, opts dragnet.Options) float64 {
	return classWeight(elem, lowerAll(opts.PositiveNames), lowerAll(opts.NegativeNames), opts.ClassWeight)
}

func classWeight(elem dragnet.PathElem, pos, neg []string, weight float64) float64 {
	var w float64
	for _, name := range []string{elem.Class, elem.ID} {
		if name == "" {
			continue
		}
		name = strings.ToLower(name)
		if containsAny(name, neg) {
			w -= weight
		}
		if containsAny(name, pos) {
			w += weight
		}
	}
	return w
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if n != "" && strings.Contains(s, n) {
			return true
		}
	}
	return false
}

func lowerAll(ss []string) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = strings.ToLower(s)
	}
	return out
}
