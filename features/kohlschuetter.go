package features

import (
	"unicode/utf8"

	"github.com/fwojciec/dragnet"
)

// Ensure Kohlschuetter implements dragnet.FeatureExtractor at compile time.
var _ dragnet.FeatureExtractor = (*Kohlschuetter)(nil)

// Kohlschuetter computes text and link density of each block and of its
// neighbours. Boilerplate tends to come in runs of short, link-heavy
// blocks, so the neighbourhood carries as much signal as the block itself.
type Kohlschuetter struct{}

// NewKohlschuetter creates a new Kohlschuetter feature family.
func NewKohlschuetter() *Kohlschuetter {
	return &Kohlschuetter{}
}

// Name returns the family name.
func (k *Kohlschuetter) Name() string {
	return KohlschuetterName
}

// Names returns the feature names, in row order.
func (k *Kohlschuetter) Names(_ dragnet.Options) []string {
	return []string{
		"link_density_prev",
		"text_density_prev",
		"link_density",
		"text_density",
		"link_density_next",
		"text_density_next",
		"text_density_diff_prev",
		"text_density_diff_next",
		"text_density_ratio_prev",
		"text_density_ratio_next",
	}
}

// Extract computes one row per block. The first and last blocks use a
// synthetic neighbour with zero densities.
func (k *Kohlschuetter) Extract(blocks []dragnet.Block, opts dragnet.Options) (dragnet.FeatureMatrix, error) {
	if opts.LineWidth <= 0 {
		return nil, dragnet.Errorf(dragnet.EINVALID, "line width must be positive, got %d", opts.LineWidth)
	}

	n := len(blocks)
	// Pad with a zero-density block on each side.
	ld := make([]float64, n+2)
	td := make([]float64, n+2)
	for i := range blocks {
		ld[i+1] = blocks[i].LinkDensity()
		td[i+1] = TextDensity(blocks[i].Words, opts.LineWidth)
	}

	m := make(dragnet.FeatureMatrix, n)
	for i := 1; i <= n; i++ {
		m[i-1] = dragnet.FeatureVector{
			ld[i-1], td[i-1],
			ld[i], td[i],
			ld[i+1], td[i+1],
			td[i] - td[i-1],
			td[i+1] - td[i],
			ratio(td[i], td[i-1]),
			ratio(td[i], td[i+1]),
		}
	}
	return m, nil
}

// TextDensity estimates words per line by wrapping words greedily at
// width columns. A single line yields its word count; otherwise the last,
// usually partial, line is excluded: words on full lines / full lines.
func TextDensity(words []string, width int) float64 {
	if len(words) == 0 || width <= 0 {
		return 0
	}

	lines := 1
	lineLen := 0
	lastLineWords := 0
	for _, w := range words {
		wl := utf8.RuneCountInString(w)
		switch {
		case lineLen == 0:
			lineLen = wl
			lastLineWords = 1
		case lineLen+1+wl <= width:
			lineLen += 1 + wl
			lastLineWords++
		default:
			lines++
			lineLen = wl
			lastLineWords = 1
		}
	}

	if lines == 1 {
		return float64(len(words))
	}
	return float64(len(words)-lastLineWords) / float64(lines-1)
}
