package dragnet

// DefaultBlockTags are the elements whose boundaries start a new block.
var DefaultBlockTags = []string{
	"address", "article", "aside", "blockquote", "body", "caption", "center",
	"dd", "details", "dialog", "dir", "div", "dl", "dt", "fieldset",
	"figcaption", "figure", "footer", "form", "frameset", "h1", "h2", "h3",
	"h4", "h5", "h6", "header", "hgroup", "hr", "html", "legend", "li",
	"main", "map", "menu", "nav", "ol", "p", "pre", "section", "summary",
	"table", "tbody", "td", "tfoot", "th", "thead", "tr", "ul",
}

// DefaultExcludedTags are non-content regions skipped entirely.
var DefaultExcludedTags = []string{
	"applet", "button", "embed", "head", "iframe", "noscript", "object",
	"option", "script", "select", "style", "svg", "template", "textarea",
}

// DefaultPositiveNames are class/id substrings suggesting main content.
var DefaultPositiveNames = []string{
	"article", "body", "content", "entry", "hentry", "main", "page",
	"post", "text", "blog", "story",
}

// DefaultNegativeNames are class/id substrings suggesting boilerplate.
var DefaultNegativeNames = []string{
	"combx", "comment", "com-", "contact", "foot", "footer", "footnote",
	"masthead", "media", "meta", "outbrain", "promo", "related", "scroll",
	"shoutbox", "sidebar", "sponsor", "shopping", "tags", "tool", "widget",
	"nav", "menu",
}

// Options configures one extraction, labeling, or scoring call. Options
// is passed by value; the slices it holds must not be modified after use.
type Options struct {
	// Comments enables the second, comment-specific classification pass.
	Comments bool

	// BlockTags overrides DefaultBlockTags when non-nil.
	BlockTags []string

	// ExcludedTags overrides DefaultExcludedTags when non-nil.
	ExcludedTags []string

	// MaxDepth bounds tree depth accepted by the segmenter.
	MaxDepth int

	// LineWidth is the assumed rendered line width, in characters, used
	// to estimate line counts for text density.
	LineWidth int

	// SmoothingRadius is the half-width of the tag-ratio smoothing window.
	SmoothingRadius int

	// ClusterIterations caps two-means iterations.
	ClusterIterations int

	// LinkClustering adds the link-density cluster indicator to the
	// cluster feature family.
	LinkClustering bool

	// Heuristic scorer constants.
	CommaWeight       float64
	LinkDensityWeight float64
	ClassWeight       float64
	Damping           float64
	AncestorLevels    int
	PositiveNames     []string
	NegativeNames     []string

	// TokenBudget truncates alignment inputs to this many tokens.
	// Zero means unlimited.
	TokenBudget int

	// LabelThreshold is the matched-token fraction above which a block is
	// labeled content (or comment) during training-data preparation.
	LabelThreshold float64

	// Separator joins the text of consecutive output blocks.
	Separator string
}

// DefaultOptions returns the calibrated default configuration.
func DefaultOptions() Options {
	return Options{
		MaxDepth:          DefaultMaxDepth,
		LineWidth:         80,
		SmoothingRadius:   1,
		ClusterIterations: 100,
		LinkClustering:    true,
		CommaWeight:       1,
		LinkDensityWeight: 1,
		ClassWeight:       25,
		Damping:           0.5,
		AncestorLevels:    3,
		PositiveNames:     DefaultPositiveNames,
		NegativeNames:     DefaultNegativeNames,
		LabelThreshold:    0.5,
		Separator:         "\n",
	}
}

// Validate returns EINVALID if any option is out of range.
func (o Options) Validate() error {
	switch {
	case o.LineWidth <= 0:
		return Errorf(EINVALID, "line width must be positive, got %d", o.LineWidth)
	case o.SmoothingRadius < 0:
		return Errorf(EINVALID, "smoothing radius must not be negative, got %d", o.SmoothingRadius)
	case o.ClusterIterations <= 0:
		return Errorf(EINVALID, "cluster iterations must be positive, got %d", o.ClusterIterations)
	case o.Damping < 0 || o.Damping > 1:
		return Errorf(EINVALID, "damping must be within [0,1], got %g", o.Damping)
	case o.AncestorLevels < 0:
		return Errorf(EINVALID, "ancestor levels must not be negative, got %d", o.AncestorLevels)
	case o.TokenBudget < 0:
		return Errorf(EINVALID, "token budget must not be negative, got %d", o.TokenBudget)
	case o.LabelThreshold < 0 || o.LabelThreshold >= 1:
		return Errorf(EINVALID, "label threshold must be within [0,1), got %g", o.LabelThreshold)
	}
	return nil
}

// BlockTagSet returns the effective block-level tag set.
func (o Options) BlockTagSet() map[string]bool {
	tags := o.BlockTags
	if tags == nil {
		tags = DefaultBlockTags
	}
	return tagSet(tags)
}

// ExcludedTagSet returns the effective excluded tag set.
func (o Options) ExcludedTagSet() map[string]bool {
	tags := o.ExcludedTags
	if tags == nil {
		tags = DefaultExcludedTags
	}
	return tagSet(tags)
}

func tagSet(tags []string) map[string]bool {
	m := make(map[string]bool, len(tags))
	for _, t := range tags {
		m[t] = true
	}
	return m
}
