package dragnet

import "math"

// ModelKind identifies how a WeightModel turns a feature vector into a score.
type ModelKind string

// Supported model kinds.
const (
	ModelLinear ModelKind = "linear"
	ModelTree   ModelKind = "tree"
)

// WeightModel is a pre-fitted content/boilerplate model. It is produced
// offline and is never modified by the extraction core.
type WeightModel struct {
	Kind ModelKind `json:"kind"`

	// Features lists the feature families, in concatenation order, the
	// model was fitted on.
	Features []string `json:"features"`

	// Weights and Bias define the linear score w·x + b.
	Weights []float64 `json:"weights,omitempty"`
	Bias    float64   `json:"bias,omitempty"`

	// Threshold is the score above which a block is content.
	Threshold float64 `json:"threshold"`

	// Mean and Scale normalize each dimension as (x - mean) / scale
	// before scoring. Both may be empty to skip normalization.
	Mean  []float64 `json:"mean,omitempty"`
	Scale []float64 `json:"scale,omitempty"`

	// Dim is the expected input dimensionality of a tree model.
	Dim int `json:"dim,omitempty"`

	// Tree holds the nodes of a rule tree; node 0 is the root.
	Tree []TreeNode `json:"tree,omitempty"`
}

// TreeNode is one node of a rule tree. Internal nodes send x to Left when
// x[Feature] <= Split and to Right otherwise; leaves return Value.
type TreeNode struct {
	Leaf    bool    `json:"leaf,omitempty"`
	Value   float64 `json:"value,omitempty"`
	Feature int     `json:"feature,omitempty"`
	Split   float64 `json:"split,omitempty"`
	Left    int     `json:"left,omitempty"`
	Right   int     `json:"right,omitempty"`
}

// Classifier is a compiled WeightModel. The model kind is resolved once at
// construction; scoring a vector never re-inspects it. A Classifier is
// immutable and safe for concurrent use.
type Classifier struct {
	kind      ModelKind
	features  []string
	dim       int
	threshold float64
	mean      []float64
	scale     []float64
	eval      func(x []float64) float64
}

// NewClassifier validates and compiles a model.
// Returns EINVALID for an unknown kind or an inconsistent model.
func NewClassifier(m *WeightModel) (*Classifier, error) {
	if m == nil {
		return nil, Errorf(EINVALID, "weight model required")
	}

	c := &Classifier{
		kind:      m.Kind,
		features:  append([]string(nil), m.Features...),
		threshold: m.Threshold,
	}

	switch m.Kind {
	case ModelLinear:
		if len(m.Weights) == 0 {
			return nil, Errorf(EINVALID, "linear model has no weights")
		}
		c.dim = len(m.Weights)
		c.eval = linearEval(append([]float64(nil), m.Weights...), m.Bias)
	case ModelTree:
		if m.Dim <= 0 {
			return nil, Errorf(EINVALID, "tree model dimensionality required")
		}
		if err := validateTree(m.Tree, m.Dim); err != nil {
			return nil, err
		}
		c.dim = m.Dim
		c.eval = treeEval(append([]TreeNode(nil), m.Tree...))
	default:
		return nil, Errorf(EINVALID, "unknown model kind %q", m.Kind)
	}

	if len(m.Mean) != len(m.Scale) {
		return nil, Errorf(EINVALID, "normalization has %d means and %d scales", len(m.Mean), len(m.Scale))
	}
	if len(m.Mean) > 0 {
		if len(m.Mean) != c.dim {
			return nil, Errorf(EMISMATCH, "normalization has %d dimensions, model expects %d", len(m.Mean), c.dim)
		}
		c.mean = append([]float64(nil), m.Mean...)
		c.scale = make([]float64, len(m.Scale))
		for i, s := range m.Scale {
			// A constant training feature has zero scale; leave it centered only.
			if s == 0 || math.IsNaN(s) || math.IsInf(s, 0) {
				s = 1
			}
			c.scale[i] = s
		}
	}

	return c, nil
}

func linearEval(w []float64, bias float64) func([]float64) float64 {
	return func(x []float64) float64 {
		s := bias
		for i, v := range x {
			s += w[i] * v
		}
		return s
	}
}

func treeEval(nodes []TreeNode) func([]float64) float64 {
	return func(x []float64) float64 {
		i := 0
		for !nodes[i].Leaf {
			n := nodes[i]
			if x[n.Feature] <= n.Split {
				i = n.Left
			} else {
				i = n.Right
			}
		}
		return nodes[i].Value
	}
}

// validateTree requires children to come after their parent so evaluation
// always terminates.
func validateTree(nodes []TreeNode, dim int) error {
	if len(nodes) == 0 {
		return Errorf(EINVALID, "tree model has no nodes")
	}
	for i, n := range nodes {
		if n.Leaf {
			continue
		}
		if n.Feature < 0 || n.Feature >= dim {
			return Errorf(EINVALID, "tree node %d splits on feature %d of %d", i, n.Feature, dim)
		}
		if n.Left <= i || n.Left >= len(nodes) || n.Right <= i || n.Right >= len(nodes) {
			return Errorf(EINVALID, "tree node %d has invalid children %d, %d", i, n.Left, n.Right)
		}
	}
	return nil
}

// Kind returns the compiled model kind.
func (c *Classifier) Kind() ModelKind { return c.kind }

// Dim returns the feature dimensionality the model expects.
func (c *Classifier) Dim() int { return c.dim }

// Features returns the feature family names the model was fitted on.
func (c *Classifier) Features() []string { return append([]string(nil), c.features...) }

// Threshold returns the decision threshold.
func (c *Classifier) Threshold() float64 { return c.threshold }

// Score normalizes x and returns the model score.
// Returns EMISMATCH if x has the wrong dimensionality.
func (c *Classifier) Score(x FeatureVector) (float64, error) {
	if len(x) != c.dim {
		return 0, Errorf(EMISMATCH, "feature vector has %d dimensions, model expects %d", len(x), c.dim)
	}
	if c.mean != nil {
		z := make([]float64, len(x))
		for i, v := range x {
			z[i] = (v - c.mean[i]) / c.scale[i]
		}
		x = z
	}
	return c.eval(x), nil
}

// Classify reports whether x scores above the model threshold.
func (c *Classifier) Classify(x FeatureVector) (bool, error) {
	s, err := c.Score(x)
	if err != nil {
		return false, err
	}
	return s > c.threshold, nil
}

// ClassifyAll classifies every row of m.
// Returns EMISMATCH on the first row of the wrong dimensionality.
func (c *Classifier) ClassifyAll(m FeatureMatrix) ([]bool, error) {
	labels := make([]bool, len(m))
	for i, row := range m {
		ok, err := c.Classify(row)
		if err != nil {
			return nil, err
		}
		labels[i] = ok
	}
	return labels, nil
}
