package dragnet_test

import (
	"sync"
	"testing"

	"github.com/fwojciec/dragnet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClassifier(t *testing.T) {
	t.Parallel()

	t.Run("compiles a linear model", func(t *testing.T) {
		t.Parallel()

		c, err := dragnet.NewClassifier(&dragnet.WeightModel{
			Kind:      dragnet.ModelLinear,
			Features:  []string{"kohlschuetter"},
			Weights:   []float64{1, 2},
			Threshold: 0.5,
		})
		require.NoError(t, err)

		assert.Equal(t, dragnet.ModelLinear, c.Kind())
		assert.Equal(t, 2, c.Dim())
		assert.Equal(t, []string{"kohlschuetter"}, c.Features())
		assert.InDelta(t, 0.5, c.Threshold(), 0)
	})

	for _, tt := range []struct {
		name  string
		model *dragnet.WeightModel
		code  string
	}{
		{"nil model", nil, dragnet.EINVALID},
		{"unknown kind", &dragnet.WeightModel{Kind: "forest", Weights: []float64{1}}, dragnet.EINVALID},
		{"linear without weights", &dragnet.WeightModel{Kind: dragnet.ModelLinear}, dragnet.EINVALID},
		{"tree without dimensionality", &dragnet.WeightModel{Kind: dragnet.ModelTree, Tree: []dragnet.TreeNode{{Leaf: true}}}, dragnet.EINVALID},
		{"tree without nodes", &dragnet.WeightModel{Kind: dragnet.ModelTree, Dim: 1}, dragnet.EINVALID},
		{"tree split out of range", &dragnet.WeightModel{Kind: dragnet.ModelTree, Dim: 1, Tree: []dragnet.TreeNode{
			{Feature: 3, Left: 1, Right: 2}, {Leaf: true}, {Leaf: true},
		}}, dragnet.EINVALID},
		{"tree with backward child", &dragnet.WeightModel{Kind: dragnet.ModelTree, Dim: 1, Tree: []dragnet.TreeNode{
			{Feature: 0, Left: 0, Right: 1}, {Leaf: true},
		}}, dragnet.EINVALID},
		{"mean and scale lengths differ", &dragnet.WeightModel{Kind: dragnet.ModelLinear, Weights: []float64{1}, Mean: []float64{0}}, dragnet.EINVALID},
		{"normalization dimensionality", &dragnet.WeightModel{Kind: dragnet.ModelLinear, Weights: []float64{1}, Mean: []float64{0, 0}, Scale: []float64{1, 1}}, dragnet.EMISMATCH},
	} {
		t.Run("rejects "+tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := dragnet.NewClassifier(tt.model)
			require.Error(t, err)
			assert.Equal(t, tt.code, dragnet.ErrorCode(err))
		})
	}
}

func TestClassifier_Score(t *testing.T) {
	t.Parallel()

	t.Run("linear score is w·x + b", func(t *testing.T) {
		t.Parallel()

		c, err := dragnet.NewClassifier(&dragnet.WeightModel{Kind: dragnet.ModelLinear, Weights: []float64{2, -1}, Bias: 0.5})
		require.NoError(t, err)

		s, err := c.Score(dragnet.FeatureVector{3, 4})
		require.NoError(t, err)
		assert.InDelta(t, 2.5, s, 1e-12)
	})

	t.Run("normalizes before scoring", func(t *testing.T) {
		t.Parallel()

		c, err := dragnet.NewClassifier(&dragnet.WeightModel{
			Kind:    dragnet.ModelLinear,
			Weights: []float64{1, 1},
			Mean:    []float64{1, 5},
			Scale:   []float64{2, 0},
		})
		require.NoError(t, err)

		s, err := c.Score(dragnet.FeatureVector{5, 7})
		require.NoError(t, err)
		assert.InDelta(t, 2+2, s, 1e-12) // (5-1)/2 + (7-5)/1 with zero scale treated as 1
	})

	t.Run("tree routes on splits", func(t *testing.T) {
		t.Parallel()

		c, err := dragnet.NewClassifier(&dragnet.WeightModel{
			Kind: dragnet.ModelTree,
			Dim:  2,
			Tree: []dragnet.TreeNode{
				{Feature: 0, Split: 0.5, Left: 1, Right: 2},
				{Leaf: true, Value: -1},
				{Feature: 1, Split: 10, Left: 3, Right: 4},
				{Leaf: true, Value: 1},
				{Leaf: true, Value: 2},
			},
		})
		require.NoError(t, err)

		for _, tt := range []struct {
			x    dragnet.FeatureVector
			want float64
		}{
			{dragnet.FeatureVector{0.5, 0}, -1},
			{dragnet.FeatureVector{0.6, 10}, 1},
			{dragnet.FeatureVector{0.6, 11}, 2},
		} {
			s, err := c.Score(tt.x)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, s, 0)
		}
	})

	t.Run("rejects wrong dimensionality", func(t *testing.T) {
		t.Parallel()

		c, err := dragnet.NewClassifier(&dragnet.WeightModel{Kind: dragnet.ModelLinear, Weights: []float64{1, 2}})
		require.NoError(t, err)

		_, err = c.Score(dragnet.FeatureVector{1})
		require.Error(t, err)
		assert.Equal(t, dragnet.EMISMATCH, dragnet.ErrorCode(err))

		_, err = c.ClassifyAll(dragnet.FeatureMatrix{{1, 2}, {1, 2, 3}})
		require.Error(t, err)
		assert.Equal(t, dragnet.EMISMATCH, dragnet.ErrorCode(err))
	})
}

func TestClassifier_Classify(t *testing.T) {
	t.Parallel()

	m := &dragnet.WeightModel{Kind: dragnet.ModelLinear, Weights: []float64{1}, Threshold: 1}
	c, err := dragnet.NewClassifier(m)
	require.NoError(t, err)

	// Mutating the source model must not affect the compiled classifier.
	m.Weights[0] = -100

	labels, err := c.ClassifyAll(dragnet.FeatureMatrix{{0.5}, {1}, {1.5}})
	require.NoError(t, err)
	assert.Equal(t, []bool{false, false, true}, labels)

	var wg sync.WaitGroup
	for range 8 {
		wg.Go(func() {
			ok, err := c.Classify(dragnet.FeatureVector{2})
			assert.NoError(t, err)
			assert.True(t, ok)
		})
	}
	wg.Wait()
}
