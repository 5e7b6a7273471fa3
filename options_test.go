package dragnet_test

import (
	"testing"

	"github.com/fwojciec/dragnet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultOptions(t *testing.T) {
	t.Parallel()

	opts := dragnet.DefaultOptions()

	require.NoError(t, opts.Validate())
	assert.False(t, opts.Comments)
	assert.Equal(t, 80, opts.LineWidth)
	assert.Equal(t, 1, opts.SmoothingRadius)
	assert.Equal(t, 100, opts.ClusterIterations)
	assert.InDelta(t, 0.5, opts.LabelThreshold, 0)
	assert.Equal(t, "\n", opts.Separator)
}

func TestOptions_Validate(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name   string
		modify func(*dragnet.Options)
	}{
		{"zero line width", func(o *dragnet.Options) { o.LineWidth = 0 }},
		{"negative smoothing radius", func(o *dragnet.Options) { o.SmoothingRadius = -1 }},
		{"zero cluster iterations", func(o *dragnet.Options) { o.ClusterIterations = 0 }},
		{"damping above one", func(o *dragnet.Options) { o.Damping = 1.5 }},
		{"negative ancestor levels", func(o *dragnet.Options) { o.AncestorLevels = -1 }},
		{"negative token budget", func(o *dragnet.Options) { o.TokenBudget = -1 }},
		{"label threshold of one", func(o *dragnet.Options) { o.LabelThreshold = 1 }},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			opts := dragnet.DefaultOptions()
			tt.modify(&opts)

			err := opts.Validate()
			require.Error(t, err)
			assert.Equal(t, dragnet.EINVALID, dragnet.ErrorCode(err))
		})
	}
}

func TestOptions_TagSets(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		opts := dragnet.DefaultOptions()
		assert.True(t, opts.BlockTagSet()["p"])
		assert.False(t, opts.BlockTagSet()["a"])
		assert.True(t, opts.ExcludedTagSet()["script"])
	})

	t.Run("overrides", func(t *testing.T) {
		t.Parallel()

		opts := dragnet.DefaultOptions()
		opts.BlockTags = []string{"section"}
		opts.ExcludedTags = []string{}

		assert.Equal(t, map[string]bool{"section": true}, opts.BlockTagSet())
		assert.Empty(t, opts.ExcludedTagSet())
	})
}
