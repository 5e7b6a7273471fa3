package dragnet_test

import (
	"testing"

	"github.com/fwojciec/dragnet"
	"github.com/stretchr/testify/assert"
)

func TestNewScore(t *testing.T) {
	t.Parallel()

	t.Run("both empty agree perfectly", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, dragnet.Score{Precision: 1, Recall: 1, F1: 1}, dragnet.NewScore(0, 0, 0))
	})

	t.Run("empty candidate scores zero", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, dragnet.Score{}, dragnet.NewScore(0, 0, 5))
	})

	t.Run("empty gold scores zero", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, dragnet.Score{}, dragnet.NewScore(0, 5, 0))
	})

	t.Run("harmonic mean", func(t *testing.T) {
		t.Parallel()
		s := dragnet.NewScore(2, 4, 2)
		assert.InDelta(t, 0.5, s.Precision, 1e-12)
		assert.InDelta(t, 1.0, s.Recall, 1e-12)
		assert.InDelta(t, 2.0/3, s.F1, 1e-12)
	})
}

func TestMeanScore(t *testing.T) {
	t.Parallel()

	assert.Equal(t, dragnet.Score{}, dragnet.MeanScore(nil))

	m := dragnet.MeanScore([]dragnet.Score{{Precision: 1, Recall: 0, F1: 0}, {Precision: 0, Recall: 1, F1: 1}})
	assert.InDelta(t, 0.5, m.Precision, 1e-12)
	assert.InDelta(t, 0.5, m.Recall, 1e-12)
	assert.InDelta(t, 0.5, m.F1, 1e-12)
}
