package encoder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

func TestSoftmaxRowsMasked_RowsSumToOne(t *testing.T) {
	scores := mat.NewDense(2, 3, []float64{1, 2, 3, -1, 0, 1})

	softmaxRowsMasked(scores, nil)

	for i := 0; i < 2; i++ {
		assert.InDelta(t, 1.0, floats.Sum(scores.RawRowView(i)), 1e-12)
	}
}

func TestSoftmaxRowsMasked_PaddedColumnsGetZeroWeight(t *testing.T) {
	scores := mat.NewDense(2, 3, []float64{5, 2, 9, 1, 1, 1})
	padMask := []bool{false, false, true}

	softmaxRowsMasked(scores, padMask)

	for i := 0; i < 2; i++ {
		row := scores.RawRowView(i)
		assert.Zero(t, row[2])
		assert.InDelta(t, 1.0, floats.Sum(row), 1e-12)
	}
}

func TestLayerNorm_ZeroMeanUnitVariance(t *testing.T) {
	x := mat.NewDense(1, 4, []float64{2, 4, 6, 8})
	gamma := []float64{1, 1, 1, 1}
	beta := []float64{0, 0, 0, 0}

	out := layerNorm(x, gamma, beta)

	row := out.RawRowView(0)
	assert.InDelta(t, 0.0, floats.Sum(row)/4, 1e-9)

	variance := 0.0
	for _, v := range row {
		variance += v * v
	}
	assert.InDelta(t, 1.0, variance/4, 1e-4)
}

func TestLayerNorm_AppliesScaleAndShift(t *testing.T) {
	x := mat.NewDense(1, 2, []float64{-1, 1})
	gamma := []float64{2, 2}
	beta := []float64{10, 10}

	out := layerNorm(x, gamma, beta)
	row := out.RawRowView(0)

	assert.InDelta(t, 10.0, (row[0]+row[1])/2, 1e-9)
}

func TestReluInPlace(t *testing.T) {
	x := mat.NewDense(1, 4, []float64{-2, -0.5, 0, 3})

	reluInPlace(x)

	assert.Equal(t, []float64{0, 0, 0, 3}, x.RawRowView(0))
}
