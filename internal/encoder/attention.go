package encoder

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// layerNormEpsilon guards the variance against division by zero.
const layerNormEpsilon = 1e-5

// applyBlock runs one residual self-attention + feed-forward transform over
// the L x H input. Padding positions are masked out of the attention weights
// so they never influence real tokens. The transform is pure: no state
// survives between calls.
func applyBlock(layer *LayerParameters, x *mat.Dense, padMask []bool, numHeads int) *mat.Dense {
	seqLen, hiddenDim := x.Dims()
	headDim := hiddenDim / numHeads

	q := linear(x, layer.WQ, layer.BQ)
	k := linear(x, layer.WK, layer.BK)
	v := linear(x, layer.WV, layer.BV)

	// Scaled dot-product attention per head, heads concatenated back to H.
	attnOut := mat.NewDense(seqLen, hiddenDim, nil)
	scale := 1 / math.Sqrt(float64(headDim))
	for h := 0; h < numHeads; h++ {
		start := h * headDim
		qh := q.Slice(0, seqLen, start, start+headDim)
		kh := k.Slice(0, seqLen, start, start+headDim)
		vh := v.Slice(0, seqLen, start, start+headDim)

		scores := mat.NewDense(seqLen, seqLen, nil)
		scores.Mul(qh, kh.T())
		scores.Scale(scale, scores)
		softmaxRowsMasked(scores, padMask)

		headOut := mat.NewDense(seqLen, headDim, nil)
		headOut.Mul(scores, vh)
		for i := 0; i < seqLen; i++ {
			for j := 0; j < headDim; j++ {
				attnOut.Set(i, start+j, headOut.At(i, j))
			}
		}
	}

	projected := linear(attnOut, layer.WO, layer.BO)
	residual := mat.NewDense(seqLen, hiddenDim, nil)
	residual.Add(x, projected)
	normed := layerNorm(residual, layer.LN1Gamma, layer.LN1Beta)

	// Position-wise feed-forward with ReLU between the two transforms.
	hidden := linear(normed, layer.FFW1, layer.FFB1)
	reluInPlace(hidden)
	ff := linear(hidden, layer.FFW2, layer.FFB2)

	residual2 := mat.NewDense(seqLen, hiddenDim, nil)
	residual2.Add(normed, ff)
	return layerNorm(residual2, layer.LN2Gamma, layer.LN2Beta)
}

// linear computes x*w + b with b broadcast over rows.
func linear(x mat.Matrix, w *mat.Dense, b []float64) *mat.Dense {
	rows, _ := x.Dims()
	_, cols := w.Dims()
	out := mat.NewDense(rows, cols, nil)
	out.Mul(x, w)
	if b != nil {
		for i := 0; i < rows; i++ {
			floats.Add(out.RawRowView(i), b)
		}
	}
	return out
}

// softmaxRowsMasked normalizes each row of scores into a probability
// distribution over positions, forcing padded key positions to zero
// probability. Rows are shifted by their maximum for numerical stability.
func softmaxRowsMasked(scores *mat.Dense, padMask []bool) {
	rows, cols := scores.Dims()
	for i := 0; i < rows; i++ {
		row := scores.RawRowView(i)

		maxScore := math.Inf(-1)
		for j := 0; j < cols; j++ {
			if padMask != nil && padMask[j] {
				continue
			}
			if row[j] > maxScore {
				maxScore = row[j]
			}
		}

		sum := 0.0
		for j := 0; j < cols; j++ {
			if padMask != nil && padMask[j] {
				row[j] = 0
				continue
			}
			row[j] = math.Exp(row[j] - maxScore)
			sum += row[j]
		}

		if sum > 0 {
			for j := 0; j < cols; j++ {
				row[j] /= sum
			}
		}
	}
}

// layerNorm normalizes each row to zero mean and unit variance, then applies
// the per-channel scale and shift.
func layerNorm(x *mat.Dense, gamma, beta []float64) *mat.Dense {
	rows, cols := x.Dims()
	out := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		row := x.RawRowView(i)

		mean := floats.Sum(row) / float64(cols)
		variance := 0.0
		for _, val := range row {
			diff := val - mean
			variance += diff * diff
		}
		variance /= float64(cols)

		invStd := 1 / math.Sqrt(variance+layerNormEpsilon)
		outRow := out.RawRowView(i)
		for j, val := range row {
			outRow[j] = (val-mean)*invStd*gamma[j] + beta[j]
		}
	}
	return out
}

func reluInPlace(x *mat.Dense) {
	rows, _ := x.Dims()
	for i := 0; i < rows; i++ {
		row := x.RawRowView(i)
		for j, val := range row {
			if val < 0 {
				row[j] = 0
			}
		}
	}
}
