package encoder

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// positionalWavelength is the base of the sinusoidal frequency schedule.
const positionalWavelength = 10000.0

// PositionalEncoding returns the fixed sinusoidal position matrix of shape
// seqLen x hiddenDim: sine on even channels, cosine on odd channels, with
// channel-pair wavelengths spaced geometrically. It has no state, so
// identical (seqLen, hiddenDim) always yields identical output.
func PositionalEncoding(seqLen, hiddenDim int) *mat.Dense {
	pe := mat.NewDense(seqLen, hiddenDim, nil)
	for pos := 0; pos < seqLen; pos++ {
		for i := 0; i < hiddenDim; i += 2 {
			angle := float64(pos) / math.Pow(positionalWavelength, float64(i)/float64(hiddenDim))
			pe.Set(pos, i, math.Sin(angle))
			if i+1 < hiddenDim {
				pe.Set(pos, i+1, math.Cos(angle))
			}
		}
	}
	return pe
}
