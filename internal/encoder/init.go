package encoder

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// embeddingInitStd is the standard deviation for embedding initialization.
const embeddingInitStd = 0.02

// NewInitializedParameters builds an untrained but fully valid snapshot with
// deterministic seeded weights: Xavier-uniform projections, zero biases, unit
// layer-norm scales, and a small-normal embedding table. The same (config,
// terms, seed) always yields an identical snapshot, which makes demo models
// and fixtures reproducible.
func NewInitializedParameters(cfg Config, terms []string, seed int64) (*ModelParameters, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(seed))

	params := &ModelParameters{
		Config:    cfg,
		Vocab:     terms,
		Embedding: normalDense(rng, cfg.VocabSize, cfg.HiddenDim, embeddingInitStd),
		Layers:    make([]LayerParameters, 0, cfg.NumLayers),
	}

	for i := 0; i < cfg.NumLayers; i++ {
		params.Layers = append(params.Layers, LayerParameters{
			WQ: xavierDense(rng, cfg.HiddenDim, cfg.HiddenDim),
			WK: xavierDense(rng, cfg.HiddenDim, cfg.HiddenDim),
			WV: xavierDense(rng, cfg.HiddenDim, cfg.HiddenDim),
			WO: xavierDense(rng, cfg.HiddenDim, cfg.HiddenDim),
			BQ: zeros(cfg.HiddenDim),
			BK: zeros(cfg.HiddenDim),
			BV: zeros(cfg.HiddenDim),
			BO: zeros(cfg.HiddenDim),

			FFW1: xavierDense(rng, cfg.HiddenDim, cfg.FFDim),
			FFW2: xavierDense(rng, cfg.FFDim, cfg.HiddenDim),
			FFB1: zeros(cfg.FFDim),
			FFB2: zeros(cfg.HiddenDim),

			LN1Gamma: ones(cfg.HiddenDim),
			LN1Beta:  zeros(cfg.HiddenDim),
			LN2Gamma: ones(cfg.HiddenDim),
			LN2Beta:  zeros(cfg.HiddenDim),
		})
	}

	if err := params.Validate(); err != nil {
		return nil, err
	}
	return params, nil
}

// xavierDense samples uniformly from [-limit, limit] with
// limit = sqrt(6 / (fanIn + fanOut)).
func xavierDense(rng *rand.Rand, rows, cols int) *mat.Dense {
	limit := math.Sqrt(6 / float64(rows+cols))
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = (rng.Float64()*2 - 1) * limit
	}
	return mat.NewDense(rows, cols, data)
}

func normalDense(rng *rand.Rand, rows, cols int, std float64) *mat.Dense {
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = rng.NormFloat64() * std
	}
	return mat.NewDense(rows, cols, data)
}

func zeros(n int) []float64 {
	return make([]float64, n)
}

func ones(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 1
	}
	return out
}
