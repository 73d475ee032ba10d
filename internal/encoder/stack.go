package encoder

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/jonathan/job-matcher/internal/vocab"
)

// Encoder is an immutable handle over one loaded model snapshot. It is safe
// for concurrent use: every call is a pure function of the snapshot and the
// input text.
type Encoder struct {
	params     *ModelParameters
	vocabulary *vocab.Vocabulary
}

// New builds an encoder from a validated snapshot. Snapshots without a vocab
// list fall back to the seeded default vocabulary.
func New(params *ModelParameters) (*Encoder, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	var (
		vocabulary *vocab.Vocabulary
		err        error
	)
	if len(params.Vocab) > 0 {
		vocabulary, err = vocab.New(params.Vocab, params.Config.VocabSize)
	} else {
		vocabulary, err = vocab.NewSeeded(params.Config.VocabSize)
	}
	if err != nil {
		return nil, &ConfigError{Message: "failed to build vocabulary", Cause: err}
	}

	return &Encoder{params: params, vocabulary: vocabulary}, nil
}

// Load parses a model snapshot blob and returns an encoder handle over it.
func Load(blob []byte) (*Encoder, error) {
	params, err := LoadParameters(blob)
	if err != nil {
		return nil, err
	}
	return New(params)
}

// Config returns the snapshot hyperparameters.
func (e *Encoder) Config() Config {
	return e.params.Config
}

// Vocabulary returns the shared read-only vocabulary.
func (e *Encoder) Vocabulary() *vocab.Vocabulary {
	return e.vocabulary
}

// Embed encodes text into per-token contextual embeddings (maxLen x H) and a
// pooled embedding (length H). The pooled embedding is the arithmetic mean of
// the contextual rows at non-padding positions only. Text that normalizes to
// zero tokens is an EncodingError.
func (e *Encoder) Embed(text string, maxLen int) (*mat.Dense, []float64, error) {
	seq, err := e.vocabulary.Encode(text, maxLen)
	if err != nil {
		return nil, nil, err
	}
	if seq.NonPadding() == 0 {
		return nil, nil, &EncodingError{Message: "text normalizes to zero tokens"}
	}

	cfg := e.params.Config
	seqLen := len(seq)

	// Token embedding lookup plus positional encoding.
	x := mat.NewDense(seqLen, cfg.HiddenDim, nil)
	for i, id := range seq {
		x.SetRow(i, e.params.Embedding.RawRowView(id))
	}
	x.Add(x, PositionalEncoding(seqLen, cfg.HiddenDim))

	padMask := seq.PaddingMask()
	for i := range e.params.Layers {
		x = applyBlock(&e.params.Layers[i], x, padMask, cfg.NumHeads)
	}

	pooled := make([]float64, cfg.HiddenDim)
	count := 0
	for i := 0; i < seqLen; i++ {
		if padMask[i] {
			continue
		}
		floats.Add(pooled, x.RawRowView(i))
		count++
	}
	floats.Scale(1/float64(count), pooled)

	return x, pooled, nil
}

// EmbedPooled is Embed restricted to the pooled document embedding.
func (e *Encoder) EmbedPooled(text string, maxLen int) ([]float64, error) {
	_, pooled, err := e.Embed(text, maxLen)
	return pooled, err
}
