// Package encoder implements the multi-layer self-attention text encoder:
// immutable model parameter snapshots, sinusoidal positional encoding, and
// the encoder stack producing contextual and pooled embeddings.
package encoder

import (
	"encoding/json"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Config holds the encoder hyperparameters. All dimensions must be positive
// and HiddenDim must be divisible by NumHeads.
type Config struct {
	VocabSize int `json:"vocab_size"`
	HiddenDim int `json:"hidden_dim"`
	NumHeads  int `json:"num_heads"`
	NumLayers int `json:"num_layers"`
	MaxSeqLen int `json:"max_seq_len"`
	FFDim     int `json:"ff_dim"`
	// Dropout is carried for snapshot compatibility; it has zero effect at
	// inference.
	Dropout float64 `json:"dropout"`
}

// DefaultConfig returns the default hyperparameters.
func DefaultConfig() Config {
	return Config{
		VocabSize: 5000,
		HiddenDim: 256,
		NumHeads:  8,
		NumLayers: 4,
		MaxSeqLen: 512,
		FFDim:     1024,
		Dropout:   0.1,
	}
}

// Validate checks the hyperparameters for consistency.
func (c Config) Validate() error {
	if c.VocabSize <= 0 || c.HiddenDim <= 0 || c.NumHeads <= 0 || c.NumLayers <= 0 || c.MaxSeqLen <= 0 || c.FFDim <= 0 {
		return &ConfigError{Message: fmt.Sprintf("all dimensions must be positive, got %+v", c)}
	}
	if c.HiddenDim%c.NumHeads != 0 {
		return &ConfigError{Message: fmt.Sprintf("hidden dimension %d is not divisible by head count %d", c.HiddenDim, c.NumHeads)}
	}
	if c.Dropout < 0 || c.Dropout >= 1 {
		return &ConfigError{Message: fmt.Sprintf("dropout %v must be in [0, 1)", c.Dropout)}
	}
	return nil
}

// LayerParameters holds the weights of one attention block: the four
// attention projections, the two feed-forward transforms, and the two
// layer-norm scales.
type LayerParameters struct {
	WQ, WK, WV, WO *mat.Dense
	BQ, BK, BV, BO []float64

	FFW1, FFW2 *mat.Dense
	FFB1, FFB2 []float64

	LN1Gamma, LN1Beta []float64
	LN2Gamma, LN2Beta []float64
}

// ModelParameters is an immutable pretrained model snapshot: the embedding
// table, the vocabulary it was trained with, and one LayerParameters record
// per attention block.
type ModelParameters struct {
	Config    Config
	Vocab     []string
	Embedding *mat.Dense
	Layers    []LayerParameters
}

// reservedTokenCount mirrors the vocabulary's control tokens; the snapshot
// vocab list holds only the trained terms that follow them.
const reservedTokenCount = 5

// Validate checks that every matrix in the snapshot has the shape the config
// requires. Any mismatch is a fatal ConfigError.
func (p *ModelParameters) Validate() error {
	if err := p.Config.Validate(); err != nil {
		return err
	}

	cfg := p.Config
	if len(p.Vocab)+reservedTokenCount > cfg.VocabSize {
		return &ConfigError{Message: fmt.Sprintf("vocab has %d terms but capacity is %d after %d reserved tokens",
			len(p.Vocab), cfg.VocabSize-reservedTokenCount, reservedTokenCount)}
	}

	if err := checkShape("embedding", p.Embedding, cfg.VocabSize, cfg.HiddenDim); err != nil {
		return err
	}

	if len(p.Layers) != cfg.NumLayers {
		return &ConfigError{Message: fmt.Sprintf("snapshot has %d layers, config requires %d", len(p.Layers), cfg.NumLayers)}
	}

	for i := range p.Layers {
		layer := &p.Layers[i]
		prefix := fmt.Sprintf("layer %d ", i)
		checks := []struct {
			name       string
			m          *mat.Dense
			rows, cols int
		}{
			{prefix + "attn_wq", layer.WQ, cfg.HiddenDim, cfg.HiddenDim},
			{prefix + "attn_wk", layer.WK, cfg.HiddenDim, cfg.HiddenDim},
			{prefix + "attn_wv", layer.WV, cfg.HiddenDim, cfg.HiddenDim},
			{prefix + "attn_wo", layer.WO, cfg.HiddenDim, cfg.HiddenDim},
			{prefix + "ff_w1", layer.FFW1, cfg.HiddenDim, cfg.FFDim},
			{prefix + "ff_w2", layer.FFW2, cfg.FFDim, cfg.HiddenDim},
		}
		for _, check := range checks {
			if err := checkShape(check.name, check.m, check.rows, check.cols); err != nil {
				return err
			}
		}

		vectors := []struct {
			name string
			v    []float64
			want int
		}{
			{prefix + "attn_bq", layer.BQ, cfg.HiddenDim},
			{prefix + "attn_bk", layer.BK, cfg.HiddenDim},
			{prefix + "attn_bv", layer.BV, cfg.HiddenDim},
			{prefix + "attn_bo", layer.BO, cfg.HiddenDim},
			{prefix + "ff_b1", layer.FFB1, cfg.FFDim},
			{prefix + "ff_b2", layer.FFB2, cfg.HiddenDim},
			{prefix + "ln1_gamma", layer.LN1Gamma, cfg.HiddenDim},
			{prefix + "ln1_beta", layer.LN1Beta, cfg.HiddenDim},
			{prefix + "ln2_gamma", layer.LN2Gamma, cfg.HiddenDim},
			{prefix + "ln2_beta", layer.LN2Beta, cfg.HiddenDim},
		}
		for _, check := range vectors {
			if len(check.v) != check.want {
				return &ConfigError{Message: fmt.Sprintf("%s has length %d, want %d", check.name, len(check.v), check.want)}
			}
		}
	}

	return nil
}

func checkShape(name string, m *mat.Dense, wantRows, wantCols int) error {
	if m == nil {
		return &ConfigError{Message: fmt.Sprintf("%s matrix is missing", name)}
	}
	rows, cols := m.Dims()
	if rows != wantRows || cols != wantCols {
		return &ConfigError{Message: fmt.Sprintf("%s has shape %dx%d, want %dx%d", name, rows, cols, wantRows, wantCols)}
	}
	return nil
}

// parametersFile is the JSON wire form of a model snapshot.
type parametersFile struct {
	Config    Config      `json:"config"`
	Vocab     []string    `json:"vocab,omitempty"`
	Embedding [][]float64 `json:"embedding"`
	Layers    []layerFile `json:"layers"`
}

type layerFile struct {
	AttnWQ [][]float64 `json:"attn_wq"`
	AttnBQ []float64   `json:"attn_bq"`
	AttnWK [][]float64 `json:"attn_wk"`
	AttnBK []float64   `json:"attn_bk"`
	AttnWV [][]float64 `json:"attn_wv"`
	AttnBV []float64   `json:"attn_bv"`
	AttnWO [][]float64 `json:"attn_wo"`
	AttnBO []float64   `json:"attn_bo"`

	FFW1 [][]float64 `json:"ff_w1"`
	FFB1 []float64   `json:"ff_b1"`
	FFW2 [][]float64 `json:"ff_w2"`
	FFB2 []float64   `json:"ff_b2"`

	LN1Gamma []float64 `json:"ln1_gamma"`
	LN1Beta  []float64 `json:"ln1_beta"`
	LN2Gamma []float64 `json:"ln2_gamma"`
	LN2Beta  []float64 `json:"ln2_beta"`
}

// LoadParameters parses and validates a model snapshot blob. Any corruption
// or shape mismatch is a fatal ConfigError; the returned snapshot is never
// mutated afterwards.
func LoadParameters(blob []byte) (*ModelParameters, error) {
	var file parametersFile
	if err := json.Unmarshal(blob, &file); err != nil {
		return nil, &ConfigError{Message: "corrupt model blob", Cause: err}
	}

	if err := file.Config.Validate(); err != nil {
		return nil, err
	}

	embedding, err := toDense("embedding", file.Embedding)
	if err != nil {
		return nil, err
	}

	params := &ModelParameters{
		Config:    file.Config,
		Vocab:     file.Vocab,
		Embedding: embedding,
		Layers:    make([]LayerParameters, 0, len(file.Layers)),
	}

	for i, layer := range file.Layers {
		prefix := fmt.Sprintf("layer %d ", i)
		converted := LayerParameters{
			BQ: layer.AttnBQ, BK: layer.AttnBK, BV: layer.AttnBV, BO: layer.AttnBO,
			FFB1: layer.FFB1, FFB2: layer.FFB2,
			LN1Gamma: layer.LN1Gamma, LN1Beta: layer.LN1Beta,
			LN2Gamma: layer.LN2Gamma, LN2Beta: layer.LN2Beta,
		}
		if converted.WQ, err = toDense(prefix+"attn_wq", layer.AttnWQ); err != nil {
			return nil, err
		}
		if converted.WK, err = toDense(prefix+"attn_wk", layer.AttnWK); err != nil {
			return nil, err
		}
		if converted.WV, err = toDense(prefix+"attn_wv", layer.AttnWV); err != nil {
			return nil, err
		}
		if converted.WO, err = toDense(prefix+"attn_wo", layer.AttnWO); err != nil {
			return nil, err
		}
		if converted.FFW1, err = toDense(prefix+"ff_w1", layer.FFW1); err != nil {
			return nil, err
		}
		if converted.FFW2, err = toDense(prefix+"ff_w2", layer.FFW2); err != nil {
			return nil, err
		}
		params.Layers = append(params.Layers, converted)
	}

	if err := params.Validate(); err != nil {
		return nil, err
	}

	return params, nil
}

// Marshal serializes the snapshot back to its JSON wire form.
func (p *ModelParameters) Marshal() ([]byte, error) {
	file := parametersFile{
		Config:    p.Config,
		Vocab:     p.Vocab,
		Embedding: fromDense(p.Embedding),
		Layers:    make([]layerFile, 0, len(p.Layers)),
	}

	for i := range p.Layers {
		layer := &p.Layers[i]
		file.Layers = append(file.Layers, layerFile{
			AttnWQ: fromDense(layer.WQ), AttnBQ: layer.BQ,
			AttnWK: fromDense(layer.WK), AttnBK: layer.BK,
			AttnWV: fromDense(layer.WV), AttnBV: layer.BV,
			AttnWO: fromDense(layer.WO), AttnBO: layer.BO,
			FFW1: fromDense(layer.FFW1), FFB1: layer.FFB1,
			FFW2: fromDense(layer.FFW2), FFB2: layer.FFB2,
			LN1Gamma: layer.LN1Gamma, LN1Beta: layer.LN1Beta,
			LN2Gamma: layer.LN2Gamma, LN2Beta: layer.LN2Beta,
		})
	}

	blob, err := json.Marshal(file)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal model parameters: %w", err)
	}
	return blob, nil
}

// toDense converts a row-major JSON matrix, requiring rectangular shape.
func toDense(name string, rows [][]float64) (*mat.Dense, error) {
	if len(rows) == 0 {
		return nil, &ConfigError{Message: fmt.Sprintf("%s matrix is missing", name)}
	}
	cols := len(rows[0])
	if cols == 0 {
		return nil, &ConfigError{Message: fmt.Sprintf("%s matrix has empty rows", name)}
	}

	data := make([]float64, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, &ConfigError{Message: fmt.Sprintf("%s row %d has %d columns, want %d", name, i, len(row), cols)}
		}
		data = append(data, row...)
	}

	return mat.NewDense(len(rows), cols, data), nil
}

func fromDense(m *mat.Dense) [][]float64 {
	rows, cols := m.Dims()
	out := make([][]float64, rows)
	for i := 0; i < rows; i++ {
		row := make([]float64, cols)
		copy(row, m.RawRowView(i))
		out[i] = row
	}
	return out
}
