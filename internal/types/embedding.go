package types

// PooledEmbedding is a single fixed-length vector summarizing an entire text.
type PooledEmbedding struct {
	Dimension int       `json:"dimension"`
	Vector    []float64 `json:"vector"`
}
