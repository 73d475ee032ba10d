package scoring

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// DimensionError reports two embeddings of different dimensions being
// compared.
type DimensionError struct {
	Want, Got int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("embedding dimension mismatch: %d vs %d", e.Want, e.Got)
}

// CosineSimilarity returns the normalized dot product of a and b in [-1,1].
// It is defined as 0 when either magnitude is exactly zero.
func CosineSimilarity(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, &DimensionError{Want: len(a), Got: len(b)}
	}
	if len(a) == 0 {
		return 0, &DimensionError{Want: 0, Got: 0}
	}

	normA := floats.Norm(a, 2)
	normB := floats.Norm(b, 2)
	if normA == 0 || normB == 0 {
		return 0, nil
	}

	return floats.Dot(a, b) / (normA * normB), nil
}
