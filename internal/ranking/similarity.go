package ranking

import (
	"errors"
	"fmt"
	"math"
)

// Errors returned when vectors violate the similarity contract. Both are
// contract violations: callers should abort the ranking call rather than
// substitute a score.
var (
	ErrDimensionMismatch = errors.New("vectors have different dimensions")
	ErrZeroVector        = errors.New("zero-magnitude vector has no direction")
)

// Cosine computes the cosine similarity of two equal-length vectors, a value
// in [-1, 1]. It errors on a length mismatch and on zero-magnitude input
// instead of silently returning 0, so a broken embedding never masquerades
// as "unrelated".
func Cosine(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, len(a), len(b))
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0, ErrZeroVector
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), nil
}
