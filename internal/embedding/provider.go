package embedding

import (
	"context"
	"math"
	"strings"
)

// Provider converts text into fixed-length numeric vectors. All vectors
// produced by one provider instance share the same dimension, so any two of
// them can be compared with cosine similarity.
//
// Blank input (empty or whitespace-only) is absence, not failure: Embed
// returns (nil, nil) and EmbedBatch leaves a nil slot at the item's
// position. Batch results are always positionally aligned with their input.
type Provider interface {
	// Embed returns the vector for a single text, or (nil, nil) when the
	// text is blank.
	Embed(ctx context.Context, text string) ([]float64, error)

	// EmbedBatch returns one vector per input text, in input order. Blank
	// items produce nil entries; the result always has len(texts) entries.
	EmbedBatch(ctx context.Context, texts []string) ([][]float64, error)

	// Dimension returns the length of vectors produced by this provider.
	Dimension() int

	// ModelInfo identifies the underlying model, for diagnostics.
	ModelInfo() string
}

// isBlank reports whether text is empty or whitespace-only.
func isBlank(text string) bool {
	return strings.TrimSpace(text) == ""
}

// l2normalize scales v to unit length in place. Zero vectors are left as-is.
func l2normalize(v []float64) {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	if sum == 0 {
		return
	}
	inv := 1.0 / math.Sqrt(sum)
	for i := range v {
		v[i] *= inv
	}
}
