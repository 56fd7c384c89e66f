package embedding

import (
	"context"
	"hash/fnv"
	"strings"
)

// DefaultHashDimension is the vector size used by NewHashProvider when no
// dimension is given.
const DefaultHashDimension = 256

// HashProvider is a deterministic, offline provider. It hashes each token
// into a fixed-size bucket vector and L2-normalizes the result. The output
// carries no real semantics beyond token overlap, but it is reproducible,
// needs no network, and satisfies the full Provider contract, which makes
// it useful for dry runs and tests.
type HashProvider struct {
	dim int
}

// NewHashProvider creates a hash-based provider with the given dimension.
// A dimension of zero or less falls back to DefaultHashDimension.
func NewHashProvider(dimension int) *HashProvider {
	if dimension <= 0 {
		dimension = DefaultHashDimension
	}
	return &HashProvider{dim: dimension}
}

// Embed generates a deterministic vector for the text. Blank input yields
// (nil, nil).
func (p *HashProvider) Embed(_ context.Context, text string) ([]float64, error) {
	if isBlank(text) {
		return nil, nil
	}

	vec := make([]float64, p.dim)
	for _, token := range strings.Fields(strings.ToLower(text)) {
		h := fnv.New32a()
		h.Write([]byte(token))
		vec[int(h.Sum32())%p.dim]++
	}
	l2normalize(vec)
	return vec, nil
}

// EmbedBatch embeds each text independently. Blank items get a nil slot.
func (p *HashProvider) EmbedBatch(ctx context.Context, texts []string) ([][]float64, error) {
	result := make([][]float64, len(texts))
	for i, text := range texts {
		vec, err := p.Embed(ctx, text)
		if err != nil {
			return nil, err
		}
		result[i] = vec
	}
	return result, nil
}

// Dimension returns the configured vector size.
func (p *HashProvider) Dimension() int {
	return p.dim
}

// ModelInfo identifies this provider.
func (p *HashProvider) ModelInfo() string {
	return "hash-fnv32a"
}
