package embedding

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIProvider generates embeddings through the OpenAI API.
type OpenAIProvider struct {
	client *openai.Client
	model  string
	dim    int
}

// NewOpenAIProvider creates an OpenAI-backed provider for the given model.
func NewOpenAIProvider(apiKey, model string) (*OpenAIProvider, error) {
	if apiKey == "" {
		return nil, errors.New("OpenAI API key is required")
	}
	if model == "" {
		model = "text-embedding-3-small"
	}

	dim := 1536
	if model == "text-embedding-3-large" {
		dim = 3072
	}

	return &OpenAIProvider{
		client: openai.NewClient(apiKey),
		model:  model,
		dim:    dim,
	}, nil
}

// Embed generates an embedding for a single text. Blank input yields
// (nil, nil).
func (p *OpenAIProvider) Embed(ctx context.Context, text string) ([]float64, error) {
	if isBlank(text) {
		return nil, nil
	}

	vecs, err := p.request(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vecs[0], nil
}

// EmbedBatch embeds all texts in a single API round-trip. Blank items get a
// nil slot; non-blank items are sent together in one request.
func (p *OpenAIProvider) EmbedBatch(ctx context.Context, texts []string) ([][]float64, error) {
	result := make([][]float64, len(texts))

	var input []string
	var positions []int
	for i, text := range texts {
		if isBlank(text) {
			continue
		}
		input = append(input, text)
		positions = append(positions, i)
	}
	if len(input) == 0 {
		return result, nil
	}

	vecs, err := p.request(ctx, input)
	if err != nil {
		return nil, err
	}
	for i, vec := range vecs {
		result[positions[i]] = vec
	}
	return result, nil
}

// request issues one embeddings call and returns vectors in input order.
func (p *OpenAIProvider) request(ctx context.Context, input []string) ([][]float64, error) {
	resp, err := p.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Model: openai.EmbeddingModel(p.model),
		Input: input,
	})
	if err != nil {
		return nil, fmt.Errorf("OpenAI embeddings request failed: %w", err)
	}

	if len(resp.Data) != len(input) {
		return nil, fmt.Errorf("OpenAI returned %d embeddings for %d inputs", len(resp.Data), len(input))
	}

	vecs := make([][]float64, len(input))
	for _, d := range resp.Data {
		if d.Index < 0 || d.Index >= len(vecs) {
			return nil, fmt.Errorf("OpenAI returned out-of-range embedding index %d", d.Index)
		}
		vec := make([]float64, len(d.Embedding))
		for i, x := range d.Embedding {
			vec[i] = float64(x)
		}
		vecs[d.Index] = vec
	}
	return vecs, nil
}

// Dimension returns the embedding dimension for the configured model.
func (p *OpenAIProvider) Dimension() int {
	return p.dim
}

// ModelInfo identifies the underlying model.
func (p *OpenAIProvider) ModelInfo() string {
	return "openai-" + p.model
}
