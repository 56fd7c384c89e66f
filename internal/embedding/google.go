package embedding

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GoogleProvider generates embeddings through the Gemini API.
type GoogleProvider struct {
	client *genai.Client
	em     *genai.EmbeddingModel
	model  string
	dim    int
}

// NewGoogleProvider creates a Gemini-backed provider for the given model.
func NewGoogleProvider(ctx context.Context, apiKey, model string) (*GoogleProvider, error) {
	if apiKey == "" {
		return nil, errors.New("Gemini API key is required")
	}
	if model == "" {
		model = "text-embedding-004"
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GoogleProvider{
		client: client,
		em:     client.EmbeddingModel(model),
		model:  model,
		dim:    768,
	}, nil
}

// Embed generates an embedding for a single text. Blank input yields
// (nil, nil).
func (p *GoogleProvider) Embed(ctx context.Context, text string) ([]float64, error) {
	if isBlank(text) {
		return nil, nil
	}

	res, err := p.em.EmbedContent(ctx, genai.Text(text))
	if err != nil {
		return nil, fmt.Errorf("Gemini embedding request failed: %w", err)
	}
	if res.Embedding == nil {
		return nil, errors.New("Gemini returned no embedding")
	}
	return toFloat64(res.Embedding.Values), nil
}

// EmbedBatch embeds all non-blank texts in a single batch request. Blank
// items get a nil slot; the result stays aligned with the input.
func (p *GoogleProvider) EmbedBatch(ctx context.Context, texts []string) ([][]float64, error) {
	result := make([][]float64, len(texts))

	batch := p.em.NewBatch()
	var positions []int
	for i, text := range texts {
		if isBlank(text) {
			continue
		}
		batch.AddContent(genai.Text(text))
		positions = append(positions, i)
	}
	if len(positions) == 0 {
		return result, nil
	}

	res, err := p.em.BatchEmbedContents(ctx, batch)
	if err != nil {
		return nil, fmt.Errorf("Gemini batch embedding request failed: %w", err)
	}
	if len(res.Embeddings) != len(positions) {
		return nil, fmt.Errorf("Gemini returned %d embeddings for %d inputs", len(res.Embeddings), len(positions))
	}

	for i, emb := range res.Embeddings {
		result[positions[i]] = toFloat64(emb.Values)
	}
	return result, nil
}

// Dimension returns the embedding dimension for the configured model.
func (p *GoogleProvider) Dimension() int {
	return p.dim
}

// ModelInfo identifies the underlying model.
func (p *GoogleProvider) ModelInfo() string {
	return "google-" + p.model
}

// Close releases the underlying client.
func (p *GoogleProvider) Close() error {
	return p.client.Close()
}

func toFloat64(values []float32) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = float64(v)
	}
	return out
}
