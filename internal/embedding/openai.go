package embedding

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAIEncoder encodes text through the OpenAI embeddings API. It exists
// for deployments without a self-hosted model server; the centroid table
// must have been trained with the same model.
type OpenAIEncoder struct {
	client openai.Client
	model  openai.EmbeddingModel
}

// NewOpenAIEncoder builds an encoder using the given API key and model name.
// An empty model name selects text-embedding-3-small.
func NewOpenAIEncoder(apiKey, model string) *OpenAIEncoder {
	m := openai.EmbeddingModel(model)
	if model == "" {
		m = openai.EmbeddingModelTextEmbedding3Small
	}
	return &OpenAIEncoder{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
		model:  m,
	}
}

// Encode requests an embedding vector for text.
func (e *OpenAIEncoder) Encode(ctx context.Context, text string) ([]float64, error) {
	resp, err := e.client.Embeddings.New(ctx, openai.EmbeddingNewParams{
		Input: openai.EmbeddingNewParamsInputUnion{OfString: openai.String(text)},
		Model: e.model,
	})
	if err != nil {
		return nil, fmt.Errorf("openai embeddings: %w", err)
	}
	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("openai embeddings: empty response")
	}
	return resp.Data[0].Embedding, nil
}
