package llm

import (
	"context"
	"strings"

	"edugen/internal/config"

	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"
)

// Embedder maps text to a fixed-length vector. Callers on the indexing
// path drop individual chunks whose embedding fails; callers on the
// query path treat failure as an empty result.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// EmbedModel adapts langchaingo's embedder to the Embedder interface.
type EmbedModel struct {
	embedder *embeddings.EmbedderImpl
}

// NewEmbedder builds an EmbedModel from config, mirroring NewGenerator's
// provider switch.
func NewEmbedder(cfg *config.LLMConfig) (*EmbedModel, error) {
	var client embeddings.EmbedderClient
	var err error
	switch cfg.Provider {
	case "ollama":
		client, err = ollama.New(
			ollama.WithServerURL(cfg.BaseURL),
			ollama.WithModel(cfg.Model),
		)
	default:
		client, err = openai.New(
			openai.WithBaseURL(cfg.BaseURL),
			openai.WithToken(strings.TrimPrefix(cfg.Key, "Bearer ")),
			openai.WithModel(cfg.Model),
			openai.WithEmbeddingModel(cfg.Model),
		)
	}
	if err != nil {
		return nil, err
	}

	embedder, err := embeddings.NewEmbedder(client)
	if err != nil {
		return nil, err
	}
	return &EmbedModel{embedder: embedder}, nil
}

func (e *EmbedModel) Embed(ctx context.Context, text string) ([]float32, error) {
	return e.embedder.EmbedQuery(ctx, text)
}
