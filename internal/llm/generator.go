// Package llm wraps langchaingo model endpoints behind the two small
// interfaces the rest of the system depends on: text generation and
// text embedding.
package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"edugen/internal/config"

	"github.com/rs/zerolog/log"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"
)

// Generator produces a completion for a prompt. The returned string is
// never empty: provider failures come back as a readable error string so
// callers can always display something.
type Generator interface {
	Generate(ctx context.Context, prompt string, temperature float64) string
}

const (
	maxOutputTokens = 8192
	generateTimeout = 60 * time.Second

	fallbackEmpty = "No response generated."
)

// ChatModel is a Generator backed by a langchaingo model.
type ChatModel struct {
	llm   llms.Model
	model string
}

// NewGenerator builds a ChatModel from config. Provider "ollama" talks
// to a local server, anything else goes through the OpenAI-compatible
// client (Groq, OpenRouter, Gemini compat).
func NewGenerator(cfg *config.LLMConfig) (*ChatModel, error) {
	model, err := newModel(cfg)
	if err != nil {
		return nil, err
	}
	return &ChatModel{llm: model, model: cfg.Model}, nil
}

func newModel(cfg *config.LLMConfig) (llms.Model, error) {
	switch cfg.Provider {
	case "ollama":
		return ollama.New(
			ollama.WithServerURL(cfg.BaseURL),
			ollama.WithModel(cfg.Model),
		)
	default:
		return openai.New(
			openai.WithBaseURL(cfg.BaseURL),
			openai.WithToken(strings.TrimPrefix(cfg.Key, "Bearer ")),
			openai.WithModel(cfg.Model),
		)
	}
}

// Generate runs one completion at the given temperature. On failure it
// returns a sentinel error string instead of an error, and it maps an
// empty completion to a fixed fallback line.
func (c *ChatModel) Generate(ctx context.Context, prompt string, temperature float64) string {
	ctx, cancel := context.WithTimeout(ctx, generateTimeout)
	defer cancel()

	messages := []llms.MessageContent{
		{
			Role:  llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{llms.TextContent{Text: prompt}},
		},
	}

	resp, err := c.llm.GenerateContent(ctx, messages,
		llms.WithTemperature(temperature),
		llms.WithMaxTokens(maxOutputTokens),
	)
	if err != nil {
		log.Error().Err(err).Str("model", c.model).Msg("Generation failed")
		return fmt.Sprintf("Error generating response: %v", err)
	}

	var answer string
	if len(resp.Choices) > 0 {
		answer = strings.TrimSpace(resp.Choices[0].Content)
	}
	if answer == "" {
		return fallbackEmpty
	}
	return answer
}
