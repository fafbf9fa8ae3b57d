// Package rag answers questions by retrieving relevant stored chunks
// and conditioning a generation call on them.
package rag

import (
	"context"
	"fmt"
	"strings"

	"edugen/internal/config"
	"edugen/internal/llm"
	"edugen/internal/models"
	"edugen/internal/store"

	"github.com/rs/zerolog/log"
)

// historyWindow bounds how many recent turns go into the prompt.
const historyWindow = 6

type Chat struct {
	store       store.Store
	generator   llm.Generator
	topK        int
	temperature float64
}

func NewChat(s store.Store, generator llm.Generator, cfg *config.RAGConfig) *Chat {
	return &Chat{
		store:       s,
		generator:   generator,
		topK:        cfg.TopK,
		temperature: cfg.Temperature,
	}
}

// Ask retrieves context for the question and generates an answer. With
// no retrievable context the model is told explicitly to answer from
// general knowledge. The generator's output is returned unmodified; its
// always-returns-text contract means Content is never empty. No retries.
func (c *Chat) Ask(ctx context.Context, question string, history []models.ChatMessage) models.ChatResponse {
	contextChunks, err := c.store.Query(ctx, question, c.topK)
	if err != nil {
		log.Warn().Err(err).Msg("Retrieval failed, answering without context")
		contextChunks = nil
	}

	var prompt, source string
	if len(contextChunks) == 0 {
		prompt = fmt.Sprintf(models.ChatNoContextPrompt, question)
	} else {
		source = strings.Join(contextChunks, "\n\n")
		prompt = fmt.Sprintf(models.ChatContextPrompt, source, formatHistory(history), question)
	}

	answer := c.generator.Generate(ctx, prompt, c.temperature)
	return models.ChatResponse{
		Query:   question,
		Source:  source,
		Content: answer,
	}
}

// formatHistory renders the last historyWindow turns as "Role: content"
// lines.
func formatHistory(history []models.ChatMessage) string {
	if len(history) > historyWindow {
		history = history[len(history)-historyWindow:]
	}
	lines := make([]string, 0, len(history))
	for _, msg := range history {
		lines = append(lines, capitalize(msg.Role)+": "+msg.Content)
	}
	return strings.Join(lines, "\n")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
