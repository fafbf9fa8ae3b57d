package generator

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"edugen/internal/llm"
	"edugen/internal/models"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

const (
	notesSourceBudget = 7000
	// Notes favor deterministic prose over creative variation.
	notesTemperature = 0.4
)

type Notes struct {
	generator llm.Generator
}

func NewNotes(generator llm.Generator) *Notes {
	return &Notes{generator: generator}
}

// Generate builds markdown study notes from source text or a topic.
// The whole document is regenerated on every call; there is no partial
// update. The result is the model's markdown with code fences stripped.
func (n *Notes) Generate(ctx context.Context, text, topic string, settings models.NoteSettings) (string, error) {
	if err := settings.Validate(); err != nil {
		return "", fmt.Errorf("invalid note settings: %w", err)
	}
	source, err := sourceSection(text, topic, notesSourceBudget)
	if err != nil {
		return "", err
	}

	instruction := styleInstruction(settings.Style)
	if settings.IncludeExamples {
		instruction += " Include concrete examples to illustrate key concepts."
	}

	prompt := fmt.Sprintf(models.NotesPrompt, source, settings.Style, instruction)
	response := n.generator.Generate(ctx, prompt, notesTemperature)
	return strings.TrimSpace(stripCodeFences(response)), nil
}

func styleInstruction(style models.NoteStyle) string {
	switch style {
	case models.NoteStyleSummary:
		return "Create a concise summary hitting only the most important points. Keep it brief and scannable."
	case models.NoteStyleBulletPoints:
		return "Create notes entirely in bullet point format. Use nested bullets for sub-points."
	case models.NoteStyleCornell:
		return "Create notes in Cornell format: a Main Notes section with key concepts and details, " +
			"a Cues section with questions and keywords, and a Summary section with a 3-5 sentence recap."
	default:
		return "Create comprehensive, detailed notes covering all key concepts with explanations."
	}
}

// RenderHTML converts generated notes markdown to HTML for export.
func RenderHTML(markdown string) (string, error) {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
		),
	)
	var buf bytes.Buffer
	if err := md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("failed to render notes: %w", err)
	}
	return buf.String(), nil
}
