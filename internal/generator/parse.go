// Package generator builds prompts for quizzes, flashcards and study
// notes, invokes the generation provider and parses its semi-structured
// output. Parsing is two-stage: a strict JSON parse after fence
// stripping, then a lenient regex extraction. Total failure degrades to
// an empty result, never a crash.
package generator

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"edugen/internal/models"
)

// ErrNoInput is returned when neither source text nor a topic is given.
var ErrNoInput = errors.New("no source text or topic provided")

var (
	fenceRe     = regexp.MustCompile("(?m)^```[a-zA-Z]*\\n?")
	jsonArrayRe = regexp.MustCompile(`(?s)\[.*\]`)
	spaceRe     = regexp.MustCompile(`\s+`)
)

// stripCodeFences removes markdown code fence markers the model emits
// despite being told not to.
func stripCodeFences(text string) string {
	text = fenceRe.ReplaceAllString(text, "")
	return strings.ReplaceAll(text, "```", "")
}

// extractJSONArray slices out the outermost [...] of the response.
// Returns "" when no array boundaries are present.
func extractJSONArray(text string) string {
	text = stripCodeFences(text)
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start == -1 || end <= start {
		return ""
	}
	return text[start : end+1]
}

// decodeArray runs the strict parse and falls back to a best-effort
// regex match over the raw response when the model wrapped the array in
// prose. dst must be a pointer to a slice.
func decodeArray(response string, dst any) error {
	if raw := extractJSONArray(response); raw != "" {
		if err := json.Unmarshal([]byte(raw), dst); err == nil {
			return nil
		}
	}
	if m := jsonArrayRe.FindString(response); m != "" {
		if err := json.Unmarshal([]byte(m), dst); err == nil {
			return nil
		}
	}
	return fmt.Errorf("no parseable JSON array in response")
}

// truncate caps source text at budget bytes. Cuts are hard, not
// sentence-aware, but never split a multi-byte rune.
func truncate(text string, budget int) string {
	if len(text) <= budget {
		return text
	}
	for budget > 0 && !utf8.RuneStart(text[budget]) {
		budget--
	}
	return text[:budget]
}

// sourceSection renders the prompt section carrying either truncated
// source text or a bare topic.
func sourceSection(text, topic string, budget int) (string, error) {
	text = strings.TrimSpace(text)
	topic = strings.TrimSpace(topic)
	if text == "" && topic == "" {
		return "", ErrNoInput
	}
	if text != "" {
		return fmt.Sprintf(models.SourceTextSection, truncate(text, budget)), nil
	}
	return fmt.Sprintf(models.TopicSection, topic), nil
}

// cleanField collapses whitespace and strips wrapping quotes from a
// parsed model field.
func cleanField(text string) string {
	text = spaceRe.ReplaceAllString(text, " ")
	text = strings.TrimSpace(text)
	return strings.Trim(text, `"'`)
}
