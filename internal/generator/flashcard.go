package generator

import (
	"context"
	"fmt"
	"regexp"

	"edugen/internal/llm"
	"edugen/internal/models"

	"github.com/rs/zerolog/log"
)

const (
	flashcardSourceBudget = 4000
	flashcardTemperature  = 0.7

	minFieldLen = 5
	maxFrontLen = 200
	maxBackLen  = 500
)

// Lenient extraction patterns tried when the strict JSON parse fails.
var flashcardPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)"front":\s*"([^"]+)",\s*"back":\s*"([^"]+)"`),
	regexp.MustCompile(`(?im)^front:\s*([^\n]+)\n\s*back:\s*([^\n]+)`),
	regexp.MustCompile(`(?im)^q:\s*([^\n]+)\n\s*a:\s*([^\n]+)`),
}

type Flashcards struct {
	generator llm.Generator
}

func NewFlashcards(generator llm.Generator) *Flashcards {
	return &Flashcards{generator: generator}
}

// Generate produces up to numCards front/back cards from source text or
// a topic. Invalid cards are dropped; unparseable output yields an
// empty slice, which callers present as a retry condition.
func (f *Flashcards) Generate(ctx context.Context, text, topic string, numCards int) ([]models.Flashcard, error) {
	source, err := sourceSection(text, topic, flashcardSourceBudget)
	if err != nil {
		return nil, err
	}
	if numCards < 1 {
		numCards = 1
	}

	prompt := fmt.Sprintf(models.FlashcardPrompt, numCards, source)
	response := f.generator.Generate(ctx, prompt, flashcardTemperature)

	cards := parseFlashcardResponse(response)
	if len(cards) == 0 {
		log.Warn().Msg("No valid flashcards parsed from response")
	}
	if len(cards) > numCards {
		cards = cards[:numCards]
	}
	return cards, nil
}

func parseFlashcardResponse(response string) []models.Flashcard {
	var raw []models.Flashcard
	if err := decodeArray(response, &raw); err != nil {
		log.Debug().Err(err).Msg("Flashcard JSON parse failed, trying regex extraction")
		raw = extractFlashcards(response)
	}

	var valid []models.Flashcard
	for _, card := range raw {
		card.Front = cleanField(card.Front)
		card.Back = cleanField(card.Back)
		if validateFlashcard(card) {
			valid = append(valid, card)
		}
	}
	return valid
}

// extractFlashcards scrapes front/back pairs out of free-form output.
func extractFlashcards(response string) []models.Flashcard {
	var cards []models.Flashcard
	for _, pattern := range flashcardPatterns {
		for _, m := range pattern.FindAllStringSubmatch(response, -1) {
			cards = append(cards, models.Flashcard{Front: m[1], Back: m[2]})
		}
		if len(cards) > 0 {
			break
		}
	}
	return cards
}

func validateFlashcard(card models.Flashcard) bool {
	if len(card.Front) < minFieldLen || len(card.Back) < minFieldLen {
		return false
	}
	if len(card.Front) > maxFrontLen || len(card.Back) > maxBackLen {
		return false
	}
	return true
}
