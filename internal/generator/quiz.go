package generator

import (
	"context"
	"fmt"
	"math/rand"
	"slices"

	"edugen/internal/llm"
	"edugen/internal/models"

	"github.com/rs/zerolog/log"
)

const (
	quizSourceBudget = 3000
	quizTemperature  = 0.7
)

type Quiz struct {
	generator llm.Generator
}

func NewQuiz(generator llm.Generator) *Quiz {
	return &Quiz{generator: generator}
}

// Generate builds one prompt per requested question type, parses each
// response and merges the valid questions. Invalid elements are dropped
// silently; a fully unparseable response contributes nothing. The
// requested count is a cap, never padded — fewer questions than asked
// for is a normal outcome the caller should surface as "regenerate".
func (q *Quiz) Generate(ctx context.Context, text, topic string, settings models.QuizSettings) ([]models.QuizQuestion, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid quiz settings: %w", err)
	}
	source, err := sourceSection(text, topic, quizSourceBudget)
	if err != nil {
		return nil, err
	}

	perType := settings.NumQuestions / len(settings.Types)
	if perType < 1 {
		perType = 1
	}

	var questions []models.QuizQuestion
	for _, qt := range settings.Types {
		var template string
		switch qt {
		case models.QuestionTypeMultipleChoice:
			template = models.QuizMCQPrompt
		case models.QuestionTypeTrueFalse:
			template = models.QuizTrueFalsePrompt
		default:
			continue
		}

		prompt := fmt.Sprintf(template, perType, settings.Difficulty, source, difficultyGuidance(settings.Difficulty))
		response := q.generator.Generate(ctx, prompt, quizTemperature)
		parsed := parseQuizResponse(response, qt)
		if len(parsed) == 0 {
			log.Warn().Str("type", qt).Msg("No valid questions parsed from response")
		}
		if len(parsed) > perType {
			parsed = parsed[:perType]
		}
		questions = append(questions, parsed...)
	}

	rand.Shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})
	if len(questions) > settings.NumQuestions {
		questions = questions[:settings.NumQuestions]
	}
	return questions, nil
}

func difficultyGuidance(d models.Difficulty) string {
	switch d {
	case models.DifficultyEasy:
		return "Focus on basic concepts and definitions"
	case models.DifficultyHard:
		return "Require synthesis and critical thinking"
	default:
		return "Include analysis and application"
	}
}

// parseQuizResponse decodes and validates the model output for one
// question type. Malformed JSON yields an empty slice.
func parseQuizResponse(response, questionType string) []models.QuizQuestion {
	var raw []models.QuizQuestion
	if err := decodeArray(response, &raw); err != nil {
		log.Debug().Err(err).Msg("Quiz response parse failed")
		return nil
	}

	var valid []models.QuizQuestion
	for _, question := range raw {
		question.Question = cleanField(question.Question)
		question.Answer = cleanField(question.Answer)
		for i, opt := range question.Options {
			question.Options[i] = cleanField(opt)
		}
		if question.Type == "" {
			question.Type = questionType
		}
		if question.Type == models.QuestionTypeTrueFalse && len(question.Options) == 0 {
			question.Options = []string{"True", "False"}
		}
		if validateQuestion(question) {
			valid = append(valid, question)
		}
	}
	return valid
}

// validateQuestion enforces the schema invariants: multiple choice
// carries exactly four options, true/false the two canonical ones, and
// the answer is always one of the options.
func validateQuestion(q models.QuizQuestion) bool {
	if q.Question == "" || q.Answer == "" {
		return false
	}
	switch q.Type {
	case models.QuestionTypeMultipleChoice:
		if len(q.Options) != 4 {
			return false
		}
	case models.QuestionTypeTrueFalse:
		if len(q.Options) != 2 {
			return false
		}
	default:
		return false
	}
	return slices.Contains(q.Options, q.Answer)
}

// Score compares user answers against the quiz and reports totals.
// Answers are keyed by question index.
func Score(quiz []models.QuizQuestion, answers map[int]string) (correct, answered int) {
	for i, q := range quiz {
		answer, ok := answers[i]
		if !ok {
			continue
		}
		answered++
		if answer == q.Answer {
			correct++
		}
	}
	return correct, answered
}
