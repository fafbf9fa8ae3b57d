package models

import (
	"github.com/go-playground/validator/v10"
)

// Difficulty controls how demanding generated quiz questions are.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// NoteStyle selects the layout of generated study notes.
type NoteStyle string

const (
	NoteStyleDetailed     NoteStyle = "Detailed"
	NoteStyleSummary      NoteStyle = "Summary"
	NoteStyleBulletPoints NoteStyle = "Bullet Points"
	NoteStyleCornell      NoteStyle = "Cornell Notes"
)

// QuizSettings are validated at the boundary before any prompt is built.
type QuizSettings struct {
	Difficulty   Difficulty `validate:"required,oneof=Easy Medium Hard"`
	NumQuestions int        `validate:"required,min=1,max=50"`
	Types        []string   `validate:"required,min=1,dive,oneof=multiple_choice true_false"`
}

// DefaultQuizSettings mirrors the defaults offered in the UI.
func DefaultQuizSettings() QuizSettings {
	return QuizSettings{
		Difficulty:   DifficultyMedium,
		NumQuestions: 15,
		Types:        []string{QuestionTypeMultipleChoice, QuestionTypeTrueFalse},
	}
}

// NoteSettings configure notes generation.
type NoteSettings struct {
	Style           NoteStyle `validate:"required,oneof=Detailed Summary 'Bullet Points' 'Cornell Notes'"`
	IncludeExamples bool
}

func DefaultNoteSettings() NoteSettings {
	return NoteSettings{Style: NoteStyleDetailed, IncludeExamples: true}
}

var validate = validator.New()

func (s QuizSettings) Validate() error {
	return validate.Struct(s)
}

func (s NoteSettings) Validate() error {
	return validate.Struct(s)
}
