// Package session owns the per-user state: indexed sources, chat
// history and the generated study artifacts. One Session per user; it
// is not safe for use from multiple goroutines.
package session

import (
	"context"
	"fmt"
	"strings"

	"edugen/internal/chunker"
	"edugen/internal/config"
	"edugen/internal/generator"
	"edugen/internal/helper"
	"edugen/internal/llm"
	"edugen/internal/models"
	"edugen/internal/parser"
	"edugen/internal/rag"
	"edugen/internal/store"

	"github.com/rs/zerolog/log"
)

type Session struct {
	cfg   *config.Config
	store store.Store
	chat  *rag.Chat

	quiz       *generator.Quiz
	flashcards *generator.Flashcards
	notes      *generator.Notes

	history    []models.ChatMessage
	sourceText strings.Builder
	sources    []string

	lastQuiz  []models.QuizQuestion
	lastCards []models.Flashcard
	lastNotes string
}

func New(cfg *config.Config, s store.Store, gen llm.Generator) *Session {
	return &Session{
		cfg:        cfg,
		store:      s,
		chat:       rag.NewChat(s, gen, &cfg.RAG),
		quiz:       generator.NewQuiz(gen),
		flashcards: generator.NewFlashcards(gen),
		notes:      generator.NewNotes(gen),
	}
}

// IngestFile extracts a document, chunks it and indexes the chunks.
// Returns the number of chunks stored.
func (s *Session) IngestFile(ctx context.Context, path string) (int, error) {
	text, err := parser.ExtractFile(path)
	if err != nil {
		return 0, err
	}
	return s.IngestText(ctx, text, helper.FormatSourceName(path))
}

// IngestYouTube fetches a transcript and indexes it.
func (s *Session) IngestYouTube(ctx context.Context, url string) (int, error) {
	text, err := parser.ExtractYouTube(ctx, url)
	if err != nil {
		return 0, err
	}
	return s.IngestText(ctx, text, "YouTube Transcript")
}

// IngestText chunks and indexes raw text under the given source name,
// and appends it to the text pool the structured generators draw from.
func (s *Session) IngestText(ctx context.Context, text, sourceName string) (int, error) {
	chunks := chunker.Split(text, s.cfg.RAG.ChunkSize, s.cfg.RAG.ChunkOverlap)
	if len(chunks) == 0 {
		return 0, parser.ErrEmptyDocument
	}

	added, err := s.store.Add(ctx, chunks, sourceName)
	if err != nil {
		return 0, fmt.Errorf("failed to index %s: %w", sourceName, err)
	}
	log.Info().Str("source", sourceName).Int("chunks", added).Msg("Indexed document")

	s.sourceText.WriteString(text)
	s.sourceText.WriteString("\n\n")
	s.sources = append(s.sources, sourceName)
	return added, nil
}

// Chat answers a question with retrieval context and records both turns
// in the history.
func (s *Session) Chat(ctx context.Context, question string) models.ChatResponse {
	resp := s.chat.Ask(ctx, question, s.history)
	s.history = append(s.history,
		models.ChatMessage{Role: models.RoleUser, Content: question},
		models.ChatMessage{Role: models.RoleAssistant, Content: resp.Content},
	)
	return resp
}

// GenerateQuiz builds a quiz from the pooled source text, or from topic
// when nothing has been ingested.
func (s *Session) GenerateQuiz(ctx context.Context, topic string, settings models.QuizSettings) ([]models.QuizQuestion, error) {
	questions, err := s.quiz.Generate(ctx, s.sourceText.String(), topic, settings)
	if err != nil {
		return nil, err
	}
	s.lastQuiz = questions
	return questions, nil
}

func (s *Session) GenerateFlashcards(ctx context.Context, topic string, numCards int) ([]models.Flashcard, error) {
	cards, err := s.flashcards.Generate(ctx, s.sourceText.String(), topic, numCards)
	if err != nil {
		return nil, err
	}
	s.lastCards = cards
	return cards, nil
}

func (s *Session) GenerateNotes(ctx context.Context, topic string, settings models.NoteSettings) (string, error) {
	notes, err := s.notes.Generate(ctx, s.sourceText.String(), topic, settings)
	if err != nil {
		return "", err
	}
	s.lastNotes = notes
	return notes, nil
}

// Reset clears the chat history, generated artifacts, pooled text and
// the vector store. Previously issued chunk ids are gone for good.
func (s *Session) Reset(ctx context.Context) error {
	s.history = nil
	s.sources = nil
	s.sourceText.Reset()
	s.lastQuiz = nil
	s.lastCards = nil
	s.lastNotes = ""
	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear vector store: %w", err)
	}
	log.Info().Msg("Session reset")
	return nil
}

func (s *Session) History() []models.ChatMessage { return s.history }
func (s *Session) Sources() []string             { return s.sources }
func (s *Session) Quiz() []models.QuizQuestion   { return s.lastQuiz }
func (s *Session) Flashcards() []models.Flashcard {
	return s.lastCards
}
func (s *Session) Notes() string { return s.lastNotes }
