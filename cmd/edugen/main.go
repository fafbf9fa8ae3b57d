package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"edugen/internal/config"
	"edugen/internal/generator"
	"edugen/internal/helper"
	"edugen/internal/llm"
	"edugen/internal/models"
	"edugen/internal/session"
	"edugen/internal/store"
)

const defaultConfigPath = "./configs/config.yaml"

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).With().Caller().Logger()

	configPath := flag.String("config", defaultConfigPath, "Path to the config file")
	filePath := flag.String("file", "", "Path to a document to ingest (pdf, docx, pptx, xlsx, txt, md)")
	videoURL := flag.String("url", "", "YouTube URL to ingest the transcript of")
	query := flag.String("query", "", "Question to answer over the indexed documents")
	quiz := flag.Bool("quiz", false, "Generate a quiz")
	cards := flag.Int("cards", 0, "Generate this many flashcards")
	notes := flag.Bool("notes", false, "Generate study notes")
	topic := flag.String("topic", "", "Topic to generate from when no documents are indexed")
	difficulty := flag.String("difficulty", "Medium", "Quiz difficulty: Easy, Medium or Hard")
	numQuestions := flag.Int("questions", 15, "Number of quiz questions to request")
	style := flag.String("style", "Detailed", "Notes style: Detailed, Summary, Bullet Points or Cornell Notes")
	examples := flag.Bool("examples", true, "Include concrete examples in generated notes")
	asHTML := flag.Bool("html", false, "Render generated notes as HTML")
	reset := flag.Bool("reset", false, "Clear the vector store and exit")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found")
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Error loading config")
	}

	ctx := context.Background()
	sess := buildSession(ctx, cfg)

	if *reset {
		if err := sess.Reset(ctx); err != nil {
			log.Fatal().Err(err).Msg("Error resetting session")
		}
		log.Info().Msg("Vector store cleared")
		return
	}

	if *filePath != "" {
		added, err := sess.IngestFile(ctx, *filePath)
		if err != nil {
			log.Fatal().Err(err).Str("file", *filePath).Msg("Error ingesting document")
		}
		log.Info().Str("source", helper.FormatSourceName(*filePath)).Int("chunks", added).Msg("Document ready")
	}

	if *videoURL != "" {
		added, err := sess.IngestYouTube(ctx, *videoURL)
		if err != nil {
			log.Fatal().Err(err).Msg("Error ingesting transcript")
		}
		log.Info().Int("chunks", added).Msg("Transcript ready")
	}

	switch {
	case *query != "":
		runChat(ctx, sess, *query)
	case *quiz:
		runQuiz(ctx, sess, *topic, *difficulty, *numQuestions)
	case *cards > 0:
		runFlashcards(ctx, sess, *topic, *cards)
	case *notes:
		runNotes(ctx, sess, *topic, *style, *examples, *asHTML)
	case *filePath == "" && *videoURL == "":
		flag.Usage()
	}
}

func buildSession(ctx context.Context, cfg *config.Config) *session.Session {
	embedder, err := llm.NewEmbedder(&cfg.EmbedLLM)
	if err != nil {
		log.Fatal().Err(err).Msg("Error initializing embedder")
	}
	gen, err := llm.NewGenerator(&cfg.LLM)
	if err != nil {
		log.Fatal().Err(err).Msg("Error initializing generator")
	}

	var vs store.Store
	switch cfg.Store.Backend {
	case "postgres":
		vs, err = store.NewPostgres(ctx, &cfg.Store, embedder)
	default:
		if !cfg.Store.InMemory {
			if err := helper.CreateFolder(cfg.Store.Path); err != nil {
				log.Fatal().Err(err).Msg("Error creating store folder")
			}
		}
		vs, err = store.NewChromem(&cfg.Store, embedder)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("Error initializing vector store")
	}

	return session.New(cfg, vs, gen)
}

func runChat(ctx context.Context, sess *session.Session, question string) {
	resp := sess.Chat(ctx, question)

	log.Info().Msg("Query:")
	fmt.Printf("%s\n\n", resp.Query)
	if resp.Source != "" {
		log.Info().Msg("Context:")
		fmt.Printf("%s\n\n", resp.Source)
	}
	log.Info().Msg("Answer:")
	fmt.Printf("%s\n\n", resp.Content)
}

func runQuiz(ctx context.Context, sess *session.Session, topic, difficulty string, numQuestions int) {
	settings := models.QuizSettings{
		Difficulty:   models.Difficulty(difficulty),
		NumQuestions: numQuestions,
		Types:        []string{models.QuestionTypeMultipleChoice, models.QuestionTypeTrueFalse},
	}
	questions, err := sess.GenerateQuiz(ctx, topic, settings)
	if err != nil {
		log.Fatal().Err(err).Msg("Error generating quiz")
	}
	if len(questions) == 0 {
		log.Warn().Msg("No questions generated, try again")
		return
	}
	helper.PrettyPrint(questions)
}

func runFlashcards(ctx context.Context, sess *session.Session, topic string, numCards int) {
	flashcards, err := sess.GenerateFlashcards(ctx, topic, numCards)
	if err != nil {
		log.Fatal().Err(err).Msg("Error generating flashcards")
	}
	if len(flashcards) == 0 {
		log.Warn().Msg("No flashcards generated, try again")
		return
	}
	helper.PrettyPrint(flashcards)
}

func runNotes(ctx context.Context, sess *session.Session, topic, style string, examples, asHTML bool) {
	settings := models.NoteSettings{Style: models.NoteStyle(style), IncludeExamples: examples}
	md, err := sess.GenerateNotes(ctx, topic, settings)
	if err != nil {
		log.Fatal().Err(err).Msg("Error generating notes")
	}

	if asHTML {
		html, err := generator.RenderHTML(md)
		if err != nil {
			log.Fatal().Err(err).Msg("Error rendering notes")
		}
		fmt.Println(html)
		return
	}
	fmt.Println(md)
}
