package store

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"edugen/internal/config"
	"edugen/internal/llm"

	"github.com/google/uuid"
	"github.com/philippgille/chromem-go"
	"github.com/rs/zerolog/log"
)

const compress = false

// Chromem is the embedded vector store. Ids are fresh uuids on every
// Add, so no id is ever reused after a Clear.
type Chromem struct {
	mu         sync.RWMutex
	db         *chromem.DB
	collection *chromem.Collection
	name       string
	embedder   llm.Embedder
}

// NewChromem opens (or creates) the collection. A persistent database
// survives process restarts; in-memory lives for the process only.
func NewChromem(cfg *config.StoreConfig, embedder llm.Embedder) (*Chromem, error) {
	var db *chromem.DB
	var err error
	if cfg.InMemory {
		db = chromem.NewDB()
	} else {
		db, err = chromem.NewPersistentDB(cfg.Path, compress)
		if err != nil {
			return nil, fmt.Errorf("failed to create database: %w", err)
		}
	}

	collection, err := db.GetOrCreateCollection(cfg.Collection, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create/get collection: %w", err)
	}

	return &Chromem{
		db:         db,
		collection: collection,
		name:       cfg.Collection,
		embedder:   embedder,
	}, nil
}

// Add embeds each chunk and stores it with a fresh uuid and the source
// name as metadata. Chunks whose embedding fails are dropped, not
// fatal; the returned count is the number actually stored.
func (s *Chromem) Add(ctx context.Context, chunks []string, source string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var docs []chromem.Document
	for _, chunk := range chunks {
		embedding, err := s.embedder.Embed(ctx, chunk)
		if err != nil {
			log.Warn().Err(err).Str("source", source).Msg("Skipping chunk, embedding failed")
			continue
		}
		docs = append(docs, chromem.Document{
			ID:        uuid.NewString(),
			Content:   chunk,
			Metadata:  map[string]string{"source": source},
			Embedding: embedding,
		})
	}
	if len(docs) == 0 {
		return 0, nil
	}

	if err := s.collection.AddDocuments(ctx, docs, runtime.NumCPU()); err != nil {
		return 0, fmt.Errorf("failed to add documents: %w", err)
	}
	return len(docs), nil
}

// Query returns up to min(topK, Count) chunk texts ranked by cosine
// similarity. An empty collection or a failed query embedding yields an
// empty result, not an error.
func (s *Chromem) Query(ctx context.Context, text string, topK int) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := s.collection.Count()
	if count == 0 || topK <= 0 {
		return nil, nil
	}
	if topK > count {
		topK = count
	}

	embedding, err := s.embedder.Embed(ctx, text)
	if err != nil {
		log.Warn().Err(err).Msg("Query embedding failed")
		return nil, nil
	}

	results, err := s.collection.QueryWithOptions(ctx, chromem.QueryOptions{
		QueryEmbedding: embedding,
		NResults:       topK,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query by similarity: %w", err)
	}

	texts := make([]string, 0, len(results))
	for _, r := range results {
		texts = append(texts, r.Content)
	}
	return texts, nil
}

// Clear drops and recreates the collection.
func (s *Chromem) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.db.DeleteCollection(s.name); err != nil {
		return fmt.Errorf("failed to drop collection: %w", err)
	}
	collection, err := s.db.GetOrCreateCollection(s.name, nil, nil)
	if err != nil {
		return fmt.Errorf("failed to recreate collection: %w", err)
	}
	s.collection = collection
	return nil
}

func (s *Chromem) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collection.Count(), nil
}
