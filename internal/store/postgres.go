package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"edugen/internal/config"
	"edugen/internal/llm"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/extra/bundebug"
)

// Document is one stored chunk row. The embedding column relies on the
// pgvector extension.
type Document struct {
	bun.BaseModel `bun:"table:documents,alias:d"`
	ID            int64     `bun:"id,pk,autoincrement"`
	ChunkID       string    `bun:"chunk_id,notnull"`
	Content       string    `bun:"content,notnull"`
	Source        string    `bun:"source,notnull"`
	Embedding     []float32 `bun:"embedding,notnull,type:vector(768)"`
}

// Postgres is the durable Store backend over bun + pgvector.
type Postgres struct {
	mu       sync.RWMutex
	db       *bun.DB
	embedder llm.Embedder
}

// NewPostgres connects and ensures the documents table exists.
func NewPostgres(ctx context.Context, cfg *config.StoreConfig, embedder llm.Embedder) (*Postgres, error) {
	sqldb := sql.OpenDB(pgdriver.NewConnector(
		pgdriver.WithDSN(cfg.DSN),
		pgdriver.WithPassword(cfg.Password),
	))
	db := bun.NewDB(sqldb, pgdialect.New())
	if cfg.Debug {
		db.AddQueryHook(bundebug.NewQueryHook(bundebug.WithVerbose(true)))
	}

	if _, err := db.NewCreateTable().Model((*Document)(nil)).IfNotExists().Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize documents table: %w", err)
	}
	return &Postgres{db: db, embedder: embedder}, nil
}

func (s *Postgres) Add(ctx context.Context, chunks []string, source string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var docs []Document
	for _, chunk := range chunks {
		embedding, err := s.embedder.Embed(ctx, chunk)
		if err != nil {
			log.Warn().Err(err).Str("source", source).Msg("Skipping chunk, embedding failed")
			continue
		}
		docs = append(docs, Document{
			ChunkID:   uuid.NewString(),
			Content:   chunk,
			Source:    source,
			Embedding: embedding,
		})
	}
	if len(docs) == 0 {
		return 0, nil
	}

	if _, err := s.db.NewInsert().Model(&docs).Exec(ctx); err != nil {
		return 0, fmt.Errorf("failed to store documents: %w", err)
	}
	return len(docs), nil
}

func (s *Postgres) Query(ctx context.Context, text string, topK int) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if topK <= 0 {
		return nil, nil
	}

	embedding, err := s.embedder.Embed(ctx, text)
	if err != nil {
		log.Warn().Err(err).Msg("Query embedding failed")
		return nil, nil
	}

	var docs []Document
	err = s.db.NewSelect().
		Model(&docs).
		Column("content").
		OrderExpr("embedding <-> ?", embedding).
		Limit(topK).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query documents: %w", err)
	}

	texts := make([]string, 0, len(docs))
	for _, doc := range docs {
		texts = append(texts, doc.Content)
	}
	return texts, nil
}

func (s *Postgres) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.db.NewTruncateTable().Model((*Document)(nil)).Exec(ctx); err != nil {
		return fmt.Errorf("failed to clear documents: %w", err)
	}
	return nil
}

func (s *Postgres) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.db.NewSelect().Model((*Document)(nil)).Count(ctx)
}

// Close releases the underlying connection pool.
func (s *Postgres) Close() error {
	return s.db.Close()
}
