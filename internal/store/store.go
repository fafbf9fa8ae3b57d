// Package store persists chunk embeddings and answers similarity
// queries. Two backends are available: an embedded chromem collection
// (optionally persisted on disk) and a pgvector table through bun.
package store

import "context"

// Store is the vector collection boundary. Add tolerates per-chunk
// embedding failures and reports how many chunks made it in. Query
// degrades to an empty slice when the collection is empty or the query
// embedding fails. Clear must be serialized against concurrent Add and
// Query by the implementation.
type Store interface {
	Add(ctx context.Context, chunks []string, source string) (int, error)
	Query(ctx context.Context, text string, topK int) ([]string, error)
	Clear(ctx context.Context) error
	Count(ctx context.Context) (int, error)
}
