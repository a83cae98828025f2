// Package vectorstore persists and retrieves embedded content chunks in
// PostgreSQL through pgvector. Ent cannot express the vector column or the
// distance operators, so this package speaks raw SQL against the shared
// connection pool.
package vectorstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pgvector/pgvector-go"

	"github.com/channeling-app/reportpipe/pkg/llm"
	"github.com/channeling-app/reportpipe/pkg/models"
)

// Embedder is the embedding surface the store depends on.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
}

var _ Embedder = (*llm.Client)(nil)

// Chunk is one piece of content to store, with optional metadata.
type Chunk struct {
	Content string
	Meta    map[string]any
}

// Result is one retrieved chunk. Similarity is cosine similarity in [0, 1]
// for normalized embeddings (1 minus the cosine distance).
type Result struct {
	SourceID   int
	Content    string
	ChunkIndex int
	Meta       map[string]any
	Similarity float64
}

// Store writes and searches content chunks.
type Store struct {
	db           *sql.DB
	embedder     Embedder
	chunkSize    int
	chunkOverlap int
}

// New creates a vector store. chunkSize and chunkOverlap are in characters
// and apply to SaveText's windowing.
func New(db *sql.DB, embedder Embedder, chunkSize, chunkOverlap int) *Store {
	return &Store{
		db:           db,
		embedder:     embedder,
		chunkSize:    chunkSize,
		chunkOverlap: chunkOverlap,
	}
}

// SaveText splits prose into overlapping character windows, embeds each
// window, and stores the chunks under the given source.
func (s *Store) SaveText(ctx context.Context, sourceType models.SourceType, sourceID int, text string, meta map[string]any) error {
	windows := s.windowText(text)
	if len(windows) == 0 {
		return nil
	}

	chunks := make([]Chunk, len(windows))
	for i, w := range windows {
		chunks[i] = Chunk{Content: w, Meta: meta}
	}
	return s.SaveChunks(ctx, sourceType, sourceID, chunks)
}

// SaveChunks embeds and stores pre-split chunks under the given source.
// Chunk order is preserved in chunk_index.
func (s *Store) SaveChunks(ctx context.Context, sourceType models.SourceType, sourceID int, chunks []Chunk) error {
	if len(chunks) == 0 {
		return nil
	}

	texts := make([]string, len(chunks))
	for i, c := range chunks {
		texts[i] = c.Content
	}

	vecs, err := s.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return fmt.Errorf("failed to embed %d chunks: %w", len(chunks), err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	const insert = `
		INSERT INTO content_chunks (source_type, source_id, content, chunk_index, embedding, meta, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())`

	for i, c := range chunks {
		var metaJSON []byte
		if c.Meta != nil {
			metaJSON, err = json.Marshal(c.Meta)
			if err != nil {
				return fmt.Errorf("failed to marshal chunk meta: %w", err)
			}
		}

		if _, err := tx.ExecContext(ctx, insert,
			string(sourceType), sourceID, c.Content, i, pgvector.NewVector(vecs[i]), metaJSON,
		); err != nil {
			return fmt.Errorf("failed to insert chunk %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit chunks: %w", err)
	}

	slog.Info("Saved content chunks",
		"source_type", sourceType,
		"source_id", sourceID,
		"chunks", len(chunks))
	return nil
}

// SearchSimilar embeds the query and returns the most similar chunks for a
// source type, best first. sourceID 0 searches across all sources of the type.
func (s *Store) SearchSimilar(ctx context.Context, query string, sourceType models.SourceType, sourceID, limit int) ([]Result, error) {
	vec, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}
	return s.SearchSimilarByEmbedding(ctx, vec, sourceType, sourceID, limit, nil)
}

// SearchSimilarByEmbedding returns the most similar chunks for a source
// type, optionally filtered to one source ID (0 means all) and by metadata
// key/value equality.
func (s *Store) SearchSimilarByEmbedding(ctx context.Context, embedding []float32, sourceType models.SourceType, sourceID, limit int, metaFilter map[string]string) ([]Result, error) {
	if limit <= 0 {
		limit = 5
	}

	var b strings.Builder
	b.WriteString(`
		SELECT source_id, content, chunk_index, meta, 1 - (embedding <=> $1) AS similarity
		FROM content_chunks
		WHERE source_type = $2`)

	args := []any{pgvector.NewVector(embedding), string(sourceType)}
	if sourceID != 0 {
		args = append(args, sourceID)
		fmt.Fprintf(&b, " AND source_id = $%d", len(args))
	}
	for k, v := range metaFilter {
		args = append(args, k, v)
		fmt.Fprintf(&b, " AND meta->>$%d = $%d", len(args)-1, len(args))
	}

	args = append(args, limit)
	fmt.Fprintf(&b, " ORDER BY embedding <=> $1 LIMIT $%d", len(args))

	rows, err := s.db.QueryContext(ctx, b.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("similarity search failed: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var (
			r        Result
			metaJSON sql.NullString
		)
		if err := rows.Scan(&r.SourceID, &r.Content, &r.ChunkIndex, &metaJSON, &r.Similarity); err != nil {
			return nil, fmt.Errorf("failed to scan search row: %w", err)
		}
		if metaJSON.Valid && metaJSON.String != "" {
			if err := json.Unmarshal([]byte(metaJSON.String), &r.Meta); err != nil {
				return nil, fmt.Errorf("failed to parse chunk meta: %w", err)
			}
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

// HasChunks reports whether any chunk of the given chunk type exists for a
// source ID, regardless of source type. Used as an idempotence gate before
// re-chunking a transcript.
func (s *Store) HasChunks(ctx context.Context, sourceID int, chunkType string) (bool, error) {
	const q = `
		SELECT EXISTS (
			SELECT 1 FROM content_chunks
			WHERE source_id = $1 AND meta->>'chunk_type' = $2
		)`

	var exists bool
	if err := s.db.QueryRowContext(ctx, q, sourceID, chunkType).Scan(&exists); err != nil {
		return false, fmt.Errorf("chunk existence check failed: %w", err)
	}
	return exists, nil
}

// windowText splits text into rune windows of chunkSize with chunkOverlap
// runes shared between consecutive windows. Whitespace-only windows are
// dropped.
func (s *Store) windowText(text string) []string {
	runes := []rune(text)
	if len(runes) == 0 {
		return nil
	}

	step := s.chunkSize - s.chunkOverlap
	if step < 1 {
		step = 1
	}

	var windows []string
	for start := 0; start < len(runes); start += step {
		end := start + s.chunkSize
		if end > len(runes) {
			end = len(runes)
		}
		if w := string(runes[start:end]); strings.TrimSpace(w) != "" {
			windows = append(windows, w)
		}
		if end == len(runes) {
			break
		}
	}
	return windows
}
