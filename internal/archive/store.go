// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package archive mirrors lineage entities into a SQLite database for
// search, lineage queries and export. The JSON history file stays the
// source of truth; the archive is rebuilt from it by Ingest.
package archive

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/pdiddy/idea-engine/pkg/types"
)

const dbFile = "ideas.db"

// Store manages the archive database.
type Store struct {
	db         *sql.DB
	dir        string
	maxResults int
	log        *zap.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) { s.log = l }
}

// NewStore opens or creates the archive at cfg.ArchiveDir/ideas.db and
// creates the schema if it does not exist.
func NewStore(cfg types.ArchiveConfig, opts ...Option) (*Store, error) {
	if cfg.ArchiveDir == "" {
		return nil, fmt.Errorf("archive directory is not set")
	}
	if err := os.MkdirAll(cfg.ArchiveDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating archive directory: %w", err)
	}

	dbPath := filepath.Join(cfg.ArchiveDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{
		db:         db,
		dir:        cfg.ArchiveDir,
		maxResults: maxResults,
		log:        zap.NewNop(),
	}
	for _, o := range opts {
		o(s)
	}

	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Dir returns the archive directory.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS entities (
			id INTEGER PRIMARY KEY,
			title TEXT NOT NULL,
			prompt TEXT NOT NULL,
			parent_id INTEGER REFERENCES entities(id),
			derivation_kind TEXT NOT NULL,
			direction TEXT NOT NULL DEFAULT '',
			created_at TEXT NOT NULL,
			doc TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS attributes (
			entity_id INTEGER NOT NULL REFERENCES entities(id) ON DELETE CASCADE,
			category TEXT NOT NULL,
			value TEXT NOT NULL,
			PRIMARY KEY (entity_id, category)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_entities_parent ON entities(parent_id)`,
		`CREATE INDEX IF NOT EXISTS idx_entities_kind ON entities(derivation_kind)`,
		`CREATE INDEX IF NOT EXISTS idx_attributes_value ON attributes(category, value)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// IngestSummary holds counts from an ingest run.
type IngestSummary struct {
	Indexed int
	Updated int
	Skipped int
	Removed int
}

// Total returns the number of entities processed. Removed rows are not
// counted.
func (s IngestSummary) Total() int {
	return s.Indexed + s.Updated + s.Skipped
}

// Ingest mirrors a full history in one transaction. Entities must be the
// whole history in id order, so that every parent is written before its
// children. Rows whose stored document is unchanged are skipped and rows
// with ids past the end of the history are removed. On any change it
// writes export.yaml.
func (s *Store) Ingest(ctx context.Context, entities []types.Entity, w io.Writer) (IngestSummary, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return IngestSummary{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var summary IngestSummary
	res, err := tx.ExecContext(ctx, `DELETE FROM entities WHERE id >= ?`, len(entities))
	if err != nil {
		return IngestSummary{}, fmt.Errorf("removing stale entities: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n > 0 {
		summary.Removed = int(n)
		fmt.Fprintf(w, "removed  %d stale\n", n)
	}
	for _, e := range entities {
		select {
		case <-ctx.Done():
			return IngestSummary{}, ctx.Err()
		default:
		}

		doc, err := json.Marshal(e)
		if err != nil {
			return IngestSummary{}, fmt.Errorf("marshaling entity %d: %w", e.ID, err)
		}

		var stored string
		err = tx.QueryRowContext(ctx, `SELECT doc FROM entities WHERE id = ?`, e.ID).Scan(&stored)
		switch {
		case err == nil && stored == string(doc):
			fmt.Fprintf(w, "skipped  %d\n", e.ID)
			summary.Skipped++
			continue
		case err != nil && err != sql.ErrNoRows:
			return IngestSummary{}, fmt.Errorf("looking up entity %d: %w", e.ID, err)
		}
		isUpdate := err == nil

		if err := upsertEntity(ctx, tx, e, string(doc)); err != nil {
			return IngestSummary{}, err
		}
		if isUpdate {
			fmt.Fprintf(w, "updated  %d %s\n", e.ID, e.Title)
			summary.Updated++
		} else {
			fmt.Fprintf(w, "indexing %d %s\n", e.ID, e.Title)
			summary.Indexed++
		}
	}

	if err := tx.Commit(); err != nil {
		return IngestSummary{}, fmt.Errorf("committing ingest: %w", err)
	}

	fmt.Fprintf(w, "\nindexed: %d, updated: %d, skipped: %d, removed: %d\n",
		summary.Indexed, summary.Updated, summary.Skipped, summary.Removed)
	s.log.Debug("archive ingest",
		zap.Int("indexed", summary.Indexed),
		zap.Int("updated", summary.Updated),
		zap.Int("skipped", summary.Skipped),
		zap.Int("removed", summary.Removed))

	if summary.Indexed > 0 || summary.Updated > 0 || summary.Removed > 0 {
		if _, err := s.ExportYAML(ctx, QueryOptions{}); err != nil {
			fmt.Fprintf(w, "warning: export.yaml write failed: %v\n", err)
		}
	}

	return summary, nil
}

func upsertEntity(ctx context.Context, tx *sql.Tx, e types.Entity, doc string) error {
	var parent sql.NullInt64
	if e.ParentID != nil {
		parent = sql.NullInt64{Int64: int64(*e.ParentID), Valid: true}
	}

	_, err := tx.ExecContext(ctx,
		`INSERT INTO entities (id, title, prompt, parent_id, derivation_kind, direction, created_at, doc)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			title=excluded.title, prompt=excluded.prompt, parent_id=excluded.parent_id,
			derivation_kind=excluded.derivation_kind, direction=excluded.direction,
			created_at=excluded.created_at, doc=excluded.doc`,
		e.ID, e.Title, e.Prompt, parent, string(e.DerivationKind), string(e.Direction),
		e.CreatedAt.UTC().Format(time.RFC3339Nano), doc,
	)
	if err != nil {
		return fmt.Errorf("upserting entity %d: %w", e.ID, err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM attributes WHERE entity_id = ?`, e.ID); err != nil {
		return fmt.Errorf("clearing attributes of %d: %w", e.ID, err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO attributes (entity_id, category, value) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, k := range e.Attributes.Keys() {
		if _, err := stmt.ExecContext(ctx, e.ID, k, e.Attributes[k]); err != nil {
			return fmt.Errorf("inserting attribute %s of %d: %w", k, e.ID, err)
		}
	}
	return nil
}
