// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package archive

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pdiddy/idea-engine/internal/lineage"
	"github.com/pdiddy/idea-engine/pkg/types"
)

// QueryOptions holds parameters for archive queries.
type QueryOptions struct {
	// Query is matched as a case-insensitive substring of title or prompt.
	Query string

	// Kind filters by derivation kind.
	Kind types.DerivationKind

	// Direction filters evolutions by direction.
	Direction types.Direction

	// Attribute and Value filter by attribute. Either may be empty: an
	// attribute alone matches any value, a value alone matches any
	// attribute.
	Attribute string
	Value     string

	// ParentID restricts results to the children of one entity.
	ParentID *int

	// MaxResults limits result count. Zero uses the store default.
	MaxResults int
}

// IsEmpty reports whether the query has no search terms or filters.
func (q QueryOptions) IsEmpty() bool {
	return q.Query == "" && q.Kind == "" && q.Direction == "" &&
		q.Attribute == "" && q.Value == "" && q.ParentID == nil
}

// Retrieve returns archived entities matching opts in id order.
func (s *Store) Retrieve(ctx context.Context, opts QueryOptions) ([]types.Entity, error) {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	var (
		qb   strings.Builder
		args []any
	)
	qb.WriteString(`SELECT e.doc FROM entities e WHERE 1=1`)

	if opts.Query != "" {
		like := "%" + escapeLike(strings.ToLower(opts.Query)) + "%"
		qb.WriteString(` AND (lower(e.title) LIKE ? ESCAPE '\' OR lower(e.prompt) LIKE ? ESCAPE '\')`)
		args = append(args, like, like)
	}

	if opts.Kind != "" {
		qb.WriteString(` AND e.derivation_kind = ?`)
		args = append(args, string(opts.Kind))
	}

	if opts.Direction != "" {
		qb.WriteString(` AND e.direction = ?`)
		args = append(args, string(opts.Direction))
	}

	if opts.ParentID != nil {
		qb.WriteString(` AND e.parent_id = ?`)
		args = append(args, *opts.ParentID)
	}

	switch {
	case opts.Attribute != "" && opts.Value != "":
		qb.WriteString(` AND EXISTS (SELECT 1 FROM attributes a WHERE a.entity_id = e.id AND a.category = ? AND a.value = ?)`)
		args = append(args, opts.Attribute, opts.Value)
	case opts.Attribute != "":
		qb.WriteString(` AND EXISTS (SELECT 1 FROM attributes a WHERE a.entity_id = e.id AND a.category = ?)`)
		args = append(args, opts.Attribute)
	case opts.Value != "":
		qb.WriteString(` AND EXISTS (SELECT 1 FROM attributes a WHERE a.entity_id = e.id AND a.value = ?)`)
		args = append(args, opts.Value)
	}

	qb.WriteString(` ORDER BY e.id LIMIT ?`)
	args = append(args, maxResults)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying archive: %w", err)
	}
	defer rows.Close()
	return scanEntities(rows)
}

// Get returns one archived entity.
func (s *Store) Get(ctx context.Context, id int) (types.Entity, error) {
	var doc string
	err := s.db.QueryRowContext(ctx, `SELECT doc FROM entities WHERE id = ?`, id).Scan(&doc)
	if err == sql.ErrNoRows {
		return types.Entity{}, &lineage.NotFoundError{ID: id}
	}
	if err != nil {
		return types.Entity{}, fmt.Errorf("looking up entity %d: %w", id, err)
	}
	var e types.Entity
	if err := json.Unmarshal([]byte(doc), &e); err != nil {
		return types.Entity{}, fmt.Errorf("decoding entity %d: %w", id, err)
	}
	return e, nil
}

// Ancestry returns the chain from the root ancestor down to id.
func (s *Store) Ancestry(ctx context.Context, id int) ([]types.Entity, error) {
	rows, err := s.db.QueryContext(ctx,
		`WITH RECURSIVE chain(id, depth) AS (
			SELECT id, 0 FROM entities WHERE id = ?
			UNION ALL
			SELECT e.parent_id, c.depth + 1
			FROM entities e JOIN chain c ON e.id = c.id
			WHERE e.parent_id IS NOT NULL
		)
		SELECT e.doc FROM chain c JOIN entities e ON e.id = c.id
		ORDER BY c.depth DESC`, id)
	if err != nil {
		return nil, fmt.Errorf("querying ancestry of %d: %w", id, err)
	}
	defer rows.Close()

	chain, err := scanEntities(rows)
	if err != nil {
		return nil, err
	}
	if len(chain) == 0 {
		return nil, &lineage.NotFoundError{ID: id}
	}
	return chain, nil
}

// Count returns the number of archived entities.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM entities`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting entities: %w", err)
	}
	return n, nil
}

func scanEntities(rows *sql.Rows) ([]types.Entity, error) {
	var out []types.Entity
	for rows.Next() {
		var doc string
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		var e types.Entity
		if err := json.Unmarshal([]byte(doc), &e); err != nil {
			return nil, fmt.Errorf("decoding archived entity: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
