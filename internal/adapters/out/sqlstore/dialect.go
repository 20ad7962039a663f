package sqlstore

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/lib/pq"
)

// Supported database drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

var metaKeyPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// dialect captures the SQL differences between the supported engines.
type dialect struct {
	name string
	// noLimit is the LIMIT value meaning "unbounded" when only OFFSET is set.
	noLimit   string
	forUpdate string
	schema    []string
}

var sqliteDialect = dialect{
	name:    DriverSQLite,
	noLimit: "-1",
	schema: []string{
		`CREATE TABLE IF NOT EXISTS nodes (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			parent_id TEXT NOT NULL DEFAULT '',
			kind TEXT NOT NULL,
			name TEXT NOT NULL,
			name_key TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			public INTEGER NOT NULL DEFAULT 0,
			creator TEXT NOT NULL DEFAULT '',
			meta TEXT NOT NULL DEFAULT '{}',
			unique_key TEXT,
			created_at INTEGER NOT NULL,
			updated_at INTEGER NOT NULL
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS nodes_parent_name ON nodes (parent_id, name_key)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS nodes_unique_key ON nodes (unique_key)`,
		`CREATE INDEX IF NOT EXISTS nodes_parent ON nodes (parent_id, kind)`,
		`CREATE TABLE IF NOT EXISTS files (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			item_id TEXT NOT NULL,
			name TEXT NOT NULL,
			blob_key TEXT NOT NULL,
			size INTEGER NOT NULL DEFAULT 0,
			sha512 TEXT NOT NULL DEFAULT '',
			mime_type TEXT NOT NULL DEFAULT '',
			created_at INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS files_item ON files (item_id)`,
	},
}

var postgresDialect = dialect{
	name:      DriverPostgres,
	noLimit:   "ALL",
	forUpdate: " FOR UPDATE",
	schema: []string{
		`CREATE TABLE IF NOT EXISTS nodes (
			seq BIGSERIAL PRIMARY KEY,
			id TEXT NOT NULL UNIQUE,
			parent_id TEXT NOT NULL DEFAULT '',
			kind TEXT NOT NULL,
			name TEXT NOT NULL,
			name_key TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			public BOOLEAN NOT NULL DEFAULT FALSE,
			creator TEXT NOT NULL DEFAULT '',
			meta JSONB NOT NULL DEFAULT '{}',
			unique_key TEXT,
			created_at BIGINT NOT NULL,
			updated_at BIGINT NOT NULL
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS nodes_parent_name ON nodes (parent_id, name_key)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS nodes_unique_key ON nodes (unique_key)`,
		`CREATE INDEX IF NOT EXISTS nodes_parent ON nodes (parent_id, kind)`,
		`CREATE TABLE IF NOT EXISTS files (
			seq BIGSERIAL PRIMARY KEY,
			id TEXT NOT NULL UNIQUE,
			item_id TEXT NOT NULL,
			name TEXT NOT NULL,
			blob_key TEXT NOT NULL,
			size BIGINT NOT NULL DEFAULT 0,
			sha512 TEXT NOT NULL DEFAULT '',
			mime_type TEXT NOT NULL DEFAULT '',
			created_at BIGINT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS files_item ON files (item_id)`,
	},
}

func dialectFor(driver string) (dialect, error) {
	switch driver {
	case DriverSQLite:
		return sqliteDialect, nil
	case DriverPostgres:
		return postgresDialect, nil
	default:
		return dialect{}, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// placeholder returns the bind marker for the n-th (1-based) argument.
func (d dialect) placeholder(n int) string {
	if d.name == DriverPostgres {
		return fmt.Sprintf("$%d", n)
	}
	return "?"
}

// jsonParam wraps a bind marker holding encoded metadata.
func (d dialect) jsonParam(ph string) string {
	if d.name == DriverPostgres {
		return ph + "::jsonb"
	}
	return ph
}

// metaText selects a top-level metadata key as text.
func (d dialect) metaText(key string) (string, error) {
	if !metaKeyPattern.MatchString(key) {
		return "", fmt.Errorf("invalid metadata key %q", key)
	}
	if d.name == DriverPostgres {
		return "meta->>'" + key + "'", nil
	}
	return "json_extract(meta, '$." + key + "')", nil
}

func (d dialect) isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// query accumulates bind arguments and WHERE clauses for one statement.
type query struct {
	d     dialect
	args  []any
	where []string
}

func (q *query) arg(v any) string {
	q.args = append(q.args, v)
	return q.d.placeholder(len(q.args))
}

func (q *query) cond(format string, values ...any) {
	phs := make([]any, len(values))
	for i, v := range values {
		phs[i] = q.arg(v)
	}
	q.where = append(q.where, fmt.Sprintf(format, phs...))
}

func (q *query) whereClause() string {
	if len(q.where) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(q.where, " AND ")
}
