// Package sqlstore implements the tree store on top of database/sql.
// SQLite (modernc.org/sqlite) is the embedded default, PostgreSQL (lib/pq)
// serves multi-instance deployments.
package sqlstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bnema/zerowrap"
	_ "modernc.org/sqlite"

	"github.com/bnema/pkgvault/internal/boundaries/out"
	"github.com/bnema/pkgvault/internal/domain"
)

// Ensure Store implements out.TreeStore.
var _ out.TreeStore = (*Store)(nil)

const nodeColumns = "id, parent_id, kind, name, description, public, creator, meta, created_at, updated_at"

const fileColumns = "id, item_id, name, blob_key, size, sha512, mime_type, created_at"

// Store is a TreeStore backed by a SQL database.
type Store struct {
	db  *sql.DB
	d   dialect
	log zerowrap.Logger
	now func() time.Time
}

// Open connects to the database, applies the schema and returns the store.
func Open(ctx context.Context, driver, dsn string, log zerowrap.Logger) (*Store, error) {
	d, err := dialectFor(driver)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", driver, err)
	}

	if driver == DriverSQLite {
		// One writer at a time; also keeps in-memory databases on a single connection.
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to %s database: %w", driver, err)
	}

	s := New(db, d, log)
	if driver == DriverSQLite {
		if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout = 5000"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to configure sqlite: %w", err)
		}
	}

	if err := s.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	log.Info().
		Str(zerowrap.FieldLayer, "adapter").
		Str(zerowrap.FieldAdapter, "sqlstore").
		Str("driver", driver).
		Msg("tree store initialized")

	return s, nil
}

// New wraps an existing connection. It does not apply the schema.
func New(db *sql.DB, d dialect, log zerowrap.Logger) *Store {
	return &Store{db: db, d: d, log: log, now: time.Now}
}

// NewWithDriver wraps an existing connection using the named driver dialect.
func NewWithDriver(db *sql.DB, driver string, log zerowrap.Logger) (*Store, error) {
	d, err := dialectFor(driver)
	if err != nil {
		return nil, err
	}
	return New(db, d, log), nil
}

// Migrate creates the schema if it does not exist.
func (s *Store) Migrate(ctx context.Context) error {
	for _, stmt := range s.d.schema {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to migrate schema: %w", err)
		}
	}
	return nil
}

// Ping verifies the database connection.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNode(row rowScanner) (*domain.Node, error) {
	var (
		n                domain.Node
		kind             string
		meta             []byte
		created, updated int64
	)
	if err := row.Scan(&n.ID, &n.ParentID, &kind, &n.Name, &n.Description, &n.Public, &n.Creator, &meta, &created, &updated); err != nil {
		return nil, err
	}
	n.Kind = domain.NodeKind(kind)
	m, err := decodeMeta(meta)
	if err != nil {
		return nil, fmt.Errorf("failed to decode metadata of node %s: %w", n.ID, err)
	}
	n.Meta = m
	n.Created = time.Unix(0, created).UTC()
	n.Updated = time.Unix(0, updated).UTC()
	return &n, nil
}

func scanFile(row rowScanner) (*domain.File, error) {
	var (
		f       domain.File
		created int64
	)
	if err := row.Scan(&f.ID, &f.ItemID, &f.Name, &f.BlobKey, &f.Size, &f.SHA512, &f.MimeType, &created); err != nil {
		return nil, err
	}
	f.Created = time.Unix(0, created).UTC()
	return &f, nil
}

func encodeMeta(meta domain.Metadata) (string, error) {
	if meta == nil {
		return "{}", nil
	}
	b, err := json.Marshal(meta)
	if err != nil {
		return "", fmt.Errorf("failed to encode metadata: %w", err)
	}
	return string(b), nil
}

func decodeMeta(raw []byte) (domain.Metadata, error) {
	meta := domain.Metadata{}
	if len(raw) == 0 {
		return meta, nil
	}
	if err := json.Unmarshal(raw, &meta); err != nil {
		return nil, err
	}
	if meta == nil {
		meta = domain.Metadata{}
	}
	return meta, nil
}

func notFound(err error, sentinel error, id string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %s", sentinel, id)
	}
	return err
}

func (s *Store) orderClause(p domain.Page) string {
	col := "seq"
	switch p.Sort {
	case domain.SortByName:
		col = "LOWER(name)"
	case domain.SortByCreated:
		col = "created_at"
	case domain.SortByUpdated:
		col = "updated_at"
	}
	dir := "ASC"
	if p.SortDir < 0 {
		dir = "DESC"
	}
	clause := " ORDER BY " + col + " " + dir
	if col != "seq" {
		clause += ", seq " + dir
	}
	return clause
}

func (s *Store) limitClause(p domain.Page) string {
	var b strings.Builder
	switch {
	case p.Limit > 0:
		fmt.Fprintf(&b, " LIMIT %d", p.Limit)
	case p.Offset > 0:
		b.WriteString(" LIMIT " + s.d.noLimit)
	}
	if p.Offset > 0 {
		fmt.Fprintf(&b, " OFFSET %d", p.Offset)
	}
	return b.String()
}

// withTx runs fn inside a transaction and commits when it returns nil.
func (s *Store) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
