package sqlstore

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/bnema/pkgvault/internal/domain"
)

// AttachFile records a file under an item.
func (s *Store) AttachFile(ctx context.Context, itemID string, file domain.File) (*domain.File, error) {
	item, err := s.LoadNode(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if !item.Kind.IsItem() {
		return nil, fmt.Errorf("%w: node %s is not an item", domain.ErrValidation, itemID)
	}

	if file.ID == "" {
		file.ID = uuid.NewString()
	}
	file.ItemID = itemID
	file.Created = s.now().UTC()

	q := &query{d: s.d}
	stmt := fmt.Sprintf(
		"INSERT INTO files (id, item_id, name, blob_key, size, sha512, mime_type, created_at) VALUES (%s, %s, %s, %s, %s, %s, %s, %s)",
		q.arg(file.ID), q.arg(itemID), q.arg(file.Name), q.arg(file.BlobKey), q.arg(file.Size),
		q.arg(file.SHA512), q.arg(file.MimeType), q.arg(file.Created.UnixNano()),
	)
	if _, err := s.db.ExecContext(ctx, stmt, q.args...); err != nil {
		return nil, fmt.Errorf("failed to attach file: %w", err)
	}
	return &file, nil
}

// LoadFile loads a file by id.
func (s *Store) LoadFile(ctx context.Context, id string) (*domain.File, error) {
	q := &query{d: s.d}
	q.cond("id = %s", id)
	f, err := scanFile(s.db.QueryRowContext(ctx, "SELECT "+fileColumns+" FROM files"+q.whereClause(), q.args...))
	if err != nil {
		return nil, notFound(err, domain.ErrFileNotFound, id)
	}
	return f, nil
}

// ListFiles lists the files of an item, oldest first.
func (s *Store) ListFiles(ctx context.Context, itemID string) ([]domain.File, error) {
	q := &query{d: s.d}
	q.cond("item_id = %s", itemID)
	rows, err := s.db.QueryContext(ctx, "SELECT "+fileColumns+" FROM files"+q.whereClause()+" ORDER BY seq", q.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var files []domain.File
	for rows.Next() {
		f, err := scanFile(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan file: %w", err)
		}
		files = append(files, *f)
	}
	return files, rows.Err()
}

// RenameFile changes a file display name.
func (s *Store) RenameFile(ctx context.Context, id, name string) error {
	q := &query{d: s.d}
	stmt := fmt.Sprintf("UPDATE files SET name = %s", q.arg(name))
	q.cond("id = %s", id)
	res, err := s.db.ExecContext(ctx, stmt+q.whereClause(), q.args...)
	if err != nil {
		return fmt.Errorf("failed to rename file: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %s", domain.ErrFileNotFound, id)
	}
	return nil
}

// RemoveFile deletes a file record and returns it.
func (s *Store) RemoveFile(ctx context.Context, id string) (*domain.File, error) {
	f, err := s.LoadFile(ctx, id)
	if err != nil {
		return nil, err
	}
	q := &query{d: s.d}
	q.cond("id = %s", id)
	if _, err := s.db.ExecContext(ctx, "DELETE FROM files"+q.whereClause(), q.args...); err != nil {
		return nil, fmt.Errorf("failed to remove file: %w", err)
	}
	return f, nil
}
