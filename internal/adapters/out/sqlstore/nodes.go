package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"

	"github.com/bnema/zerowrap"
	"github.com/google/uuid"

	"github.com/bnema/pkgvault/internal/domain"
)

func containerKinds() []any {
	return []any{string(domain.NodeCollection), string(domain.NodeFolder)}
}

func itemKinds() []any {
	return []any{string(domain.NodePackage), string(domain.NodeExtension)}
}

func (q *query) in(column string, values []any) {
	phs := make([]string, len(values))
	for i, v := range values {
		phs[i] = q.arg(v)
	}
	q.where = append(q.where, column+" IN ("+strings.Join(phs, ", ")+")")
}

// CreateContainer creates a collection (empty parentID) or folder.
func (s *Store) CreateContainer(ctx context.Context, parentID string, spec domain.ContainerSpec) (*domain.Node, error) {
	kind := spec.Kind
	if kind == "" {
		kind = domain.NodeFolder
	}
	if kind.IsItem() {
		return nil, fmt.Errorf("%w: %s is not a container kind", domain.ErrValidation, kind)
	}
	if parentID != "" {
		if _, err := s.LoadNode(ctx, parentID); err != nil {
			return nil, err
		}
	}

	meta, err := encodeMeta(spec.Meta)
	if err != nil {
		return nil, err
	}

	now := s.now().UnixNano()
	node := &domain.Node{
		ID:          uuid.NewString(),
		ParentID:    parentID,
		Kind:        kind,
		Name:        spec.Name,
		Description: spec.Description,
		Public:      spec.Public,
		Creator:     spec.Creator,
		Meta:        spec.Meta,
	}
	if node.Meta == nil {
		node.Meta = domain.Metadata{}
	}

	q := &query{d: s.d}
	stmt := fmt.Sprintf(
		"INSERT INTO nodes (id, parent_id, kind, name, name_key, description, public, creator, meta, created_at, updated_at) VALUES (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)",
		q.arg(node.ID), q.arg(parentID), q.arg(string(kind)), q.arg(spec.Name), q.arg(nameKey(spec)),
		q.arg(spec.Description), q.arg(spec.Public), q.arg(spec.Creator), s.d.jsonParam(q.arg(meta)), q.arg(now), q.arg(now),
	)
	if _, err := s.db.ExecContext(ctx, stmt, q.args...); err != nil {
		if s.d.isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: %s %q", domain.ErrAlreadyExists, kind, spec.Name)
		}
		return nil, fmt.Errorf("failed to create %s: %w", kind, err)
	}

	s.log.Debug().
		Str(zerowrap.FieldLayer, "adapter").
		Str(zerowrap.FieldAdapter, "sqlstore").
		Str(zerowrap.FieldEntityID, node.ID).
		Str("name", spec.Name).
		Msg("container created")

	return s.LoadNode(ctx, node.ID)
}

// nameKey is the value the sibling uniqueness index compares. Exact keys
// start with a separator no node name may contain, so they never collide
// with folded ones.
func nameKey(spec domain.ContainerSpec) string {
	if spec.ExactName {
		return "/" + spec.Name
	}
	return strings.ToLower(spec.Name)
}

// LoadNode loads any node by id.
func (s *Store) LoadNode(ctx context.Context, id string) (*domain.Node, error) {
	q := &query{d: s.d}
	q.cond("id = %s", id)
	row := s.db.QueryRowContext(ctx, "SELECT "+nodeColumns+" FROM nodes"+q.whereClause(), q.args...)
	n, err := scanNode(row)
	if err != nil {
		return nil, notFound(err, domain.ErrNodeNotFound, id)
	}
	return n, nil
}

// FindCollection loads a collection by name.
func (s *Store) FindCollection(ctx context.Context, name string) (*domain.Node, error) {
	q := &query{d: s.d}
	q.cond("parent_id = %s", "")
	q.cond("kind = %s", string(domain.NodeCollection))
	q.cond("name_key = %s", strings.ToLower(name))
	row := s.db.QueryRowContext(ctx, "SELECT "+nodeColumns+" FROM nodes"+q.whereClause(), q.args...)
	n, err := scanNode(row)
	if err != nil {
		return nil, notFound(err, domain.ErrCollectionNotFound, name)
	}
	return n, nil
}

// ListChildContainers lists the container children of parentID.
func (s *Store) ListChildContainers(ctx context.Context, parentID string, lq domain.ListQuery) ([]*domain.Node, error) {
	q := &query{d: s.d}
	q.cond("parent_id = %s", parentID)
	q.in("kind", containerKinds())
	if lq.Name != "" {
		q.cond("name_key = %s", strings.ToLower(lq.Name))
	}
	if lq.ExcludeName != "" {
		q.cond("name_key <> %s", strings.ToLower(lq.ExcludeName))
	}
	if err := s.applyCommonFilters(q, lq.Text, lq.MetaEquals); err != nil {
		return nil, err
	}
	return s.queryNodes(ctx, "SELECT "+nodeColumns+" FROM nodes"+q.whereClause()+s.orderClause(lq.Page)+s.limitClause(lq.Page), q.args)
}

// FindItems lists artifact items matching iq.
func (s *Store) FindItems(ctx context.Context, iq domain.ItemQuery) ([]*domain.Node, error) {
	q := &query{d: s.d}
	if iq.Kind != "" {
		q.cond("kind = %s", string(iq.Kind))
	} else {
		q.in("kind", itemKinds())
	}
	if iq.ParentID != "" {
		q.cond("parent_id = %s", iq.ParentID)
	}
	if iq.ID != "" {
		q.cond("id = %s", iq.ID)
	}
	if iq.ExcludeID != "" {
		q.cond("id <> %s", iq.ExcludeID)
	}
	if iq.Name != "" {
		q.cond("LOWER(name) = %s", strings.ToLower(iq.Name))
	}
	if err := s.applyCommonFilters(q, iq.Text, iq.MetaEquals); err != nil {
		return nil, err
	}
	return s.queryNodes(ctx, "SELECT "+nodeColumns+" FROM nodes"+q.whereClause()+s.orderClause(iq.Page)+s.limitClause(iq.Page), q.args)
}

func (s *Store) applyCommonFilters(q *query, text string, metaEquals map[string]string) error {
	if text != "" {
		pattern := "%" + strings.ToLower(text) + "%"
		q.cond("(LOWER(name) LIKE %s OR LOWER(description) LIKE %s)", pattern, pattern)
	}
	keys := make([]string, 0, len(metaEquals))
	for key := range metaEquals {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		expr, err := s.d.metaText(key)
		if err != nil {
			return fmt.Errorf("%w: %v", domain.ErrValidation, err)
		}
		q.cond(expr+" = %s", metaEquals[key])
	}
	return nil
}

func (s *Store) queryNodes(ctx context.Context, stmt string, args []any) ([]*domain.Node, error) {
	rows, err := s.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query nodes: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var nodes []*domain.Node
	for rows.Next() {
		n, err := scanNode(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan node: %w", err)
		}
		nodes = append(nodes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate nodes: %w", err)
	}
	return nodes, nil
}

// SetMetadata merges meta into the node metadata. A nil value removes the key.
func (s *Store) SetMetadata(ctx context.Context, id string, meta domain.Metadata) (*domain.Node, error) {
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		current, err := s.lockMeta(ctx, tx, id)
		if err != nil {
			return err
		}
		for k, v := range meta {
			if v == nil {
				delete(current, k)
				continue
			}
			current[k] = v
		}
		return s.writeMeta(ctx, tx, id, current)
	})
	if err != nil {
		return nil, err
	}
	return s.LoadNode(ctx, id)
}

// IncrementMetadataField atomically adds amount to the numeric field at path.
// The read and the write happen in one transaction holding the row.
func (s *Store) IncrementMetadataField(ctx context.Context, id string, path []string, amount int64) (*domain.Node, error) {
	if len(path) == 0 {
		return nil, fmt.Errorf("%w: empty metadata path", domain.ErrValidation)
	}

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		current, err := s.lockMeta(ctx, tx, id)
		if err != nil {
			return err
		}

		cursor := map[string]any(current)
		for _, segment := range path[:len(path)-1] {
			next, ok := cursor[segment].(map[string]any)
			if !ok {
				next = map[string]any{}
				cursor[segment] = next
			}
			cursor = next
		}
		leaf := path[len(path)-1]
		value, _ := domain.ToInt64(cursor[leaf])
		cursor[leaf] = value + amount

		return s.writeMeta(ctx, tx, id, current)
	})
	if err != nil {
		return nil, err
	}
	return s.LoadNode(ctx, id)
}

func (s *Store) lockMeta(ctx context.Context, tx *sql.Tx, id string) (domain.Metadata, error) {
	q := &query{d: s.d}
	q.cond("id = %s", id)
	var raw []byte
	if err := tx.QueryRowContext(ctx, "SELECT meta FROM nodes"+q.whereClause()+s.d.forUpdate, q.args...).Scan(&raw); err != nil {
		return nil, notFound(err, domain.ErrNodeNotFound, id)
	}
	return decodeMeta(raw)
}

func (s *Store) writeMeta(ctx context.Context, tx *sql.Tx, id string, meta domain.Metadata) error {
	encoded, err := encodeMeta(meta)
	if err != nil {
		return err
	}
	q := &query{d: s.d}
	stmt := fmt.Sprintf("UPDATE nodes SET meta = %s, updated_at = %s", s.d.jsonParam(q.arg(encoded)), q.arg(s.now().UnixNano()))
	q.cond("id = %s", id)
	if _, err := tx.ExecContext(ctx, stmt+q.whereClause(), q.args...); err != nil {
		return fmt.Errorf("failed to update metadata: %w", err)
	}
	return nil
}

// DeleteNode removes the node and every descendant.
func (s *Store) DeleteNode(ctx context.Context, id string) ([]domain.File, error) {
	var removed []domain.File

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		ids, err := s.subtreeIDs(ctx, tx, id)
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			return fmt.Errorf("%w: %s", domain.ErrNodeNotFound, id)
		}

		fq := &query{d: s.d}
		fq.in("item_id", ids)
		rows, err := tx.QueryContext(ctx, "SELECT "+fileColumns+" FROM files"+fq.whereClause()+" ORDER BY seq", fq.args...)
		if err != nil {
			return fmt.Errorf("failed to list files: %w", err)
		}
		for rows.Next() {
			f, err := scanFile(rows)
			if err != nil {
				_ = rows.Close()
				return fmt.Errorf("failed to scan file: %w", err)
			}
			removed = append(removed, *f)
		}
		if err := rows.Close(); err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, "DELETE FROM files"+fq.whereClause(), fq.args...); err != nil {
			return fmt.Errorf("failed to delete files: %w", err)
		}

		nq := &query{d: s.d}
		nq.in("id", ids)
		if _, err := tx.ExecContext(ctx, "DELETE FROM nodes"+nq.whereClause(), nq.args...); err != nil {
			return fmt.Errorf("failed to delete nodes: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Debug().
		Str(zerowrap.FieldLayer, "adapter").
		Str(zerowrap.FieldAdapter, "sqlstore").
		Str(zerowrap.FieldEntityID, id).
		Int(zerowrap.FieldCount, len(removed)).
		Msg("node deleted")

	return removed, nil
}

func (s *Store) subtreeIDs(ctx context.Context, tx *sql.Tx, id string) ([]any, error) {
	q := &query{d: s.d}
	stmt := fmt.Sprintf(`WITH RECURSIVE subtree(id) AS (
		SELECT id FROM nodes WHERE id = %s
		UNION ALL
		SELECT n.id FROM nodes n JOIN subtree ON n.parent_id = subtree.id
	) SELECT id FROM subtree`, q.arg(id))

	rows, err := tx.QueryContext(ctx, stmt, q.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to walk subtree: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var ids []any
	for rows.Next() {
		var child string
		if err := rows.Scan(&child); err != nil {
			return nil, fmt.Errorf("failed to scan subtree id: %w", err)
		}
		ids = append(ids, child)
	}
	return ids, rows.Err()
}

// CreateItem creates an artifact item under parentID.
func (s *Store) CreateItem(ctx context.Context, parentID string, spec domain.ItemSpec) (*domain.Node, error) {
	if !spec.Kind.IsItem() {
		return nil, fmt.Errorf("%w: %s is not an item kind", domain.ErrValidation, spec.Kind)
	}
	if _, err := s.LoadNode(ctx, parentID); err != nil {
		return nil, err
	}

	meta, err := encodeMeta(spec.Meta)
	if err != nil {
		return nil, err
	}

	id := uuid.NewString()
	now := s.now().UnixNano()
	q := &query{d: s.d}
	stmt := fmt.Sprintf(
		"INSERT INTO nodes (id, parent_id, kind, name, name_key, description, public, creator, meta, unique_key, created_at, updated_at) VALUES (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)",
		q.arg(id), q.arg(parentID), q.arg(string(spec.Kind)), q.arg(spec.Name), q.arg(id),
		q.arg(spec.Description), q.arg(false), q.arg(spec.Creator), s.d.jsonParam(q.arg(meta)), q.arg(nullable(spec.UniqueKey)), q.arg(now), q.arg(now),
	)
	if _, err := s.db.ExecContext(ctx, stmt, q.args...); err != nil {
		if s.d.isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: artifact %q already stored", domain.ErrConflict, spec.Name)
		}
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	return s.LoadNode(ctx, id)
}

// UpdateItem replaces the name, description, metadata and unique key of an item.
func (s *Store) UpdateItem(ctx context.Context, id string, update domain.ItemUpdate) (*domain.Node, error) {
	meta, err := encodeMeta(update.Meta)
	if err != nil {
		return nil, err
	}

	q := &query{d: s.d}
	stmt := fmt.Sprintf("UPDATE nodes SET name = %s, description = %s, meta = %s, unique_key = %s, updated_at = %s",
		q.arg(update.Name), q.arg(update.Description), s.d.jsonParam(q.arg(meta)), q.arg(nullable(update.UniqueKey)), q.arg(s.now().UnixNano()))
	q.cond("id = %s", id)
	q.in("kind", itemKinds())

	res, err := s.db.ExecContext(ctx, stmt+q.whereClause(), q.args...)
	if err != nil {
		if s.d.isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: artifact %q already stored", domain.ErrConflict, update.Name)
		}
		return nil, fmt.Errorf("failed to update item: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrNodeNotFound, id)
	}

	return s.LoadNode(ctx, id)
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
