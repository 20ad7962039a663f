// Package testutils provides fixtures shared by package tests.
package testutils

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/bnema/zerowrap"
	"github.com/stretchr/testify/require"

	"github.com/bnema/pkgvault/internal/adapters/out/filesystem"
	"github.com/bnema/pkgvault/internal/adapters/out/lock"
	"github.com/bnema/pkgvault/internal/adapters/out/sqlstore"
)

// TestContext creates a test context with timeout and a logger attached.
func TestContext(t *testing.T) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)
	return zerowrap.WithCtx(ctx, zerowrap.Default())
}

// Backends bundles the real storage adapters used by use case scenario tests.
type Backends struct {
	Store  *sqlstore.Store
	Blobs  *filesystem.BlobStorage
	Locker *lock.Memory
}

// NewBackends opens a SQLite tree store and a blob directory under t.TempDir.
func NewBackends(t *testing.T) *Backends {
	t.Helper()
	dir := t.TempDir()
	log := zerowrap.Default()

	store, err := sqlstore.Open(context.Background(), sqlstore.DriverSQLite, filepath.Join(dir, "pkgvault.db"), log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	blobs, err := filesystem.NewBlobStorage(filepath.Join(dir, "content"), log)
	require.NoError(t, err)

	return &Backends{Store: store, Blobs: blobs, Locker: lock.NewMemory()}
}
