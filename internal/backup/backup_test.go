package backup

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/habitflow/habitflow/internal/storage/sqlite"
)

func newTestDB(t *testing.T) string {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "habitflow.db")
	store := sqlite.NewStore(dbPath)
	require.NoError(t, store.Init())
	require.NoError(t, store.Close())
	return dbPath
}

func TestCreateAndList(t *testing.T) {
	dbPath := newTestDB(t)
	mgr := NewManager(dbPath)

	path, err := mgr.Create()
	require.NoError(t, err)
	require.FileExists(t, path)

	backups, err := mgr.List()
	require.NoError(t, err)
	require.Len(t, backups, 1)
	require.Equal(t, path, backups[0].Path)
	require.Greater(t, backups[0].Size, int64(0))
}

func TestCreateMissingDatabase(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "missing.db"))
	_, err := mgr.Create()
	require.Error(t, err)
}

func TestListEmpty(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "habitflow.db"))
	backups, err := mgr.List()
	require.NoError(t, err)
	require.Empty(t, backups)
}

func TestRestore(t *testing.T) {
	dbPath := newTestDB(t)
	mgr := NewManager(dbPath)

	backupPath, err := mgr.Create()
	require.NoError(t, err)

	// Corrupt the live database, then restore.
	require.NoError(t, os.WriteFile(dbPath, []byte("garbage"), 0600))
	require.NoError(t, mgr.Restore(backupPath))

	store := sqlite.NewStore(dbPath)
	require.NoError(t, store.Load())
	_, err = store.GetPreferences()
	require.NoError(t, err)
	require.NoError(t, store.Close())
}

func TestRestoreMissingBackup(t *testing.T) {
	dbPath := newTestDB(t)
	mgr := NewManager(dbPath)
	require.Error(t, mgr.Restore(filepath.Join(mgr.BackupDir(), "nope.db")))
}
