package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/techfix-sqaud/valstinecrm-backend/internal/infrastructure/storage"
	"github.com/techfix-sqaud/valstinecrm-backend/pkg/constants"
)

// newTestManager wires a full service manager over a throwaway data directory.
func newTestManager(t *testing.T) (*ServiceManager, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := storage.Open(dir)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return NewServiceManager(store), dir
}

// reopenManager builds a second manager over the same data directory, the way
// a process restart would.
func reopenManager(t *testing.T, dir string) *ServiceManager {
	t.Helper()
	store, err := storage.Open(dir)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return NewServiceManager(store)
}

func configFileExists(t *testing.T, dir string) bool {
	t.Helper()
	_, err := os.Stat(filepath.Join(dir, constants.KeyBusinessConfig+".json"))
	if err == nil {
		return true
	}
	require.True(t, os.IsNotExist(err))
	return false
}

func recordFileExists(t *testing.T, dir, entityName string) bool {
	t.Helper()
	_, err := os.Stat(filepath.Join(dir, constants.RecordKey(entityName)+".json"))
	if err == nil {
		return true
	}
	require.True(t, os.IsNotExist(err))
	return false
}
