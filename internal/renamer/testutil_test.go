// internal/renamer/testutil_test.go
package renamer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeFile creates a file with the given content under dir and returns its path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func setupHistory(t *testing.T) *HistoryStore {
	t.Helper()
	store, db, err := OpenHistory(":memory:")
	require.NoError(t, err, "open history")
	t.Cleanup(func() { _ = db.Close() })
	return store
}
