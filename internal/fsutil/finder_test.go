package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindFilesByExtension(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.hcl"), []byte("a"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nested", "b.hcl"), []byte("b"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ignore.txt"), []byte("x"), 0o644))

	t.Run("walks directories recursively", func(t *testing.T) {
		t.Parallel()
		files, err := FindFilesByExtension(dir, ".hcl")
		require.NoError(t, err)
		assert.Len(t, files, 2)
	})

	t.Run("accepts a single matching file", func(t *testing.T) {
		t.Parallel()
		files, err := FindFilesByExtension(filepath.Join(dir, "a.hcl"), ".hcl")
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(dir, "a.hcl")}, files)
	})

	t.Run("single file with wrong extension yields nothing", func(t *testing.T) {
		t.Parallel()
		files, err := FindFilesByExtension(filepath.Join(dir, "ignore.txt"), ".hcl")
		require.NoError(t, err)
		assert.Empty(t, files)
	})

	t.Run("missing path is an error", func(t *testing.T) {
		t.Parallel()
		_, err := FindFilesByExtension(filepath.Join(dir, "does-not-exist"), ".hcl")
		assert.Error(t, err)
	})
}
