package artifact

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoaderReadsWholeFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Dockerfile"), []byte("EXPOSE 8080\nUSER nginx\n"), 0o644))

	content, err := NewLoader(dir).Load("Dockerfile")
	require.NoError(t, err)
	assert.Equal(t, "EXPOSE 8080\nUSER nginx\n", content)
}

// The first read is the only read: later loads return the cached content
// even if the file changed or vanished in the meantime.
func TestLoaderCachesContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nginx.conf")
	require.NoError(t, os.WriteFile(path, []byte("listen 8080;\n"), 0o644))

	loader := NewLoader(dir)
	first, err := loader.Load("nginx.conf")
	require.NoError(t, err)

	require.NoError(t, os.Remove(path))

	second, err := loader.Load("nginx.conf")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

// A failed read is cached too; the loader never retries.
func TestLoaderCachesReadError(t *testing.T) {
	dir := t.TempDir()
	loader := NewLoader(dir)

	_, err := loader.Load("index.tsx")
	require.Error(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.tsx"), []byte("playsInline"), 0o644))

	_, err = loader.Load("index.tsx")
	assert.Error(t, err)
}

func TestLoaderNestedPath(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "src"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "src", "supabaseClient.ts"), []byte("import.meta.env"), 0o644))

	content, err := NewLoader(dir).Load(SupabaseClient)
	require.NoError(t, err)
	assert.Equal(t, "import.meta.env", content)
}

func TestLoaderDefaultsToWorkingDirectory(t *testing.T) {
	assert.Equal(t, ".", NewLoader("").Root())
}
