package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/w-h-a/soul/source"
)

func TestFetch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id":"1"},{"id":"2"}]`), 0o644))

	recs, err := NewSource(source.WithLocation(path)).Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "2", recs[1].String("id"))
}

func TestFetchFailures(t *testing.T) {
	dir := t.TempDir()

	_, err := NewSource(source.WithLocation(filepath.Join(dir, "missing.json"))).Fetch(context.Background())
	assert.ErrorIs(t, err, source.ErrSourceUnavailable)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"id":"1"}`), 0o644))

	_, err = NewSource(source.WithLocation(bad)).Fetch(context.Background())
	assert.ErrorIs(t, err, source.ErrSourceUnavailable)
}

func TestFetchIgnoresStoredVectors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id":"1","vector":"[0.5,0.5]"}]`), 0o644))

	recs, err := NewSource(source.WithLocation(path)).Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.False(t, recs[0].HasVector())
}
