package state

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"liferay2wp/internal/domain"
)

func TestLoad_MissingFileYieldsEmptyState(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "nope", "state.json"))

	st, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, st.CompletedCount())
	assert.False(t, st.IsCompleted("ART-1"))
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state.json")
	store := NewFileStore(path)
	ctx := context.Background()

	st := domain.NewMigrationState()
	st.MarkCompleted("ART-1")
	st.MarkCompleted("art-2")
	st.RecordSlug("chi-siamo", 42)

	require.NoError(t, store.Save(ctx, st))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.True(t, loaded.IsCompleted("ART-1"))
	assert.True(t, loaded.IsCompleted("ART-2"), "completed IDs match case-insensitively")
	assert.Equal(t, 2, loaded.CompletedCount())

	id, ok := loaded.PostIDBySlug("Chi-Siamo")
	require.True(t, ok)
	assert.Equal(t, 42, id)
}

func TestLoad_CorruptFileIsAnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewFileStore(path).Load(context.Background())
	assert.Error(t, err, "an unreadable checkpoint must abort, not silently restart the migration")
}

func TestSave_OverwritesPreviousCheckpoint(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	store := NewFileStore(path)
	ctx := context.Background()

	st := domain.NewMigrationState()
	st.MarkCompleted("ART-1")
	require.NoError(t, store.Save(ctx, st))

	st.MarkCompleted("ART-2")
	st.RecordSlug("pagina", 7)
	require.NoError(t, store.Save(ctx, st))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, loaded.CompletedCount())
}
