package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orayew2002/pitch-card/domain"
)

func openSQLite(t *testing.T) *SQLite {
	t.Helper()
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "data", "pitchcard.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStores(t *testing.T) {
	stores := map[string]Store{
		"memory": NewMemory(),
		"sqlite": openSQLite(t),
	}

	for name, s := range stores {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			_, ok, err := s.Load(ctx)
			require.NoError(t, err)
			assert.False(t, ok)

			draft := domain.Presets()[1].Pitches
			require.NoError(t, s.Save(ctx, draft))

			got, ok, err := s.Load(ctx)
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, draft, got)

			updated := draft[:1]
			require.NoError(t, s.Save(ctx, updated))
			got, _, err = s.Load(ctx)
			require.NoError(t, err)
			assert.Equal(t, updated, got)

			require.NoError(t, s.Save(ctx, nil))
			got, ok, err = s.Load(ctx)
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Empty(t, got)

			require.NoError(t, s.Clear(ctx))
			_, ok, err = s.Load(ctx)
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestSQLite_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pitchcard.db")
	ctx := context.Background()

	s, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, s.Save(ctx, domain.Presets()[0].Pitches))
	require.NoError(t, s.Close())

	s, err = OpenSQLite(path)
	require.NoError(t, err)
	defer s.Close()

	got, ok, err := s.Load(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Len(t, got, 3)
}
