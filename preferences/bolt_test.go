package preferences_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/amancoderhub/EMS-Event-management-System/preferences"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoltStore_GetMissingKey(t *testing.T) {
	s, err := preferences.OpenBolt(filepath.Join(t.TempDir(), "prefs.db"))
	require.NoError(t, err)
	defer s.Close()

	val, err := s.Get(context.Background(), preferences.ThemeKey)
	assert.NoError(t, err)
	assert.Equal(t, "", val)
}

func TestBoltStore_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.db")
	ctx := context.Background()

	s, err := preferences.OpenBolt(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, preferences.ThemeKey, "light"))
	require.NoError(t, s.Close())

	reopened, err := preferences.OpenBolt(path)
	require.NoError(t, err)
	defer reopened.Close()

	val, err := reopened.Get(ctx, preferences.ThemeKey)
	assert.NoError(t, err)
	assert.Equal(t, "light", val)
}

func TestOpenBolt_BadPath(t *testing.T) {
	_, err := preferences.OpenBolt(filepath.Join(t.TempDir(), "missing", "prefs.db"))
	assert.Error(t, err)
}
