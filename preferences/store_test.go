package preferences_test

import (
	"context"
	"testing"

	"github.com/amancoderhub/EMS-Event-management-System/preferences"
	"github.com/stretchr/testify/assert"
)

func TestMemoryStore_GetMissingKey(t *testing.T) {
	s := preferences.NewMemoryStore()

	val, err := s.Get(context.Background(), preferences.ThemeKey)
	assert.NoError(t, err)
	assert.Equal(t, "", val)
}

func TestMemoryStore_SetThenGet(t *testing.T) {
	s := preferences.NewMemoryStore()
	ctx := context.Background()

	assert.NoError(t, s.Set(ctx, preferences.ThemeKey, "light"))
	assert.NoError(t, s.Set(ctx, preferences.ThemeKey, "dark"))

	val, err := s.Get(ctx, preferences.ThemeKey)
	assert.NoError(t, err)
	assert.Equal(t, "dark", val)
}
