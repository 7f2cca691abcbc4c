package preferences_test

import (
	"context"
	"errors"
	"testing"

	"github.com/amancoderhub/EMS-Event-management-System/preferences"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

func TestRedisStore_GetMissingKey(t *testing.T) {
	client, mock := redismock.NewClientMock()
	s := preferences.NewRedisStore(client)

	mock.ExpectGet("pref:ems_theme").RedisNil()

	val, err := s.Get(context.Background(), preferences.ThemeKey)
	assert.NoError(t, err)
	assert.Equal(t, "", val)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStore_GetExistingKey(t *testing.T) {
	client, mock := redismock.NewClientMock()
	s := preferences.NewRedisStore(client)

	mock.ExpectGet("pref:ems_theme").SetVal("light")

	val, err := s.Get(context.Background(), preferences.ThemeKey)
	assert.NoError(t, err)
	assert.Equal(t, "light", val)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStore_GetError(t *testing.T) {
	client, mock := redismock.NewClientMock()
	s := preferences.NewRedisStore(client)

	mock.ExpectGet("pref:ems_theme").SetErr(errors.New("connection refused"))

	_, err := s.Get(context.Background(), preferences.ThemeKey)
	assert.EqualError(t, err, "connection refused")
}

func TestRedisStore_SetWithoutExpiry(t *testing.T) {
	client, mock := redismock.NewClientMock()
	s := preferences.NewRedisStore(client)

	mock.ExpectSet("pref:ems_theme", "dark", 0).SetVal("OK")

	err := s.Set(context.Background(), preferences.ThemeKey, "dark")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
