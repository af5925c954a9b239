package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisStoreSave(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()

	mock.ExpectSet("session:abc", "42", time.Hour).SetVal("OK")

	store := NewRedisStore(db)
	require.NoError(t, store.Save(context.Background(), "abc", 42, time.Hour))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStoreGet(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()

	mock.ExpectGet("session:abc").SetVal("42")
	mock.ExpectGet("session:gone").RedisNil()
	mock.ExpectGet("session:junk").SetVal("not-a-number")
	mock.ExpectGet("session:down").SetErr(errors.New("connection refused"))

	store := NewRedisStore(db)
	ctx := context.Background()

	id, err := store.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)

	_, err = store.Get(ctx, "gone")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = store.Get(ctx, "junk")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = store.Get(ctx, "down")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrSessionNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStoreDelete(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()

	mock.ExpectDel("session:abc").SetVal(1)

	store := NewRedisStore(db)
	require.NoError(t, store.Delete(context.Background(), "abc"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestManagerWithRedisStore(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()

	m := NewManager("test-secret", time.Hour, NewRedisStore(db))
	ctx := context.Background()

	mock.Regexp().ExpectSet(`session:.+`, "9", time.Hour).SetVal("OK")
	token, _, err := m.Start(ctx, 9)
	require.NoError(t, err)

	mock.Regexp().ExpectGet(`session:.+`).SetVal("9")
	userID, err := m.Validate(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, uint(9), userID)

	mock.Regexp().ExpectDel(`session:.+`).SetVal(1)
	_, err = m.End(ctx, token)
	require.NoError(t, err)

	mock.Regexp().ExpectGet(`session:.+`).RedisNil()
	_, err = m.Validate(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "abc", 5, time.Minute))
	id, err := store.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, uint(5), id)

	require.NoError(t, store.Delete(ctx, "abc"))
	_, err = store.Get(ctx, "abc")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	require.NoError(t, store.Save(ctx, "short", 5, time.Millisecond))
	time.Sleep(5 * time.Millisecond)
	_, err = store.Get(ctx, "short")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestManagerValidatePassesStoreFailuresThrough(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()

	m := NewManager("test-secret", time.Hour, NewRedisStore(db))
	ctx := context.Background()

	mock.Regexp().ExpectSet(`session:.+`, "9", time.Hour).SetVal("OK")
	token, _, err := m.Start(ctx, 9)
	require.NoError(t, err)

	mock.Regexp().ExpectGet(`session:.+`).SetErr(errors.New("dial tcp: connection refused"))
	_, err = m.Validate(ctx, token)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidToken)
	assert.Contains(t, err.Error(), "connection refused")

	assert.NoError(t, mock.ExpectationsWereMet())
}
