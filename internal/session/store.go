package session

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	gocache "github.com/patrickmn/go-cache"
)

var ErrSessionNotFound = errors.New("session not found")

// Store keeps live session ids so a signed token can still be revoked.
type Store interface {
	Save(ctx context.Context, sid string, userID uint, ttl time.Duration) error
	Get(ctx context.Context, sid string) (uint, error)
	Delete(ctx context.Context, sid string) error
}

var (
	_ Store = (*RedisStore)(nil)
	_ Store = (*MemoryStore)(nil)
)

func sessionKey(sid string) string {
	return "session:" + sid
}

// ======================================================
// REDIS
// ======================================================

type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Save(ctx context.Context, sid string, userID uint, ttl time.Duration) error {
	return s.client.Set(ctx, sessionKey(sid), strconv.FormatUint(uint64(userID), 10), ttl).Err()
}

func (s *RedisStore) Get(ctx context.Context, sid string) (uint, error) {
	v, err := s.client.Get(ctx, sessionKey(sid)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, ErrSessionNotFound
	}
	if err != nil {
		return 0, err
	}

	id, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, ErrSessionNotFound
	}
	return uint(id), nil
}

func (s *RedisStore) Delete(ctx context.Context, sid string) error {
	return s.client.Del(ctx, sessionKey(sid)).Err()
}

// ======================================================
// IN-MEMORY
// ======================================================

// MemoryStore is used when no redis is configured. Sessions do not survive a restart.
type MemoryStore struct {
	cache *gocache.Cache
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{cache: gocache.New(gocache.NoExpiration, 10*time.Minute)}
}

func (s *MemoryStore) Save(_ context.Context, sid string, userID uint, ttl time.Duration) error {
	s.cache.Set(sessionKey(sid), userID, ttl)
	return nil
}

func (s *MemoryStore) Get(_ context.Context, sid string) (uint, error) {
	v, ok := s.cache.Get(sessionKey(sid))
	if !ok {
		return 0, ErrSessionNotFound
	}
	return v.(uint), nil
}

func (s *MemoryStore) Delete(_ context.Context, sid string) error {
	s.cache.Delete(sessionKey(sid))
	return nil
}
