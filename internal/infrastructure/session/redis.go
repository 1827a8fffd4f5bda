package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	sessionRepository "memoria/internal/domain/repository/session"
)

const keyPrefix = "session:"

const tokenBytes = 32

// RedisStore keeps session tokens in redis with a TTL, so restarts do
// not wipe active admin sessions and expiry needs no reaper.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func New(cfg Config) (*RedisStore, error) {
	opt, err := redis.ParseURL(cfg.URI)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opt)
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return &RedisStore{
		client: client,
		ttl:    time.Duration(cfg.TTLInMinutes) * time.Minute,
	}, nil
}

func (s *RedisStore) Create(ctx context.Context, userID string) (string, error) {
	raw := make([]byte, tokenBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	token := hex.EncodeToString(raw)

	if err := s.client.Set(ctx, keyPrefix+token, userID, s.ttl).Err(); err != nil {
		return "", err
	}

	return token, nil
}

func (s *RedisStore) Get(ctx context.Context, token string) (string, error) {
	userID, err := s.client.Get(ctx, keyPrefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", sessionRepository.ErrNotFound
		}

		return "", err
	}

	return userID, nil
}

func (s *RedisStore) Delete(ctx context.Context, token string) error {
	return s.client.Del(ctx, keyPrefix+token).Err()
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
