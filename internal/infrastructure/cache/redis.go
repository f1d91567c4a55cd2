package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/truthos/meeting-intel/internal/domain/entities"
	"github.com/truthos/meeting-intel/pkg/config"
)

const sessionKeyPrefix = "session:"

// RedisStore is a Redis-backed session store
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to Redis and verifies the connection
func NewRedisStore(cfg *config.Config) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisStore{client: client}, nil
}

// Set stores a session with expiration
func (rs *RedisStore) Set(ctx context.Context, token string, session *entities.Session, ttl time.Duration) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	return rs.client.Set(ctx, sessionKeyPrefix+token, data, ttl).Err()
}

// Get retrieves a session by token (returns nil if not found or expired)
func (rs *RedisStore) Get(ctx context.Context, token string) (*entities.Session, error) {
	data, err := rs.client.Get(ctx, sessionKeyPrefix+token).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var session entities.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	session.Token = token
	return &session, nil
}

// Delete removes a session
func (rs *RedisStore) Delete(ctx context.Context, token string) error {
	return rs.client.Del(ctx, sessionKeyPrefix+token).Err()
}

// Close releases the underlying Redis connection
func (rs *RedisStore) Close() error {
	return rs.client.Close()
}
