package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"library-backend/pkg/logger"
)

const (
	refreshKeyPrefix = "session:refresh:"
	pingTimeout      = 2 * time.Second
)

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// SessionStore keeps live refresh token ids in Redis.
// A key exists exactly as long as the token may still be exchanged.
type SessionStore struct {
	client *redis.Client
}

// OpenSessionStore dials Redis and only returns a store that answered PING
func OpenSessionStore(ctx context.Context, cfg RedisConfig) (*SessionStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     10,
		MinIdleConns: 2,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	store := &SessionStore{client: client}
	if err := store.Ping(ctx); err != nil {
		_ = client.Close()
		return nil, err
	}

	logger.Info("session store connected", map[string]interface{}{"addr": cfg.Addr, "db": cfg.DB})
	return store, nil
}

// ========================================
// REFRESH TOKENS
// ========================================

func (s *SessionStore) Save(ctx context.Context, jti, userID string, ttl time.Duration) error {
	if err := s.client.Set(ctx, refreshKey(jti), userID, ttl).Err(); err != nil {
		return fmt.Errorf("save refresh token: %w", err)
	}
	return nil
}

// Consume uses GETDEL so two concurrent refreshes cannot both win
func (s *SessionStore) Consume(ctx context.Context, jti string) (bool, error) {
	err := s.client.GetDel(ctx, refreshKey(jti)).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("consume refresh token: %w", err)
	}
	return true, nil
}

func (s *SessionStore) Revoke(ctx context.Context, jti string) error {
	if err := s.client.Del(ctx, refreshKey(jti)).Err(); err != nil {
		return fmt.Errorf("revoke refresh token: %w", err)
	}
	return nil
}

// ========================================
// LIFECYCLE
// ========================================

// Ping backs the startup check and /health
func (s *SessionStore) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func (s *SessionStore) Close() error {
	return s.client.Close()
}

func refreshKey(jti string) string {
	return refreshKeyPrefix + jti
}
