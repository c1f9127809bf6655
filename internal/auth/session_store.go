package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"vespera/internal/model"
)

const sessionKeyPrefix = "session:"

// SessionStore maps opaque session tokens to authenticated identities.
type SessionStore interface {
	Create(ctx context.Context, identity model.Identity) (string, error)
	Get(ctx context.Context, token string) (*model.Identity, error)
	Destroy(ctx context.Context, token string) error
}

// RedisSessionStore keeps sessions in Redis with a server-side TTL. Unlike a
// cache, session writes must not fail silently: a lost write here would log
// the user in without a session, so every Redis error is returned.
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// Ensure RedisSessionStore implements SessionStore
var _ SessionStore = (*RedisSessionStore)(nil)

// NewRedisSessionStore creates a session store backed by Redis.
func NewRedisSessionStore(addr, password string, db int, ttl time.Duration) *RedisSessionStore {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &RedisSessionStore{client: client, ttl: ttl}
}

// Create generates an opaque token, binds it to the identity and stores it
// with the configured TTL.
func (s *RedisSessionStore) Create(ctx context.Context, identity model.Identity) (string, error) {
	token, err := generateToken()
	if err != nil {
		return "", err
	}

	payload, err := json.Marshal(identity)
	if err != nil {
		return "", fmt.Errorf("marshal session identity: %w", err)
	}

	if err := s.client.Set(ctx, sessionKeyPrefix+token, payload, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}
	return token, nil
}

// Get returns the identity bound to token, or nil when the session does not
// exist or has expired.
func (s *RedisSessionStore) Get(ctx context.Context, token string) (*model.Identity, error) {
	data, err := s.client.Get(ctx, sessionKeyPrefix+token).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	var identity model.Identity
	if err := json.Unmarshal(data, &identity); err != nil {
		return nil, fmt.Errorf("unmarshal session identity: %w", err)
	}
	return &identity, nil
}

// Destroy removes the session. Destroying a token that no longer exists is
// not an error.
func (s *RedisSessionStore) Destroy(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, sessionKeyPrefix+token).Err(); err != nil {
		return fmt.Errorf("destroy session: %w", err)
	}
	return nil
}

// generateToken returns 32 bytes of randomness, base64url-encoded.
func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}
	return base64.URLEncoding.EncodeToString(b), nil
}
