package auth

import (
	"context"
	"time"

	"samvidhansetu/models"
	"samvidhansetu/utils"

	"github.com/go-redis/redis/v8"
)

// tokenTTL bounds how long an issued token stays valid.
const tokenTTL = 24 * time.Hour

// SessionStore persists the single active session projection per account plus
// the hash of its issued token.
type SessionStore interface {
	Save(ctx context.Context, profile models.SessionProfile) error
	Get(ctx context.Context, userID string) (*models.SessionProfile, error)
	Delete(ctx context.Context, userID string) error
	CacheToken(ctx context.Context, userID, tokenHash string, ttl time.Duration) error
	ClearToken(ctx context.Context, userID string) error
}

// RedisSessionStore is the production SessionStore on the auth cache DB.
type RedisSessionStore struct {
	client *redis.Client
}

// NewRedisSessionStore wraps the given Redis client as a SessionStore.
func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{client: client}
}

func (s *RedisSessionStore) Save(ctx context.Context, profile models.SessionProfile) error {
	return utils.SaveSession(s.client, profile)
}

func (s *RedisSessionStore) Get(ctx context.Context, userID string) (*models.SessionProfile, error) {
	return utils.GetSession(s.client, userID)
}

func (s *RedisSessionStore) Delete(ctx context.Context, userID string) error {
	return utils.DeleteSession(s.client, userID)
}

func (s *RedisSessionStore) CacheToken(ctx context.Context, userID, tokenHash string, ttl time.Duration) error {
	return s.client.Set(ctx, utils.AuthCachePrefix+userID, tokenHash, ttl).Err()
}

func (s *RedisSessionStore) ClearToken(ctx context.Context, userID string) error {
	return s.client.Del(ctx, utils.AuthCachePrefix+userID).Err()
}

// SignOut clears the session projection and the cached token hash. Signing
// out an account with no session is a no-op.
func (s *DefaultAuthService) SignOut(ctx context.Context, userID string) error {
	if err := s.Sessions.ClearToken(ctx, userID); err != nil {
		return err
	}
	return s.Sessions.Delete(ctx, userID)
}

// CurrentSession returns the active session projection, or nil when the
// account is signed out.
func (s *DefaultAuthService) CurrentSession(ctx context.Context, userID string) (*models.SessionProfile, error) {
	return s.Sessions.Get(ctx, userID)
}

// openSession stores the projection, issues a token and caches its hash.
func (s *DefaultAuthService) openSession(ctx context.Context, profile models.SessionProfile) (*AuthResponse, error) {
	if err := s.Sessions.Save(ctx, profile); err != nil {
		return nil, err
	}
	token, err := utils.GenerateToken(profile.ID, profile.Username, tokenTTL)
	if err != nil {
		return nil, err
	}
	if err := s.Sessions.CacheToken(ctx, profile.ID, utils.HashToken(token), tokenTTL); err != nil {
		return nil, err
	}
	return &AuthResponse{Token: token, User: profile}, nil
}
