// File: utils/auth_session.go
package utils

import (
	"context"
	"encoding/json"
	"fmt"

	"samvidhansetu/models"

	"github.com/go-redis/redis/v8"
)

// Prefixes for keys kept in the auth cache DB.
const (
	SessionPrefix   = "session:"
	AuthCachePrefix = "authToken:"
)

// SaveSession stores the account's public projection as its active session.
// There is at most one session per account; a new login overwrites the old
// projection. The session has no TTL, it lives until logout.
func SaveSession(client *redis.Client, profile models.SessionProfile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	ctx := context.Background()
	if err := client.Set(ctx, SessionPrefix+profile.ID, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// GetSession retrieves the stored session projection for an account. Returns
// nil without error when no session is active or the stored value is corrupt;
// an absent session is a normal outcome, not a failure.
func GetSession(client *redis.Client, userID string) (*models.SessionProfile, error) {
	ctx := context.Background()
	data, err := client.Get(ctx, SessionPrefix+userID).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var profile models.SessionProfile
	if err := json.Unmarshal([]byte(data), &profile); err != nil {
		return nil, nil
	}
	return &profile, nil
}

// DeleteSession removes an account's session. Deleting a missing session is a
// no-op, so logout stays idempotent.
func DeleteSession(client *redis.Client, userID string) error {
	ctx := context.Background()
	return client.Del(ctx, SessionPrefix+userID).Err()
}
