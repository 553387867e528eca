// File: utils/auth_session.go
package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const AuthTokenPrefix = "authToken:"

// SaveAuthToken stores a token hash -> userID mapping with a TTL matching the
// token lifetime. A token absent from the store is treated as revoked.
func SaveAuthToken(client *redis.Client, tokenHash, userID string, ttl time.Duration) error {
	ctx := context.Background()
	if err := client.Set(ctx, AuthTokenPrefix+tokenHash, userID, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save auth token: %w", err)
	}
	return nil
}

// GetAuthTokenUser resolves a token hash to the userID it was issued for.
// Returns an empty string if the token is unknown or revoked.
func GetAuthTokenUser(client *redis.Client, tokenHash string) (string, error) {
	ctx := context.Background()
	userID, err := client.Get(ctx, AuthTokenPrefix+tokenHash).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to look up auth token: %w", err)
	}
	return userID, nil
}

// DeleteAuthToken revokes a token by removing its hash from the store.
func DeleteAuthToken(client *redis.Client, tokenHash string) error {
	ctx := context.Background()
	return client.Del(ctx, AuthTokenPrefix+tokenHash).Err()
}
