package repository

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenRepo stores refresh-token session state in Redis.  Each token is
// kept under refresh:<sha256-hash> with a TTL matching its expiry, so
// expiration needs no sweeper.  A per-user set tracks active hashes to
// support revoking every session at once.
type TokenRepo struct {
	rdb *redis.Client
}

// NewTokenRepo returns a TokenRepo backed by the given Redis client.
func NewTokenRepo(rdb *redis.Client) *TokenRepo { return &TokenRepo{rdb: rdb} }

func refreshKey(hash string) string { return "refresh:" + hash }
func userSetKey(userID string) string { return "refresh_user:" + userID }

// StoreRefresh records a refresh token hash for a user until exp.
func (r *TokenRepo) StoreRefresh(ctx context.Context, userID, tokenHash string, exp time.Time) error {
	ttl := time.Until(exp)
	if ttl <= 0 {
		return ErrTokenInvalid
	}
	pipe := r.rdb.TxPipeline()
	pipe.Set(ctx, refreshKey(tokenHash), userID, ttl)
	pipe.SAdd(ctx, userSetKey(userID), tokenHash)
	// The set only needs to outlive the longest token in it.
	pipe.Expire(ctx, userSetKey(userID), ttl)
	_, err := pipe.Exec(ctx)
	return err
}

// ValidateRefresh returns the owning userID if the token hash is live.
func (r *TokenRepo) ValidateRefresh(ctx context.Context, tokenHash string) (string, error) {
	userID, err := r.rdb.Get(ctx, refreshKey(tokenHash)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrTokenInvalid
	}
	if err != nil {
		return "", err
	}
	return userID, nil
}

// RevokeByHash removes a single session.
func (r *TokenRepo) RevokeByHash(ctx context.Context, tokenHash string) error {
	userID, err := r.rdb.Get(ctx, refreshKey(tokenHash)).Result()
	if errors.Is(err, redis.Nil) {
		return ErrTokenInvalid
	}
	if err != nil {
		return err
	}
	pipe := r.rdb.TxPipeline()
	pipe.Del(ctx, refreshKey(tokenHash))
	pipe.SRem(ctx, userSetKey(userID), tokenHash)
	_, err = pipe.Exec(ctx)
	return err
}

// RevokeAllForUser removes every active session for the user.
func (r *TokenRepo) RevokeAllForUser(ctx context.Context, userID string) error {
	hashes, err := r.rdb.SMembers(ctx, userSetKey(userID)).Result()
	if err != nil {
		return err
	}
	keys := make([]string, 0, len(hashes)+1)
	for _, h := range hashes {
		keys = append(keys, refreshKey(h))
	}
	keys = append(keys, userSetKey(userID))
	return r.rdb.Del(ctx, keys...).Err()
}
