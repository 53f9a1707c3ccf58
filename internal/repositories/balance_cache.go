package repositories

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/Atulkumarjha/JusPay-sub000/internal/logger"
)

// BalanceCacheRepository provides a read-through token balance cache
// on Redis. The cache is advisory: every balance write invalidates the
// key, and a miss falls back to the database.
type BalanceCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached balances
}

// NewBalanceCacheRepository creates a new repository instance with optional TTL
func NewBalanceCacheRepository(client *redis.Client, expiration time.Duration) *BalanceCacheRepository {
	return &BalanceCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func balanceKey(userID uuid.UUID) string {
	return fmt.Sprintf("wallet:balance:%s", userID)
}

// GetBalance fetches a cached token balance for a user
func (r *BalanceCacheRepository) GetBalance(ctx context.Context, userID uuid.UUID) (float64, error) {
	key := balanceKey(userID)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"result", val,
			"error", err,
		)
		if err == redis.Nil {
			return 0, fmt.Errorf("balance not cached for user %s", userID)
		}
		return 0, err
	}

	balance, err := strconv.ParseFloat(val, 64)
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"value", val,
			"error", err,
		)
		return 0, err
	}

	logger.Log.Infow(
		"key", key,
		"result", balance,
		"error", nil,
	)

	return balance, nil
}

// SetBalance caches the token balance for a user with expiration
func (r *BalanceCacheRepository) SetBalance(ctx context.Context, userID uuid.UUID, balance float64) error {
	key := balanceKey(userID)
	err := r.client.Set(ctx, key, strconv.FormatFloat(balance, 'f', -1, 64), r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"balance", balance,
		"result", "ok",
		"error", err,
	)

	return err
}

// Invalidate drops the cached balance after a write
func (r *BalanceCacheRepository) Invalidate(ctx context.Context, userID uuid.UUID) error {
	key := balanceKey(userID)
	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow(
		"key", key,
		"result", "deleted",
		"error", err,
	)

	return err
}
