package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"apacheair/internal/config"
	"apacheair/internal/models"

	"github.com/redis/go-redis/v9"
)

type RedisSeatCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisClient builds a Redis client from config.
func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})
}

func NewRedisSeatCache(client *redis.Client, ttl time.Duration) *RedisSeatCache {
	return &RedisSeatCache{
		client: client,
		ttl:    ttl,
	}
}

func seatKey(seat string) string {
	return fmt.Sprintf("seat_status:%s", seat)
}

func (c *RedisSeatCache) GetSeatStatus(ctx context.Context, seat string) (*models.SeatStatus, error) {
	if c.client == nil {
		return nil, fmt.Errorf("redis client is nil")
	}
	val, err := c.client.Get(ctx, seatKey(seat)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get seat status from redis: %w", err)
	}

	var status models.SeatStatus
	if err := json.Unmarshal([]byte(val), &status); err != nil {
		return nil, fmt.Errorf("failed to unmarshal seat status: %w", err)
	}

	return &status, nil
}

func (c *RedisSeatCache) SetSeatStatus(ctx context.Context, status *models.SeatStatus) error {
	if c.client == nil {
		return fmt.Errorf("redis client is nil")
	}
	data, err := json.Marshal(status)
	if err != nil {
		return fmt.Errorf("failed to marshal seat status: %w", err)
	}
	if err := c.client.Set(ctx, seatKey(status.Seat), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set seat status in redis: %w", err)
	}
	return nil
}

func (c *RedisSeatCache) InvalidateSeat(ctx context.Context, seat string) error {
	if c.client == nil {
		return fmt.Errorf("redis client is nil")
	}
	if err := c.client.Del(ctx, seatKey(seat)).Err(); err != nil {
		return fmt.Errorf("failed to delete seat status from redis: %w", err)
	}
	return nil
}
