// Package repository holds the optional seat-status read cache. The
// sqlite store stays authoritative; the cache only short-circuits
// repeated availability checks on reserved seats.
package repository

import (
	"context"
	"sync"
	"time"

	"apacheair/internal/models"
)

type MemorySeatCache struct {
	entries sync.Map
	ttl     time.Duration
}

type cacheEntry struct {
	status    models.SeatStatus
	expiresAt time.Time
}

func NewMemorySeatCache(ttl time.Duration) *MemorySeatCache {
	return &MemorySeatCache{ttl: ttl}
}

func (c *MemorySeatCache) GetSeatStatus(ctx context.Context, seat string) (*models.SeatStatus, error) {
	val, ok := c.entries.Load(seat)
	if !ok {
		return nil, nil
	}
	entry := val.(*cacheEntry)
	if time.Now().After(entry.expiresAt) {
		c.entries.Delete(seat)
		return nil, nil
	}
	status := entry.status
	return &status, nil
}

func (c *MemorySeatCache) SetSeatStatus(ctx context.Context, status *models.SeatStatus) error {
	c.entries.Store(status.Seat, &cacheEntry{
		status:    *status,
		expiresAt: time.Now().Add(c.ttl),
	})
	return nil
}

func (c *MemorySeatCache) InvalidateSeat(ctx context.Context, seat string) error {
	c.entries.Delete(seat)
	return nil
}
