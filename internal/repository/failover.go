package repository

import (
	"context"
	"sync/atomic"
	"time"

	"apacheair/internal/domain"
	"apacheair/internal/models"

	"github.com/rs/zerolog"
)

// FailoverSeatCache prefers the primary cache and falls back to the
// secondary when the primary errors, probing the primary again after
// a minute. Losing cache entries on failover is harmless: misses go
// to the authoritative store.
type FailoverSeatCache struct {
	primary   domain.SeatCache
	fallback  domain.SeatCache
	logger    *zerolog.Logger
	isDown    atomic.Bool
	lastCheck time.Time
}

func NewFailoverSeatCache(primary, fallback domain.SeatCache, logger *zerolog.Logger) *FailoverSeatCache {
	return &FailoverSeatCache{
		primary:  primary,
		fallback: fallback,
		logger:   logger,
	}
}

func (c *FailoverSeatCache) markDown(err error) {
	c.logger.Error().Err(err).Msg("Primary seat cache failed, falling back to memory")
	c.isDown.Store(true)
	c.lastCheck = time.Now()
}

func (c *FailoverSeatCache) GetSeatStatus(ctx context.Context, seat string) (*models.SeatStatus, error) {
	if !c.isDown.Load() {
		status, err := c.primary.GetSeatStatus(ctx, seat)
		if err == nil {
			return status, nil
		}
		c.markDown(err)
	}

	// Probe the primary again after a minute
	if c.isDown.Load() && time.Since(c.lastCheck) > time.Minute {
		status, err := c.primary.GetSeatStatus(ctx, seat)
		if err == nil {
			c.isDown.Store(false)
			return status, nil
		}
		c.lastCheck = time.Now()
	}

	return c.fallback.GetSeatStatus(ctx, seat)
}

func (c *FailoverSeatCache) SetSeatStatus(ctx context.Context, status *models.SeatStatus) error {
	if !c.isDown.Load() {
		err := c.primary.SetSeatStatus(ctx, status)
		if err == nil {
			// Mirror into the fallback so a later failover serves the
			// current reference, not one left over from an earlier
			// outage.
			_ = c.fallback.SetSeatStatus(ctx, status)
			return nil
		}
		c.markDown(err)
	}

	return c.fallback.SetSeatStatus(ctx, status)
}

func (c *FailoverSeatCache) InvalidateSeat(ctx context.Context, seat string) error {
	if !c.isDown.Load() {
		err := c.primary.InvalidateSeat(ctx, seat)
		if err == nil {
			// Clear the fallback too so a later failover cannot serve
			// a status the primary already dropped.
			_ = c.fallback.InvalidateSeat(ctx, seat)
			return nil
		}
		c.markDown(err)
	}

	return c.fallback.InvalidateSeat(ctx, seat)
}
