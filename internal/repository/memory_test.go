package repository

import (
	"context"
	"testing"
	"time"

	"apacheair/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySeatCache(t *testing.T) {
	cache := NewMemorySeatCache(time.Hour)
	ctx := context.Background()

	t.Run("SetAndGet", func(t *testing.T) {
		status := &models.SeatStatus{Seat: "1A", Reference: "AB12CD34", CachedAt: time.Now()}
		require.NoError(t, cache.SetSeatStatus(ctx, status))

		got, err := cache.GetSeatStatus(ctx, "1A")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "AB12CD34", got.Reference)
	})

	t.Run("Miss", func(t *testing.T) {
		got, err := cache.GetSeatStatus(ctx, "80F")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("Invalidate", func(t *testing.T) {
		status := &models.SeatStatus{Seat: "2B", Reference: "EF56GH78"}
		require.NoError(t, cache.SetSeatStatus(ctx, status))
		require.NoError(t, cache.InvalidateSeat(ctx, "2B"))

		got, err := cache.GetSeatStatus(ctx, "2B")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("Expiry", func(t *testing.T) {
		short := NewMemorySeatCache(time.Millisecond)
		status := &models.SeatStatus{Seat: "3C", Reference: "IJ90KL12"}
		require.NoError(t, short.SetSeatStatus(ctx, status))

		time.Sleep(5 * time.Millisecond)

		got, err := short.GetSeatStatus(ctx, "3C")
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}
