package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Operations against a closed store must surface an error, never a
// domain sentinel, so callers can tell persistence failures apart
// from "not found".
func TestOperationsOnClosedStore(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Close())

	ctx := context.Background()

	err := db.InsertBooking(ctx, testRecord("AAAA1111", "1A"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrDuplicateSeat)
	assert.NotErrorIs(t, err, ErrDuplicateReference)

	_, err = db.GetBookingBySeat(ctx, "1A")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)

	err = db.DeleteBooking(ctx, "1A", "Doe", "AAAA1111")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)

	_, err = db.ListBookings(ctx)
	assert.Error(t, err)

	_, err = db.ReferenceExists(ctx, "AAAA1111")
	assert.Error(t, err)
}
