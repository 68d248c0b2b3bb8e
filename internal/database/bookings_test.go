package database

import (
	"context"
	"testing"

	"apacheair/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecord(reference, seat string) *models.BookingRecord {
	return &models.BookingRecord{
		Reference:      reference,
		Seat:           seat,
		PassportNumber: "P1234567",
		FirstName:      "John",
		LastName:       "Doe",
	}
}

func TestInsertAndGetBooking(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	rec := testRecord("AB12CD34", "1A")
	require.NoError(t, db.InsertBooking(ctx, rec))
	assert.False(t, rec.CreatedAt.IsZero())

	got, err := db.GetBookingBySeat(ctx, "1A")
	require.NoError(t, err)
	assert.Equal(t, "AB12CD34", got.Reference)
	assert.Equal(t, "John", got.FirstName)
	assert.Equal(t, "Doe", got.LastName)

	_, err = db.GetBookingBySeat(ctx, "1B")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestInsertDuplicateSeat(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.InsertBooking(ctx, testRecord("AAAA1111", "1A")))

	err := db.InsertBooking(ctx, testRecord("BBBB2222", "1A"))
	assert.ErrorIs(t, err, ErrDuplicateSeat)
}

func TestInsertDuplicateReference(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.InsertBooking(ctx, testRecord("AAAA1111", "1A")))

	err := db.InsertBooking(ctx, testRecord("AAAA1111", "2B"))
	assert.ErrorIs(t, err, ErrDuplicateReference)
}

func TestGetBookingByIdentity(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.InsertBooking(ctx, testRecord("AB12CD34", "1A")))

	t.Run("ExactMatch", func(t *testing.T) {
		got, err := db.GetBookingByIdentity(ctx, "1A", "Doe", "AB12CD34")
		require.NoError(t, err)
		assert.Equal(t, "1A", got.Seat)
	})

	t.Run("LastNameCaseInsensitive", func(t *testing.T) {
		got, err := db.GetBookingByIdentity(ctx, "1A", "DOE", "AB12CD34")
		require.NoError(t, err)
		assert.Equal(t, "AB12CD34", got.Reference)
	})

	t.Run("WrongReference", func(t *testing.T) {
		_, err := db.GetBookingByIdentity(ctx, "1A", "Doe", "WRONGREF")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("WrongLastName", func(t *testing.T) {
		_, err := db.GetBookingByIdentity(ctx, "1A", "Smith", "AB12CD34")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestDeleteBooking(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.InsertBooking(ctx, testRecord("AB12CD34", "1A")))

	// Identity must match in full.
	err := db.DeleteBooking(ctx, "1A", "Doe", "WRONGREF")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = db.GetBookingBySeat(ctx, "1A")
	require.NoError(t, err, "record must survive a failed delete")

	require.NoError(t, db.DeleteBooking(ctx, "1A", "doe", "AB12CD34"))

	_, err = db.GetBookingBySeat(ctx, "1A")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMoveBooking(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.InsertBooking(ctx, testRecord("AB12CD34", "1A")))

	t.Run("Success", func(t *testing.T) {
		replacement := testRecord("EF56GH78", "1B")
		require.NoError(t, db.MoveBooking(ctx, "1A", "Doe", "AB12CD34", replacement))

		_, err := db.GetBookingBySeat(ctx, "1A")
		assert.ErrorIs(t, err, ErrNotFound)

		got, err := db.GetBookingBySeat(ctx, "1B")
		require.NoError(t, err)
		assert.Equal(t, "EF56GH78", got.Reference)

		exists, err := db.ReferenceExists(ctx, "AB12CD34")
		require.NoError(t, err)
		assert.False(t, exists, "old reference must be gone")
	})

	t.Run("NoMatchingIdentity", func(t *testing.T) {
		err := db.MoveBooking(ctx, "1B", "Smith", "EF56GH78", testRecord("IJ90KL12", "2C"))
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("TargetTakenRollsBack", func(t *testing.T) {
		require.NoError(t, db.InsertBooking(ctx, testRecord("MN34OP56", "3D")))

		// Moving 1B onto the occupied 3D must fail and leave 1B in place.
		err := db.MoveBooking(ctx, "1B", "Doe", "EF56GH78", testRecord("QR78ST90", "3D"))
		assert.ErrorIs(t, err, ErrDuplicateSeat)

		got, err := db.GetBookingBySeat(ctx, "1B")
		require.NoError(t, err)
		assert.Equal(t, "EF56GH78", got.Reference)
	})
}

func TestListBookings(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.InsertBooking(ctx, &models.BookingRecord{
		Reference: "AAAA1111", Seat: "1A", PassportNumber: "P1", FirstName: "John", LastName: "Doe",
	}))
	require.NoError(t, db.InsertBooking(ctx, &models.BookingRecord{
		Reference: "BBBB2222", Seat: "2B", PassportNumber: "P2", FirstName: "Jane", LastName: "Smith",
	}))

	all, err := db.ListBookings(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	matches, err := db.ListBookingsByLastName(ctx, "doe")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "1A", matches[0].Seat)

	none, err := db.ListBookingsByLastName(ctx, "Nobody")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestReferenceExists(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	exists, err := db.ReferenceExists(ctx, "AAAA1111")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, db.InsertBooking(ctx, testRecord("AAAA1111", "1A")))

	exists, err = db.ReferenceExists(ctx, "AAAA1111")
	require.NoError(t, err)
	assert.True(t, exists)
}
