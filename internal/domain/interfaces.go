package domain

import (
	"context"

	"apacheair/internal/models"
)

// Repository is the persisted booking store consumed by the ledger.
// Seats and references are stored in their canonical uppercase form;
// last-name comparisons are case-insensitive.
type Repository interface {
	InsertBooking(ctx context.Context, record *models.BookingRecord) error
	// DeleteBooking removes the record matching seat, last name and
	// reference together. Returns database.ErrNotFound when no record
	// matches all three.
	DeleteBooking(ctx context.Context, seat, lastName, reference string) error
	// MoveBooking deletes the old record and inserts the replacement in
	// one transaction; partial application is not possible.
	MoveBooking(ctx context.Context, seat, lastName, reference string, replacement *models.BookingRecord) error
	GetBookingBySeat(ctx context.Context, seat string) (*models.BookingRecord, error)
	GetBookingByIdentity(ctx context.Context, seat, lastName, reference string) (*models.BookingRecord, error)
	ListBookings(ctx context.Context) ([]models.BookingRecord, error)
	ListBookingsByLastName(ctx context.Context, lastName string) ([]models.BookingRecord, error)
	ReferenceExists(ctx context.Context, reference string) (bool, error)
}

// SeatCache is a best-effort read cache of reserved seats. A nil
// status with nil error is a miss; the authoritative store always
// wins on miss or error.
type SeatCache interface {
	GetSeatStatus(ctx context.Context, seat string) (*models.SeatStatus, error)
	SetSeatStatus(ctx context.Context, status *models.SeatStatus) error
	InvalidateSeat(ctx context.Context, seat string) error
}
