package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"apacheair/internal/models"
)

const bookingColumns = `booking_ref, passport_no, first_name, last_name, seat, created_at`

func (db *DB) InsertBooking(ctx context.Context, record *models.BookingRecord) error {
	query := `INSERT INTO bookings (booking_ref, passport_no, first_name, last_name, seat, created_at)
              VALUES (?, ?, ?, ?, ?, ?)`
	now := time.Now()
	_, err := db.db.ExecContext(ctx, query,
		record.Reference,
		record.PassportNumber,
		record.FirstName,
		record.LastName,
		record.Seat,
		now,
	)
	if err != nil {
		return fmt.Errorf("failed to insert booking: %w", mapConstraintError(err))
	}
	record.CreatedAt = now
	return nil
}

func (db *DB) DeleteBooking(ctx context.Context, seat, lastName, reference string) error {
	query := `DELETE FROM bookings WHERE seat = ? AND last_name = ? COLLATE NOCASE AND booking_ref = ?`
	result, err := db.db.ExecContext(ctx, query, seat, lastName, reference)
	if err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// MoveBooking deletes the record identified by (seat, lastName,
// reference) and inserts the replacement inside one transaction, so a
// failed insert rolls the delete back.
func (db *DB) MoveBooking(ctx context.Context, seat, lastName, reference string, replacement *models.BookingRecord) error {
	tx, err := db.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	queryDelete := `DELETE FROM bookings WHERE seat = ? AND last_name = ? COLLATE NOCASE AND booking_ref = ?`
	result, err := tx.ExecContext(ctx, queryDelete, seat, lastName, reference)
	if err != nil {
		return fmt.Errorf("failed to delete booking in tx: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	queryInsert := `INSERT INTO bookings (booking_ref, passport_no, first_name, last_name, seat, created_at)
                    VALUES (?, ?, ?, ?, ?, ?)`
	now := time.Now()
	_, err = tx.ExecContext(ctx, queryInsert,
		replacement.Reference,
		replacement.PassportNumber,
		replacement.FirstName,
		replacement.LastName,
		replacement.Seat,
		now,
	)
	if err != nil {
		return fmt.Errorf("failed to insert replacement booking: %w", mapConstraintError(err))
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit booking move: %w", err)
	}
	replacement.CreatedAt = now
	return nil
}

func (db *DB) GetBookingBySeat(ctx context.Context, seat string) (*models.BookingRecord, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE seat = ?`
	return db.scanBooking(db.db.QueryRowContext(ctx, query, seat))
}

func (db *DB) GetBookingByIdentity(ctx context.Context, seat, lastName, reference string) (*models.BookingRecord, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings
              WHERE seat = ? AND last_name = ? COLLATE NOCASE AND booking_ref = ?`
	return db.scanBooking(db.db.QueryRowContext(ctx, query, seat, lastName, reference))
}

func (db *DB) scanBooking(row *sql.Row) (*models.BookingRecord, error) {
	var record models.BookingRecord
	err := row.Scan(
		&record.Reference,
		&record.PassportNumber,
		&record.FirstName,
		&record.LastName,
		&record.Seat,
		&record.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan booking: %w", err)
	}
	return &record, nil
}

func (db *DB) ListBookings(ctx context.Context) ([]models.BookingRecord, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings ORDER BY booking_ref`
	return db.queryBookings(ctx, query)
}

func (db *DB) ListBookingsByLastName(ctx context.Context, lastName string) ([]models.BookingRecord, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings
              WHERE last_name = ? COLLATE NOCASE ORDER BY booking_ref`
	return db.queryBookings(ctx, query, lastName)
}

func (db *DB) queryBookings(ctx context.Context, query string, args ...any) ([]models.BookingRecord, error) {
	rows, err := db.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings: %w", err)
	}
	defer rows.Close()

	var bookings []models.BookingRecord
	for rows.Next() {
		var record models.BookingRecord
		err := rows.Scan(
			&record.Reference,
			&record.PassportNumber,
			&record.FirstName,
			&record.LastName,
			&record.Seat,
			&record.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read bookings: %w", err)
	}

	return bookings, nil
}

func (db *DB) ReferenceExists(ctx context.Context, reference string) (bool, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE booking_ref = ?`
	var count int
	if err := db.db.QueryRowContext(ctx, query, reference).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to check reference: %w", err)
	}
	return count > 0, nil
}
