package database

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
)

var (
	// ErrNotFound is returned when no record matches the identity
	// (seat + last name + reference) given to a lookup or delete.
	ErrNotFound = errors.New("booking not found")

	// ErrDuplicateSeat is returned on the UNIQUE(seat) constraint.
	ErrDuplicateSeat = errors.New("seat already booked")

	// ErrDuplicateReference is returned on the booking_ref primary key
	// constraint.
	ErrDuplicateReference = errors.New("booking reference already exists")
)

type DB struct {
	db     *sql.DB
	logger *zerolog.Logger
}

// NewDB opens (creating if needed) the sqlite booking store at path.
// ":memory:" is accepted for tests.
func NewDB(path string, logger *zerolog.Logger) (*DB, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := createTables(db); err != nil {
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	logger.Info().Str("path", path).Msg("Booking store initialized")
	return &DB{db: db, logger: logger}, nil
}

func createTables(db *sql.DB) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS bookings (
            booking_ref TEXT PRIMARY KEY,
            passport_no TEXT NOT NULL,
            first_name TEXT NOT NULL,
            last_name TEXT NOT NULL,
            seat TEXT NOT NULL UNIQUE,
            created_at DATETIME DEFAULT CURRENT_TIMESTAMP
        )`,

		`CREATE INDEX IF NOT EXISTS idx_bookings_last_name ON bookings(last_name)`,
	}

	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("error executing query %s: %w", query, err)
		}
	}
	return nil
}

// mapConstraintError translates sqlite unique-constraint failures into
// the store's sentinel errors.
func mapConstraintError(err error) error {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return err
	}
	switch sqliteErr.ExtendedCode {
	case sqlite3.ErrConstraintUnique:
		if strings.Contains(sqliteErr.Error(), "bookings.seat") {
			return ErrDuplicateSeat
		}
		return ErrDuplicateReference
	case sqlite3.ErrConstraintPrimaryKey:
		return ErrDuplicateReference
	}
	return err
}

func (db *DB) Close() error {
	return db.db.Close()
}
