// Package ledger owns the authoritative set of active bookings and
// the invariants over it: one record per seat, one seat per record,
// references unique, storage seats never booked. All mutations go
// through the persisted store; the optional seat cache is a read-side
// convenience only.
package ledger

import (
	"context"
	"errors"
	"time"

	"apacheair/internal/database"
	"apacheair/internal/domain"
	"apacheair/internal/metrics"
	"apacheair/internal/models"
	"apacheair/internal/seatmap"

	"github.com/rs/zerolog"
)

type Ledger struct {
	repo   domain.Repository
	cache  domain.SeatCache // nil when caching is disabled
	logger *zerolog.Logger
}

func New(repo domain.Repository, cache domain.SeatCache, logger *zerolog.Logger) *Ledger {
	return &Ledger{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

// SeatState is the outcome of an availability check.
type SeatState int

const (
	Available SeatState = iota
	Reserved
	NotBookable
)

// Availability describes one seat's current state. Reference is set
// only when State is Reserved.
type Availability struct {
	Seat      seatmap.SeatID
	State     SeatState
	Reference string
}

// CheckAvailability reports the state of one seat. Pure read.
func (l *Ledger) CheckAvailability(ctx context.Context, seatInput string) (*Availability, error) {
	metrics.IncOp("check_availability")

	id, ok := seatmap.Parse(seatInput)
	if !ok {
		return nil, ErrInvalidSeat
	}

	if status := l.cachedStatus(ctx, id); status != nil {
		return &Availability{Seat: id, State: Reserved, Reference: status.Reference}, nil
	}

	record, err := l.repo.GetBookingBySeat(ctx, id.String())
	switch {
	case err == nil:
		l.cacheReserved(ctx, record)
		return &Availability{Seat: id, State: Reserved, Reference: record.Reference}, nil
	case errors.Is(err, database.ErrNotFound):
		if seatmap.Classify(id) == seatmap.Storage {
			return &Availability{Seat: id, State: NotBookable}, nil
		}
		return &Availability{Seat: id, State: Available}, nil
	default:
		metrics.IncOpError("check_availability")
		return nil, err
	}
}

// Book reserves a bookable, unoccupied seat and returns the freshly
// generated booking reference.
func (l *Ledger) Book(ctx context.Context, seatInput, passportNumber, firstName, lastName string) (string, error) {
	metrics.IncOp("book")

	id, ok := seatmap.Parse(seatInput)
	if !ok || seatmap.Classify(id) != seatmap.Bookable {
		return "", ErrInvalidOrStorageSeat
	}

	// Validation fully precedes mutation.
	_, err := l.repo.GetBookingBySeat(ctx, id.String())
	if err == nil {
		return "", ErrSeatAlreadyBooked
	}
	if !errors.Is(err, database.ErrNotFound) {
		metrics.IncOpError("book")
		return "", err
	}

	reference, err := l.newReference(ctx)
	if err != nil {
		metrics.IncOpError("book")
		return "", err
	}

	record := &models.BookingRecord{
		Reference:      reference,
		Seat:           id.String(),
		PassportNumber: passportNumber,
		FirstName:      firstName,
		LastName:       lastName,
	}
	if err := l.repo.InsertBooking(ctx, record); err != nil {
		if errors.Is(err, database.ErrDuplicateSeat) {
			return "", ErrSeatAlreadyBooked
		}
		metrics.IncOpError("book")
		return "", err
	}

	l.cacheReserved(ctx, record)
	l.logger.Info().Str("seat", record.Seat).Str("reference", reference).Msg("Seat booked")
	return reference, nil
}

// Free deletes the record matching seat, last name and reference
// together. The identity check is deliberate: a seat number alone
// must not be enough to release someone else's booking.
func (l *Ledger) Free(ctx context.Context, seatInput, lastName, reference string) error {
	metrics.IncOp("free")

	id, ok := seatmap.Parse(seatInput)
	if !ok {
		return ErrInvalidSeat
	}

	err := l.repo.DeleteBooking(ctx, id.String(), lastName, reference)
	if errors.Is(err, database.ErrNotFound) {
		return ErrBookingNotFound
	}
	if err != nil {
		metrics.IncOpError("free")
		return err
	}

	l.invalidateSeat(ctx, id)
	l.logger.Info().Str("seat", id.String()).Str("reference", reference).Msg("Seat freed")
	return nil
}

// Modify moves a verified booking to a new seat. The old record is
// deleted and a replacement inserted under a fresh reference inside
// one store transaction; identity fields carry over.
func (l *Ledger) Modify(ctx context.Context, currentSeatInput, lastName, reference, newSeatInput string) (string, error) {
	metrics.IncOp("modify")

	currentID, ok := seatmap.Parse(currentSeatInput)
	if !ok {
		return "", ErrInvalidSeat
	}
	newID, ok := seatmap.Parse(newSeatInput)
	if !ok || seatmap.Classify(newID) != seatmap.Bookable {
		return "", ErrInvalidOrStorageSeat
	}

	current, err := l.repo.GetBookingByIdentity(ctx, currentID.String(), lastName, reference)
	if errors.Is(err, database.ErrNotFound) {
		return "", ErrBookingNotFound
	}
	if err != nil {
		metrics.IncOpError("modify")
		return "", err
	}

	// Moving onto an occupied seat (including its own) is refused.
	_, err = l.repo.GetBookingBySeat(ctx, newID.String())
	if err == nil {
		return "", ErrSeatAlreadyBooked
	}
	if !errors.Is(err, database.ErrNotFound) {
		metrics.IncOpError("modify")
		return "", err
	}

	newReference, err := l.newReference(ctx)
	if err != nil {
		metrics.IncOpError("modify")
		return "", err
	}

	replacement := &models.BookingRecord{
		Reference:      newReference,
		Seat:           newID.String(),
		PassportNumber: current.PassportNumber,
		FirstName:      current.FirstName,
		LastName:       current.LastName,
	}
	if err := l.repo.MoveBooking(ctx, currentID.String(), lastName, reference, replacement); err != nil {
		switch {
		case errors.Is(err, database.ErrDuplicateSeat):
			return "", ErrSeatAlreadyBooked
		case errors.Is(err, database.ErrNotFound):
			return "", ErrBookingNotFound
		}
		metrics.IncOpError("modify")
		return "", err
	}

	l.invalidateSeat(ctx, currentID)
	l.cacheReserved(ctx, replacement)
	l.logger.Info().
		Str("from", currentID.String()).
		Str("to", newID.String()).
		Str("reference", newReference).
		Msg("Booking moved")
	return newReference, nil
}

func (l *Ledger) cachedStatus(ctx context.Context, id seatmap.SeatID) *models.SeatStatus {
	if l.cache == nil {
		return nil
	}
	status, err := l.cache.GetSeatStatus(ctx, id.String())
	if err != nil {
		metrics.IncCache("error")
		l.logger.Debug().Err(err).Str("seat", id.String()).Msg("Seat cache lookup failed")
		return nil
	}
	if status == nil {
		metrics.IncCache("miss")
		return nil
	}
	metrics.IncCache("hit")
	return status
}

func (l *Ledger) cacheReserved(ctx context.Context, record *models.BookingRecord) {
	if l.cache == nil {
		return
	}
	err := l.cache.SetSeatStatus(ctx, &models.SeatStatus{
		Seat:      record.Seat,
		Reference: record.Reference,
		CachedAt:  time.Now(),
	})
	if err != nil {
		l.logger.Debug().Err(err).Str("seat", record.Seat).Msg("Seat cache write failed")
	}
}

func (l *Ledger) invalidateSeat(ctx context.Context, id seatmap.SeatID) {
	if l.cache == nil {
		return
	}
	if err := l.cache.InvalidateSeat(ctx, id.String()); err != nil {
		l.logger.Debug().Err(err).Str("seat", id.String()).Msg("Seat cache invalidation failed")
	}
}
