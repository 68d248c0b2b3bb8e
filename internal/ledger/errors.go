package ledger

import "errors"

// Domain outcomes. All are ordinary recoverable results rendered to
// the operator; none abort the menu loop.
var (
	// ErrInvalidSeat: the seat string does not name a seat inside the
	// 80x6 grid.
	ErrInvalidSeat = errors.New("invalid seat number")

	// ErrInvalidOrStorageSeat: book/modify target is outside the grid
	// or classified as storage.
	ErrInvalidOrStorageSeat = errors.New("invalid seat number or storage area")

	// ErrSeatAlreadyBooked: an active record already holds the seat.
	ErrSeatAlreadyBooked = errors.New("seat is already booked")

	// ErrBookingNotFound: no record matches the given seat, last name
	// and reference together.
	ErrBookingNotFound = errors.New("no matching booking found")
)
