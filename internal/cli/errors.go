package cli

import (
	"errors"
	"fmt"

	"apacheair/internal/ledger"
)

// printError renders a ledger outcome as operator-readable text. Any
// other error is a persistence failure: fatal for this operation,
// logged, and the menu loop carries on.
func (c *CLI) printError(err error) {
	switch {
	case errors.Is(err, ledger.ErrInvalidSeat):
		fmt.Fprintln(c.out, "Invalid seat number.")
	case errors.Is(err, ledger.ErrInvalidOrStorageSeat):
		fmt.Fprintln(c.out, "Invalid seat number or storage area.")
	case errors.Is(err, ledger.ErrSeatAlreadyBooked):
		fmt.Fprintln(c.out, "Seat is already booked.")
	case errors.Is(err, ledger.ErrBookingNotFound):
		fmt.Fprintln(c.out, "No matching booking found.")
	default:
		c.logger.Error().Err(err).Msg("Operation failed")
		fmt.Fprintln(c.out, "The operation could not be completed. Please try again.")
	}
}
