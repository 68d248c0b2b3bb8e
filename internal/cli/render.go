package cli

import (
	"fmt"

	"apacheair/internal/ledger"
)

// cellWidth aligns grid cells; the widest is a three-character seat
// label plus one space.
const cellWidth = 4

func (c *CLI) printReport(report *ledger.Report) {
	if report.Filter != "" {
		if len(report.Matches) > 0 {
			fmt.Fprintf(c.out, "Booking Details for last name '%s':\n", report.Filter)
			for _, record := range report.Matches {
				fmt.Fprintf(c.out, "Seat: %s, Booking Reference: %s, Passenger: %s, Passport: %s\n",
					record.Seat, record.Reference, record.PassengerName(), record.PassportNumber)
			}
		} else {
			fmt.Fprintf(c.out, "No bookings found for last name '%s'.\n", report.Filter)
		}
	}

	fmt.Fprintln(c.out, "\nSeat Booking Layout:")
	for _, row := range report.Grid {
		for _, cell := range row {
			fmt.Fprintf(c.out, "%*s", cellWidth, cell)
		}
		fmt.Fprintln(c.out)
	}
}
