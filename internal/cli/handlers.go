package cli

import (
	"context"
	"fmt"

	"apacheair/internal/export"
	"apacheair/internal/ledger"
)

func (c *CLI) handleCheckAvailability(ctx context.Context) {
	seat, ok := c.readLine("Enter seat number to check (e.g., 1A): ")
	if !ok {
		return
	}

	avail, err := c.ledger.CheckAvailability(ctx, canonicalSeat(seat))
	if err != nil {
		c.printError(err)
		return
	}

	switch avail.State {
	case ledger.Reserved:
		fmt.Fprintf(c.out, "Seat %s is Reserved with reference %s\n", avail.Seat, avail.Reference)
	case ledger.NotBookable:
		fmt.Fprintf(c.out, "Seat %s is a Storage Area (Not Bookable)\n", avail.Seat)
	default:
		fmt.Fprintf(c.out, "Seat %s is Available\n", avail.Seat)
	}
}

func (c *CLI) handleBook(ctx context.Context) {
	seat, ok := c.readLine("Enter seat number to book (e.g., 1A): ")
	if !ok {
		return
	}
	passport, ok := c.readLine("Enter passport number: ")
	if !ok {
		return
	}
	firstName, ok := c.readLine("Enter first name: ")
	if !ok {
		return
	}
	lastName, ok := c.readLine("Enter last name: ")
	if !ok {
		return
	}

	reference, err := c.ledger.Book(ctx,
		canonicalSeat(seat),
		canonicalSeat(passport),
		canonicalName(firstName),
		canonicalName(lastName),
	)
	if err != nil {
		c.printError(err)
		return
	}

	fmt.Fprintf(c.out, "Seat %s successfully booked with reference %s.\n", canonicalSeat(seat), reference)
}

func (c *CLI) handleFree(ctx context.Context) {
	seat, ok := c.readLine("Enter seat number to free (e.g., 1A): ")
	if !ok {
		return
	}
	lastName, ok := c.readLine("Enter your last name: ")
	if !ok {
		return
	}
	reference, ok := c.readLine("Enter your booking reference: ")
	if !ok {
		return
	}

	err := c.ledger.Free(ctx, canonicalSeat(seat), canonicalName(lastName), canonicalSeat(reference))
	if err != nil {
		c.printError(err)
		return
	}

	fmt.Fprintf(c.out, "Seat %s has been freed successfully.\n", canonicalSeat(seat))
}

func (c *CLI) handleModify(ctx context.Context) {
	currentSeat, ok := c.readLine("Enter your currently booked seat (e.g., 1A): ")
	if !ok {
		return
	}
	lastName, ok := c.readLine("Enter your last name: ")
	if !ok {
		return
	}
	reference, ok := c.readLine("Enter your current booking reference: ")
	if !ok {
		return
	}
	newSeat, ok := c.readLine("Enter the new seat you want to book (e.g., 1B): ")
	if !ok {
		return
	}

	newReference, err := c.ledger.Modify(ctx,
		canonicalSeat(currentSeat),
		canonicalName(lastName),
		canonicalSeat(reference),
		canonicalSeat(newSeat),
	)
	if err != nil {
		c.printError(err)
		return
	}

	fmt.Fprintf(c.out, "Booking modified: %s has been freed and %s is booked with new reference %s.\n",
		canonicalSeat(currentSeat), canonicalSeat(newSeat), newReference)
}

func (c *CLI) handleStatus(ctx context.Context) {
	lastName, ok := c.readLine("Enter the last name to get your booking details: ")
	if !ok {
		return
	}

	report, err := c.ledger.StatusReport(ctx, canonicalName(lastName))
	if err != nil {
		c.printError(err)
		return
	}

	c.printReport(report)
}

func (c *CLI) handleExport(ctx context.Context) {
	path, err := export.WriteManifest(ctx, c.repo, c.exportPath, c.logger)
	if err != nil {
		c.printError(err)
		return
	}

	fmt.Fprintf(c.out, "Passenger manifest exported to %s\n", path)
}
