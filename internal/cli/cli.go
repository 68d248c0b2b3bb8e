// Package cli is the terminal front end: a numbered menu driving one
// ledger operation per iteration. All input normalization (uppercase
// seats and references, canonical-case names) happens here, before
// the ledger sees it.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"apacheair/internal/domain"
	"apacheair/internal/ledger"

	"github.com/rs/zerolog"
)

type CLI struct {
	ledger     *ledger.Ledger
	repo       domain.Repository
	exportPath string
	in         *bufio.Scanner
	out        io.Writer
	logger     *zerolog.Logger
}

func New(l *ledger.Ledger, repo domain.Repository, exportPath string, in io.Reader, out io.Writer, logger *zerolog.Logger) *CLI {
	return &CLI{
		ledger:     l,
		repo:       repo,
		exportPath: exportPath,
		in:         bufio.NewScanner(in),
		out:        out,
		logger:     logger,
	}
}

// Run loops over the menu until the operator exits or input ends.
// Operation failures are rendered and the loop continues; only input
// exhaustion or context cancellation stops it.
func (c *CLI) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		c.printMenu()
		choice, ok := c.readLine("Select an option (1-7): ")
		if !ok {
			return nil
		}

		switch choice {
		case "1":
			c.handleCheckAvailability(ctx)
		case "2":
			c.handleBook(ctx)
		case "3":
			c.handleFree(ctx)
		case "4":
			c.handleStatus(ctx)
		case "5":
			c.handleModify(ctx)
		case "6":
			fmt.Fprintln(c.out, "Exiting program. Goodbye!")
			return nil
		case "7":
			c.handleExport(ctx)
		default:
			fmt.Fprintln(c.out, "Invalid choice. Please select a valid option.")
		}
	}
}

func (c *CLI) printMenu() {
	fmt.Fprintln(c.out, "\n--- Apache Airlines Seat Booking ---")
	fmt.Fprintln(c.out, "1. Check availability of seat")
	fmt.Fprintln(c.out, "2. Book a seat")
	fmt.Fprintln(c.out, "3. Free a seat")
	fmt.Fprintln(c.out, "4. Show booking status")
	fmt.Fprintln(c.out, "5. Modify booking")
	fmt.Fprintln(c.out, "6. Exit program")
	fmt.Fprintln(c.out, "7. Export passenger manifest")
}

func (c *CLI) readLine(prompt string) (string, bool) {
	fmt.Fprint(c.out, prompt)
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

// canonicalSeat uppercases seat and reference input ("12c" -> "12C").
func canonicalSeat(s string) string {
	return strings.ToUpper(s)
}

// canonicalName capitalizes a name the way records are stored: first
// rune upper, the rest lower.
func canonicalName(s string) string {
	if s == "" {
		return s
	}
	first, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(first)) + strings.ToLower(s[size:])
}
