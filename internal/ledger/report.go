package ledger

import (
	"context"

	"apacheair/internal/metrics"
	"apacheair/internal/models"
	"apacheair/internal/seatmap"
)

// AisleCell marks the aisle column in the seating grid.
const AisleCell = "X"

// Report is the data behind the booking status view: the records
// matching the last-name filter, plus the full seating grid. Each
// grid row holds seven cells (columns A B C, the aisle, D E F); a
// cell is "R" for a reserved seat, "S" for storage, the aisle marker,
// or the seat's own label when free.
type Report struct {
	Filter  string
	Matches []models.BookingRecord
	Grid    [][]string
}

// StatusReport builds the report. Pure read.
func (l *Ledger) StatusReport(ctx context.Context, filterLastName string) (*Report, error) {
	metrics.IncOp("status_report")

	all, err := l.repo.ListBookings(ctx)
	if err != nil {
		metrics.IncOpError("status_report")
		return nil, err
	}

	report := &Report{Filter: filterLastName}

	if filterLastName != "" {
		matches, err := l.repo.ListBookingsByLastName(ctx, filterLastName)
		if err != nil {
			metrics.IncOpError("status_report")
			return nil, err
		}
		report.Matches = matches
	}

	reserved := make(map[string]struct{}, len(all))
	for _, record := range all {
		reserved[record.Seat] = struct{}{}
	}

	for id := range seatmap.All() {
		if id.Col == 'A' {
			report.Grid = append(report.Grid, make([]string, 0, len(seatmap.Columns)+1))
		}
		row := len(report.Grid) - 1
		if id.Col == 'D' {
			report.Grid[row] = append(report.Grid[row], AisleCell)
		}
		report.Grid[row] = append(report.Grid[row], gridCell(id, reserved))
	}

	return report, nil
}

func gridCell(id seatmap.SeatID, reserved map[string]struct{}) string {
	if _, ok := reserved[id.String()]; ok {
		return "R"
	}
	if seatmap.Classify(id) == seatmap.Storage {
		return "S"
	}
	return id.String()
}
