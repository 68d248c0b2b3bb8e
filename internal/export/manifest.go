// Package export writes the passenger manifest as an Excel workbook.
package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"apacheair/internal/domain"
	"apacheair/internal/seatmap"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Manifest"

// WriteManifest exports all active bookings, ordered by seat, to a
// timestamped .xlsx file under dir. Returns the file path.
func WriteManifest(ctx context.Context, repo domain.Repository, dir string, logger *zerolog.Logger) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("error creating export directory: %v", err)
	}

	bookings, err := repo.ListBookings(ctx)
	if err != nil {
		return "", fmt.Errorf("error getting bookings: %v", err)
	}

	// Seat order, not lexicographic: "2A" before "10A".
	sort.Slice(bookings, func(i, j int) bool {
		a, _ := seatmap.Parse(bookings[i].Seat)
		b, _ := seatmap.Parse(bookings[j].Seat)
		return a.Compare(b) < 0
	})

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return "", fmt.Errorf("error creating sheet: %v", err)
	}
	f.SetActiveSheet(index)

	headers := []string{"Seat", "Reference", "First Name", "Last Name", "Passport", "Booked At"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheetName, cell, header)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	_ = f.SetCellStyle(sheetName, "A1", "F1", headerStyle)

	for i, record := range bookings {
		row := i + 2
		values := []any{
			record.Seat,
			record.Reference,
			record.FirstName,
			record.LastName,
			record.PassportNumber,
			record.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			_ = f.SetCellValue(sheetName, cell, value)
		}
	}

	_ = f.SetColWidth(sheetName, "A", "B", 14)
	_ = f.SetColWidth(sheetName, "C", "F", 20)
	_ = f.DeleteSheet("Sheet1")

	fileName := fmt.Sprintf("manifest_%s.xlsx", time.Now().Format("2006-01-02_150405"))
	filePath := filepath.Join(dir, fileName)

	if err := f.SaveAs(filePath); err != nil {
		return "", fmt.Errorf("error saving file: %v", err)
	}

	logger.Info().Str("file_path", filePath).Int("bookings", len(bookings)).Msg("Manifest exported")
	return filePath, nil
}
