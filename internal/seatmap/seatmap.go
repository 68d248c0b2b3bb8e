// Package seatmap describes the fixed cabin layout: 80 rows of six
// seats (columns A-F), with a block of storage-only seats that can
// never be booked. Classification is a pure function of the seat
// identifier; nothing here is persisted.
package seatmap

import (
	"fmt"
	"iter"
	"strconv"
)

const (
	MinRow = 1
	MaxRow = 80

	// Columns in cabin order, left to right.
	Columns = "ABCDEF"

	// Total number of addressable seats in the grid.
	Total = MaxRow * len(Columns)
)

// SeatID identifies one seat in the grid. The zero value is not a
// valid seat; construct via Parse or New.
type SeatID struct {
	Row int
	Col byte
}

// Class is the static classification of a seat.
type Class int

const (
	Invalid Class = iota
	Bookable
	Storage
)

func (c Class) String() string {
	switch c {
	case Bookable:
		return "bookable"
	case Storage:
		return "storage"
	default:
		return "invalid"
	}
}

// storageSeats is the fixed block reserved for storage.
var storageSeats = map[SeatID]struct{}{
	{77, 'D'}: {}, {77, 'E'}: {}, {77, 'F'}: {},
	{78, 'D'}: {}, {78, 'E'}: {}, {78, 'F'}: {},
}

// New builds a SeatID and reports whether it lies inside the grid.
func New(row int, col byte) (SeatID, bool) {
	if row < MinRow || row > MaxRow || col < 'A' || col > 'F' {
		return SeatID{}, false
	}
	return SeatID{Row: row, Col: col}, true
}

// Parse reads a seat identifier of the form "12C". Input is expected
// uppercase; the caller normalizes. The second return is false when
// the string does not name a seat inside the grid.
func Parse(s string) (SeatID, bool) {
	if len(s) < 2 {
		return SeatID{}, false
	}
	row, err := strconv.Atoi(s[:len(s)-1])
	if err != nil {
		return SeatID{}, false
	}
	return New(row, s[len(s)-1])
}

func (id SeatID) String() string {
	return fmt.Sprintf("%d%c", id.Row, id.Col)
}

// Compare orders seats row-major: by row, then by column.
func (id SeatID) Compare(other SeatID) int {
	if id.Row != other.Row {
		return id.Row - other.Row
	}
	return int(id.Col) - int(other.Col)
}

// Classify returns the static class of a seat. Seats outside the grid
// classify as Invalid.
func Classify(id SeatID) Class {
	if id.Row < MinRow || id.Row > MaxRow || id.Col < 'A' || id.Col > 'F' {
		return Invalid
	}
	if _, ok := storageSeats[id]; ok {
		return Storage
	}
	return Bookable
}

// All iterates the full grid in row-major order (1A, 1B, ... 80F).
// The sequence is finite and can be ranged over any number of times.
func All() iter.Seq[SeatID] {
	return func(yield func(SeatID) bool) {
		for row := MinRow; row <= MaxRow; row++ {
			for i := 0; i < len(Columns); i++ {
				if !yield(SeatID{Row: row, Col: Columns[i]}) {
					return
				}
			}
		}
	}
}
