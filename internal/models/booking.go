package models

import "time"

// BookingRecord is one active reservation. Records are immutable once
// written: a seat change deletes the old record and inserts a new one
// under a fresh reference.
type BookingRecord struct {
	Reference      string    `json:"reference"`
	Seat           string    `json:"seat"`
	PassportNumber string    `json:"passport_number"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	CreatedAt      time.Time `json:"created_at"`
}

// PassengerName returns the full name as rendered in reports.
func (r BookingRecord) PassengerName() string {
	return r.FirstName + " " + r.LastName
}
