// Package types implements special types for the ledger backend.
package types

import (
	"fmt"
	"strings"
	"time"
)

// Date is a calendar date without a time of day.
type Date time.Time

// NewDate returns a new Date.
func NewDate(year int, month time.Month, day int) Date {
	return Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// String returns the date formatted as YYYY-MM-DD.
func (d Date) String() string {
	year, month, day := time.Time(d).Date()
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

// MarshalJSON implements the json.Marshaler interface.
// The output is the result of d.String().
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// The date is expected to be a string in RFC 3339 full-date format.
func (d *Date) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`) // get rid of "
	if value == "" || value == "null" {
		return nil
	}

	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return err
	}

	*d = DateOf(t)
	return nil
}

// DateOf returns the Date on which a time occurs in that time's location.
func DateOf(t time.Time) Date {
	year, month, day := t.Date()
	return Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// ParseDate parses a string in RFC 3339 full-date format and returns the
// Date value it represents.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, err
	}

	return DateOf(t), nil
}

// ParseLedgerDate parses a string in the DD/MM/YYYY format used by bank
// ledger exports and returns the Date value it represents.
func ParseLedgerDate(s string) (Date, error) {
	t, err := time.Parse("02/01/2006", s)
	if err != nil {
		return Date{}, err
	}

	return DateOf(t), nil
}

// IsZero reports if the date is the zero value.
func (d Date) IsZero() bool {
	return time.Time(d).IsZero()
}

// Before reports whether the date d is before e.
func (d Date) Before(e Date) bool {
	return time.Time(d).Before(time.Time(e))
}

// After reports whether the date d is after e.
func (d Date) After(e Date) bool {
	return time.Time(d).After(time.Time(e))
}

// Equal reports whether d and e represent the same date.
func (d Date) Equal(e Date) bool {
	return time.Time(d).Equal(time.Time(e))
}

// AddDate adds a specified amount of years, months and days.
func (d Date) AddDate(years, months, days int) Date {
	return Date(time.Time(d).AddDate(years, months, days))
}
