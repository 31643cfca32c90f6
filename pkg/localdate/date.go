// Package localdate provides timezone-independent calendar values: a civil
// date, a Monday-starting week, a calendar month and a three-month quarter.
// All values are immutable and cheap to copy; arithmetic on one value always
// produces a new value. Nothing in this package carries a time of day or a
// timezone offset, so two values compare equal exactly when they name the
// same day, week, month or quarter.
package localdate

import (
	"errors"
	"fmt"
	"iter"
	"strconv"
	"strings"
	"time"
)

// ErrFormat is wrapped by the errors returned from Parse and ParseMonth
// when the input does not match the canonical form.
var ErrFormat = errors.New("invalid format")

// Weekday numbers the days of the week starting from Monday.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [...]string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

// String returns the English name of the weekday.
func (w Weekday) String() string {
	if w < Monday || w > Sunday {
		return fmt.Sprintf("Weekday(%d)", int(w))
	}
	return weekdayNames[w]
}

// Date is a civil calendar date. The zero value is not a valid date;
// construct values with New, Parse, FromTime or Today.
type Date struct {
	year  int
	month int
	day   int
}

// New returns the date for the given components. Out-of-range components
// are normalized rather than rejected: month 13 of 2019 is January 2020,
// day 0 is the last day of the previous month, day 32 of a 31-day month is
// the 1st of the next, and negative values roll back the same way.
func New(year, month, day int) Date {
	y, m, d := normalize(year, month, day)
	return Date{year: y, month: m, day: d}
}

// Parse parses a date in the canonical YYYY-MM-DD form produced by String.
// It requires exactly three hyphen-separated integer fields; out-of-range
// field values are normalized like New. The returned error wraps ErrFormat.
// Negative years contain an extra hyphen and do not parse.
func Parse(s string) (Date, error) {
	fields, err := splitFields(s, 3)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", s, err)
	}
	return New(fields[0], fields[1], fields[2]), nil
}

// splitFields splits s on hyphens into exactly n integer fields.
func splitFields(s string, n int) ([]int, error) {
	parts := strings.Split(s, "-")
	if len(parts) != n {
		return nil, ErrFormat
	}
	fields := make([]int, n)
	for i, part := range parts {
		v, err := strconv.Atoi(part)
		if err != nil {
			return nil, ErrFormat
		}
		fields[i] = v
	}
	return fields, nil
}

// FromTime returns the civil date of t in t's location.
func FromTime(t time.Time) Date {
	year, month, day := t.Date()
	return Date{year: year, month: int(month), day: day}
}

// FromTimeIn returns the civil date of the instant t as it would appear on
// a wall calendar in the named IANA timezone. Unknown zone names produce an
// error wrapping the time.LoadLocation failure.
func FromTimeIn(t time.Time, zone string) (Date, error) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return Date{}, fmt.Errorf("failed to load timezone %q: %w", zone, err)
	}
	return FromTime(t.In(loc)), nil
}

// Today returns the current date in the local timezone.
func Today() Date {
	return FromTime(time.Now())
}

// TodayIn returns the current date in the named IANA timezone.
func TodayIn(zone string) (Date, error) {
	return FromTimeIn(time.Now(), zone)
}

// Year returns the year component.
func (d Date) Year() int { return d.year }

// Month returns the month component, 1 through 12.
func (d Date) Month() int { return d.month }

// Day returns the day-of-month component.
func (d Date) Day() int { return d.day }

// Weekday returns the day of the week, Monday=0 through Sunday=6.
func (d Date) Weekday() Weekday {
	return Weekday((dayOfWeek(d.year, d.month, d.day) + 6) % 7)
}

// PlusDays returns the date n days after d. Negative n moves backward.
func (d Date) PlusDays(n int) Date {
	return New(d.year, d.month, d.day+n)
}

// MinusDays returns the date n days before d.
func (d Date) MinusDays(n int) Date {
	return d.PlusDays(-n)
}

// Range returns an iterator over every date from d through to, inclusive of
// both endpoints. The sequence ascends one day at a time when to is after
// d, descends when to is before d, and contains just d when they are equal.
func (d Date) Range(to Date) iter.Seq[Date] {
	step := 1
	if to.Before(d) {
		step = -1
	}
	return func(yield func(Date) bool) {
		for cur := d; ; cur = cur.PlusDays(step) {
			if !yield(cur) {
				return
			}
			if cur == to {
				return
			}
		}
	}
}

// Equal reports whether d and o name the same day.
func (d Date) Equal(o Date) bool { return d == o }

// Before reports whether d is strictly before o.
func (d Date) Before(o Date) bool {
	if d.year != o.year {
		return d.year < o.year
	}
	if d.month != o.month {
		return d.month < o.month
	}
	return d.day < o.day
}

// After reports whether d is strictly after o.
func (d Date) After(o Date) bool { return o.Before(d) }

// String returns the canonical YYYY-MM-DD form: month and day zero-padded
// to two digits, the year unpadded.
func (d Date) String() string {
	return fmt.Sprintf("%d-%02d-%02d", d.year, d.month, d.day)
}

// MarshalText implements encoding.TextMarshaler using the canonical form.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts the same
// input as Parse.
func (d *Date) UnmarshalText(b []byte) error {
	v, err := Parse(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// Start returns the date itself; a single day is its own period.
func (d Date) Start() Date { return d }

// End returns the date itself.
func (d Date) End() Date { return d }
