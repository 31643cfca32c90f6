package localdate

import (
	"fmt"
	"iter"
)

// Month is a calendar month, anchored to its first day.
type Month struct {
	first Date
}

// NewMonth returns the month for the given year and month number. Like New,
// out-of-range month numbers roll into adjacent years: month 0 of 2019 is
// December 2018 and month 13 is January 2020.
func NewMonth(year, month int) Month {
	return Month{first: New(year, month, 1)}
}

// MonthOf returns the month containing d.
func MonthOf(d Date) Month {
	return Month{first: New(d.year, d.month, 1)}
}

// ParseMonth parses a month in the canonical YYYY-MM form produced by
// String. It requires exactly two hyphen-separated integer fields. The
// returned error wraps ErrFormat.
func ParseMonth(s string) (Month, error) {
	fields, err := splitFields(s, 2)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q, expected YYYY-MM: %w", s, err)
	}
	return NewMonth(fields[0], fields[1]), nil
}

// MonthsOfYear returns the twelve months of the given year in order.
func MonthsOfYear(year int) []Month {
	months := make([]Month, 12)
	for i := range months {
		months[i] = NewMonth(year, i+1)
	}
	return months
}

// Year returns the year of the month.
func (m Month) Year() int { return m.first.year }

// Month returns the month number, 1 through 12.
func (m Month) Month() int { return m.first.month }

// First returns the first day of the month.
func (m Month) First() Date { return m.first }

// Last returns the last day of the month. It is computed from the first day
// of the following month, so February lengths come out of date
// normalization rather than a month-length table.
func (m Month) Last() Date {
	return m.PlusMonths(1).first.MinusDays(1)
}

// NumberOfDays returns how many days the month has.
func (m Month) NumberOfDays() int { return m.Last().day }

// FirstWeekday returns the weekday of the first day of the month.
func (m Month) FirstWeekday() Weekday { return m.first.Weekday() }

// PlusMonths returns the month n months after m.
func (m Month) PlusMonths(n int) Month {
	return NewMonth(m.first.year, m.first.month+n)
}

// MinusMonths returns the month n months before m.
func (m Month) MinusMonths(n int) Month { return m.PlusMonths(-n) }

// Equal reports whether m and o name the same month.
func (m Month) Equal(o Month) bool { return m == o }

// Before reports whether m is strictly before o.
func (m Month) Before(o Month) bool { return m.first.Before(o.first) }

// After reports whether m is strictly after o.
func (m Month) After(o Month) bool { return m.first.After(o.first) }

// Weeks returns an iterator over every week overlapping the month, in
// order, starting with the week of the 1st. A week is included while its
// Monday or its Sunday falls inside the month, so the first and last weeks
// may extend into the neighboring months.
func (m Month) Weeks() iter.Seq[Week] {
	return func(yield func(Week) bool) {
		for w := WeekOf(m.first); m.contains(w.Monday()) || m.contains(w.Sunday()); w = w.PlusWeeks(1) {
			if !yield(w) {
				return
			}
		}
	}
}

func (m Month) contains(d Date) bool {
	return d.year == m.first.year && d.month == m.first.month
}

// String returns the canonical YYYY-MM form.
func (m Month) String() string {
	return fmt.Sprintf("%d-%02d", m.first.year, m.first.month)
}

// MarshalText implements encoding.TextMarshaler using the canonical form.
func (m Month) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts the same
// input as ParseMonth.
func (m *Month) UnmarshalText(b []byte) error {
	v, err := ParseMonth(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Start returns the first day of the month.
func (m Month) Start() Date { return m.first }

// End returns the last day of the month.
func (m Month) End() Date { return m.Last() }
