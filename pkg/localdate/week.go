package localdate

import "fmt"

// Week is the Monday-through-Sunday week containing a date. A week is
// identified by its Monday anchor, so constructing from any of its seven
// days yields the same value.
type Week struct {
	monday Date
}

// WeekOf returns the week containing d.
func WeekOf(d Date) Week {
	return Week{monday: d.MinusDays(int(d.Weekday()))}
}

// Monday returns the first day of the week.
func (w Week) Monday() Date { return w.monday }

// Sunday returns the last day of the week.
func (w Week) Sunday() Date { return w.monday.PlusDays(6) }

// PlusWeeks returns the week n weeks after w.
func (w Week) PlusWeeks(n int) Week {
	return Week{monday: w.monday.PlusDays(7 * n)}
}

// MinusWeeks returns the week n weeks before w.
func (w Week) MinusWeeks(n int) Week {
	return w.PlusWeeks(-n)
}

// Days returns the seven days of the week, Monday through Sunday.
func (w Week) Days() []Date {
	days := make([]Date, 7)
	for i := range days {
		days[i] = w.monday.PlusDays(i)
	}
	return days
}

// Before reports whether w starts before o.
func (w Week) Before(o Week) bool { return w.monday.Before(o.monday) }

// After reports whether w starts after o.
func (w Week) After(o Week) bool { return w.monday.After(o.monday) }

// String returns the week as "<monday>--<sunday>".
func (w Week) String() string {
	return fmt.Sprintf("%s--%s", w.monday, w.Sunday())
}

// Start returns the Monday of the week.
func (w Week) Start() Date { return w.monday }

// End returns the Sunday of the week.
func (w Week) End() Date { return w.Sunday() }
