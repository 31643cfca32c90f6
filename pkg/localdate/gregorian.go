package localdate

// isLeapYear reports whether year is a leap year in the Gregorian calendar
func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// daysInMonth returns the number of days in the given month of year
func daysInMonth(year, month int) int {
	if month == 2 {
		if isLeapYear(year) {
			return 29
		}
		return 28
	}
	if month == 4 || month == 6 || month == 9 || month == 11 {
		return 30
	}
	return 31
}

// norm returns nhi, nlo such that
//
//	hi*base + lo == nhi*base + nlo
//	0 <= nlo < base
func norm(hi, lo, base int) (nhi, nlo int) {
	if lo < 0 {
		n := (-lo-1)/base + 1
		hi -= n
		lo += n * base
	}
	if lo >= base {
		n := lo / base
		hi += n
		lo -= n * base
	}
	return hi, lo
}

// normalize maps an arbitrary (year, month, day) triple onto a valid civil
// date. The month is folded into the year first, then the day is walked
// across month boundaries one month at a time. The result is identical to
// starting at day 1 of the normalized month and stepping day-1 single days
// forward or backward: month 13 of 2019 lands in January 2020, day 0 is the
// last day of the previous month, day 32 of a 31-day month is the 1st of
// the next.
func normalize(year, month, day int) (int, int, int) {
	year, month = norm(year, month-1, 12)
	month++
	for day > daysInMonth(year, month) {
		day -= daysInMonth(year, month)
		month++
		if month > 12 {
			month = 1
			year++
		}
	}
	for day < 1 {
		month--
		if month < 1 {
			month = 12
			year--
		}
		day += daysInMonth(year, month)
	}
	return year, month, day
}

// dayOfWeek computes the weekday of a normalized civil date using Zeller's
// congruence, with 0=Sunday .. 6=Saturday. Years before 1 are outside the
// supported range.
func dayOfWeek(year, month, day int) int {
	if month < 3 {
		month += 12
		year--
	}
	k := year % 100
	j := year / 100
	h := (day + ((13 * (month + 1)) / 5) + k + (k / 4) + (j / 4) + (5 * j)) % 7
	return (h + 6) % 7
}
