package localdate

import "iter"

// Period is a date range at any granularity. A Date is its own one-day
// period; Week, Month and Quarter span their full extent. The four types
// share nothing beyond this capability.
type Period interface {
	Start() Date
	End() Date
}

var (
	_ Period = Date{}
	_ Period = Week{}
	_ Period = Month{}
	_ Period = Quarter{}
)

// Contains reports whether d falls within p, endpoints included.
func Contains(p Period, d Date) bool {
	return !d.Before(p.Start()) && !d.After(p.End())
}

// Days returns an iterator over every day of p, start through end.
func Days(p Period) iter.Seq[Date] {
	return p.Start().Range(p.End())
}
