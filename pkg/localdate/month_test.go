package localdate

import (
	"errors"
	"testing"
)

func TestNewMonth(t *testing.T) {
	m := NewMonth(2019, 8)

	if m.Year() != 2019 || m.Month() != 8 {
		t.Errorf("NewMonth(2019, 8) = %v-%v, want 2019-8", m.Year(), m.Month())
	}
	if m.First() != New(2019, 8, 1) {
		t.Errorf("First() = %v, want 2019-08-01", m.First())
	}
}

func TestNewMonth_Normalization(t *testing.T) {
	tests := []struct {
		name      string
		year      int
		month     int
		wantYear  int
		wantMonth int
	}{
		{"month zero", 2019, 0, 2018, 12},
		{"month thirteen", 2019, 13, 2020, 1},
		{"month fifteen", 2019, 15, 2020, 3},
		{"negative month", 2019, -3, 2018, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewMonth(tt.year, tt.month)

			if got.Year() != tt.wantYear || got.Month() != tt.wantMonth {
				t.Errorf("NewMonth(%d, %d) = %d-%02d, want %d-%02d",
					tt.year, tt.month, got.Year(), got.Month(), tt.wantYear, tt.wantMonth)
			}
		})
	}
}

func TestMonth_NumberOfDays(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month int
		want  int
	}{
		{"leap february", 2016, 2, 29},
		{"centennial leap february", 2000, 2, 29},
		{"centennial common february", 2100, 2, 28},
		{"common february", 2019, 2, 28},
		{"august", 2018, 8, 31},
		{"april", 2019, 4, 30},
		{"december", 2019, 12, 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewMonth(tt.year, tt.month).NumberOfDays()

			if got != tt.want {
				t.Errorf("NumberOfDays(%d-%02d) = %d, want %d", tt.year, tt.month, got, tt.want)
			}
		})
	}
}

func TestMonth_Last(t *testing.T) {
	tests := []struct {
		name  string
		month Month
		want  Date
	}{
		{"common february", NewMonth(2019, 2), New(2019, 2, 28)},
		{"leap february", NewMonth(2016, 2), New(2016, 2, 29)},
		{"december", NewMonth(2019, 12), New(2019, 12, 31)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.month.Last(); got != tt.want {
				t.Errorf("Last(%v) = %v, want %v", tt.month, got, tt.want)
			}
		})
	}
}

func TestMonth_FirstWeekday(t *testing.T) {
	tests := []struct {
		name  string
		month Month
		want  Weekday
	}{
		{"starts Thursday", NewMonth(2019, 8), Thursday},
		{"starts Sunday", NewMonth(2019, 9), Sunday},
		{"starts Monday", NewMonth(2021, 2), Monday},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.month.FirstWeekday(); got != tt.want {
				t.Errorf("FirstWeekday(%v) = %v, want %v", tt.month, got, tt.want)
			}
		})
	}
}

func TestMonth_PlusMonths(t *testing.T) {
	tests := []struct {
		name string
		from Month
		n    int
		want Month
	}{
		{"next month", NewMonth(2019, 8), 1, NewMonth(2019, 9)},
		{"across year", NewMonth(2019, 12), 1, NewMonth(2020, 1)},
		{"backward across year", NewMonth(2019, 1), -1, NewMonth(2018, 12)},
		{"seventeen ahead", NewMonth(2019, 8), 17, NewMonth(2021, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.PlusMonths(tt.n); !got.Equal(tt.want) {
				t.Errorf("PlusMonths(%v, %d) = %v, want %v", tt.from, tt.n, got, tt.want)
			}
		})
	}
}

func TestMonth_MinusMonthsInverse(t *testing.T) {
	m := NewMonth(2019, 8)

	for _, n := range []int{0, 1, 12, 25, -7} {
		if got := m.PlusMonths(n).MinusMonths(n); !got.Equal(m) {
			t.Errorf("PlusMonths(%d).MinusMonths(%d) = %v, want %v", n, n, got, m)
		}
	}
}

func TestMonth_Weeks(t *testing.T) {
	tests := []struct {
		name       string
		month      Month
		wantWeeks  int
		wantFirst  Date // Monday of the first week
		wantSunday Date // Sunday of the last week
	}{
		{"august 2019", NewMonth(2019, 8), 5, New(2019, 7, 29), New(2019, 9, 1)},
		{"exact four week february", NewMonth(2021, 2), 4, New(2021, 2, 1), New(2021, 2, 28)},
		{"six week may", NewMonth(2021, 5), 6, New(2021, 4, 26), New(2021, 6, 6)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var weeks []Week
			for w := range tt.month.Weeks() {
				weeks = append(weeks, w)
			}

			if len(weeks) != tt.wantWeeks {
				t.Fatalf("Weeks(%v) yielded %d weeks, want %d", tt.month, len(weeks), tt.wantWeeks)
			}
			if got := weeks[0].Monday(); got != tt.wantFirst {
				t.Errorf("first week Monday = %v, want %v", got, tt.wantFirst)
			}
			if got := weeks[len(weeks)-1].Sunday(); got != tt.wantSunday {
				t.Errorf("last week Sunday = %v, want %v", got, tt.wantSunday)
			}
		})
	}
}

func TestMonth_WeeksOverlap(t *testing.T) {
	month := NewMonth(2019, 8)

	for w := range month.Weeks() {
		monday, sunday := w.Monday(), w.Sunday()
		mondayIn := monday.Year() == 2019 && monday.Month() == 8
		sundayIn := sunday.Year() == 2019 && sunday.Month() == 8
		if !mondayIn && !sundayIn {
			t.Errorf("week %v does not overlap 2019-08", w)
		}
	}
}

func TestMonthsOfYear(t *testing.T) {
	months := MonthsOfYear(2014)

	if len(months) != 12 {
		t.Fatalf("MonthsOfYear(2014) returned %d months, want 12", len(months))
	}
	for i, m := range months {
		if m.Year() != 2014 || m.Month() != i+1 {
			t.Errorf("months[%d] = %v, want 2014-%02d", i, m, i+1)
		}
	}
}

func TestParseMonth(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Month
	}{
		{"plain month", "2019-08", NewMonth(2019, 8)},
		{"unpadded month", "2019-8", NewMonth(2019, 8)},
		{"normalizing month", "2019-13", NewMonth(2020, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMonth(tt.input)
			if err != nil {
				t.Fatalf("ParseMonth(%q) error = %v", tt.input, err)
			}

			if !got.Equal(tt.want) {
				t.Errorf("ParseMonth(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseMonth_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"one field", "2019"},
		{"three fields", "2019-08-19"},
		{"non numeric month", "2019-x"},
		{"non numeric year", "x-08"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseMonth(tt.input)
			if err == nil {
				t.Fatalf("ParseMonth(%q) expected error, got nil", tt.input)
			}

			if !errors.Is(err, ErrFormat) {
				t.Errorf("ParseMonth(%q) error = %v, want ErrFormat", tt.input, err)
			}
		})
	}
}

func TestMonth_Ordering(t *testing.T) {
	earlier := NewMonth(2019, 8)
	later := NewMonth(2019, 9)

	if !earlier.Before(later) {
		t.Error("Before = false, want true")
	}
	if !later.After(earlier) {
		t.Error("After = false, want true")
	}
	if !earlier.Equal(NewMonth(2019, 8)) {
		t.Error("Equal = false, want true")
	}
	if earlier.Before(earlier) || earlier.After(earlier) {
		t.Error("a month is not before or after itself")
	}
}

func TestMonth_String(t *testing.T) {
	tests := []struct {
		name  string
		month Month
		want  string
	}{
		{"padded month", NewMonth(2019, 8), "2019-08"},
		{"short year unpadded", NewMonth(999, 1), "999-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.month.String(); got != tt.want {
				t.Errorf("String(%v) = %q, want %q", tt.month, got, tt.want)
			}
		})
	}
}

func TestMonth_MarshalText(t *testing.T) {
	m := NewMonth(2019, 8)

	b, err := m.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() error = %v", err)
	}
	if string(b) != "2019-08" {
		t.Errorf("MarshalText() = %q, want %q", b, "2019-08")
	}

	var back Month
	if err := back.UnmarshalText(b); err != nil {
		t.Fatalf("UnmarshalText() error = %v", err)
	}
	if !back.Equal(m) {
		t.Errorf("UnmarshalText(MarshalText(%v)) = %v", m, back)
	}
}

func TestMonth_Period(t *testing.T) {
	m := NewMonth(2016, 2)

	if m.Start() != New(2016, 2, 1) {
		t.Errorf("Start() = %v, want 2016-02-01", m.Start())
	}
	if m.End() != New(2016, 2, 29) {
		t.Errorf("End() = %v, want 2016-02-29", m.End())
	}
}
