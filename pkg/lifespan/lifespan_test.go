package lifespan

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestWholeWeeksBetween(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"same day", date(2024, 1, 1), date(2024, 1, 1), 0},
		{"six days is zero weeks", date(2024, 1, 1), date(2024, 1, 7), 0},
		{"seven days is one week", date(2024, 1, 1), date(2024, 1, 8), 1},
		{"thirteen days still one week", date(2024, 1, 1), date(2024, 1, 14), 1},
		{"fourteen days is two weeks", date(2024, 1, 1), date(2024, 1, 15), 2},
		{"end before start clamps to zero", date(2024, 1, 15), date(2024, 1, 1), 0},
		{"century span", date(1972, 11, 15), date(2072, 11, 15), 5217},
		{"across leap day", date(2024, 2, 26), date(2024, 3, 4), 1},
		{"four centuries", date(1600, 1, 1), date(2000, 1, 1), 20871},
		{"five centuries", date(1972, 11, 15), date(2472, 11, 15), 26088},
		{"two millennia", date(1000, 1, 1), date(3000, 1, 1), 104355},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WholeWeeksBetween(tt.start, tt.end))
		})
	}
}

func TestWholeWeeksBetweenIgnoresTimeOfDay(t *testing.T) {
	start := time.Date(2024, 1, 1, 23, 59, 0, 0, time.UTC)
	end := time.Date(2024, 1, 8, 0, 1, 0, 0, time.UTC)
	assert.Equal(t, 1, WholeWeeksBetween(start, end))
}

func TestWholeWeeksBetweenIgnoresZone(t *testing.T) {
	warsaw, err := time.LoadLocation("Europe/Warsaw")
	if err != nil {
		t.Skipf("timezone database unavailable: %v", err)
	}
	start := time.Date(2024, 1, 1, 10, 0, 0, 0, warsaw)
	end := time.Date(2024, 1, 15, 1, 0, 0, 0, time.UTC)
	assert.Equal(t, 2, WholeWeeksBetween(start, end))
}

// Spans past ~292 years overflow a time.Duration; the day count must
// stay exact well beyond that.
func TestWholeWeeksBetweenLongSpans(t *testing.T) {
	start := date(1600, 1, 1)
	for _, weeks := range []int{1, 5217, 20871, 104355, 500000} {
		end := start.AddDate(0, 0, weeks*daysPerWeek)
		assert.Equal(t, weeks, WholeWeeksBetween(start, end), "%d whole weeks", weeks)

		end = end.AddDate(0, 0, daysPerWeek-1)
		assert.Equal(t, weeks, WholeWeeksBetween(start, end), "%d weeks plus six days", weeks)
	}
}

func TestCompute(t *testing.T) {
	birth := date(1972, 11, 15)
	death := date(2072, 11, 15)

	tests := []struct {
		name  string
		today time.Time
		want  WeekCounts
	}{
		{
			name:  "today at birth",
			today: birth,
			want:  WeekCounts{Lived: 0, Remaining: 5217, Total: 5217},
		},
		{
			name:  "today at death",
			today: death,
			want:  WeekCounts{Lived: 5217, Remaining: 0, Total: 5217},
		},
		{
			name:  "one week in",
			today: date(1972, 11, 22),
			want:  WeekCounts{Lived: 1, Remaining: 5216, Total: 5217},
		},
		{
			name:  "today before birth",
			today: date(1950, 1, 1),
			want:  WeekCounts{Lived: 0, Remaining: 6411, Total: 6411},
		},
		{
			name:  "today after death",
			today: date(2100, 1, 1),
			want:  WeekCounts{Lived: 6633, Remaining: 0, Total: 6633},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(birth, death, tt.today)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got.Total, got.Lived+got.Remaining)
		})
	}
}

func TestComputeDeathBeforeBirth(t *testing.T) {
	got := Compute(date(2072, 11, 15), date(1972, 11, 15), date(2000, 1, 1))
	assert.Equal(t, WeekCounts{Lived: 0, Remaining: 0, Total: 0}, got)
}

func TestComputeTotalInvariant(t *testing.T) {
	birth := date(1990, 6, 1)
	death := date(2080, 6, 1)
	for days := 0; days < 400; days += 13 {
		today := birth.AddDate(0, 0, days)
		got := Compute(birth, death, today)
		if got.Lived+got.Remaining != got.Total {
			t.Fatalf("lived %d + remaining %d != total %d at offset %d days",
				got.Lived, got.Remaining, got.Total, days)
		}
	}
}
