package jobs

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNextDueDate(t *testing.T) {
	tests := []struct {
		name   string
		anchor time.Time
		today  time.Time
		want   time.Time
	}{
		{
			name:   "anchor in the future is returned unchanged",
			anchor: date(2024, 3, 15),
			today:  date(2024, 3, 10),
			want:   date(2024, 3, 15),
		},
		{
			name:   "anchor equal to today is returned unchanged",
			anchor: date(2024, 3, 15),
			today:  date(2024, 3, 15),
			want:   date(2024, 3, 15),
		},
		{
			name:   "one month forward",
			anchor: date(2024, 5, 4),
			today:  date(2024, 6, 1),
			want:   date(2024, 6, 4),
		},
		{
			name:   "several years forward",
			anchor: date(2020, 1, 10),
			today:  date(2024, 6, 15),
			want:   date(2024, 7, 10),
		},
		{
			name:   "due today counts as next",
			anchor: date(2024, 1, 4),
			today:  date(2024, 6, 4),
			want:   date(2024, 6, 4),
		},
		{
			name:   "month-end anchor clamps to short february",
			anchor: date(2023, 1, 31),
			today:  date(2023, 2, 1),
			want:   date(2023, 2, 28),
		},
		{
			name:   "month-end anchor clamps to leap february",
			anchor: date(2024, 1, 31),
			today:  date(2024, 2, 1),
			want:   date(2024, 2, 29),
		},
		{
			name:   "clamp does not shift the cycle in later months",
			anchor: date(2024, 1, 31),
			today:  date(2024, 3, 1),
			want:   date(2024, 3, 31),
		},
		{
			name:   "time of day on today is ignored",
			anchor: date(2024, 5, 4),
			today:  time.Date(2024, 6, 4, 23, 30, 0, 0, time.UTC),
			want:   date(2024, 6, 4),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NextDueDate(tt.anchor, tt.today)
			if err != nil {
				t.Fatalf("NextDueDate() error = %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("NextDueDate() = %s, want %s", DateOnly(got), DateOnly(tt.want))
			}
			if got.Before(Midnight(tt.today)) {
				t.Errorf("NextDueDate() = %s is before today %s", DateOnly(got), DateOnly(tt.today))
			}
		})
	}
}

func TestNextDueDateIterationCap(t *testing.T) {
	anchor := date(1800, 1, 1)
	today := date(2024, 1, 1)

	if _, err := NextDueDate(anchor, today); err == nil {
		t.Fatal("expected error for anchor beyond the projection cap")
	}
}

func TestAddMonths(t *testing.T) {
	tests := []struct {
		name string
		from time.Time
		n    int
		want time.Time
	}{
		{"plain month", date(2024, 3, 15), 1, date(2024, 4, 15)},
		{"across year boundary", date(2024, 11, 20), 2, date(2025, 1, 20)},
		{"jan 31 to feb clamps", date(2023, 1, 31), 1, date(2023, 2, 28)},
		{"jan 31 two months keeps day 31", date(2023, 1, 31), 2, date(2023, 3, 31)},
		{"may 31 to june clamps to 30", date(2024, 5, 31), 1, date(2024, 6, 30)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AddMonths(tt.from, tt.n); !got.Equal(tt.want) {
				t.Errorf("AddMonths(%s, %d) = %s, want %s",
					DateOnly(tt.from), tt.n, DateOnly(got), DateOnly(tt.want))
			}
		})
	}
}
