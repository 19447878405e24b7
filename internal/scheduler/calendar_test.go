package scheduler

import (
	"strings"
	"testing"
)

func TestGenerateCalendarDays_Shape(t *testing.T) {
	for year := 2023; year <= 2026; year++ {
		for month := 1; month <= 12; month++ {
			days := GenerateCalendarDays(year, month, "", "")
			if len(days) != CalendarCells {
				t.Fatalf("%d-%02d: got %d cells, want %d", year, month, len(days), CalendarCells)
			}

			// Exactly one contiguous run of current-month cells.
			runs, current := 0, 0
			for i, d := range days {
				if d.IsCurrentMonth {
					current++
					if i == 0 || !days[i-1].IsCurrentMonth {
						runs++
					}
				}
			}
			if runs != 1 {
				t.Errorf("%d-%02d: got %d current-month runs, want 1", year, month, runs)
			}
			if want := DaysInMonth(year, month); current != want {
				t.Errorf("%d-%02d: got %d current-month cells, want %d", year, month, current, want)
			}
		}
	}
}

func TestGenerateCalendarDays_LeapFebruary(t *testing.T) {
	tests := []struct {
		year int
		want int
	}{
		{2024, 29},
		{2023, 28},
		{2000, 29},
		{1900, 28},
	}

	for _, tt := range tests {
		days := GenerateCalendarDays(tt.year, 2, "", "")
		current := 0
		for _, d := range days {
			if d.IsCurrentMonth {
				current++
			}
		}
		if current != tt.want {
			t.Errorf("February %d: got %d days, want %d", tt.year, current, tt.want)
		}
	}
}

func TestGenerateCalendarDays_YearBoundaries(t *testing.T) {
	t.Run("January leads with December of previous year", func(t *testing.T) {
		days := GenerateCalendarDays(2025, 1, "", "")
		// 2025-01-01 is a Wednesday: three leading cells.
		if days[0].Date != "2024-12-29" {
			t.Errorf("first cell = %s, want 2024-12-29", days[0].Date)
		}
		for _, d := range days[:3] {
			if d.IsCurrentMonth || !strings.HasPrefix(d.Date, "2024-12-") {
				t.Errorf("leading cell %+v should be December 2024", d)
			}
		}
		if days[3].Date != "2025-01-01" || days[3].Day != 1 {
			t.Errorf("cell 3 = %+v, want 2025-01-01", days[3])
		}
	})

	t.Run("December trails with January of next year", func(t *testing.T) {
		days := GenerateCalendarDays(2025, 12, "", "")
		// 2025-12-01 is a Monday: 1 leading + 31 days + 10 trailing.
		trailing := days[32:]
		if len(trailing) != 10 {
			t.Fatalf("got %d trailing cells, want 10", len(trailing))
		}
		for i, d := range trailing {
			if d.IsCurrentMonth || d.Date != FormatDate(2026, 1, i+1) {
				t.Errorf("trailing cell %d = %+v, want %s", i, d, FormatDate(2026, 1, i+1))
			}
		}
	})

	t.Run("month starting on Sunday has no leading cells", func(t *testing.T) {
		days := GenerateCalendarDays(2025, 6, "", "")
		if days[0].Date != "2025-06-01" || !days[0].IsCurrentMonth {
			t.Errorf("first cell = %+v, want 2025-06-01", days[0])
		}
	})
}

func TestGenerateCalendarDays_Flags(t *testing.T) {
	days := GenerateCalendarDays(2025, 6, "2025-06-15", "2025-06-03")

	var today, selected []string
	for _, d := range days {
		if d.IsToday {
			today = append(today, d.Date)
		}
		if d.IsSelected {
			selected = append(selected, d.Date)
		}
	}
	if len(today) != 1 || today[0] != "2025-06-03" {
		t.Errorf("today cells = %v, want [2025-06-03]", today)
	}
	if len(selected) != 1 || selected[0] != "2025-06-15" {
		t.Errorf("selected cells = %v, want [2025-06-15]", selected)
	}

	// Flags also apply to adjacent-month cells.
	days = GenerateCalendarDays(2025, 7, "2025-06-30", "2025-06-30")
	if !days[1].IsToday || !days[1].IsSelected || days[1].IsCurrentMonth {
		t.Errorf("cell %+v should be today and selected outside the month", days[1])
	}
}

func TestWeekday(t *testing.T) {
	tests := []struct {
		year, month, day int
		want             int
	}{
		{2025, 1, 1, 3},  // Wednesday
		{2025, 6, 1, 0},  // Sunday
		{2024, 2, 29, 4}, // Thursday
		{2000, 1, 1, 6},  // Saturday
		{2026, 10, 18, 0},
	}
	for _, tt := range tests {
		if got := Weekday(tt.year, tt.month, tt.day); got != tt.want {
			t.Errorf("Weekday(%d, %d, %d) = %d, want %d", tt.year, tt.month, tt.day, got, tt.want)
		}
	}
}

func TestGenerateCalendarDays_Idempotent(t *testing.T) {
	a := GenerateCalendarDays(2024, 3, "2024-03-10", "2024-03-01")
	b := GenerateCalendarDays(2024, 3, "2024-03-10", "2024-03-01")
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("cell %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}
