package scheduler

import "fmt"

// CalendarCells is the fixed size of a month grid: 6 weeks of 7 days.
const CalendarCells = 42

// CalendarDay is one cell of the month grid.
type CalendarDay struct {
	Date           string // YYYY-MM-DD
	Day            int
	IsCurrentMonth bool
	IsToday        bool
	IsSelected     bool
}

var monthDays = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// IsLeapYear reports whether year is a Gregorian leap year.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in month (1-12) of year.
func DaysInMonth(year, month int) int {
	if month == 2 && IsLeapYear(year) {
		return 29
	}
	return monthDays[month-1]
}

// Weekday returns the day of the week of the given date, 0 for Sunday
// through 6 for Saturday (Sakamoto's method).
func Weekday(year, month, day int) int {
	offsets := [12]int{0, 3, 2, 5, 0, 3, 5, 1, 4, 6, 2, 4}
	if month < 3 {
		year--
	}
	w := (year + year/4 - year/100 + year/400 + offsets[month-1] + day) % 7
	if w < 0 {
		w += 7
	}
	return w
}

// FormatDate renders a date as YYYY-MM-DD.
func FormatDate(year, month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

// GenerateCalendarDays builds the 42 cells shown for year/month (month 1-12):
// the tail of the previous month up to the first weekday, every day of the
// month, then the head of the next month until the grid is full.
//
// IsToday and IsSelected compare the cell's date string with today and
// selectedDate; pass "" to flag nothing.
func GenerateCalendarDays(year, month int, selectedDate, today string) []CalendarDay {
	days := make([]CalendarDay, 0, CalendarCells)
	cell := func(y, m, d int, current bool) CalendarDay {
		date := FormatDate(y, m, d)
		return CalendarDay{
			Date:           date,
			Day:            d,
			IsCurrentMonth: current,
			IsToday:        date == today,
			IsSelected:     date == selectedDate,
		}
	}

	prevYear, prevMonth := year, month-1
	if prevMonth == 0 {
		prevYear, prevMonth = year-1, 12
	}
	nextYear, nextMonth := year, month+1
	if nextMonth == 13 {
		nextYear, nextMonth = year+1, 1
	}

	leading := Weekday(year, month, 1)
	prevLen := DaysInMonth(prevYear, prevMonth)
	for d := prevLen - leading + 1; d <= prevLen; d++ {
		days = append(days, cell(prevYear, prevMonth, d, false))
	}

	for d := 1; d <= DaysInMonth(year, month); d++ {
		days = append(days, cell(year, month, d, true))
	}

	for d := 1; len(days) < CalendarCells; d++ {
		days = append(days, cell(nextYear, nextMonth, d, false))
	}

	return days
}
