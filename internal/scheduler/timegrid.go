// Package scheduler holds the pure scheduling computations: the slot grid,
// the month calendar, slot availability, appointment pricing and revenue
// aggregation. Nothing here does I/O or reads the clock.
package scheduler

import "fmt"

// WorkingHours describes the bookable part of a day.
// Slots start at every StepMinutes within each hour from OpenHour to
// CloseHour, both hours included.
type WorkingHours struct {
	OpenHour    int
	CloseHour   int
	StepMinutes int
}

// DefaultWorkingHours is 07:00 to 19:30 in 30 minute steps.
var DefaultWorkingHours = WorkingHours{OpenHour: 7, CloseHour: 19, StepMinutes: 30}

// Validate reports whether the working hours produce a usable grid.
func (w WorkingHours) Validate() error {
	if w.OpenHour < 0 || w.CloseHour > 23 || w.OpenHour > w.CloseHour {
		return fmt.Errorf("invalid working hours %d-%d", w.OpenHour, w.CloseHour)
	}
	if w.StepMinutes <= 0 || w.StepMinutes > 60 || 60%w.StepMinutes != 0 {
		return fmt.Errorf("slot step must divide an hour, got %d minutes", w.StepMinutes)
	}
	return nil
}

// GenerateTimeOptions returns the default slot grid: 26 "HH:MM" values from
// 07:00 to 19:30.
func GenerateTimeOptions() []string {
	return GenerateSlots(DefaultWorkingHours)
}

// GenerateSlots returns the ordered "HH:MM" slots for the given working hours.
// Invalid hours yield an empty grid.
func GenerateSlots(w WorkingHours) []string {
	if err := w.Validate(); err != nil {
		return nil
	}
	slots := make([]string, 0, (w.CloseHour-w.OpenHour+1)*(60/w.StepMinutes))
	for hour := w.OpenHour; hour <= w.CloseHour; hour++ {
		for minute := 0; minute < 60; minute += w.StepMinutes {
			slots = append(slots, fmt.Sprintf("%02d:%02d", hour, minute))
		}
	}
	return slots
}
