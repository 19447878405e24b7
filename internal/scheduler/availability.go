package scheduler

import "github.com/mmynk/salonbook/internal/models"

// SlotOption is one entry of the slot picker.
type SlotOption struct {
	Time   string
	Booked bool
}

// BookedSlots returns the set of times already taken on date.
// The appointment with ID excludeID is ignored so an appointment being
// edited does not block its own slot; pass "" to ignore nothing.
func BookedSlots(appointments []models.Appointment, date, excludeID string) map[string]struct{} {
	booked := make(map[string]struct{})
	for _, appt := range appointments {
		if appt.Date != date {
			continue
		}
		if excludeID != "" && appt.ID == excludeID {
			continue
		}
		booked[appt.Time] = struct{}{}
	}
	return booked
}

// IsSlotFree reports whether time on date is not taken by any appointment
// other than excludeID.
func IsSlotFree(appointments []models.Appointment, date, time, excludeID string) bool {
	_, taken := BookedSlots(appointments, date, excludeID)[time]
	return !taken
}

// AvailableSlots marks each option of the grid that appears in booked.
// Grid order is preserved.
func AvailableSlots(options []string, booked map[string]struct{}) []SlotOption {
	out := make([]SlotOption, len(options))
	for i, t := range options {
		_, taken := booked[t]
		out[i] = SlotOption{Time: t, Booked: taken}
	}
	return out
}
