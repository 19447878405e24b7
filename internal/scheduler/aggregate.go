package scheduler

import (
	"strings"

	"github.com/mmynk/salonbook/internal/models"
)

// Summary is the revenue view for a selected date.
type Summary struct {
	DayCount   int     // appointments on the selected date
	DayTotal   float64 // revenue of the selected date
	MonthTotal float64 // revenue of the selected date's month
}

// Aggregate computes the day and month totals for selectedDate in one pass.
//
// Month membership is a prefix match on the first 7 characters of
// selectedDate ("YYYY-MM"), which relies on dates being fixed-width ISO
// strings. An appointment on selectedDate always counts toward both totals.
func Aggregate(appointments []models.Appointment, services []models.Service, selectedDate string) Summary {
	monthPrefix := selectedDate
	if len(monthPrefix) > 7 {
		monthPrefix = monthPrefix[:7]
	}

	var summary Summary
	for _, appt := range appointments {
		price := EffectivePrice(appt, services)
		if appt.Date == selectedDate {
			summary.DayCount++
			summary.DayTotal += price
		}
		if strings.HasPrefix(appt.Date, monthPrefix) {
			summary.MonthTotal += price
		}
	}
	return summary
}
