package scheduler

import "github.com/mmynk/salonbook/internal/models"

// EffectivePrice returns the value attributed to an appointment.
// A positive TotalPrice is the booking-time snapshot and wins. Otherwise the
// price of the primary service is used, or 0 if that service no longer exists.
func EffectivePrice(appt models.Appointment, services []models.Service) float64 {
	if appt.TotalPrice > 0 {
		return appt.TotalPrice
	}
	primary := appt.ServiceID()
	for _, s := range services {
		if s.ID == primary {
			return s.Price
		}
	}
	return 0
}

// BundleTotal sums the current catalog prices of the services in bundle.
// Unknown IDs contribute nothing.
func BundleTotal(bundle models.Bundle, services []models.Service) float64 {
	prices := make(map[string]float64, len(services))
	for _, s := range services {
		prices[s.ID] = s.Price
	}
	var total float64
	for _, id := range bundle {
		total += prices[id]
	}
	return total
}
