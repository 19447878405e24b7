package scheduler

import (
	"math"
	"testing"

	"github.com/mmynk/salonbook/internal/models"
)

func TestEffectivePrice(t *testing.T) {
	catalog := []models.Service{
		{ID: "s1", Name: "Cut", Price: 80},
		{ID: "s2", Name: "Color", Price: 120},
	}

	tests := []struct {
		name     string
		appt     models.Appointment
		services []models.Service
		want     float64
	}{
		{
			name:     "stored total wins regardless of service",
			appt:     models.Appointment{TotalPrice: 150, Services: models.Bundle{"s1"}},
			services: catalog,
			want:     150,
		},
		{
			name:     "stored total without catalog",
			appt:     models.Appointment{TotalPrice: 150},
			services: nil,
			want:     150,
		},
		{
			name:     "zero total falls back to primary service",
			appt:     models.Appointment{Services: models.Bundle{"s1"}},
			services: catalog,
			want:     80,
		},
		{
			name:     "fallback uses only the primary service",
			appt:     models.Appointment{Services: models.Bundle{"s2", "s1"}},
			services: catalog,
			want:     120,
		},
		{
			name:     "missing service resolves to zero",
			appt:     models.Appointment{Services: models.Bundle{"missing"}},
			services: nil,
			want:     0,
		},
		{
			name:     "empty bundle resolves to zero",
			appt:     models.Appointment{},
			services: catalog,
			want:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EffectivePrice(tt.appt, tt.services)
			if math.Abs(got-tt.want) > 0.001 {
				t.Errorf("EffectivePrice() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBundleTotal(t *testing.T) {
	catalog := []models.Service{
		{ID: "s1", Price: 80},
		{ID: "s2", Price: 45.5},
	}

	if got := BundleTotal(models.Bundle{"s1", "s2"}, catalog); math.Abs(got-125.5) > 0.001 {
		t.Errorf("BundleTotal() = %v, want 125.5", got)
	}
	if got := BundleTotal(models.Bundle{"s1", "gone"}, catalog); math.Abs(got-80) > 0.001 {
		t.Errorf("BundleTotal() with unknown id = %v, want 80", got)
	}
	if got := BundleTotal(nil, catalog); got != 0 {
		t.Errorf("BundleTotal(nil) = %v, want 0", got)
	}
}
