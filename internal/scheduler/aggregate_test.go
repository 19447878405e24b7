package scheduler

import (
	"math"
	"testing"

	"github.com/mmynk/salonbook/internal/models"
)

func TestAggregate(t *testing.T) {
	catalog := []models.Service{{ID: "s1", Price: 80}}

	tests := []struct {
		name         string
		appts        []models.Appointment
		selectedDate string
		want         Summary
	}{
		{
			name: "day is a subset of the month",
			appts: []models.Appointment{
				{Date: "2025-06-01", TotalPrice: 100},
				{Date: "2025-06-15", TotalPrice: 50},
				{Date: "2025-07-01", TotalPrice: 999},
			},
			selectedDate: "2025-06-01",
			want:         Summary{DayCount: 1, DayTotal: 100, MonthTotal: 150},
		},
		{
			name: "fallback prices are aggregated",
			appts: []models.Appointment{
				{Date: "2025-06-01", Services: models.Bundle{"s1"}},
				{Date: "2025-06-01", TotalPrice: 20},
				{Date: "2025-06-02", Services: models.Bundle{"deleted"}},
			},
			selectedDate: "2025-06-01",
			want:         Summary{DayCount: 2, DayTotal: 100, MonthTotal: 100},
		},
		{
			name: "same month of another year is excluded",
			appts: []models.Appointment{
				{Date: "2024-06-01", TotalPrice: 70},
				{Date: "2025-06-30", TotalPrice: 30},
			},
			selectedDate: "2025-06-10",
			want:         Summary{DayCount: 0, DayTotal: 0, MonthTotal: 30},
		},
		{
			name:         "no appointments",
			appts:        nil,
			selectedDate: "2025-06-10",
			want:         Summary{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Aggregate(tt.appts, catalog, tt.selectedDate)
			if got.DayCount != tt.want.DayCount {
				t.Errorf("DayCount = %d, want %d", got.DayCount, tt.want.DayCount)
			}
			if math.Abs(got.DayTotal-tt.want.DayTotal) > 0.001 {
				t.Errorf("DayTotal = %v, want %v", got.DayTotal, tt.want.DayTotal)
			}
			if math.Abs(got.MonthTotal-tt.want.MonthTotal) > 0.001 {
				t.Errorf("MonthTotal = %v, want %v", got.MonthTotal, tt.want.MonthTotal)
			}
		})
	}
}

func TestAggregate_Idempotent(t *testing.T) {
	appts := []models.Appointment{
		{Date: "2025-06-01", TotalPrice: 100},
		{Date: "2025-06-15", TotalPrice: 50},
	}
	first := Aggregate(appts, nil, "2025-06-01")
	second := Aggregate(appts, nil, "2025-06-01")
	if first != second {
		t.Errorf("Aggregate() not idempotent: %+v vs %+v", first, second)
	}
}
