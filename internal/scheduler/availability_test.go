package scheduler

import (
	"testing"

	"github.com/mmynk/salonbook/internal/models"
)

func TestBookedSlots(t *testing.T) {
	appts := []models.Appointment{
		{ID: "a", Date: "2025-06-01", Time: "10:00"},
		{ID: "b", Date: "2025-06-01", Time: "11:30"},
		{ID: "c", Date: "2025-06-02", Time: "10:00"},
	}

	tests := []struct {
		name      string
		appts     []models.Appointment
		date      string
		excludeID string
		want      []string
	}{
		{
			name:  "single appointment",
			appts: appts[:1],
			date:  "2025-06-01",
			want:  []string{"10:00"},
		},
		{
			name:      "excluded appointment frees its own slot",
			appts:     appts[:1],
			date:      "2025-06-01",
			excludeID: "a",
			want:      nil,
		},
		{
			name:  "only the requested date counts",
			appts: appts,
			date:  "2025-06-01",
			want:  []string{"10:00", "11:30"},
		},
		{
			name:      "exclusion keeps other bookings",
			appts:     appts,
			date:      "2025-06-01",
			excludeID: "b",
			want:      []string{"10:00"},
		},
		{
			name:  "empty day",
			appts: appts,
			date:  "2025-06-03",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BookedSlots(tt.appts, tt.date, tt.excludeID)
			if len(got) != len(tt.want) {
				t.Fatalf("BookedSlots() = %v, want %v", got, tt.want)
			}
			for _, slot := range tt.want {
				if _, ok := got[slot]; !ok {
					t.Errorf("BookedSlots() missing %s", slot)
				}
			}
		})
	}
}

func TestBookedSlots_DuplicatesCollapse(t *testing.T) {
	appts := []models.Appointment{
		{ID: "a", Date: "2025-06-01", Time: "10:00"},
		{ID: "b", Date: "2025-06-01", Time: "10:00"},
	}
	got := BookedSlots(appts, "2025-06-01", "a")
	if len(got) != 1 {
		t.Errorf("BookedSlots() = %v, want one slot", got)
	}
}

func TestIsSlotFree(t *testing.T) {
	appts := []models.Appointment{{ID: "a", Date: "2025-06-01", Time: "10:00"}}

	if IsSlotFree(appts, "2025-06-01", "10:00", "") {
		t.Error("10:00 should be taken")
	}
	if !IsSlotFree(appts, "2025-06-01", "10:00", "a") {
		t.Error("10:00 should be free when editing appointment a")
	}
	if !IsSlotFree(appts, "2025-06-01", "10:30", "") {
		t.Error("10:30 should be free")
	}
}

func TestAvailableSlots(t *testing.T) {
	booked := map[string]struct{}{"07:30": {}}
	got := AvailableSlots([]string{"07:00", "07:30", "08:00"}, booked)

	want := []SlotOption{{"07:00", false}, {"07:30", true}, {"08:00", false}}
	if len(got) != len(want) {
		t.Fatalf("AvailableSlots() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("slot %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}
