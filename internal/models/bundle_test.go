package models

import (
	"errors"
	"testing"
)

func TestBundleToggle(t *testing.T) {
	tests := []struct {
		name    string
		start   Bundle
		toggle  string
		want    Bundle
		wantErr error
	}{
		{
			name:   "add to empty bundle",
			start:  nil,
			toggle: "s1",
			want:   Bundle{"s1"},
		},
		{
			name:   "append keeps order",
			start:  Bundle{"s1", "s2"},
			toggle: "s3",
			want:   Bundle{"s1", "s2", "s3"},
		},
		{
			name:   "remove primary promotes next",
			start:  Bundle{"s1", "s2", "s3"},
			toggle: "s1",
			want:   Bundle{"s2", "s3"},
		},
		{
			name:   "remove last member leaves empty bundle",
			start:  Bundle{"s1"},
			toggle: "s1",
			want:   Bundle{},
		},
		{
			name:    "full bundle rejects new member",
			start:   Bundle{"s1", "s2", "s3", "s4", "s5"},
			toggle:  "s6",
			want:    Bundle{"s1", "s2", "s3", "s4", "s5"},
			wantErr: ErrBundleFull,
		},
		{
			name:   "full bundle still allows removal",
			start:  Bundle{"s1", "s2", "s3", "s4", "s5"},
			toggle: "s3",
			want:   Bundle{"s1", "s2", "s4", "s5"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.start.Toggle(tt.toggle)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Toggle(%q) error = %v, want %v", tt.toggle, err, tt.wantErr)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Toggle(%q) = %v, want %v", tt.toggle, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("Toggle(%q) = %v, want %v", tt.toggle, got, tt.want)
				}
			}
		})
	}
}

func TestBundleToggleDoesNotMutateReceiver(t *testing.T) {
	base := make(Bundle, 2, 5)
	base[0], base[1] = "s1", "s2"

	added, err := base.Toggle("s3")
	if err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}
	removed, _ := base.Toggle("s1")

	if len(base) != 2 || base[0] != "s1" || base[1] != "s2" {
		t.Errorf("receiver changed: %v", base)
	}
	if added.Primary() != "s1" || added.Len() != 3 {
		t.Errorf("added = %v", added)
	}
	if removed.Primary() != "s2" {
		t.Errorf("removed primary = %q, want s2", removed.Primary())
	}
}

func TestBundlePrimary(t *testing.T) {
	if got := (Bundle{}).Primary(); got != "" {
		t.Errorf("empty bundle primary = %q, want empty", got)
	}
	appt := Appointment{Services: Bundle{"color", "cut"}}
	if got := appt.ServiceID(); got != "color" {
		t.Errorf("ServiceID() = %q, want color", got)
	}
}

func TestBundleValidate(t *testing.T) {
	tests := []struct {
		name    string
		bundle  Bundle
		wantErr bool
	}{
		{"single service", Bundle{"s1"}, false},
		{"five services", Bundle{"s1", "s2", "s3", "s4", "s5"}, false},
		{"empty", Bundle{}, true},
		{"six services", Bundle{"s1", "s2", "s3", "s4", "s5", "s6"}, true},
		{"duplicate", Bundle{"s1", "s1"}, true},
		{"blank id", Bundle{"s1", ""}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.bundle.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
