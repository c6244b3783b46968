package clinic

import (
	"testing"
	"time"
)

func TestSlotsForDay(t *testing.T) {
	hours := DefaultWorkingHours()

	monday := time.Date(2025, 12, 8, 0, 0, 0, 0, time.UTC)
	if got := hours.SlotsForDay(monday); got != 20 {
		t.Errorf("SlotsForDay(Monday) = %d, want 20", got)
	}

	saturday := time.Date(2025, 12, 13, 0, 0, 0, 0, time.UTC)
	if got := hours.SlotsForDay(saturday); got != 0 {
		t.Errorf("SlotsForDay(Saturday) = %d, want 0", got)
	}
}

func TestSlotsForDayDegenerateConfig(t *testing.T) {
	tests := []struct {
		name  string
		hours WorkingHours
	}{
		{"zero slot duration", WorkingHours{StartHour: 8, EndHour: 18, WorkDays: []time.Weekday{time.Monday}}},
		{"end before start", WorkingHours{StartHour: 18, EndHour: 8, SlotDurationMinutes: 30, WorkDays: []time.Weekday{time.Monday}}},
		{"no work days", WorkingHours{StartHour: 8, EndHour: 18, SlotDurationMinutes: 30}},
	}
	monday := time.Date(2025, 12, 8, 0, 0, 0, 0, time.UTC)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.hours.SlotsForDay(monday); got != 0 {
				t.Errorf("SlotsForDay = %d, want 0", got)
			}
		})
	}
}

func TestSlotsSpanned(t *testing.T) {
	hours := DefaultWorkingHours()

	tests := []struct {
		minutes int
		want    int
	}{
		{30, 1},
		{31, 2},
		{60, 2},
		{45, 2},
		{90, 3},
		{0, 0},
		{-15, 0},
	}
	for _, tt := range tests {
		if got := hours.SlotsSpanned(tt.minutes); got != tt.want {
			t.Errorf("SlotsSpanned(%d) = %d, want %d", tt.minutes, got, tt.want)
		}
	}
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings("org-1")

	if s.OrgID != "org-1" {
		t.Errorf("OrgID = %q, want 'org-1'", s.OrgID)
	}
	if s.WorkingHours.StartHour != 8 || s.WorkingHours.EndHour != 18 {
		t.Errorf("working hours = %d-%d, want 8-18", s.WorkingHours.StartHour, s.WorkingHours.EndHour)
	}
	if s.WorkingHours.SlotDurationMinutes != 30 {
		t.Errorf("slot duration = %d, want 30", s.WorkingHours.SlotDurationMinutes)
	}
	if s.WorkingHours.IsWorkDay(time.Saturday) || s.WorkingHours.IsWorkDay(time.Sunday) {
		t.Error("weekend should not be a work day by default")
	}
	if !s.WorkingHours.IsWorkDay(time.Wednesday) {
		t.Error("Wednesday should be a work day by default")
	}
}

func TestLocationFallsBackToUTC(t *testing.T) {
	s := DefaultSettings("org-1")
	s.Timezone = "Not/AZone"
	if got := s.Location(); got != time.UTC {
		t.Errorf("Location() = %v, want UTC", got)
	}

	var nilSettings *Settings
	if got := nilSettings.Location(); got != time.UTC {
		t.Errorf("nil Location() = %v, want UTC", got)
	}
}
