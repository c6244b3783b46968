// Package clinic provides per-clinic configuration and its persistence.
package clinic

import (
	"time"
)

// WorkingHours describes when the clinic takes appointments and how bookable
// time is sliced into slots. Values are immutable for the duration of one
// dashboard computation.
type WorkingHours struct {
	StartHour           int            `json:"start_hour"` // 24-hour clock, e.g. 8
	EndHour             int            `json:"end_hour"`   // exclusive, e.g. 18
	SlotDurationMinutes int            `json:"slot_duration_minutes"`
	WorkDays            []time.Weekday `json:"work_days"`
}

// DefaultWorkingHours returns the observed clinic default: 08:00-18:00,
// 30-minute slots, Monday through Friday.
func DefaultWorkingHours() WorkingHours {
	return WorkingHours{
		StartHour:           8,
		EndHour:             18,
		SlotDurationMinutes: 30,
		WorkDays: []time.Weekday{
			time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday,
		},
	}
}

// IsWorkDay reports whether the clinic is open on the given weekday.
func (w WorkingHours) IsWorkDay(day time.Weekday) bool {
	for _, d := range w.WorkDays {
		if d == day {
			return true
		}
	}
	return false
}

// SlotsForDay returns the number of bookable slots on the given calendar day:
// zero on non-working days, otherwise the working span divided into slots.
func (w WorkingHours) SlotsForDay(day time.Time) int {
	if !w.IsWorkDay(day.Weekday()) {
		return 0
	}
	if w.SlotDurationMinutes <= 0 || w.EndHour <= w.StartHour {
		return 0
	}
	return (w.EndHour - w.StartHour) * (60 / w.SlotDurationMinutes)
}

// SlotsSpanned returns how many slots an appointment of the given duration
// occupies, rounding partial slots up.
func (w WorkingHours) SlotsSpanned(durationMinutes int) int {
	if w.SlotDurationMinutes <= 0 || durationMinutes <= 0 {
		return 0
	}
	return (durationMinutes + w.SlotDurationMinutes - 1) / w.SlotDurationMinutes
}

// Settings holds clinic-specific configuration.
type Settings struct {
	OrgID              string       `json:"org_id"`
	Name               string       `json:"name"`
	Timezone           string       `json:"timezone"` // e.g. "America/New_York"
	WorkingHours       WorkingHours `json:"working_hours"`
	AverageTicketCents int64        `json:"average_ticket_cents"`
	OccupancyTargetPct int          `json:"occupancy_target_pct"`
}

// DefaultSettings returns a sensible default configuration.
func DefaultSettings(orgID string) *Settings {
	return &Settings{
		OrgID:              orgID,
		Name:               "Clinic",
		Timezone:           "America/New_York",
		WorkingHours:       DefaultWorkingHours(),
		AverageTicketCents: 35000,
		OccupancyTargetPct: 75,
	}
}

// Location resolves the clinic timezone, falling back to UTC when the
// configured zone name is unknown.
func (s *Settings) Location() *time.Location {
	if s == nil || s.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
