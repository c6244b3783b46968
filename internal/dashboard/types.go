// Package dashboard computes the clinic operations dashboard: time-windowed
// KPIs with trend direction derived from appointment and patient snapshots.
// The computation is pure and deterministic; callers inject the reference
// instant and all configuration.
package dashboard

import (
	"time"

	"github.com/harborlight-health/clinic-platform/internal/clinic"
	"github.com/harborlight-health/clinic-platform/internal/scheduling"
)

// Trend classifies the direction of a metric relative to its previous period.
type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

// OccupancyStatus grades the weekly schedule occupancy rate.
type OccupancyStatus string

const (
	OccupancyExcellent      OccupancyStatus = "excellent"
	OccupancyGood           OccupancyStatus = "good"
	OccupancyNeedsAttention OccupancyStatus = "needs_attention"
)

// MetricWithTrend is a KPI value paired with its previous-period value and a
// trend classification. Recreated on every computation, never mutated.
type MetricWithTrend struct {
	Value          float64 `json:"value"`
	PreviousValue  float64 `json:"previous_value"`
	ChangePercent  float64 `json:"change_percent"`
	Trend          Trend   `json:"trend"`
	ComparisonText string  `json:"comparison_text"`
}

// RevenueMetrics extends MetricWithTrend with the inputs that produced it.
type RevenueMetrics struct {
	MetricWithTrend
	AverageTicket  float64 `json:"average_ticket"`
	CompletedCount int     `json:"completed_count"`
}

// OccupancyMetrics describes how much of the current week's bookable capacity
// is taken.
type OccupancyMetrics struct {
	Rate        int             `json:"rate"` // 0-100, rounded
	Target      int             `json:"target"`
	BookedSlots int             `json:"booked_slots"`
	TotalSlots  int             `json:"total_slots"`
	Status      OccupancyStatus `json:"status"`
}

// AppointmentBreakdown counts today's appointments by status. Statuses outside
// the five enumerated here (in-progress, arrived) contribute to the day total
// but not to the breakdown.
type AppointmentBreakdown struct {
	Confirmed int `json:"confirmed"`
	Pending   int `json:"pending"`
	Completed int `json:"completed"`
	NoShow    int `json:"no_show"`
	Canceled  int `json:"canceled"`
}

// Metrics is the dashboard snapshot: a fresh value on each computation with no
// identity or mutation API, disposed by the caller once superseded.
type Metrics struct {
	TodayAppointments MetricWithTrend      `json:"today_appointments"`
	ActivePatients    MetricWithTrend      `json:"active_patients"`
	Revenue           RevenueMetrics       `json:"revenue"`
	Occupancy         OccupancyMetrics     `json:"occupancy"`
	Breakdown         AppointmentBreakdown `json:"breakdown"`
	Loading           bool                 `json:"loading"`
}

// Input bundles everything one computation reads. The engine never mutates
// the slices it receives.
type Input struct {
	Appointments    []scheduling.Appointment
	Patients        []scheduling.Patient
	WorkingHours    clinic.WorkingHours
	AverageTicket   float64
	OccupancyTarget int
	Now             time.Time
}
