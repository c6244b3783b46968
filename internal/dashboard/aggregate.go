package dashboard

import (
	"github.com/google/uuid"

	"github.com/harborlight-health/clinic-platform/internal/clinic"
	"github.com/harborlight-health/clinic-platform/internal/scheduling"
)

// counters holds the raw, unrounded tallies produced by one aggregation pass.
type counters struct {
	todayCount         int
	yesterdayCount     int
	todayByStatus      AppointmentBreakdown
	completedThisMonth int
	completedLastMonth int
	patientsLastMonth  map[uuid.UUID]struct{}
	bookedSlots        [7]int // Monday..Sunday, in slot units
}

// aggregate classifies every appointment exactly once against all temporal and
// status buckets in a single forward pass, avoiding an independent scan per
// KPI.
func aggregate(appointments []scheduling.Appointment, win windows, hours clinic.WorkingHours) counters {
	c := counters{patientsLastMonth: make(map[uuid.UUID]struct{})}

	for _, appt := range appointments {
		if win.today.contains(appt.StartsAt) {
			c.todayCount++
			switch appt.Status {
			case scheduling.StatusConfirmed:
				c.todayByStatus.Confirmed++
			case scheduling.StatusPending:
				c.todayByStatus.Pending++
			case scheduling.StatusFinished:
				c.todayByStatus.Completed++
			case scheduling.StatusNoShow:
				c.todayByStatus.NoShow++
			case scheduling.StatusCanceled:
				c.todayByStatus.Canceled++
			}
		}

		if win.yesterday.contains(appt.StartsAt) {
			c.yesterdayCount++
		}

		if appt.Status == scheduling.StatusFinished {
			if win.thisMonth.contains(appt.StartsAt) {
				c.completedThisMonth++
			}
			if win.lastMonth.contains(appt.StartsAt) {
				c.completedLastMonth++
			}
		}

		if win.lastMonth.contains(appt.StartsAt) {
			c.patientsLastMonth[appt.PatientID] = struct{}{}
		}

		// An appointment belongs to at most one day of the week.
		for i := range win.week {
			if win.week[i].contains(appt.StartsAt) {
				c.bookedSlots[i] += hours.SlotsSpanned(appt.DurationMinutes)
				break
			}
		}
	}

	return c
}
