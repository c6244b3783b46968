package dashboard

import "math"

const (
	periodYesterday = "yesterday"
	periodLastMonth = "last month"
)

// Occupancy status thresholds, in rounded percentage points.
const (
	occupancyExcellentPct = 80
	occupancyGoodPct      = 60
)

// Compute produces a dashboard snapshot from one pass over the input
// appointments. It is pure: identical inputs yield identical snapshots, no
// state is shared between invocations, and the input collections are never
// mutated.
func Compute(in Input) Metrics {
	win := resolveWindows(in.Now)
	c := aggregate(in.Appointments, win, in.WorkingHours)

	revenueCurrent := float64(c.completedThisMonth) * in.AverageTicket
	revenuePrevious := float64(c.completedLastMonth) * in.AverageTicket

	return Metrics{
		TodayAppointments: trendBetween(float64(c.todayCount), float64(c.yesterdayCount), periodYesterday),
		ActivePatients:    trendBetween(float64(len(in.Patients)), float64(len(c.patientsLastMonth)), periodLastMonth),
		Revenue: RevenueMetrics{
			MetricWithTrend: trendBetween(revenueCurrent, revenuePrevious, periodLastMonth),
			AverageTicket:   in.AverageTicket,
			CompletedCount:  c.completedThisMonth,
		},
		Occupancy: assembleOccupancy(c, in, win),
		Breakdown: c.todayByStatus,
	}
}

func assembleOccupancy(c counters, in Input, win windows) OccupancyMetrics {
	var booked, total int
	for i := range win.week {
		capacity := in.WorkingHours.SlotsForDay(win.week[i].start)
		total += capacity
		// Overbooked days cannot push the rate past 100.
		booked += min(c.bookedSlots[i], capacity)
	}

	rate := 0
	if total > 0 {
		rate = int(math.Round(float64(booked) / float64(total) * 100))
	}

	status := OccupancyNeedsAttention
	switch {
	case rate >= occupancyExcellentPct:
		status = OccupancyExcellent
	case rate >= occupancyGoodPct:
		status = OccupancyGood
	}

	return OccupancyMetrics{
		Rate:        rate,
		Target:      in.OccupancyTarget,
		BookedSlots: booked,
		TotalSlots:  total,
		Status:      status,
	}
}
