package dashboard

import "time"

// window is an inclusive [start, end] span of instants.
type window struct {
	start time.Time
	end   time.Time
}

func (w window) contains(t time.Time) bool {
	return !t.Before(w.start) && !t.After(w.end)
}

// windows holds every calendar boundary one computation needs, resolved once
// per invocation and reused across all appointments.
type windows struct {
	today     window
	yesterday window
	thisMonth window // month-to-date: ends at the reference instant
	lastMonth window // the full prior calendar month
	week      [7]window
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// resolveWindows derives all calendar boundaries from the reference instant.
// Any valid instant produces valid boundaries. The week spans Monday through
// Sunday of the week containing now.
func resolveWindows(now time.Time) windows {
	yesterday := now.AddDate(0, 0, -1)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	lastMonthStart := monthStart.AddDate(0, -1, 0)

	w := windows{
		today:     window{start: startOfDay(now), end: endOfDay(now)},
		yesterday: window{start: startOfDay(yesterday), end: endOfDay(yesterday)},
		thisMonth: window{start: monthStart, end: now},
		lastMonth: window{start: lastMonthStart, end: monthStart.Add(-time.Nanosecond)},
	}

	// Monday-start week offset.
	offset := (int(now.Weekday()) + 6) % 7
	weekStart := startOfDay(now).AddDate(0, 0, -offset)
	for i := 0; i < 7; i++ {
		day := weekStart.AddDate(0, 0, i)
		w.week[i] = window{start: day, end: endOfDay(day)}
	}

	return w
}
