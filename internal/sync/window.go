package sync

import "time"

// LastNDays returns the last n calendar days (most recent first), each
// truncated to midnight UTC. Call buckets are keyed by UTC day, so the
// sync window uses the same boundary.
func LastNDays(n int, from time.Time) []time.Time {
	out := make([]time.Time, 0, n)
	d := truncateToDate(from)

	for len(out) < n {
		out = append(out, d)
		d = d.AddDate(0, 0, -1)
	}
	return out
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// dayBounds returns the inclusive [start, end] instant range covering one
// UTC day.
func dayBounds(day time.Time) (time.Time, time.Time) {
	start := truncateToDate(day)
	end := start.AddDate(0, 0, 1).Add(-time.Nanosecond)
	return start, end
}
