package analytics

import (
	"sort"
	"time"

	"github.com/callpulse/callpulse/internal/domain/models"
)

// AggregateDaily groups call records into per-day buckets and returns them
// sorted ascending by date.
//
// Behavior:
//   - Bucket key is OccurredAt truncated to midnight UTC, so bucket
//     boundaries are deterministic regardless of the record's zone offset.
//   - One pass over records accumulates CallCount, TotalMinutes
//     (DurationSeconds/60), and TotalCost per bucket, in input order.
//   - AvgDurationMinutes is set in a final pass as TotalMinutes/CallCount.
//   - Days with no records produce no bucket (sparse output; gap-filling
//     is the consumer's concern).
//   - Records with a zero OccurredAt or a negative duration or cost are
//     skipped. Callers are expected to supply well-formed records; the
//     skip is a data-quality guard, not validation.
//
// start and end are the advisory bounds the caller used to scope the
// fetch. They are not re-applied here: records are assumed to fall
// within [start, end].
//
// The function is pure: no I/O, no shared state, deterministic for
// identical inputs.
func AggregateDaily(records []models.CallRecord, start, end time.Time) []models.DailyBucket {
	_ = start
	_ = end

	byDay := make(map[time.Time]*models.DailyBucket)

	for _, rec := range records {
		if rec.OccurredAt.IsZero() || rec.DurationSeconds < 0 || rec.Cost < 0 {
			continue
		}

		day := truncateToDayUTC(rec.OccurredAt)
		b, ok := byDay[day]
		if !ok {
			b = &models.DailyBucket{Date: day}
			byDay[day] = b
		}
		b.CallCount++
		b.TotalMinutes += rec.DurationSeconds / 60
		b.TotalCost += rec.Cost
	}

	buckets := make([]models.DailyBucket, 0, len(byDay))
	for _, b := range byDay {
		if b.CallCount > 0 {
			b.AvgDurationMinutes = b.TotalMinutes / float64(b.CallCount)
		}
		buckets = append(buckets, *b)
	}

	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Date.Before(buckets[j].Date)
	})

	return buckets
}

// Summarize collapses the window's buckets into window-level totals.
// The average is recomputed from the totals, never averaged across
// buckets.
func Summarize(buckets []models.DailyBucket) models.Summary {
	var s models.Summary
	for _, b := range buckets {
		s.CallCount += b.CallCount
		s.TotalMinutes += b.TotalMinutes
		s.TotalCost += b.TotalCost
	}
	if s.CallCount > 0 {
		s.AvgDurationMinutes = s.TotalMinutes / float64(s.CallCount)
	}
	return s
}

func truncateToDayUTC(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
