package models

import "time"

// DailyBucket holds aggregated call metrics for one calendar day (UTC).
//
// Fields:
//   - Date: the day the bucket covers, truncated to midnight UTC.
//   - CallCount: number of calls that started on that day.
//   - TotalMinutes: sum of call durations in minutes.
//   - TotalCost: sum of call costs.
//   - AvgDurationMinutes: TotalMinutes / CallCount. Derived, never stored
//     independently; recomputed on every aggregation.
//
// This model is returned by the API when querying /api/v1/analytics/daily.
//
// swagger:model DailyBucket
type DailyBucket struct {
	Date               time.Time `json:"date" example:"2024-01-01T00:00:00Z"`
	CallCount          int       `json:"call_count" example:"42"`
	TotalMinutes       float64   `json:"total_minutes" example:"103.5"`
	TotalCost          float64   `json:"total_cost" example:"12.75"`
	AvgDurationMinutes float64   `json:"avg_duration_minutes" example:"2.46"`
}

// Summary holds window-level totals across all calls in an aggregation
// window. It backs the dashboard-style summary tiles (calls, minutes,
// cost, average duration).
//
// swagger:model Summary
type Summary struct {
	CallCount          int     `json:"call_count" example:"317"`
	TotalMinutes       float64 `json:"total_minutes" example:"812.4"`
	TotalCost          float64 `json:"total_cost" example:"96.20"`
	AvgDurationMinutes float64 `json:"avg_duration_minutes" example:"2.56"`
}
