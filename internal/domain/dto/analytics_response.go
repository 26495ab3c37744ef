package dto

import "time"

// DailyBucketResponse represents one element of the JSON array returned
// by the GET /api/v1/analytics/daily endpoint.
//
// Fields match the API contract and may differ from internal domain models.
// This ensures loose coupling between the API surface and business logic.
type DailyBucketResponse struct {
	Date               string  `json:"date" example:"2024-01-01"`               // Calendar day (UTC), YYYY-MM-DD
	CallCount          int     `json:"call_count" example:"42"`                 // Calls started on that day
	TotalMinutes       float64 `json:"total_minutes" example:"103.5"`           // Sum of durations in minutes
	TotalCost          float64 `json:"total_cost" example:"12.75"`              // Sum of call costs
	AvgDurationMinutes float64 `json:"avg_duration_minutes" example:"2.46"`     // TotalMinutes / CallCount
}

// SummaryResponse represents the JSON structure returned by the
// GET /api/v1/analytics/summary endpoint.
type SummaryResponse struct {
	Start              string  `json:"start" example:"2024-01-01"`          // Window start (YYYY-MM-DD)
	End                string  `json:"end" example:"2024-01-07"`            // Window end (YYYY-MM-DD)
	CallCount          int     `json:"call_count" example:"317"`            // Total calls in the window
	TotalMinutes       float64 `json:"total_minutes" example:"812.4"`       // Total minutes in the window
	TotalCost          float64 `json:"total_cost" example:"96.20"`          // Total cost in the window
	AvgDurationMinutes float64 `json:"avg_duration_minutes" example:"2.56"` // Window-level average duration
}

// CallResponse represents one element of the JSON array returned by the
// GET /api/v1/calls endpoint.
type CallResponse struct {
	ID              string    `json:"id" example:"call_9f3c2a"`                    // Upstream call identifier
	OccurredAt      time.Time `json:"occurred_at" example:"2024-01-01T10:00:00Z"`  // Call start (UTC)
	DurationSeconds float64   `json:"duration_seconds" example:"120"`              // Duration in seconds
	Cost            float64   `json:"cost" example:"1.50"`                         // Call cost
	EndReason       string    `json:"end_reason" example:"customer-ended-call"`    // How the call ended
}
