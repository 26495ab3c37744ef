package models

import "time"

// CallRecord represents a single voice call fetched from the upstream
// voice API. The record is transient: it is fetched, aggregated, and
// discarded per request, or persisted as-is by the sync pipeline.
//
// Fields:
//   - ID: opaque unique identifier assigned by the upstream API.
//   - OccurredAt: call start timestamp (UTC).
//   - DurationSeconds: total call duration in seconds (>= 0).
//   - Cost: call cost in the account currency (>= 0).
//   - EndReason: free-text classification of how the call ended
//     (e.g., "customer-ended-call", "assistant-hangup", "error").
type CallRecord struct {
	ID              string
	OccurredAt      time.Time
	DurationSeconds float64
	Cost            float64
	EndReason       string
}
