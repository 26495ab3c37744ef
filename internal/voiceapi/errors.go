package voiceapi

import "fmt"

// UpstreamError represents a non-2xx response from the voice backend.
type UpstreamError struct {
	StatusCode int
	Body       []byte
	URL        string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("voice api error: status %d from %s", e.StatusCode, e.URL)
}
