package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/callpulse/callpulse/internal/domain/dto"
	"github.com/callpulse/callpulse/internal/domain/models"
	"github.com/callpulse/callpulse/internal/service"
)

const (
	dateLayout       = "2006-01-02"
	defaultWindow    = 7 // days, when no range is given
	defaultListLimit = 100
	maxListLimit     = 1000
)

// Handler provides HTTP handlers for call analytics endpoints.
//
// Responsibilities:
//   - Validate incoming HTTP query parameters
//   - Interact with the service layer for analytics computation
//   - Translate service results into response DTOs
//   - Return structured JSON responses with appropriate HTTP status codes
type Handler struct {
	svc service.AnalyticsService
}

// NewHandler constructs a new Handler instance.
func NewHandler(svc service.AnalyticsService) *Handler {
	return &Handler{svc: svc}
}

// parseWindow reads the optional start/end query params (YYYY-MM-DD) and
// returns the window's instant bounds. The end day is inclusive: the
// upper bound is the last instant of that UTC day. When both params are
// absent the window defaults to the last 7 days ending today (UTC).
func parseWindow(c *gin.Context) (start time.Time, end time.Time, ok bool) {
	now := time.Now().UTC()
	endDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	startDay := endDay.AddDate(0, 0, -(defaultWindow - 1))

	if s := c.Query("start"); s != "" {
		parsed, err := time.Parse(dateLayout, s)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid start format, expected YYYY-MM-DD", err))
			return start, end, false
		}
		startDay = parsed
	}
	if s := c.Query("end"); s != "" {
		parsed, err := time.Parse(dateLayout, s)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid end format, expected YYYY-MM-DD", err))
			return start, end, false
		}
		endDay = parsed
	}

	if startDay.After(endDay) {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("start must not be after end", nil))
		return start, end, false
	}

	start = startDay
	end = endDay.AddDate(0, 0, 1).Add(-time.Nanosecond)
	return start, end, true
}

// GetDailyAnalytics handles GET /api/v1/analytics/daily requests.
//
// GetDailyAnalytics godoc
// @Summary      Get daily call analytics
// @Description  Returns per-day call counts, minutes, cost, and average duration for the given window
// @Tags         analytics
// @Accept       json
// @Produce      json
// @Param        start  query     string  false  "Window start in YYYY-MM-DD (default: 6 days ago)" example(2024-01-01)
// @Param        end    query     string  false  "Window end in YYYY-MM-DD, inclusive (default: today)" example(2024-01-07)
// @Success      200    {array}   dto.DailyBucketResponse  "Success"
// @Failure      400    {object}  dto.ErrorResponse        "Bad Request"
// @Failure      500    {object}  dto.ErrorResponse        "Internal Error"
// @Router       /api/v1/analytics/daily [get]
func (h *Handler) GetDailyAnalytics(c *gin.Context) {
	start, end, ok := parseWindow(c)
	if !ok {
		return
	}

	buckets, err := h.svc.GetDailyAnalytics(c.Request.Context(), start, end)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to compute daily analytics", err))
		return
	}

	// Absence of data is a normal state: an empty array, never an error.
	resp := make([]dto.DailyBucketResponse, 0, len(buckets))
	for _, b := range buckets {
		resp = append(resp, dto.DailyBucketResponse{
			Date:               b.Date.Format(dateLayout),
			CallCount:          b.CallCount,
			TotalMinutes:       b.TotalMinutes,
			TotalCost:          b.TotalCost,
			AvgDurationMinutes: b.AvgDurationMinutes,
		})
	}

	c.JSON(http.StatusOK, resp)
}

// GetSummary handles GET /api/v1/analytics/summary requests.
//
// GetSummary godoc
// @Summary      Get call analytics summary
// @Description  Returns window-level totals: calls, minutes, cost, and average duration
// @Tags         analytics
// @Accept       json
// @Produce      json
// @Param        start  query     string  false  "Window start in YYYY-MM-DD" example(2024-01-01)
// @Param        end    query     string  false  "Window end in YYYY-MM-DD, inclusive" example(2024-01-07)
// @Success      200    {object}  dto.SummaryResponse  "Success"
// @Failure      400    {object}  dto.ErrorResponse    "Bad Request"
// @Failure      404    {object}  dto.ErrorResponse    "Not Found"
// @Failure      500    {object}  dto.ErrorResponse    "Internal Error"
// @Router       /api/v1/analytics/summary [get]
func (h *Handler) GetSummary(c *gin.Context) {
	start, end, ok := parseWindow(c)
	if !ok {
		return
	}

	sum, err := h.svc.GetSummary(c.Request.Context(), start, end)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to compute summary", err))
		return
	}
	if sum == nil {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("no calls found in window", nil))
		return
	}

	c.JSON(http.StatusOK, dto.SummaryResponse{
		Start:              start.Format(dateLayout),
		End:                end.Format(dateLayout),
		CallCount:          sum.CallCount,
		TotalMinutes:       sum.TotalMinutes,
		TotalCost:          sum.TotalCost,
		AvgDurationMinutes: sum.AvgDurationMinutes,
	})
}

// ListCalls handles GET /api/v1/calls requests.
//
// ListCalls godoc
// @Summary      List call records
// @Description  Returns raw call records in the given window, ordered by occurrence
// @Tags         calls
// @Accept       json
// @Produce      json
// @Param        start  query     string  false  "Window start in YYYY-MM-DD" example(2024-01-01)
// @Param        end    query     string  false  "Window end in YYYY-MM-DD, inclusive" example(2024-01-07)
// @Param        limit  query     int     false  "Maximum records to return (default 100, max 1000)" example(100)
// @Success      200    {array}   dto.CallResponse   "Success"
// @Failure      400    {object}  dto.ErrorResponse  "Bad Request"
// @Failure      500    {object}  dto.ErrorResponse  "Internal Error"
// @Router       /api/v1/calls [get]
func (h *Handler) ListCalls(c *gin.Context) {
	start, end, ok := parseWindow(c)
	if !ok {
		return
	}

	limit := defaultListLimit
	if s := c.Query("limit"); s != "" {
		parsed, err := strconv.Atoi(s)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid limit, expected a positive integer", err))
			return
		}
		limit = parsed
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	records, err := h.svc.ListCalls(c.Request.Context(), start, end, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to list calls", err))
		return
	}

	c.JSON(http.StatusOK, toCallResponses(records))
}

func toCallResponses(records []models.CallRecord) []dto.CallResponse {
	resp := make([]dto.CallResponse, 0, len(records))
	for _, r := range records {
		resp = append(resp, dto.CallResponse{
			ID:              r.ID,
			OccurredAt:      r.OccurredAt,
			DurationSeconds: r.DurationSeconds,
			Cost:            r.Cost,
			EndReason:       r.EndReason,
		})
	}
	return resp
}
