package stats

import (
	"fmt"
	"time"
)

// trailing history shown by a chart, the bucket containing the anchor date included
const (
	YearsInWindow  = 10
	MonthsInWindow = 12
	WeeksInWindow  = 10
)

func bucketsInWindow(duration Duration) int {
	switch duration {
	case Year:
		return YearsInWindow
	case Month:
		return MonthsInWindow
	default:
		return WeeksInWindow
	}
}

// GetStatsDateParams returns the window ending with the bucket containing date.
func GetStatsDateParams(date time.Time, duration Duration, weekStartingMonday bool) (ChartParams, error) {
	if err := duration.Validate(); err != nil {
		return ChartParams{}, err
	}
	if date.IsZero() {
		return ChartParams{}, fmt.Errorf("%w: anchor date is required", ErrInvalidWindow)
	}

	lastBucket := startOf(date, duration, weekStartingMonday)
	return ChartParams{
		Duration: duration,
		Start:    addBuckets(lastBucket, duration, -(bucketsInWindow(duration) - 1)),
		End:      endOf(date, duration, weekStartingMonday),
	}, nil
}

// UpdateChartParams moves the whole window by one bucket, backward or forward.
// The window length is kept, and moving back then forth gives the initial window.
func UpdateChartParams(params ChartParams, backward bool, weekStartingMonday bool) (ChartParams, error) {
	if err := params.Validate(); err != nil {
		return ChartParams{}, err
	}

	step := 1
	if backward {
		step = -1
	}

	start := startOf(params.Start, params.Duration, weekStartingMonday)
	end := startOf(params.End, params.Duration, weekStartingMonday)
	return ChartParams{
		Duration: params.Duration,
		Start:    addBuckets(start, params.Duration, step),
		End:      endOf(addBuckets(end, params.Duration, step), params.Duration, weekStartingMonday),
	}, nil
}
