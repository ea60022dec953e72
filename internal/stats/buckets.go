package stats

import (
	"fmt"
	"time"
)

// maxBuckets bounds a single window, a larger one is a caller bug
const maxBuckets = 5000

// ChartParams is a chart window: Start is the first instant of its first
// bucket, End the last millisecond of its last bucket.
type ChartParams struct {
	Duration Duration  `json:"duration"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
}

func (p ChartParams) Validate() error {
	if err := p.Duration.Validate(); err != nil {
		return err
	}
	if p.Start.IsZero() || p.End.IsZero() {
		return fmt.Errorf("%w: start and end are required", ErrInvalidWindow)
	}
	if p.Start.After(p.End) {
		return fmt.Errorf("%w: start %s after end %s", ErrInvalidWindow, p.Start.Format(time.RFC3339), p.End.Format(time.RFC3339))
	}
	return nil
}

// GetDateKeys returns the start dates of the buckets covering the window,
// in increasing order. The first one is the start of the bucket containing
// params.Start, the last one the start of the bucket containing params.End.
func GetDateKeys(params ChartParams, weekStartingMonday bool) ([]time.Time, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	var keys []time.Time
	for day := startOf(params.Start, params.Duration, weekStartingMonday); !day.After(params.End); day = addBuckets(day, params.Duration, 1) {
		if len(keys) == maxBuckets {
			return nil, fmt.Errorf("%w: more than %d %s buckets", ErrInvalidWindow, maxBuckets, params.Duration)
		}
		keys = append(keys, day)
	}

	return keys, nil
}
