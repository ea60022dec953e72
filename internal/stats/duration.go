package stats

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidDuration = errors.New("invalid duration")
	ErrInvalidWindow   = errors.New("invalid chart window")
)

// Duration is the bucket granularity of a chart.
type Duration string

const (
	Week  Duration = "week"
	Month Duration = "month"
	Year  Duration = "year"
)

const (
	yearBucketKeyLayout  = "2006"
	monthBucketKeyLayout = "2006-01"
	weekBucketKeyLayout  = "2006-01-02"
)

func ParseDuration(value string) (Duration, error) {
	d := Duration(strings.ToLower(strings.TrimSpace(value)))
	if err := d.Validate(); err != nil {
		return "", err
	}
	return d, nil
}

func (d Duration) Validate() error {
	switch d {
	case Week, Month, Year:
		return nil
	default:
		return fmt.Errorf("%w: %q, expected one of %q, %q, %q", ErrInvalidDuration, string(d), Week, Month, Year)
	}
}

// BucketKey is the key of the bucket starting at date, as used in the raw
// stats sent by the API: yyyy for years, yyyy-MM for months and yyyy-MM-dd
// (the first day of the week) for weeks.
func BucketKey(date time.Time, duration Duration) string {
	switch duration {
	case Year:
		return date.Format(yearBucketKeyLayout)
	case Month:
		return date.Format(monthBucketKeyLayout)
	default:
		return date.Format(weekBucketKeyLayout)
	}
}

// startOf returns the first instant of the bucket containing t, in t's location.
func startOf(t time.Time, duration Duration, weekStartingMonday bool) time.Time {
	y, m, d := t.Date()
	switch duration {
	case Year:
		return time.Date(y, time.January, 1, 0, 0, 0, 0, t.Location())
	case Month:
		return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
	default:
		weekStartsOn := 0
		if weekStartingMonday {
			weekStartsOn = 1
		}
		diff := (int(t.Weekday()) - weekStartsOn + 7) % 7
		return time.Date(y, m, d-diff, 0, 0, 0, 0, t.Location())
	}
}

// endOf returns the last millisecond (23:59:59.999) of the bucket containing t.
func endOf(t time.Time, duration Duration, weekStartingMonday bool) time.Time {
	next := addBuckets(startOf(t, duration, weekStartingMonday), duration, 1)
	y, m, d := next.Date()
	return time.Date(y, m, d-1, 23, 59, 59, int(999*time.Millisecond), t.Location())
}

// addBuckets moves a bucket aligned date by n buckets.
// Calendar arithmetic is used so DST changes never shift the wall clock.
func addBuckets(start time.Time, duration Duration, n int) time.Time {
	y, m, d := start.Date()
	switch duration {
	case Year:
		return time.Date(y+n, m, d, 0, 0, 0, 0, start.Location())
	case Month:
		return time.Date(y, m+time.Month(n), d, 0, 0, 0, 0, start.Location())
	default:
		return time.Date(y, m, d+7*n, 0, 0, 0, 0, start.Location())
	}
}
