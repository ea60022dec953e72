package stats

import (
	"fmt"

	"github.com/2beens/fitstats/internal/datefmt"
	"github.com/2beens/fitstats/internal/sports"
	"github.com/2beens/fitstats/internal/units"
)

// SportStats holds the totals of one sport in one bucket.
// A metric missing from the API response stays nil.
type SportStats struct {
	TotalWorkouts *float64 `json:"total_workouts,omitempty"`
	TotalDistance *float64 `json:"total_distance,omitempty"`
	TotalDuration *float64 `json:"total_duration,omitempty"`
	TotalAscent   *float64 `json:"total_ascent,omitempty"`
	TotalDescent  *float64 `json:"total_descent,omitempty"`
	AverageSpeed  *float64 `json:"average_speed,omitempty"`
}

func (s SportStats) Value(m Metric) *float64 {
	switch m {
	case TotalWorkouts:
		return s.TotalWorkouts
	case TotalDistance:
		return s.TotalDistance
	case TotalDuration:
		return s.TotalDuration
	case TotalAscent:
		return s.TotalAscent
	case TotalDescent:
		return s.TotalDescent
	case AverageSpeed:
		return s.AverageSpeed
	default:
		return nil
	}
}

// RawStats is the sparse API response: bucket key (see BucketKey) to sport id to totals.
type RawStats map[string]map[int]SportStats

// Lookup returns the value of a metric for a sport in a bucket, if present.
func (r RawStats) Lookup(bucketKey string, sportID int, m Metric) (float64, bool) {
	bySport, ok := r[bucketKey]
	if !ok {
		return 0, false
	}
	s, ok := bySport[sportID]
	if !ok {
		return 0, false
	}
	v := s.Value(m)
	if v == nil {
		return 0, false
	}
	return *v, true
}

// Dataset is the chart ready output of FormatStats.
type Dataset struct {
	Labels   []string            `json:"labels"`
	Datasets map[Metric][]Series `json:"datasets"`
}

type FormatParams struct {
	ChartParams        ChartParams
	WeekStartingMonday bool
	Sports             []sports.TranslatedSport
	DisplayedSports    SportFilter
	Stats              RawStats
	UseImperialUnits   bool
	// DateFormat is the labels pattern, or datefmt.DateString
	DateFormat string
	// Language picks month and day names of the labels
	Language string
}

// FormatStats turns sparse raw stats into dense series, one value per bucket
// for each displayed sport. A missing value is 0, except for the average
// speed where it is nil, so that a sport without workouts breaks no trend line.
func FormatStats(params FormatParams) (*Dataset, error) {
	dateKeys, err := GetDateKeys(params.ChartParams, params.WeekStartingMonday)
	if err != nil {
		return nil, err
	}

	datasets := GetDatasets(params.Sports, params.DisplayedSports)
	labels := make([]string, 0, len(dateKeys))

	for _, date := range dateKeys {
		key := BucketKey(date, params.ChartParams.Duration)
		labels = append(labels, datefmt.Format(date, params.DateFormat, params.Language))

		for _, metric := range Metrics {
			for i := range datasets[metric] {
				series := &datasets[metric][i]
				value, err := bucketValue(params.Stats, key, series.ID, metric, params.UseImperialUnits)
				if err != nil {
					return nil, fmt.Errorf("bucket %s, sport %d, %s: %w", key, series.ID, metric, err)
				}
				series.Data = append(series.Data, value)
			}
		}
	}

	return &Dataset{
		Labels:   labels,
		Datasets: datasets,
	}, nil
}

func bucketValue(raw RawStats, key string, sportID int, metric Metric, useImperialUnits bool) (*float64, error) {
	value, ok := raw.Lookup(key, sportID, metric)
	if !ok {
		if metric == AverageSpeed {
			return nil, nil
		}
		zero := 0.0
		return &zero, nil
	}

	converted, err := convertMetric(metric, value, useImperialUnits)
	if err != nil {
		return nil, err
	}
	return &converted, nil
}

// convertMetric converts distances and speeds to miles and elevations to feet.
// Durations and workout counts are never converted.
func convertMetric(metric Metric, value float64, useImperialUnits bool) (float64, error) {
	if !useImperialUnits {
		return value, nil
	}
	switch metric {
	case TotalDistance, AverageSpeed:
		return units.Convert(value, units.Miles)
	case TotalAscent, TotalDescent:
		return units.Convert(value, units.Feet)
	default:
		return value, nil
	}
}
