package stats

import (
	"github.com/2beens/fitstats/internal/sports"
)

type Metric string

const (
	AverageSpeed  Metric = "average_speed"
	TotalWorkouts Metric = "total_workouts"
	TotalDistance Metric = "total_distance"
	TotalDuration Metric = "total_duration"
	TotalAscent   Metric = "total_ascent"
	TotalDescent  Metric = "total_descent"
)

// Metrics lists every charted metric, in display order.
var Metrics = []Metric{
	AverageSpeed,
	TotalWorkouts,
	TotalDistance,
	TotalDuration,
	TotalAscent,
	TotalDescent,
}

type ChartType string

const (
	Bar  ChartType = "bar"
	Line ChartType = "line"
)

const speedAxisID = "ySpeed"

// Series is one metric of one sport, in the shape the chart component expects.
type Series struct {
	ID              int        `json:"id"`
	Label           string     `json:"label"`
	BackgroundColor string     `json:"backgroundColor"`
	BorderColor     string     `json:"borderColor,omitempty"`
	Data            []*float64 `json:"data"`
	Type            ChartType  `json:"type"`
	SpanGaps        bool       `json:"spanGaps,omitempty"`
	YAxisID         string     `json:"yAxisID,omitempty"`
}

// SportFilter selects the sports getting a series.
// The zero value selects every sport.
type SportFilter struct {
	ids      map[int]struct{}
	explicit bool
}

func AllSports() SportFilter {
	return SportFilter{}
}

// OnlySports selects the given sports. OnlySports() selects none.
func OnlySports(ids ...int) SportFilter {
	f := SportFilter{
		ids:      make(map[int]struct{}, len(ids)),
		explicit: true,
	}
	for _, id := range ids {
		f.ids[id] = struct{}{}
	}
	return f
}

func (f SportFilter) Includes(sportID int) bool {
	if !f.explicit {
		return true
	}
	_, ok := f.ids[sportID]
	return ok
}

// IsEmpty reports whether the filter selects no sport at all.
func (f SportFilter) IsEmpty() bool {
	return f.explicit && len(f.ids) == 0
}

// GetDatasets builds one empty series per metric per selected sport,
// following the order of allSports.
func GetDatasets(allSports []sports.TranslatedSport, filter SportFilter) map[Metric][]Series {
	datasets := make(map[Metric][]Series, len(Metrics))
	for _, m := range Metrics {
		datasets[m] = []Series{}
	}

	raw := sports.Untranslated(allSports)
	for _, sport := range allSports {
		if !filter.Includes(sport.ID) {
			continue
		}

		color := sports.ColorFor(sport.ID, raw, sports.Palette)
		label := sport.TranslatedLabel
		if label == "" {
			label = sport.Label
		}

		for _, m := range Metrics {
			datasets[m] = append(datasets[m], newSeries(m, sport.ID, label, color))
		}
	}

	return datasets
}

func newSeries(metric Metric, sportID int, label, color string) Series {
	s := Series{
		ID:              sportID,
		Label:           label,
		BackgroundColor: color,
		Data:            []*float64{},
		Type:            Bar,
	}
	if metric == AverageSpeed {
		s.Type = Line
		s.BorderColor = color
		s.SpanGaps = true
		s.YAxisID = speedAxisID
	}
	return s
}
