// Package charts renders formatted stats as a standalone HTML page.
package charts

import (
	"fmt"
	"io"

	"github.com/2beens/fitstats/internal/stats"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

const theme = "macarons"

var metricTitles = map[stats.Metric]string{
	stats.AverageSpeed:  "Average speed",
	stats.TotalWorkouts: "Workouts",
	stats.TotalDistance: "Distance",
	stats.TotalDuration: "Duration",
	stats.TotalAscent:   "Ascent",
	stats.TotalDescent:  "Descent",
}

// Renderer draws one chart per metric: stacked bars for totals, a line per
// sport for the average speed.
type Renderer struct {
	metrics []stats.Metric
}

// NewRenderer renders the given metrics, or all of them when none is given.
func NewRenderer(metrics ...stats.Metric) *Renderer {
	if len(metrics) == 0 {
		metrics = stats.Metrics
	}
	return &Renderer{
		metrics: metrics,
	}
}

func (r *Renderer) Render(w io.Writer, title string, dataset *stats.Dataset) error {
	if dataset == nil {
		return fmt.Errorf("render [%s]: nil dataset", title)
	}

	page := components.NewPage()
	page.PageTitle = title
	for _, metric := range r.metrics {
		series := dataset.Datasets[metric]
		if metric == stats.AverageSpeed {
			page.AddCharts(lineChart(metricTitles[metric], title, dataset.Labels, series))
		} else {
			page.AddCharts(barChart(metricTitles[metric], title, dataset.Labels, series))
		}
	}

	if err := page.Render(w); err != nil {
		return fmt.Errorf("render [%s]: %w", title, err)
	}
	return nil
}

func barChart(metricTitle, subtitle string, labels []string, series []stats.Series) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: theme}),
		charts.WithTitleOpts(opts.Title{
			Title:    metricTitle,
			Subtitle: subtitle,
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Trigger: "axis",
			AxisPointer: &opts.AxisPointer{
				Type: "shadow",
			},
		}),
		charts.WithLegendOpts(opts.Legend{
			Show:   opts.Bool(true),
			Bottom: "bottom",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			AxisLabel: &opts.AxisLabel{
				Rotate: 45,
			},
		}),
	)
	bar.SetXAxis(labels)

	for _, s := range series {
		data := make([]opts.BarData, 0, len(s.Data))
		for _, v := range s.Data {
			data = append(data, opts.BarData{Value: valueOrNil(v)})
		}
		bar.AddSeries(s.Label, data,
			charts.WithBarChartOpts(opts.BarChart{Stack: "total"}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: s.BackgroundColor}),
		)
	}

	return bar
}

func lineChart(metricTitle, subtitle string, labels []string, series []stats.Series) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: theme}),
		charts.WithTitleOpts(opts.Title{
			Title:    metricTitle,
			Subtitle: subtitle,
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show:   opts.Bool(true),
			Bottom: "bottom",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			AxisLabel: &opts.AxisLabel{
				Rotate: 45,
			},
		}),
	)
	line.SetXAxis(labels)

	for _, s := range series {
		data := make([]opts.LineData, 0, len(s.Data))
		for _, v := range s.Data {
			data = append(data, opts.LineData{Value: valueOrNil(v)})
		}
		line.AddSeries(s.Label, data,
			// weeks without workouts have no average, the line goes over them
			charts.WithLineChartOpts(opts.LineChart{ConnectNulls: opts.Bool(s.SpanGaps)}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: s.BorderColor}),
		)
	}

	return line
}

func valueOrNil(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
