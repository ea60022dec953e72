// chartpreview formats a raw stats file, as returned by the fitness API
// stats endpoint, and opens the rendered charts in the browser.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/2beens/fitstats/internal/charts"
	"github.com/2beens/fitstats/internal/logging"
	"github.com/2beens/fitstats/internal/sports"
	"github.com/2beens/fitstats/internal/stats"

	"github.com/cli/browser"
	log "github.com/sirupsen/logrus"
)

type previewInput struct {
	Sports     []sports.Sport `json:"sports"`
	Statistics stats.RawStats `json:"statistics"`
}

func main() {
	statsPath := flag.String("stats", "", "path of a json file with \"sports\" and \"statistics\"")
	durationParam := flag.String("duration", "month", "bucket duration [week | month | year]")
	dateParam := flag.String("date", "", "anchor date, yyyy-MM-dd (default today)")
	weekStartingMonday := flag.Bool("monday", true, "weeks start on monday")
	imperial := flag.Bool("imperial", false, "use imperial units")
	dateFormat := flag.String("date-format", "", "week labels pattern, e.g. dd/MM/yyyy")
	out := flag.String("out", "", "output html file (default a temp file)")
	noBrowser := flag.Bool("no-browser", false, "only write the html file")
	logLevel := flag.String("log-level", "info", "log level")
	flag.Parse()

	logging.Setup(logging.LoggerSetupParams{LogLevel: *logLevel, Service: "fitstats-chartpreview"})

	if err := run(runParams{
		statsPath:          *statsPath,
		duration:           *durationParam,
		date:               *dateParam,
		weekStartingMonday: *weekStartingMonday,
		imperial:           *imperial,
		dateFormat:         *dateFormat,
		out:                *out,
		openBrowser:        !*noBrowser,
	}); err != nil {
		log.Fatalf("chart preview: %s", err)
	}
}

type runParams struct {
	statsPath          string
	duration           string
	date               string
	weekStartingMonday bool
	imperial           bool
	dateFormat         string
	out                string
	openBrowser        bool
}

func run(params runParams) error {
	if params.statsPath == "" {
		return fmt.Errorf("stats file not set")
	}

	data, err := os.ReadFile(params.statsPath)
	if err != nil {
		return fmt.Errorf("read stats file: %w", err)
	}
	var input previewInput
	if err := json.Unmarshal(data, &input); err != nil {
		return fmt.Errorf("unmarshal stats file: %w", err)
	}

	duration, err := stats.ParseDuration(params.duration)
	if err != nil {
		return err
	}

	anchor := time.Now().UTC()
	if params.date != "" {
		anchor, err = time.Parse("2006-01-02", params.date)
		if err != nil {
			return fmt.Errorf("parse date: %w", err)
		}
	}

	chartParams, err := stats.GetStatsDateParams(anchor, duration, params.weekStartingMonday)
	if err != nil {
		return err
	}

	dataset, err := stats.FormatStats(stats.FormatParams{
		ChartParams:        chartParams,
		WeekStartingMonday: params.weekStartingMonday,
		Sports:             sports.Translate(input.Sports, nil),
		Stats:              input.Statistics,
		UseImperialUnits:   params.imperial,
		DateFormat:         stats.LabelPattern(duration, params.dateFormat),
	})
	if err != nil {
		return fmt.Errorf("format stats: %w", err)
	}

	outPath := params.out
	if outPath == "" {
		outPath = filepath.Join(os.TempDir(), fmt.Sprintf("fitstats-%s-%d.html", duration, time.Now().Unix()))
	}
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer f.Close()

	title := fmt.Sprintf("%s - %s", chartParams.Start.Format("2006-01-02"), chartParams.End.Format("2006-01-02"))
	if err := charts.NewRenderer().Render(f, title, dataset); err != nil {
		return err
	}
	log.Infof("chart written to [%s]", outPath)

	if !params.openBrowser {
		return nil
	}
	return browser.OpenFile(outPath)
}
