package stats

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/2beens/fitstats/internal/preferences"
	"github.com/2beens/fitstats/internal/sports"
	"github.com/2beens/fitstats/internal/telemetry/metrics"
	"github.com/2beens/fitstats/internal/telemetry/tracing"
	"github.com/2beens/fitstats/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=stats_test

type statsSource interface {
	GetSports(ctx context.Context) ([]sports.Sport, error)
	GetStats(ctx context.Context, user string, params ChartParams, weekStartingMonday bool) (RawStats, error)
}

type preferencesStore interface {
	GetOrDefault(ctx context.Context, user string) (*preferences.Preferences, error)
}

type chartRenderer interface {
	Render(w io.Writer, title string, dataset *Dataset) error
}

const queryDateLayout = "2006-01-02"

var errBadRequest = errors.New("bad request")

// ChartResponse is a formatted chart together with the window it covers.
type ChartResponse struct {
	ChartParams ChartParams         `json:"chartParams"`
	Labels      []string            `json:"labels"`
	Datasets    map[Metric][]Series `json:"datasets"`
}

type Handler struct {
	source         statsSource
	prefs          preferencesStore
	renderer       chartRenderer
	translator     sports.Translator
	metricsManager *metrics.Manager
	now            func() time.Time
}

func NewHandler(
	source statsSource,
	prefs preferencesStore,
	renderer chartRenderer,
	translator sports.Translator,
	metricsManager *metrics.Manager,
) *Handler {
	if translator == nil {
		translator = sports.Identity
	}
	return &Handler{
		source:         source,
		prefs:          prefs,
		renderer:       renderer,
		translator:     translator,
		metricsManager: metricsManager,
		now:            time.Now,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/stats/{user}/by_time", handler.HandleByTime).Methods("GET", "OPTIONS").Name("stats-by-time")
	r.HandleFunc("/stats/{user}/by_time/page", handler.HandlePage).Methods("GET", "OPTIONS").Name("stats-by-time-page")
	r.HandleFunc("/stats/{user}/by_time/chart", handler.HandleChart).Methods("GET", "OPTIONS").Name("stats-by-time-chart")
}

func (handler *Handler) HandleByTime(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.byTime")
	defer span.End()

	resp, err := handler.chartForAnchor(ctx, r)
	if err != nil {
		handler.writeError(w, r, err)
		return
	}
	pkg.WriteJSON(w, resp, http.StatusOK)
}

func (handler *Handler) HandlePage(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.page")
	defer span.End()

	user := mux.Vars(r)["user"]
	prefs, err := handler.userPreferences(ctx, user)
	if err != nil {
		handler.writeError(w, r, err)
		return
	}

	query := r.URL.Query()
	duration, err := ParseDuration(query.Get("duration"))
	if err != nil {
		handler.writeError(w, r, fmt.Errorf("%w: %s", errBadRequest, err))
		return
	}

	loc := prefs.Location()
	start, err := parseWindowDate(query.Get("start"), loc)
	if err != nil {
		handler.writeError(w, r, fmt.Errorf("%w: start: %s", errBadRequest, err))
		return
	}
	end, err := parseWindowDate(query.Get("end"), loc)
	if err != nil {
		handler.writeError(w, r, fmt.Errorf("%w: end: %s", errBadRequest, err))
		return
	}

	var backward bool
	switch direction := query.Get("direction"); direction {
	case "backward":
		backward = true
	case "forward":
	default:
		handler.writeError(w, r, fmt.Errorf("%w: invalid direction %q", errBadRequest, direction))
		return
	}

	params, err := UpdateChartParams(ChartParams{
		Duration: duration,
		Start:    start,
		End:      end,
	}, backward, prefs.WeekStartingMonday)
	if err != nil {
		handler.writeError(w, r, fmt.Errorf("%w: %s", errBadRequest, err))
		return
	}
	span.SetAttributes(attribute.Bool("stats.backward", backward))

	resp, err := handler.chart(ctx, r, user, prefs, params)
	if err != nil {
		handler.writeError(w, r, err)
		return
	}
	pkg.WriteJSON(w, resp, http.StatusOK)
}

func (handler *Handler) HandleChart(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.chart")
	defer span.End()

	resp, err := handler.chartForAnchor(ctx, r)
	if err != nil {
		handler.writeError(w, r, err)
		return
	}

	title := fmt.Sprintf(
		"%s: %s - %s",
		mux.Vars(r)["user"],
		resp.ChartParams.Start.Format(queryDateLayout),
		resp.ChartParams.End.Format(queryDateLayout),
	)

	var buf bytes.Buffer
	if err := handler.renderer.Render(&buf, title, &Dataset{
		Labels:   resp.Labels,
		Datasets: resp.Datasets,
	}); err != nil {
		log.Errorf("failed to render chart [%s]: %s", title, err)
		http.Error(w, "failed to render chart", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.HTML, buf.Bytes())
}

// chartForAnchor builds the chart of the window ending with the bucket
// containing the date query param, or now.
func (handler *Handler) chartForAnchor(ctx context.Context, r *http.Request) (*ChartResponse, error) {
	user := mux.Vars(r)["user"]
	prefs, err := handler.userPreferences(ctx, user)
	if err != nil {
		return nil, err
	}

	query := r.URL.Query()
	duration, err := ParseDuration(query.Get("duration"))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errBadRequest, err)
	}

	loc := prefs.Location()
	anchor := handler.now().In(loc)
	if dateParam := query.Get("date"); dateParam != "" {
		anchor, err = time.ParseInLocation(queryDateLayout, dateParam, loc)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid date %q", errBadRequest, dateParam)
		}
	}

	params, err := GetStatsDateParams(anchor, duration, prefs.WeekStartingMonday)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errBadRequest, err)
	}

	return handler.chart(ctx, r, user, prefs, params)
}

func (handler *Handler) chart(
	ctx context.Context,
	r *http.Request,
	user string,
	prefs *preferences.Preferences,
	params ChartParams,
) (*ChartResponse, error) {
	query := r.URL.Query()
	filter := AllSports()
	if _, ok := query["sports"]; ok {
		ids, err := pkg.ParseIntList(query.Get("sports"))
		if err != nil {
			return nil, fmt.Errorf("%w: invalid sports: %s", errBadRequest, err)
		}
		filter = OnlySports(ids...)
	}

	dateFormat := query.Get("date_format")
	if dateFormat == "" {
		dateFormat = LabelPattern(params.Duration, prefs.DateFormat)
	}

	allSports, err := handler.source.GetSports(ctx)
	if err != nil {
		return nil, fmt.Errorf("get sports: %w", err)
	}

	rawStats, err := handler.source.GetStats(ctx, user, params, prefs.WeekStartingMonday)
	if err != nil {
		return nil, fmt.Errorf("get stats: %w", err)
	}

	dataset, err := FormatStats(FormatParams{
		ChartParams:        params,
		WeekStartingMonday: prefs.WeekStartingMonday,
		Sports:             sports.Translate(allSports, handler.translator),
		DisplayedSports:    filter,
		Stats:              rawStats,
		UseImperialUnits:   prefs.ImperialUnits,
		DateFormat:         dateFormat,
		Language:           prefs.Language,
	})
	if err != nil {
		return nil, fmt.Errorf("format stats: %w", err)
	}

	handler.metricsManager.CounterFormattedCharts.WithLabelValues(string(params.Duration)).Inc()
	log.Tracef("formatted %s chart for [%s]: %d buckets", params.Duration, user, len(dataset.Labels))

	return &ChartResponse{
		ChartParams: params,
		Labels:      dataset.Labels,
		Datasets:    dataset.Datasets,
	}, nil
}

func (handler *Handler) userPreferences(ctx context.Context, user string) (*preferences.Preferences, error) {
	if user == "" {
		return nil, fmt.Errorf("%w: user empty", errBadRequest)
	}
	prefs, err := handler.prefs.GetOrDefault(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("get preferences: %w", err)
	}
	return prefs, nil
}

func (handler *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, errBadRequest) {
		http.Error(w, strings.TrimPrefix(err.Error(), errBadRequest.Error()+": "), http.StatusBadRequest)
		return
	}
	log.Errorf("stats request [%s] failed: %s", r.URL.Path, err)
	http.Error(w, "failed to get stats", http.StatusInternalServerError)
}

// LabelPattern is the default label pattern of a chart: years and months
// are labelled by themselves, weeks by the date they start on, in the
// user's date format.
func LabelPattern(duration Duration, userDateFormat string) string {
	switch duration {
	case Year:
		return "yyyy"
	case Month:
		return "MM/yyyy"
	default:
		if userDateFormat == "" {
			return preferences.DefaultDateFormat
		}
		return userDateFormat
	}
}

// parseWindowDate reads a window bound, either RFC3339 (as sent back from a
// previous chartParams) or a plain date, and moves it to loc.
func parseWindowDate(value string, loc *time.Location) (time.Time, error) {
	if value == "" {
		return time.Time{}, errors.New("empty")
	}
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t.In(loc), nil
	}
	t, err := time.ParseInLocation(queryDateLayout, value, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", value)
	}
	return t, nil
}
