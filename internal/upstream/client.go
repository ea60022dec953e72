package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/2beens/fitstats/internal/records"
	"github.com/2beens/fitstats/internal/sports"
	"github.com/2beens/fitstats/internal/stats"
	"github.com/2beens/fitstats/internal/telemetry/metrics"
	"github.com/2beens/fitstats/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

var ErrUnexpectedStatus = errors.New("unexpected upstream status")

const (
	megabyte        = 1024 * 1024
	sportsCacheSize = 4 * megabyte
	sportsCacheKey  = "sports"
	upstreamDateFmt = "2006-01-02"
	maxResponseSize = 8 * megabyte
)

type apiResponse[T any] struct {
	Status string `json:"status"`
	Data   T      `json:"data"`
}

type sportsData struct {
	Sports []sports.Sport `json:"sports"`
}

type statsData struct {
	Statistics json.RawMessage `json:"statistics"`
}

type recordsData struct {
	Records []records.Record `json:"records"`
}

type NewClientParams struct {
	BaseURL        string
	Token          string
	HTTPClient     *http.Client
	RedisClient    *redis.Client
	SportsCacheTTL time.Duration
	StatsCacheTTL  time.Duration
	MetricsManager *metrics.Manager
}

// Client talks to the fitness tracker API. The sports list is reference
// data, kept in process; stats responses are cached in redis.
type Client struct {
	baseURL        string
	token          string
	httpClient     *http.Client
	redisClient    *redis.Client
	sportsCache    *freecache.Cache
	sportsCacheTTL int
	statsCacheTTL  time.Duration
	metricsManager *metrics.Manager
}

func NewClient(params NewClientParams) *Client {
	httpClient := params.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:        strings.TrimSuffix(params.BaseURL, "/"),
		token:          params.Token,
		httpClient:     httpClient,
		redisClient:    params.RedisClient,
		sportsCache:    freecache.NewCache(sportsCacheSize),
		sportsCacheTTL: int(params.SportsCacheTTL.Seconds()),
		statsCacheTTL:  params.StatsCacheTTL,
		metricsManager: params.MetricsManager,
	}
}

// StatsKey is the redis key of a cached stats response.
func StatsKey(user string, timeParam string, params stats.ChartParams) string {
	return fmt.Sprintf(
		"fitstats::stats::%s::%s::%s::%s",
		user, timeParam, params.Start.Format(upstreamDateFmt), params.End.Format(upstreamDateFmt),
	)
}

// TimeParam is the upstream "time" query value; weeks starting on monday
// are asked as "weekm".
func TimeParam(duration stats.Duration, weekStartingMonday bool) string {
	if duration == stats.Week && weekStartingMonday {
		return "weekm"
	}
	return string(duration)
}

func (c *Client) GetSports(ctx context.Context) (_ []sports.Sport, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "upstream.getSports")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if cached, cacheErr := c.sportsCache.Get([]byte(sportsCacheKey)); cacheErr == nil {
		var cachedSports []sports.Sport
		unmarshalErr := json.Unmarshal(cached, &cachedSports)
		if unmarshalErr == nil {
			c.cacheResult("sports", true)
			span.SetAttributes(attribute.Bool("sports.from-cache", true))
			return cachedSports, nil
		}
		log.Errorf("failed to unmarshal cached sports: %s", unmarshalErr)
	}
	c.cacheResult("sports", false)

	var resp apiResponse[sportsData]
	if err := c.get(ctx, "sports", "/api/sports", nil, &resp); err != nil {
		return nil, err
	}

	sportsBytes, err := json.Marshal(resp.Data.Sports)
	if err != nil {
		return nil, fmt.Errorf("marshal sports: %w", err)
	}
	if err := c.sportsCache.Set([]byte(sportsCacheKey), sportsBytes, c.sportsCacheTTL); err != nil {
		log.Errorf("failed to cache sports: %s", err)
	}

	return resp.Data.Sports, nil
}

// GetStats returns the raw stats of a user for the window. Redis failures
// are logged and treated as cache misses.
func (c *Client) GetStats(
	ctx context.Context,
	user string,
	params stats.ChartParams,
	weekStartingMonday bool,
) (_ stats.RawStats, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "upstream.getStats")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if err := params.Validate(); err != nil {
		return nil, err
	}

	timeParam := TimeParam(params.Duration, weekStartingMonday)
	cacheKey := StatsKey(user, timeParam, params)
	span.SetAttributes(attribute.String("stats.key", cacheKey))

	if raw, ok := c.cachedStats(ctx, cacheKey); ok {
		var rawStats stats.RawStats
		unmarshalErr := json.Unmarshal(raw, &rawStats)
		if unmarshalErr == nil {
			c.cacheResult("stats", true)
			return rawStats, nil
		}
		log.Errorf("failed to unmarshal cached stats [%s]: %s", cacheKey, unmarshalErr)
	}
	c.cacheResult("stats", false)

	query := url.Values{}
	query.Set("from", params.Start.Format(upstreamDateFmt))
	query.Set("to", params.End.Format(upstreamDateFmt))
	query.Set("time", timeParam)

	var resp apiResponse[statsData]
	path := fmt.Sprintf("/api/stats/%s/by_time", url.PathEscape(user))
	if err := c.get(ctx, "stats", path, query, &resp); err != nil {
		return nil, err
	}

	rawBytes := []byte(resp.Data.Statistics)
	if len(rawBytes) == 0 || string(rawBytes) == "null" {
		return stats.RawStats{}, nil
	}

	var rawStats stats.RawStats
	if err := json.Unmarshal(rawBytes, &rawStats); err != nil {
		return nil, fmt.Errorf("unmarshal stats: %w", err)
	}

	if c.redisClient != nil && c.statsCacheTTL > 0 {
		if err := c.redisClient.Set(ctx, cacheKey, rawBytes, c.statsCacheTTL).Err(); err != nil {
			log.Errorf("failed to cache stats in redis [%s]: %s", cacheKey, err)
		} else {
			log.Tracef("stats cache set: %s", cacheKey)
		}
	}

	return rawStats, nil
}

// GetRecords returns the personal records of the user.
func (c *Client) GetRecords(ctx context.Context, user string) (_ []records.Record, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "upstream.getRecords")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	var resp apiResponse[recordsData]
	if err := c.get(ctx, "records", "/api/records", nil, &resp); err != nil {
		return nil, err
	}

	userRecords := make([]records.Record, 0, len(resp.Data.Records))
	for _, r := range resp.Data.Records {
		if r.User != "" && r.User != user {
			continue
		}
		userRecords = append(userRecords, r)
	}
	return userRecords, nil
}

func (c *Client) cachedStats(ctx context.Context, key string) ([]byte, bool) {
	if c.redisClient == nil || c.statsCacheTTL <= 0 {
		return nil, false
	}
	raw, err := c.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Errorf("failed to get cached stats [%s]: %s", key, err)
		}
		return nil, false
	}
	return raw, true
}

func (c *Client) cacheResult(cache string, hit bool) {
	if c.metricsManager == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	c.metricsManager.CounterUpstreamCache.WithLabelValues(cache, result).Inc()
}

func (c *Client) get(ctx context.Context, endpoint, path string, query url.Values, dest any) (err error) {
	begin := time.Now()
	defer func() {
		if c.metricsManager == nil {
			return
		}
		c.metricsManager.HistogramUpstreamDuration.WithLabelValues(endpoint).Observe(time.Since(begin).Seconds())
		if err != nil {
			c.metricsManager.CounterUpstreamErrors.WithLabelValues(endpoint).Inc()
		}
	}()

	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}
	log.Debugf("calling upstream: %s", reqURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("read %s response: %w", endpoint, err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %s returned %d", ErrUnexpectedStatus, endpoint, resp.StatusCode)
	}

	if err := json.Unmarshal(respBytes, dest); err != nil {
		return fmt.Errorf("unmarshal %s response: %w", endpoint, err)
	}
	return nil
}
