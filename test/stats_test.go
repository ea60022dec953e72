package test

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/2beens/fitstats/internal/sports"
	"github.com/2beens/fitstats/internal/stats"
)

func (s *IntegrationTestSuite) getJSON(path string, dest any) int {
	resp, err := s.httpClient.Get(serverEndpoint + path)
	s.Require().NoError(err)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	if resp.StatusCode == http.StatusOK && dest != nil {
		s.Require().NoError(json.Unmarshal(respBytes, dest), string(respBytes))
	}
	return resp.StatusCode
}

func (s *IntegrationTestSuite) TestSports() {
	var allSports []sports.TranslatedSport
	s.Require().Equal(http.StatusOK, s.getJSON("/sports", &allSports))
	s.Require().Len(allSports, 2)
	s.Equal("Cycling", allSports[0].TranslatedLabel)
	s.Equal("Hiking", allSports[1].TranslatedLabel)
	s.Equal("#aabbcc", allSports[1].DisplayColor)

	// served from the in-process cache afterwards
	callsBefore := s.upstream.callsTo("/api/sports")
	s.Require().Equal(http.StatusOK, s.getJSON("/sports", &allSports))
	s.Equal(callsBefore, s.upstream.callsTo("/api/sports"))
}

func (s *IntegrationTestSuite) TestStatsByTime() {
	path := "/stats/sam/by_time?duration=month&date=2021-07-15"

	var chart stats.ChartResponse
	s.Require().Equal(http.StatusOK, s.getJSON(path, &chart))
	s.Equal(stats.Month, chart.ChartParams.Duration)
	s.Require().Len(chart.Labels, stats.MonthsInWindow)
	s.Equal("07/2021", chart.Labels[len(chart.Labels)-1])

	distances := chart.Datasets[stats.TotalDistance]
	s.Require().Len(distances, 2)
	s.Equal("Cycling", distances[0].Label)
	s.Require().NotNil(distances[0].Data[9])
	s.Equal(10.0, *distances[0].Data[9])
	s.Require().NotNil(distances[1].Data[11])
	s.Equal(6.0, *distances[1].Data[11])

	statsCalls := s.upstream.callsTo("/api/stats/sam/by_time")
	s.Require().Equal(http.StatusOK, s.getJSON(path+"&sports=2", &chart))
	s.Equal(statsCalls, s.upstream.callsTo("/api/stats/sam/by_time"), "second call should come from the redis cache")
	s.Require().Len(chart.Datasets[stats.TotalDistance], 1)
	s.Equal(2, chart.Datasets[stats.TotalDistance][0].ID)

	var page stats.ChartResponse
	pagePath := fmt.Sprintf(
		"/stats/sam/by_time/page?duration=month&start=%s&end=%s&direction=backward",
		chart.ChartParams.Start.Format("2006-01-02"),
		chart.ChartParams.End.Format("2006-01-02"),
	)
	s.Require().Equal(http.StatusOK, s.getJSON(pagePath, &page))
	s.True(page.ChartParams.End.Before(chart.ChartParams.Start))

	s.Equal(http.StatusBadRequest, s.getJSON("/stats/sam/by_time?duration=decade", nil))
}

func (s *IntegrationTestSuite) TestStatsChart() {
	resp, err := s.httpClient.Get(serverEndpoint + "/stats/sam/by_time/chart?duration=year&date=2021-07-15")
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.True(strings.HasPrefix(resp.Header.Get("Content-Type"), "text/html"))
	body, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	s.Contains(string(body), "sam: 2012-01-01 - 2021-12-31")
	s.Contains(string(body), "Hiking")
}
