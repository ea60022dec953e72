package test

import (
	"bytes"
	"context"
	"net/http"

	"github.com/2beens/fitstats/internal/preferences"
	"github.com/2beens/fitstats/internal/records"
	"github.com/2beens/fitstats/internal/stats"
)

func (s *IntegrationTestSuite) putPreferences(user, body string) int {
	req, err := http.NewRequest(http.MethodPut, serverEndpoint+"/preferences/"+user, bytes.NewBufferString(body))
	s.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	s.Require().NoError(err)
	s.Require().NoError(resp.Body.Close())
	return resp.StatusCode
}

func (s *IntegrationTestSuite) TestPreferences() {
	var p preferences.Preferences
	s.Require().Equal(http.StatusOK, s.getJSON("/preferences/jo", &p))
	s.Equal(preferences.Default("jo"), p)

	s.Require().Equal(http.StatusOK, s.putPreferences("jo", `{
		"weekStartingMonday": false,
		"imperialUnits": true,
		"timezone": "Europe/Paris",
		"dateFormat": "yyyy-MM-dd",
		"language": "fr",
		"displayAscent": true
	}`))

	s.Require().Equal(http.StatusOK, s.getJSON("/preferences/jo", &p))
	s.Equal(preferences.Preferences{
		User:               "jo",
		WeekStartingMonday: false,
		ImperialUnits:      true,
		Timezone:           "Europe/Paris",
		DateFormat:         "yyyy-MM-dd",
		Language:           "fr",
		DisplayAscent:      true,
	}, p)

	var storedTimezone string
	row := s.DB.QueryRowContext(context.Background(), `SELECT timezone FROM user_preferences WHERE username = $1`, "jo")
	s.Require().NoError(row.Scan(&storedTimezone))
	s.Equal("Europe/Paris", storedTimezone)

	s.Equal(http.StatusBadRequest, s.putPreferences("jo", `{"timezone": "Mars/Olympus"}`))
}

func (s *IntegrationTestSuite) TestPreferences_AffectStatsAndRecords() {
	s.Require().Equal(http.StatusOK, s.putPreferences("sam", `{
		"weekStartingMonday": true,
		"imperialUnits": true,
		"timezone": "UTC",
		"dateFormat": "dd/MM/yyyy",
		"language": "en",
		"displayAscent": true
	}`))
	defer func() {
		_, err := s.DB.ExecContext(context.Background(), `DELETE FROM user_preferences WHERE username = $1`, "sam")
		s.NoError(err)
	}()

	var chart stats.ChartResponse
	s.Require().Equal(http.StatusOK, s.getJSON("/stats/sam/by_time?duration=month&date=2021-07-15", &chart))
	distances := chart.Datasets[stats.TotalDistance]
	s.Require().Len(distances, 2)
	s.Require().NotNil(distances[0].Data[9])
	s.InDelta(6.21, *distances[0].Data[9], 0.01)

	var groups map[string]records.RecordGroup
	s.Require().Equal(http.StatusOK, s.getJSON("/records/sam", &groups))
	s.Require().Contains(groups, "Cycling")
	s.Require().Len(groups["Cycling"].Records, 2)
	s.Equal("11.18 mi/h", groups["Cycling"].Records[0].Value)
	s.NotContains(groups, "Hiking", "other users' records are left out")
}
