package hockeytech

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IsabelleLefebvre97/PWHL-Scraper/config"
)

func testClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := config.Default()
	cfg.BaseURL = srv.URL + "/"
	cfg.RateLimit = time.Millisecond
	cfg.MaxRetries = 3
	c := NewClient(cfg)
	c.retryWait = time.Millisecond
	return c
}

func TestFetchStripsJSONPWrapper(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "446521baf8c38984", r.URL.Query().Get("key"))
		assert.Equal(t, "pwhl", r.URL.Query().Get("client_code"))
		w.Write([]byte(`({"SiteKit":{"Seasons":[{"season_id":"5","season_name":"2024-25"}]}})`))
	}))

	seasons, err := c.FetchSeasons()
	require.NoError(t, err)
	require.Len(t, seasons, 1)
	assert.Equal(t, 5, seasons[0].ID.V())
	assert.Equal(t, "2024-25", seasons[0].Name)
}

func TestFetchRetriesTransientFailures(t *testing.T) {
	var calls atomic.Int32
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"SiteKit":{"Seasons":[]}}`))
	}))

	_, err := c.FetchSeasons()
	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
}

func TestFetchGivesUpAfterMaxRetries(t *testing.T) {
	var calls atomic.Int32
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))

	_, err := c.FetchSeasons()
	require.Error(t, err)
	assert.Equal(t, int32(3), calls.Load())
}

func TestFetchSpacesRequests(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	c.limiter.SetLimit(20) // 50ms between requests

	var out struct{}
	require.NoError(t, c.Fetch(url.Values{}, &out))
	start := time.Now()
	require.NoError(t, c.Fetch(url.Values{}, &out))
	assert.GreaterOrEqual(t, time.Since(start), 40*time.Millisecond)
}

func TestFetchRosterSkipsCoachEntries(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "roster", r.URL.Query().Get("view"))
		assert.Equal(t, "3", r.URL.Query().Get("team_id"))
		w.Write([]byte(`{"SiteKit":{"Roster":[
			{"player_id":"42","first_name":"Marie","last_name":"Philip","tp_jersey_number":"29"},
			[{"first_name":"Coach","last_name":"Somebody"}],
			{"name":"Equipment Manager"}
		]}}`))
	}))

	players, err := c.FetchRoster(3, 5)
	require.NoError(t, err)
	require.Len(t, players, 1)
	assert.Equal(t, 42, players[0].PlayerID.V())
	assert.Equal(t, 29, players[0].JerseyNumber.V())
}

func TestFetchStandingsSkipsHeaderRows(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "standings", r.URL.Query().Get("type"))
		w.Write([]byte(`{"SiteKit":{"Statviewtype":[
			{"sectionName":"League"},
			{"team_id":"1","name":"Montreal","wins":"12","points":"40","win_percentage":"0.667"}
		]}}`))
	}))

	rows, err := c.FetchStandings(5)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 1, rows[0].TeamID.V())
	assert.Equal(t, 12, rows[0].Wins.V())
	assert.InDelta(t, 0.667, rows[0].WinPercentage.V(), 0.0001)
}

func TestFetchPlayByPlayDecodesEventKinds(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "gameCenterPlayByPlay", r.URL.Query().Get("view"))
		w.Write([]byte(`{"GC":{"Pxpverbose":[
			{"event":"goal","id":"77","team_id":"2","goal_player_id":"8","period":"2nd","s":"1510",
			 "power_play":"1","plus":[{"player_id":"8","team_id":"2","jersey_number":"9"}],"minus":[]},
			{"event":"shootout","id":"3","player_id":"14","goalie_id":"30","team_id":"1","home":"1",
			 "shot_order":"2","goal":"1","winning_goal":"0"}
		]}}`))
	}))

	events, err := c.FetchPlayByPlay(9001)
	require.NoError(t, err)
	require.Len(t, events, 2)

	require.Equal(t, EventGoal, events[0].Kind)
	var goal GoalEvent
	require.NoError(t, events[0].Decode(&goal))
	assert.Equal(t, 8, goal.GoalPlayerID.V())
	assert.True(t, goal.PowerPlay.V())
	require.Len(t, goal.Plus, 1)
	assert.Equal(t, 9, goal.Plus[0].JerseyNumber.V())

	require.Equal(t, EventShootout, events[1].Kind)
	var so ShootoutEvent
	require.NoError(t, events[1].Decode(&so))
	assert.Equal(t, 2, so.ShotOrder.V())
	assert.True(t, so.Goal.V())
	assert.False(t, so.WinningGoal.V())
}

func TestFetchGameSummaryShotTotals(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "gc", r.URL.Query().Get("feed"))
		w.Write([]byte(`{"GC":{"Gamesummary":{
			"meta":{"season_id":"5","home_team":"1","visiting_team":"2","home_goal_count":"3","visiting_goal_count":"2"},
			"shotsByPeriod":{"home":{"1":"10","2":"8","3":"12"},"visitor":{"1":"7","2":"9","3":"5"}},
			"totalFaceoffs":{"home":{"won":"31"},"visitor":{"won":"24"}},
			"totalHits":{"home":"14","visitor":"18"}
		}}}`))
	}))

	summary, err := c.FetchGameSummary(42)
	require.NoError(t, err)
	assert.Equal(t, 30, summary.ShotsOnGoal("home"))
	assert.Equal(t, 21, summary.ShotsOnGoal("visitor"))
	assert.Equal(t, 31, summary.TotalFaceoffs.Home.Won.V())
}
