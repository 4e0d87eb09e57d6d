package scrape

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IsabelleLefebvre97/PWHL-Scraper/config"
	"github.com/IsabelleLefebvre97/PWHL-Scraper/db"
	"github.com/IsabelleLefebvre97/PWHL-Scraper/hockeytech"
)

func newTestScraper(t *testing.T, handler http.Handler) (*Scraper, *db.DB) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := config.Default()
	cfg.BaseURL = srv.URL + "/"
	cfg.RateLimit = time.Millisecond

	store, err := db.Open(filepath.Join(t.TempDir(), "pwhl.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return New(hockeytech.NewClient(cfg), store), store
}

// routeFeed dispatches feed requests on their view (or game center tab),
// with the seasonstats player view split out by its category param.
func routeFeed(t *testing.T, routes map[string]string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		key := q.Get("view")
		if key == "" {
			key = q.Get("tab")
		}
		if key == "player" && q.Get("category") == "seasonstats" {
			key = "seasonstats"
		}
		body, ok := routes[key]
		if !ok {
			t.Errorf("unexpected feed request: %s", r.URL.RawQuery)
			w.Write([]byte(`{}`))
			return
		}
		w.Write([]byte(body))
	})
}

func seedSeasonAndTeams(t *testing.T, store *db.DB) {
	t.Helper()
	require.NoError(t, store.UpsertSeasons([]db.Season{
		{ID: 5, Name: "2024-25 Regular Season"},
	}))
	require.NoError(t, store.UpsertTeams([]db.Team{
		{ID: 1, Name: "Montreal Victoire", Code: "MTL"},
		{ID: 2, Name: "Toronto Sceptres", Code: "TOR"},
	}))
}

func TestUpdateBasicInfo(t *testing.T) {
	s, store := newTestScraper(t, routeFeed(t, map[string]string{
		"bootstrap": `({"current_league_id":"1",
			"leagues":[{"id":"1","name":"Professional Women's Hockey League","short_name":"PWHL","code":"pwhl"}],
			"conferences":[],
			"divisions":[{"id":"1","name":"PWHL"}]})`,
		"seasons": `{"SiteKit":{"Seasons":[
			{"season_id":"5","season_name":"2024-25 Regular Season","career":"0","playoff":"0"},
			{"season_id":"6","season_name":"2025 Playoffs","career":"0","playoff":"1"}]}}`,
		"teamsbyseason": `{"SiteKit":{"Teamsbyseason":[
			{"id":"1","name":"Montreal Victoire","nickname":"Victoire","code":"MTL","city":"Montreal","division_id":"1"},
			{"id":"2","name":"Toronto Sceptres","nickname":"Sceptres","code":"TOR","city":"Toronto","division_id":"1"}]}}`,
	}))

	require.NoError(t, s.UpdateBasicInfo())

	league, err := store.SelectLeague(1)
	require.NoError(t, err)
	assert.Equal(t, "PWHL", league.ShortName)

	seasons, err := store.SelectSeasons()
	require.NoError(t, err)
	require.Len(t, seasons, 2)

	playoffs, err := store.SelectPlayoffSeasons()
	require.NoError(t, err)
	require.Len(t, playoffs, 1)
	assert.Equal(t, 6, playoffs[0].ID)

	teams, err := store.SelectTeams()
	require.NoError(t, err)
	assert.Len(t, teams, 2)
}

func TestUpdatePlayersWalksRosters(t *testing.T) {
	s, store := newTestScraper(t, routeFeed(t, map[string]string{
		"roster": `{"SiteKit":{"Roster":[
			{"player_id":"42","first_name":"Marie","last_name":"Tremblay","tp_jersey_number":"9",
			 "position":"F","height":"5-7","birthtown":"Kleinburg","birthcntry":"Canada",
			 "latest_team_id":"1","draftinfo":[{"draft_type":"2023 Draft"}]},
			{"player_id":"43","first_name":"Ann","last_name":"Frost","tp_jersey_number":"31",
			 "position":"G","latest_team_id":"1","draftinfo":[]}]}}`,
		"player": `{"SiteKit":{"Player":{"first_name":"Ann","last_name":"Frost","draft_type":"Free Agent","position":"G"}}}`,
	}))
	seedSeasonAndTeams(t, store)

	updated, err := s.UpdatePlayers(0)
	require.NoError(t, err)
	assert.Equal(t, 2, updated)

	p, err := store.SelectPlayer(42)
	require.NoError(t, err)
	assert.Equal(t, "Tremblay", p.LastName)
	assert.Equal(t, "Canada", p.Nationality)
	assert.Equal(t, "2023 Draft", p.DraftType)

	// The roster carried no draft info, so the profile view filled it in.
	goalie, err := store.SelectPlayer(43)
	require.NoError(t, err)
	assert.Equal(t, "Free Agent", goalie.DraftType)

	// Identical payloads on a second run write nothing.
	updated, err = s.UpdatePlayers(0)
	require.NoError(t, err)
	assert.Equal(t, 0, updated)
}

func TestUpdateGamesSkipsMalformedEntries(t *testing.T) {
	s, store := newTestScraper(t, routeFeed(t, map[string]string{
		"schedule": `{"SiteKit":{"Schedule":[
			{"game_id":"100","season_id":"5","game_number":"1","GameDateISO8601":"2025-01-04T14:00:00-05:00",
			 "home_team":"1","visiting_team":"2","home_goal_count":"3","visiting_goal_count":"2",
			 "period":"3","status":"4","game_status":"Final","venue_name":"Place Bell","attendance":"10172"},
			{"game_id":"101","season_id":"5","game_number":"2","home_team":"2","visiting_team":"1","game_status":"Scheduled"},
			{"game_id":"0","season_id":"5","home_team":"1","visiting_team":"2"}]}}`,
	}))
	seedSeasonAndTeams(t, store)

	updated, err := s.UpdateGames(5)
	require.NoError(t, err)
	assert.Equal(t, 2, updated)

	games, err := store.SelectGamesBySeason(5)
	require.NoError(t, err)
	require.Len(t, games, 2)

	game, err := store.SelectGame(100)
	require.NoError(t, err)
	assert.Equal(t, "Final", game.GameStatus)
	assert.Equal(t, 10172, game.Attendance)
}

func TestUpdateStatsForSingleGame(t *testing.T) {
	s, store := newTestScraper(t, routeFeed(t, map[string]string{
		"gamesummary": `{"GC":{"Gamesummary":{
			"meta":{"season_id":"5","home_team":"1","visiting_team":"2","home_goal_count":"3","visiting_goal_count":"2"},
			"shotsByPeriod":{"home":{"1":"10","2":"8","3":"7"},"visitor":{"1":"6","2":"9","3":"11"}},
			"powerPlayCount":{"home":"4","visitor":"3"},
			"powerPlayGoals":{"home":"1","visitor":"0"},
			"totalFaceoffs":{"home":{"won":"31"},"visitor":{"won":"24"}},
			"totalHits":{"home":"18","visitor":"22"},
			"home_team_lineup":{
				"players":[{"player_id":"42","jersey_number":"9","position_str":"F","goals":"2","assists":"1","plusminus":"+2","shots_on":"5"}],
				"goalies":[{"player_id":"43","jersey_number":"31","position_str":"G","seconds":"3600","time":"60:00","shots_against":"26","goals_against":"2","saves":"24"}]},
			"visitor_team_lineup":{"players":[],"goalies":[]}}}}`,
	}))
	seedSeasonAndTeams(t, store)
	require.NoError(t, store.UpsertGames([]db.Game{
		{ID: 100, SeasonID: 5, HomeTeam: 1, VisitingTeam: 2, Status: 4, GameStatus: "Final"},
	}))
	for _, p := range []db.Player{
		{ID: 42, FirstName: "Marie", LastName: "Tremblay", Position: "F"},
		{ID: 43, FirstName: "Ann", LastName: "Frost", Position: "G"},
	} {
		_, err := store.UpsertPlayer(p)
		require.NoError(t, err)
	}

	require.NoError(t, s.UpdateStats(0, 100))

	var teamRows []db.GameStatsTeam
	require.NoError(t, store.Select(&teamRows, `SELECT * FROM game_stats_teams ORDER BY id`))
	require.Len(t, teamRows, 2)
	assert.Equal(t, "100_home_1", teamRows[0].ID)
	assert.Equal(t, 25, teamRows[0].ShotsOnGoal)
	assert.Equal(t, 31, teamRows[0].FaceoffWins)
	assert.Equal(t, "100_visitor_2", teamRows[1].ID)
	assert.Equal(t, 26, teamRows[1].ShotsOnGoal)

	var skater db.GameStatsSkater
	require.NoError(t, store.Get(&skater, `SELECT * FROM game_stats_skaters WHERE id = ?`, "100_42"))
	assert.Equal(t, 2, skater.Goals)
	assert.Equal(t, 2, skater.PlusMinus)

	var goalie db.GameStatsGoalie
	require.NoError(t, store.Get(&goalie, `SELECT * FROM game_stats_goalies WHERE id = ?`, "100_43"))
	assert.Equal(t, 24, goalie.Saves)
}

func TestUpdatePlayoffs(t *testing.T) {
	s, store := newTestScraper(t, routeFeed(t, map[string]string{
		"brackets": `{"SiteKit":{"Brackets":{"rounds":[
			{"round":"1","round_name":"Semifinals","round_type_id":"2","round_type_name":"Best of 5","matchups":[
				{"series_letter":"A","series_name":"Semifinal A","active":"0",
				 "team1":"1","team2":"2","winner":"2","team1_wins":"1","team2_wins":"3","ties":"0",
				 "games":[{"game_id":"200"},{"game_id":"999"}]}]}]}}}`,
	}))
	require.NoError(t, store.UpsertSeasons([]db.Season{
		{ID: 6, Name: "2025 Playoffs", Playoff: true},
	}))
	require.NoError(t, store.UpsertTeams([]db.Team{
		{ID: 1, Name: "Montreal Victoire"},
		{ID: 2, Name: "Toronto Sceptres"},
	}))
	require.NoError(t, store.UpsertGames([]db.Game{
		{ID: 200, SeasonID: 6, HomeTeam: 1, VisitingTeam: 2, GameStatus: "Final"},
	}))

	require.NoError(t, s.UpdatePlayoffs(0))

	var series db.PlayoffSeries
	require.NoError(t, store.Get(&series, `SELECT * FROM playoff_series WHERE id = ?`, "6_1_A"))
	require.NotNil(t, series.Winner)
	assert.Equal(t, 2, *series.Winner)
	assert.Equal(t, 3, series.Team2Wins)

	// Game 999 is not in the schedule, so only the known game is linked.
	var gameIDs []int
	require.NoError(t, store.Select(&gameIDs, `SELECT game_id FROM playoff_games WHERE series_id = ?`, "6_1_A"))
	assert.Equal(t, []int{200}, gameIDs)
}

func TestUpdatePlayByPlayBackfillsFinalGames(t *testing.T) {
	s, store := newTestScraper(t, routeFeed(t, map[string]string{
		"gameCenterPlayByPlay": `{"GC":{"Pxpverbose":[
			{"event":"faceoff","period":"1","time":"0:00","time_formatted":"0:00","s":"0",
			 "home_player_id":"42","visitor_player_id":"44","home_win":"1","win_team_id":"1",
			 "x_location":"300","y_location":"150","location_id":"1"},
			{"event":"goal","id":"7","team_id":"1","home":"1","goal_player_id":"42",
			 "assist1_player_id":"0","assist2_player_id":"0","period":"2nd","time":"05:12",
			 "time_formatted":"05:12","s":"312","power_play":"1",
			 "plus":[{"player_id":"42","team_id":"1","jersey_number":"9"}],
			 "minus":[{"player_id":"44","team_id":"2","jersey_number":"17"}]},
			{"event":"shootout","id":"3","player_id":"44","goalie_id":"43","team_id":"2",
			 "home":"0","shot_order":"1","goal":"1","winning_goal":"1","s":"3900"}]}}`,
	}))
	seedSeasonAndTeams(t, store)
	require.NoError(t, store.UpsertGames([]db.Game{
		{ID: 100, SeasonID: 5, HomeTeam: 1, VisitingTeam: 2, Status: 4, GameStatus: "Final"},
	}))
	for _, p := range []db.Player{
		{ID: 42, FirstName: "Marie", LastName: "Tremblay"},
		{ID: 43, FirstName: "Ann", LastName: "Frost"},
		{ID: 44, FirstName: "Sarah", LastName: "Nurse"},
	} {
		_, err := store.UpsertPlayer(p)
		require.NoError(t, err)
	}

	processed, err := s.UpdatePlayByPlay(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, processed)

	var faceoff db.PBPFaceoff
	require.NoError(t, store.Get(&faceoff, `SELECT * FROM pbp_faceoffs WHERE id = ?`, "100_faceoff_1_0_00"))
	assert.Equal(t, 1, faceoff.WinTeamID)
	assert.Equal(t, 2, faceoff.OpponentTeamID)

	var goal db.PBPGoal
	require.NoError(t, store.Get(&goal, `SELECT * FROM pbp_goals WHERE id = ?`, "100_goal_7"))
	assert.Equal(t, 2, goal.Period)
	assert.True(t, goal.PowerPlay)
	assert.Nil(t, goal.Assist1PlayerID)

	var plusCount, minusCount int
	require.NoError(t, store.Get(&plusCount, `SELECT COUNT(*) FROM pbp_goals_plus WHERE goal_id = ?`, "100_goal_7"))
	require.NoError(t, store.Get(&minusCount, `SELECT COUNT(*) FROM pbp_goals_minus WHERE goal_id = ?`, "100_goal_7"))
	assert.Equal(t, 1, plusCount)
	assert.Equal(t, 1, minusCount)

	var shootout db.PBPShootout
	require.NoError(t, store.Get(&shootout, `SELECT * FROM pbp_shootouts WHERE id = ?`, "100_shootout_3"))
	assert.True(t, shootout.WinningGoal)
	assert.Equal(t, 1, shootout.OpponentTeamID)

	// The game now has events on file, so another backfill run is a no-op.
	processed, err = s.UpdatePlayByPlay(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, processed)
}
