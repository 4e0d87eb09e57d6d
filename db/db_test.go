package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	d, err := Open(filepath.Join(t.TempDir(), "pwhl.db"))
	require.NoError(t, err)
	t.Cleanup(func() { d.Close() })
	return d
}

func intPtr(v int) *int { return &v }

func seedPlayers(t *testing.T, d *DB, players ...Player) {
	t.Helper()
	for _, p := range players {
		_, err := d.UpsertPlayer(p)
		require.NoError(t, err)
	}
}

// seedGameFixture inserts the reference rows the event tables hang off of.
func seedGameFixture(t *testing.T, d *DB) {
	t.Helper()
	require.NoError(t, d.UpsertSeasons([]Season{{ID: 5, Name: "2024-25 Regular Season"}}))
	require.NoError(t, d.UpsertTeams([]Team{
		{ID: 1, Name: "Montreal Victoire", Code: "MON"},
		{ID: 2, Name: "Toronto Sceptres", Code: "TOR"},
	}))
	require.NoError(t, d.UpsertGames([]Game{{
		ID: 100, SeasonID: 5, HomeTeam: 1, VisitingTeam: 2, GameStatus: "Final",
	}}))
}

func TestOpenCreatesSchema(t *testing.T) {
	d := newTestDB(t)

	var tables []string
	err := d.Select(&tables, `SELECT name FROM sqlite_master WHERE type = 'table' ORDER BY name`)
	require.NoError(t, err)
	assert.Contains(t, tables, "players")
	assert.Contains(t, tables, "pbp_goals_minus")
	assert.Contains(t, tables, "season_stats_goalies")

	var fk int
	require.NoError(t, d.Get(&fk, `PRAGMA foreign_keys`))
	assert.Equal(t, 1, fk)
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pwhl.db")
	d, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, d.UpsertLeagues([]League{{ID: 1, Name: "PWHL"}}))
	require.NoError(t, d.Close())

	d, err = Open(path)
	require.NoError(t, err)
	defer d.Close()
	l, err := d.SelectLeague(1)
	require.NoError(t, err)
	assert.Equal(t, "PWHL", l.Name)
}

func TestLeagueUpsertUpdatesInPlace(t *testing.T) {
	d := newTestDB(t)

	require.NoError(t, d.UpsertLeagues([]League{{ID: 1, Name: "PWHL", Code: "pwhl"}}))
	require.NoError(t, d.UpsertLeagues([]League{{ID: 1, Name: "Professional Women's Hockey League", Code: "pwhl"}}))

	var count int
	require.NoError(t, d.Get(&count, `SELECT COUNT(*) FROM leagues`))
	assert.Equal(t, 1, count)

	l, err := d.SelectLeague(1)
	require.NoError(t, err)
	assert.Equal(t, "Professional Women's Hockey League", l.Name)
}

func TestUpsertPlayerPreservesBioFields(t *testing.T) {
	d := newTestDB(t)
	require.NoError(t, d.UpsertTeams([]Team{{ID: 1, Name: "Montreal Victoire"}}))

	first := Player{
		ID: 42, FirstName: "Marie", LastName: "Poulin", JerseyNumber: 29,
		Position: "F", Height: "5'9", Birthtown: "Beauceville",
		Birthcntry: "CAN", LatestTeamID: intPtr(1),
	}
	written, err := d.UpsertPlayer(first)
	require.NoError(t, err)
	assert.True(t, written)

	// A sparser payload must not blank the bio fields.
	second := first
	second.JerseyNumber = 30
	second.Height = ""
	second.Birthtown = ""
	second.Birthcntry = ""
	written, err = d.UpsertPlayer(second)
	require.NoError(t, err)
	assert.True(t, written)

	got, err := d.SelectPlayer(42)
	require.NoError(t, err)
	assert.Equal(t, 30, got.JerseyNumber)
	assert.Equal(t, "5'9", got.Height)
	assert.Equal(t, "Beauceville", got.Birthtown)
	assert.Equal(t, "CAN", got.Birthcntry)

	// Identical payload is a no-op.
	written, err = d.UpsertPlayer(second)
	require.NoError(t, err)
	assert.False(t, written)
}

func TestGamesWithoutPlayByPlay(t *testing.T) {
	d := newTestDB(t)
	seedGameFixture(t, d)
	require.NoError(t, d.UpsertGames([]Game{
		{ID: 101, SeasonID: 5, HomeTeam: 1, VisitingTeam: 2, GameStatus: "Final"},
		{ID: 102, SeasonID: 5, HomeTeam: 2, VisitingTeam: 1, GameStatus: ""},
	}))
	seedPlayers(t, d, Player{ID: 7, FirstName: "A", LastName: "B"}, Player{ID: 8, FirstName: "C", LastName: "D"})

	// Game 100 gets an event, game 101 stays empty, game 102 is not final.
	require.NoError(t, d.UpsertPBPFaceoff(PBPFaceoff{
		ID: "100_faceoff_1_20_00", GameID: 100, SeasonID: 5, Period: 1,
		HomePlayerID: 7, VisitorPlayerID: 8, WinTeamID: 1, OpponentTeamID: 2,
	}))

	refs, err := d.GamesWithoutPlayByPlay()
	require.NoError(t, err)
	require.Len(t, refs, 1)
	assert.Equal(t, 101, refs[0].ID)
	assert.Equal(t, 5, refs[0].SeasonID)
}

func TestUpsertPBPGoalReplacesOnIceLists(t *testing.T) {
	d := newTestDB(t)
	seedGameFixture(t, d)
	seedPlayers(t, d, Player{ID: 7, FirstName: "A", LastName: "B"}, Player{ID: 8, FirstName: "C", LastName: "D"})

	goal := PBPGoal{
		ID: "100_goal_55", GameID: 100, SeasonID: 5, TeamID: 1,
		OpponentTeamID: 2, GoalPlayerID: 7, Period: 2, Seconds: 1510,
	}
	plus := []PBPGoalOnIce{
		{ID: "100_goal_55_plus_7", GoalID: goal.ID, GameID: 100, SeasonID: 5, TeamID: 1, PlayerID: 7},
		{ID: "100_goal_55_plus_8", GoalID: goal.ID, GameID: 100, SeasonID: 5, TeamID: 1, PlayerID: 8},
	}
	require.NoError(t, d.UpsertPBPGoal(goal, plus, nil))

	// Rewriting the goal with a shorter list must not leave stale credits.
	require.NoError(t, d.UpsertPBPGoal(goal, plus[:1], nil))

	var count int
	require.NoError(t, d.Get(&count, `SELECT COUNT(*) FROM pbp_goals_plus WHERE goal_id = ?`, goal.ID))
	assert.Equal(t, 1, count)
	require.NoError(t, d.Get(&count, `SELECT COUNT(*) FROM pbp_goals WHERE id = ?`, goal.ID))
	assert.Equal(t, 1, count)
}

func TestUpsertGameStatsIdempotent(t *testing.T) {
	d := newTestDB(t)
	seedGameFixture(t, d)
	seedPlayers(t, d, Player{ID: 7, FirstName: "A", LastName: "B", Position: "F"})

	row := GameStatsSkater{
		ID: "100_7", GameID: 100, PlayerID: 7, TeamID: 1, SeasonID: 5,
		Goals: 1, Assists: 2, Shots: 5,
	}
	require.NoError(t, d.UpsertGameStatsSkaters([]GameStatsSkater{row}))
	row.Assists = 3
	require.NoError(t, d.UpsertGameStatsSkaters([]GameStatsSkater{row}))

	var assists, count int
	require.NoError(t, d.Get(&count, `SELECT COUNT(*) FROM game_stats_skaters`))
	require.NoError(t, d.Get(&assists, `SELECT assists FROM game_stats_skaters WHERE id = '100_7'`))
	assert.Equal(t, 1, count)
	assert.Equal(t, 3, assists)
}

func TestResetRequiresConfirmation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pwhl.db")
	d, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, d.UpsertLeagues([]League{{ID: 1, Name: "PWHL"}}))
	require.NoError(t, d.Close())

	_, err = Reset(path, false)
	require.Error(t, err)

	d, err = Reset(path, true)
	require.NoError(t, err)
	defer d.Close()

	var count int
	require.NoError(t, d.Get(&count, `SELECT COUNT(*) FROM leagues`))
	assert.Equal(t, 0, count)
}
