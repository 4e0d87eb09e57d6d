package db

import (
	"github.com/cockroachdb/errors"
)

type Game struct {
	ID                int    `db:"id"`
	SeasonID          int    `db:"season_id"`
	GameNumber        int    `db:"game_number"`
	Date              string `db:"date"`
	HomeTeam          int    `db:"home_team"`
	VisitingTeam      int    `db:"visiting_team"`
	HomeGoalCount     int    `db:"home_goal_count"`
	VisitingGoalCount int    `db:"visiting_goal_count"`
	Periods           int    `db:"periods"`
	Overtime          bool   `db:"overtime"`
	Shootout          bool   `db:"shootout"`
	Status            int    `db:"status"`
	GameStatus        string `db:"game_status"`
	VenueName         string `db:"venue_name"`
	VenueLocation     string `db:"venue_location"`
	Attendance        int    `db:"attendance"`
}

func (d *DB) UpsertGames(games []Game) error {
	tx, err := d.Beginx()
	if err != nil {
		return errors.Wrap(err, "begin")
	}
	defer tx.Rollback()

	// In-place update on conflict: event and stats rows reference the game.
	query := `
		INSERT INTO games (
			id, season_id, game_number, date, home_team, visiting_team,
			home_goal_count, visiting_goal_count, periods, overtime, shootout,
			status, game_status, venue_name, venue_location, attendance
		) VALUES (
			:id, :season_id, :game_number, :date, :home_team, :visiting_team,
			:home_goal_count, :visiting_goal_count, :periods, :overtime, :shootout,
			:status, :game_status, :venue_name, :venue_location, :attendance
		)
		ON CONFLICT (id) DO UPDATE SET
			season_id = excluded.season_id, game_number = excluded.game_number,
			date = excluded.date, home_team = excluded.home_team,
			visiting_team = excluded.visiting_team,
			home_goal_count = excluded.home_goal_count,
			visiting_goal_count = excluded.visiting_goal_count,
			periods = excluded.periods, overtime = excluded.overtime,
			shootout = excluded.shootout, status = excluded.status,
			game_status = excluded.game_status, venue_name = excluded.venue_name,
			venue_location = excluded.venue_location, attendance = excluded.attendance
	`
	for _, g := range games {
		if _, err := tx.NamedExec(query, g); err != nil {
			return errors.Wrapf(err, "upserting game %d", g.ID)
		}
	}
	return tx.Commit()
}

func (d *DB) SelectGame(id int) (*Game, error) {
	var g Game
	if err := d.Get(&g, `SELECT * FROM games WHERE id = ?`, id); err != nil {
		return nil, errors.Wrapf(err, "selecting game %d", id)
	}
	return &g, nil
}

func (d *DB) SelectGamesBySeason(seasonID int) ([]Game, error) {
	games := []Game{}
	if err := d.Select(&games, `SELECT * FROM games WHERE season_id = ? ORDER BY date`, seasonID); err != nil {
		return nil, errors.Wrapf(err, "selecting games for season %d", seasonID)
	}
	return games, nil
}

// SelectFinalGameIDs returns the ids of completed games, newest last, for
// the game stats scraper.
func (d *DB) SelectFinalGameIDs() ([]int, error) {
	ids := []int{}
	query := `SELECT id FROM games WHERE game_status = 'Final' ORDER BY id`
	if err := d.Select(&ids, query); err != nil {
		return nil, errors.Wrap(err, "selecting final games")
	}
	return ids, nil
}

func (d *DB) GameExists(id int) (bool, error) {
	var count int
	if err := d.Get(&count, `SELECT COUNT(*) FROM games WHERE id = ?`, id); err != nil {
		return false, errors.Wrapf(err, "checking game %d", id)
	}
	return count > 0, nil
}

// GameRef identifies a game together with its season, the pair every
// per-game scraper needs.
type GameRef struct {
	ID       int `db:"id"`
	SeasonID int `db:"season_id"`
}

// GamesWithoutPlayByPlay finds completed games that have no rows in any of
// the play-by-play event tables, to drive incremental backfill.
func (d *DB) GamesWithoutPlayByPlay() ([]GameRef, error) {
	refs := []GameRef{}
	query := `
		SELECT g.id, g.season_id
		FROM games g
		LEFT JOIN (
			SELECT DISTINCT game_id FROM pbp_faceoffs
			UNION SELECT DISTINCT game_id FROM pbp_shots
			UNION SELECT DISTINCT game_id FROM pbp_goals
			UNION SELECT DISTINCT game_id FROM pbp_hits
			UNION SELECT DISTINCT game_id FROM pbp_penalties
			UNION SELECT DISTINCT game_id FROM pbp_blocked_shots
			UNION SELECT DISTINCT game_id FROM pbp_goalie_changes
			UNION SELECT DISTINCT game_id FROM pbp_shootouts
		) pbp ON g.id = pbp.game_id
		WHERE pbp.game_id IS NULL
		AND g.game_status = 'Final'
		ORDER BY g.id
	`
	if err := d.Select(&refs, query); err != nil {
		return nil, errors.Wrap(err, "selecting games without play-by-play")
	}
	return refs, nil
}
