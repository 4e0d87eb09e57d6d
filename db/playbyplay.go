package db

import (
	"github.com/cockroachdb/errors"
)

// Play-by-play rows are keyed on synthesized ids of the form
// "{game_id}_{kind}_{discriminator}" because the feed does not give every
// event a globally unique identifier.

type PBPGoalieChange struct {
	ID             string `db:"id"`
	GameID         int    `db:"game_id"`
	SeasonID       int    `db:"season_id"`
	Period         int    `db:"period"`
	Time           string `db:"time"`
	Seconds        int    `db:"seconds"`
	TeamID         int    `db:"team_id"`
	OpponentTeamID int    `db:"opponent_team_id"`
	GoalieInID     *int   `db:"goalie_in_id"`
	GoalieOutID    *int   `db:"goalie_out_id"`
}

type PBPFaceoff struct {
	ID              string `db:"id"`
	GameID          int    `db:"game_id"`
	SeasonID        int    `db:"season_id"`
	Period          int    `db:"period"`
	Time            string `db:"time"`
	TimeFormatted   string `db:"time_formatted"`
	Seconds         int    `db:"seconds"`
	HomePlayerID    int    `db:"home_player_id"`
	VisitorPlayerID int    `db:"visitor_player_id"`
	HomeWin         bool   `db:"home_win"`
	WinTeamID       int    `db:"win_team_id"`
	OpponentTeamID  int    `db:"opponent_team_id"`
	XLocation       int    `db:"x_location"`
	YLocation       int    `db:"y_location"`
	LocationID      int    `db:"location_id"`
}

type PBPHit struct {
	ID             string `db:"id"`
	GameID         int    `db:"game_id"`
	SeasonID       int    `db:"season_id"`
	Period         int    `db:"period"`
	Time           string `db:"time"`
	TimeFormatted  string `db:"time_formatted"`
	Seconds        int    `db:"seconds"`
	PlayerID       int    `db:"player_id"`
	TeamID         int    `db:"team_id"`
	OpponentTeamID int    `db:"opponent_team_id"`
	Home           bool   `db:"home"`
	XLocation      int    `db:"x_location"`
	YLocation      int    `db:"y_location"`
	HitType        int    `db:"hit_type"`
}

type PBPShot struct {
	ID                     string `db:"id"`
	GameID                 int    `db:"game_id"`
	SeasonID               int    `db:"season_id"`
	PlayerID               int    `db:"player_id"`
	GoalieID               *int   `db:"goalie_id"`
	TeamID                 int    `db:"team_id"`
	OpponentTeamID         int    `db:"opponent_team_id"`
	Home                   bool   `db:"home"`
	Period                 int    `db:"period"`
	Time                   string `db:"time"`
	TimeFormatted          string `db:"time_formatted"`
	Seconds                int    `db:"seconds"`
	XLocation              int    `db:"x_location"`
	YLocation              int    `db:"y_location"`
	ShotType               int    `db:"shot_type"`
	ShotTypeDescription    string `db:"shot_type_description"`
	Quality                int    `db:"quality"`
	ShotQualityDescription string `db:"shot_quality_description"`
	GameGoalID             string `db:"game_goal_id"`
}

type PBPBlockedShot struct {
	ID                     string `db:"id"`
	GameID                 int    `db:"game_id"`
	SeasonID               int    `db:"season_id"`
	PlayerID               int    `db:"player_id"`
	GoalieID               *int   `db:"goalie_id"`
	TeamID                 int    `db:"team_id"`
	BlockerPlayerID        int    `db:"blocker_player_id"`
	BlockerTeamID          int    `db:"blocker_team_id"`
	OpponentTeamID         int    `db:"opponent_team_id"`
	Home                   bool   `db:"home"`
	Period                 int    `db:"period"`
	Time                   string `db:"time"`
	TimeFormatted          string `db:"time_formatted"`
	Seconds                int    `db:"seconds"`
	XLocation              int    `db:"x_location"`
	YLocation              int    `db:"y_location"`
	Orientation            int    `db:"orientation"`
	ShotType               int    `db:"shot_type"`
	ShotTypeDescription    string `db:"shot_type_description"`
	Quality                int    `db:"quality"`
	ShotQualityDescription string `db:"shot_quality_description"`
}

type PBPGoal struct {
	ID              string `db:"id"`
	GameID          int    `db:"game_id"`
	SeasonID        int    `db:"season_id"`
	TeamID          int    `db:"team_id"`
	OpponentTeamID  int    `db:"opponent_team_id"`
	Home            bool   `db:"home"`
	GoalPlayerID    int    `db:"goal_player_id"`
	Assist1PlayerID *int   `db:"assist1_player_id"`
	Assist2PlayerID *int   `db:"assist2_player_id"`
	Period          int    `db:"period"`
	Time            string `db:"time"`
	TimeFormatted   string `db:"time_formatted"`
	Seconds         int    `db:"seconds"`
	XLocation       int    `db:"x_location"`
	YLocation       int    `db:"y_location"`
	LocationSet     bool   `db:"location_set"`
	PowerPlay       bool   `db:"power_play"`
	EmptyNet        bool   `db:"empty_net"`
	PenaltyShot     bool   `db:"penalty_shot"`
	ShortHanded     bool   `db:"short_handed"`
	InsuranceGoal   bool   `db:"insurance_goal"`
	GameWinning     bool   `db:"game_winning"`
	GameTieing      bool   `db:"game_tieing"`
	ScorerGoalNum   int    `db:"scorer_goal_num"`
	GoalType        string `db:"goal_type"`
}

// PBPGoalOnIce is one on-ice plus or minus credit for a goal, keyed
// "{goal_id}_plus_{player_id}" or "{goal_id}_minus_{player_id}".
type PBPGoalOnIce struct {
	ID           string `db:"id"`
	GoalID       string `db:"goal_id"`
	GameID       int    `db:"game_id"`
	SeasonID     int    `db:"season_id"`
	TeamID       int    `db:"team_id"`
	PlayerID     int    `db:"player_id"`
	JerseyNumber int    `db:"jersey_number"`
}

type PBPPenalty struct {
	ID                     string  `db:"id"`
	GameID                 int     `db:"game_id"`
	SeasonID               int     `db:"season_id"`
	PlayerID               int     `db:"player_id"`
	PlayerServed           int     `db:"player_served"`
	TeamID                 int     `db:"team_id"`
	OpponentTeamID         int     `db:"opponent_team_id"`
	Home                   bool    `db:"home"`
	Period                 int     `db:"period"`
	TimeOffFormatted       string  `db:"time_off_formatted"`
	Minutes                float64 `db:"minutes"`
	MinutesFormatted       string  `db:"minutes_formatted"`
	Bench                  bool    `db:"bench"`
	PenaltyShot            bool    `db:"penalty_shot"`
	PP                     bool    `db:"pp"`
	Offence                int     `db:"offence"`
	PenaltyClassID         int     `db:"penalty_class_id"`
	PenaltyClass           string  `db:"penalty_class"`
	LangPenaltyDescription string  `db:"lang_penalty_description"`
}

type PBPShootout struct {
	ID             string `db:"id"`
	GameID         int    `db:"game_id"`
	SeasonID       int    `db:"season_id"`
	PlayerID       int    `db:"player_id"`
	GoalieID       *int   `db:"goalie_id"`
	TeamID         int    `db:"team_id"`
	OpponentTeamID int    `db:"opponent_team_id"`
	Home           bool   `db:"home"`
	ShotOrder      int    `db:"shot_order"`
	Goal           bool   `db:"goal"`
	WinningGoal    bool   `db:"winning_goal"`
	Seconds        int    `db:"seconds"`
}

func (d *DB) UpsertPBPGoalieChange(e PBPGoalieChange) error {
	query := `
		REPLACE INTO pbp_goalie_changes (
			id, game_id, season_id, period, time, seconds,
			team_id, opponent_team_id, goalie_in_id, goalie_out_id
		) VALUES (
			:id, :game_id, :season_id, :period, :time, :seconds,
			:team_id, :opponent_team_id, :goalie_in_id, :goalie_out_id
		)
	`
	if _, err := d.NamedExec(query, e); err != nil {
		return errors.Wrapf(err, "upserting goalie change %s", e.ID)
	}
	return nil
}

func (d *DB) UpsertPBPFaceoff(e PBPFaceoff) error {
	query := `
		REPLACE INTO pbp_faceoffs (
			id, game_id, season_id, period, time, time_formatted, seconds,
			home_player_id, visitor_player_id, home_win, win_team_id,
			opponent_team_id, x_location, y_location, location_id
		) VALUES (
			:id, :game_id, :season_id, :period, :time, :time_formatted, :seconds,
			:home_player_id, :visitor_player_id, :home_win, :win_team_id,
			:opponent_team_id, :x_location, :y_location, :location_id
		)
	`
	if _, err := d.NamedExec(query, e); err != nil {
		return errors.Wrapf(err, "upserting faceoff %s", e.ID)
	}
	return nil
}

func (d *DB) UpsertPBPHit(e PBPHit) error {
	query := `
		REPLACE INTO pbp_hits (
			id, game_id, season_id, period, time, time_formatted, seconds,
			player_id, team_id, opponent_team_id, home,
			x_location, y_location, hit_type
		) VALUES (
			:id, :game_id, :season_id, :period, :time, :time_formatted, :seconds,
			:player_id, :team_id, :opponent_team_id, :home,
			:x_location, :y_location, :hit_type
		)
	`
	if _, err := d.NamedExec(query, e); err != nil {
		return errors.Wrapf(err, "upserting hit %s", e.ID)
	}
	return nil
}

func (d *DB) UpsertPBPShot(e PBPShot) error {
	query := `
		REPLACE INTO pbp_shots (
			id, game_id, season_id, player_id, goalie_id, team_id,
			opponent_team_id, home, period, time, time_formatted, seconds,
			x_location, y_location, shot_type, shot_type_description,
			quality, shot_quality_description, game_goal_id
		) VALUES (
			:id, :game_id, :season_id, :player_id, :goalie_id, :team_id,
			:opponent_team_id, :home, :period, :time, :time_formatted, :seconds,
			:x_location, :y_location, :shot_type, :shot_type_description,
			:quality, :shot_quality_description, :game_goal_id
		)
	`
	if _, err := d.NamedExec(query, e); err != nil {
		return errors.Wrapf(err, "upserting shot %s", e.ID)
	}
	return nil
}

func (d *DB) UpsertPBPBlockedShot(e PBPBlockedShot) error {
	query := `
		REPLACE INTO pbp_blocked_shots (
			id, game_id, season_id, player_id, goalie_id, team_id,
			blocker_player_id, blocker_team_id, opponent_team_id, home,
			period, time, time_formatted, seconds, x_location, y_location,
			orientation, shot_type, shot_type_description,
			quality, shot_quality_description
		) VALUES (
			:id, :game_id, :season_id, :player_id, :goalie_id, :team_id,
			:blocker_player_id, :blocker_team_id, :opponent_team_id, :home,
			:period, :time, :time_formatted, :seconds, :x_location, :y_location,
			:orientation, :shot_type, :shot_type_description,
			:quality, :shot_quality_description
		)
	`
	if _, err := d.NamedExec(query, e); err != nil {
		return errors.Wrapf(err, "upserting blocked shot %s", e.ID)
	}
	return nil
}

// UpsertPBPGoal writes the goal row and replaces its on-ice plus/minus
// lists. The lists have no stable per-entry identity in the feed, so they
// are deleted and reinserted whenever the goal is rewritten.
func (d *DB) UpsertPBPGoal(goal PBPGoal, plus, minus []PBPGoalOnIce) error {
	tx, err := d.Beginx()
	if err != nil {
		return errors.Wrap(err, "begin")
	}
	defer tx.Rollback()

	// In-place update on conflict: the plus/minus rows reference the goal.
	query := `
		INSERT INTO pbp_goals (
			id, game_id, season_id, team_id, opponent_team_id, home,
			goal_player_id, assist1_player_id, assist2_player_id,
			period, time, time_formatted, seconds, x_location, y_location,
			location_set, power_play, empty_net, penalty_shot, short_handed,
			insurance_goal, game_winning, game_tieing, scorer_goal_num, goal_type
		) VALUES (
			:id, :game_id, :season_id, :team_id, :opponent_team_id, :home,
			:goal_player_id, :assist1_player_id, :assist2_player_id,
			:period, :time, :time_formatted, :seconds, :x_location, :y_location,
			:location_set, :power_play, :empty_net, :penalty_shot, :short_handed,
			:insurance_goal, :game_winning, :game_tieing, :scorer_goal_num, :goal_type
		)
		ON CONFLICT (id) DO UPDATE SET
			game_id = excluded.game_id, season_id = excluded.season_id,
			team_id = excluded.team_id,
			opponent_team_id = excluded.opponent_team_id, home = excluded.home,
			goal_player_id = excluded.goal_player_id,
			assist1_player_id = excluded.assist1_player_id,
			assist2_player_id = excluded.assist2_player_id,
			period = excluded.period, time = excluded.time,
			time_formatted = excluded.time_formatted, seconds = excluded.seconds,
			x_location = excluded.x_location, y_location = excluded.y_location,
			location_set = excluded.location_set, power_play = excluded.power_play,
			empty_net = excluded.empty_net, penalty_shot = excluded.penalty_shot,
			short_handed = excluded.short_handed,
			insurance_goal = excluded.insurance_goal,
			game_winning = excluded.game_winning,
			game_tieing = excluded.game_tieing,
			scorer_goal_num = excluded.scorer_goal_num,
			goal_type = excluded.goal_type
	`
	if _, err := tx.NamedExec(query, goal); err != nil {
		return errors.Wrapf(err, "upserting goal %s", goal.ID)
	}

	if _, err := tx.Exec(`DELETE FROM pbp_goals_plus WHERE goal_id = ?`, goal.ID); err != nil {
		return errors.Wrapf(err, "clearing plus players for goal %s", goal.ID)
	}
	if _, err := tx.Exec(`DELETE FROM pbp_goals_minus WHERE goal_id = ?`, goal.ID); err != nil {
		return errors.Wrapf(err, "clearing minus players for goal %s", goal.ID)
	}

	plusQuery := `
		INSERT INTO pbp_goals_plus (
			id, goal_id, game_id, season_id, team_id, player_id, jersey_number
		) VALUES (
			:id, :goal_id, :game_id, :season_id, :team_id, :player_id, :jersey_number
		)
	`
	for _, p := range plus {
		if _, err := tx.NamedExec(plusQuery, p); err != nil {
			return errors.Wrapf(err, "inserting plus player %s", p.ID)
		}
	}
	minusQuery := `
		INSERT INTO pbp_goals_minus (
			id, goal_id, game_id, season_id, team_id, player_id, jersey_number
		) VALUES (
			:id, :goal_id, :game_id, :season_id, :team_id, :player_id, :jersey_number
		)
	`
	for _, m := range minus {
		if _, err := tx.NamedExec(minusQuery, m); err != nil {
			return errors.Wrapf(err, "inserting minus player %s", m.ID)
		}
	}

	return tx.Commit()
}

func (d *DB) UpsertPBPPenalty(e PBPPenalty) error {
	query := `
		REPLACE INTO pbp_penalties (
			id, game_id, season_id, player_id, player_served, team_id,
			opponent_team_id, home, period, time_off_formatted, minutes,
			minutes_formatted, bench, penalty_shot, pp, offence,
			penalty_class_id, penalty_class, lang_penalty_description
		) VALUES (
			:id, :game_id, :season_id, :player_id, :player_served, :team_id,
			:opponent_team_id, :home, :period, :time_off_formatted, :minutes,
			:minutes_formatted, :bench, :penalty_shot, :pp, :offence,
			:penalty_class_id, :penalty_class, :lang_penalty_description
		)
	`
	if _, err := d.NamedExec(query, e); err != nil {
		return errors.Wrapf(err, "upserting penalty %s", e.ID)
	}
	return nil
}

func (d *DB) UpsertPBPShootout(e PBPShootout) error {
	query := `
		REPLACE INTO pbp_shootouts (
			id, game_id, season_id, player_id, goalie_id, team_id,
			opponent_team_id, home, shot_order, goal, winning_goal, seconds
		) VALUES (
			:id, :game_id, :season_id, :player_id, :goalie_id, :team_id,
			:opponent_team_id, :home, :shot_order, :goal, :winning_goal, :seconds
		)
	`
	if _, err := d.NamedExec(query, e); err != nil {
		return errors.Wrapf(err, "upserting shootout attempt %s", e.ID)
	}
	return nil
}
