package db

import (
	"github.com/cockroachdb/errors"
)

// SeasonStatsTeam is a standings row, keyed "{season_id}_{team_id}".
type SeasonStatsTeam struct {
	ID                      string  `db:"id"`
	SeasonID                int     `db:"season_id"`
	TeamID                  int     `db:"team_id"`
	Name                    string  `db:"name"`
	Nickname                string  `db:"nickname"`
	City                    string  `db:"city"`
	TeamCode                string  `db:"team_code"`
	DivisionID              int     `db:"division_id"`
	GamesPlayed             int     `db:"games_played"`
	Wins                    int     `db:"wins"`
	Losses                  int     `db:"losses"`
	Ties                    int     `db:"ties"`
	OTLosses                int     `db:"ot_losses"`
	ShootoutWins            int     `db:"shootout_wins"`
	ShootoutLosses          int     `db:"shootout_losses"`
	RegulationWins          int     `db:"regulation_wins"`
	Row                     int     `db:"row"`
	Points                  int     `db:"points"`
	PenaltyMinutes          int     `db:"penalty_minutes"`
	GoalsFor                int     `db:"goals_for"`
	GoalsAgainst            int     `db:"goals_against"`
	GoalsDiff               int     `db:"goals_diff"`
	PowerPlayGoals          int     `db:"power_play_goals"`
	PowerPlayGoalsAgainst   int     `db:"power_play_goals_against"`
	ShortHandedGoalsFor     int     `db:"short_handed_goals_for"`
	ShortHandedGoalsAgainst int     `db:"short_handed_goals_against"`
	PowerPlayPct            float64 `db:"power_play_pct"`
	PenaltyKillPct          float64 `db:"penalty_kill_pct"`
	WinPercentage           float64 `db:"win_percentage"`
	HomeRecord              string  `db:"home_record"`
	VisitingRecord          string  `db:"visiting_record"`
	ShootoutRecord          string  `db:"shootout_record"`
}

// SeasonStatsSkater is one skater season line, keyed "{season_id}_{player_id}".
type SeasonStatsSkater struct {
	ID                    string  `db:"id"`
	PlayerID              int     `db:"player_id"`
	SeasonID              int     `db:"season_id"`
	TeamID                *int    `db:"team_id"`
	JerseyNumber          int     `db:"jersey_number"`
	Shoots                string  `db:"shoots"`
	GamesPlayed           int     `db:"games_played"`
	Goals                 int     `db:"goals"`
	Assists               int     `db:"assists"`
	Points                int     `db:"points"`
	PointsPerGame         float64 `db:"points_per_game"`
	PlusMinus             int     `db:"plus_minus"`
	PenaltyMinutes        int     `db:"penalty_minutes"`
	MinorPenalties        int     `db:"minor_penalties"`
	MajorPenalties        int     `db:"major_penalties"`
	Shots                 int     `db:"shots"`
	ShootingPercentage    float64 `db:"shooting_percentage"`
	PowerPlayGoals        int     `db:"power_play_goals"`
	PowerPlayAssists      int     `db:"power_play_assists"`
	ShortHandedGoals      int     `db:"short_handed_goals"`
	GameWinningGoals      int     `db:"game_winning_goals"`
	GameTieingGoals       int     `db:"game_tieing_goals"`
	FirstGoals            int     `db:"first_goals"`
	InsuranceGoals        int     `db:"insurance_goals"`
	UnassistedGoals       int     `db:"unassisted_goals"`
	EmptyNetGoals         int     `db:"empty_net_goals"`
	OvertimeGoals         int     `db:"overtime_goals"`
	ShootoutGoals         int     `db:"shootout_goals"`
	ShootoutAttempts      int     `db:"shootout_attempts"`
	ShootoutWinningGoals  int     `db:"shootout_winning_goals"`
	IceTime               int     `db:"ice_time"`
	IceTimeMinutesSeconds string  `db:"ice_time_minutes_seconds"`
	FaceoffAttempts       int     `db:"faceoff_attempts"`
	FaceoffWins           int     `db:"faceoff_wins"`
	FaceoffPct            float64 `db:"faceoff_pct"`
	Hits                  int     `db:"hits"`
	ShotsBlockedByPlayer  int     `db:"shots_blocked_by_player"`
}

// SeasonStatsGoalie is one goalie season line, keyed "{season_id}_{player_id}".
type SeasonStatsGoalie struct {
	ID                   string  `db:"id"`
	PlayerID             int     `db:"player_id"`
	SeasonID             int     `db:"season_id"`
	TeamID               *int    `db:"team_id"`
	JerseyNumber         int     `db:"jersey_number"`
	Catches              string  `db:"catches"`
	GamesPlayed          int     `db:"games_played"`
	MinutesPlayed        string  `db:"minutes_played"`
	SecondsPlayed        int     `db:"seconds_played"`
	Saves                int     `db:"saves"`
	ShotsAgainst         int     `db:"shots_against"`
	SavePercentage       float64 `db:"save_percentage"`
	GoalsAgainst         int     `db:"goals_against"`
	EmptyNetGoalsAgainst int     `db:"empty_net_goals_against"`
	Shutouts             int     `db:"shutouts"`
	Wins                 int     `db:"wins"`
	Losses               int     `db:"losses"`
	OTLosses             int     `db:"ot_losses"`
	ShootoutWins         int     `db:"shootout_wins"`
	ShootoutLosses       int     `db:"shootout_losses"`
	ShootoutSaves        int     `db:"shootout_saves"`
	ShootoutAttempts     int     `db:"shootout_attempts"`
	Goals                int     `db:"goals"`
	Assists              int     `db:"assists"`
	Points               int     `db:"points"`
	PenaltyMinutes       int     `db:"penalty_minutes"`
	GoalsAgainstAverage  float64 `db:"goals_against_average"`
	ShotsAgainstAverage  float64 `db:"shots_against_average"`
}

// GameStatsTeam is one side of a game, keyed "{game_id}_home_{team_id}" or
// "{game_id}_visitor_{team_id}".
type GameStatsTeam struct {
	ID             string `db:"id"`
	GameID         int    `db:"game_id"`
	TeamID         int    `db:"team_id"`
	SeasonID       int    `db:"season_id"`
	Goals          int    `db:"goals"`
	ShotsOnGoal    int    `db:"shots_on_goal"`
	PowerPlayTotal int    `db:"power_play_total"`
	PowerPlayGoals int    `db:"power_play_goals"`
	FaceoffWins    int    `db:"fow"`
	Hits           int    `db:"hits"`
}

// GameStatsSkater is a skater box score line, keyed "{game_id}_{player_id}".
type GameStatsSkater struct {
	ID                   string `db:"id"`
	GameID               int    `db:"game_id"`
	PlayerID             int    `db:"player_id"`
	TeamID               int    `db:"team_id"`
	SeasonID             int    `db:"season_id"`
	JerseyNumber         int    `db:"jersey_number"`
	Position             string `db:"position"`
	Rookie               bool   `db:"rookie"`
	Start                bool   `db:"start"`
	Status               string `db:"status"`
	Goals                int    `db:"goals"`
	Assists              int    `db:"assists"`
	PlusMinus            int    `db:"plusminus"`
	PIM                  int    `db:"pim"`
	FaceoffWins          int    `db:"faceoff_wins"`
	FaceoffAttempts      int    `db:"faceoff_attempts"`
	Hits                 int    `db:"hits"`
	Shots                int    `db:"shots"`
	ShotsOn              int    `db:"shots_on"`
	ShotsBlockedByPlayer int    `db:"shots_blocked_by_player"`
	ShotsBlocked         int    `db:"shots_blocked"`
	PowerPlayGoals       int    `db:"power_play_goals"`
	ShortHandedGoals     int    `db:"short_handed_goals"`
	GameWinningGoal      bool   `db:"game_winning_goal"`
}

// GameStatsGoalie is a goalie box score line, keyed "{game_id}_{player_id}".
type GameStatsGoalie struct {
	ID           string `db:"id"`
	GameID       int    `db:"game_id"`
	PlayerID     int    `db:"player_id"`
	TeamID       int    `db:"team_id"`
	SeasonID     int    `db:"season_id"`
	JerseyNumber int    `db:"jersey_number"`
	Rookie       bool   `db:"rookie"`
	Start        bool   `db:"start"`
	Position     string `db:"position"`
	Status       string `db:"status"`
	Seconds      int    `db:"seconds"`
	Time         string `db:"time"`
	ShotsAgainst int    `db:"shots_against"`
	GoalsAgainst int    `db:"goals_against"`
	Saves        int    `db:"saves"`
	Goals        int    `db:"goals"`
	Assists      int    `db:"assists"`
	PIM          int    `db:"pim"`
	Shots        int    `db:"shots"`
}

func (d *DB) UpsertSeasonStatsTeams(rows []SeasonStatsTeam) error {
	tx, err := d.Beginx()
	if err != nil {
		return errors.Wrap(err, "begin")
	}
	defer tx.Rollback()

	query := `
		REPLACE INTO season_stats_teams (
			id, season_id, team_id, name, nickname, city, team_code, division_id,
			games_played, wins, losses, ties, ot_losses, shootout_wins,
			shootout_losses, regulation_wins, row, points, penalty_minutes,
			goals_for, goals_against, goals_diff, power_play_goals,
			power_play_goals_against, short_handed_goals_for,
			short_handed_goals_against, power_play_pct, penalty_kill_pct,
			win_percentage, home_record, visiting_record, shootout_record
		) VALUES (
			:id, :season_id, :team_id, :name, :nickname, :city, :team_code, :division_id,
			:games_played, :wins, :losses, :ties, :ot_losses, :shootout_wins,
			:shootout_losses, :regulation_wins, :row, :points, :penalty_minutes,
			:goals_for, :goals_against, :goals_diff, :power_play_goals,
			:power_play_goals_against, :short_handed_goals_for,
			:short_handed_goals_against, :power_play_pct, :penalty_kill_pct,
			:win_percentage, :home_record, :visiting_record, :shootout_record
		)
	`
	for _, r := range rows {
		if _, err := tx.NamedExec(query, r); err != nil {
			return errors.Wrapf(err, "upserting team season stats %s", r.ID)
		}
	}
	return tx.Commit()
}

func (d *DB) UpsertSeasonStatsSkaters(rows []SeasonStatsSkater) error {
	tx, err := d.Beginx()
	if err != nil {
		return errors.Wrap(err, "begin")
	}
	defer tx.Rollback()

	query := `
		REPLACE INTO season_stats_skaters (
			id, player_id, season_id, team_id, jersey_number, shoots,
			games_played, goals, assists, points, points_per_game, plus_minus,
			penalty_minutes, minor_penalties, major_penalties, shots,
			shooting_percentage, power_play_goals, power_play_assists,
			short_handed_goals, game_winning_goals, game_tieing_goals,
			first_goals, insurance_goals, unassisted_goals, empty_net_goals,
			overtime_goals, shootout_goals, shootout_attempts,
			shootout_winning_goals, ice_time, ice_time_minutes_seconds,
			faceoff_attempts, faceoff_wins, faceoff_pct, hits,
			shots_blocked_by_player
		) VALUES (
			:id, :player_id, :season_id, :team_id, :jersey_number, :shoots,
			:games_played, :goals, :assists, :points, :points_per_game, :plus_minus,
			:penalty_minutes, :minor_penalties, :major_penalties, :shots,
			:shooting_percentage, :power_play_goals, :power_play_assists,
			:short_handed_goals, :game_winning_goals, :game_tieing_goals,
			:first_goals, :insurance_goals, :unassisted_goals, :empty_net_goals,
			:overtime_goals, :shootout_goals, :shootout_attempts,
			:shootout_winning_goals, :ice_time, :ice_time_minutes_seconds,
			:faceoff_attempts, :faceoff_wins, :faceoff_pct, :hits,
			:shots_blocked_by_player
		)
	`
	for _, r := range rows {
		if _, err := tx.NamedExec(query, r); err != nil {
			return errors.Wrapf(err, "upserting skater season stats %s", r.ID)
		}
	}
	return tx.Commit()
}

func (d *DB) UpsertSeasonStatsGoalies(rows []SeasonStatsGoalie) error {
	tx, err := d.Beginx()
	if err != nil {
		return errors.Wrap(err, "begin")
	}
	defer tx.Rollback()

	query := `
		REPLACE INTO season_stats_goalies (
			id, player_id, season_id, team_id, jersey_number, catches,
			games_played, minutes_played, seconds_played, saves, shots_against,
			save_percentage, goals_against, empty_net_goals_against, shutouts,
			wins, losses, ot_losses, shootout_wins, shootout_losses,
			shootout_saves, shootout_attempts, goals, assists, points,
			penalty_minutes, goals_against_average, shots_against_average
		) VALUES (
			:id, :player_id, :season_id, :team_id, :jersey_number, :catches,
			:games_played, :minutes_played, :seconds_played, :saves, :shots_against,
			:save_percentage, :goals_against, :empty_net_goals_against, :shutouts,
			:wins, :losses, :ot_losses, :shootout_wins, :shootout_losses,
			:shootout_saves, :shootout_attempts, :goals, :assists, :points,
			:penalty_minutes, :goals_against_average, :shots_against_average
		)
	`
	for _, r := range rows {
		if _, err := tx.NamedExec(query, r); err != nil {
			return errors.Wrapf(err, "upserting goalie season stats %s", r.ID)
		}
	}
	return tx.Commit()
}

func (d *DB) UpsertGameStatsTeams(rows []GameStatsTeam) error {
	tx, err := d.Beginx()
	if err != nil {
		return errors.Wrap(err, "begin")
	}
	defer tx.Rollback()

	query := `
		REPLACE INTO game_stats_teams (
			id, game_id, team_id, season_id, goals, shots_on_goal,
			power_play_total, power_play_goals, fow, hits
		) VALUES (
			:id, :game_id, :team_id, :season_id, :goals, :shots_on_goal,
			:power_play_total, :power_play_goals, :fow, :hits
		)
	`
	for _, r := range rows {
		if _, err := tx.NamedExec(query, r); err != nil {
			return errors.Wrapf(err, "upserting team game stats %s", r.ID)
		}
	}
	return tx.Commit()
}

func (d *DB) UpsertGameStatsSkaters(rows []GameStatsSkater) error {
	tx, err := d.Beginx()
	if err != nil {
		return errors.Wrap(err, "begin")
	}
	defer tx.Rollback()

	query := `
		REPLACE INTO game_stats_skaters (
			id, game_id, player_id, team_id, season_id, jersey_number, position,
			rookie, start, status, goals, assists, plusminus, pim, faceoff_wins,
			faceoff_attempts, hits, shots, shots_on, shots_blocked_by_player,
			shots_blocked, power_play_goals, short_handed_goals, game_winning_goal
		) VALUES (
			:id, :game_id, :player_id, :team_id, :season_id, :jersey_number, :position,
			:rookie, :start, :status, :goals, :assists, :plusminus, :pim, :faceoff_wins,
			:faceoff_attempts, :hits, :shots, :shots_on, :shots_blocked_by_player,
			:shots_blocked, :power_play_goals, :short_handed_goals, :game_winning_goal
		)
	`
	for _, r := range rows {
		if _, err := tx.NamedExec(query, r); err != nil {
			return errors.Wrapf(err, "upserting skater game stats %s", r.ID)
		}
	}
	return tx.Commit()
}

func (d *DB) UpsertGameStatsGoalies(rows []GameStatsGoalie) error {
	tx, err := d.Beginx()
	if err != nil {
		return errors.Wrap(err, "begin")
	}
	defer tx.Rollback()

	query := `
		REPLACE INTO game_stats_goalies (
			id, game_id, player_id, team_id, season_id, jersey_number, rookie,
			start, position, status, seconds, time, shots_against, goals_against,
			saves, goals, assists, pim, shots
		) VALUES (
			:id, :game_id, :player_id, :team_id, :season_id, :jersey_number, :rookie,
			:start, :position, :status, :seconds, :time, :shots_against, :goals_against,
			:saves, :goals, :assists, :pim, :shots
		)
	`
	for _, r := range rows {
		if _, err := tx.NamedExec(query, r); err != nil {
			return errors.Wrapf(err, "upserting goalie game stats %s", r.ID)
		}
	}
	return tx.Commit()
}
