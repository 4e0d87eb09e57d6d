package db

import (
	"github.com/cockroachdb/errors"
)

// PlayoffRound is keyed "{season_id}_{round}".
type PlayoffRound struct {
	ID            string `db:"id"`
	SeasonID      int    `db:"season_id"`
	Round         int    `db:"round"`
	RoundName     string `db:"round_name"`
	RoundTypeID   int    `db:"round_type_id"`
	RoundTypeName string `db:"round_type_name"`
}

// PlayoffSeries is keyed "{round_id}_{series_letter}". Winner points at the
// winning team once the series is decided.
type PlayoffSeries struct {
	ID            string `db:"id"`
	SeasonID      int    `db:"season_id"`
	RoundID       string `db:"round_id"`
	SeriesLetter  string `db:"series_letter"`
	SeriesName    string `db:"series_name"`
	SeriesLogoURL string `db:"series_logo_url"`
	Active        bool   `db:"active"`
	Team1         *int   `db:"team1"`
	Team2         *int   `db:"team2"`
	ContentEN     string `db:"content_en"`
	Winner        *int   `db:"winner"`
	Team1Wins     int    `db:"team1_wins"`
	Team2Wins     int    `db:"team2_wins"`
	Ties          int    `db:"ties"`
	FeederSeries1 string `db:"feeder_series_1"`
	FeederSeries2 string `db:"feeder_series_2"`
	Round         int    `db:"round"`
}

// PlayoffGame is keyed "{series_id}_{game_id}".
type PlayoffGame struct {
	ID       string `db:"id"`
	SeasonID int    `db:"season_id"`
	RoundID  string `db:"round_id"`
	SeriesID string `db:"series_id"`
	GameID   int    `db:"game_id"`
}

func (d *DB) UpsertPlayoffRounds(rounds []PlayoffRound) error {
	tx, err := d.Beginx()
	if err != nil {
		return errors.Wrap(err, "begin")
	}
	defer tx.Rollback()

	query := `
		INSERT INTO playoff_rounds (
			id, season_id, round, round_name, round_type_id, round_type_name
		) VALUES (
			:id, :season_id, :round, :round_name, :round_type_id, :round_type_name
		)
		ON CONFLICT (id) DO UPDATE SET
			season_id = excluded.season_id, round = excluded.round,
			round_name = excluded.round_name,
			round_type_id = excluded.round_type_id,
			round_type_name = excluded.round_type_name
	`
	for _, r := range rounds {
		if _, err := tx.NamedExec(query, r); err != nil {
			return errors.Wrapf(err, "upserting playoff round %s", r.ID)
		}
	}
	return tx.Commit()
}

func (d *DB) UpsertPlayoffSeries(series []PlayoffSeries) error {
	tx, err := d.Beginx()
	if err != nil {
		return errors.Wrap(err, "begin")
	}
	defer tx.Rollback()

	query := `
		INSERT INTO playoff_series (
			id, season_id, round_id, series_letter, series_name, series_logo_url,
			active, team1, team2, content_en, winner, team1_wins, team2_wins,
			ties, feeder_series_1, feeder_series_2, round
		) VALUES (
			:id, :season_id, :round_id, :series_letter, :series_name, :series_logo_url,
			:active, :team1, :team2, :content_en, :winner, :team1_wins, :team2_wins,
			:ties, :feeder_series_1, :feeder_series_2, :round
		)
		ON CONFLICT (id) DO UPDATE SET
			season_id = excluded.season_id, round_id = excluded.round_id,
			series_letter = excluded.series_letter,
			series_name = excluded.series_name,
			series_logo_url = excluded.series_logo_url,
			active = excluded.active, team1 = excluded.team1,
			team2 = excluded.team2, content_en = excluded.content_en,
			winner = excluded.winner, team1_wins = excluded.team1_wins,
			team2_wins = excluded.team2_wins, ties = excluded.ties,
			feeder_series_1 = excluded.feeder_series_1,
			feeder_series_2 = excluded.feeder_series_2, round = excluded.round
	`
	for _, s := range series {
		if _, err := tx.NamedExec(query, s); err != nil {
			return errors.Wrapf(err, "upserting playoff series %s", s.ID)
		}
	}
	return tx.Commit()
}

func (d *DB) UpsertPlayoffGames(games []PlayoffGame) error {
	tx, err := d.Beginx()
	if err != nil {
		return errors.Wrap(err, "begin")
	}
	defer tx.Rollback()

	query := `
		REPLACE INTO playoff_games (id, season_id, round_id, series_id, game_id)
		VALUES (:id, :season_id, :round_id, :series_id, :game_id)
	`
	for _, g := range games {
		if _, err := tx.NamedExec(query, g); err != nil {
			return errors.Wrapf(err, "upserting playoff game %s", g.ID)
		}
	}
	return tx.Commit()
}
