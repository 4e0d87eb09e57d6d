package db

import (
	"github.com/cockroachdb/errors"
)

// The reference tables update in place on conflict. REPLACE would delete the
// existing row first, which the FKs of the tables referencing it reject.

type League struct {
	ID        int    `db:"id"`
	Name      string `db:"name"`
	ShortName string `db:"short_name"`
	Code      string `db:"code"`
	LogoURL   string `db:"logo_url"`
}

type Conference struct {
	ID   int    `db:"id"`
	Name string `db:"name"`
}

type Division struct {
	ID           int    `db:"id"`
	Name         string `db:"name"`
	ConferenceID *int   `db:"conference_id"`
}

type Season struct {
	ID        int    `db:"id"`
	Name      string `db:"name"`
	Career    bool   `db:"career"`
	Playoff   bool   `db:"playoff"`
	StartDate string `db:"start_date"`
	EndDate   string `db:"end_date"`
}

type Team struct {
	ID         int    `db:"id"`
	Name       string `db:"name"`
	Nickname   string `db:"nickname"`
	Code       string `db:"code"`
	City       string `db:"city"`
	LogoURL    string `db:"logo_url"`
	DivisionID *int   `db:"division_id"`
}

func (d *DB) UpsertLeagues(leagues []League) error {
	tx, err := d.Beginx()
	if err != nil {
		return errors.Wrap(err, "begin")
	}
	defer tx.Rollback()

	query := `
		INSERT INTO leagues (id, name, short_name, code, logo_url)
		VALUES (:id, :name, :short_name, :code, :logo_url)
		ON CONFLICT (id) DO UPDATE SET
			name = excluded.name, short_name = excluded.short_name,
			code = excluded.code, logo_url = excluded.logo_url
	`
	for _, l := range leagues {
		if _, err := tx.NamedExec(query, l); err != nil {
			return errors.Wrapf(err, "upserting league %d", l.ID)
		}
	}
	return tx.Commit()
}

func (d *DB) UpsertConferences(conferences []Conference) error {
	tx, err := d.Beginx()
	if err != nil {
		return errors.Wrap(err, "begin")
	}
	defer tx.Rollback()

	query := `
		INSERT INTO conferences (id, name) VALUES (:id, :name)
		ON CONFLICT (id) DO UPDATE SET name = excluded.name
	`
	for _, c := range conferences {
		if _, err := tx.NamedExec(query, c); err != nil {
			return errors.Wrapf(err, "upserting conference %d", c.ID)
		}
	}
	return tx.Commit()
}

func (d *DB) UpsertDivisions(divisions []Division) error {
	tx, err := d.Beginx()
	if err != nil {
		return errors.Wrap(err, "begin")
	}
	defer tx.Rollback()

	query := `
		INSERT INTO divisions (id, name, conference_id)
		VALUES (:id, :name, :conference_id)
		ON CONFLICT (id) DO UPDATE SET
			name = excluded.name, conference_id = excluded.conference_id
	`
	for _, dv := range divisions {
		if _, err := tx.NamedExec(query, dv); err != nil {
			return errors.Wrapf(err, "upserting division %d", dv.ID)
		}
	}
	return tx.Commit()
}

func (d *DB) UpsertSeasons(seasons []Season) error {
	tx, err := d.Beginx()
	if err != nil {
		return errors.Wrap(err, "begin")
	}
	defer tx.Rollback()

	query := `
		INSERT INTO seasons (id, name, career, playoff, start_date, end_date)
		VALUES (:id, :name, :career, :playoff, :start_date, :end_date)
		ON CONFLICT (id) DO UPDATE SET
			name = excluded.name, career = excluded.career,
			playoff = excluded.playoff, start_date = excluded.start_date,
			end_date = excluded.end_date
	`
	for _, s := range seasons {
		if _, err := tx.NamedExec(query, s); err != nil {
			return errors.Wrapf(err, "upserting season %d", s.ID)
		}
	}
	return tx.Commit()
}

func (d *DB) UpsertTeams(teams []Team) error {
	tx, err := d.Beginx()
	if err != nil {
		return errors.Wrap(err, "begin")
	}
	defer tx.Rollback()

	query := `
		INSERT INTO teams (id, name, nickname, code, city, logo_url, division_id)
		VALUES (:id, :name, :nickname, :code, :city, :logo_url, :division_id)
		ON CONFLICT (id) DO UPDATE SET
			name = excluded.name, nickname = excluded.nickname,
			code = excluded.code, city = excluded.city,
			logo_url = excluded.logo_url, division_id = excluded.division_id
	`
	for _, t := range teams {
		if _, err := tx.NamedExec(query, t); err != nil {
			return errors.Wrapf(err, "upserting team %d", t.ID)
		}
	}
	return tx.Commit()
}

func (d *DB) SelectSeasons() ([]Season, error) {
	seasons := []Season{}
	if err := d.Select(&seasons, `SELECT * FROM seasons ORDER BY id`); err != nil {
		return nil, errors.Wrap(err, "selecting seasons")
	}
	return seasons, nil
}

func (d *DB) SelectLeague(id int) (*League, error) {
	var l League
	if err := d.Get(&l, `SELECT * FROM leagues WHERE id = ?`, id); err != nil {
		return nil, errors.Wrapf(err, "selecting league %d", id)
	}
	return &l, nil
}

// SelectLatestRegularSeason returns the most recent non-playoff season.
func (d *DB) SelectLatestRegularSeason() (*Season, error) {
	var s Season
	query := `SELECT * FROM seasons WHERE playoff = 0 ORDER BY id DESC LIMIT 1`
	if err := d.Get(&s, query); err != nil {
		return nil, errors.Wrap(err, "selecting latest regular season")
	}
	return &s, nil
}

func (d *DB) SelectPlayoffSeasons() ([]Season, error) {
	seasons := []Season{}
	query := `SELECT * FROM seasons WHERE playoff = 1 ORDER BY id`
	if err := d.Select(&seasons, query); err != nil {
		return nil, errors.Wrap(err, "selecting playoff seasons")
	}
	return seasons, nil
}

func (d *DB) SelectTeams() ([]Team, error) {
	teams := []Team{}
	if err := d.Select(&teams, `SELECT * FROM teams ORDER BY id`); err != nil {
		return nil, errors.Wrap(err, "selecting teams")
	}
	return teams, nil
}
