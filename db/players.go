package db

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

type Player struct {
	ID                 int    `db:"id"`
	FirstName          string `db:"first_name"`
	LastName           string `db:"last_name"`
	JerseyNumber       int    `db:"jersey_number"`
	Active             bool   `db:"active"`
	Rookie             bool   `db:"rookie"`
	PositionID         int    `db:"position_id"`
	Position           string `db:"position"`
	Height             string `db:"height"`
	Weight             string `db:"weight"`
	Birthdate          string `db:"birthdate"`
	Shoots             string `db:"shoots"`
	Catches            string `db:"catches"`
	ImageURL           string `db:"image_url"`
	Birthtown          string `db:"birthtown"`
	Birthprov          string `db:"birthprov"`
	Birthcntry         string `db:"birthcntry"`
	Nationality        string `db:"nationality"`
	DraftType          string `db:"draft_type"`
	VeteranStatus      int    `db:"veteran_status"`
	VeteranDescription string `db:"veteran_description"`
	LatestTeamID       *int   `db:"latest_team_id"`
}

// Biographical fields are never overwritten with an empty value once
// populated. The feed routinely blanks them on roster payloads that carry
// less detail than the player profile view.
var preservedPlayerColumns = map[string]bool{
	"height":      true,
	"weight":      true,
	"birthdate":   true,
	"birthtown":   true,
	"birthprov":   true,
	"birthcntry":  true,
	"nationality": true,
}

// UpsertPlayer inserts a new player or applies an UPDATE limited to the
// columns that actually changed. Returns whether the row was written.
func (d *DB) UpsertPlayer(p Player) (bool, error) {
	var existing Player
	err := d.Get(&existing, `SELECT * FROM players WHERE id = ?`, p.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return true, d.insertPlayer(p)
	}
	if err != nil {
		return false, errors.Wrapf(err, "selecting player %d", p.ID)
	}

	changed := playerDiff(existing, p)
	if len(changed) == 0 {
		return false, nil
	}

	assignments := make([]string, 0, len(changed))
	args := make([]any, 0, len(changed)+1)
	for _, c := range changed {
		assignments = append(assignments, c.column+" = ?")
		args = append(args, c.value)
	}
	args = append(args, p.ID)

	query := fmt.Sprintf(`UPDATE players SET %s WHERE id = ?`, strings.Join(assignments, ", "))
	if _, err := d.Exec(query, args...); err != nil {
		return false, errors.Wrapf(err, "updating player %d", p.ID)
	}
	zap.S().Debugw("player updated", "player_id", p.ID, "columns", len(changed))
	return true, nil
}

func (d *DB) insertPlayer(p Player) error {
	query := `
		INSERT INTO players (
			id, first_name, last_name, jersey_number, active, rookie,
			position_id, position, height, weight, birthdate, shoots, catches,
			image_url, birthtown, birthprov, birthcntry, nationality,
			draft_type, veteran_status, veteran_description, latest_team_id
		) VALUES (
			:id, :first_name, :last_name, :jersey_number, :active, :rookie,
			:position_id, :position, :height, :weight, :birthdate, :shoots, :catches,
			:image_url, :birthtown, :birthprov, :birthcntry, :nationality,
			:draft_type, :veteran_status, :veteran_description, :latest_team_id
		)
	`
	if _, err := d.NamedExec(query, p); err != nil {
		return errors.Wrapf(err, "inserting player %d", p.ID)
	}
	return nil
}

type columnChange struct {
	column string
	value  any
}

func playerDiff(old, incoming Player) []columnChange {
	changes := []columnChange{}

	str := func(column, oldV, newV string) {
		if newV == "" && preservedPlayerColumns[column] {
			return
		}
		if newV != oldV {
			changes = append(changes, columnChange{column, newV})
		}
	}
	num := func(column string, oldV, newV int) {
		if newV != oldV {
			changes = append(changes, columnChange{column, newV})
		}
	}
	boolean := func(column string, oldV, newV bool) {
		if newV != oldV {
			changes = append(changes, columnChange{column, newV})
		}
	}

	str("first_name", old.FirstName, incoming.FirstName)
	str("last_name", old.LastName, incoming.LastName)
	num("jersey_number", old.JerseyNumber, incoming.JerseyNumber)
	boolean("active", old.Active, incoming.Active)
	boolean("rookie", old.Rookie, incoming.Rookie)
	num("position_id", old.PositionID, incoming.PositionID)
	str("position", old.Position, incoming.Position)
	str("height", old.Height, incoming.Height)
	str("weight", old.Weight, incoming.Weight)
	str("birthdate", old.Birthdate, incoming.Birthdate)
	str("shoots", old.Shoots, incoming.Shoots)
	str("catches", old.Catches, incoming.Catches)
	str("image_url", old.ImageURL, incoming.ImageURL)
	str("birthtown", old.Birthtown, incoming.Birthtown)
	str("birthprov", old.Birthprov, incoming.Birthprov)
	str("birthcntry", old.Birthcntry, incoming.Birthcntry)
	str("nationality", old.Nationality, incoming.Nationality)
	str("draft_type", old.DraftType, incoming.DraftType)
	num("veteran_status", old.VeteranStatus, incoming.VeteranStatus)
	str("veteran_description", old.VeteranDescription, incoming.VeteranDescription)

	oldTeam, newTeam := 0, 0
	if old.LatestTeamID != nil {
		oldTeam = *old.LatestTeamID
	}
	if incoming.LatestTeamID != nil {
		newTeam = *incoming.LatestTeamID
	}
	if newTeam != oldTeam && newTeam != 0 {
		changes = append(changes, columnChange{"latest_team_id", newTeam})
	}

	return changes
}

func (d *DB) SelectPlayer(id int) (*Player, error) {
	var p Player
	if err := d.Get(&p, `SELECT * FROM players WHERE id = ?`, id); err != nil {
		return nil, errors.Wrapf(err, "selecting player %d", id)
	}
	return &p, nil
}

// PlayerPosition is the id/position pair the stats scraper uses to route a
// player to the skater or goalie tables.
type PlayerPosition struct {
	ID       int    `db:"id"`
	Position string `db:"position"`
}

func (d *DB) SelectPlayerPositions() ([]PlayerPosition, error) {
	players := []PlayerPosition{}
	if err := d.Select(&players, `SELECT id, position FROM players ORDER BY id`); err != nil {
		return nil, errors.Wrap(err, "selecting player positions")
	}
	return players, nil
}

func (d *DB) SelectPlayerIDs() ([]int, error) {
	ids := []int{}
	if err := d.Select(&ids, `SELECT id FROM players ORDER BY id`); err != nil {
		return nil, errors.Wrap(err, "selecting player ids")
	}
	return ids, nil
}
