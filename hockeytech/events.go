package hockeytech

import "encoding/json"

// Play-by-play event kinds as tagged in the Pxpverbose feed.
const (
	EventGoalieChange = "goalie_change"
	EventFaceoff      = "faceoff"
	EventHit          = "hit"
	EventShot         = "shot"
	EventBlockedShot  = "blocked_shot"
	EventGoal         = "goal"
	EventPenalty      = "penalty"
	EventShootout     = "shootout"
)

// Event is one play-by-play entry. The feed mixes heterogeneous objects in a
// single list, discriminated by the "event" tag, so the raw bytes are kept
// around for a second decode into the kind-specific struct.
type Event struct {
	Kind string
	raw  json.RawMessage
}

func (e *Event) UnmarshalJSON(b []byte) error {
	var tag struct {
		Event string `json:"event"`
	}
	if err := json.Unmarshal(b, &tag); err != nil {
		return err
	}
	e.Kind = tag.Event
	e.raw = append(e.raw[:0], b...)
	return nil
}

// Decode unmarshals the event payload into the kind-specific struct.
func (e *Event) Decode(v any) error {
	return json.Unmarshal(e.raw, v)
}

type GoalieChangeEvent struct {
	PeriodID    Int    `json:"period_id"`
	Time        string `json:"time"`
	Seconds     Int    `json:"s"`
	TeamID      Int    `json:"team_id"`
	TeamCode    string `json:"team_code"`
	GoalieInID  Int    `json:"goalie_in_id"`
	GoalieOutID Int    `json:"goalie_out_id"`
}

type FaceoffEvent struct {
	Period          Int    `json:"period"`
	Time            string `json:"time"`
	TimeFormatted   string `json:"time_formatted"`
	Seconds         Int    `json:"s"`
	HomePlayerID    Int    `json:"home_player_id"`
	VisitorPlayerID Int    `json:"visitor_player_id"`
	HomeWin         Bool   `json:"home_win"`
	WinTeamID       Int    `json:"win_team_id"`
	XLocation       Int    `json:"x_location"`
	YLocation       Int    `json:"y_location"`
	LocationID      Int    `json:"location_id"`
}

type HitEvent struct {
	ID            Int    `json:"id"`
	Period        Int    `json:"period"`
	Time          string `json:"time"`
	TimeFormatted string `json:"time_formatted"`
	Seconds       Int    `json:"s"`
	PlayerID      Int    `json:"player_id"`
	TeamID        Int    `json:"team_id"`
	Home          Bool   `json:"home"`
	XLocation     Int    `json:"x_location"`
	YLocation     Int    `json:"y_location"`
	HitType       Int    `json:"hit_type"`
}

type ShotEvent struct {
	ID                     Int    `json:"id"`
	PlayerID               Int    `json:"player_id"`
	GoalieID               Int    `json:"goalie_id"`
	PlayerTeamID           Int    `json:"player_team_id"`
	TeamID                 Int    `json:"team_id"`
	Home                   Bool   `json:"home"`
	PeriodID               Int    `json:"period_id"`
	Time                   string `json:"time"`
	TimeFormatted          string `json:"time_formatted"`
	Seconds                Int    `json:"s"`
	XLocation              Int    `json:"x_location"`
	YLocation              Int    `json:"y_location"`
	ShotType               Int    `json:"shot_type"`
	ShotTypeDescription    string `json:"shot_type_description"`
	Quality                Int    `json:"quality"`
	ShotQualityDescription string `json:"shot_quality_description"`
	GameGoalID             string `json:"game_goal_id"`
}

// ShooterTeamID prefers player_team_id, which the feed sets on newer games.
func (e *ShotEvent) ShooterTeamID() int {
	if e.PlayerTeamID.V() != 0 {
		return e.PlayerTeamID.V()
	}
	return e.TeamID.V()
}

type BlockedShotEvent struct {
	ID                     Int    `json:"id"`
	PlayerID               Int    `json:"player_id"`
	GoalieID               Int    `json:"goalie_id"`
	PlayerTeamID           Int    `json:"player_team_id"`
	TeamID                 Int    `json:"team_id"`
	BlockerPlayerID        Int    `json:"blocker_player_id"`
	BlockerTeamID          Int    `json:"blocker_team_id"`
	Home                   Bool   `json:"home"`
	Period                 Int    `json:"period"`
	Time                   string `json:"time"`
	TimeFormatted          string `json:"time_formatted"`
	Seconds                Int    `json:"seconds"`
	S                      Int    `json:"s"`
	XLocation              Int    `json:"x_location"`
	YLocation              Int    `json:"y_location"`
	Orientation            Int    `json:"orientation"`
	ShotType               Int    `json:"shot_type"`
	ShotTypeDescription    string `json:"shot_type_description"`
	Quality                Int    `json:"quality"`
	ShotQualityDescription string `json:"shot_quality_description"`
}

func (e *BlockedShotEvent) ShooterTeamID() int {
	if e.PlayerTeamID.V() != 0 {
		return e.PlayerTeamID.V()
	}
	return e.TeamID.V()
}

// Secs handles the feed exposing the clock as "seconds" on some games and
// "s" on others.
func (e *BlockedShotEvent) Secs() int {
	if e.Seconds.V() != 0 {
		return e.Seconds.V()
	}
	return e.S.V()
}

type GoalEvent struct {
	ID              Int          `json:"id"`
	TeamID          Int          `json:"team_id"`
	Home            Bool         `json:"home"`
	GoalPlayerID    Int          `json:"goal_player_id"`
	Assist1PlayerID Int          `json:"assist1_player_id"`
	Assist2PlayerID Int          `json:"assist2_player_id"`
	Period          string       `json:"period"`
	Time            string       `json:"time"`
	TimeFormatted   string       `json:"time_formatted"`
	Seconds         Int          `json:"s"`
	XLocation       Int          `json:"x_location"`
	YLocation       Int          `json:"y_location"`
	LocationSet     Bool         `json:"location_set"`
	PowerPlay       Bool         `json:"power_play"`
	EmptyNet        Bool         `json:"empty_net"`
	PenaltyShot     Bool         `json:"penalty_shot"`
	ShortHanded     Bool         `json:"short_handed"`
	InsuranceGoal   Bool         `json:"insurance_goal"`
	GameWinning     Bool         `json:"game_winning"`
	GameTieing      Bool         `json:"game_tieing"`
	ScorerGoalNum   Int          `json:"scorer_goal_num"`
	GoalType        string       `json:"goal_type"`
	Plus            []GoalSkater `json:"plus"`
	Minus           []GoalSkater `json:"minus"`
}

// GoalSkater is one entry of a goal's on-ice plus or minus list.
type GoalSkater struct {
	PlayerID     Int `json:"player_id"`
	TeamID       Int `json:"team_id"`
	JerseyNumber Int `json:"jersey_number"`
}

type PenaltyEvent struct {
	ID                     Int    `json:"id"`
	PlayerID               Int    `json:"player_id"`
	PlayerServed           Int    `json:"player_served"`
	TeamID                 Int    `json:"team_id"`
	Home                   Bool   `json:"home"`
	Period                 string `json:"period"`
	TimeOffFormatted       string `json:"time_off_formatted"`
	Minutes                Float  `json:"minutes"`
	MinutesFormatted       string `json:"minutes_formatted"`
	Bench                  Bool   `json:"bench"`
	PenaltyShot            Bool   `json:"penalty_shot"`
	PP                     Bool   `json:"pp"`
	Offence                Int    `json:"offence"`
	PenaltyClassID         Int    `json:"penalty_class_id"`
	PenaltyClass           string `json:"penalty_class"`
	LangPenaltyDescription string `json:"lang_penalty_description"`
}

type ShootoutEvent struct {
	ID          Int  `json:"id"`
	PlayerID    Int  `json:"player_id"`
	GoalieID    Int  `json:"goalie_id"`
	TeamID      Int  `json:"team_id"`
	Home        Bool `json:"home"`
	ShotOrder   Int  `json:"shot_order"`
	Goal        Bool `json:"goal"`
	WinningGoal Bool `json:"winning_goal"`
	Seconds     Int  `json:"s"`
}
