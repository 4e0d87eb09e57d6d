package hockeytech

import "encoding/json"

// Payload structs mirror the HockeyTech feed shapes. Only the fields the
// scrapers persist are declared; everything else in the payload is ignored.

// Bootstrap is the statviewfeed bootstrap payload bundling the reference
// entities in a single response.
type Bootstrap struct {
	CurrentLeagueID Int          `json:"current_league_id"`
	Leagues         []League     `json:"leagues"`
	Conferences     []Conference `json:"conferences"`
	Divisions       []Division   `json:"divisions"`
}

type League struct {
	ID        Int    `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"short_name"`
	Code      string `json:"code"`
	LogoImage string `json:"logo_image"`
}

type Conference struct {
	ID   Int    `json:"conference_id"`
	Name string `json:"conference_name"`
}

type Division struct {
	ID           Int    `json:"id"`
	Name         string `json:"name"`
	ConferenceID Int    `json:"conference_id"`
}

type Season struct {
	ID        Int    `json:"season_id"`
	Name      string `json:"season_name"`
	Career    Bool   `json:"career"`
	Playoff   Bool   `json:"playoff"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type Team struct {
	ID         Int    `json:"id"`
	Name       string `json:"name"`
	Nickname   string `json:"nickname"`
	Code       string `json:"code"`
	City       string `json:"city"`
	LogoURL    string `json:"team_logo_url"`
	DivisionID Int    `json:"division_id"`
}

// RosterPlayer is one entry of a team roster. The raw roster list also
// carries nested coach arrays, which FetchRoster filters out.
type RosterPlayer struct {
	PlayerID           Int    `json:"player_id"`
	FirstName          string `json:"first_name"`
	LastName           string `json:"last_name"`
	JerseyNumber       Int    `json:"tp_jersey_number"`
	Active             Bool   `json:"active"`
	Rookie             Bool   `json:"rookie"`
	PositionID         Int    `json:"position_id"`
	Position           string `json:"position"`
	Height             string `json:"height"`
	Weight             string `json:"weight"`
	Birthdate          string `json:"birthdate"`
	Shoots             string `json:"shoots"`
	Catches            string `json:"catches"`
	PlayerImage        string `json:"player_image"`
	Birthtown          string `json:"birthtown"`
	Birthprov          string `json:"birthprov"`
	Birthcntry         string `json:"birthcntry"`
	VeteranStatus      Int    `json:"veteran_status"`
	VeteranDescription string `json:"veteran_description"`
	LatestTeamID       Int    `json:"latest_team_id"`
	DraftInfo          []struct {
		DraftType string `json:"draft_type"`
	} `json:"draftinfo"`
}

// PlayerProfile is the detail payload behind SiteKit.Player.
type PlayerProfile struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	DraftType    string `json:"draft_type"`
	Position     string `json:"position"`
	BirthPlace   string `json:"birthplace"`
	LatestTeamID Int    `json:"latest_team_id"`
}

type ScheduledGame struct {
	GameID            Int    `json:"game_id"`
	SeasonID          Int    `json:"season_id"`
	GameNumber        Int    `json:"game_number"`
	Date              string `json:"GameDateISO8601"`
	HomeTeam          Int    `json:"home_team"`
	VisitingTeam      Int    `json:"visiting_team"`
	HomeGoalCount     Int    `json:"home_goal_count"`
	VisitingGoalCount Int    `json:"visiting_goal_count"`
	Period            Int    `json:"period"`
	Overtime          Bool   `json:"overtime"`
	Shootout          Bool   `json:"shootout"`
	Status            Int    `json:"status"`
	GameStatus        string `json:"game_status"`
	VenueName         string `json:"venue_name"`
	VenueLocation     string `json:"venue_location"`
	Attendance        Int    `json:"attendance"`
}

// TeamStanding is one row of the per-season standings view.
type TeamStanding struct {
	TeamID                 Int    `json:"team_id"`
	Name                   string `json:"name"`
	Nickname               string `json:"nickname"`
	City                   string `json:"city"`
	TeamCode               string `json:"team_code"`
	DivisionID             Int    `json:"division_id"`
	GamesPlayed            Int    `json:"games_played"`
	Wins                   Int    `json:"wins"`
	Losses                 Int    `json:"losses"`
	Ties                   Int    `json:"ties"`
	OTLosses               Int    `json:"ot_losses"`
	ShootoutWins           Int    `json:"shootout_wins"`
	ShootoutLosses         Int    `json:"shootout_losses"`
	RegulationWins         Int    `json:"regulation_wins"`
	Row                    Int    `json:"row"`
	Points                 Int    `json:"points"`
	PenaltyMinutes         Int    `json:"penalty_minutes"`
	GoalsFor               Int    `json:"goals_for"`
	GoalsAgainst           Int    `json:"goals_against"`
	GoalsDiff              Int    `json:"goals_diff"`
	PowerPlayGoals         Int    `json:"power_play_goals"`
	PowerPlayGoalsAgainst  Int    `json:"power_play_goals_against"`
	ShortHandedGoalsFor    Int    `json:"short_handed_goals_for"`
	ShortHandedGoalsAgainst Int   `json:"short_handed_goals_against"`
	PowerPlayPct           Float  `json:"power_play_pct"`
	PenaltyKillPct         Float  `json:"penalty_kill_pct"`
	WinPercentage          Float  `json:"win_percentage"`
	HomeRecord             string `json:"home_record"`
	VisitingRecord         string `json:"visiting_record"`
	ShootoutRecord         string `json:"shootout_record"`
}

// SeasonStatRow is one per-season stat line from the player seasonstats view.
// Skaters and goalies share the envelope, so this is the superset of both.
type SeasonStatRow struct {
	SeasonID             Int    `json:"season_id"`
	ShortName            string `json:"shortname"`
	TeamID               Int    `json:"team_id"`
	JerseyNumber         Int    `json:"jersey_number"`
	Shoots               string `json:"shoots"`
	Catches              string `json:"catches"`
	GamesPlayed          Int    `json:"games_played"`
	Goals                Int    `json:"goals"`
	Assists              Int    `json:"assists"`
	Points               Int    `json:"points"`
	PointsPerGame        Float  `json:"points_per_game"`
	PlusMinus            Int    `json:"plus_minus"`
	PenaltyMinutes       Int    `json:"penalty_minutes"`
	MinorPenalties       Int    `json:"minor_penalties"`
	MajorPenalties       Int    `json:"major_penalties"`
	Shots                Int    `json:"shots"`
	ShootingPercentage   Float  `json:"shooting_percentage"`
	PowerPlayGoals       Int    `json:"power_play_goals"`
	PowerPlayAssists     Int    `json:"power_play_assists"`
	ShortHandedGoals     Int    `json:"short_handed_goals"`
	GameWinningGoals     Int    `json:"game_winning_goals"`
	GameTieingGoals      Int    `json:"game_tieing_goals"`
	FirstGoals           Int    `json:"first_goals"`
	InsuranceGoals       Int    `json:"insurance_goals"`
	UnassistedGoals      Int    `json:"unassisted_goals"`
	EmptyNetGoals        Int    `json:"empty_net_goals"`
	OvertimeGoals        Int    `json:"overtime_goals"`
	ShootoutGoals        Int    `json:"shootout_goals"`
	ShootoutAttempts     Int    `json:"shootout_attempts"`
	ShootoutWinningGoals Int    `json:"shootout_winning_goals"`
	IceTime              Int    `json:"ice_time"`
	IceTimeMinSec        string `json:"ice_time_minutes_seconds"`
	FaceoffAttempts      Int    `json:"faceoff_attempts"`
	FaceoffWins          Int    `json:"faceoff_wins"`
	FaceoffPct           Float  `json:"faceoff_pct"`
	Hits                 Int    `json:"hits"`
	ShotsBlockedByPlayer Int    `json:"shots_blocked_by_player"`
	MinutesPlayed        string `json:"minutes_played"`
	SecondsPlayed        Int    `json:"seconds_played"`
	Saves                Int    `json:"saves"`
	ShotsAgainst         Int    `json:"shots_against"`
	SavePercentage       Float  `json:"save_percentage"`
	GoalsAgainst         Int    `json:"goals_against"`
	EmptyNetGoalsAgainst Int    `json:"empty_net_goals_against"`
	Shutouts             Int    `json:"shutouts"`
	Wins                 Int    `json:"wins"`
	Losses               Int    `json:"losses"`
	OTLosses             Int    `json:"ot_losses"`
	ShootoutWins         Int    `json:"shootout_wins"`
	ShootoutLosses       Int    `json:"shootout_losses"`
	ShootoutSaves        Int    `json:"shootout_saves"`
	GoalsAgainstAverage  Float  `json:"goals_against_average"`
	ShotsAgainstAverage  Float  `json:"shots_against_average"`
}

// SeasonStatList tolerates the feed returning either a list of stat rows or
// a single bare object.
type SeasonStatList []SeasonStatRow

func (l *SeasonStatList) UnmarshalJSON(b []byte) error {
	var rows []SeasonStatRow
	if err := json.Unmarshal(b, &rows); err == nil {
		*l = rows
		return nil
	}
	var one SeasonStatRow
	if err := json.Unmarshal(b, &one); err == nil {
		*l = SeasonStatList{one}
		return nil
	}
	*l = nil
	return nil
}

// PlayerSeasonStats groups a player's stat lines by season class.
type PlayerSeasonStats struct {
	Regular    SeasonStatList `json:"regular"`
	Playoff    SeasonStatList `json:"playoff"`
	Exhibition SeasonStatList `json:"exhibition"`
}

// Rows flattens the groups, dropping the synthetic career totals line.
func (p *PlayerSeasonStats) Rows() []SeasonStatRow {
	out := make([]SeasonStatRow, 0, len(p.Regular)+len(p.Playoff)+len(p.Exhibition))
	for _, group := range []SeasonStatList{p.Regular, p.Playoff, p.Exhibition} {
		for _, row := range group {
			if row.ShortName == "Total" {
				continue
			}
			out = append(out, row)
		}
	}
	return out
}

// GameSummary is the game center gamesummary tab.
type GameSummary struct {
	Meta struct {
		SeasonID          Int `json:"season_id"`
		HomeTeam          Int `json:"home_team"`
		VisitingTeam      Int `json:"visiting_team"`
		HomeGoalCount     Int `json:"home_goal_count"`
		VisitingGoalCount Int `json:"visiting_goal_count"`
	} `json:"meta"`
	ShotsByPeriod struct {
		Home    map[string]Int `json:"home"`
		Visitor map[string]Int `json:"visitor"`
	} `json:"shotsByPeriod"`
	PowerPlayCount struct {
		Home    Int `json:"home"`
		Visitor Int `json:"visitor"`
	} `json:"powerPlayCount"`
	PowerPlayGoals struct {
		Home    Int `json:"home"`
		Visitor Int `json:"visitor"`
	} `json:"powerPlayGoals"`
	TotalFaceoffs struct {
		Home    struct{ Won Int `json:"won"` } `json:"home"`
		Visitor struct{ Won Int `json:"won"` } `json:"visitor"`
	} `json:"totalFaceoffs"`
	TotalHits struct {
		Home    Int `json:"home"`
		Visitor Int `json:"visitor"`
	} `json:"totalHits"`
	HomeLineup    Lineup `json:"home_team_lineup"`
	VisitorLineup Lineup `json:"visitor_team_lineup"`
}

// ShotsOnGoal sums the regulation periods for one side ("home"/"visitor").
func (g *GameSummary) ShotsOnGoal(side string) int {
	shots := g.ShotsByPeriod.Home
	if side == "visitor" {
		shots = g.ShotsByPeriod.Visitor
	}
	total := 0
	for _, p := range []string{"1", "2", "3"} {
		total += shots[p].V()
	}
	return total
}

type Lineup struct {
	Players []LineupSkater `json:"players"`
	Goalies []LineupGoalie `json:"goalies"`
}

type LineupSkater struct {
	PlayerID             Int    `json:"player_id"`
	JerseyNumber         Int    `json:"jersey_number"`
	Position             string `json:"position_str"`
	Rookie               Bool   `json:"rookie"`
	Start                Bool   `json:"start"`
	Status               string `json:"status"`
	Goals                Int    `json:"goals"`
	Assists              Int    `json:"assists"`
	PlusMinus            Int    `json:"plusminus"`
	PIM                  Int    `json:"pim"`
	FaceoffWins          Int    `json:"faceoff_wins"`
	FaceoffAttempts      Int    `json:"faceoff_attempts"`
	Hits                 Int    `json:"hits"`
	Shots                Int    `json:"shots"`
	ShotsOn              Int    `json:"shots_on"`
	ShotsBlockedByPlayer Int    `json:"shots_blocked_by_player"`
	ShotsBlocked         Int    `json:"shots_blocked"`
	PowerPlayGoals       Int    `json:"power_play_goals"`
	ShortHandedGoals     Int    `json:"short_handed_goals"`
	GameWinningGoal      Bool   `json:"game_winning_goal"`
}

type LineupGoalie struct {
	PlayerID     Int    `json:"player_id"`
	JerseyNumber Int    `json:"jersey_number"`
	Position     string `json:"position_str"`
	Rookie       Bool   `json:"rookie"`
	Start        Bool   `json:"start"`
	Status       string `json:"status"`
	Seconds      Int    `json:"seconds"`
	Time         string `json:"time"`
	ShotsAgainst Int    `json:"shots_against"`
	GoalsAgainst Int    `json:"goals_against"`
	Saves        Int    `json:"saves"`
	Goals        Int    `json:"goals"`
	Assists      Int    `json:"assists"`
	PIM          Int    `json:"pim"`
	Shots        Int    `json:"shots"`
}

// Brackets is the playoff bracket payload.
type Brackets struct {
	Rounds []BracketRound `json:"rounds"`
}

type BracketRound struct {
	Round         Int             `json:"round"`
	RoundName     string          `json:"round_name"`
	RoundTypeID   Int             `json:"round_type_id"`
	RoundTypeName string          `json:"round_type_name"`
	Matchups      []BracketSeries `json:"matchups"`
}

type BracketSeries struct {
	SeriesLetter  string `json:"series_letter"`
	SeriesName    string `json:"series_name"`
	SeriesLogo    string `json:"series_logo"`
	Active        Bool   `json:"active"`
	Team1         Int    `json:"team1"`
	Team2         Int    `json:"team2"`
	ContentEN     string `json:"content_en"`
	Winner        string `json:"winner"`
	Team1Wins     Int    `json:"team1_wins"`
	Team2Wins     Int    `json:"team2_wins"`
	Ties          Int    `json:"ties"`
	FeederSeries1 string `json:"feeder_series1"`
	FeederSeries2 string `json:"feeder_series2"`
	Games         []struct {
		GameID Int `json:"game_id"`
	} `json:"games"`
}
