package scrape

import (
	"go.uber.org/zap"

	"github.com/IsabelleLefebvre97/PWHL-Scraper/db"
	"github.com/IsabelleLefebvre97/PWHL-Scraper/hockeytech"
)

// UpdateGames pulls the schedule of every known season, or of a single
// season when seasonID is nonzero, and upserts each game.
func (s *Scraper) UpdateGames(seasonID int) (int, error) {
	seasonIDs, err := s.seasonIDs(seasonID)
	if err != nil {
		return 0, err
	}

	updated := 0
	for _, id := range seasonIDs {
		schedule, err := s.client.FetchSchedule(id)
		if err != nil {
			zap.S().Warnw("skipping schedule", "season_id", id, "error", err)
			continue
		}
		games := make([]db.Game, 0, len(schedule))
		for _, sg := range schedule {
			if sg.GameID.V() == 0 || sg.HomeTeam.V() == 0 || sg.VisitingTeam.V() == 0 {
				zap.S().Warnw("skipping malformed schedule entry", "game_id", sg.GameID.V(), "season_id", id)
				continue
			}
			games = append(games, gameFromSchedule(sg, id))
		}
		if err := s.store.UpsertGames(games); err != nil {
			return updated, err
		}
		updated += len(games)
	}

	zap.S().Infow("games updated", "count", updated)
	return updated, nil
}

func gameFromSchedule(sg hockeytech.ScheduledGame, seasonID int) db.Game {
	if sg.SeasonID.V() != 0 {
		seasonID = sg.SeasonID.V()
	}
	return db.Game{
		ID:                sg.GameID.V(),
		SeasonID:          seasonID,
		GameNumber:        sg.GameNumber.V(),
		Date:              sg.Date,
		HomeTeam:          sg.HomeTeam.V(),
		VisitingTeam:      sg.VisitingTeam.V(),
		HomeGoalCount:     sg.HomeGoalCount.V(),
		VisitingGoalCount: sg.VisitingGoalCount.V(),
		Periods:           sg.Period.V(),
		Overtime:          sg.Overtime.V(),
		Shootout:          sg.Shootout.V(),
		Status:            sg.Status.V(),
		GameStatus:        sg.GameStatus,
		VenueName:         sg.VenueName,
		VenueLocation:     sg.VenueLocation,
		Attendance:        sg.Attendance.V(),
	}
}

func (s *Scraper) seasonIDs(only int) ([]int, error) {
	if only != 0 {
		return []int{only}, nil
	}
	seasons, err := s.store.SelectSeasons()
	if err != nil {
		return nil, err
	}
	ids := make([]int, 0, len(seasons))
	for _, sn := range seasons {
		ids = append(ids, sn.ID)
	}
	return ids, nil
}
