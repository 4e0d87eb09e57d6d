package scrape

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/IsabelleLefebvre97/PWHL-Scraper/db"
	"github.com/IsabelleLefebvre97/PWHL-Scraper/hockeytech"
	"github.com/IsabelleLefebvre97/PWHL-Scraper/utils"
)

// UpdatePlayByPlay backfills event data for finished games that have no
// play-by-play rows yet. A nonzero gameID targets that game alone; a nonzero
// limit caps how many games a run processes. Returns the number of games
// processed.
func (s *Scraper) UpdatePlayByPlay(gameID, limit int) (int, error) {
	var targets []db.GameRef
	if gameID != 0 {
		game, err := s.store.SelectGame(gameID)
		if err != nil {
			return 0, err
		}
		targets = []db.GameRef{{ID: game.ID, SeasonID: game.SeasonID}}
	} else {
		var err error
		targets, err = s.store.GamesWithoutPlayByPlay()
		if err != nil {
			return 0, err
		}
		if limit > 0 && len(targets) > limit {
			targets = targets[:limit]
		}
	}

	processed := 0
	for _, ref := range targets {
		if err := s.updateGamePlayByPlay(ref); err != nil {
			zap.S().Errorw("play-by-play update failed", "game_id", ref.ID, "error", err)
			continue
		}
		processed++
	}
	zap.S().Infow("play-by-play updated", "games", processed)
	return processed, nil
}

func (s *Scraper) updateGamePlayByPlay(ref db.GameRef) error {
	game, err := s.store.SelectGame(ref.ID)
	if err != nil {
		return err
	}
	events, err := s.client.FetchPlayByPlay(ref.ID)
	if err != nil {
		return err
	}

	for _, ev := range events {
		if err := s.storeEvent(game, ev); err != nil {
			zap.S().Warnw("skipping play-by-play event",
				"game_id", game.ID, "kind", ev.Kind, "error", err)
		}
	}
	return nil
}

func (s *Scraper) storeEvent(game *db.Game, ev hockeytech.Event) error {
	switch ev.Kind {
	case hockeytech.EventGoalieChange:
		return s.storeGoalieChange(game, ev)
	case hockeytech.EventFaceoff:
		return s.storeFaceoff(game, ev)
	case hockeytech.EventHit:
		return s.storeHit(game, ev)
	case hockeytech.EventShot:
		return s.storeShot(game, ev)
	case hockeytech.EventBlockedShot:
		return s.storeBlockedShot(game, ev)
	case hockeytech.EventGoal:
		return s.storeGoal(game, ev)
	case hockeytech.EventPenalty:
		return s.storePenalty(game, ev)
	case hockeytech.EventShootout:
		return s.storeShootout(game, ev)
	}
	return nil
}

// opponentOf maps an event's team to the other team of the game.
func opponentOf(game *db.Game, teamID int) int {
	if teamID == game.HomeTeam {
		return game.VisitingTeam
	}
	return game.HomeTeam
}

func (s *Scraper) storeGoalieChange(game *db.Game, ev hockeytech.Event) error {
	var e hockeytech.GoalieChangeEvent
	if err := ev.Decode(&e); err != nil {
		return err
	}
	timeKey := strings.ReplaceAll(e.Time, ":", "_")
	return s.store.UpsertPBPGoalieChange(db.PBPGoalieChange{
		ID:             fmt.Sprintf("%d_goalie_change_%d_%s_%s", game.ID, e.PeriodID.V(), timeKey, e.TeamCode),
		GameID:         game.ID,
		SeasonID:       game.SeasonID,
		Period:         e.PeriodID.V(),
		Time:           e.Time,
		Seconds:        e.Seconds.V(),
		TeamID:         e.TeamID.V(),
		OpponentTeamID: opponentOf(game, e.TeamID.V()),
		GoalieInID:     e.GoalieInID.Ptr(),
		GoalieOutID:    e.GoalieOutID.Ptr(),
	})
}

func (s *Scraper) storeFaceoff(game *db.Game, ev hockeytech.Event) error {
	var e hockeytech.FaceoffEvent
	if err := ev.Decode(&e); err != nil {
		return err
	}
	timeKey := strings.ReplaceAll(e.TimeFormatted, ":", "_")
	return s.store.UpsertPBPFaceoff(db.PBPFaceoff{
		ID:              fmt.Sprintf("%d_faceoff_%d_%s", game.ID, e.Period.V(), timeKey),
		GameID:          game.ID,
		SeasonID:        game.SeasonID,
		Period:          e.Period.V(),
		Time:            e.Time,
		TimeFormatted:   e.TimeFormatted,
		Seconds:         e.Seconds.V(),
		HomePlayerID:    e.HomePlayerID.V(),
		VisitorPlayerID: e.VisitorPlayerID.V(),
		HomeWin:         e.HomeWin.V(),
		WinTeamID:       e.WinTeamID.V(),
		OpponentTeamID:  opponentOf(game, e.WinTeamID.V()),
		XLocation:       e.XLocation.V(),
		YLocation:       e.YLocation.V(),
		LocationID:      e.LocationID.V(),
	})
}

func (s *Scraper) storeHit(game *db.Game, ev hockeytech.Event) error {
	var e hockeytech.HitEvent
	if err := ev.Decode(&e); err != nil {
		return err
	}
	return s.store.UpsertPBPHit(db.PBPHit{
		ID:             fmt.Sprintf("%d_hit_%d", game.ID, e.ID.V()),
		GameID:         game.ID,
		SeasonID:       game.SeasonID,
		Period:         e.Period.V(),
		Time:           e.Time,
		TimeFormatted:  e.TimeFormatted,
		Seconds:        e.Seconds.V(),
		PlayerID:       e.PlayerID.V(),
		TeamID:         e.TeamID.V(),
		OpponentTeamID: opponentOf(game, e.TeamID.V()),
		Home:           e.Home.V(),
		XLocation:      e.XLocation.V(),
		YLocation:      e.YLocation.V(),
		HitType:        e.HitType.V(),
	})
}

func (s *Scraper) storeShot(game *db.Game, ev hockeytech.Event) error {
	var e hockeytech.ShotEvent
	if err := ev.Decode(&e); err != nil {
		return err
	}
	teamID := e.ShooterTeamID()
	return s.store.UpsertPBPShot(db.PBPShot{
		ID:                     fmt.Sprintf("%d_shot_%d", game.ID, e.ID.V()),
		GameID:                 game.ID,
		SeasonID:               game.SeasonID,
		PlayerID:               e.PlayerID.V(),
		GoalieID:               e.GoalieID.Ptr(),
		TeamID:                 teamID,
		OpponentTeamID:         opponentOf(game, teamID),
		Home:                   e.Home.V(),
		Period:                 e.PeriodID.V(),
		Time:                   e.Time,
		TimeFormatted:          e.TimeFormatted,
		Seconds:                e.Seconds.V(),
		XLocation:              e.XLocation.V(),
		YLocation:              e.YLocation.V(),
		ShotType:               e.ShotType.V(),
		ShotTypeDescription:    e.ShotTypeDescription,
		Quality:                e.Quality.V(),
		ShotQualityDescription: e.ShotQualityDescription,
		GameGoalID:             e.GameGoalID,
	})
}

func (s *Scraper) storeBlockedShot(game *db.Game, ev hockeytech.Event) error {
	var e hockeytech.BlockedShotEvent
	if err := ev.Decode(&e); err != nil {
		return err
	}
	teamID := e.ShooterTeamID()
	return s.store.UpsertPBPBlockedShot(db.PBPBlockedShot{
		ID:                     fmt.Sprintf("%d_blocked_shot_%d", game.ID, e.ID.V()),
		GameID:                 game.ID,
		SeasonID:               game.SeasonID,
		PlayerID:               e.PlayerID.V(),
		GoalieID:               e.GoalieID.Ptr(),
		TeamID:                 teamID,
		BlockerPlayerID:        e.BlockerPlayerID.V(),
		BlockerTeamID:          e.BlockerTeamID.V(),
		OpponentTeamID:         opponentOf(game, teamID),
		Home:                   e.Home.V(),
		Period:                 e.Period.V(),
		Time:                   e.Time,
		TimeFormatted:          e.TimeFormatted,
		Seconds:                e.Secs(),
		XLocation:              e.XLocation.V(),
		YLocation:              e.YLocation.V(),
		Orientation:            e.Orientation.V(),
		ShotType:               e.ShotType.V(),
		ShotTypeDescription:    e.ShotTypeDescription,
		Quality:                e.Quality.V(),
		ShotQualityDescription: e.ShotQualityDescription,
	})
}

func (s *Scraper) storeGoal(game *db.Game, ev hockeytech.Event) error {
	var e hockeytech.GoalEvent
	if err := ev.Decode(&e); err != nil {
		return err
	}
	goalID := fmt.Sprintf("%d_goal_%d", game.ID, e.ID.V())
	goal := db.PBPGoal{
		ID:              goalID,
		GameID:          game.ID,
		SeasonID:        game.SeasonID,
		TeamID:          e.TeamID.V(),
		OpponentTeamID:  opponentOf(game, e.TeamID.V()),
		Home:            e.Home.V(),
		GoalPlayerID:    e.GoalPlayerID.V(),
		Assist1PlayerID: e.Assist1PlayerID.Ptr(),
		Assist2PlayerID: e.Assist2PlayerID.Ptr(),
		Period:          utils.PeriodNumber(e.Period),
		Time:            e.Time,
		TimeFormatted:   e.TimeFormatted,
		Seconds:         e.Seconds.V(),
		XLocation:       e.XLocation.V(),
		YLocation:       e.YLocation.V(),
		LocationSet:     e.LocationSet.V(),
		PowerPlay:       e.PowerPlay.V(),
		EmptyNet:        e.EmptyNet.V(),
		PenaltyShot:     e.PenaltyShot.V(),
		ShortHanded:     e.ShortHanded.V(),
		InsuranceGoal:   e.InsuranceGoal.V(),
		GameWinning:     e.GameWinning.V(),
		GameTieing:      e.GameTieing.V(),
		ScorerGoalNum:   e.ScorerGoalNum.V(),
		GoalType:        e.GoalType,
	}
	plus := onIceRows(goalID, "plus", game, e.Plus)
	minus := onIceRows(goalID, "minus", game, e.Minus)
	return s.store.UpsertPBPGoal(goal, plus, minus)
}

func onIceRows(goalID, side string, game *db.Game, skaters []hockeytech.GoalSkater) []db.PBPGoalOnIce {
	rows := make([]db.PBPGoalOnIce, 0, len(skaters))
	for _, sk := range skaters {
		if sk.PlayerID.V() == 0 {
			continue
		}
		rows = append(rows, db.PBPGoalOnIce{
			ID:           fmt.Sprintf("%s_%s_%d", goalID, side, sk.PlayerID.V()),
			GoalID:       goalID,
			GameID:       game.ID,
			SeasonID:     game.SeasonID,
			TeamID:       sk.TeamID.V(),
			PlayerID:     sk.PlayerID.V(),
			JerseyNumber: sk.JerseyNumber.V(),
		})
	}
	return rows
}

func (s *Scraper) storePenalty(game *db.Game, ev hockeytech.Event) error {
	var e hockeytech.PenaltyEvent
	if err := ev.Decode(&e); err != nil {
		return err
	}
	return s.store.UpsertPBPPenalty(db.PBPPenalty{
		ID:                     fmt.Sprintf("%d_penalty_%d", game.ID, e.ID.V()),
		GameID:                 game.ID,
		SeasonID:               game.SeasonID,
		PlayerID:               e.PlayerID.V(),
		PlayerServed:           e.PlayerServed.V(),
		TeamID:                 e.TeamID.V(),
		OpponentTeamID:         opponentOf(game, e.TeamID.V()),
		Home:                   e.Home.V(),
		Period:                 utils.PeriodNumber(e.Period),
		TimeOffFormatted:       e.TimeOffFormatted,
		Minutes:                e.Minutes.V(),
		MinutesFormatted:       e.MinutesFormatted,
		Bench:                  e.Bench.V(),
		PenaltyShot:            e.PenaltyShot.V(),
		PP:                     e.PP.V(),
		Offence:                e.Offence.V(),
		PenaltyClassID:         e.PenaltyClassID.V(),
		PenaltyClass:           e.PenaltyClass,
		LangPenaltyDescription: e.LangPenaltyDescription,
	})
}

func (s *Scraper) storeShootout(game *db.Game, ev hockeytech.Event) error {
	var e hockeytech.ShootoutEvent
	if err := ev.Decode(&e); err != nil {
		return err
	}
	return s.store.UpsertPBPShootout(db.PBPShootout{
		ID:             fmt.Sprintf("%d_shootout_%d", game.ID, e.ID.V()),
		GameID:         game.ID,
		SeasonID:       game.SeasonID,
		PlayerID:       e.PlayerID.V(),
		GoalieID:       e.GoalieID.Ptr(),
		TeamID:         e.TeamID.V(),
		OpponentTeamID: opponentOf(game, e.TeamID.V()),
		Home:           e.Home.V(),
		ShotOrder:      e.ShotOrder.V(),
		Goal:           e.Goal.V(),
		WinningGoal:    e.WinningGoal.V(),
		Seconds:        e.Seconds.V(),
	})
}
