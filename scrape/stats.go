package scrape

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/IsabelleLefebvre97/PWHL-Scraper/db"
	"github.com/IsabelleLefebvre97/PWHL-Scraper/hockeytech"
)

// UpdateStats refreshes team standings, per-player season stats, and
// per-game box scores. A nonzero seasonID restricts the standings pass, a
// nonzero gameID restricts the box score pass to one game.
func (s *Scraper) UpdateStats(seasonID, gameID int) error {
	if gameID != 0 {
		return s.updateGameStats([]int{gameID})
	}
	if err := s.updateTeamSeasonStats(seasonID); err != nil {
		return err
	}
	if err := s.updatePlayerSeasonStats(); err != nil {
		return err
	}
	gameIDs, err := s.store.SelectFinalGameIDs()
	if err != nil {
		return err
	}
	return s.updateGameStats(gameIDs)
}

func (s *Scraper) updateTeamSeasonStats(seasonID int) error {
	seasonIDs, err := s.seasonIDs(seasonID)
	if err != nil {
		return err
	}

	updated := 0
	for _, id := range seasonIDs {
		standings, err := s.client.FetchStandings(id)
		if err != nil {
			zap.S().Warnw("skipping standings", "season_id", id, "error", err)
			continue
		}
		rows := make([]db.SeasonStatsTeam, 0, len(standings))
		for _, st := range standings {
			rows = append(rows, teamStatsFromStanding(st, id))
		}
		if err := s.store.UpsertSeasonStatsTeams(rows); err != nil {
			return err
		}
		updated += len(rows)
	}
	zap.S().Infow("team season stats updated", "rows", updated)
	return nil
}

func teamStatsFromStanding(st hockeytech.TeamStanding, seasonID int) db.SeasonStatsTeam {
	return db.SeasonStatsTeam{
		ID:                      fmt.Sprintf("%d_%d", seasonID, st.TeamID.V()),
		SeasonID:                seasonID,
		TeamID:                  st.TeamID.V(),
		Name:                    st.Name,
		Nickname:                st.Nickname,
		City:                    st.City,
		TeamCode:                st.TeamCode,
		DivisionID:              st.DivisionID.V(),
		GamesPlayed:             st.GamesPlayed.V(),
		Wins:                    st.Wins.V(),
		Losses:                  st.Losses.V(),
		Ties:                    st.Ties.V(),
		OTLosses:                st.OTLosses.V(),
		ShootoutWins:            st.ShootoutWins.V(),
		ShootoutLosses:          st.ShootoutLosses.V(),
		RegulationWins:          st.RegulationWins.V(),
		Row:                     st.Row.V(),
		Points:                  st.Points.V(),
		PenaltyMinutes:          st.PenaltyMinutes.V(),
		GoalsFor:                st.GoalsFor.V(),
		GoalsAgainst:            st.GoalsAgainst.V(),
		GoalsDiff:               st.GoalsDiff.V(),
		PowerPlayGoals:          st.PowerPlayGoals.V(),
		PowerPlayGoalsAgainst:   st.PowerPlayGoalsAgainst.V(),
		ShortHandedGoalsFor:     st.ShortHandedGoalsFor.V(),
		ShortHandedGoalsAgainst: st.ShortHandedGoalsAgainst.V(),
		PowerPlayPct:            st.PowerPlayPct.V(),
		PenaltyKillPct:          st.PenaltyKillPct.V(),
		WinPercentage:           st.WinPercentage.V(),
		HomeRecord:              st.HomeRecord,
		VisitingRecord:          st.VisitingRecord,
		ShootoutRecord:          st.ShootoutRecord,
	}
}

// updatePlayerSeasonStats fetches the season-by-season stat lines of every
// known player. The player's stored position decides whether lines land in
// the skater or goalie table.
func (s *Scraper) updatePlayerSeasonStats() error {
	players, err := s.store.SelectPlayerPositions()
	if err != nil {
		return err
	}

	skaterRows, goalieRows := 0, 0
	for _, p := range players {
		stats, err := s.client.FetchPlayerSeasonStats(p.ID)
		if err != nil {
			zap.S().Warnw("skipping player season stats", "player_id", p.ID, "error", err)
			continue
		}
		rows := stats.Rows()
		if p.Position == "G" {
			goalies := make([]db.SeasonStatsGoalie, 0, len(rows))
			for _, row := range rows {
				goalies = append(goalies, goalieSeasonStats(row, p.ID))
			}
			if err := s.store.UpsertSeasonStatsGoalies(goalies); err != nil {
				return err
			}
			goalieRows += len(goalies)
			continue
		}
		skaters := make([]db.SeasonStatsSkater, 0, len(rows))
		for _, row := range rows {
			skaters = append(skaters, skaterSeasonStats(row, p.ID))
		}
		if err := s.store.UpsertSeasonStatsSkaters(skaters); err != nil {
			return err
		}
		skaterRows += len(skaters)
	}

	zap.S().Infow("player season stats updated", "skater_rows", skaterRows, "goalie_rows", goalieRows)
	return nil
}

func skaterSeasonStats(row hockeytech.SeasonStatRow, playerID int) db.SeasonStatsSkater {
	return db.SeasonStatsSkater{
		ID:                    fmt.Sprintf("%d_%d", row.SeasonID.V(), playerID),
		PlayerID:              playerID,
		SeasonID:              row.SeasonID.V(),
		TeamID:                row.TeamID.Ptr(),
		JerseyNumber:          row.JerseyNumber.V(),
		Shoots:                row.Shoots,
		GamesPlayed:           row.GamesPlayed.V(),
		Goals:                 row.Goals.V(),
		Assists:               row.Assists.V(),
		Points:                row.Points.V(),
		PointsPerGame:         row.PointsPerGame.V(),
		PlusMinus:             row.PlusMinus.V(),
		PenaltyMinutes:        row.PenaltyMinutes.V(),
		MinorPenalties:        row.MinorPenalties.V(),
		MajorPenalties:        row.MajorPenalties.V(),
		Shots:                 row.Shots.V(),
		ShootingPercentage:    row.ShootingPercentage.V(),
		PowerPlayGoals:        row.PowerPlayGoals.V(),
		PowerPlayAssists:      row.PowerPlayAssists.V(),
		ShortHandedGoals:      row.ShortHandedGoals.V(),
		GameWinningGoals:      row.GameWinningGoals.V(),
		GameTieingGoals:       row.GameTieingGoals.V(),
		FirstGoals:            row.FirstGoals.V(),
		InsuranceGoals:        row.InsuranceGoals.V(),
		UnassistedGoals:       row.UnassistedGoals.V(),
		EmptyNetGoals:         row.EmptyNetGoals.V(),
		OvertimeGoals:         row.OvertimeGoals.V(),
		ShootoutGoals:         row.ShootoutGoals.V(),
		ShootoutAttempts:      row.ShootoutAttempts.V(),
		ShootoutWinningGoals:  row.ShootoutWinningGoals.V(),
		IceTime:               row.IceTime.V(),
		IceTimeMinutesSeconds: row.IceTimeMinSec,
		FaceoffAttempts:       row.FaceoffAttempts.V(),
		FaceoffWins:           row.FaceoffWins.V(),
		FaceoffPct:            row.FaceoffPct.V(),
		Hits:                  row.Hits.V(),
		ShotsBlockedByPlayer:  row.ShotsBlockedByPlayer.V(),
	}
}

func goalieSeasonStats(row hockeytech.SeasonStatRow, playerID int) db.SeasonStatsGoalie {
	return db.SeasonStatsGoalie{
		ID:                   fmt.Sprintf("%d_%d", row.SeasonID.V(), playerID),
		PlayerID:             playerID,
		SeasonID:             row.SeasonID.V(),
		TeamID:               row.TeamID.Ptr(),
		JerseyNumber:         row.JerseyNumber.V(),
		Catches:              row.Catches,
		GamesPlayed:          row.GamesPlayed.V(),
		MinutesPlayed:        row.MinutesPlayed,
		SecondsPlayed:        row.SecondsPlayed.V(),
		Saves:                row.Saves.V(),
		ShotsAgainst:         row.ShotsAgainst.V(),
		SavePercentage:       row.SavePercentage.V(),
		GoalsAgainst:         row.GoalsAgainst.V(),
		EmptyNetGoalsAgainst: row.EmptyNetGoalsAgainst.V(),
		Shutouts:             row.Shutouts.V(),
		Wins:                 row.Wins.V(),
		Losses:               row.Losses.V(),
		OTLosses:             row.OTLosses.V(),
		ShootoutWins:         row.ShootoutWins.V(),
		ShootoutLosses:       row.ShootoutLosses.V(),
		ShootoutSaves:        row.ShootoutSaves.V(),
		ShootoutAttempts:     row.ShootoutAttempts.V(),
		Goals:                row.Goals.V(),
		Assists:              row.Assists.V(),
		Points:               row.Points.V(),
		PenaltyMinutes:       row.PenaltyMinutes.V(),
		GoalsAgainstAverage:  row.GoalsAgainstAverage.V(),
		ShotsAgainstAverage:  row.ShotsAgainstAverage.V(),
	}
}

func (s *Scraper) updateGameStats(gameIDs []int) error {
	updated := 0
	for _, gameID := range gameIDs {
		summary, err := s.client.FetchGameSummary(gameID)
		if err != nil {
			zap.S().Warnw("skipping game stats", "game_id", gameID, "error", err)
			continue
		}
		if err := s.storeGameStats(gameID, summary); err != nil {
			zap.S().Errorw("storing game stats failed", "game_id", gameID, "error", err)
			continue
		}
		updated++
	}
	zap.S().Infow("game stats updated", "games", updated)
	return nil
}

func (s *Scraper) storeGameStats(gameID int, summary *hockeytech.GameSummary) error {
	seasonID := summary.Meta.SeasonID.V()
	homeID := summary.Meta.HomeTeam.V()
	visitorID := summary.Meta.VisitingTeam.V()

	teamRows := []db.GameStatsTeam{
		{
			ID:             fmt.Sprintf("%d_home_%d", gameID, homeID),
			GameID:         gameID,
			TeamID:         homeID,
			SeasonID:       seasonID,
			Goals:          summary.Meta.HomeGoalCount.V(),
			ShotsOnGoal:    summary.ShotsOnGoal("home"),
			PowerPlayTotal: summary.PowerPlayCount.Home.V(),
			PowerPlayGoals: summary.PowerPlayGoals.Home.V(),
			FaceoffWins:    summary.TotalFaceoffs.Home.Won.V(),
			Hits:           summary.TotalHits.Home.V(),
		},
		{
			ID:             fmt.Sprintf("%d_visitor_%d", gameID, visitorID),
			GameID:         gameID,
			TeamID:         visitorID,
			SeasonID:       seasonID,
			Goals:          summary.Meta.VisitingGoalCount.V(),
			ShotsOnGoal:    summary.ShotsOnGoal("visitor"),
			PowerPlayTotal: summary.PowerPlayCount.Visitor.V(),
			PowerPlayGoals: summary.PowerPlayGoals.Visitor.V(),
			FaceoffWins:    summary.TotalFaceoffs.Visitor.Won.V(),
			Hits:           summary.TotalHits.Visitor.V(),
		},
	}
	if err := s.store.UpsertGameStatsTeams(teamRows); err != nil {
		return err
	}

	var skaters []db.GameStatsSkater
	var goalies []db.GameStatsGoalie
	for _, side := range []struct {
		lineup hockeytech.Lineup
		teamID int
	}{
		{summary.HomeLineup, homeID},
		{summary.VisitorLineup, visitorID},
	} {
		for _, p := range side.lineup.Players {
			if p.PlayerID.V() == 0 || p.Position == "G" {
				continue
			}
			skaters = append(skaters, skaterGameStats(p, gameID, side.teamID, seasonID))
		}
		for _, g := range side.lineup.Goalies {
			if g.PlayerID.V() == 0 {
				continue
			}
			goalies = append(goalies, goalieGameStats(g, gameID, side.teamID, seasonID))
		}
	}
	if err := s.store.UpsertGameStatsSkaters(skaters); err != nil {
		return err
	}
	return s.store.UpsertGameStatsGoalies(goalies)
}

func skaterGameStats(p hockeytech.LineupSkater, gameID, teamID, seasonID int) db.GameStatsSkater {
	return db.GameStatsSkater{
		ID:                   fmt.Sprintf("%d_%d", gameID, p.PlayerID.V()),
		GameID:               gameID,
		PlayerID:             p.PlayerID.V(),
		TeamID:               teamID,
		SeasonID:             seasonID,
		JerseyNumber:         p.JerseyNumber.V(),
		Position:             p.Position,
		Rookie:               p.Rookie.V(),
		Start:                p.Start.V(),
		Status:               p.Status,
		Goals:                p.Goals.V(),
		Assists:              p.Assists.V(),
		PlusMinus:            p.PlusMinus.V(),
		PIM:                  p.PIM.V(),
		FaceoffWins:          p.FaceoffWins.V(),
		FaceoffAttempts:      p.FaceoffAttempts.V(),
		Hits:                 p.Hits.V(),
		Shots:                p.Shots.V(),
		ShotsOn:              p.ShotsOn.V(),
		ShotsBlockedByPlayer: p.ShotsBlockedByPlayer.V(),
		ShotsBlocked:         p.ShotsBlocked.V(),
		PowerPlayGoals:       p.PowerPlayGoals.V(),
		ShortHandedGoals:     p.ShortHandedGoals.V(),
		GameWinningGoal:      p.GameWinningGoal.V(),
	}
}

func goalieGameStats(g hockeytech.LineupGoalie, gameID, teamID, seasonID int) db.GameStatsGoalie {
	return db.GameStatsGoalie{
		ID:           fmt.Sprintf("%d_%d", gameID, g.PlayerID.V()),
		GameID:       gameID,
		PlayerID:     g.PlayerID.V(),
		TeamID:       teamID,
		SeasonID:     seasonID,
		JerseyNumber: g.JerseyNumber.V(),
		Rookie:       g.Rookie.V(),
		Start:        g.Start.V(),
		Position:     g.Position,
		Status:       g.Status,
		Seconds:      g.Seconds.V(),
		Time:         g.Time,
		ShotsAgainst: g.ShotsAgainst.V(),
		GoalsAgainst: g.GoalsAgainst.V(),
		Saves:        g.Saves.V(),
		Goals:        g.Goals.V(),
		Assists:      g.Assists.V(),
		PIM:          g.PIM.V(),
		Shots:        g.Shots.V(),
	}
}
