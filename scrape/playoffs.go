package scrape

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/IsabelleLefebvre97/PWHL-Scraper/db"
	"github.com/IsabelleLefebvre97/PWHL-Scraper/hockeytech"
)

// UpdatePlayoffs pulls the bracket of every playoff season, or of a single
// season when seasonID is nonzero, and upserts rounds, series, and the
// series-to-game links.
func (s *Scraper) UpdatePlayoffs(seasonID int) error {
	var ids []int
	if seasonID != 0 {
		ids = []int{seasonID}
	} else {
		seasons, err := s.store.SelectPlayoffSeasons()
		if err != nil {
			return err
		}
		for _, sn := range seasons {
			ids = append(ids, sn.ID)
		}
	}

	for _, id := range ids {
		brackets, err := s.client.FetchBrackets(id)
		if err != nil {
			zap.S().Warnw("skipping playoff bracket", "season_id", id, "error", err)
			continue
		}
		if err := s.storeBracket(id, brackets); err != nil {
			return err
		}
	}
	return nil
}

func (s *Scraper) storeBracket(seasonID int, brackets *hockeytech.Brackets) error {
	var rounds []db.PlayoffRound
	var series []db.PlayoffSeries
	var games []db.PlayoffGame

	for _, round := range brackets.Rounds {
		roundID := fmt.Sprintf("%d_%d", seasonID, round.Round.V())
		rounds = append(rounds, db.PlayoffRound{
			ID:            roundID,
			SeasonID:      seasonID,
			Round:         round.Round.V(),
			RoundName:     round.RoundName,
			RoundTypeID:   round.RoundTypeID.V(),
			RoundTypeName: round.RoundTypeName,
		})

		for _, m := range round.Matchups {
			seriesID := fmt.Sprintf("%s_%s", roundID, m.SeriesLetter)
			series = append(series, db.PlayoffSeries{
				ID:            seriesID,
				SeasonID:      seasonID,
				RoundID:       roundID,
				SeriesLetter:  m.SeriesLetter,
				SeriesName:    m.SeriesName,
				SeriesLogoURL: m.SeriesLogo,
				Active:        m.Active.V(),
				Team1:         m.Team1.Ptr(),
				Team2:         m.Team2.Ptr(),
				ContentEN:     m.ContentEN,
				Winner:        seriesWinner(m),
				Team1Wins:     m.Team1Wins.V(),
				Team2Wins:     m.Team2Wins.V(),
				Ties:          m.Ties.V(),
				FeederSeries1: m.FeederSeries1,
				FeederSeries2: m.FeederSeries2,
				Round:         round.Round.V(),
			})

			for _, g := range m.Games {
				gameID := g.GameID.V()
				if gameID == 0 {
					continue
				}
				known, err := s.store.GameExists(gameID)
				if err != nil {
					return err
				}
				if !known {
					zap.S().Warnw("skipping playoff game not in schedule", "game_id", gameID, "series", seriesID)
					continue
				}
				games = append(games, db.PlayoffGame{
					ID:       fmt.Sprintf("%s_%d", seriesID, gameID),
					SeasonID: seasonID,
					RoundID:  roundID,
					SeriesID: seriesID,
					GameID:   gameID,
				})
			}
		}
	}

	if err := s.store.UpsertPlayoffRounds(rounds); err != nil {
		return err
	}
	if err := s.store.UpsertPlayoffSeries(series); err != nil {
		return err
	}
	if err := s.store.UpsertPlayoffGames(games); err != nil {
		return err
	}
	zap.S().Infow("playoff bracket updated", "season_id", seasonID,
		"rounds", len(rounds), "series", len(series), "games", len(games))
	return nil
}

// seriesWinner resolves the bracket's "1"/"2" winner marker to a team id.
func seriesWinner(m hockeytech.BracketSeries) *int {
	switch m.Winner {
	case "1":
		return m.Team1.Ptr()
	case "2":
		return m.Team2.Ptr()
	}
	return nil
}
