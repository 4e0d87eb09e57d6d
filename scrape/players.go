package scrape

import (
	"go.uber.org/zap"

	"github.com/IsabelleLefebvre97/PWHL-Scraper/db"
	"github.com/IsabelleLefebvre97/PWHL-Scraper/hockeytech"
	"github.com/IsabelleLefebvre97/PWHL-Scraper/utils"
)

// UpdatePlayers walks every season/team roster and upserts each player it
// has not seen yet this run, enriching the roster entry with the profile
// view. Passing a player id limits the run to that one player.
func (s *Scraper) UpdatePlayers(playerID int) (int, error) {
	if playerID != 0 {
		return s.updateOnePlayer(playerID)
	}

	seasons, err := s.store.SelectSeasons()
	if err != nil {
		return 0, err
	}
	teams, err := s.store.SelectTeams()
	if err != nil {
		return 0, err
	}

	updated := 0
	seen := map[int]bool{}
	for _, season := range seasons {
		for _, team := range teams {
			roster, err := s.client.FetchRoster(team.ID, season.ID)
			if err != nil {
				zap.S().Warnw("skipping roster", "team_id", team.ID, "season_id", season.ID, "error", err)
				continue
			}
			for _, rp := range roster {
				id := rp.PlayerID.V()
				if seen[id] {
					continue
				}
				seen[id] = true

				player := playerFromRoster(rp)
				if player.DraftType == "" {
					if profile, err := s.client.FetchPlayerProfile(id); err == nil {
						player.DraftType = profile.DraftType
					}
				}
				written, err := s.store.UpsertPlayer(player)
				if err != nil {
					zap.S().Errorw("upserting player failed", "player_id", id, "error", err)
					continue
				}
				if written {
					updated++
				}
			}
		}
	}

	zap.S().Infow("players updated", "count", updated)
	return updated, nil
}

// updateOnePlayer refreshes a single player. If the player is already known
// the roster of their latest team is the primary source, otherwise the
// profile view supplies a minimal record.
func (s *Scraper) updateOnePlayer(playerID int) (int, error) {
	profile, err := s.client.FetchPlayerProfile(playerID)
	if err != nil {
		return 0, err
	}

	if existing, err := s.store.SelectPlayer(playerID); err == nil && existing.LatestTeamID != nil {
		if season, err := s.store.SelectLatestRegularSeason(); err == nil {
			roster, err := s.client.FetchRoster(*existing.LatestTeamID, season.ID)
			if err == nil {
				for _, rp := range roster {
					if rp.PlayerID.V() != playerID {
						continue
					}
					player := playerFromRoster(rp)
					if player.DraftType == "" {
						player.DraftType = profile.DraftType
					}
					written, err := s.store.UpsertPlayer(player)
					if err != nil {
						return 0, err
					}
					if written {
						return 1, nil
					}
					return 0, nil
				}
			}
			zap.S().Warnw("player not on current roster, falling back to profile", "player_id", playerID)
		}
	}

	town, country := utils.SplitBirthplace(profile.BirthPlace)
	player := db.Player{
		ID:           playerID,
		FirstName:    profile.FirstName,
		LastName:     profile.LastName,
		Active:       true,
		Position:     profile.Position,
		Birthtown:    town,
		Birthcntry:   country,
		Nationality:  country,
		DraftType:    profile.DraftType,
		LatestTeamID: profile.LatestTeamID.Ptr(),
	}
	written, err := s.store.UpsertPlayer(player)
	if err != nil {
		return 0, err
	}
	if written {
		return 1, nil
	}
	return 0, nil
}

func playerFromRoster(rp hockeytech.RosterPlayer) db.Player {
	draftType := ""
	if len(rp.DraftInfo) > 0 {
		draftType = rp.DraftInfo[0].DraftType
	}
	return db.Player{
		ID:                 rp.PlayerID.V(),
		FirstName:          rp.FirstName,
		LastName:           rp.LastName,
		JerseyNumber:       rp.JerseyNumber.V(),
		Active:             rp.Active.V(),
		Rookie:             rp.Rookie.V(),
		PositionID:         rp.PositionID.V(),
		Position:           rp.Position,
		Height:             rp.Height,
		Weight:             rp.Weight,
		Birthdate:          rp.Birthdate,
		Shoots:             rp.Shoots,
		Catches:            rp.Catches,
		ImageURL:           rp.PlayerImage,
		Birthtown:          rp.Birthtown,
		Birthprov:          rp.Birthprov,
		Birthcntry:         rp.Birthcntry,
		Nationality:        rp.Birthcntry,
		DraftType:          draftType,
		VeteranStatus:      rp.VeteranStatus.V(),
		VeteranDescription: rp.VeteranDescription,
		LatestTeamID:       rp.LatestTeamID.Ptr(),
	}
}
