package scrape

import (
	"go.uber.org/zap"

	"github.com/IsabelleLefebvre97/PWHL-Scraper/db"
)

// UpdateBasicInfo refreshes the reference tables: leagues, conferences,
// divisions, seasons, and the teams of every known season.
func (s *Scraper) UpdateBasicInfo() error {
	boot, err := s.client.FetchBootstrap()
	if err != nil {
		return err
	}

	leagues := make([]db.League, 0, len(boot.Leagues))
	for _, l := range boot.Leagues {
		if l.ID.V() == 0 {
			continue
		}
		leagues = append(leagues, db.League{
			ID:        l.ID.V(),
			Name:      l.Name,
			ShortName: l.ShortName,
			Code:      l.Code,
			LogoURL:   l.LogoImage,
		})
	}
	if err := s.store.UpsertLeagues(leagues); err != nil {
		return err
	}

	conferences := make([]db.Conference, 0, len(boot.Conferences))
	for _, c := range boot.Conferences {
		if c.ID.V() == 0 {
			continue
		}
		conferences = append(conferences, db.Conference{ID: c.ID.V(), Name: c.Name})
	}
	if err := s.store.UpsertConferences(conferences); err != nil {
		return err
	}

	divisions := make([]db.Division, 0, len(boot.Divisions))
	for _, dv := range boot.Divisions {
		if dv.ID.V() == 0 {
			continue
		}
		divisions = append(divisions, db.Division{
			ID:           dv.ID.V(),
			Name:         dv.Name,
			ConferenceID: dv.ConferenceID.Ptr(),
		})
	}
	if err := s.store.UpsertDivisions(divisions); err != nil {
		return err
	}

	apiSeasons, err := s.client.FetchSeasons()
	if err != nil {
		return err
	}
	seasons := make([]db.Season, 0, len(apiSeasons))
	for _, sn := range apiSeasons {
		if sn.ID.V() == 0 {
			continue
		}
		seasons = append(seasons, db.Season{
			ID:        sn.ID.V(),
			Name:      sn.Name,
			Career:    sn.Career.V(),
			Playoff:   sn.Playoff.V(),
			StartDate: sn.StartDate,
			EndDate:   sn.EndDate,
		})
	}
	if err := s.store.UpsertSeasons(seasons); err != nil {
		return err
	}

	// Rosters shift between seasons but team identity does not, so the last
	// season's payload wins for each team id.
	byID := map[int]db.Team{}
	for _, sn := range seasons {
		apiTeams, err := s.client.FetchTeamsBySeason(sn.ID)
		if err != nil {
			zap.S().Warnw("skipping teams for season", "season_id", sn.ID, "error", err)
			continue
		}
		for _, t := range apiTeams {
			if t.ID.V() == 0 {
				continue
			}
			byID[t.ID.V()] = db.Team{
				ID:         t.ID.V(),
				Name:       t.Name,
				Nickname:   t.Nickname,
				Code:       t.Code,
				City:       t.City,
				LogoURL:    t.LogoURL,
				DivisionID: t.DivisionID.Ptr(),
			}
		}
	}
	teams := make([]db.Team, 0, len(byID))
	for _, t := range byID {
		teams = append(teams, t)
	}
	if err := s.store.UpsertTeams(teams); err != nil {
		return err
	}

	zap.S().Infow("basic info updated",
		"leagues", len(leagues), "conferences", len(conferences),
		"divisions", len(divisions), "seasons", len(seasons), "teams", len(teams))
	return nil
}
