// Package scrape maps feed payloads onto the SQLite store. Each updater
// covers one slice of the data model and is safe to re-run: everything
// lands through upserts keyed on feed identifiers.
package scrape

import (
	"go.uber.org/zap"

	"github.com/IsabelleLefebvre97/PWHL-Scraper/db"
	"github.com/IsabelleLefebvre97/PWHL-Scraper/hockeytech"
)

type Scraper struct {
	client *hockeytech.Client
	store  *db.DB
}

func New(client *hockeytech.Client, store *db.DB) *Scraper {
	return &Scraper{client: client, store: store}
}

// UpdateAll refreshes every slice of the store in dependency order, so
// foreign keys always point at rows written earlier in the same run.
func (s *Scraper) UpdateAll() error {
	if err := s.UpdateBasicInfo(); err != nil {
		return err
	}
	if _, err := s.UpdatePlayers(0); err != nil {
		return err
	}
	if _, err := s.UpdateGames(0); err != nil {
		return err
	}
	if err := s.UpdateStats(0, 0); err != nil {
		return err
	}
	if err := s.UpdatePlayoffs(0); err != nil {
		return err
	}
	if _, err := s.UpdatePlayByPlay(0, 0); err != nil {
		return err
	}
	zap.S().Info("full update complete")
	return nil
}
