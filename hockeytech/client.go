// Package hockeytech wraps the HockeyTech feed API that backs the PWHL
// stats site. Every payload value may arrive string-encoded, so the typed
// wrappers lean on the tolerant scalar types in types.go.
package hockeytech

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/IsabelleLefebvre97/PWHL-Scraper/config"
)

type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	baseURL    string
	apiKey     string
	clientCode string
	leagueID   int
	maxRetries int
	retryWait  time.Duration
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.HTTPTimeout},
		limiter:    rate.NewLimiter(rate.Every(cfg.RateLimit), 1),
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		clientCode: cfg.ClientCode,
		leagueID:   cfg.LeagueID,
		maxRetries: cfg.MaxRetries,
		retryWait:  time.Second,
	}
}

// Fetch issues a GET against the feed with the credential params merged in,
// retrying transient failures, and decodes the (possibly JSONP-wrapped)
// response into v.
func (c *Client) Fetch(params url.Values, v any) error {
	q := url.Values{}
	q.Set("key", c.apiKey)
	q.Set("client_code", c.clientCode)
	for k, vals := range params {
		for _, val := range vals {
			q.Add(k, val)
		}
	}
	reqURL := c.baseURL + "index.php?" + q.Encode()

	var lastErr error
	for attempt := 0; attempt < c.maxRetries; attempt++ {
		if err := c.limiter.Wait(context.Background()); err != nil {
			return err
		}

		resp, err := c.httpClient.Get(reqURL)
		if err != nil {
			lastErr = err
			zap.S().Warnw("feed request failed", "url", reqURL, "attempt", attempt+1, "error", err)
			time.Sleep(c.retryWait)
			continue
		}
		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = err
			time.Sleep(c.retryWait)
			continue
		}

		switch {
		case resp.StatusCode == http.StatusTooManyRequests:
			lastErr = errors.Newf("feed returned status %d", resp.StatusCode)
			wait := c.retryWait << attempt
			zap.S().Warnw("feed rate limit exceeded", "attempt", attempt+1, "wait", wait)
			time.Sleep(wait)
			continue
		case resp.StatusCode != http.StatusOK:
			lastErr = errors.Newf("feed returned status %d", resp.StatusCode)
			zap.S().Warnw("feed request rejected", "status", resp.StatusCode, "attempt", attempt+1)
			time.Sleep(c.retryWait)
			continue
		}

		return decodeFeed(body, v)
	}

	return errors.Wrapf(lastErr, "all %d attempts failed for %s", c.maxRetries, reqURL)
}

// decodeFeed strips the JSONP parentheses some feed views wrap their JSON in.
func decodeFeed(body []byte, v any) error {
	body = bytes.TrimSpace(body)
	if len(body) >= 2 && body[0] == '(' && body[len(body)-1] == ')' {
		body = body[1 : len(body)-1]
	}
	if err := json.Unmarshal(body, v); err != nil {
		return errors.Wrap(err, "decode feed response")
	}
	return nil
}

// siteKit and gameCenter are the two envelopes the feed wraps payloads in.
type siteKit[T any] struct {
	SiteKit T `json:"SiteKit"`
}

type gameCenter[T any] struct {
	GC T `json:"GC"`
}

func (c *Client) FetchBootstrap() (*Bootstrap, error) {
	params := url.Values{
		"feed":       {"statviewfeed"},
		"view":       {"bootstrap"},
		"season":     {"latest"},
		"pageName":   {"scorebar"},
		"site_id":    {"0"},
		"league_id":  {strconv.Itoa(c.leagueID)},
		"conference": {"-1"},
		"division":   {"-1"},
		"lang":       {"en"},
	}
	var boot Bootstrap
	if err := c.Fetch(params, &boot); err != nil {
		return nil, err
	}
	return &boot, nil
}

func (c *Client) FetchSeasons() ([]Season, error) {
	params := url.Values{
		"feed": {"modulekit"},
		"view": {"seasons"},
	}
	var env siteKit[struct {
		Seasons []Season `json:"Seasons"`
	}]
	if err := c.Fetch(params, &env); err != nil {
		return nil, err
	}
	return env.SiteKit.Seasons, nil
}

func (c *Client) FetchTeamsBySeason(seasonID int) ([]Team, error) {
	params := url.Values{
		"feed":   {"modulekit"},
		"view":   {"teamsbyseason"},
		"season": {strconv.Itoa(seasonID)},
	}
	var env siteKit[struct {
		Teams []Team `json:"Teamsbyseason"`
	}]
	if err := c.Fetch(params, &env); err != nil {
		return nil, err
	}
	return env.SiteKit.Teams, nil
}

// FetchRoster returns the player entries of a team roster. The raw list also
// carries coach arrays, which are skipped along with any entry missing a
// player id.
func (c *Client) FetchRoster(teamID, seasonID int) ([]RosterPlayer, error) {
	params := url.Values{
		"feed":      {"modulekit"},
		"view":      {"roster"},
		"team_id":   {strconv.Itoa(teamID)},
		"season_id": {strconv.Itoa(seasonID)},
	}
	var env siteKit[struct {
		Roster []json.RawMessage `json:"Roster"`
	}]
	if err := c.Fetch(params, &env); err != nil {
		return nil, err
	}

	players := make([]RosterPlayer, 0, len(env.SiteKit.Roster))
	for _, raw := range env.SiteKit.Roster {
		var probe struct {
			PlayerID Int `json:"player_id"`
		}
		if err := json.Unmarshal(raw, &probe); err != nil || probe.PlayerID.V() == 0 {
			continue
		}
		var p RosterPlayer
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, errors.Wrapf(err, "decode roster entry for team %d", teamID)
		}
		players = append(players, p)
	}
	return players, nil
}

func (c *Client) FetchPlayerProfile(playerID int) (*PlayerProfile, error) {
	params := url.Values{
		"feed":      {"statviewfeed"},
		"view":      {"player"},
		"player_id": {strconv.Itoa(playerID)},
	}
	var env siteKit[struct {
		Player *PlayerProfile `json:"Player"`
	}]
	if err := c.Fetch(params, &env); err != nil {
		return nil, err
	}
	if env.SiteKit.Player == nil {
		return nil, errors.Newf("no profile returned for player %d", playerID)
	}
	return env.SiteKit.Player, nil
}

func (c *Client) FetchPlayerSeasonStats(playerID int) (*PlayerSeasonStats, error) {
	params := url.Values{
		"feed":      {"modulekit"},
		"view":      {"player"},
		"category":  {"seasonstats"},
		"player_id": {strconv.Itoa(playerID)},
	}
	var env siteKit[struct {
		Player PlayerSeasonStats `json:"Player"`
	}]
	if err := c.Fetch(params, &env); err != nil {
		return nil, err
	}
	return &env.SiteKit.Player, nil
}

func (c *Client) FetchSchedule(seasonID int) ([]ScheduledGame, error) {
	params := url.Values{
		"feed":      {"modulekit"},
		"view":      {"schedule"},
		"season_id": {strconv.Itoa(seasonID)},
		"fmt":       {"json"},
		"lang":      {"en"},
	}
	var env siteKit[struct {
		Schedule []ScheduledGame `json:"Schedule"`
	}]
	if err := c.Fetch(params, &env); err != nil {
		return nil, err
	}
	return env.SiteKit.Schedule, nil
}

// FetchStandings returns the per-season standings rows. Section headers in
// the view (rows without a team id) are skipped.
func (c *Client) FetchStandings(seasonID int) ([]TeamStanding, error) {
	params := url.Values{
		"feed":      {"modulekit"},
		"view":      {"statviewtype"},
		"stat":      {"conference"},
		"type":      {"standings"},
		"season_id": {strconv.Itoa(seasonID)},
	}
	var env siteKit[struct {
		Rows []json.RawMessage `json:"Statviewtype"`
	}]
	if err := c.Fetch(params, &env); err != nil {
		return nil, err
	}

	standings := make([]TeamStanding, 0, len(env.SiteKit.Rows))
	for _, raw := range env.SiteKit.Rows {
		var probe struct {
			TeamID Int `json:"team_id"`
		}
		if err := json.Unmarshal(raw, &probe); err != nil || probe.TeamID.V() == 0 {
			continue
		}
		var row TeamStanding
		if err := json.Unmarshal(raw, &row); err != nil {
			return nil, errors.Wrapf(err, "decode standings row for season %d", seasonID)
		}
		standings = append(standings, row)
	}
	return standings, nil
}

func (c *Client) FetchGameSummary(gameID int) (*GameSummary, error) {
	params := url.Values{
		"feed":    {"gc"},
		"tab":     {"gamesummary"},
		"game_id": {strconv.Itoa(gameID)},
	}
	var env gameCenter[struct {
		Gamesummary *GameSummary `json:"Gamesummary"`
	}]
	if err := c.Fetch(params, &env); err != nil {
		return nil, err
	}
	if env.GC.Gamesummary == nil {
		return nil, errors.Newf("no game summary returned for game %d", gameID)
	}
	return env.GC.Gamesummary, nil
}

func (c *Client) FetchPlayByPlay(gameID int) ([]Event, error) {
	params := url.Values{
		"feed":    {"statviewfeed"},
		"view":    {"gameCenterPlayByPlay"},
		"game_id": {strconv.Itoa(gameID)},
	}
	var env gameCenter[struct {
		Pxpverbose []Event `json:"Pxpverbose"`
	}]
	if err := c.Fetch(params, &env); err != nil {
		return nil, err
	}
	return env.GC.Pxpverbose, nil
}

func (c *Client) FetchBrackets(seasonID int) (*Brackets, error) {
	params := url.Values{
		"feed":      {"modulekit"},
		"view":      {"brackets"},
		"league_id": {strconv.Itoa(c.leagueID)},
		"season_id": {strconv.Itoa(seasonID)},
	}
	var env siteKit[struct {
		Brackets *Brackets `json:"Brackets"`
	}]
	if err := c.Fetch(params, &env); err != nil {
		return nil, err
	}
	return env.SiteKit.Brackets, nil
}
