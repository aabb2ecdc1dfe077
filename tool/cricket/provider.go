//
// Tencent is pleased to support the open source community by making TacticsMaster available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// TacticsMaster is licensed under the Apache License Version 2.0.
//
//

package cricket

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/Bahadurahmedkhan/TacticsMaster/tool/cricket/internal/client"
)

// Provider errors. Callers treat any provider error as "no live data";
// the sentinel values exist so tests and logs can tell the cases apart.
var (
	// ErrNotFound indicates the provider had no record for the subject.
	ErrNotFound = errors.New("subject not found")
	// ErrIncomplete indicates the provider returned a partial record.
	ErrIncomplete = errors.New("incomplete record")
)

// Provider fetches live cricket data. Implementations either return a
// fully populated record or an error; they never return partial records.
type Provider interface {
	PlayerStats(ctx context.Context, playerName string) (*PlayerStats, error)
	TeamSquad(ctx context.Context, teamName string) (*TeamSquad, error)
	MatchupData(ctx context.Context, team1, team2 string) (*MatchupData, error)
	VenueStats(ctx context.Context, venueName string) (*VenueStats, error)
}

const (
	// defaultBaseURL is the default base URL for the CricAPI service.
	defaultBaseURL = "https://api.cricapi.com/v1"
	// defaultTimeout bounds every outbound lookup. Lookups are not retried.
	defaultTimeout = 10 * time.Second
)

// ProviderOption is a functional option for configuring the API provider.
type ProviderOption func(*providerConfig)

// providerConfig holds the configuration for the API provider.
type providerConfig struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// WithBaseURL sets the base URL for the CricAPI service.
func WithBaseURL(baseURL string) ProviderOption {
	return func(c *providerConfig) {
		c.baseURL = baseURL
	}
}

// WithAPIKey sets the API key used on every request.
func WithAPIKey(apiKey string) ProviderOption {
	return func(c *providerConfig) {
		c.apiKey = apiKey
	}
}

// WithHTTPClient sets the HTTP client to use.
func WithHTTPClient(httpClient *http.Client) ProviderOption {
	return func(c *providerConfig) {
		c.httpClient = httpClient
	}
}

// APIProvider fetches records from the CricAPI REST service. Each lookup
// performs exactly one outbound request.
type APIProvider struct {
	client *client.Client
}

// NewAPIProvider creates a live data provider with the provided options.
func NewAPIProvider(opts ...ProviderOption) *APIProvider {
	cfg := &providerConfig{
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return &APIProvider{
		client: client.New(cfg.baseURL, cfg.apiKey, cfg.httpClient),
	}
}

// PlayerStats fetches a player record by name.
func (p *APIProvider) PlayerStats(ctx context.Context, playerName string) (*PlayerStats, error) {
	var records []PlayerStats
	if err := p.client.Get(ctx, "players", url.Values{"search": {playerName}}, &records); err != nil {
		return nil, fmt.Errorf("fetch player stats: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("player %q: %w", playerName, ErrNotFound)
	}

	stats := records[0]
	if stats.RecentForm.BattingAverage <= 0 || len(stats.RecentForm.LastTenInnings) == 0 {
		return nil, fmt.Errorf("player %q: %w", playerName, ErrIncomplete)
	}
	stats.PlayerName = playerName
	stats.Source = SourceCricAPI
	return &stats, nil
}

// TeamSquad fetches a team record by name.
func (p *APIProvider) TeamSquad(ctx context.Context, teamName string) (*TeamSquad, error) {
	var records []TeamSquad
	if err := p.client.Get(ctx, "teams", url.Values{"search": {teamName}}, &records); err != nil {
		return nil, fmt.Errorf("fetch team squad: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("team %q: %w", teamName, ErrNotFound)
	}

	squad := records[0]
	if len(squad.Squad.Batsmen) == 0 || len(squad.Squad.Bowlers) == 0 {
		return nil, fmt.Errorf("team %q: %w", teamName, ErrIncomplete)
	}
	squad.TeamName = teamName
	squad.Source = SourceCricAPI
	return &squad, nil
}

// MatchupData fetches the head-to-head record between two teams.
func (p *APIProvider) MatchupData(ctx context.Context, team1, team2 string) (*MatchupData, error) {
	var records []MatchupData
	query := url.Values{"team1": {team1}, "team2": {team2}}
	if err := p.client.Get(ctx, "matchups", query, &records); err != nil {
		return nil, fmt.Errorf("fetch matchup data: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("matchup %q vs %q: %w", team1, team2, ErrNotFound)
	}

	matchup := records[0]
	if matchup.HeadToHead.TotalMatches <= 0 {
		return nil, fmt.Errorf("matchup %q vs %q: %w", team1, team2, ErrIncomplete)
	}
	matchup.Team1 = team1
	matchup.Team2 = team2
	matchup.Source = SourceCricAPI
	return &matchup, nil
}

// VenueStats fetches a ground record by name.
func (p *APIProvider) VenueStats(ctx context.Context, venueName string) (*VenueStats, error) {
	var records []VenueStats
	if err := p.client.Get(ctx, "venues", url.Values{"search": {venueName}}, &records); err != nil {
		return nil, fmt.Errorf("fetch venue stats: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("venue %q: %w", venueName, ErrNotFound)
	}

	venue := records[0]
	if venue.PitchConditions.Type == "" || venue.AverageScores.FirstInnings <= 0 {
		return nil, fmt.Errorf("venue %q: %w", venueName, ErrIncomplete)
	}
	venue.VenueName = venueName
	venue.Source = SourceCricAPI
	return &venue, nil
}
