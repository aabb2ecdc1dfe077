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
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Bahadurahmedkhan/TacticsMaster/log"
	"github.com/Bahadurahmedkhan/TacticsMaster/metrics"
	"github.com/Bahadurahmedkhan/TacticsMaster/tool"
)

// NewToolSet builds the full dispatch table backed by the given provider.
// The table covers every tool kind; construction fails only on a
// programming error.
func NewToolSet(provider Provider) (*tool.Registry, error) {
	return tool.NewRegistry(map[tool.Kind]tool.CallableTool{
		tool.KindPlayerStats: NewPlayerStatsTool(provider),
		tool.KindTeamSquad:   NewTeamSquadTool(provider),
		tool.KindMatchupData: NewMatchupDataTool(provider),
		tool.KindVenueStats:  NewVenueStatsTool(provider),
	})
}

// playerStatsArgs is the input for the player stats tool.
type playerStatsArgs struct {
	PlayerName string `json:"player_name"`
}

// playerStatsTool resolves player records, live first, synthetic on failure.
type playerStatsTool struct {
	provider Provider
}

// NewPlayerStatsTool creates the player statistics tool.
func NewPlayerStatsTool(provider Provider) tool.CallableTool {
	return &playerStatsTool{provider: provider}
}

// Declaration implements tool.Tool.
func (t *playerStatsTool) Declaration() *tool.Declaration {
	return &tool.Declaration{
		Name: tool.NamePlayerStats,
		Description: "Fetch detailed player statistics and recent form, including batting " +
			"and bowling averages, strike rates, performance against different bowling " +
			"types, recent match performances, and weakness analysis.",
		InputSchema: &tool.Schema{
			Type: "object",
			Properties: map[string]*tool.Schema{
				"player_name": {
					Type:        "string",
					Description: "Full name of the player to analyze",
				},
			},
			Required: []string{"player_name"},
		},
	}
}

// Call implements tool.CallableTool. Provider failures are logged and
// answered with the synthetic record; they are never returned as errors.
func (t *playerStatsTool) Call(ctx context.Context, jsonArgs []byte) (any, error) {
	var args playerStatsArgs
	if err := json.Unmarshal(jsonArgs, &args); err != nil {
		return nil, fmt.Errorf("invalid arguments for %s: %w", tool.NamePlayerStats, err)
	}
	name := strings.TrimSpace(args.PlayerName)
	if name == "" {
		return nil, fmt.Errorf("%s: player_name cannot be empty", tool.NamePlayerStats)
	}

	stats, err := t.provider.PlayerStats(ctx, name)
	if err != nil {
		log.Warnf("Player stats lookup failed for %q, substituting synthetic record: %v", name, err)
		metrics.ToolFallbackTotal.WithLabelValues(tool.NamePlayerStats).Inc()
		return MockPlayerStats(name), nil
	}
	return stats, nil
}

// teamSquadArgs is the input for the team squad tool.
type teamSquadArgs struct {
	TeamName string `json:"team_name"`
}

// teamSquadTool resolves team records, live first, synthetic on failure.
type teamSquadTool struct {
	provider Provider
}

// NewTeamSquadTool creates the team squad tool.
func NewTeamSquadTool(provider Provider) tool.CallableTool {
	return &teamSquadTool{provider: provider}
}

// Declaration implements tool.Tool.
func (t *teamSquadTool) Declaration() *tool.Declaration {
	return &tool.Declaration{
		Name: tool.NameTeamSquad,
		Description: "Get team squad information and player roles, including squad " +
			"composition, recent team performance, strengths, weaknesses, and key players.",
		InputSchema: &tool.Schema{
			Type: "object",
			Properties: map[string]*tool.Schema{
				"team_name": {
					Type:        "string",
					Description: "Name of the team to analyze",
				},
			},
			Required: []string{"team_name"},
		},
	}
}

// Call implements tool.CallableTool.
func (t *teamSquadTool) Call(ctx context.Context, jsonArgs []byte) (any, error) {
	var args teamSquadArgs
	if err := json.Unmarshal(jsonArgs, &args); err != nil {
		return nil, fmt.Errorf("invalid arguments for %s: %w", tool.NameTeamSquad, err)
	}
	name := strings.TrimSpace(args.TeamName)
	if name == "" {
		return nil, fmt.Errorf("%s: team_name cannot be empty", tool.NameTeamSquad)
	}

	squad, err := t.provider.TeamSquad(ctx, name)
	if err != nil {
		log.Warnf("Team squad lookup failed for %q, substituting synthetic record: %v", name, err)
		metrics.ToolFallbackTotal.WithLabelValues(tool.NameTeamSquad).Inc()
		return MockTeamSquad(name), nil
	}
	return squad, nil
}

// matchupDataArgs is the input for the matchup data tool.
type matchupDataArgs struct {
	Team1 string `json:"team1"`
	Team2 string `json:"team2"`
}

// matchupDataTool resolves head-to-head records, live first, synthetic on failure.
type matchupDataTool struct {
	provider Provider
}

// NewMatchupDataTool creates the matchup data tool.
func NewMatchupDataTool(provider Provider) tool.CallableTool {
	return &matchupDataTool{provider: provider}
}

// Declaration implements tool.Tool.
func (t *matchupDataTool) Declaration() *tool.Declaration {
	return &tool.Declaration{
		Name: tool.NameMatchupData,
		Description: "Retrieve head-to-head records and historical data between two teams, " +
			"including recent encounters, venue-specific performance, key bowler-versus-batsman " +
			"matchups, and historical trends.",
		InputSchema: &tool.Schema{
			Type: "object",
			Properties: map[string]*tool.Schema{
				"team1": {
					Type:        "string",
					Description: "First team name",
				},
				"team2": {
					Type:        "string",
					Description: "Second team name",
				},
			},
			Required: []string{"team1", "team2"},
		},
	}
}

// Call implements tool.CallableTool.
func (t *matchupDataTool) Call(ctx context.Context, jsonArgs []byte) (any, error) {
	var args matchupDataArgs
	if err := json.Unmarshal(jsonArgs, &args); err != nil {
		return nil, fmt.Errorf("invalid arguments for %s: %w", tool.NameMatchupData, err)
	}
	team1 := strings.TrimSpace(args.Team1)
	team2 := strings.TrimSpace(args.Team2)
	if team1 == "" || team2 == "" {
		return nil, fmt.Errorf("%s: team1 and team2 cannot be empty", tool.NameMatchupData)
	}

	matchup, err := t.provider.MatchupData(ctx, team1, team2)
	if err != nil {
		log.Warnf("Matchup lookup failed for %q vs %q, substituting synthetic record: %v", team1, team2, err)
		metrics.ToolFallbackTotal.WithLabelValues(tool.NameMatchupData).Inc()
		return MockMatchupData(team1, team2), nil
	}
	return matchup, nil
}

// venueStatsArgs is the input for the venue stats tool.
type venueStatsArgs struct {
	VenueName string `json:"venue_name"`
}

// venueStatsTool resolves ground records, live first, synthetic on failure.
type venueStatsTool struct {
	provider Provider
}

// NewVenueStatsTool creates the venue statistics tool.
func NewVenueStatsTool(provider Provider) tool.CallableTool {
	return &venueStatsTool{provider: provider}
}

// Declaration implements tool.Tool.
func (t *venueStatsTool) Declaration() *tool.Declaration {
	return &tool.Declaration{
		Name: tool.NameVenueStats,
		Description: "Get venue-specific statistics and conditions, including pitch " +
			"characteristics, average scores, weather impact, ground records, and home advantage.",
		InputSchema: &tool.Schema{
			Type: "object",
			Properties: map[string]*tool.Schema{
				"venue_name": {
					Type:        "string",
					Description: "Name of the venue to analyze",
				},
			},
			Required: []string{"venue_name"},
		},
	}
}

// Call implements tool.CallableTool.
func (t *venueStatsTool) Call(ctx context.Context, jsonArgs []byte) (any, error) {
	var args venueStatsArgs
	if err := json.Unmarshal(jsonArgs, &args); err != nil {
		return nil, fmt.Errorf("invalid arguments for %s: %w", tool.NameVenueStats, err)
	}
	name := strings.TrimSpace(args.VenueName)
	if name == "" {
		return nil, fmt.Errorf("%s: venue_name cannot be empty", tool.NameVenueStats)
	}

	venue, err := t.provider.VenueStats(ctx, name)
	if err != nil {
		log.Warnf("Venue stats lookup failed for %q, substituting synthetic record: %v", name, err)
		metrics.ToolFallbackTotal.WithLabelValues(tool.NameVenueStats).Inc()
		return MockVenueStats(name), nil
	}
	return venue, nil
}
