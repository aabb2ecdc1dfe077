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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bahadurahmedkhan/TacticsMaster/tool"
)

// stubProvider returns canned records, or err when set.
type stubProvider struct {
	player  *PlayerStats
	team    *TeamSquad
	matchup *MatchupData
	venue   *VenueStats
	err     error
}

func (s *stubProvider) PlayerStats(ctx context.Context, name string) (*PlayerStats, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.player, nil
}

func (s *stubProvider) TeamSquad(ctx context.Context, name string) (*TeamSquad, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.team, nil
}

func (s *stubProvider) MatchupData(ctx context.Context, team1, team2 string) (*MatchupData, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.matchup, nil
}

func (s *stubProvider) VenueStats(ctx context.Context, name string) (*VenueStats, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.venue, nil
}

func TestNewToolSetCoversEveryKind(t *testing.T) {
	reg, err := NewToolSet(&stubProvider{})
	require.NoError(t, err)

	for _, kind := range tool.Kinds() {
		impl, ok := reg.Get(kind)
		require.True(t, ok, "kind %s not bound", kind)
		assert.Equal(t, kind.String(), impl.Declaration().Name)
	}
}

func TestPlayerStatsToolLivePath(t *testing.T) {
	live := MockPlayerStats("Virat Kohli")
	live.Source = SourceCricAPI
	playerTool := NewPlayerStatsTool(&stubProvider{player: live})

	result, err := playerTool.Call(context.Background(), []byte(`{"player_name": "Virat Kohli"}`))
	require.NoError(t, err)

	stats, ok := result.(*PlayerStats)
	require.True(t, ok)
	assert.Equal(t, SourceCricAPI, stats.DataSource())
	assert.Equal(t, "Virat Kohli", stats.PlayerName)
}

func TestPlayerStatsToolSubstitutesMockOnProviderError(t *testing.T) {
	playerTool := NewPlayerStatsTool(&stubProvider{err: errors.New("connection refused")})

	result, err := playerTool.Call(context.Background(), []byte(`{"player_name": "Virat Kohli"}`))
	require.NoError(t, err, "provider failures must not surface to the caller")

	stats, ok := result.(*PlayerStats)
	require.True(t, ok)
	assert.Equal(t, SourceMock, stats.DataSource())
	assert.Equal(t, "Virat Kohli", stats.PlayerName)
	assert.NotEmpty(t, stats.RecentForm.LastTenInnings, "substituted record must be complete")
}

func TestPlayerStatsToolRejectsMalformedArguments(t *testing.T) {
	playerTool := NewPlayerStatsTool(&stubProvider{})

	_, err := playerTool.Call(context.Background(), []byte(`{"player_name": 42`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid arguments")
}

func TestPlayerStatsToolRejectsEmptySubject(t *testing.T) {
	playerTool := NewPlayerStatsTool(&stubProvider{})

	for _, args := range []string{`{}`, `{"player_name": ""}`, `{"player_name": "   "}`} {
		_, err := playerTool.Call(context.Background(), []byte(args))
		assert.Error(t, err, "args %s", args)
	}
}

func TestTeamSquadToolSubstitutesMockOnProviderError(t *testing.T) {
	squadTool := NewTeamSquadTool(&stubProvider{err: ErrNotFound})

	result, err := squadTool.Call(context.Background(), []byte(`{"team_name": "India"}`))
	require.NoError(t, err)

	squad, ok := result.(*TeamSquad)
	require.True(t, ok)
	assert.Equal(t, SourceMock, squad.DataSource())
	assert.Equal(t, "India", squad.TeamName)
}

func TestMatchupToolRequiresBothTeams(t *testing.T) {
	matchupTool := NewMatchupDataTool(&stubProvider{})

	_, err := matchupTool.Call(context.Background(), []byte(`{"team1": "India"}`))
	require.Error(t, err)

	_, err = matchupTool.Call(context.Background(), []byte(`{"team2": "Australia"}`))
	require.Error(t, err)
}

func TestMatchupToolSubstitutesMockOnProviderError(t *testing.T) {
	matchupTool := NewMatchupDataTool(&stubProvider{err: ErrIncomplete})

	result, err := matchupTool.Call(context.Background(), []byte(`{"team1": "India", "team2": "Australia"}`))
	require.NoError(t, err)

	matchup, ok := result.(*MatchupData)
	require.True(t, ok)
	assert.Equal(t, SourceMock, matchup.DataSource())
	assert.Equal(t, "India", matchup.Team1)
	assert.Equal(t, "Australia", matchup.Team2)
}

func TestVenueStatsToolSubstitutesMockOnProviderError(t *testing.T) {
	venueTool := NewVenueStatsTool(&stubProvider{err: errors.New("dial tcp: i/o timeout")})

	result, err := venueTool.Call(context.Background(), []byte(`{"venue_name": "Melbourne Cricket Ground"}`))
	require.NoError(t, err)

	venue, ok := result.(*VenueStats)
	require.True(t, ok)
	assert.Equal(t, SourceMock, venue.DataSource())
	assert.Equal(t, "Melbourne Cricket Ground", venue.VenueName)
}

func TestToolDeclarationsDescribeRequiredFields(t *testing.T) {
	tests := []struct {
		tool     tool.CallableTool
		name     string
		required []string
	}{
		{NewPlayerStatsTool(&stubProvider{}), "get_player_stats", []string{"player_name"}},
		{NewTeamSquadTool(&stubProvider{}), "get_team_squad", []string{"team_name"}},
		{NewMatchupDataTool(&stubProvider{}), "get_matchup_data", []string{"team1", "team2"}},
		{NewVenueStatsTool(&stubProvider{}), "get_venue_stats", []string{"venue_name"}},
	}

	for _, tt := range tests {
		decl := tt.tool.Declaration()
		assert.Equal(t, tt.name, decl.Name)
		assert.NotEmpty(t, decl.Description)
		require.NotNil(t, decl.InputSchema)
		assert.Equal(t, tt.required, decl.InputSchema.Required)
		for _, field := range tt.required {
			assert.Contains(t, decl.InputSchema.Properties, field)
		}
	}
}
