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
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProvider(handler http.HandlerFunc) (*APIProvider, *httptest.Server) {
	server := httptest.NewServer(handler)
	provider := NewAPIProvider(
		WithBaseURL(server.URL),
		WithAPIKey("test-key"),
		WithHTTPClient(server.Client()),
	)
	return provider, server
}

func TestAPIProviderPlayerStats(t *testing.T) {
	provider, server := newTestProvider(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/players", r.URL.Path)
		assert.Equal(t, "Virat Kohli", r.URL.Query().Get("search"))
		assert.Equal(t, "test-key", r.URL.Query().Get("apikey"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": "success",
			"data": [{
				"recent_form": {
					"last_10_innings": [45, 67, 23],
					"batting_average": 51.2,
					"strike_rate": 118.4
				}
			}]
		}`))
	})
	defer server.Close()

	stats, err := provider.PlayerStats(context.Background(), "Virat Kohli")
	require.NoError(t, err)
	assert.Equal(t, "Virat Kohli", stats.PlayerName)
	assert.Equal(t, SourceCricAPI, stats.DataSource())
	assert.InDelta(t, 51.2, stats.RecentForm.BattingAverage, 1e-9)
}

func TestAPIProviderPlayerStatsNotFound(t *testing.T) {
	provider, server := newTestProvider(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "success", "data": []}`))
	})
	defer server.Close()

	_, err := provider.PlayerStats(context.Background(), "Nobody")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestAPIProviderPlayerStatsIncompleteRecord(t *testing.T) {
	provider, server := newTestProvider(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "success", "data": [{"recent_form": {"batting_average": 0}}]}`))
	})
	defer server.Close()

	_, err := provider.PlayerStats(context.Background(), "Virat Kohli")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrIncomplete))
}

func TestAPIProviderServerError(t *testing.T) {
	provider, server := newTestProvider(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream exploded", http.StatusBadGateway)
	})
	defer server.Close()

	_, err := provider.PlayerStats(context.Background(), "Virat Kohli")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
}

func TestAPIProviderEnvelopeFailure(t *testing.T) {
	provider, server := newTestProvider(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "failure", "data": []}`))
	})
	defer server.Close()

	_, err := provider.PlayerStats(context.Background(), "Virat Kohli")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"failure"`)
}

func TestAPIProviderMalformedBody(t *testing.T) {
	provider, server := newTestProvider(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "succ`))
	})
	defer server.Close()

	_, err := provider.PlayerStats(context.Background(), "Virat Kohli")
	require.Error(t, err)
}

func TestAPIProviderNoAPIKey(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	provider := NewAPIProvider(WithBaseURL(server.URL), WithHTTPClient(server.Client()))
	_, err := provider.PlayerStats(context.Background(), "Virat Kohli")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no API key")
	assert.False(t, called, "lookup must not reach the network without a key")
}

func TestAPIProviderTeamSquad(t *testing.T) {
	provider, server := newTestProvider(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/teams", r.URL.Path)
		assert.Equal(t, "India", r.URL.Query().Get("search"))

		w.Write([]byte(`{
			"status": "success",
			"data": [{
				"squad": {
					"batsmen": ["Rohit Sharma", "Virat Kohli"],
					"bowlers": ["Jasprit Bumrah"]
				}
			}]
		}`))
	})
	defer server.Close()

	squad, err := provider.TeamSquad(context.Background(), "India")
	require.NoError(t, err)
	assert.Equal(t, "India", squad.TeamName)
	assert.Equal(t, SourceCricAPI, squad.DataSource())
	assert.Len(t, squad.Squad.Batsmen, 2)
}

func TestAPIProviderMatchupData(t *testing.T) {
	provider, server := newTestProvider(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/matchups", r.URL.Path)
		assert.Equal(t, "India", r.URL.Query().Get("team1"))
		assert.Equal(t, "Australia", r.URL.Query().Get("team2"))

		w.Write([]byte(`{
			"status": "success",
			"data": [{
				"head_to_head": {"total_matches": 45, "team1_wins": 28, "team2_wins": 17}
			}]
		}`))
	})
	defer server.Close()

	matchup, err := provider.MatchupData(context.Background(), "India", "Australia")
	require.NoError(t, err)
	assert.Equal(t, "India", matchup.Team1)
	assert.Equal(t, "Australia", matchup.Team2)
	assert.Equal(t, SourceCricAPI, matchup.DataSource())
	assert.Equal(t, 45, matchup.HeadToHead.TotalMatches)
}

func TestAPIProviderVenueStats(t *testing.T) {
	provider, server := newTestProvider(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/venues", r.URL.Path)
		assert.Equal(t, "Eden Gardens", r.URL.Query().Get("search"))

		w.Write([]byte(`{
			"status": "success",
			"data": [{
				"pitch_conditions": {"type": "Spin friendly"},
				"average_scores": {"first_innings": 265}
			}]
		}`))
	})
	defer server.Close()

	venue, err := provider.VenueStats(context.Background(), "Eden Gardens")
	require.NoError(t, err)
	assert.Equal(t, "Eden Gardens", venue.VenueName)
	assert.Equal(t, SourceCricAPI, venue.DataSource())
	assert.Equal(t, "Spin friendly", venue.PitchConditions.Type)
}

func TestAPIProviderUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	provider := NewAPIProvider(WithBaseURL(server.URL), WithAPIKey("test-key"))
	_, err := provider.PlayerStats(context.Background(), "Virat Kohli")
	require.Error(t, err)
}
