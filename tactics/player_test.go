//
// Tencent is pleased to support the open source community by making TacticsMaster available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// TacticsMaster is licensed under the Apache License Version 2.0.
//
//

package tactics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bahadurahmedkhan/TacticsMaster/tool/cricket"
)

func playerWithForm(avg, sr float64) *cricket.PlayerStats {
	return &cricket.PlayerStats{
		PlayerName: "Test Player",
		RecentForm: cricket.RecentForm{BattingAverage: avg, StrikeRate: sr},
	}
}

func TestAssessForm(t *testing.T) {
	analyzer := NewAnalyzer()

	tests := []struct {
		name string
		avg  float64
		sr   float64
		want string
	}{
		{"excellent", 54.8, 125.6, "Excellent form - key player in good touch"},
		{"good", 45.0, 115.0, "Good form - reliable performer"},
		{"moderate", 35.0, 95.0, "Moderate form - needs support"},
		{"poor", 22.0, 90.0, "Poor form - consider alternatives"},
		{"high average slow scoring", 55.0, 105.0, "Moderate form - needs support"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, analyzer.AssessForm(playerWithForm(tt.avg, tt.sr)))
		})
	}
}

func TestAnalyzeWeaknessesFromTaggedRecord(t *testing.T) {
	analyzer := NewAnalyzer()
	stats := cricket.MockPlayerStats("Virat Kohli")

	weaknesses := analyzer.AnalyzeWeaknesses(stats)
	require.Len(t, weaknesses, 2)
	assert.Equal(t, "Vulnerable against spin bowling (avg: 28.4)", weaknesses[0])
	assert.Equal(t, "Slow starter - target early in innings", weaknesses[1])
}

func TestAnalyzeWeaknessesIgnoresStrongTaggedRecord(t *testing.T) {
	analyzer := NewAnalyzer()
	stats := playerWithForm(52.0, 130.0)
	stats.Weaknesses.AgainstSpin = &cricket.BowlingTypeRecord{Average: 45.0, StrikeRate: 110}

	assert.Empty(t, analyzer.AnalyzeWeaknesses(stats))
}

func TestAnalyzeWeaknessesHeuristicFallback(t *testing.T) {
	analyzer := NewAnalyzer()

	slowScorer := playerWithForm(42.0, 85.0)
	weaknesses := analyzer.AnalyzeWeaknesses(slowScorer)
	require.Len(t, weaknesses, 1)
	assert.Contains(t, weaknesses[0], "pace")

	outOfForm := playerWithForm(24.0, 85.0)
	weaknesses = analyzer.AnalyzeWeaknesses(outOfForm)
	require.Len(t, weaknesses, 2)
	assert.Contains(t, weaknesses[0], "pace")
	assert.Contains(t, weaknesses[1], "spin")
}

func TestVulnerablePhases(t *testing.T) {
	analyzer := NewAnalyzer()

	stats := playerWithForm(40.0, 92.0)
	stats.Weaknesses.EarlyInnings = &cricket.EarlyInnings{
		FirstTenBalls: cricket.PhaseRecord{Average: 18.7, StrikeRate: 78.3},
	}

	phases := analyzer.VulnerablePhases(stats)
	assert.Equal(t, []string{"Struggles in powerplay overs", "Vulnerable in first 10 balls"}, phases)
}

func TestTacticalOpportunities(t *testing.T) {
	analyzer := NewAnalyzer()
	stats := cricket.MockPlayerStats("Virat Kohli")

	opportunities := analyzer.TacticalOpportunities(stats)
	assert.Equal(t, []string{
		"Avoid bowling in death overs - bowl out early",
		"Use spin bowling to counter pace strength",
	}, opportunities)
}

func TestPlayerInsightsIncludesDeathOversWarning(t *testing.T) {
	analyzer := NewAnalyzer()
	stats := cricket.MockPlayerStats("Virat Kohli")

	insights := analyzer.PlayerInsights(stats)
	assert.Contains(t, insights, "Dangerous in death overs - bowl out early")
}

func TestRecommendationsAlwaysIncludeFieldingLines(t *testing.T) {
	analyzer := NewAnalyzer()

	recs := analyzer.Recommendations(playerWithForm(40.0, 110.0))
	assert.Equal(t, []string{
		"Set attacking field for early wickets",
		"Use close-in fielders for spin bowling",
	}, recs)

	recs = analyzer.Recommendations(cricket.MockPlayerStats("Virat Kohli"))
	assert.Equal(t, []string{
		"Use spin bowling, especially in middle overs",
		"Attack early with pace - first 10 balls crucial",
		"Avoid bowling in death overs - bowl out before overs 16-20",
		"Set attacking field for early wickets",
		"Use close-in fielders for spin bowling",
	}, recs)
}

func TestAnalyzePlayerBowlingPlanReferencesWeakness(t *testing.T) {
	analyzer := NewAnalyzer()
	stats := cricket.MockPlayerStats("Virat Kohli")
	venue := cricket.MockVenueStats("Melbourne Cricket Ground")

	analysis := analyzer.AnalyzePlayer(stats, venue)

	assert.Equal(t, "Virat Kohli", analysis.Name)
	assert.NotEmpty(t, analysis.KeyInsights)
	require.NotEmpty(t, analysis.BowlingPlan.Recommendations)

	weaknesses := analyzer.AnalyzeWeaknesses(stats)
	var referenced []string
	for _, rec := range analysis.BowlingPlan.Recommendations {
		referenced = append(referenced, rec.Weakness)
	}
	for _, weakness := range weaknesses {
		assert.Contains(t, referenced, weakness)
	}

	assert.NotEmpty(t, analysis.FieldingPlan.KeyPositions)
}
