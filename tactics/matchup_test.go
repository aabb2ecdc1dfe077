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
	"math"
	"testing"

	"github.com/Bahadurahmedkhan/TacticsMaster/tool/cricket"
)

func matchupWith(pairings ...cricket.KeyMatchup) *cricket.MatchupData {
	return &cricket.MatchupData{
		Team1:       "India",
		Team2:       "Australia",
		KeyMatchups: pairings,
	}
}

func TestFindBestMatchupPicksHighestRatio(t *testing.T) {
	analyzer := NewAnalyzer()
	matchup := matchupWith(
		cricket.KeyMatchup{Bowler: "Jasprit Bumrah", Batsman: "Steve Smith", Innings: 12, Dismissals: 5, LastEncounter: "2023-11-19"},
		cricket.KeyMatchup{Bowler: "Ravindra Jadeja", Batsman: "Steve Smith", Innings: 10, Dismissals: 4, LastEncounter: "2023-10-08"},
		cricket.KeyMatchup{Bowler: "Kuldeep Yadav", Batsman: "Marnus Labuschagne", Innings: 8, Dismissals: 2, LastEncounter: "2023-03-12"},
	)

	pick, ok := analyzer.FindBestMatchup(matchup)
	if !ok {
		t.Fatal("expected a pick")
	}
	if pick.Bowler != "Jasprit Bumrah" {
		t.Errorf("bowler = %q, want Jasprit Bumrah", pick.Bowler)
	}
	if pick.Batsman != "Steve Smith" {
		t.Errorf("batsman = %q, want Steve Smith", pick.Batsman)
	}
	if want := "Use Jasprit Bumrah against Steve Smith - 5 dismissals in 12 innings"; pick.Recommendation != want {
		t.Errorf("recommendation = %q, want %q", pick.Recommendation, want)
	}
}

func TestFindBestMatchupTieBreaksByDate(t *testing.T) {
	analyzer := NewAnalyzer()
	// Equal 0.4 ratios; only the encounter date differs.
	matchup := matchupWith(
		cricket.KeyMatchup{Bowler: "Bowler A", Batsman: "Batsman X", Innings: 10, Dismissals: 4, LastEncounter: "2023-05-01"},
		cricket.KeyMatchup{Bowler: "Bowler B", Batsman: "Batsman Y", Innings: 5, Dismissals: 2, LastEncounter: "2023-08-01"},
	)

	pick, ok := analyzer.FindBestMatchup(matchup)
	if !ok {
		t.Fatal("expected a pick")
	}
	if pick.Bowler != "Bowler B" {
		t.Errorf("bowler = %q, want the more recent Bowler B", pick.Bowler)
	}

	// Order of candidates must not matter.
	matchup = matchupWith(matchup.KeyMatchups[1], matchup.KeyMatchups[0])
	pick, _ = analyzer.FindBestMatchup(matchup)
	if pick.Bowler != "Bowler B" {
		t.Errorf("after reorder: bowler = %q, want Bowler B", pick.Bowler)
	}
}

func TestFindBestMatchupConfidence(t *testing.T) {
	analyzer := NewAnalyzer()

	tests := []struct {
		name    string
		innings int
		want    float64
	}{
		{"partial sample", 12, 0.6},
		{"full sample", 20, 1.0},
		{"oversized sample capped", 50, 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matchup := matchupWith(cricket.KeyMatchup{
				Bowler: "Bowler A", Batsman: "Batsman X",
				Innings: tt.innings, Dismissals: tt.innings / 2,
				LastEncounter: "2023-11-19",
			})
			pick, ok := analyzer.FindBestMatchup(matchup)
			if !ok {
				t.Fatal("expected a pick")
			}
			if math.Abs(pick.Confidence-tt.want) > 1e-9 {
				t.Errorf("confidence = %v, want %v", pick.Confidence, tt.want)
			}
		})
	}
}

func TestFindBestMatchupEmptyRecord(t *testing.T) {
	analyzer := NewAnalyzer()

	if _, ok := analyzer.FindBestMatchup(matchupWith()); ok {
		t.Error("empty pairing list must not produce a pick")
	}
	if _, ok := analyzer.FindBestMatchup(nil); ok {
		t.Error("nil record must not produce a pick")
	}
}

func TestFindBestMatchupZeroInnings(t *testing.T) {
	analyzer := NewAnalyzer()
	matchup := matchupWith(
		cricket.KeyMatchup{Bowler: "Bowler A", Batsman: "Batsman X", Innings: 0, Dismissals: 0, LastEncounter: "2023-05-01"},
		cricket.KeyMatchup{Bowler: "Bowler B", Batsman: "Batsman Y", Innings: 10, Dismissals: 1, LastEncounter: "2023-01-01"},
	)

	pick, ok := analyzer.FindBestMatchup(matchup)
	if !ok {
		t.Fatal("expected a pick")
	}
	if pick.Bowler != "Bowler B" {
		t.Errorf("bowler = %q, want Bowler B", pick.Bowler)
	}
}

func TestAnalyzeMatchupOnMockData(t *testing.T) {
	analyzer := NewAnalyzer()
	matchup := cricket.MockMatchupData("India", "Australia")

	analysis := analyzer.AnalyzeMatchup(matchup, "Narendra Modi Stadium")

	if analysis.HistoricalPerformance.RecentTrend != "Favorable" {
		t.Errorf("trend = %q, want Favorable", analysis.HistoricalPerformance.RecentTrend)
	}
	if analysis.HistoricalPerformance.TotalMatches != 45 {
		t.Errorf("total matches = %d, want 45", analysis.HistoricalPerformance.TotalMatches)
	}
	if analysis.VenueInsights.PitchConditions != "Batting friendly" {
		t.Errorf("pitch = %q, want Batting friendly", analysis.VenueInsights.PitchConditions)
	}
	if analysis.VenueInsights.VenueAdvantage != "Favorable" {
		t.Errorf("venue advantage = %q, want Favorable", analysis.VenueInsights.VenueAdvantage)
	}
	if analysis.BestMatchup == nil || analysis.BestMatchup.Bowler != "Jasprit Bumrah" {
		t.Errorf("best matchup = %+v, want Jasprit Bumrah", analysis.BestMatchup)
	}
	if len(analysis.StrategicRecommendations) == 0 {
		t.Error("no strategic recommendations")
	}
	if want := "Maintain aggressive approach - historical advantage"; analysis.StrategicRecommendations[0] != want {
		t.Errorf("recommendation = %q, want %q", analysis.StrategicRecommendations[0], want)
	}
}

func TestMatchupRecommendationBands(t *testing.T) {
	analyzer := NewAnalyzer()

	tests := []struct {
		winPct float64
		want   string
	}{
		{62.2, "Maintain aggressive approach - historical advantage"},
		{50.0, "Balanced approach - focus on execution"},
		{35.0, "Focus on key matchups and exploit weaknesses"},
	}
	for _, tt := range tests {
		matchup := &cricket.MatchupData{
			HeadToHead: cricket.HeadToHead{WinPercentage: tt.winPct, TotalMatches: 10},
		}
		analysis := analyzer.AnalyzeMatchup(matchup, "")
		if len(analysis.StrategicRecommendations) != 1 || analysis.StrategicRecommendations[0] != tt.want {
			t.Errorf("win%%=%v: recommendations = %v, want [%s]",
				tt.winPct, analysis.StrategicRecommendations, tt.want)
		}
	}
}

func TestKeyTrendsFromEncounters(t *testing.T) {
	analyzer := NewAnalyzer()

	dominant := &cricket.MatchupData{
		Team1: "India",
		Team2: "Australia",
		RecentEncounters: []cricket.Encounter{
			{Result: "India won by 6 wickets"},
			{Result: "India won by 20 runs"},
			{Result: "Australia won by 4 wickets"},
		},
	}
	// 2/3 wins sits between the strong and weak bands.
	trends := analyzer.keyTrends(dominant)
	if len(trends) != 0 {
		t.Errorf("mid-band trends = %v, want none", trends)
	}

	dominant.RecentEncounters = append(dominant.RecentEncounters,
		cricket.Encounter{Result: "India won by 5 wickets"},
		cricket.Encounter{Result: "India won by 3 wickets"},
	)
	trends = analyzer.keyTrends(dominant)
	if len(trends) != 1 || trends[0] != "Strong recent form against this opponent" {
		t.Errorf("strong-band trends = %v", trends)
	}
}
