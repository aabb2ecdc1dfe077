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
	"fmt"
	"strings"

	"github.com/Bahadurahmedkhan/TacticsMaster/tool/cricket"
)

// MatchupPick is the bowler-versus-batsman pairing with the best
// historical record, plus a confidence grade for the sample behind it.
type MatchupPick struct {
	Bowler         string  `json:"bowler"`
	Batsman        string  `json:"batsman"`
	Recommendation string  `json:"recommendation"`
	Confidence     float64 `json:"confidence"`
}

// HistoricalPerformance summarizes the head-to-head record.
type HistoricalPerformance struct {
	WinPercentage float64 `json:"win_percentage"`
	TotalMatches  int     `json:"total_matches"`
	RecentTrend   string  `json:"recent_trend"`
}

// VenueInsights summarizes how the matchup plays at one ground.
type VenueInsights struct {
	PitchConditions string `json:"pitch_conditions"`
	AverageScore    int    `json:"average_score"`
	VenueAdvantage  string `json:"venue_advantage"`
}

// MatchupAnalysis is the structured result of analyzing a head-to-head
// record between two teams.
type MatchupAnalysis struct {
	HistoricalPerformance    HistoricalPerformance `json:"historical_performance"`
	VenueInsights            VenueInsights         `json:"venue_insights"`
	KeyTrends                []string              `json:"key_trends"`
	BestMatchup              *MatchupPick          `json:"best_matchup,omitempty"`
	StrategicRecommendations []string              `json:"strategic_recommendations"`
}

// FindBestMatchup picks the bowler pairing with the strictly highest
// dismissals-per-innings ratio. Ties go to the pairing with the more
// recent encounter. Confidence scales linearly with the innings sample
// and caps at 1.0. The boolean is false when the record carries no
// pairings at all.
func (a *Analyzer) FindBestMatchup(matchup *cricket.MatchupData) (MatchupPick, bool) {
	if matchup == nil || len(matchup.KeyMatchups) == 0 {
		return MatchupPick{}, false
	}

	best := matchup.KeyMatchups[0]
	bestRatio := favorability(best)
	for _, candidate := range matchup.KeyMatchups[1:] {
		ratio := favorability(candidate)
		switch {
		case ratio > bestRatio:
			best, bestRatio = candidate, ratio
		case ratio == bestRatio && candidate.LastEncounter > best.LastEncounter:
			// Encounter dates are ISO formatted, so lexical order is
			// chronological order.
			best = candidate
		}
	}

	confidence := float64(best.Innings) / float64(a.thresholds.MatchupSampleSize)
	if confidence > 1 {
		confidence = 1
	}

	return MatchupPick{
		Bowler:  best.Bowler,
		Batsman: best.Batsman,
		Recommendation: fmt.Sprintf("Use %s against %s - %d dismissals in %d innings",
			best.Bowler, best.Batsman, best.Dismissals, best.Innings),
		Confidence: confidence,
	}, true
}

// favorability grades a pairing by dismissals per innings.
func favorability(m cricket.KeyMatchup) float64 {
	if m.Innings == 0 {
		return 0
	}
	return float64(m.Dismissals) / float64(m.Innings)
}

// AnalyzeMatchup runs the full head-to-head pipeline for two teams.
// venueName narrows the venue insights to one ground when non-empty.
func (a *Analyzer) AnalyzeMatchup(matchup *cricket.MatchupData, venueName string) MatchupAnalysis {
	analysis := MatchupAnalysis{
		HistoricalPerformance:    a.historicalPerformance(matchup),
		VenueInsights:            a.venueInsights(matchup, venueName),
		KeyTrends:                a.keyTrends(matchup),
		StrategicRecommendations: a.matchupRecommendations(matchup),
	}
	if pick, ok := a.FindBestMatchup(matchup); ok {
		analysis.BestMatchup = &pick
	}
	return analysis
}

func (a *Analyzer) historicalPerformance(matchup *cricket.MatchupData) HistoricalPerformance {
	h2h := matchup.HeadToHead
	trend := "Unfavorable"
	if h2h.WinPercentage > 50 {
		trend = "Favorable"
	}
	return HistoricalPerformance{
		WinPercentage: h2h.WinPercentage,
		TotalMatches:  h2h.TotalMatches,
		RecentTrend:   trend,
	}
}

// venueInsights reads the per-ground breakdown. The named venue wins when
// present; otherwise the ground with the largest sample stands in.
func (a *Analyzer) venueInsights(matchup *cricket.MatchupData, venueName string) VenueInsights {
	record, ok := matchup.VenueAnalysis[venueKey(venueName)]
	if !ok {
		for _, candidate := range matchup.VenueAnalysis {
			if candidate.MatchesPlayed > record.MatchesPlayed {
				record = candidate
			}
		}
	}
	if record.MatchesPlayed == 0 {
		return VenueInsights{PitchConditions: "Unknown", VenueAdvantage: "Neutral"}
	}

	advantage := "Neutral"
	if float64(record.Team1Wins) > float64(record.MatchesPlayed)*0.5 {
		advantage = "Favorable"
	}
	return VenueInsights{
		PitchConditions: record.PitchType,
		AverageScore:    record.AverageScore,
		VenueAdvantage:  advantage,
	}
}

// venueKey normalizes a display name to the snake_case key used in the
// venue breakdown.
func venueKey(venueName string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(venueName)), " ", "_")
}

func (a *Analyzer) keyTrends(matchup *cricket.MatchupData) []string {
	var trends []string

	encounters := matchup.RecentEncounters
	if len(encounters) >= 2 {
		wins := 0
		for _, encounter := range encounters {
			if strings.Contains(strings.ToLower(encounter.Result), "won") &&
				strings.HasPrefix(encounter.Result, matchup.Team1) {
				wins++
			}
		}
		share := float64(wins) / float64(len(encounters))
		if share >= a.thresholds.TrendStrongShare {
			trends = append(trends, "Strong recent form against this opponent")
		} else if share <= a.thresholds.TrendWeakShare {
			trends = append(trends, "Struggling against this opponent recently")
		}
	}

	trends = append(trends, matchup.KeyTrends...)
	return trends
}

func (a *Analyzer) matchupRecommendations(matchup *cricket.MatchupData) []string {
	winPct := matchup.HeadToHead.WinPercentage
	switch {
	case winPct > a.thresholds.DominantWinPct:
		return []string{"Maintain aggressive approach - historical advantage"}
	case winPct < a.thresholds.WeakWinPct:
		return []string{"Focus on key matchups and exploit weaknesses"}
	default:
		return []string{"Balanced approach - focus on execution"}
	}
}
