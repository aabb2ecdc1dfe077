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

	"github.com/Bahadurahmedkhan/TacticsMaster/tool/cricket"
)

// PlayerAnalysis is the structured result of analyzing a single player.
type PlayerAnalysis struct {
	Name                    string       `json:"name"`
	OverallAssessment       string       `json:"overall_assessment"`
	KeyInsights             []string     `json:"key_insights"`
	TacticalRecommendations []string     `json:"tactical_recommendations"`
	BowlingPlan             BowlingPlan  `json:"bowling_plan"`
	FieldingPlan            FieldingPlan `json:"fielding_plan"`
}

// AnalyzePlayer runs the full player pipeline: assessment, insights,
// recommendations and the bowling/fielding plans built from the player's
// weaknesses. venue may be nil when no ground information is available.
func (a *Analyzer) AnalyzePlayer(stats *cricket.PlayerStats, venue *cricket.VenueStats) PlayerAnalysis {
	weaknesses := a.AnalyzeWeaknesses(stats)
	plan := a.BowlingPlan(weaknesses, venue)

	return PlayerAnalysis{
		Name:                    stats.PlayerName,
		OverallAssessment:       a.AssessForm(stats),
		KeyInsights:             a.PlayerInsights(stats),
		TacticalRecommendations: a.Recommendations(stats),
		BowlingPlan:             plan,
		FieldingPlan:            a.FieldingPlan(plan),
	}
}

// AssessForm grades the player's recent batting form.
func (a *Analyzer) AssessForm(stats *cricket.PlayerStats) string {
	avg := stats.RecentForm.BattingAverage
	sr := stats.RecentForm.StrikeRate

	switch {
	case avg > a.thresholds.ExcellentAverage && sr > a.thresholds.ExcellentStrikeRate:
		return "Excellent form - key player in good touch"
	case avg > a.thresholds.GoodAverage && sr > a.thresholds.GoodStrikeRate:
		return "Good form - reliable performer"
	case avg > a.thresholds.ModerateAverage:
		return "Moderate form - needs support"
	default:
		return "Poor form - consider alternatives"
	}
}

// AnalyzeWeaknesses lists the player's exploitable weaknesses. Tagged
// weaknesses on the record take precedence; when the record carries none,
// fixed heuristics over the recent form fill in.
func (a *Analyzer) AnalyzeWeaknesses(stats *cricket.PlayerStats) []string {
	var weaknesses []string

	if spin := stats.Weaknesses.AgainstSpin; spin != nil && spin.Average < a.thresholds.SpinVulnerableAverage {
		weaknesses = append(weaknesses, fmt.Sprintf("Vulnerable against spin bowling (avg: %g)", spin.Average))
	}
	if early := stats.Weaknesses.EarlyInnings; early != nil && early.FirstTenBalls.Average < a.thresholds.SlowStartAverage {
		weaknesses = append(weaknesses, "Slow starter - target early in innings")
	}
	if len(weaknesses) > 0 {
		return weaknesses
	}

	form := stats.RecentForm
	if form.StrikeRate > 0 && form.StrikeRate < a.thresholds.LowStrikeRate {
		weaknesses = append(weaknesses, "Vulnerable against pace bowling (low strike rate)")
	}
	if form.BattingAverage > 0 && form.BattingAverage < a.thresholds.SpinVulnerableAverage {
		weaknesses = append(weaknesses, "Vulnerable against spin bowling (low average)")
	}
	return weaknesses
}

// VulnerablePhases lists the innings phases where the player struggles.
func (a *Analyzer) VulnerablePhases(stats *cricket.PlayerStats) []string {
	var phases []string

	if sr := stats.RecentForm.StrikeRate; sr > 0 && sr < a.thresholds.LowStrikeRate {
		phases = append(phases, "Struggles in powerplay overs")
	}
	if stats.Weaknesses.EarlyInnings != nil {
		phases = append(phases, "Vulnerable in first 10 balls")
	}
	return phases
}

// TacticalOpportunities derives counter-moves from the player's strengths.
func (a *Analyzer) TacticalOpportunities(stats *cricket.PlayerStats) []string {
	var opportunities []string

	if stats.Strengths.DeathOvers != nil {
		opportunities = append(opportunities, "Avoid bowling in death overs - bowl out early")
	}
	if stats.Strengths.AgainstPace != nil {
		opportunities = append(opportunities, "Use spin bowling to counter pace strength")
	}
	return opportunities
}

// PlayerInsights combines the weakness and strength signals into the
// insight lines shown to the captain.
func (a *Analyzer) PlayerInsights(stats *cricket.PlayerStats) []string {
	insights := a.AnalyzeWeaknesses(stats)

	if death := stats.Strengths.DeathOvers; death != nil && death.Overs16To20.StrikeRate > a.thresholds.DeathOversStrikeRate {
		insights = append(insights, "Dangerous in death overs - bowl out early")
	}
	return insights
}

// Recommendations produces the tactical recommendation lines for a player.
func (a *Analyzer) Recommendations(stats *cricket.PlayerStats) []string {
	var recommendations []string

	if stats.Weaknesses.AgainstSpin != nil {
		recommendations = append(recommendations, "Use spin bowling, especially in middle overs")
	}
	if stats.Weaknesses.EarlyInnings != nil {
		recommendations = append(recommendations, "Attack early with pace - first 10 balls crucial")
	}
	if stats.Strengths.DeathOvers != nil {
		recommendations = append(recommendations, "Avoid bowling in death overs - bowl out before overs 16-20")
	}

	recommendations = append(recommendations,
		"Set attacking field for early wickets",
		"Use close-in fielders for spin bowling",
	)
	return recommendations
}
