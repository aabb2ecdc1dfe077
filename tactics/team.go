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

// MatchupStrategy is the high-level game plan against an opposing team.
type MatchupStrategy struct {
	OverallApproach string   `json:"overall_approach"`
	KeyFocusAreas   []string `json:"key_focus_areas"`
	RiskManagement  []string `json:"risk_management"`
}

// TeamAnalysis is the structured result of analyzing one team.
type TeamAnalysis struct {
	TeamName                string          `json:"team_name"`
	OverallAssessment       string          `json:"overall_assessment"`
	KeyInsights             []string        `json:"key_insights"`
	TacticalRecommendations []string        `json:"tactical_recommendations"`
	MatchupStrategy         MatchupStrategy `json:"matchup_strategy"`
}

// AnalyzeTeam runs the full team pipeline over a squad record.
func (a *Analyzer) AnalyzeTeam(squad *cricket.TeamSquad) TeamAnalysis {
	return TeamAnalysis{
		TeamName:                squad.TeamName,
		OverallAssessment:       a.AssessTeamForm(squad),
		KeyInsights:             a.TeamInsights(squad),
		TacticalRecommendations: a.TeamRecommendations(squad),
		MatchupStrategy: MatchupStrategy{
			OverallApproach: "Aggressive batting and disciplined bowling",
			KeyFocusAreas: []string{
				"Early wickets to build pressure",
				"Target opponent's weak bowling options",
				"Maintain run rate throughout innings",
			},
			RiskManagement: []string{
				"Avoid unnecessary risks in middle overs",
				"Consolidate after early wickets",
				"Accelerate in death overs",
			},
		},
	}
}

// AssessTeamForm grades the team's recent results.
func (a *Analyzer) AssessTeamForm(squad *cricket.TeamSquad) string {
	winPct := squad.RecentPerformance.WinPercentage
	switch {
	case winPct > a.thresholds.StrongTeamWinPct:
		return "Strong team in excellent form"
	case winPct > a.thresholds.CompetitiveTeamWinPct:
		return "Competitive team with good potential"
	default:
		return "Struggling team - opportunities available"
	}
}

// TeamInsights lists the team's strengths and weaknesses as insight lines.
func (a *Analyzer) TeamInsights(squad *cricket.TeamSquad) []string {
	insights := make([]string, 0, len(squad.Strengths)+len(squad.Weaknesses))
	for _, strength := range squad.Strengths {
		insights = append(insights, fmt.Sprintf("Team strength: %s", strength))
	}
	for _, weakness := range squad.Weaknesses {
		insights = append(insights, fmt.Sprintf("Team weakness: %s", weakness))
	}
	return insights
}

// TeamRecommendations maps the team's tagged weaknesses to counter-moves.
func (a *Analyzer) TeamRecommendations(squad *cricket.TeamSquad) []string {
	var recommendations []string
	for _, weakness := range squad.Weaknesses {
		lowered := strings.ToLower(weakness)
		switch {
		case strings.Contains(lowered, "middle order"):
			recommendations = append(recommendations, "Target middle order with spin bowling")
		case strings.Contains(lowered, "death bowling"):
			recommendations = append(recommendations, "Attack in death overs with aggressive batting")
		case strings.Contains(lowered, "top order"):
			recommendations = append(recommendations, "Focus on early wickets to expose middle order")
		}
	}
	return recommendations
}
