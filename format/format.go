//
// Tencent is pleased to support the open source community by making TacticsMaster available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// TacticsMaster is licensed under the Apache License Version 2.0.
//
//

// Package format turns analysis results into the response payload served
// to clients: a coach-friendly markdown narrative, the machine-readable
// analysis tree and the deduplicated list of data source labels.
package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/Bahadurahmedkhan/TacticsMaster/tactics"
)

// Response is the complete answer for one analysis request.
type Response struct {
	Response string   `json:"response"`
	Analysis Analysis `json:"analysis"`
	Sources  []string `json:"sources"`
}

// Analysis is the machine-readable mirror of the narrative. Only the
// populated branches are serialized.
type Analysis struct {
	Player  *tactics.PlayerAnalysis  `json:"player_analysis,omitempty"`
	Team    *tactics.TeamAnalysis    `json:"team_analysis,omitempty"`
	Matchup *tactics.MatchupAnalysis `json:"matchup_analysis,omitempty"`
	General *GeneralAnalysis         `json:"general_analysis,omitempty"`
}

// GeneralAnalysis carries the catch-all branch used when no specific
// subject could be extracted from the query.
type GeneralAnalysis struct {
	DataSummary     string   `json:"data_summary"`
	Insights        []string `json:"insights"`
	Recommendations []string `json:"recommendations"`
}

// Empty reports whether no branch is populated.
func (a Analysis) Empty() bool {
	return a.Player == nil && a.Team == nil && a.Matchup == nil && a.General == nil
}

// Formatter renders Response payloads. The zero value is not usable;
// construct with NewFormatter.
type Formatter struct {
	now func() time.Time
}

// Option configures a Formatter.
type Option func(*Formatter)

// WithClock overrides the clock used for the narrative footer.
func WithClock(now func() time.Time) Option {
	return func(f *Formatter) {
		f.now = now
	}
}

// NewFormatter creates a Formatter with the provided options.
func NewFormatter(opts ...Option) *Formatter {
	f := &Formatter{now: time.Now}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Format assembles the final Response. Every populated analysis branch is
// rendered in order; when none is populated a general summary stands in
// so the caller always receives a non-empty narrative. Source labels are
// deduplicated preserving arrival order.
func (f *Formatter) Format(query string, analysis Analysis, sources []string) Response {
	if analysis.Empty() {
		analysis.General = &GeneralAnalysis{
			DataSummary: "General cricket data analysis",
			Insights: []string{
				"Data available for analysis",
				"Multiple data types supported",
			},
			Recommendations: []string{
				"Specify player, team, or matchup for detailed analysis",
			},
		}
	}

	var b strings.Builder
	if analysis.Player != nil {
		writePlayer(&b, analysis.Player)
	}
	if analysis.Team != nil {
		writeTeam(&b, analysis.Team)
	}
	if analysis.Matchup != nil {
		writeMatchup(&b, analysis.Matchup)
	}
	if analysis.General != nil {
		writeGeneral(&b, query, analysis.General)
	}
	fmt.Fprintf(&b, "---\n*Analysis generated on %s*\n", f.now().Format("2006-01-02 15:04:05"))

	return Response{
		Response: b.String(),
		Analysis: analysis,
		Sources:  MergeSources(sources),
	}
}

// MergeSources flattens the label groups into one list, dropping
// duplicates while preserving first-seen order.
func MergeSources(groups ...[]string) []string {
	seen := make(map[string]bool)
	var merged []string
	for _, group := range groups {
		for _, label := range group {
			if label == "" || seen[label] {
				continue
			}
			seen[label] = true
			merged = append(merged, label)
		}
	}
	return merged
}

func writePlayer(b *strings.Builder, p *tactics.PlayerAnalysis) {
	fmt.Fprintf(b, "# 🏏 Tactical Analysis: %s\n\n", p.Name)

	b.WriteString("## 📊 Overall Assessment\n")
	fmt.Fprintf(b, "%s\n\n", p.OverallAssessment)

	if len(p.KeyInsights) > 0 {
		b.WriteString("## 🔍 Key Insights\n")
		writeNumbered(b, p.KeyInsights)
	}
	if len(p.TacticalRecommendations) > 0 {
		b.WriteString("## 🎯 Tactical Recommendations\n")
		writeNumbered(b, p.TacticalRecommendations)
	}

	b.WriteString("## 🏏 Bowling Plan\n")
	fmt.Fprintf(b, "**Overall Strategy:** %s\n\n", p.BowlingPlan.OverallStrategy)
	if len(p.BowlingPlan.Recommendations) > 0 {
		for i, rec := range p.BowlingPlan.Recommendations {
			fmt.Fprintf(b, "%d. %s (targets: %s)\n", i+1, rec.Approach, rec.Weakness)
		}
		b.WriteString("\n")
	}
	writePhasePlan(b, "Powerplay", p.BowlingPlan.PhasePlans.Powerplay)
	writePhasePlan(b, "Middle Overs", p.BowlingPlan.PhasePlans.MiddleOvers)
	writePhasePlan(b, "Death Overs", p.BowlingPlan.PhasePlans.DeathOvers)

	b.WriteString("## 🏃‍♂️ Fielding Plan\n")
	writePhaseFielding(b, "Powerplay", p.FieldingPlan.PhaseFielding.Powerplay)
	writePhaseFielding(b, "Middle Overs", p.FieldingPlan.PhaseFielding.MiddleOvers)
	writePhaseFielding(b, "Death Overs", p.FieldingPlan.PhaseFielding.DeathOvers)
}

func writePhasePlan(b *strings.Builder, title string, plan tactics.PhasePlan) {
	fmt.Fprintf(b, "### %s\n", title)
	fmt.Fprintf(b, "**Strategy:** %s\n", plan.Strategy)
	fmt.Fprintf(b, "**Field Setting:** %s\n", plan.FieldSetting)
	fmt.Fprintf(b, "**Key Bowlers:** %s\n\n", strings.Join(plan.KeyBowlers, ", "))
}

func writePhaseFielding(b *strings.Builder, title string, fielding tactics.PhaseFielding) {
	fmt.Fprintf(b, "### %s\n", title)
	fmt.Fprintf(b, "**Field Setting:** %s\n", fielding.FieldSetting)
	fmt.Fprintf(b, "**Key Positions:** %s\n\n", strings.Join(fielding.KeyPositions, ", "))
}

func writeTeam(b *strings.Builder, t *tactics.TeamAnalysis) {
	fmt.Fprintf(b, "# 🏏 Team Analysis: %s\n\n", t.TeamName)

	b.WriteString("## 📊 Overall Assessment\n")
	fmt.Fprintf(b, "%s\n\n", t.OverallAssessment)

	if len(t.KeyInsights) > 0 {
		b.WriteString("## 🔍 Key Insights\n")
		writeNumbered(b, t.KeyInsights)
	}
	if len(t.TacticalRecommendations) > 0 {
		b.WriteString("## 🎯 Tactical Recommendations\n")
		writeNumbered(b, t.TacticalRecommendations)
	}

	b.WriteString("## 🎯 Matchup Strategy\n")
	fmt.Fprintf(b, "**Overall Approach:** %s\n\n", t.MatchupStrategy.OverallApproach)
	if len(t.MatchupStrategy.KeyFocusAreas) > 0 {
		b.WriteString("**Key Focus Areas:**\n")
		writeNumbered(b, t.MatchupStrategy.KeyFocusAreas)
	}
	if len(t.MatchupStrategy.RiskManagement) > 0 {
		b.WriteString("**Risk Management:**\n")
		writeNumbered(b, t.MatchupStrategy.RiskManagement)
	}
}

func writeMatchup(b *strings.Builder, m *tactics.MatchupAnalysis) {
	b.WriteString("# 🏏 Matchup Analysis\n\n")

	b.WriteString("## 📈 Historical Performance\n")
	fmt.Fprintf(b, "**Win Percentage:** %g%%\n", m.HistoricalPerformance.WinPercentage)
	fmt.Fprintf(b, "**Total Matches:** %d\n", m.HistoricalPerformance.TotalMatches)
	fmt.Fprintf(b, "**Recent Trend:** %s\n\n", m.HistoricalPerformance.RecentTrend)

	b.WriteString("## 🏟️ Venue Insights\n")
	fmt.Fprintf(b, "**Pitch Conditions:** %s\n", m.VenueInsights.PitchConditions)
	fmt.Fprintf(b, "**Average Score:** %d\n", m.VenueInsights.AverageScore)
	fmt.Fprintf(b, "**Venue Advantage:** %s\n\n", m.VenueInsights.VenueAdvantage)

	if len(m.KeyTrends) > 0 {
		b.WriteString("## 📊 Key Trends\n")
		writeNumbered(b, m.KeyTrends)
	}
	if m.BestMatchup != nil {
		b.WriteString("## 🎯 Best Matchup\n")
		fmt.Fprintf(b, "%s (confidence: %.2f)\n\n", m.BestMatchup.Recommendation, m.BestMatchup.Confidence)
	}
	if len(m.StrategicRecommendations) > 0 {
		b.WriteString("## 🎯 Strategic Recommendations\n")
		writeNumbered(b, m.StrategicRecommendations)
	}
}

func writeGeneral(b *strings.Builder, query string, g *GeneralAnalysis) {
	b.WriteString("# 🏏 Cricket Analysis\n\n")
	if query != "" {
		fmt.Fprintf(b, "**Query:** %s\n\n", query)
	}

	fmt.Fprintf(b, "## 📋 Summary\n%s\n\n", g.DataSummary)
	if len(g.Insights) > 0 {
		b.WriteString("## 🔍 Insights\n")
		writeNumbered(b, g.Insights)
	}
	if len(g.Recommendations) > 0 {
		b.WriteString("## 🎯 Recommendations\n")
		writeNumbered(b, g.Recommendations)
	}
}

func writeNumbered(b *strings.Builder, items []string) {
	for i, item := range items {
		fmt.Fprintf(b, "%d. %s\n", i+1, item)
	}
	b.WriteString("\n")
}
