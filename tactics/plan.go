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
	"strings"

	"github.com/Bahadurahmedkhan/TacticsMaster/tool/cricket"
)

// Bowling styles a recommendation can call for.
const (
	StylePace       = "pace"
	StyleSpin       = "spin"
	StyleVariations = "variations"
)

// BowlingRecommendation pairs one identified weakness with the bowling
// style that exploits it.
type BowlingRecommendation struct {
	Weakness string `json:"weakness"`
	Style    string `json:"style"`
	Approach string `json:"approach"`
}

// PhasePlan describes how to bowl one phase of the innings.
type PhasePlan struct {
	Strategy     string   `json:"strategy"`
	FieldSetting string   `json:"field_setting"`
	KeyBowlers   []string `json:"key_bowlers"`
}

// PhasePlans covers the three innings phases in chronological order.
type PhasePlans struct {
	Powerplay   PhasePlan `json:"powerplay"`
	MiddleOvers PhasePlan `json:"middle_overs"`
	DeathOvers  PhasePlan `json:"death_overs"`
}

// FieldPlacements lists the fielding positions per phase.
type FieldPlacements struct {
	Powerplay   []string `json:"powerplay"`
	MiddleOvers []string `json:"middle_overs"`
	DeathOvers  []string `json:"death_overs"`
}

// BowlerAssignments names the bowler types to use per phase.
type BowlerAssignments struct {
	Powerplay   []string `json:"powerplay"`
	MiddleOvers []string `json:"middle_overs"`
	DeathOvers  []string `json:"death_overs"`
}

// BowlingPlan is a complete bowling strategy against one player.
type BowlingPlan struct {
	OverallStrategy    string                  `json:"overall_strategy"`
	Recommendations    []BowlingRecommendation `json:"recommendations"`
	PhasePlans         PhasePlans              `json:"phase_plans"`
	FieldPlacements    FieldPlacements         `json:"field_placements"`
	BowlerAssignments  BowlerAssignments       `json:"bowler_assignments"`
	TacticalVariations []string                `json:"tactical_variations"`
}

// PhaseFielding describes the field for one phase.
type PhaseFielding struct {
	FieldSetting string   `json:"field_setting"`
	KeyPositions []string `json:"key_positions"`
}

// PhaseFieldingPlans covers fielding across the three innings phases.
type PhaseFieldingPlans struct {
	Powerplay   PhaseFielding `json:"powerplay"`
	MiddleOvers PhaseFielding `json:"middle_overs"`
	DeathOvers  PhaseFielding `json:"death_overs"`
}

// FieldingPlan is the fielding counterpart of a BowlingPlan.
type FieldingPlan struct {
	OverallApproach     string             `json:"overall_approach"`
	PhaseFielding       PhaseFieldingPlans `json:"phase_fielding"`
	KeyPositions        []string           `json:"key_positions"`
	TacticalAdjustments []string           `json:"tactical_adjustments"`
	CommunicationPoints []string           `json:"communication_points"`
}

// bowlingStyles maps weakness keywords to canned style recommendations.
// Rows are checked in order and the first keyword hit wins, so the more
// specific entries come first.
var bowlingStyles = []struct {
	keyword  string
	style    string
	approach string
}{
	{"spin", StyleSpin, "Use spin bowling, especially in middle overs"},
	{"starter", StylePace, "Attack early with pace - first 10 balls crucial"},
	{"first 10", StylePace, "Attack early with pace - first 10 balls crucial"},
	{"pace", StylePace, "Attack with pace bowling"},
}

// fieldingPositions maps a bowling style to the canned positions that
// support it.
var fieldingPositions = map[string][]string{
	StylePace:       {"Slip cordon", "Gully", "Short leg"},
	StyleSpin:       {"Short mid-wicket", "Deep square leg", "Deep mid-wicket"},
	StyleVariations: {"Long on", "Long off", "Deep mid-wicket"},
}

// BowlingPlan builds a bowling strategy from the identified weaknesses.
// Each weakness maps to a style recommendation through a fixed lookup
// table. The venue, when known, only reorders the recommendations: a
// pace-friendly pitch promotes pace entries to the front, a spin-friendly
// pitch promotes spin. venue may be nil.
func (a *Analyzer) BowlingPlan(weaknesses []string, venue *cricket.VenueStats) BowlingPlan {
	recommendations := make([]BowlingRecommendation, 0, len(weaknesses))
	for _, weakness := range weaknesses {
		recommendations = append(recommendations, recommendFor(weakness))
	}
	recommendations = orderForVenue(recommendations, venue)

	return BowlingPlan{
		OverallStrategy: "Attack early with pace bowling, use spin in middle overs, avoid death overs if possible",
		Recommendations: recommendations,
		PhasePlans: PhasePlans{
			Powerplay: PhasePlan{
				Strategy:     "Attack with pace bowling",
				FieldSetting: "Attacking field with slips and gully",
				KeyBowlers:   []string{"Fast bowlers with swing/seam"},
			},
			MiddleOvers: PhasePlan{
				Strategy:     "Use spin bowling to build pressure",
				FieldSetting: "Close-in fielders, deep mid-wicket",
				KeyBowlers:   []string{"Spinners with good control"},
			},
			DeathOvers: PhasePlan{
				Strategy:     "Avoid if possible - use variations",
				FieldSetting: "Defensive field with boundary protection",
				KeyBowlers:   []string{"Specialist death bowlers only"},
			},
		},
		FieldPlacements: FieldPlacements{
			Powerplay:   []string{"Slip cordon", "Gully", "Short leg"},
			MiddleOvers: []string{"Short mid-wicket", "Deep square leg", "Deep mid-wicket"},
			DeathOvers:  []string{"Long on", "Long off", "Deep mid-wicket"},
		},
		BowlerAssignments: BowlerAssignments{
			Powerplay:   []string{"Opening fast bowlers"},
			MiddleOvers: []string{"Spinners", "Medium pacers"},
			DeathOvers:  []string{"Specialist death bowlers"},
		},
		TacticalVariations: []string{
			"Change bowling angles",
			"Use slower balls and cutters",
			"Vary field placements based on situation",
		},
	}
}

// recommendFor resolves one weakness line against the style table.
func recommendFor(weakness string) BowlingRecommendation {
	lowered := strings.ToLower(weakness)
	for _, row := range bowlingStyles {
		if strings.Contains(lowered, row.keyword) {
			return BowlingRecommendation{Weakness: weakness, Style: row.style, Approach: row.approach}
		}
	}
	return BowlingRecommendation{
		Weakness: weakness,
		Style:    StyleVariations,
		Approach: "Use slower balls and cutters",
	}
}

// orderForVenue stably partitions the recommendations so the style favored
// by the pitch comes first. Relative order inside each group is preserved.
func orderForVenue(recs []BowlingRecommendation, venue *cricket.VenueStats) []BowlingRecommendation {
	if venue == nil || len(recs) < 2 {
		return recs
	}

	var favored string
	switch {
	case venue.PitchConditions.PaceFriendly:
		favored = StylePace
	case venue.PitchConditions.SpinFriendly:
		favored = StyleSpin
	default:
		return recs
	}

	ordered := make([]BowlingRecommendation, 0, len(recs))
	for _, rec := range recs {
		if rec.Style == favored {
			ordered = append(ordered, rec)
		}
	}
	for _, rec := range recs {
		if rec.Style != favored {
			ordered = append(ordered, rec)
		}
	}
	return ordered
}

// FieldingPlan derives the fielding setup backing a bowling plan. Key
// positions come from mapping each recommendation's style through the
// position table, deduplicated in plan order.
func (a *Analyzer) FieldingPlan(plan BowlingPlan) FieldingPlan {
	return FieldingPlan{
		OverallApproach: "Aggressive fielding with close-in fielders for early wickets",
		PhaseFielding: PhaseFieldingPlans{
			Powerplay: PhaseFielding{
				FieldSetting: "Attacking with slips, gully, and close-in fielders",
				KeyPositions: []string{"Slip cordon", "Gully", "Short leg"},
			},
			MiddleOvers: PhaseFielding{
				FieldSetting: "Balanced with close-in and boundary protection",
				KeyPositions: []string{"Short mid-wicket", "Deep square leg", "Deep mid-wicket"},
			},
			DeathOvers: PhaseFielding{
				FieldSetting: "Defensive with boundary protection",
				KeyPositions: []string{"Long on", "Long off", "Deep mid-wicket"},
			},
		},
		KeyPositions: keyPositionsFor(plan),
		TacticalAdjustments: []string{
			"Adjust based on bowling type",
			"Move fielders based on player's scoring areas",
			"Use fielders to create pressure",
		},
		CommunicationPoints: []string{
			"Keep fielders alert for early wickets",
			"Communicate bowling changes clearly",
			"Maintain pressure through field placements",
		},
	}
}

// keyPositionsFor expands the plan's recommendations into fielding
// positions, keeping first occurrences only.
func keyPositionsFor(plan BowlingPlan) []string {
	if len(plan.Recommendations) == 0 {
		return []string{"Slip cordon", "Gully", "Short leg", "Deep mid-wicket"}
	}

	seen := make(map[string]bool)
	var positions []string
	for _, rec := range plan.Recommendations {
		for _, position := range fieldingPositions[rec.Style] {
			if seen[position] {
				continue
			}
			seen[position] = true
			positions = append(positions, position)
		}
	}
	return positions
}
