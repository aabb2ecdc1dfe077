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
	"reflect"
	"testing"

	"github.com/Bahadurahmedkhan/TacticsMaster/tool/cricket"
)

func paceFriendlyVenue() *cricket.VenueStats {
	return &cricket.VenueStats{
		VenueName: "Melbourne Cricket Ground",
		PitchConditions: cricket.PitchConditions{
			Type:         "Batting friendly",
			PaceFriendly: true,
		},
	}
}

func spinFriendlyVenue() *cricket.VenueStats {
	return &cricket.VenueStats{
		VenueName: "Eden Gardens",
		PitchConditions: cricket.PitchConditions{
			Type:         "Spin friendly",
			SpinFriendly: true,
		},
	}
}

func TestBowlingPlanDeterministic(t *testing.T) {
	analyzer := NewAnalyzer()
	weaknesses := []string{
		"Vulnerable against spin bowling (avg: 28.4)",
		"Slow starter - target early in innings",
	}
	venue := paceFriendlyVenue()

	first := analyzer.BowlingPlan(weaknesses, venue)
	second := analyzer.BowlingPlan(weaknesses, venue)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("identical inputs produced different plans:\n%+v\n%+v", first, second)
	}
}

func TestBowlingPlanStyleLookup(t *testing.T) {
	analyzer := NewAnalyzer()

	tests := []struct {
		weakness string
		style    string
	}{
		{"Vulnerable against spin bowling (avg: 28.4)", StyleSpin},
		{"Slow starter - target early in innings", StylePace},
		{"Vulnerable against pace bowling (low strike rate)", StylePace},
		{"Struggles under pressure", StyleVariations},
	}
	for _, tt := range tests {
		plan := analyzer.BowlingPlan([]string{tt.weakness}, nil)
		if len(plan.Recommendations) != 1 {
			t.Fatalf("weakness %q: got %d recommendations, want 1", tt.weakness, len(plan.Recommendations))
		}
		rec := plan.Recommendations[0]
		if rec.Style != tt.style {
			t.Errorf("weakness %q: style = %q, want %q", tt.weakness, rec.Style, tt.style)
		}
		if rec.Weakness != tt.weakness {
			t.Errorf("weakness %q: recommendation lost its weakness reference", tt.weakness)
		}
		if rec.Approach == "" {
			t.Errorf("weakness %q: empty approach", tt.weakness)
		}
	}
}

func TestBowlingPlanVenueOrdering(t *testing.T) {
	analyzer := NewAnalyzer()
	weaknesses := []string{
		"Vulnerable against spin bowling (avg: 28.4)",
		"Slow starter - target early in innings",
	}

	tests := []struct {
		name  string
		venue *cricket.VenueStats
		want  []string
	}{
		{"no venue keeps table order", nil, []string{StyleSpin, StylePace}},
		{"pace friendly promotes pace", paceFriendlyVenue(), []string{StylePace, StyleSpin}},
		{"spin friendly keeps spin first", spinFriendlyVenue(), []string{StyleSpin, StylePace}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := analyzer.BowlingPlan(weaknesses, tt.venue)
			var styles []string
			for _, rec := range plan.Recommendations {
				styles = append(styles, rec.Style)
			}
			if !reflect.DeepEqual(styles, tt.want) {
				t.Errorf("styles = %v, want %v", styles, tt.want)
			}
		})
	}
}

func TestBowlingPlanVenueOrderingIsStable(t *testing.T) {
	analyzer := NewAnalyzer()
	weaknesses := []string{
		"Vulnerable against spin bowling (avg: 28.4)",
		"Slow starter - target early in innings",
		"Vulnerable against pace bowling (low strike rate)",
	}

	plan := analyzer.BowlingPlan(weaknesses, paceFriendlyVenue())

	var paceWeaknesses []string
	for _, rec := range plan.Recommendations {
		if rec.Style == StylePace {
			paceWeaknesses = append(paceWeaknesses, rec.Weakness)
		}
	}
	want := []string{
		"Slow starter - target early in innings",
		"Vulnerable against pace bowling (low strike rate)",
	}
	if !reflect.DeepEqual(paceWeaknesses, want) {
		t.Errorf("pace group order = %v, want %v", paceWeaknesses, want)
	}
	if plan.Recommendations[len(plan.Recommendations)-1].Style != StyleSpin {
		t.Errorf("spin recommendation should trail on a pace-friendly pitch")
	}
}

func TestBowlingPlanPhaseTables(t *testing.T) {
	analyzer := NewAnalyzer()
	plan := analyzer.BowlingPlan(nil, nil)

	if plan.OverallStrategy == "" {
		t.Fatal("empty overall strategy")
	}
	if plan.PhasePlans.Powerplay.Strategy != "Attack with pace bowling" {
		t.Errorf("powerplay strategy = %q", plan.PhasePlans.Powerplay.Strategy)
	}
	if plan.PhasePlans.MiddleOvers.Strategy != "Use spin bowling to build pressure" {
		t.Errorf("middle overs strategy = %q", plan.PhasePlans.MiddleOvers.Strategy)
	}
	if plan.PhasePlans.DeathOvers.Strategy != "Avoid if possible - use variations" {
		t.Errorf("death overs strategy = %q", plan.PhasePlans.DeathOvers.Strategy)
	}
	if len(plan.FieldPlacements.Powerplay) == 0 || len(plan.BowlerAssignments.DeathOvers) == 0 {
		t.Error("phase tables incomplete")
	}
	if len(plan.TacticalVariations) != 3 {
		t.Errorf("got %d tactical variations, want 3", len(plan.TacticalVariations))
	}
}

func TestFieldingPlanDeterministic(t *testing.T) {
	analyzer := NewAnalyzer()
	plan := analyzer.BowlingPlan([]string{"Vulnerable against spin bowling (avg: 28.4)"}, nil)

	first := analyzer.FieldingPlan(plan)
	second := analyzer.FieldingPlan(plan)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("identical plans produced different fielding setups")
	}
}

func TestFieldingPlanKeyPositionsFollowStyles(t *testing.T) {
	analyzer := NewAnalyzer()

	spinOnly := analyzer.BowlingPlan([]string{"Vulnerable against spin bowling (avg: 28.4)"}, nil)
	fielding := analyzer.FieldingPlan(spinOnly)
	want := []string{"Short mid-wicket", "Deep square leg", "Deep mid-wicket"}
	if !reflect.DeepEqual(fielding.KeyPositions, want) {
		t.Errorf("spin positions = %v, want %v", fielding.KeyPositions, want)
	}

	mixed := analyzer.BowlingPlan([]string{
		"Slow starter - target early in innings",
		"Vulnerable against spin bowling (avg: 28.4)",
	}, nil)
	fielding = analyzer.FieldingPlan(mixed)
	want = []string{
		"Short mid-wicket", "Deep square leg", "Deep mid-wicket",
		"Slip cordon", "Gully", "Short leg",
	}
	if !reflect.DeepEqual(fielding.KeyPositions, want) {
		t.Errorf("mixed positions = %v, want %v", fielding.KeyPositions, want)
	}
}

func TestFieldingPlanDeduplicatesPositions(t *testing.T) {
	analyzer := NewAnalyzer()
	plan := analyzer.BowlingPlan([]string{
		"Vulnerable against spin bowling (avg: 28.4)",
		"Vulnerable against spin bowling (low average)",
	}, nil)

	fielding := analyzer.FieldingPlan(plan)
	seen := make(map[string]bool)
	for _, position := range fielding.KeyPositions {
		if seen[position] {
			t.Errorf("position %q listed twice", position)
		}
		seen[position] = true
	}
}

func TestFieldingPlanDefaultPositions(t *testing.T) {
	analyzer := NewAnalyzer()
	fielding := analyzer.FieldingPlan(analyzer.BowlingPlan(nil, nil))

	want := []string{"Slip cordon", "Gully", "Short leg", "Deep mid-wicket"}
	if !reflect.DeepEqual(fielding.KeyPositions, want) {
		t.Errorf("default positions = %v, want %v", fielding.KeyPositions, want)
	}
}
