//
// Tencent is pleased to support the open source community by making TacticsMaster available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// TacticsMaster is licensed under the Apache License Version 2.0.
//
//

package tool

import "testing"

func TestKindNamesRoundTrip(t *testing.T) {
	for _, kind := range Kinds() {
		name := kind.String()
		got, ok := KindForName(name)
		if !ok {
			t.Fatalf("KindForName(%q) did not recognize a declared kind", name)
		}
		if got != kind {
			t.Errorf("KindForName(%q) = %v, want %v", name, got, kind)
		}
	}
}

func TestKindForNameRejectsUnknown(t *testing.T) {
	for _, name := range []string{"", "get_weather", "player_stats", "GET_PLAYER_STATS"} {
		if _, ok := KindForName(name); ok {
			t.Errorf("KindForName(%q) accepted a name outside the closed set", name)
		}
	}
}

func TestKindStringOutOfRange(t *testing.T) {
	if got := Kind(99).String(); got != "kind(99)" {
		t.Errorf("Kind(99).String() = %q", got)
	}
}

func TestKindsOrder(t *testing.T) {
	want := []string{
		NamePlayerStats,
		NameTeamSquad,
		NameMatchupData,
		NameVenueStats,
	}
	kinds := Kinds()
	if len(kinds) != len(want) {
		t.Fatalf("Kinds() returned %d kinds, want %d", len(kinds), len(want))
	}
	for i, kind := range kinds {
		if kind.String() != want[i] {
			t.Errorf("Kinds()[%d] = %s, want %s", i, kind, want[i])
		}
	}
}
