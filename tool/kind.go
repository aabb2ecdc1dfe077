//
// Tencent is pleased to support the open source community by making TacticsMaster available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// TacticsMaster is licensed under the Apache License Version 2.0.
//
//

package tool

import "fmt"

// Kind identifies one of the cricket data tools the advisor can dispatch.
// The set is closed: tool names outside it are rejected during dispatch
// rather than routed to a default.
type Kind int

const (
	// KindPlayerStats retrieves batting and bowling statistics for a player.
	KindPlayerStats Kind = iota
	// KindTeamSquad retrieves squad composition and recent form for a team.
	KindTeamSquad
	// KindMatchupData retrieves head-to-head history between two teams.
	KindMatchupData
	// KindVenueStats retrieves pitch and scoring statistics for a venue.
	KindVenueStats
)

// Wire names of the tools as exposed to the model.
const (
	NamePlayerStats = "get_player_stats"
	NameTeamSquad   = "get_team_squad"
	NameMatchupData = "get_matchup_data"
	NameVenueStats  = "get_venue_stats"
)

var kindNames = [...]string{
	KindPlayerStats: NamePlayerStats,
	KindTeamSquad:   NameTeamSquad,
	KindMatchupData: NameMatchupData,
	KindVenueStats:  NameVenueStats,
}

// String returns the wire name of the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// KindForName maps a wire name back to its Kind. The boolean reports
// whether the name belongs to the closed set.
func KindForName(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), true
		}
	}
	return 0, false
}

// Kinds returns every kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, len(kindNames))
	for i := range kindNames {
		kinds[i] = Kind(i)
	}
	return kinds
}
