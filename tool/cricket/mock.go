//
// Tencent is pleased to support the open source community by making TacticsMaster available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// TacticsMaster is licensed under the Apache License Version 2.0.
//
//

package cricket

import "fmt"

// The synthetic catalog below stands in for the live provider whenever a
// lookup fails. Records are deterministic for a given subject so analyses
// stay reproducible, and every record is fully populated.

// MockPlayerStats returns the synthetic record for a player.
func MockPlayerStats(playerName string) *PlayerStats {
	return &PlayerStats{
		PlayerName: playerName,
		Source:     SourceMock,
		RecentForm: RecentForm{
			LastTenInnings: []int{45, 67, 23, 89, 12, 78, 34, 56, 91, 43},
			BattingAverage: 54.8,
			StrikeRate:     125.6,
			BowlingAverage: 28.4,
			EconomyRate:    5.2,
		},
		Weaknesses: WeaknessSet{
			AgainstSpin: &BowlingTypeRecord{
				Average:       28.4,
				StrikeRate:    95.2,
				DismissalRate: 0.15,
			},
			EarlyInnings: &EarlyInnings{
				FirstTenBalls: PhaseRecord{
					Average:    18.7,
					StrikeRate: 78.3,
				},
			},
		},
		Strengths: StrengthSet{
			DeathOvers: &DeathOvers{
				Overs16To20: PhaseRecord{
					Average:    42.3,
					StrikeRate: 145.8,
				},
			},
			AgainstPace: &BowlingTypeRecord{
				Average:    48.9,
				StrikeRate: 132.1,
			},
		},
		RecentMatches: []MatchPerformance{
			{Opponent: "Australia", Runs: 89, Balls: 67, StrikeRate: 132.8, Result: "Won"},
			{Opponent: "England", Runs: 34, Balls: 28, StrikeRate: 121.4, Result: "Lost"},
		},
	}
}

// MockTeamSquad returns the synthetic record for a team.
func MockTeamSquad(teamName string) *TeamSquad {
	return &TeamSquad{
		TeamName: teamName,
		Source:   SourceMock,
		Squad: SquadComposition{
			Batsmen:     []string{"Rohit Sharma", "Virat Kohli", "KL Rahul", "Suryakumar Yadav"},
			Bowlers:     []string{"Jasprit Bumrah", "Mohammed Shami", "Ravindra Jadeja", "Kuldeep Yadav"},
			AllRounders: []string{"Hardik Pandya", "Ravindra Jadeja", "Axar Patel"},
		},
		RecentPerformance: TeamPerformance{
			LastFiveMatches: []string{"W", "L", "W", "W", "L"},
			WinPercentage:   60,
			FormRating:      "Good",
		},
		Strengths: []string{
			"Strong batting lineup",
			"Quality spin bowling",
			"Good fielding unit",
			"Experienced leadership",
		},
		Weaknesses: []string{
			"Inconsistent middle order",
			"Death bowling concerns",
			"Over-reliance on top order",
		},
		KeyPlayers: KeyPlayers{
			Captain:     "Rohit Sharma",
			ViceCaptain: "KL Rahul",
			StarBowler:  "Jasprit Bumrah",
			StarBatsman: "Virat Kohli",
		},
	}
}

// MockMatchupData returns the synthetic head-to-head record between two teams.
func MockMatchupData(team1, team2 string) *MatchupData {
	return &MatchupData{
		Team1:  team1,
		Team2:  team2,
		Source: SourceMock,
		HeadToHead: HeadToHead{
			TotalMatches:  45,
			Team1Wins:     28,
			Team2Wins:     17,
			WinPercentage: 62.2,
		},
		RecentEncounters: []Encounter{
			{
				Date:          "2023-11-19",
				Venue:         "Narendra Modi Stadium",
				Result:        fmt.Sprintf("%s won by 6 wickets", team1),
				KeyPerformers: []string{"Virat Kohli: 89*", "Jasprit Bumrah: 3/18"},
			},
			{
				Date:          "2023-10-08",
				Venue:         "Melbourne Cricket Ground",
				Result:        fmt.Sprintf("%s won by 4 wickets", team2),
				KeyPerformers: []string{"Opponent Captain: 78", "Opponent Bowler: 4/25"},
			},
		},
		VenueAnalysis: map[string]VenueRecord{
			"narendra_modi_stadium": {
				MatchesPlayed: 8,
				Team1Wins:     6,
				AverageScore:  285,
				PitchType:     "Batting friendly",
			},
		},
		KeyMatchups: []KeyMatchup{
			{Bowler: "Jasprit Bumrah", Batsman: "Steve Smith", Innings: 12, Runs: 118, Dismissals: 5, LastEncounter: "2023-11-19"},
			{Bowler: "Ravindra Jadeja", Batsman: "Steve Smith", Innings: 10, Runs: 84, Dismissals: 4, LastEncounter: "2023-10-08"},
			{Bowler: "Kuldeep Yadav", Batsman: "Marnus Labuschagne", Innings: 8, Runs: 92, Dismissals: 2, LastEncounter: "2023-03-12"},
		},
		KeyTrends: []string{
			fmt.Sprintf("Strong recent form for %s", team1),
			fmt.Sprintf("%s struggles in subcontinent conditions", team2),
			"Close contests in recent matches",
		},
	}
}

// MockVenueStats returns the synthetic record for a ground.
func MockVenueStats(venueName string) *VenueStats {
	return &VenueStats{
		VenueName: venueName,
		Source:    SourceMock,
		PitchConditions: PitchConditions{
			Type:         "Batting friendly",
			PaceFriendly: true,
			SpinFriendly: false,
			Bounce:       "Medium",
		},
		AverageScores: AverageScores{
			FirstInnings:  285,
			SecondInnings: 245,
			RunRate:       5.8,
		},
		WeatherImpact: WeatherImpact{
			DewFactor:      "High",
			WindConditions: "Moderate",
			Temperature:    "25-30°C",
		},
		VenueRecords: VenueRecords{
			HighestTotal: 398,
			LowestTotal:  78,
			AverageOvers: 48.5,
		},
		HomeAdvantage: HomeAdvantage{
			HomeTeamWinPercentage: 65,
			TossAdvantage:         "Bat first",
		},
	}
}
