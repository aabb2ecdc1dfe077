//
// Tencent is pleased to support the open source community by making TacticsMaster available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// TacticsMaster is licensed under the Apache License Version 2.0.
//
//

// Package cricket provides the cricket data tools the advisor dispatches to:
// player statistics, team squads, head-to-head matchups and venue profiles.
//
// Every tool resolves to a fully populated record. When the live provider
// fails for any reason the record is substituted wholesale from a synthetic
// catalog; live and synthetic fields are never merged. The record's source
// label is the only signal distinguishing the two.
package cricket

// Source labels reported with every record.
const (
	// SourceCricAPI marks records fetched live from the data provider.
	SourceCricAPI = "CricAPI"
	// SourceMock marks records substituted from the synthetic catalog.
	SourceMock = "Mock Data"
)

// Sourced is implemented by every record so callers can report where the
// data came from without knowing the concrete type.
type Sourced interface {
	DataSource() string
}

// PlayerStats is the normalized record describing one player's recent output.
type PlayerStats struct {
	PlayerName    string             `json:"player_name"`
	Source        string             `json:"source"`
	RecentForm    RecentForm         `json:"recent_form"`
	Weaknesses    WeaknessSet        `json:"weaknesses"`
	Strengths     StrengthSet        `json:"strengths"`
	RecentMatches []MatchPerformance `json:"recent_matches"`
}

// DataSource implements Sourced.
func (p *PlayerStats) DataSource() string { return p.Source }

// RecentForm aggregates a player's output over the recent past.
type RecentForm struct {
	LastTenInnings []int   `json:"last_10_innings"`
	BattingAverage float64 `json:"batting_average"`
	StrikeRate     float64 `json:"strike_rate"`
	BowlingAverage float64 `json:"bowling_average"`
	EconomyRate    float64 `json:"economy_rate"`
}

// WeaknessSet captures the bowling styles and phases a player struggles
// against. Absent sections mean the provider reported nothing for them.
type WeaknessSet struct {
	AgainstSpin  *BowlingTypeRecord `json:"against_spin,omitempty"`
	EarlyInnings *EarlyInnings      `json:"early_innings,omitempty"`
}

// StrengthSet captures where a player scores freely.
type StrengthSet struct {
	DeathOvers  *DeathOvers        `json:"death_overs,omitempty"`
	AgainstPace *BowlingTypeRecord `json:"against_pace,omitempty"`
}

// BowlingTypeRecord is a player's record against one style of bowling.
type BowlingTypeRecord struct {
	Average       float64 `json:"average"`
	StrikeRate    float64 `json:"strike_rate"`
	DismissalRate float64 `json:"dismissal_rate,omitempty"`
}

// EarlyInnings is a player's record at the start of an innings.
type EarlyInnings struct {
	FirstTenBalls PhaseRecord `json:"first_10_balls"`
}

// DeathOvers is a player's record in the final overs.
type DeathOvers struct {
	Overs16To20 PhaseRecord `json:"overs_16_20"`
}

// PhaseRecord is a player's record within one phase of an innings.
type PhaseRecord struct {
	Average    float64 `json:"average"`
	StrikeRate float64 `json:"strike_rate"`
}

// MatchPerformance is one recent innings.
type MatchPerformance struct {
	Opponent   string  `json:"opponent"`
	Runs       int     `json:"runs"`
	Balls      int     `json:"balls"`
	StrikeRate float64 `json:"strike_rate"`
	Result     string  `json:"result"`
}

// TeamSquad is the normalized record describing a team's composition and form.
type TeamSquad struct {
	TeamName          string           `json:"team_name"`
	Source            string           `json:"source"`
	Squad             SquadComposition `json:"squad"`
	RecentPerformance TeamPerformance  `json:"recent_performance"`
	Strengths         []string         `json:"strengths"`
	Weaknesses        []string         `json:"weaknesses"`
	KeyPlayers        KeyPlayers       `json:"key_players"`
}

// DataSource implements Sourced.
func (t *TeamSquad) DataSource() string { return t.Source }

// SquadComposition groups the squad by role.
type SquadComposition struct {
	Batsmen     []string `json:"batsmen"`
	Bowlers     []string `json:"bowlers"`
	AllRounders []string `json:"all_rounders"`
}

// TeamPerformance summarizes recent team results.
type TeamPerformance struct {
	LastFiveMatches []string `json:"last_5_matches"`
	WinPercentage   float64  `json:"win_percentage"`
	FormRating      string   `json:"form_rating"`
}

// KeyPlayers names the players a tactical plan should account for.
type KeyPlayers struct {
	Captain     string `json:"captain"`
	ViceCaptain string `json:"vice_captain"`
	StarBowler  string `json:"star_bowler"`
	StarBatsman string `json:"star_batsman"`
}

// MatchupData is the normalized head-to-head record between two teams.
type MatchupData struct {
	Team1            string                 `json:"team1"`
	Team2            string                 `json:"team2"`
	Source           string                 `json:"source"`
	HeadToHead       HeadToHead             `json:"head_to_head"`
	RecentEncounters []Encounter            `json:"recent_encounters"`
	VenueAnalysis    map[string]VenueRecord `json:"venue_analysis"`
	KeyMatchups      []KeyMatchup           `json:"key_matchups"`
	KeyTrends        []string               `json:"key_trends"`
}

// DataSource implements Sourced.
func (m *MatchupData) DataSource() string { return m.Source }

// HeadToHead is the aggregate win/loss record, from team1's perspective.
type HeadToHead struct {
	TotalMatches  int     `json:"total_matches"`
	Team1Wins     int     `json:"team1_wins"`
	Team2Wins     int     `json:"team2_wins"`
	WinPercentage float64 `json:"win_percentage"`
}

// Encounter is one recent fixture between the two teams.
type Encounter struct {
	Date          string   `json:"date"`
	Venue         string   `json:"venue"`
	Result        string   `json:"result"`
	KeyPerformers []string `json:"key_performers"`
}

// VenueRecord is the two teams' record at one ground.
type VenueRecord struct {
	MatchesPlayed int    `json:"matches_played"`
	Team1Wins     int    `json:"team1_wins"`
	AverageScore  int    `json:"average_score"`
	PitchType     string `json:"pitch_type"`
}

// KeyMatchup summarizes one bowler-versus-batsman rivalry inside the fixture.
// LastEncounter is an ISO date (YYYY-MM-DD).
type KeyMatchup struct {
	Bowler        string `json:"bowler"`
	Batsman       string `json:"batsman"`
	Innings       int    `json:"innings"`
	Runs          int    `json:"runs"`
	Dismissals    int    `json:"dismissals"`
	LastEncounter string `json:"last_encounter"`
}

// VenueStats is the normalized record describing one ground.
type VenueStats struct {
	VenueName       string          `json:"venue_name"`
	Source          string          `json:"source"`
	PitchConditions PitchConditions `json:"pitch_conditions"`
	AverageScores   AverageScores   `json:"average_scores"`
	WeatherImpact   WeatherImpact   `json:"weather_impact"`
	VenueRecords    VenueRecords    `json:"venue_records"`
	HomeAdvantage   HomeAdvantage   `json:"home_advantage"`
}

// DataSource implements Sourced.
func (v *VenueStats) DataSource() string { return v.Source }

// PitchConditions describes how the surface plays.
type PitchConditions struct {
	Type         string `json:"type"`
	PaceFriendly bool   `json:"pace_friendly"`
	SpinFriendly bool   `json:"spin_friendly"`
	Bounce       string `json:"bounce"`
}

// AverageScores summarizes typical totals at the ground.
type AverageScores struct {
	FirstInnings  int     `json:"first_innings"`
	SecondInnings int     `json:"second_innings"`
	RunRate       float64 `json:"run_rate"`
}

// WeatherImpact describes conditions that influence selection.
type WeatherImpact struct {
	DewFactor      string `json:"dew_factor"`
	WindConditions string `json:"wind_conditions"`
	Temperature    string `json:"temperature"`
}

// VenueRecords lists ground records.
type VenueRecords struct {
	HighestTotal int     `json:"highest_total"`
	LowestTotal  int     `json:"lowest_total"`
	AverageOvers float64 `json:"average_overs"`
}

// HomeAdvantage describes how much the ground favors the home side.
type HomeAdvantage struct {
	HomeTeamWinPercentage float64 `json:"home_team_win_percentage"`
	TossAdvantage         string  `json:"toss_advantage"`
}
