//
// Tencent is pleased to support the open source community by making TacticsMaster available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// TacticsMaster is licensed under the Apache License Version 2.0.
//
//

// Package tactics implements the analytical core of the tactics advisor:
// pure, stateless helpers that turn cricket records into assessments,
// bowling plans, fielding plans and matchup picks.
//
// Every helper is deterministic. Identical inputs always produce identical
// outputs, there is no I/O and no hidden state, which keeps the package
// trivially testable. The numeric cut-offs behind the heuristics are
// hand-tuned values carried in Thresholds rather than derived statistics;
// callers that want different tuning inject their own via WithThresholds.
package tactics

// Thresholds holds the tuning constants behind the heuristic helpers.
// The zero value is not usable; start from DefaultThresholds.
type Thresholds struct {
	// Batting form tiers.
	ExcellentAverage    float64
	ExcellentStrikeRate float64
	GoodAverage         float64
	GoodStrikeRate      float64
	ModerateAverage     float64

	// Weakness heuristics.
	SpinVulnerableAverage float64
	SlowStartAverage      float64
	LowStrikeRate         float64
	DeathOversStrikeRate  float64

	// Team form tiers, in win percentage.
	StrongTeamWinPct      float64
	CompetitiveTeamWinPct float64

	// Head-to-head recommendation cut points, in win percentage.
	DominantWinPct float64
	WeakWinPct     float64

	// Recent-encounter trend shares.
	TrendStrongShare float64
	TrendWeakShare   float64

	// MatchupSampleSize is the innings count at which a matchup pick
	// reaches full confidence.
	MatchupSampleSize int
}

// DefaultThresholds returns the stock tuning used in production.
func DefaultThresholds() Thresholds {
	return Thresholds{
		ExcellentAverage:    50,
		ExcellentStrikeRate: 120,
		GoodAverage:         40,
		GoodStrikeRate:      110,
		ModerateAverage:     30,

		SpinVulnerableAverage: 30,
		SlowStartAverage:      20,
		LowStrikeRate:         100,
		DeathOversStrikeRate:  140,

		StrongTeamWinPct:      70,
		CompetitiveTeamWinPct: 50,

		DominantWinPct: 60,
		WeakWinPct:     40,

		TrendStrongShare: 0.7,
		TrendWeakShare:   0.3,

		MatchupSampleSize: 20,
	}
}

// Analyzer evaluates cricket records against a fixed set of thresholds.
// An Analyzer is immutable after construction and safe for concurrent use.
type Analyzer struct {
	thresholds Thresholds
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithThresholds replaces the default tuning constants.
func WithThresholds(t Thresholds) Option {
	return func(a *Analyzer) {
		a.thresholds = t
	}
}

// NewAnalyzer creates an Analyzer with the provided options.
func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{thresholds: DefaultThresholds()}
	for _, opt := range opts {
		opt(a)
	}
	return a
}
