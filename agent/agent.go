//
// Tencent is pleased to support the open source community by making TacticsMaster available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// TacticsMaster is licensed under the Apache License Version 2.0.
//
//

// Package agent orchestrates tactical analysis requests. Each query is
// validated, handed to the configured language model which decides which
// cricket data tools to call, and the fetched records are folded through
// the tactical analyzer into the final response. When no model is
// configured, or the model path fails, a deterministic keyword planner
// answers instead, so the agent always produces a response.
package agent

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Bahadurahmedkhan/TacticsMaster/config"
	"github.com/Bahadurahmedkhan/TacticsMaster/format"
	"github.com/Bahadurahmedkhan/TacticsMaster/log"
	"github.com/Bahadurahmedkhan/TacticsMaster/metrics"
	"github.com/Bahadurahmedkhan/TacticsMaster/model"
	"github.com/Bahadurahmedkhan/TacticsMaster/tactics"
	"github.com/Bahadurahmedkhan/TacticsMaster/tool"
	"github.com/Bahadurahmedkhan/TacticsMaster/tool/cricket"
)

// Name is the agent's public display name.
const Name = "Tactics Master"

// Description summarizes what the agent does for discovery endpoints.
const Description = "AI-powered cricket tactical analysis agent"

// ErrEmptyQuery rejects requests whose query is empty or whitespace.
// No tool or model call is made for such requests.
var ErrEmptyQuery = errors.New("query cannot be empty")

// Outcome labels for the analysis request counter.
const (
	outcomeModel    = "model"
	outcomeFallback = "fallback"
	outcomeRejected = "rejected"
)

// Context carries the optional match framing supplied with a query. All
// fields may be empty; the keyword planner and the prompt renderer use
// whatever is present.
type Context struct {
	Team      string `json:"team,omitempty"`
	Opponent  string `json:"opponent,omitempty"`
	Venue     string `json:"venue,omitempty"`
	MatchType string `json:"matchType,omitempty"`
}

// Empty reports whether no framing was supplied.
func (c Context) Empty() bool {
	return c.Team == "" && c.Opponent == "" && c.Venue == "" && c.MatchType == ""
}

// Info describes the agent for the health and root endpoints.
type Info struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Description string `json:"description"`
}

// Agent answers tactical analysis queries. Construct with New; the zero
// value is not usable.
type Agent struct {
	model         model.Model
	registry      *tool.Registry
	analyzer      *tactics.Analyzer
	formatter     *format.Formatter
	provider      string
	modelSource   string
	version       string
	temperature   float64
	maxTokens     int
	maxIterations int
}

// Option configures an Agent.
type Option func(*Agent)

// WithModel sets the language model driving tool dispatch. A nil model
// leaves the agent in keyword-only mode.
func WithModel(m model.Model) Option {
	return func(a *Agent) {
		a.model = m
	}
}

// WithRegistry sets the tool registry the agent dispatches against.
func WithRegistry(registry *tool.Registry) Option {
	return func(a *Agent) {
		a.registry = registry
	}
}

// WithAnalyzer overrides the tactical analyzer.
func WithAnalyzer(analyzer *tactics.Analyzer) Option {
	return func(a *Agent) {
		a.analyzer = analyzer
	}
}

// WithFormatter overrides the response formatter.
func WithFormatter(formatter *format.Formatter) Option {
	return func(a *Agent) {
		a.formatter = formatter
	}
}

// WithMaxIterations bounds the model dispatch loop. Values below one are
// ignored.
func WithMaxIterations(n int) Option {
	return func(a *Agent) {
		if n > 0 {
			a.maxIterations = n
		}
	}
}

// New creates an Agent from the application configuration. The registry is
// mandatory; the model is optional and its absence selects the keyword
// path for every request.
func New(cfg *config.Config, opts ...Option) (*Agent, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	a := &Agent{
		analyzer:      tactics.NewAnalyzer(),
		formatter:     format.NewFormatter(),
		provider:      cfg.Model.Provider,
		modelSource:   modelSourceLabel(cfg.Model.Provider),
		version:       cfg.Version,
		temperature:   cfg.Model.Temperature,
		maxTokens:     cfg.Model.MaxTokens,
		maxIterations: defaultMaxIterations,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.registry == nil {
		return nil, errors.New("tool registry is required")
	}
	return a, nil
}

// Info returns the agent's identity for discovery endpoints.
func (a *Agent) Info() Info {
	return Info{Name: Name, Version: a.version, Description: Description}
}

// ModelAvailable reports whether a language model is configured. The
// agent answers queries either way.
func (a *Agent) ModelAvailable() bool {
	return a.model != nil
}

// Analyze answers one tactical query. The model path is tried first when a
// model is configured; any model failure or unusable tool plan switches to
// the keyword path, so a non-empty query always yields a response.
func (a *Agent) Analyze(ctx context.Context, query string, matchContext Context) (*format.Response, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		metrics.AnalysisRequestsTotal.WithLabelValues(outcomeRejected).Inc()
		return nil, ErrEmptyQuery
	}
	started := time.Now()
	defer func() {
		metrics.AnalysisDuration.Observe(time.Since(started).Seconds())
	}()

	set := &workingSet{}
	if a.model != nil {
		narrative, err := a.runModel(ctx, query, matchContext, set)
		if err == nil {
			response := a.synthesize(query, matchContext, set, narrative, a.modelSource)
			metrics.AnalysisRequestsTotal.WithLabelValues(outcomeModel).Inc()
			return &response, nil
		}
		log.Warnf("model path failed, falling back to keyword analysis: %v", err)
	}

	response := a.analyzeKeywords(ctx, query, matchContext, set)
	metrics.AnalysisRequestsTotal.WithLabelValues(outcomeFallback).Inc()
	return &response, nil
}

// synthesize folds the fetched records through the tactical analyzer and
// renders the response. A non-empty narrative replaces the formatter's
// rendered summary so the model's own words survive when it produced any.
func (a *Agent) synthesize(query string, matchContext Context, set *workingSet, narrative string, extraSources ...string) format.Response {
	analysis := format.Analysis{}
	if set.player != nil {
		playerAnalysis := a.analyzer.AnalyzePlayer(set.player, set.venue)
		analysis.Player = &playerAnalysis
	}
	if set.team != nil {
		teamAnalysis := a.analyzer.AnalyzeTeam(set.team)
		analysis.Team = &teamAnalysis
	}
	if set.matchup != nil {
		matchupAnalysis := a.analyzer.AnalyzeMatchup(set.matchup, matchContext.Venue)
		analysis.Matchup = &matchupAnalysis
	}
	response := a.formatter.Format(query, analysis, format.MergeSources(set.sources(), extraSources))
	if narrative != "" {
		response.Response = narrative
	}
	return response
}

// modelSourceLabel names the model provider in the response sources.
func modelSourceLabel(provider string) string {
	switch provider {
	case config.ProviderOpenAI:
		return "OpenAI Analysis"
	case config.ProviderGemini:
		return "Gemini AI Analysis"
	default:
		return "AI Analysis"
	}
}

// workingSet accumulates the records fetched while answering one query.
// Source labels are kept in fetch order.
type workingSet struct {
	player  *cricket.PlayerStats
	team    *cricket.TeamSquad
	matchup *cricket.MatchupData
	venue   *cricket.VenueStats
	labels  []string
}

// record stores a fetched record in its slot. A later fetch of the same
// kind replaces the earlier one.
func (s *workingSet) record(result any) {
	switch record := result.(type) {
	case *cricket.PlayerStats:
		s.player = record
	case *cricket.TeamSquad:
		s.team = record
	case *cricket.MatchupData:
		s.matchup = record
	case *cricket.VenueStats:
		s.venue = record
	default:
		log.Warnf("discarding tool result of unexpected type %T", result)
		return
	}
	if sourced, ok := result.(cricket.Sourced); ok {
		s.labels = append(s.labels, sourced.DataSource())
	}
}

// has reports whether a record of the given kind was already fetched.
func (s *workingSet) has(kind tool.Kind) bool {
	switch kind {
	case tool.KindPlayerStats:
		return s.player != nil
	case tool.KindTeamSquad:
		return s.team != nil
	case tool.KindMatchupData:
		return s.matchup != nil
	case tool.KindVenueStats:
		return s.venue != nil
	default:
		return false
	}
}

// sources returns the data source labels in fetch order.
func (s *workingSet) sources() []string {
	return s.labels
}
