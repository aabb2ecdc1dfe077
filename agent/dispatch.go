//
// Tencent is pleased to support the open source community by making TacticsMaster available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// TacticsMaster is licensed under the Apache License Version 2.0.
//
//

package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/Bahadurahmedkhan/TacticsMaster/log"
	"github.com/Bahadurahmedkhan/TacticsMaster/metrics"
	"github.com/Bahadurahmedkhan/TacticsMaster/model"
	"github.com/Bahadurahmedkhan/TacticsMaster/telemetry/trace"
	"github.com/Bahadurahmedkhan/TacticsMaster/tool"
)

// defaultMaxIterations bounds the dispatch loop. A run that has not
// produced a final answer after this many model turns is abandoned in
// favor of the keyword path.
const defaultMaxIterations = 10

// systemPrompt frames every model conversation.
const systemPrompt = `You are the Tactics Master, an expert cricket analyst AI that helps coaches make data-driven tactical decisions.

Your role is to:
1. Analyze cricket data (player stats, team info, match history)
2. Identify tactical patterns, weaknesses, and opportunities
3. Provide actionable insights and recommendations for coaches
4. Generate specific bowling and fielding plans

Available tools:
- get_player_stats: Fetch detailed player statistics and recent form
- get_team_squad: Get team squad information and player roles
- get_matchup_data: Retrieve head-to-head records and historical data
- get_venue_stats: Get venue-specific statistics and conditions

Always structure your analysis with:
- Key findings from the data
- Identified weaknesses or opportunities
- Specific tactical recommendations
- Fielding and bowling strategies

Be concise but comprehensive. Focus on actionable insights that coaches can implement immediately.`

// runModel drives the model-directed dispatch loop. The model sees the
// registry's declarations and decides which tools to call; each round of
// calls is executed sequentially and the results are appended to the
// conversation until the model answers in plain text. The returned error
// signals that the keyword path should take over.
func (a *Agent) runModel(ctx context.Context, query string, matchContext Context, set *workingSet) (string, error) {
	temperature := a.temperature
	request := &model.Request{
		Messages: []model.Message{
			model.NewSystemMessage(systemPrompt),
			model.NewUserMessage(userPrompt(query, matchContext)),
		},
		GenerationConfig: model.GenerationConfig{
			Temperature: &temperature,
		},
		Tools: a.registry.Tools(),
	}
	if a.maxTokens > 0 {
		maxTokens := a.maxTokens
		request.MaxTokens = &maxTokens
	}

	log.Debugf("dispatching query to %s model", a.provider)
	for iteration := 0; iteration < a.maxIterations; iteration++ {
		message, err := a.callModel(ctx, request)
		if err != nil {
			return "", err
		}
		if len(message.ToolCalls) == 0 {
			return message.Content, nil
		}

		request.Messages = append(request.Messages, message)
		for _, call := range message.ToolCalls {
			content, err := a.dispatchToolCall(ctx, call, set)
			if err != nil {
				return "", err
			}
			request.Messages = append(request.Messages, model.NewToolMessage(call.ID, content))
		}
	}
	return "", fmt.Errorf("no final answer after %d model iterations", a.maxIterations)
}

// callModel performs one model turn and returns the first choice.
func (a *Agent) callModel(ctx context.Context, request *model.Request) (model.Message, error) {
	ctx, span := trace.Tracer.Start(ctx, trace.SpanNameCallLLM)
	defer span.End()

	responses, err := a.model.GenerateContent(ctx, request)
	if err != nil {
		metrics.ModelCallsTotal.WithLabelValues(a.provider, "error").Inc()
		return model.Message{}, fmt.Errorf("model call failed: %w", err)
	}
	select {
	case response, ok := <-responses:
		if !ok {
			metrics.ModelCallsTotal.WithLabelValues(a.provider, "error").Inc()
			return model.Message{}, errors.New("model closed the stream without responding")
		}
		if response.Error != nil {
			metrics.ModelCallsTotal.WithLabelValues(a.provider, "error").Inc()
			return model.Message{}, fmt.Errorf("model error: %s", response.Error.Message)
		}
		if len(response.Choices) == 0 {
			metrics.ModelCallsTotal.WithLabelValues(a.provider, "error").Inc()
			return model.Message{}, errors.New("model returned no choices")
		}
		metrics.ModelCallsTotal.WithLabelValues(a.provider, "success").Inc()
		return response.Choices[0].Message, nil
	case <-ctx.Done():
		metrics.ModelCallsTotal.WithLabelValues(a.provider, "error").Inc()
		return model.Message{}, ctx.Err()
	}
}

// dispatchToolCall resolves and executes one tool call issued by the model.
// An unknown tool name or a rejected argument payload is a planning failure
// and aborts the model path.
func (a *Agent) dispatchToolCall(ctx context.Context, call model.ToolCall, set *workingSet) (string, error) {
	impl, ok := a.registry.Lookup(call.Function.Name)
	if !ok {
		return "", fmt.Errorf("model requested unknown tool %q", call.Function.Name)
	}
	result, content, err := a.invokeTool(ctx, call.Function.Name, impl, call.Function.Arguments)
	if err != nil {
		return "", err
	}
	set.record(result)
	return content, nil
}

// invokeTool executes one registry tool and serializes its record for the
// conversation transcript.
func (a *Agent) invokeTool(ctx context.Context, name string, impl tool.CallableTool, args []byte) (any, string, error) {
	ctx, span := trace.Tracer.Start(ctx, trace.SpanNamePrefixExecuteTool+"."+name)
	defer span.End()

	log.Debugf("executing tool %s with args: %s", name, string(args))
	metrics.ToolCallsTotal.WithLabelValues(name).Inc()
	result, err := impl.Call(ctx, args)
	if err != nil {
		return nil, "", fmt.Errorf("tool %s rejected the call: %w", name, err)
	}
	content, err := json.Marshal(result)
	if err != nil {
		return nil, "", fmt.Errorf("failed to marshal %s result: %w", name, err)
	}
	return result, string(content), nil
}

// userPrompt renders the coach's query plus any match framing supplied
// with it.
func userPrompt(query string, matchContext Context) string {
	if matchContext.Empty() {
		return query
	}
	var b strings.Builder
	b.WriteString(query)
	b.WriteString("\n\nMatch context:")
	if matchContext.Team != "" {
		fmt.Fprintf(&b, "\n- Team: %s", matchContext.Team)
	}
	if matchContext.Opponent != "" {
		fmt.Fprintf(&b, "\n- Opponent: %s", matchContext.Opponent)
	}
	if matchContext.Venue != "" {
		fmt.Fprintf(&b, "\n- Venue: %s", matchContext.Venue)
	}
	if matchContext.MatchType != "" {
		fmt.Fprintf(&b, "\n- Match type: %s", matchContext.MatchType)
	}
	return b.String()
}
