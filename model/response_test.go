//
// Tencent is pleased to support the open source community by making TacticsMaster available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// TacticsMaster is licensed under the Apache License Version 2.0.
//
//

package model

import (
	"testing"
	"time"
)

func TestResponseClone(t *testing.T) {
	fingerprint := "fp_123"
	finishReason := "stop"
	original := &Response{
		ID:      "resp-1",
		Object:  ObjectTypeChatCompletion,
		Created: time.Now().Unix(),
		Model:   "gemini-1.5-flash",
		Choices: []Choice{
			{
				Index:        0,
				Message:      NewAssistantMessage("analysis complete"),
				FinishReason: &finishReason,
			},
		},
		Usage:             &Usage{PromptTokens: 120, CompletionTokens: 80, TotalTokens: 200},
		SystemFingerprint: &fingerprint,
		Error:             &ResponseError{Message: "rate limited", Type: ErrorTypeAPIError},
	}

	clone := original.Clone()
	if clone == original {
		t.Fatal("Clone returned the same pointer")
	}
	if clone.Usage == original.Usage || clone.Error == original.Error {
		t.Fatal("Clone shares nested pointers with the original")
	}
	if clone.SystemFingerprint == original.SystemFingerprint {
		t.Fatal("Clone shares SystemFingerprint pointer with the original")
	}

	clone.Usage.TotalTokens = 999
	if original.Usage.TotalTokens != 200 {
		t.Errorf("mutating a clone changed the original usage: %d", original.Usage.TotalTokens)
	}

	clone.Choices[0].Message.Content = "changed"
	if original.Choices[0].Message.Content != "analysis complete" {
		t.Errorf("mutating a clone changed the original choice")
	}
}

func TestResponseCloneNil(t *testing.T) {
	var rsp *Response
	if rsp.Clone() != nil {
		t.Error("Clone of nil response should be nil")
	}
}

func TestIsToolCallResponse(t *testing.T) {
	tests := []struct {
		name     string
		response *Response
		expected bool
	}{
		{
			name:     "nil response",
			response: nil,
			expected: false,
		},
		{
			name:     "no choices",
			response: &Response{},
			expected: false,
		},
		{
			name: "plain text choice",
			response: &Response{
				Choices: []Choice{{Message: NewAssistantMessage("hello")}},
			},
			expected: false,
		},
		{
			name: "tool call choice",
			response: &Response{
				Choices: []Choice{{
					Message: Message{
						Role: RoleAssistant,
						ToolCalls: []ToolCall{{
							Type:     "function",
							ID:       "call_1",
							Function: FunctionDefinitionParam{Name: "get_player_stats"},
						}},
					},
				}},
			},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.response.IsToolCallResponse(); got != tt.expected {
				t.Errorf("IsToolCallResponse() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestIsValidContent(t *testing.T) {
	empty := &Response{Choices: []Choice{{Message: Message{Role: RoleAssistant}}}}
	if empty.IsValidContent() {
		t.Error("empty message should not be valid content")
	}

	withText := &Response{Choices: []Choice{{Message: NewAssistantMessage("hi")}}}
	if !withText.IsValidContent() {
		t.Error("text message should be valid content")
	}
}
