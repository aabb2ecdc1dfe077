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
	"time"
)

// Error type constants for ResponseError.Type field.
const (
	ErrorTypeAPIError  = "api_error"
	ErrorTypeFlowError = "flow_error"
)

// Object type constants for Response.Object field.
const (
	ObjectTypeError = "error"
	// ObjectTypeChatCompletion is the object type for chat completion events.
	ObjectTypeChatCompletion = "chat.completion"
)

// Choice represents a single completion choice.
type Choice struct {
	// Index is the index of the choice.
	Index int `json:"index"`

	// Message is the message content.
	Message Message `json:"message,omitempty"`

	// FinishReason is the reason the choice was finished.
	// "stop", "length", "content_filter", etc.
	FinishReason *string `json:"finish_reason,omitempty"`
}

// Usage represents token usage information.
type Usage struct {
	// PromptTokens is the number of tokens in the prompt.
	PromptTokens int `json:"prompt_tokens"`

	// CompletionTokens is the number of tokens in the completion.
	CompletionTokens int `json:"completion_tokens"`

	// TotalTokens is the total number of tokens in the response.
	TotalTokens int `json:"total_tokens"`
}

// Response is the response from the model.
//
// Error Handling Note:
// The Error field in this struct represents API-level errors that occur
// after successful communication with the model service. This is different
// from function-level errors returned by GenerateContent(), which indicate
// system-level failures that prevent communication entirely.
//
// Examples of Response.Error:
// - API rate limit exceeded
// - Content filtered by safety systems
// - Model-specific processing errors
//
// Examples of function-level errors:
// - Invalid request parameters
// - Network connectivity issues
// - Authentication failures
type Response struct {
	// ID is the unique identifier for this response.
	ID string `json:"id"`

	// Object describes the type of object returned (e.g., "chat.completion").
	Object string `json:"object"`

	// Created is the Unix timestamp when the response was created.
	Created int64 `json:"created"`

	// Model is the model used to generate the response.
	Model string `json:"model"`

	// Choices contains the completion choices.
	Choices []Choice `json:"choices"`

	// Usage contains token usage information.
	Usage *Usage `json:"usage,omitempty"`

	// SystemFingerprint is a unique identifier for the backend configuration.
	SystemFingerprint *string `json:"system_fingerprint,omitempty"`

	// Error contains API-level error information if the request failed.
	// This is nil for successful responses.
	// Note: This is different from function-level errors returned by GenerateContent().
	Error *ResponseError `json:"error,omitempty"`

	// Timestamp when this response was received.
	Timestamp time.Time `json:"timestamp"`

	// Done indicates if the llm flow should stop.
	Done bool `json:"done"`
}

// ResponseError represents an API-level error in the response.
type ResponseError struct {
	// Message is a human-readable error description.
	Message string `json:"message"`

	// Type is the error category, one of the ErrorType constants.
	Type string `json:"type"`

	// Param names the request parameter the error relates to, if any.
	Param string `json:"param,omitempty"`

	// Code is the provider-specific error code, if any.
	Code string `json:"code,omitempty"`
}

// Clone creates a deep copy of the response.
func (rsp *Response) Clone() *Response {
	if rsp == nil {
		return nil
	}
	clone := *rsp
	clone.Choices = make([]Choice, len(rsp.Choices))
	copy(clone.Choices, rsp.Choices)
	if rsp.Usage != nil {
		clone.Usage = &Usage{
			PromptTokens:     rsp.Usage.PromptTokens,
			CompletionTokens: rsp.Usage.CompletionTokens,
			TotalTokens:      rsp.Usage.TotalTokens,
		}
	}
	// Deep copy Error if present.
	if rsp.Error != nil {
		clone.Error = &ResponseError{
			Message: rsp.Error.Message,
			Type:    rsp.Error.Type,
			Param:   rsp.Error.Param,
			Code:    rsp.Error.Code,
		}
	}
	// Deep copy SystemFingerprint if present.
	if rsp.SystemFingerprint != nil {
		fp := *rsp.SystemFingerprint
		clone.SystemFingerprint = &fp
	}
	return &clone
}

// IsValidContent checks if the response has valid content for message generation.
func (rsp *Response) IsValidContent() bool {
	if rsp == nil {
		return false
	}
	if rsp.IsToolCallResponse() {
		return true
	}
	for _, choice := range rsp.Choices {
		if choice.Message.Content != "" {
			return true
		}
	}
	return false
}

// IsToolCallResponse checks if the response is related to tool calls.
func (rsp *Response) IsToolCallResponse() bool {
	return rsp != nil && len(rsp.Choices) > 0 && len(rsp.Choices[0].Message.ToolCalls) > 0
}
