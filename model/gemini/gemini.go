//
// Tencent is pleased to support the open source community by making TacticsMaster available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// TacticsMaster is licensed under the Apache License Version 2.0.
//
//

// Package gemini provides the Gemini-backed implementation of the model
// interface via the Google GenAI SDK.
package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/Bahadurahmedkhan/TacticsMaster/log"
	"github.com/Bahadurahmedkhan/TacticsMaster/model"
	"github.com/Bahadurahmedkhan/TacticsMaster/tool"
)

const (
	// DefaultModel is the default Gemini generation model.
	DefaultModel = "gemini-1.5-flash"

	// GoogleAPIKeyEnv is the environment variable name for the Google API key.
	GoogleAPIKeyEnv = "GOOGLE_API_KEY"

	// defaultChannelBufferSize is the default response channel buffer size.
	defaultChannelBufferSize = 256
)

// Model implements model.Model using the Gemini generate-content API.
type Model struct {
	client            *genai.Client
	name              string
	channelBufferSize int
	apiKey            string
	clientConfig      *genai.ClientConfig
}

// Option represents a functional option for configuring the Model.
type Option func(*Model)

// WithAPIKey sets the Google API key.
// If not provided, the GOOGLE_API_KEY environment variable is used.
func WithAPIKey(apiKey string) Option {
	return func(m *Model) {
		m.apiKey = apiKey
	}
}

// WithChannelBufferSize sets the response channel buffer size.
func WithChannelBufferSize(size int) Option {
	return func(m *Model) {
		if size > 0 {
			m.channelBufferSize = size
		}
	}
}

// WithClientConfig sets additional options for the GenAI client.
func WithClientConfig(cfg *genai.ClientConfig) Option {
	return func(m *Model) {
		c := *cfg
		m.clientConfig = &c
	}
}

// New creates a Gemini-backed model with the given name and options.
func New(ctx context.Context, name string, opts ...Option) (*Model, error) {
	if name == "" {
		name = DefaultModel
	}
	m := &Model{
		name:              strings.TrimPrefix(name, "models/"),
		channelBufferSize: defaultChannelBufferSize,
		apiKey:            os.Getenv(GoogleAPIKeyEnv),
		clientConfig:      &genai.ClientConfig{},
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.clientConfig.APIKey == "" {
		m.clientConfig.APIKey = m.apiKey
	}
	if m.clientConfig.APIKey == "" {
		return nil, fmt.Errorf("%s is not provided", GoogleAPIKeyEnv)
	}

	client, err := genai.NewClient(ctx, m.clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	m.client = client
	return m, nil
}

// Info implements the model.Model interface.
func (m *Model) Info() model.Info {
	return model.Info{Name: m.name}
}

// GenerateContent implements the model.Model interface. The request is
// executed without streaming: exactly one response lands on the returned
// channel before it closes.
func (m *Model) GenerateContent(
	ctx context.Context,
	request *model.Request,
) (<-chan *model.Response, error) {
	if request == nil {
		return nil, errors.New("request cannot be nil")
	}

	contents, config := convertRequest(request)

	responseChan := make(chan *model.Response, m.channelBufferSize)
	go func() {
		defer close(responseChan)

		result, err := m.client.Models.GenerateContent(ctx, m.name, contents, config)
		var response *model.Response
		if err != nil {
			response = &model.Response{
				Error: &model.ResponseError{
					Message: err.Error(),
					Type:    model.ErrorTypeAPIError,
				},
				Timestamp: time.Now(),
				Done:      true,
			}
		} else {
			response = convertResponse(m.name, result)
		}

		select {
		case responseChan <- response:
		case <-ctx.Done():
		}
	}()
	return responseChan, nil
}

// convertRequest maps our request format onto GenAI contents and config.
func convertRequest(request *model.Request) ([]*genai.Content, *genai.GenerateContentConfig) {
	config := &genai.GenerateContentConfig{}

	if request.Temperature != nil {
		t := float32(*request.Temperature)
		config.Temperature = &t
	}
	if request.TopP != nil {
		p := float32(*request.TopP)
		config.TopP = &p
	}
	if request.MaxTokens != nil {
		config.MaxOutputTokens = int32(*request.MaxTokens)
	}
	if len(request.Stop) > 0 {
		config.StopSequences = request.Stop
	}
	if declarations := convertTools(request.Tools); len(declarations) > 0 {
		config.Tools = []*genai.Tool{{FunctionDeclarations: declarations}}
	}

	// Gemini addresses function responses by name, not call ID, so track
	// the name behind every tool call issued so far.
	callNames := make(map[string]string)

	var contents []*genai.Content
	for _, msg := range request.Messages {
		switch msg.Role {
		case model.RoleSystem:
			config.SystemInstruction = genai.NewContentFromText(msg.Content, genai.RoleUser)
		case model.RoleAssistant:
			var parts []*genai.Part
			if msg.Content != "" {
				parts = append(parts, genai.NewPartFromText(msg.Content))
			}
			for _, call := range msg.ToolCalls {
				callNames[call.ID] = call.Function.Name
				parts = append(parts, genai.NewPartFromFunctionCall(
					call.Function.Name, decodeArgs(call.Function.Arguments)))
			}
			if len(parts) > 0 {
				contents = append(contents, genai.NewContentFromParts(parts, genai.RoleModel))
			}
		case model.RoleTool:
			name := callNames[msg.ToolID]
			if name == "" {
				log.Warnf("dropping tool response with unknown call id %q", msg.ToolID)
				continue
			}
			part := genai.NewPartFromFunctionResponse(name, decodeResult(msg.Content))
			contents = append(contents, genai.NewContentFromParts([]*genai.Part{part}, genai.RoleUser))
		default:
			contents = append(contents, genai.NewContentFromText(msg.Content, genai.RoleUser))
		}
	}
	return contents, config
}

// decodeArgs parses json-encoded tool call arguments. Malformed payloads
// degrade to an empty argument map.
func decodeArgs(raw []byte) map[string]any {
	args := make(map[string]any)
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &args); err != nil {
			log.Warnf("failed to decode tool call arguments: %v", err)
		}
	}
	return args
}

// decodeResult parses a tool result into the object form the API expects,
// wrapping non-object payloads under a "result" key.
func decodeResult(content string) map[string]any {
	result := make(map[string]any)
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		return map[string]any{"result": content}
	}
	return result
}

// convertTools maps tool declarations to GenAI function declarations.
func convertTools(tools map[string]tool.Tool) []*genai.FunctionDeclaration {
	var declarations []*genai.FunctionDeclaration
	for _, t := range tools {
		declaration := t.Declaration()
		declarations = append(declarations, &genai.FunctionDeclaration{
			Name:        declaration.Name,
			Description: declaration.Description,
			Parameters:  convertSchema(declaration.InputSchema),
		})
	}
	return declarations
}

// convertSchema recursively maps our schema onto the GenAI schema type.
func convertSchema(schema *tool.Schema) *genai.Schema {
	if schema == nil {
		return nil
	}
	converted := &genai.Schema{
		Description: schema.Description,
		Required:    schema.Required,
		Type:        convertSchemaType(schema.Type),
		Items:       convertSchema(schema.Items),
	}
	if len(schema.Properties) > 0 {
		converted.Properties = make(map[string]*genai.Schema, len(schema.Properties))
		for name, property := range schema.Properties {
			converted.Properties[name] = convertSchema(property)
		}
	}
	return converted
}

func convertSchemaType(schemaType string) genai.Type {
	switch schemaType {
	case "object":
		return genai.TypeObject
	case "array":
		return genai.TypeArray
	case "string":
		return genai.TypeString
	case "number":
		return genai.TypeNumber
	case "integer":
		return genai.TypeInteger
	case "boolean":
		return genai.TypeBoolean
	default:
		return genai.TypeUnspecified
	}
}

// convertResponse maps a GenAI result back onto our response format.
func convertResponse(name string, result *genai.GenerateContentResponse) *model.Response {
	response := &model.Response{
		Object:    model.ObjectTypeChatCompletion,
		Model:     name,
		Timestamp: time.Now(),
		Done:      true,
	}

	for i, candidate := range result.Candidates {
		if candidate.Content == nil {
			continue
		}
		message := model.Message{Role: model.RoleAssistant}
		var text strings.Builder
		for _, part := range candidate.Content.Parts {
			if part.Text != "" {
				text.WriteString(part.Text)
			}
			if fc := part.FunctionCall; fc != nil {
				id := fc.ID
				if id == "" {
					id = fmt.Sprintf("gemini-call-%d", len(message.ToolCalls))
				}
				args, err := json.Marshal(fc.Args)
				if err != nil {
					log.Warnf("failed to encode function call arguments for %s: %v", fc.Name, err)
					args = []byte("{}")
				}
				message.ToolCalls = append(message.ToolCalls, model.ToolCall{
					ID:   id,
					Type: "function",
					Function: model.FunctionDefinitionParam{
						Name:      fc.Name,
						Arguments: args,
					},
				})
			}
		}
		message.Content = text.String()

		choice := model.Choice{Index: i, Message: message}
		if candidate.FinishReason != "" {
			finishReason := string(candidate.FinishReason)
			choice.FinishReason = &finishReason
		}
		response.Choices = append(response.Choices, choice)
	}

	if usage := result.UsageMetadata; usage != nil {
		response.Usage = &model.Usage{
			PromptTokens:     int(usage.PromptTokenCount),
			CompletionTokens: int(usage.CandidatesTokenCount),
			TotalTokens:      int(usage.TotalTokenCount),
		}
	}
	return response
}
