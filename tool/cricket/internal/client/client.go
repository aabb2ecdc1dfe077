//
// Tencent is pleased to support the open source community by making TacticsMaster available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// TacticsMaster is licensed under the Apache License Version 2.0.
//
//

// Package client provides an HTTP client for the CricAPI cricket data service.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Client provides methods to interact with the CricAPI REST endpoints.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// New creates a new CricAPI client with the provided configuration.
func New(baseURL, apiKey string, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

// Envelope is the common response wrapper CricAPI returns around every
// payload. Data holds the entity records and stays raw until the caller
// decodes it into the expected shape.
type Envelope struct {
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data"`
}

// Get performs a single GET against the given endpoint and decodes the
// records in the response envelope into out (a pointer to a slice).
// CricAPI reports errors both through HTTP status codes and through the
// envelope's status field; either form is surfaced as an error.
func (c *Client) Get(ctx context.Context, endpoint string, query url.Values, out any) error {
	if c.apiKey == "" {
		return fmt.Errorf("no API key configured")
	}

	params := url.Values{}
	for key, values := range query {
		for _, value := range values {
			params.Add(key, value)
		}
	}
	params.Set("apikey", c.apiKey)

	reqURL := fmt.Sprintf("%s/%s?%s", c.baseURL, strings.TrimLeft(endpoint, "/"), params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to perform request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	var envelope Envelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	if envelope.Status != "success" {
		return fmt.Errorf("API returned status %q", envelope.Status)
	}
	if len(envelope.Data) == 0 {
		return fmt.Errorf("API returned no data")
	}

	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("failed to parse response data: %w", err)
	}
	return nil
}
