//
// Tencent is pleased to support the open source community by making TacticsMaster available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// TacticsMaster is licensed under the Apache License Version 2.0.
//
//

package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"
	"github.com/xeipuuv/gojsonschema"

	"github.com/Bahadurahmedkhan/TacticsMaster/agent"
	"github.com/Bahadurahmedkhan/TacticsMaster/format"
	"github.com/Bahadurahmedkhan/TacticsMaster/log"
)

// Report output formats.
const (
	ReportMarkdown = "markdown"
	ReportHTML     = "html"
	ReportPDF      = "pdf"
)

// analyzeRequest is the body of POST /analyze.
type analyzeRequest struct {
	Query   string        `json:"query"`
	Context agent.Context `json:"context"`
}

// batchRequest is the body of POST /analyze/batch. Parallel defaults to
// true when omitted.
type batchRequest struct {
	Queries  []analyzeRequest `json:"queries"`
	BatchID  string           `json:"batch_id,omitempty"`
	Parallel *bool            `json:"parallel,omitempty"`
}

// batchItemResult is one entry of a batch response. Exactly one of
// Response and Error is set.
type batchItemResult struct {
	Query    string           `json:"query"`
	Response *format.Response `json:"response,omitempty"`
	Error    string           `json:"error,omitempty"`
}

// batchResponse is the body of a successful batch analysis.
type batchResponse struct {
	Success             bool              `json:"success"`
	BatchID             string            `json:"batch_id"`
	Results             []batchItemResult `json:"results"`
	TotalProcessingTime float64           `json:"total_processing_time"`
	Timestamp           string            `json:"timestamp"`
}

// reportRequest is the body of POST /report.
type reportRequest struct {
	Query   string        `json:"query"`
	Context agent.Context `json:"context"`
	Format  string        `json:"format,omitempty"`
}

// healthResponse is the body of GET /health.
type healthResponse struct {
	Status         string `json:"status"`
	AgentAvailable bool   `json:"agent_available"`
	Timestamp      string `json:"timestamp"`
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{
		"message": "Tactics Master Agent API is running",
		"version": s.cfg.Version,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := "healthy"
	if !s.agent.ModelAvailable() {
		status = "degraded"
	}
	s.writeJSON(w, healthResponse{
		Status:         status,
		AgentAvailable: s.agent.ModelAvailable(),
		Timestamp:      s.now().Format(time.RFC3339),
	})
}

func (s *Server) handleLiveness(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{
		"status":    "alive",
		"timestamp": s.now().Format(time.RFC3339),
	})
}

func (s *Server) handleReadiness(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{
		"status":    "ready",
		"timestamp": s.now().Format(time.RFC3339),
	})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{
		"name":    s.cfg.AppName,
		"version": s.cfg.Version,
	})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if !s.decodeBody(w, r, s.analyzeSchema, &req) {
		return
	}

	ctx, cancel := s.analysisContext(r.Context())
	defer cancel()

	response, err := s.agent.Analyze(ctx, req.Query, req.Context)
	if err != nil {
		s.writeAnalysisError(w, err)
		return
	}
	s.writeJSON(w, response)
}

func (s *Server) handleBatch(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	if !s.decodeBody(w, r, s.batchSchema, &req) {
		return
	}
	if max := s.cfg.Server.MaxBatchSize; max > 0 && len(req.Queries) > max {
		writeError(w, http.StatusUnprocessableEntity,
			fmt.Sprintf("Maximum %d queries allowed per batch", max))
		return
	}

	batchID := req.BatchID
	if batchID == "" {
		batchID = uuid.NewString()
	}
	parallel := req.Parallel == nil || *req.Parallel

	ctx, cancel := s.analysisContext(r.Context())
	defer cancel()

	started := time.Now()
	results := s.runBatch(ctx, req.Queries, parallel)
	log.Infof("batch %s completed: %d queries in %s", batchID, len(results), time.Since(started).Round(time.Millisecond))

	s.writeJSON(w, batchResponse{
		Success:             true,
		BatchID:             batchID,
		Results:             results,
		TotalProcessingTime: time.Since(started).Seconds(),
		Timestamp:           s.now().Format(time.RFC3339),
	})
}

// runBatch answers every query in the batch. In parallel mode the items
// are spread over a worker pool; each result lands in its own slot so no
// locking is needed.
func (s *Server) runBatch(ctx context.Context, queries []analyzeRequest, parallel bool) []batchItemResult {
	results := make([]batchItemResult, len(queries))

	if parallel && len(queries) > 1 {
		pool, err := ants.NewPool(len(queries))
		if err == nil {
			defer pool.Release()
			var wg sync.WaitGroup
			for i, item := range queries {
				wg.Add(1)
				idx, query := i, item
				if err := pool.Submit(func() {
					defer wg.Done()
					results[idx] = s.runBatchItem(ctx, query)
				}); err != nil {
					wg.Done()
					results[idx] = batchItemResult{Query: query.Query, Error: "failed to schedule analysis"}
				}
			}
			wg.Wait()
			return results
		}
		log.Errorf("failed to create batch worker pool, processing sequentially: %v", err)
	}

	for i, item := range queries {
		results[i] = s.runBatchItem(ctx, item)
	}
	return results
}

func (s *Server) runBatchItem(ctx context.Context, item analyzeRequest) batchItemResult {
	response, err := s.agent.Analyze(ctx, item.Query, item.Context)
	if err != nil {
		return batchItemResult{Query: item.Query, Error: err.Error()}
	}
	return batchItemResult{Query: item.Query, Response: response}
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	var req reportRequest
	if !s.decodeBody(w, r, s.reportSchema, &req) {
		return
	}
	if req.Format == "" {
		req.Format = ReportMarkdown
	}

	ctx, cancel := s.analysisContext(r.Context())
	defer cancel()

	response, err := s.agent.Analyze(ctx, req.Query, req.Context)
	if err != nil {
		s.writeAnalysisError(w, err)
		return
	}

	switch req.Format {
	case ReportMarkdown:
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		_, _ = w.Write([]byte(response.Response))
	case ReportHTML:
		html, err := format.RenderHTML(response.Response)
		if err != nil {
			log.Errorf("HTML report rendering failed: %v", err)
			writeError(w, http.StatusInternalServerError, "Report rendering failed")
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(html))
	case ReportPDF:
		pdf, err := format.RenderPDF(response.Response)
		if err != nil {
			log.Errorf("PDF report rendering failed: %v", err)
			writeError(w, http.StatusInternalServerError, "Report rendering failed")
			return
		}
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename="tactics-report.pdf"`)
		_, _ = w.Write(pdf)
	default:
		writeError(w, http.StatusUnprocessableEntity,
			fmt.Sprintf("Unsupported report format %q", req.Format))
	}
}

// decodeBody reads, schema-validates and unmarshals a request body. On
// failure it writes the error response and returns false.
func (s *Server) decodeBody(w http.ResponseWriter, r *http.Request, schema *gojsonschema.Schema, v any) bool {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusRequestEntityTooLarge, "Request body too large")
		return false
	}
	if err := validateBody(schema, body); err != nil {
		writeError(w, http.StatusUnprocessableEntity, fmt.Sprintf("Validation error: %v", err))
		return false
	}
	if err := json.Unmarshal(body, v); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "Validation error: malformed request body")
		return false
	}
	return true
}

// analysisContext derives the per-request deadline for agent work.
func (s *Server) analysisContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if timeout := s.cfg.Server.AnalysisTimeout; timeout > 0 {
		return context.WithTimeout(ctx, timeout)
	}
	return context.WithCancel(ctx)
}

// writeAnalysisError maps agent errors onto HTTP statuses: validation
// failures are the client's fault, everything else is reported as a
// generic internal error.
func (s *Server) writeAnalysisError(w http.ResponseWriter, err error) {
	if errors.Is(err, agent.ErrEmptyQuery) {
		writeError(w, http.StatusUnprocessableEntity, "Validation error: query cannot be empty")
		return
	}
	log.Errorf("analysis failed: %v", err)
	writeError(w, http.StatusInternalServerError, "Analysis failed")
}

// validateBody checks a JSON body against a schema. The returned error
// joins every violation so clients see all problems at once.
func validateBody(schema *gojsonschema.Schema, body []byte) error {
	result, err := schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return errors.New("request body is not valid JSON")
	}
	if !result.Valid() {
		violations := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			violations[i] = desc.String()
		}
		return errors.New(strings.Join(violations, "; "))
	}
	return nil
}

func buildAnalyzeSchema(maxQueryLength int) (*gojsonschema.Schema, error) {
	return newSchema(map[string]any{
		"type":       "object",
		"required":   []any{"query"},
		"properties": analyzeProperties(maxQueryLength),
	})
}

func buildBatchSchema(maxQueryLength int) (*gojsonschema.Schema, error) {
	return newSchema(map[string]any{
		"type":     "object",
		"required": []any{"queries"},
		"properties": map[string]any{
			"queries": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type":       "object",
					"required":   []any{"query"},
					"properties": analyzeProperties(maxQueryLength),
				},
			},
			"batch_id": map[string]any{"type": "string"},
			"parallel": map[string]any{"type": "boolean"},
		},
	})
}

func buildReportSchema(maxQueryLength int) (*gojsonschema.Schema, error) {
	properties := analyzeProperties(maxQueryLength)
	properties["format"] = map[string]any{
		"type": "string",
		"enum": []any{ReportMarkdown, ReportHTML, ReportPDF},
	}
	return newSchema(map[string]any{
		"type":       "object",
		"required":   []any{"query"},
		"properties": properties,
	})
}

func analyzeProperties(maxQueryLength int) map[string]any {
	if maxQueryLength <= 0 {
		maxQueryLength = 1000
	}
	return map[string]any{
		"query": map[string]any{
			"type":      "string",
			"minLength": 1,
			"maxLength": maxQueryLength,
		},
		"context": map[string]any{"type": "object"},
	}
}

func newSchema(definition map[string]any) (*gojsonschema.Schema, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(definition))
	if err != nil {
		return nil, fmt.Errorf("failed to compile request schema: %w", err)
	}
	return schema, nil
}
