//
// Tencent is pleased to support the open source community by making TacticsMaster available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// TacticsMaster is licensed under the Apache License Version 2.0.
//
//

package format

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleNarrative = "# 🏏 Tactical Analysis: Virat Kohli\n\n" +
	"## 📊 Overall Assessment\n" +
	"Excellent form - key player in good touch\n\n" +
	"### Powerplay\n" +
	"**Strategy:** Attack with pace bowling\n\n" +
	"---\n" +
	"*Analysis generated on 2025-03-14 09:26:53*\n"

func TestRenderHTML(t *testing.T) {
	html, err := RenderHTML(sampleNarrative)
	require.NoError(t, err)

	assert.Contains(t, html, "<!DOCTYPE html>")
	assert.Contains(t, html, "<h1>🏏 Tactical Analysis: Virat Kohli</h1>")
	assert.Contains(t, html, "<h2>📊 Overall Assessment</h2>")
	assert.Contains(t, html, "<strong>Strategy:</strong>")
}

func TestRenderPDF(t *testing.T) {
	pdf, err := RenderPDF(sampleNarrative)
	require.NoError(t, err)
	require.NotEmpty(t, pdf)

	assert.True(t, strings.HasPrefix(string(pdf), "%PDF-"), "output is not a PDF document")
}

func TestPDFTextStripsDecoration(t *testing.T) {
	assert.Equal(t, "Strategy: Attack with pace bowling", pdfText("**Strategy:** Attack with pace bowling"))
	assert.Equal(t, "Tactical Analysis: Virat Kohli", pdfText("🏏 Tactical Analysis: Virat Kohli"))
}
