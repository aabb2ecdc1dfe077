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
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/yuin/goldmark"
)

// RenderHTML converts a markdown narrative into a standalone HTML page.
func RenderHTML(markdown string) (string, error) {
	var body bytes.Buffer
	if err := goldmark.New().Convert([]byte(markdown), &body); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}

	var page strings.Builder
	page.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	page.WriteString(`<meta charset="utf-8">` + "\n")
	page.WriteString("<title>Tactics Master Report</title>\n")
	page.WriteString("</head>\n<body>\n")
	page.Write(body.Bytes())
	page.WriteString("</body>\n</html>\n")
	return page.String(), nil
}

// RenderPDF lays the markdown narrative out as a printable PDF. Headings
// keep their hierarchy; inline markdown decoration is stripped since the
// core PDF fonts cannot carry it.
func RenderPDF(markdown string) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	for _, line := range strings.Split(markdown, "\n") {
		writePDFLine(pdf, line)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func writePDFLine(pdf *fpdf.Fpdf, line string) {
	switch {
	case strings.HasPrefix(line, "# "):
		pdf.SetFont("Helvetica", "B", 18)
		pdf.MultiCell(0, 9, pdfText(line[2:]), "", "L", false)
		pdf.Ln(2)
	case strings.HasPrefix(line, "## "):
		pdf.SetFont("Helvetica", "B", 14)
		pdf.MultiCell(0, 7, pdfText(line[3:]), "", "L", false)
		pdf.Ln(1)
	case strings.HasPrefix(line, "### "):
		pdf.SetFont("Helvetica", "B", 12)
		pdf.MultiCell(0, 6, pdfText(line[4:]), "", "L", false)
	case strings.TrimSpace(line) == "---":
		pdf.Ln(2)
	case strings.TrimSpace(line) == "":
		pdf.Ln(2)
	default:
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 5, pdfText(line), "", "L", false)
	}
}

// pdfText strips markdown emphasis and any rune the latin-1 core fonts
// cannot represent.
func pdfText(line string) string {
	line = strings.ReplaceAll(line, "**", "")
	line = strings.ReplaceAll(line, "*", "")

	var b strings.Builder
	for _, r := range line {
		if r < 256 {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}
