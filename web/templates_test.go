// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package web

import (
	"bytes"
	"strings"
	"testing"

	"github.com/danielhkuo/diarisk/form"
)

func TestRenderSection(t *testing.T) {
	sections := form.Sections()

	page := SectionPage{
		Token:    "tok-123",
		Section:  sections[0],
		Index:    0,
		Total:    len(sections),
		Progress: form.Progress(0, len(sections)),
		Vis:      form.ComputeVisibility(0, len(sections)),
		Values:   form.Values{"height_cm": "180"},
		Errors:   []string{"weight_kg is required"},
	}

	var buf bytes.Buffer
	if err := RenderSection(&buf, page); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	html := buf.String()
	if !strings.Contains(html, "Body Measurements") {
		t.Error("expected section title in output")
	}
	if !strings.Contains(html, "Step 1 of 4") {
		t.Error("expected 1-indexed step count")
	}
	if !strings.Contains(html, `value="180"`) {
		t.Error("expected prefilled height value")
	}
	if !strings.Contains(html, "weight_kg is required") {
		t.Error("expected validation message")
	}
	if !strings.Contains(html, "width: 25%") {
		t.Error("expected progress width 25%")
	}
	// First section: no previous, no submit
	if strings.Contains(html, "Previous") {
		t.Error("previous button should be hidden on the first section")
	}
	if strings.Contains(html, "Assess My Risk") {
		t.Error("submit button should be hidden before the last section")
	}
}

func TestRenderSection_LastSection(t *testing.T) {
	sections := form.Sections()
	last := len(sections) - 1

	page := SectionPage{
		Token:    "tok-123",
		Section:  sections[last],
		Index:    last,
		Total:    len(sections),
		Progress: form.Progress(last, len(sections)),
		Vis:      form.ComputeVisibility(last, len(sections)),
		Values:   form.Values{"Gender": "1"},
	}

	var buf bytes.Buffer
	if err := RenderSection(&buf, page); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	html := buf.String()
	if !strings.Contains(html, "Previous") {
		t.Error("expected previous button on the last section")
	}
	if !strings.Contains(html, "Assess My Risk") {
		t.Error("expected submit button on the last section")
	}
	if strings.Contains(html, ">Next</button>") {
		t.Error("next button should be hidden on the last section")
	}
	// Prefilled radio stays checked
	if !strings.Contains(html, `value="1" checked`) {
		t.Error("expected checked radio for stored Gender value")
	}
}

func TestRenderSection_Alert(t *testing.T) {
	sections := form.Sections()
	page := SectionPage{
		Token:    "tok-123",
		Section:  sections[0],
		Total:    len(sections),
		Vis:      form.ComputeVisibility(0, len(sections)),
		Values:   form.Values{},
		Alert:    "Something went wrong while assessing your risk. Please try again.",
		Progress: 25,
	}

	var buf bytes.Buffer
	if err := RenderSection(&buf, page); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "Something went wrong") {
		t.Error("expected alert text in output")
	}
}

func TestRenderResult(t *testing.T) {
	page := ResultPage{
		RecordID:    "rec-42",
		RiskLevel:   "high",
		Result:      1,
		ProbPercent: "62.0%",
		AssessedAt:  "now",
		ReportURL:   "/records/rec-42/report",
	}

	var buf bytes.Buffer
	if err := RenderResult(&buf, page); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	html := buf.String()
	if !strings.Contains(html, "High risk") {
		t.Error("expected high-risk box")
	}
	if !strings.Contains(html, "62.0%") {
		t.Error("expected probability percentage")
	}
	if !strings.Contains(html, "/records/rec-42/report") {
		t.Error("expected report link")
	}
	if !strings.Contains(html, "not a medical diagnosis") {
		t.Error("expected disclaimer")
	}
}
