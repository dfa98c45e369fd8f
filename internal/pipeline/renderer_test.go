package pipeline

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/clauselens/clauselens/internal/model"
)

func sampleReport() *model.Report {
	return &model.Report{
		Subject:    "service agreement",
		Source:     "service_agreement.txt",
		AnalyzedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Analysis: model.Analysis{
			RiskScore:    76,
			DocumentType: "a service agreement",
			Clauses: []model.Clause{
				{
					ID:          "clause_1",
					Text:        "The Contractor waives any and all rights to future claims",
					Category:    model.CategoryLiability,
					RiskLevel:   model.RiskHigh,
					Type:        model.TypeRisk,
					Explanation: "This clause gives up legal rights you would otherwise have.",
					Pattern:     "high:waive_all_rights",
				},
			},
		},
		Summary: &model.Summary{
			Text:      "This appears to be a service agreement. The Contractor waives any and all rights to future claims.",
			KeyPoints: []string{"This appears to be a service agreement"},
			WordCount: 60,
			Method:    "extractive",
		},
		Graph: &model.Graph{
			Nodes: []model.GraphNode{{ID: "clause_1", Label: "The Contractor waives"}},
			Stats: model.GraphStats{TotalClauses: 1, RiskCounts: map[model.RiskLevel]int{model.RiskHigh: 1}},
		},
		Principles: model.DefaultPrinciples(),
	}
}

func TestRenderer_RenderJSON(t *testing.T) {
	r := NewRenderer(true)
	path := filepath.Join(t.TempDir(), "report.json")

	if err := r.RenderJSON(sampleReport(), path); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var decoded model.Report
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if decoded.Analysis.RiskScore != 76 {
		t.Errorf("Round-trip lost the risk score: %d", decoded.Analysis.RiskScore)
	}
}

func TestRenderer_RenderMarkdown(t *testing.T) {
	r := NewRenderer(true)
	path := filepath.Join(t.TempDir(), "report.md")

	if err := r.RenderMarkdown(sampleReport(), path); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	md := string(data)

	for _, want := range []string{
		"# Clause Analysis: service agreement",
		"76/100",
		"clause_1",
		"high:waive_all_rights",
		"not legal advice",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("Markdown missing %q", want)
		}
	}
}

func TestRenderer_FooterToggle(t *testing.T) {
	r := NewRenderer(false)
	path := filepath.Join(t.TempDir(), "report.md")

	if err := r.RenderMarkdown(sampleReport(), path); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "not legal advice") {
		t.Error("Expected the footer suppressed")
	}
}
