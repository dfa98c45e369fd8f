package llm

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/clauselens/clauselens/internal/model"
)

// MockProvider implements the Provider interface for testing
type MockProvider struct {
	name      string
	available bool
	response  *SummarizeResponse
	err       error
	lastReq   SummarizeRequest
}

func (m *MockProvider) Name() string {
	return m.name
}

func (m *MockProvider) Summarize(ctx context.Context, req SummarizeRequest) (*SummarizeResponse, error) {
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	return m.response, nil
}

func (m *MockProvider) IsAvailable(ctx context.Context) bool {
	return m.available
}

func testReport() model.Report {
	return model.Report{
		Subject: "Test Contract",
		Analysis: model.Analysis{
			RiskScore: 72,
			Clauses: []model.Clause{
				{ID: "clause_1", Category: model.CategoryLiability, RiskLevel: model.RiskHigh, Explanation: "Unlimited exposure."},
				{ID: "clause_2", Category: model.CategoryFinancial, RiskLevel: model.RiskMedium, Explanation: "Payment terms."},
			},
		},
	}
}

func TestNewSummarizer_DisabledProvider(t *testing.T) {
	config := Config{
		Provider: "", // Empty = disabled
	}

	summarizer, err := NewSummarizer(config)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if summarizer.provider != nil {
		t.Error("Expected provider to be nil when disabled")
	}

	if summarizer.IsEnabled() {
		t.Error("Expected summarizer to be disabled")
	}

	if summarizer.ProviderName() != "" {
		t.Error("Expected empty provider name when disabled")
	}
}

func TestNewSummarizer_UnknownProvider(t *testing.T) {
	if _, err := NewSummarizer(Config{Provider: "mystery"}); err == nil {
		t.Error("Expected an error for an unknown provider name")
	}
}

func TestSummarizer_GenerateSummary_Disabled(t *testing.T) {
	summarizer := &Summarizer{
		provider: nil,
		config:   Config{},
	}

	summary, err := summarizer.GenerateSummary(context.Background(), testReport())

	if err != nil {
		t.Errorf("Expected no error when disabled, got %v", err)
	}
	if summary != nil {
		t.Error("Expected nil summary when provider disabled")
	}
}

func TestSummarizer_GenerateSummary_ProviderUnavailable(t *testing.T) {
	mockProvider := &MockProvider{
		name:      "test-provider",
		available: false,
	}

	summarizer := &Summarizer{
		provider: mockProvider,
		config:   Config{StrictClause: true},
	}

	summary, err := summarizer.GenerateSummary(context.Background(), testReport())

	if err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
	if summary == nil {
		t.Fatal("Expected summary object with warnings")
	}
	if summary.Enabled {
		t.Error("Expected summary to be marked as disabled")
	}

	found := false
	for _, warning := range summary.Warnings {
		if strings.Contains(warning, "not available") {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("Expected a provider-unavailable warning, got %v", summary.Warnings)
	}
}

func TestSummarizer_GenerateSummary_Success(t *testing.T) {
	mockProvider := &MockProvider{
		name:      "test-provider",
		available: true,
		response: &SummarizeResponse{
			Summary:      "The analysis flagged clause_1 as the main concern.",
			CitedClauses: []string{"clause_1"},
			Model:        "test-model",
		},
	}

	summarizer := &Summarizer{
		provider: mockProvider,
		config:   Config{StrictClause: true, MaxTokens: 500},
	}

	summary, err := summarizer.GenerateSummary(context.Background(), testReport())

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !summary.Enabled {
		t.Error("Expected summary to be enabled")
	}
	if summary.Provider != "test-provider" || summary.Model != "test-model" {
		t.Errorf("Unexpected provenance: %s/%s", summary.Provider, summary.Model)
	}
	if !summary.StrictClause {
		t.Error("Expected strict clause mode recorded")
	}

	// The request must carry the full clause-ID allowlist
	if len(mockProvider.lastReq.ClauseIDs) != 2 {
		t.Errorf("Expected 2 allowed clause IDs, got %v", mockProvider.lastReq.ClauseIDs)
	}
}

func TestSummarizer_GenerateSummary_ProviderError(t *testing.T) {
	mockProvider := &MockProvider{
		name:      "test-provider",
		available: true,
		err:       errors.New("rate limited"),
	}

	summarizer := &Summarizer{
		provider: mockProvider,
		config:   Config{StrictClause: true},
	}

	if _, err := summarizer.GenerateSummary(context.Background(), testReport()); err == nil {
		t.Error("Expected the provider error to propagate")
	}
}

func TestBuildPrompt_ContainsAllowlist(t *testing.T) {
	report := testReport()
	prompt := BuildPrompt(report, []string{"clause_1", "clause_2"})

	if !strings.Contains(prompt, "clause_1") || !strings.Contains(prompt, "clause_2") {
		t.Error("Expected the prompt to list the allowed clause IDs")
	}
	if !strings.Contains(prompt, "72/100") {
		t.Error("Expected the prompt to carry the risk score")
	}
	// High-risk clause context included
	if !strings.Contains(prompt, "Unlimited exposure.") {
		t.Error("Expected high-risk clause explanations in the prompt")
	}
}

func TestBuildPrompt_EmptyAllowlist(t *testing.T) {
	prompt := BuildPrompt(model.Report{}, nil)

	if !strings.Contains(prompt, "(No clauses available)") {
		t.Error("Expected the empty-allowlist marker")
	}
}

func TestRenderSeparateMarkdown(t *testing.T) {
	summary := &model.LLMSummary{
		Enabled:   true,
		Provider:  "openai",
		Model:     "gpt-4o-mini",
		SummaryMD: "The narrative body.",
		Warnings:  []string{"something to note"},
	}

	md := RenderSeparateMarkdown(summary)

	if !strings.Contains(md, "informational only") {
		t.Error("Expected the non-authoritative label")
	}
	if !strings.Contains(md, "openai/gpt-4o-mini") {
		t.Error("Expected provider and model attribution")
	}
	if !strings.Contains(md, "The narrative body.") {
		t.Error("Expected the narrative content")
	}
	if !strings.Contains(md, "something to note") {
		t.Error("Expected warnings section")
	}
}
