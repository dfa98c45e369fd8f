package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/clauselens/clauselens/internal/model"
)

// Summarizer wraps a Provider and produces the optional narrative
// attached to a report. A nil provider means narration is disabled;
// every path through GenerateSummary leaves the deterministic analysis
// untouched.
type Summarizer struct {
	provider Provider
	config   Config
}

// NewSummarizer creates a summarizer from configuration. An empty
// provider name yields an enabled=false summarizer, not an error.
func NewSummarizer(config Config) (*Summarizer, error) {
	provider, err := NewProvider(config)
	if err != nil {
		return nil, fmt.Errorf("create LLM provider: %w", err)
	}

	return &Summarizer{
		provider: provider,
		config:   config,
	}, nil
}

// IsEnabled reports whether a provider is configured
func (s *Summarizer) IsEnabled() bool {
	return s.provider != nil
}

// ProviderName returns the configured provider's name, or ""
func (s *Summarizer) ProviderName() string {
	if s.provider == nil {
		return ""
	}
	return s.provider.Name()
}

// GenerateSummary produces the narrative for a finished report.
// Returns (nil, nil) when disabled. Provider unavailability is a
// warning in the output, not an error: the rule-based analysis stands
// on its own.
func (s *Summarizer) GenerateSummary(ctx context.Context, report model.Report) (*model.LLMSummary, error) {
	if s.provider == nil {
		return nil, nil
	}

	if !s.provider.IsAvailable(ctx) {
		return &model.LLMSummary{
			Enabled:      false,
			Provider:     s.provider.Name(),
			StrictClause: s.config.StrictClause,
			Warnings:     []string{fmt.Sprintf("provider %s is not available (check API key and connectivity)", s.provider.Name())},
		}, nil
	}

	clauseIDs := make([]string, 0, len(report.Analysis.Clauses))
	for _, c := range report.Analysis.Clauses {
		clauseIDs = append(clauseIDs, c.ID)
	}

	resp, err := s.provider.Summarize(ctx, SummarizeRequest{
		Report:    report,
		ClauseIDs: clauseIDs,
		Model:     s.config.Model,
		MaxTokens: s.config.MaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("generate narrative: %w", err)
	}

	return &model.LLMSummary{
		Enabled:      true,
		Provider:     s.provider.Name(),
		Model:        resp.Model,
		StrictClause: s.config.StrictClause,
		SummaryMD:    resp.Summary,
	}, nil
}

// RenderSeparateMarkdown renders the narrative as a standalone
// Markdown document, clearly labeled as non-authoritative.
func RenderSeparateMarkdown(summary *model.LLMSummary) string {
	var b strings.Builder

	b.WriteString("# LLM Narrative (informational only)\n\n")
	b.WriteString("> Generated by ")
	b.WriteString(summary.Provider)
	if summary.Model != "" {
		b.WriteString("/")
		b.WriteString(summary.Model)
	}
	b.WriteString(". This narrative does not affect the rule-based analysis or score.\n\n")
	b.WriteString(summary.SummaryMD)
	b.WriteString("\n")

	if len(summary.Warnings) > 0 {
		b.WriteString("\n## Warnings\n\n")
		for _, w := range summary.Warnings {
			b.WriteString("- " + w + "\n")
		}
	}

	return b.String()
}
