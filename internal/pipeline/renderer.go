package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/clauselens/clauselens/internal/model"
)

// Renderer writes reports as JSON, Markdown, and terminal output
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a renderer
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes the full report as indented JSON
func (r *Renderer) RenderJSON(report *model.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// RenderMarkdown writes a human-readable report
func (r *Renderer) RenderMarkdown(report *model.Report, path string) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# Clause Analysis: %s\n\n", report.Subject)
	if report.Source != "" {
		fmt.Fprintf(&b, "**Source:** %s\n\n", report.Source)
	}
	fmt.Fprintf(&b, "**Analyzed:** %s\n\n", report.AnalyzedAt.Format("2006-01-02 15:04 MST"))
	fmt.Fprintf(&b, "**Risk score:** %d/100 (%s)\n\n", report.Analysis.RiskScore, riskBand(report.Analysis.RiskScore))
	if report.Analysis.DocumentType != "" {
		fmt.Fprintf(&b, "This appears to be %s.\n\n", report.Analysis.DocumentType)
	}

	if report.Summary != nil {
		b.WriteString("## Summary\n\n")
		b.WriteString(report.Summary.Text)
		b.WriteString("\n\n")
		if len(report.Summary.KeyPoints) > 0 {
			b.WriteString("**Key points:**\n\n")
			for _, kp := range report.Summary.KeyPoints {
				fmt.Fprintf(&b, "- %s\n", kp)
			}
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "*%d words, %.0f%% of the original.*\n\n",
			wordCount(report.Summary.Text), report.Summary.CompressionRatio*100)
	}

	if len(report.Analysis.Clauses) > 0 {
		b.WriteString("## Clauses\n\n")
		b.WriteString("| ID | Risk | Category | Explanation |\n")
		b.WriteString("|----|------|----------|-------------|\n")
		for _, c := range report.Analysis.Clauses {
			fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
				c.ID, c.RiskLevel, c.Category, mdEscape(c.Explanation))
		}
		b.WriteString("\n")

		for _, c := range report.Analysis.Clauses {
			fmt.Fprintf(&b, "### %s (%s)\n\n", c.ID, c.RiskLevel)
			fmt.Fprintf(&b, "> %s\n\n", mdEscape(c.Text))
			fmt.Fprintf(&b, "%s\n\n", c.Explanation)
			if c.Pattern != "" {
				fmt.Fprintf(&b, "*Matched rule: `%s`*\n\n", c.Pattern)
			}
		}
	}

	if report.Graph != nil {
		b.WriteString("## Relationships\n\n")
		fmt.Fprintf(&b, "%d clauses, %d relationships.\n\n",
			report.Graph.Stats.TotalClauses, len(report.Graph.Relationships))
		r.writeRiskCounts(&b, report.Graph.Stats.RiskCounts)
		for _, rel := range report.Graph.Relationships {
			fmt.Fprintf(&b, "- %s → %s (%s): %s\n", rel.From, rel.To, rel.Type, rel.Description)
		}
		b.WriteString("\n")
	}

	if r.includeFooter {
		b.WriteString("---\n\n")
		b.WriteString("*Generated by clauselens. Rule-based analysis, not legal advice.*\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// RenderLLMMarkdown writes the LLM narrative to its own file, kept
// apart from the deterministic report.
func (r *Renderer) RenderLLMMarkdown(content, path string) error {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// RenderSummary prints a short result overview to the terminal
func (r *Renderer) RenderSummary(report *model.Report) {
	fmt.Printf("\n%s\n", report.Subject)
	fmt.Printf("Risk score: %d/100 (%s)\n", report.Analysis.RiskScore, riskBand(report.Analysis.RiskScore))
	if report.Analysis.DocumentType != "" {
		fmt.Printf("Document type: %s\n", report.Analysis.DocumentType)
	}
	fmt.Printf("Clauses: %d\n", len(report.Analysis.Clauses))

	counts := map[model.RiskLevel]int{}
	for _, c := range report.Analysis.Clauses {
		counts[c.RiskLevel]++
	}
	for _, level := range []model.RiskLevel{model.RiskHigh, model.RiskMedium, model.RiskLow, model.RiskPositive} {
		if counts[level] > 0 {
			fmt.Printf("  %s: %d\n", level, counts[level])
		}
	}

	if report.LLM != nil {
		if report.LLM.Enabled {
			fmt.Printf("LLM narrative: %s/%s (separate output)\n", report.LLM.Provider, report.LLM.Model)
		}
		for _, w := range report.LLM.Warnings {
			fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
		}
	}
}

func (r *Renderer) writeRiskCounts(b *strings.Builder, counts map[model.RiskLevel]int) {
	if len(counts) == 0 {
		return
	}
	levels := make([]string, 0, len(counts))
	for level := range counts {
		levels = append(levels, string(level))
	}
	sort.Strings(levels)
	for _, level := range levels {
		fmt.Fprintf(b, "- %s: %d\n", level, counts[model.RiskLevel(level)])
	}
	b.WriteString("\n")
}

// riskBand maps a 0-100 score onto a coarse label for display
func riskBand(score int) string {
	switch {
	case score >= 70:
		return "high risk"
	case score >= 40:
		return "moderate risk"
	default:
		return "low risk"
	}
}

func mdEscape(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	return strings.ReplaceAll(s, "\n", " ")
}

func wordCount(s string) int {
	return len(strings.Fields(s))
}
