package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/clauselens/clauselens/internal/cache"
	"github.com/clauselens/clauselens/internal/classify"
	"github.com/clauselens/clauselens/internal/extract"
	"github.com/clauselens/clauselens/internal/llm"
	"github.com/clauselens/clauselens/internal/model"
	"github.com/clauselens/clauselens/internal/qa"
	"github.com/clauselens/clauselens/internal/relation"
	"github.com/clauselens/clauselens/internal/score"
	"github.com/clauselens/clauselens/internal/summarize"
)

// Pipeline orchestrates the complete document analysis
type Pipeline struct {
	fetcher    *Fetcher
	extractor  *extract.ClauseExtractor
	scorer     *score.Scorer
	summarizer *summarize.Summarizer
	matcher    *qa.Matcher
	builder    *relation.Builder
	renderer   *Renderer
	narrative  *llm.Summarizer // Optional LLM narrative (nil if disabled)
	cache      cache.Cache     // nil when caching is disabled
	config     *model.Config
}

// NewPipeline creates a pipeline with the given configuration
func NewPipeline(cfg *model.Config) *Pipeline {
	var narrative *llm.Summarizer
	if cfg.LLM.Provider != "" {
		s, err := llm.NewSummarizer(llm.ConfigFromModel(cfg.LLM))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to initialize LLM provider: %v\n", err)
		} else {
			narrative = s
		}
	}

	var c cache.Cache
	if cfg.Cache.Enabled {
		c = cache.NewLayeredCache(cfg.Cache.MemoryTTL, cfg.Cache.Dir, cfg.Cache.DiskTTL)
	}

	return &Pipeline{
		fetcher:    NewFetcher(cfg),
		extractor:  extract.NewClauseExtractor(cfg.Analysis),
		scorer:     score.NewScorer(),
		summarizer: summarize.NewSummarizer(cfg.Analysis.SummarySentences),
		matcher:    qa.NewMatcher(),
		builder:    relation.NewBuilder(),
		renderer:   NewRenderer(cfg.Output.IncludeFooter),
		narrative:  narrative,
		cache:      c,
		config:     cfg,
	}
}

// AnalyzeText runs the deterministic clause analysis over raw text.
// Clause blocks that match no risk pattern are skipped; if nothing at
// all matched, the whole-document fallback fires so legal text never
// produces an empty analysis.
func (p *Pipeline) AnalyzeText(text string) (*model.Analysis, error) {
	if len(strings.TrimSpace(text)) < model.MinDocumentLength {
		return nil, model.ErrInputTooShort
	}

	blocks := p.extractor.Extract(text)

	var clauses []model.Clause
	for _, block := range blocks {
		match, ok := classify.ClassifyRisk(block.Text)
		if !ok {
			continue
		}
		clauses = append(clauses, model.Clause{
			ID:          extract.ClauseID(len(clauses)),
			Text:        block.Text,
			Category:    match.Category,
			RiskLevel:   match.RiskLevel,
			Type:        match.Type,
			Explanation: classify.Explain(block.Text, match.RiskLevel),
			Pattern:     match.Pattern,
			Index:       len(clauses),
		})
	}

	if len(clauses) == 0 {
		clauses = classify.GeneralAnalysis(text)
	}

	return &model.Analysis{
		Clauses:      clauses,
		RiskScore:    p.scorer.Calculate(clauses),
		DocumentType: summarize.DetectDocumentType(text),
	}, nil
}

// Summarize produces the extractive summary of raw text
func (p *Pipeline) Summarize(text string) (*model.Summary, error) {
	return p.summarizer.Summarize(text)
}

// Ask answers one free-text question against raw text
func (p *Pipeline) Ask(question, text string) model.ChatAnswer {
	return p.matcher.Answer(question, text)
}

// GraphFromText builds the clause-relationship graph. This is the
// flow view: an independent classification pass with its own category
// precedence, deliberately not reconciled with the risk-pattern pass.
func (p *Pipeline) GraphFromText(text string) *model.Graph {
	blocks := p.extractor.Extract(text)

	clauses := make([]model.Clause, 0, len(blocks))
	for i, block := range blocks {
		category, risk := classify.ClassifyCategory(block.Text)
		clauses = append(clauses, model.Clause{
			ID:        extract.ClauseID(i),
			Text:      block.Text,
			Category:  category,
			RiskLevel: risk,
			Type:      typeForRisk(risk),
			Index:     i,
		})
	}

	return p.builder.Build(clauses)
}

func typeForRisk(risk model.RiskLevel) model.ClauseType {
	switch risk {
	case model.RiskHigh, model.RiskMedium:
		return model.TypeRisk
	case model.RiskPositive:
		return model.TypePositive
	default:
		return model.TypeNeutral
	}
}

// AnalyzeSource acquires the document text from a file path or URL
// and produces the full report: analysis, summary, graph, and the
// optional LLM narrative. Results are cached by document content.
func (p *Pipeline) AnalyzeSource(ctx context.Context, source string) (*model.Report, error) {
	doc, err := p.acquire(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("acquire document: %w", err)
	}

	if report, ok := p.cachedReport(doc.Text); ok {
		report.Source = source
		return report, nil
	}

	report, err := p.buildReport(doc)
	if err != nil {
		return nil, err
	}
	report.Source = source

	p.storeReport(doc.Text, report)

	// LLM narrative runs AFTER the deterministic analysis and never
	// affects it; a failure here degrades to a warning.
	if p.narrative != nil && p.narrative.IsEnabled() {
		summary, err := p.narrative.GenerateSummary(ctx, *report)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: LLM narrative generation failed: %v\n", err)
		} else if summary != nil {
			report.LLM = summary
		}
	}

	return report, nil
}

// AnalyzeString produces the full report for already-acquired text
func (p *Pipeline) AnalyzeString(subject, text string) (*model.Report, error) {
	return p.buildReport(&Document{Subject: subject, Text: text})
}

func (p *Pipeline) buildReport(doc *Document) (*model.Report, error) {
	analysis, err := p.AnalyzeText(doc.Text)
	if err != nil {
		return nil, err
	}

	summary, err := p.Summarize(doc.Text)
	if err != nil {
		return nil, err
	}

	return &model.Report{
		Subject:    doc.Subject,
		AnalyzedAt: time.Now().UTC(),
		Analysis:   *analysis,
		Summary:    summary,
		Graph:      p.GraphFromText(doc.Text),
		Principles: model.DefaultPrinciples(),
	}, nil
}

func (p *Pipeline) cachedReport(text string) (*model.Report, bool) {
	if p.cache == nil {
		return nil, false
	}

	data, found := p.cache.Get(cache.Key("report", text))
	if !found {
		return nil, false
	}

	var report model.Report
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, false
	}
	return &report, true
}

func (p *Pipeline) storeReport(text string, report *model.Report) {
	if p.cache == nil {
		return
	}

	data, err := json.Marshal(report)
	if err != nil {
		return
	}
	_ = p.cache.Set(cache.Key("report", text), data, 0)
}

// RenderReport renders the report to the configured outputs
func (p *Pipeline) RenderReport(report *model.Report, jsonPath, mdPath string, verbose bool) error {
	if jsonPath != "" {
		if err := p.renderer.RenderJSON(report, jsonPath); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Printf("Wrote JSON: %s\n", jsonPath)
		}
	}

	if mdPath != "" {
		if err := p.renderer.RenderMarkdown(report, mdPath); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if verbose {
			fmt.Printf("Wrote Markdown: %s\n", mdPath)
		}
	}

	// Narrative goes to a separate file so it cannot be mistaken for
	// the deterministic report
	if report.LLM != nil && report.LLM.Enabled && mdPath != "" {
		llmPath := strings.TrimSuffix(mdPath, ".md") + ".llm.md"
		if err := p.renderer.RenderLLMMarkdown(llm.RenderSeparateMarkdown(report.LLM), llmPath); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to write LLM narrative: %v\n", err)
		} else if verbose {
			fmt.Printf("Wrote LLM narrative: %s\n", llmPath)
		}
	}

	p.renderer.RenderSummary(report)

	return nil
}
