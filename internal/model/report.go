package model

import (
	"errors"
	"time"
)

// MinDocumentLength is the minimum input length accepted for analysis
// and summarization. Shorter input is a caller validation error, not a
// core computation failure.
const MinDocumentLength = 50

// ErrInputTooShort is returned when the document text is below MinDocumentLength
var ErrInputTooShort = errors.New("document text too short to analyze (minimum 50 characters)")

// Analysis aggregates all clauses extracted from one document
type Analysis struct {
	Clauses      []Clause `json:"clauses"`                 // Ordered clause list
	RiskScore    int      `json:"risk_score"`              // 0-100, weighted over clause risk levels
	DocumentType string   `json:"document_type,omitempty"` // e.g., "an employment agreement"
}

// Summary is the result of extractive summarization
type Summary struct {
	Text             string   `json:"text"`              // The summary itself
	KeyPoints        []string `json:"key_points"`        // First 3 non-empty summary sentences
	WordCount        int      `json:"word_count"`        // Whitespace tokens in the original text
	CompressionRatio float64  `json:"compression_ratio"` // Summary words / original words
	Method           string   `json:"method"`            // Always "extractive" for the rule-based engine
}

// ChatAnswer is the stateless answer to one question against one context.
// Topic is empty when the generic keyword-overlap fallback produced the answer.
type ChatAnswer struct {
	Question string `json:"question"`
	Topic    string `json:"topic,omitempty"`
	Answer   string `json:"answer"`
}

// GraphNode is a clause rendered for visualization. Label is the clause
// text truncated to 100 characters with a "..." marker when cut.
type GraphNode struct {
	ID        string    `json:"id"`
	Label     string    `json:"label"`
	Category  Category  `json:"category"`
	RiskLevel RiskLevel `json:"risk_level"`
}

// GraphStats summarizes the visualization graph
type GraphStats struct {
	TotalClauses int               `json:"total_clauses"`
	RiskCounts   map[RiskLevel]int `json:"risk_counts"`
	Categories   []Category        `json:"categories"` // Distinct, in first-seen order
}

// Graph is the clause-relationship view of a document
type Graph struct {
	Nodes         []GraphNode    `json:"nodes"`
	Relationships []Relationship `json:"relationships"`
	Stats         GraphStats     `json:"stats"`
}

// Report is the complete clauselens output for one document
type Report struct {
	Subject    string    `json:"subject"`              // Document name or URL subject
	Source     string    `json:"source,omitempty"`     // File path or URL that was analyzed
	AnalyzedAt time.Time `json:"analyzed_at"`          // When the analysis ran
	Analysis   Analysis  `json:"analysis"`             // Clause list and risk score
	Summary    *Summary  `json:"summary,omitempty"`    // Extractive summary
	Graph      *Graph    `json:"graph,omitempty"`      // Relationship graph
	Principles Principles `json:"principles"`          // Engine guarantees applied
	LLM        *LLMSummary `json:"llm,omitempty"`      // Optional narrative (never affects scoring)
}

// Principles documents the guarantees of the rule-based engine
type Principles struct {
	Deterministic bool `json:"deterministic"` // Same text always yields the same output
	Offline       bool `json:"offline"`       // No network access inside the engine
	Explainable   bool `json:"explainable"`   // Every clause carries its matched rule
}

// DefaultPrinciples returns the standard clauselens engine guarantees
func DefaultPrinciples() Principles {
	return Principles{
		Deterministic: true,
		Offline:       true,
		Explainable:   true,
	}
}

// LLMSummary contains the optional LLM-generated narrative.
// CRITICAL: this never affects classification or scoring and is
// clearly separated from the deterministic output.
type LLMSummary struct {
	Enabled      bool     `json:"enabled"`
	Provider     string   `json:"provider,omitempty"`
	Model        string   `json:"model,omitempty"`
	StrictClause bool     `json:"strict_clause"` // Whether clause-ID enforcement was enabled
	SummaryMD    string   `json:"summary_md,omitempty"`
	Warnings     []string `json:"warnings,omitempty"`
}
