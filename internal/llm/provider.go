package llm

import (
	"context"
	"fmt"

	"github.com/clauselens/clauselens/internal/model"
)

// Provider defines the interface for LLM providers. Providers are an
// alternate strategy layered on top of the rule-based engine: their
// output is a narrative only and never feeds back into classification
// or scoring.
type Provider interface {
	// Name returns the provider name
	Name() string

	// Summarize generates a narrative for the report with strict clause mode
	Summarize(ctx context.Context, req SummarizeRequest) (*SummarizeResponse, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// SummarizeRequest contains the input for LLM narration
type SummarizeRequest struct {
	// Report is the clauselens analysis to narrate
	Report model.Report

	// ClauseIDs is the STRICT allowlist of clause references the LLM
	// may cite. This prevents hallucination: the model cannot refer to
	// a clause the analysis did not produce.
	ClauseIDs []string

	// Prompt is an optional custom prompt (if empty, use default)
	Prompt string

	// Model is the specific model to use (provider-specific)
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// SummarizeResponse contains the LLM's narrative output
type SummarizeResponse struct {
	// Summary is the generated narrative text
	Summary string

	// CitedClauses are the clause IDs the LLM actually cited (for verification)
	CitedClauses []string

	// Model is the model that generated the response
	Model string

	// TokensUsed tracks token consumption
	TokensUsed int
}

// Config holds LLM provider configuration
type Config struct {
	// Provider name: "openai", "anthropic", "ollama", ""
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for OpenAI/Anthropic
	APIKey string

	// BaseURL for custom endpoints (e.g., Ollama)
	BaseURL string

	// Timeout for API requests, in seconds
	Timeout int

	// StrictClause enforces the clause-ID allowlist (should always be true)
	StrictClause bool

	// MaxTokens for response generation
	MaxTokens int

	// Proxy settings
	HTTPProxy  string
	HTTPSProxy string
	NoProxy    string
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Provider:     "", // Disabled by default
		Model:        "",
		Timeout:      30,
		StrictClause: true, // CRITICAL: Always enforce
		MaxTokens:    1000,
	}
}

// BuildPrompt constructs the default narration prompt with strict clause mode
func BuildPrompt(report model.Report, clauseIDs []string) string {
	prompt := fmt.Sprintf(`You are narrating a clauselens analysis of a legal document. Clauselens is a deterministic rule-based engine - its clause list and risk score are final and you must not second-guess them.

CRITICAL RULES:
1. You MUST ONLY reference clauses from this allowed list:
%s

2. DO NOT invent clauses, quote text that is not in the report, or give legal advice.
3. If the analysis found little, say so explicitly.
4. Describe RISK SIGNALS, not legal conclusions. Use phrases like:
   - "Clause clause_2 was flagged high risk because..."
   - "The document scored %d/100, driven mainly by..."
5. Never say "this contract is invalid" or "you should sign" - only describe the analysis.

Analysis summary:
- Subject: %s
- Risk score: %d/100
- Clauses identified: %d
- Document type: %s

Highest-risk clauses:
`, joinClauseIDs(clauseIDs), report.Analysis.RiskScore, report.Subject,
		report.Analysis.RiskScore, len(report.Analysis.Clauses), report.Analysis.DocumentType)

	// Add up to 3 high-risk clauses for context
	added := 0
	for _, clause := range report.Analysis.Clauses {
		if clause.RiskLevel != model.RiskHigh {
			continue
		}
		prompt += fmt.Sprintf("- %s (%s): %s\n", clause.ID, clause.Category, clause.Explanation)
		added++
		if added == 3 {
			break
		}
	}

	prompt += "\nProvide a 3-4 sentence narrative focusing on what the flagged clauses mean for the reader."

	return prompt
}

func joinClauseIDs(ids []string) string {
	if len(ids) == 0 {
		return "(No clauses available)"
	}
	result := ""
	for i, id := range ids {
		if i >= 20 { // Limit to first 20 to avoid token bloat
			result += fmt.Sprintf("\n... and %d more clauses", len(ids)-20)
			break
		}
		result += "\n- " + id
	}
	return result
}
