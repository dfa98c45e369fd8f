package model

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds the complete clauselens configuration
type Config struct {
	HTTP        HTTPConfig        `yaml:"http"`
	Analysis    AnalysisConfig    `yaml:"analysis"`
	Cache       CacheConfig       `yaml:"cache"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	Output      OutputConfig      `yaml:"output"`
	LLM         LLMConfig         `yaml:"llm"`
}

// HTTPConfig controls document fetching for URL input
type HTTPConfig struct {
	Timeout      time.Duration `yaml:"timeout"`
	UserAgent    string        `yaml:"user_agent"`
	MaxBodyBytes int64         `yaml:"max_body_bytes"`
	InsecureTLS  bool          `yaml:"insecure_tls"`
	HTTPProxy    string        `yaml:"http_proxy"`
	HTTPSProxy   string        `yaml:"https_proxy"`
	NoProxy      string        `yaml:"no_proxy"`
	RespectRobots bool         `yaml:"respect_robots"`
}

// AnalysisConfig carries the rule-engine thresholds. These are the
// knobs of the deterministic core; changing them changes output, so
// the defaults are the reference behavior.
type AnalysisConfig struct {
	MinSentenceLength int `yaml:"min_sentence_length"` // Sentences at or below this length are dropped
	MinClauseLength   int `yaml:"min_clause_length"`   // Clause blocks below this length are dropped
	MaxClauseLength   int `yaml:"max_clause_length"`   // Accumulating blocks past this length are flushed
	SummarySentences  int `yaml:"summary_sentences"`   // Upper bound on sentences in a summary
}

// CacheConfig controls the layered analysis cache
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled"`
	Dir       string        `yaml:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl"`
}

// ConcurrencyConfig controls batch processing and fetch politeness
type ConcurrencyConfig struct {
	Workers          int     `yaml:"workers"`            // Batch worker count (0 = NumCPU)
	FetchRatePerHost float64 `yaml:"fetch_rate_per_host"` // Requests per second per host
	FetchBurst       int     `yaml:"fetch_burst"`
}

// OutputConfig controls report rendering
type OutputConfig struct {
	Verbose       bool `yaml:"verbose"`
	IncludeFooter bool `yaml:"include_footer"`
}

// LLMConfig configures the optional narrative summary strategy.
// The provider is disabled by default; when enabled it runs after the
// deterministic analysis and never alters it.
type LLMConfig struct {
	Provider     string `yaml:"provider"` // "openai", "anthropic", "ollama", ""
	Model        string `yaml:"model"`
	APIKey       string `yaml:"-"` // From environment only, never persisted
	BaseURL      string `yaml:"base_url"`
	Timeout      int    `yaml:"timeout"` // Seconds
	StrictClause bool   `yaml:"strict_clause"`
	MaxTokens    int    `yaml:"max_tokens"`
}

// DefaultConfig returns the reference configuration
func DefaultConfig() *Config {
	cacheDir := ".clauselens-cache"
	if home, err := os.UserHomeDir(); err == nil {
		cacheDir = filepath.Join(home, ".clauselens", "cache")
	}

	return &Config{
		HTTP: HTTPConfig{
			Timeout:       2 * time.Minute,
			UserAgent:     "Clauselens/0.1 (+https://github.com/clauselens/clauselens)",
			MaxBodyBytes:  2_000_000,
			RespectRobots: true,
		},
		Analysis: AnalysisConfig{
			MinSentenceLength: 20,
			MinClauseLength:   30,
			MaxClauseLength:   300,
			SummarySentences:  5,
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       cacheDir,
			MemoryTTL: 15 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		Concurrency: ConcurrencyConfig{
			Workers:          0,
			FetchRatePerHost: 1.0,
			FetchBurst:       3,
		},
		Output: OutputConfig{
			Verbose:       false,
			IncludeFooter: true,
		},
		LLM: LLMConfig{
			Provider:     "",
			Timeout:      30,
			StrictClause: true,
			MaxTokens:    1000,
		},
	}
}
