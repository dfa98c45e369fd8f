package worker

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/clauselens/clauselens/internal/model"
)

// stubAnalyzer succeeds for every source except those listed in fail
type stubAnalyzer struct {
	fail map[string]bool
}

func (s *stubAnalyzer) AnalyzeSource(ctx context.Context, source string) (*model.Report, error) {
	if s.fail[source] {
		return nil, errors.New("analysis failed")
	}
	return &model.Report{
		Subject:    source,
		Source:     source,
		AnalyzedAt: time.Now(),
		Analysis:   model.Analysis{RiskScore: 50},
		Principles: model.DefaultPrinciples(),
	}, nil
}

func TestBatchProcessor_ProcessSources(t *testing.T) {
	processor := NewBatchProcessor(&stubAnalyzer{}, 2)

	sources := []string{"a.txt", "b.txt", "c.txt"}
	results := processor.ProcessSources(context.Background(), sources)

	if len(results) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(results))
	}
	for _, r := range results {
		if r.Error != nil {
			t.Errorf("Unexpected error for %s: %v", r.Source, r.Error)
		}
		if r.Report == nil || r.Report.Subject != r.Source {
			t.Errorf("Result for %s carries wrong report", r.Source)
		}
	}
}

func TestBatchProcessor_PartialFailure(t *testing.T) {
	processor := NewBatchProcessor(&stubAnalyzer{fail: map[string]bool{"bad.txt": true}}, 2)

	results := processor.ProcessSources(context.Background(), []string{"good.txt", "bad.txt"})

	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}

	failures := 0
	for _, r := range results {
		if r.Error != nil {
			failures++
			if r.Source != "bad.txt" {
				t.Errorf("Wrong source failed: %s", r.Source)
			}
		}
	}
	if failures != 1 {
		t.Errorf("Expected 1 failure, got %d", failures)
	}
}

func TestBatchProcessor_EmptySources(t *testing.T) {
	processor := NewBatchProcessor(&stubAnalyzer{}, 2)

	results := processor.ProcessSources(context.Background(), nil)
	if len(results) != 0 {
		t.Errorf("Expected no results for empty input, got %d", len(results))
	}
}

func TestReadSourcesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sources.txt")
	content := "contract.txt\n" +
		"\n" +
		"# a comment line\n" +
		"https://example.com/terms\n" +
		"contract.txt\n" // duplicate
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	sources, err := ReadSourcesFromFile(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(sources) != 2 {
		t.Fatalf("Expected 2 sources after skipping blanks, comments, and duplicates, got %d", len(sources))
	}
	if sources[0] != "contract.txt" || sources[1] != "https://example.com/terms" {
		t.Errorf("Unexpected sources: %v", sources)
	}
}

func TestReadSourcesFromFile_Missing(t *testing.T) {
	if _, err := ReadSourcesFromFile(filepath.Join(t.TempDir(), "absent.txt")); err == nil {
		t.Error("Expected an error for a missing file")
	}
}
