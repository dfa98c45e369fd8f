package summarize

import (
	"errors"
	"strings"
	"testing"

	"github.com/clauselens/clauselens/internal/model"
)

const employmentText = "This employment agreement sets out the terms agreed between the parties. " +
	"The employee will perform the assigned duties at the company office. " +
	"Payment of salary occurs on the last business day of each month. " +
	"The working schedule follows the standard company calendar for holidays. " +
	"Confidentiality obligations survive the termination of this agreement. " +
	"Either side may end the arrangement with thirty days written notice. " +
	"Disputes are resolved through binding arbitration in the agreed jurisdiction."

func TestSummarizer_RejectsShortInput(t *testing.T) {
	s := NewSummarizer(5)

	_, err := s.Summarize("Too short to analyze.")
	if !errors.Is(err, model.ErrInputTooShort) {
		t.Errorf("Expected ErrInputTooShort, got %v", err)
	}

	// Padding with whitespace must not help
	_, err = s.Summarize("Short.                                              ")
	if !errors.Is(err, model.ErrInputTooShort) {
		t.Errorf("Expected ErrInputTooShort for padded input, got %v", err)
	}
}

func TestSummarizer_SummaryIsExtractive(t *testing.T) {
	s := NewSummarizer(5)

	summary, err := s.Summarize(employmentText)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// Strip the document-type prefix, then every remaining sentence must
	// be verbatim text from the document
	body := strings.TrimPrefix(summary.Text, "This appears to be an employment agreement. ")
	body = strings.TrimSuffix(body, ".")
	for _, part := range strings.Split(body, ". ") {
		if part == "" {
			continue
		}
		if !strings.Contains(employmentText, part) {
			t.Errorf("Summary sentence is not verbatim document text: %q", part)
		}
	}
}

func TestSummarizer_PreservesDocumentOrder(t *testing.T) {
	s := NewSummarizer(5)

	summary, err := s.Summarize(employmentText)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	body := strings.TrimPrefix(summary.Text, "This appears to be an employment agreement. ")
	prev := -1
	for _, part := range strings.Split(strings.TrimSuffix(body, "."), ". ") {
		if part == "" {
			continue
		}
		pos := strings.Index(employmentText, part)
		if pos < 0 {
			t.Fatalf("Sentence not found in document: %q", part)
		}
		if pos < prev {
			t.Errorf("Summary sentences out of document order at %q", part)
		}
		prev = pos
	}
}

func TestSummarizer_PrependsDocumentType(t *testing.T) {
	s := NewSummarizer(5)

	summary, err := s.Summarize(employmentText)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.HasPrefix(summary.Text, "This appears to be an employment agreement. ") {
		t.Errorf("Expected document-type prefix, got %q", summary.Text)
	}
	if !strings.HasSuffix(summary.Text, ".") {
		t.Errorf("Expected summary to end with a period, got %q", summary.Text)
	}
}

func TestSummarizer_Metadata(t *testing.T) {
	s := NewSummarizer(5)

	summary, err := s.Summarize(employmentText)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if summary.Method != "extractive" {
		t.Errorf("Expected extractive method, got %q", summary.Method)
	}
	if summary.WordCount != len(strings.Fields(employmentText)) {
		t.Errorf("Expected word count of the original text, got %d", summary.WordCount)
	}
	if summary.CompressionRatio <= 0 {
		t.Errorf("Expected positive compression ratio, got %f", summary.CompressionRatio)
	}
	if len(summary.KeyPoints) == 0 || len(summary.KeyPoints) > 3 {
		t.Errorf("Expected 1 to 3 key points, got %d", len(summary.KeyPoints))
	}
}

func TestSummarizer_Deterministic(t *testing.T) {
	s := NewSummarizer(5)

	first, err1 := s.Summarize(employmentText)
	second, err2 := s.Summarize(employmentText)
	if err1 != nil || err2 != nil {
		t.Fatalf("Unexpected errors: %v, %v", err1, err2)
	}
	if first.Text != second.Text {
		t.Errorf("Summary not deterministic:\n%q\n%q", first.Text, second.Text)
	}
}

func TestTopCount(t *testing.T) {
	cases := []struct {
		n, max, want int
	}{
		{10, 5, 3},  // ceil(3.0)
		{1, 5, 1},   // floor of 1
		{20, 5, 5},  // capped at max
		{2, 5, 1},   // ceil(0.6)
		{4, 5, 2},   // ceil(1.2)
	}
	for _, c := range cases {
		if got := topCount(c.n, c.max); got != c.want {
			t.Errorf("topCount(%d, %d) = %d, want %d", c.n, c.max, got, c.want)
		}
	}
}

func TestDetectDocumentType(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"terms of employment for the new hire", "an employment agreement"},
		{"this service agreement covers consulting", "a service agreement"},
		{"the lease begins on the first of the month", "a lease agreement"},
		{"a mutual non-disclosure arrangement", "a confidentiality agreement"},
		{"notes about the weather", "a legal document"},
	}
	for _, c := range cases {
		if got := DetectDocumentType(c.text); got != c.want {
			t.Errorf("DetectDocumentType(%q) = %q, want %q", c.text, got, c.want)
		}
	}
}

func TestDetectDocumentType_EmploymentBeforeService(t *testing.T) {
	// Both employment and service+agreement terms present; employment
	// is checked first
	got := DetectDocumentType("employment service agreement for the contractor")
	if got != "an employment agreement" {
		t.Errorf("Expected ordered detection to pick employment, got %q", got)
	}
}
