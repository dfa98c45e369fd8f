package summarize

import (
	"math"
	"sort"
	"strings"

	"github.com/clauselens/clauselens/internal/model"
	"github.com/clauselens/clauselens/internal/segment"
)

// legalKeywords drive sentence scoring and document-type detection
var legalKeywords = []string{
	"agreement", "contract", "party", "parties", "terms", "conditions",
	"payment", "liability", "warranty", "termination", "breach",
	"confidentiality", "intellectual property", "indemnification",
	"governing law", "jurisdiction", "dispute", "arbitration",
	"force majeure", "assignment", "modification", "severability",
}

// documentTypes are tried in order; the first whose terms all appear
// wins. Terms within an entry are alternatives except where two terms
// are required together (service agreement).
type documentType struct {
	allOf []string
	anyOf []string
	label string
}

var documentTypes = []documentType{
	{anyOf: []string{"employment"}, label: "an employment agreement"},
	{allOf: []string{"service", "agreement"}, label: "a service agreement"},
	{anyOf: []string{"lease", "rental"}, label: "a lease agreement"},
	{anyOf: []string{"purchase", "sale"}, label: "a purchase agreement"},
	{anyOf: []string{"license", "licensing"}, label: "a licensing agreement"},
	{anyOf: []string{"confidentiality", "non-disclosure"}, label: "a confidentiality agreement"},
	{anyOf: []string{"partnership", "joint venture"}, label: "a partnership agreement"},
}

const unableToSummarize = "Unable to generate a summary: the document contains no sentences long enough to analyze."

// Summarizer produces extractive summaries of legal text
type Summarizer struct {
	maxSentences int
}

// NewSummarizer creates a summarizer. maxSentences caps the selection
// (reference default 5).
func NewSummarizer(maxSentences int) *Summarizer {
	if maxSentences <= 0 {
		maxSentences = 5
	}
	return &Summarizer{maxSentences: maxSentences}
}

// Summarize selects the highest scoring sentences of the text, in
// original document order, and prepends a document-type guess. Input
// below the minimum document length is rejected with ErrInputTooShort
// before any scoring occurs.
func (s *Summarizer) Summarize(text string) (*model.Summary, error) {
	if len(strings.TrimSpace(text)) < model.MinDocumentLength {
		return nil, model.ErrInputTooShort
	}

	originalWords := len(strings.Fields(text))
	sentences := segment.Sentences(text, segment.DefaultMinLength)

	if len(sentences) == 0 {
		return &model.Summary{
			Text:      unableToSummarize,
			KeyPoints: []string{},
			WordCount: originalWords,
			Method:    "extractive",
		}, nil
	}

	selected := selectTop(sentences, topCount(len(sentences), s.maxSentences))

	summary := strings.Join(segment.Texts(selected), ". ")

	lower := strings.ToLower(text)
	if containsAnyKeyword(lower) {
		summary = "This appears to be " + DetectDocumentType(text) + ". " + summary
	}
	if !strings.HasSuffix(summary, ".") {
		summary += "."
	}

	summaryWords := len(strings.Fields(summary))
	ratio := 0.0
	if originalWords > 0 {
		ratio = float64(summaryWords) / float64(originalWords)
	}

	return &model.Summary{
		Text:             summary,
		KeyPoints:        keyPoints(summary),
		WordCount:        originalWords,
		CompressionRatio: ratio,
		Method:           "extractive",
	}, nil
}

// topCount is min(max, ceil(0.3 * n))
func topCount(n, max int) int {
	count := int(math.Ceil(0.3 * float64(n)))
	if count > max {
		count = max
	}
	if count < 1 {
		count = 1
	}
	return count
}

// selectTop picks the k highest scoring sentences and restores their
// original document order. Ties keep earlier sentences first.
func selectTop(sentences []model.TextUnit, k int) []model.TextUnit {
	type scored struct {
		unit  model.TextUnit
		score int
	}

	ranked := make([]scored, len(sentences))
	for i, unit := range sentences {
		ranked[i] = scored{unit, scoreSentence(unit, len(sentences))}
	}

	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].score > ranked[b].score
	})

	if k > len(ranked) {
		k = len(ranked)
	}
	top := ranked[:k]

	sort.Slice(top, func(a, b int) bool {
		return top[a].unit.Index < top[b].unit.Index
	})

	out := make([]model.TextUnit, k)
	for i, r := range top {
		out[i] = r.unit
	}
	return out
}

// scoreSentence: +2 per legal keyword occurrence, +3 for the first or
// last sentence of the document, +1 for lengths strictly between 50
// and 200 characters.
func scoreSentence(unit model.TextUnit, total int) int {
	lower := strings.ToLower(unit.Text)

	score := 0
	for _, kw := range legalKeywords {
		score += 2 * strings.Count(lower, kw)
	}

	if unit.Index == 0 || unit.Index == total-1 {
		score += 3
	}

	if n := len(unit.Text); n > 50 && n < 200 {
		score++
	}

	return score
}

// DetectDocumentType resolves the document-type label by a fixed
// ordered set of substring checks over the lowercased text.
func DetectDocumentType(text string) string {
	lower := strings.ToLower(text)

	for _, dt := range documentTypes {
		if len(dt.allOf) > 0 {
			if containsAll(lower, dt.allOf) {
				return dt.label
			}
			continue
		}
		for _, term := range dt.anyOf {
			if strings.Contains(lower, term) {
				return dt.label
			}
		}
	}
	return "a legal document"
}

// keyPoints takes the first 3 non-empty sentences of the summary
func keyPoints(summary string) []string {
	points := []string{}
	for _, part := range strings.Split(summary, ".") {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		points = append(points, trimmed)
		if len(points) == 3 {
			break
		}
	}
	return points
}

func containsAnyKeyword(lower string) bool {
	for _, kw := range legalKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func containsAll(lower string, terms []string) bool {
	for _, term := range terms {
		if !strings.Contains(lower, term) {
			return false
		}
	}
	return true
}
