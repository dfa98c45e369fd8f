package classify

import (
	"strings"

	"github.com/clauselens/clauselens/internal/extract"
	"github.com/clauselens/clauselens/internal/model"
)

// generalTopic is one whole-document fallback check
type generalTopic struct {
	terms       []string // every term must appear in the lowercased document
	category    model.Category
	text        string
	explanation string
}

var generalTopics = []generalTopic{
	{
		terms:       []string{"employment"},
		category:    model.CategoryObligation,
		text:        "This document contains employment-related terms governing the working relationship.",
		explanation: "Employment documents define duties, compensation, and conditions of work. Review position descriptions, working hours, and grounds for discipline or dismissal.",
	},
	{
		terms:       []string{"payment", "terms"},
		category:    model.CategoryFinancial,
		text:        "This document contains payment terms describing financial obligations between the parties.",
		explanation: "Payment terms set how much is owed, when it is due, and what happens on late payment. Verify amounts, schedules, and any interest or fees.",
	},
	{
		terms:       []string{"termination"},
		category:    model.CategoryTermination,
		text:        "This document contains termination provisions describing how the arrangement can end.",
		explanation: "Termination provisions control exit from the agreement. Check notice periods, permitted grounds, and obligations that survive the end of the relationship.",
	},
}

// GeneralAnalysis is the fallback when no clause matched any risk
// pattern: independent substring checks against the full lowercased
// text, emitting at most one synthetic clause per matched topic. This
// guarantees analysis output is never empty for non-trivial legal text.
func GeneralAnalysis(text string) []model.Clause {
	lower := strings.ToLower(text)

	var clauses []model.Clause
	for _, topic := range generalTopics {
		if !containsAll(lower, topic.terms) {
			continue
		}
		clauses = append(clauses, model.Clause{
			ID:          extract.ClauseID(len(clauses)),
			Text:        topic.text,
			Category:    topic.category,
			RiskLevel:   model.RiskMedium,
			Type:        model.TypeNeutral,
			Explanation: topic.explanation,
			Pattern:     "general:" + strings.Join(topic.terms, "+"),
			Index:       len(clauses),
		})
	}

	return clauses
}
