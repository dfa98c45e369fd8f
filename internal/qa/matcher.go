package qa

import (
	"sort"
	"strings"

	"github.com/clauselens/clauselens/internal/model"
	"github.com/clauselens/clauselens/internal/segment"
)

const notFoundAnswer = "I couldn't find information about that in the document. Try rephrasing the question or asking about specific terms such as payment, termination, or liability."

const riskCaution = "Review these provisions carefully, ideally with legal counsel, before accepting them."

// topicHandler routes one family of questions. Triggers are tested
// against the lowercased question; scanTerms against each lowercased
// context sentence. The first handler with any trigger present is
// used; if it finds no qualifying sentences the matcher falls through
// to generic keyword-overlap ranking.
type topicHandler struct {
	topic     string
	triggers  []string
	scanTerms []string
	leadIn    string
	maxHits   int
	caution   string
}

// handlers in fixed priority order
var handlers = []topicHandler{
	{
		topic:     "definitions",
		triggers:  []string{"what is", "what are", "define", "explain"},
		scanTerms: []string{"means", "defined as", "refers to", "shall mean"},
		leadIn:    "The document provides these definitions: ",
		maxHits:   3,
	},
	{
		topic:     "parties",
		triggers:  []string{"who is", "who are", "which party", "parties"},
		scanTerms: []string{"party", "client", "contractor", "company", "agreement between"},
		leadIn:    "Regarding the parties involved: ",
		maxHits:   2,
	},
	{
		topic:     "timing",
		triggers:  []string{"when", "what date", "how long", "duration"},
		scanTerms: []string{"days", "months", "years", "date", "within", "duration", "term"},
		leadIn:    "On timing and deadlines, the document states: ",
		maxHits:   3,
	},
	{
		topic:     "financial",
		triggers:  []string{"how much", "cost", "price", "fee", "payment"},
		scanTerms: []string{"$", "payment", "fee", "cost", "price", "compensation", "salary", "rate"},
		leadIn:    "On financial terms, the document states: ",
		maxHits:   3,
	},
	{
		topic:     "risk",
		triggers:  []string{"risk", "danger", "liability", "penalty"},
		scanTerms: []string{"liability", "risk", "penalty", "damages", "indemnif", "waive", "disclaim"},
		leadIn:    "These provisions relate to risk and liability: ",
		maxHits:   3,
		caution:   riskCaution,
	},
	{
		topic:     "termination",
		triggers:  []string{"terminate", "end", "cancel", "exit"},
		scanTerms: []string{"terminat", "end", "cancel", "expire", "breach"},
		leadIn:    "On ending the agreement, the document states: ",
		maxHits:   3,
	},
	{
		topic:     "obligations",
		triggers:  []string{"obligation", "responsibility", "duty", "must"},
		scanTerms: []string{"shall", "must", "required", "obligation", "responsible", "duty"},
		leadIn:    "These obligations appear in the document: ",
		maxHits:   3,
	},
	{
		topic:     "warranties",
		triggers:  []string{"warranty", "guarantee", "protection"},
		scanTerms: []string{"warrant", "guarantee", "represent", "assure", "promise"},
		leadIn:    "On warranties and guarantees, the document states: ",
		maxHits:   3,
	},
}

// stopWords are dropped from questions before keyword-overlap ranking
var stopWords = map[string]bool{
	"the": true, "and": true, "for": true, "are": true, "but": true,
	"not": true, "you": true, "all": true, "can": true, "this": true,
	"that": true, "with": true, "from": true, "what": true, "when": true,
	"where": true, "which": true, "will": true, "would": true, "there": true,
	"their": true, "about": true, "does": true, "have": true, "has": true,
	"was": true, "were": true, "been": true, "being": true, "how": true,
	"much": true, "many": true, "any": true, "who": true, "whom": true,
}

// Matcher answers free-text questions against one document
type Matcher struct{}

// NewMatcher creates a question matcher
func NewMatcher() *Matcher {
	return &Matcher{}
}

// Answer routes the question to the first topic handler whose trigger
// appears in it. A handler that finds no qualifying context sentences
// falls through to generic keyword-overlap ranking, as does a question
// matching no topic at all. Stateless: recomputed per question.
func (m *Matcher) Answer(question, contextText string) model.ChatAnswer {
	lowerQ := strings.ToLower(question)
	sentences := segment.Sentences(contextText, segment.RelaxedMinLength)

	for _, h := range handlers {
		if !containsAny(lowerQ, h.triggers) {
			continue
		}
		hits := scanSentences(sentences, h.scanTerms, h.maxHits)
		if len(hits) == 0 {
			break // fall through to generic ranking
		}
		answer := h.leadIn + strings.Join(hits, ". ") + "."
		if h.caution != "" {
			answer += " " + h.caution
		}
		return model.ChatAnswer{
			Question: question,
			Topic:    h.topic,
			Answer:   answer,
		}
	}

	return model.ChatAnswer{
		Question: question,
		Answer:   keywordOverlap(lowerQ, sentences),
	}
}

// scanSentences returns up to max sentences containing any scan term,
// in document order.
func scanSentences(sentences []model.TextUnit, terms []string, max int) []string {
	var hits []string
	for _, s := range sentences {
		if containsAny(strings.ToLower(s.Text), terms) {
			hits = append(hits, s.Text)
			if len(hits) == max {
				break
			}
		}
	}
	return hits
}

// keywordOverlap is the generic fallback: tokenize the question, drop
// stop-words and short tokens, rank every sentence by how many
// question tokens it contains, and return the top 3 with score > 0.
func keywordOverlap(lowerQuestion string, sentences []model.TextUnit) string {
	var tokens []string
	for _, tok := range strings.Fields(lowerQuestion) {
		tok = strings.Trim(tok, ".,;:!?\"'()")
		if len(tok) <= 3 || stopWords[tok] {
			continue
		}
		tokens = append(tokens, tok)
	}

	type ranked struct {
		text  string
		score int
		index int
	}

	var scored []ranked
	for _, s := range sentences {
		lower := strings.ToLower(s.Text)
		count := 0
		for _, tok := range tokens {
			if strings.Contains(lower, tok) {
				count++
			}
		}
		if count > 0 {
			scored = append(scored, ranked{s.Text, count, s.Index})
		}
	}

	if len(scored) == 0 {
		return notFoundAnswer
	}

	sort.SliceStable(scored, func(a, b int) bool {
		return scored[a].score > scored[b].score
	})
	if len(scored) > 3 {
		scored = scored[:3]
	}

	parts := make([]string, len(scored))
	for i, r := range scored {
		parts[i] = r.text
	}
	return "Based on the document: " + strings.Join(parts, ". ") + "."
}

func containsAny(lower string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}
