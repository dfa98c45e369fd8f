package relation

import (
	"regexp"
	"strings"

	"github.com/clauselens/clauselens/internal/model"
)

// Word-boundary matchers for the short conditional tokens; plain
// substring checks would fire on words like "notify" or "amendment".
var (
	condAntecedent = regexp.MustCompile(`(?i)\bif\b|provided\s+that|subject\s+to`)
	condConsequent = regexp.MustCompile(`(?i)\bthen\b|\bshall\b|\bmust\b`)
	referenceTerms = regexp.MustCompile(`(?i)\bsection\b|\bparagraph\b|\bclause\b`)
)

const maxNodeLabel = 100

// Builder derives the clause-relationship graph
type Builder struct{}

// NewBuilder creates a relationship builder
func NewBuilder() *Builder {
	return &Builder{}
}

// Build constructs the visualization graph from an ordered clause
// list: one node per clause plus the pairwise relationships and
// summary statistics.
func (b *Builder) Build(clauses []model.Clause) *model.Graph {
	graph := &model.Graph{
		Nodes:         make([]model.GraphNode, 0, len(clauses)),
		Relationships: b.Relationships(clauses),
		Stats:         buildStats(clauses),
	}

	for _, c := range clauses {
		graph.Nodes = append(graph.Nodes, model.GraphNode{
			ID:        c.ID,
			Label:     truncateLabel(c.Text),
			Category:  c.Category,
			RiskLevel: c.RiskLevel,
		})
	}

	return graph
}

// Relationships tests every pair (i, j), i<j, against the rules in
// fixed priority order and emits at most one relationship per pair
// (first rule that matches wins):
//
//	sequential, conditional, reference, conflict, category, dependency.
func (b *Builder) Relationships(clauses []model.Clause) []model.Relationship {
	var rels []model.Relationship

	for i := 0; i < len(clauses); i++ {
		for j := i + 1; j < len(clauses); j++ {
			if rel, ok := relate(clauses[i], clauses[j]); ok {
				rels = append(rels, rel)
			}
		}
	}

	return rels
}

func relate(from, to model.Clause) (model.Relationship, bool) {
	switch {
	case to.Index-from.Index == 1:
		return rel(from, to, model.RelationSequential, "Follows directly in the document"), true

	case condAntecedent.MatchString(from.Text) && condConsequent.MatchString(to.Text):
		return rel(from, to, model.RelationConditional, "Condition leading to a required outcome"), true

	case referenceTerms.MatchString(from.Text):
		return rel(from, to, model.RelationReference, "References document structure"), true

	case (from.RiskLevel == model.RiskHigh && to.RiskLevel == model.RiskPositive) ||
		(from.RiskLevel == model.RiskPositive && to.RiskLevel == model.RiskHigh):
		return rel(from, to, model.RelationConflict, "High-risk clause conflicts with a favorable clause"), true

	case from.Category != model.CategoryGeneral && from.Category == to.Category:
		return rel(from, to, model.RelationCategory, "Shares the "+string(from.Category)+" category"), true

	case from.Category == model.CategoryObligation && to.Category == model.CategoryFinancial:
		return rel(from, to, model.RelationDependency, "Obligation with financial consequences"), true

	case from.Category == model.CategoryTermination && to.Category == model.CategoryLiability:
		return rel(from, to, model.RelationDependency, "Termination affecting liability exposure"), true
	}

	return model.Relationship{}, false
}

func rel(from, to model.Clause, rt model.RelationType, desc string) model.Relationship {
	return model.Relationship{
		From:        from.ID,
		To:          to.ID,
		Type:        rt,
		Description: desc,
	}
}

// Connections returns the from→to adjacency list for each clause ID.
// Links are directional: only the source clause records the edge.
func Connections(rels []model.Relationship) map[string][]string {
	adj := make(map[string][]string)
	for _, r := range rels {
		adj[r.From] = append(adj[r.From], r.To)
	}
	return adj
}

func buildStats(clauses []model.Clause) model.GraphStats {
	stats := model.GraphStats{
		TotalClauses: len(clauses),
		RiskCounts:   make(map[model.RiskLevel]int),
	}

	seen := make(map[model.Category]bool)
	for _, c := range clauses {
		stats.RiskCounts[c.RiskLevel]++
		if !seen[c.Category] {
			seen[c.Category] = true
			stats.Categories = append(stats.Categories, c.Category)
		}
	}

	return stats
}

func truncateLabel(text string) string {
	if len(text) <= maxNodeLabel {
		return text
	}
	return strings.TrimSpace(text[:maxNodeLabel]) + "..."
}
