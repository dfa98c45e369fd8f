package model

// Category is the legal category assigned to a clause
type Category string

const (
	CategoryFinancial         Category = "financial"
	CategoryTermination       Category = "termination"
	CategoryLiability         Category = "liability"
	CategoryIntellectualProp  Category = "intellectual_property"
	CategoryConfidentiality   Category = "confidentiality"
	CategoryObligation        Category = "obligation"
	CategoryWarranty          Category = "warranty"
	CategoryDisputeResolution Category = "dispute_resolution"
	CategoryGoverningLaw      Category = "governing_law"
	CategoryBenefit           Category = "benefit"
	CategoryGeneral           Category = "general"
)

// RiskLevel indicates how unfavorable a clause is judged to be
type RiskLevel string

const (
	RiskHigh     RiskLevel = "high"
	RiskMedium   RiskLevel = "medium"
	RiskLow      RiskLevel = "low"
	RiskPositive RiskLevel = "positive"
)

// ClauseType distinguishes risk, neutral, and favorable clauses
type ClauseType string

const (
	TypeRisk     ClauseType = "risk"
	TypeNeutral  ClauseType = "neutral"
	TypePositive ClauseType = "positive"
)

// TextUnit is a contiguous span of source text (a sentence or a clause block).
// Offsets are monotonic and non-overlapping within one segmentation pass.
type TextUnit struct {
	Text  string `json:"text"`  // Trimmed text
	Raw   string `json:"-"`     // Untrimmed span as found in the source
	Start int    `json:"start"` // Byte offset of Raw in the source
	End   int    `json:"end"`   // Byte offset just past Raw
	Index int    `json:"index"` // Ordinal position, 0-based
}

// Clause is a classified block of document text.
// Never mutated after creation by the classifier.
type Clause struct {
	ID          string     `json:"id"`                // Stable reference, "clause_1", "clause_2", ...
	Text        string     `json:"text"`              // The clause block text
	Category    Category   `json:"category"`          // Legal category
	RiskLevel   RiskLevel  `json:"risk_level"`        // high, medium, low, positive
	Type        ClauseType `json:"type"`              // risk, neutral, positive
	Explanation string     `json:"explanation"`       // Human-readable rationale
	Pattern     string     `json:"pattern,omitempty"` // Which rule matched (e.g., "high:unlimited_liability")
	Index       int        `json:"index"`             // 0-based position in the clause sequence
}

// RelationType classifies a directed link between two clauses
type RelationType string

const (
	RelationSequential  RelationType = "sequential"
	RelationConditional RelationType = "conditional"
	RelationReference   RelationType = "reference"
	RelationConflict    RelationType = "conflict"
	RelationCategory    RelationType = "category"
	RelationDependency  RelationType = "dependency"
)

// Relationship is a typed directed link between two clauses,
// used to render the clause-flow visualization graph.
type Relationship struct {
	From        string       `json:"from"` // Clause ID
	To          string       `json:"to"`   // Clause ID
	Type        RelationType `json:"type"`
	Description string       `json:"description"`
}
