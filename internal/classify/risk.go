package classify

import (
	"regexp"

	"github.com/clauselens/clauselens/internal/model"
)

// riskPattern is one (predicate, result) entry of the ordered rule
// tables. Evaluation is a linear scan with early return, so pattern
// order inside a tier is part of the contract.
type riskPattern struct {
	name     string
	re       *regexp.Regexp
	category model.Category
}

// The four risk tiers, tested in this order: high, medium, positive,
// low. The first tier containing a matching pattern decides the
// clause; no further tiers are tried. Positive deliberately outranks
// low so favorable language is not downgraded to generic boilerplate.
var (
	highPatterns = []riskPattern{
		{"unlimited_liability", regexp.MustCompile(`(?i)unlimited\s+liability`), model.CategoryLiability},
		{"indemnify_all_claims", regexp.MustCompile(`(?i)indemnif\w*[^.]{0,60}\ball\s+claims`), model.CategoryLiability},
		{"waive_all_rights", regexp.MustCompile(`(?i)waives?\s+(?:any\s+and\s+)?all\s+rights`), model.CategoryLiability},
		{"exclusive_remedy", regexp.MustCompile(`(?i)exclusive\s+remedy`), model.CategoryLiability},
		{"no_warranty", regexp.MustCompile(`(?i)no\s+warrant(?:y|ies)|without\s+(?:any\s+)?warrant`), model.CategoryWarranty},
		{"as_is_basis", regexp.MustCompile(`(?i)\bas[\s-]is\b`), model.CategoryWarranty},
		{"liquidated_damages", regexp.MustCompile(`(?i)liquidated\s+damages`), model.CategoryFinancial},
		{"penalty", regexp.MustCompile(`(?i)penalt(?:y|ies)`), model.CategoryFinancial},
		{"forfeit", regexp.MustCompile(`(?i)forfeit`), model.CategoryFinancial},
		{"immediate_termination", regexp.MustCompile(`(?i)immediate(?:ly)?\s+terminat`), model.CategoryTermination},
		{"sole_discretion", regexp.MustCompile(`(?i)sole\s+discretion`), model.CategoryObligation},
		{"irrevocable", regexp.MustCompile(`(?i)irrevocabl`), model.CategoryObligation},
		{"personal_guarantee", regexp.MustCompile(`(?i)personal\s+guarantee`), model.CategoryFinancial},
	}

	mediumPatterns = []riskPattern{
		{"limitation_of_liability", regexp.MustCompile(`(?i)limitation\s+of\s+liability|liability\s+(?:is\s+|shall\s+be\s+)?limited`), model.CategoryLiability},
		{"consequential_damages", regexp.MustCompile(`(?i)consequential\s+damages`), model.CategoryLiability},
		{"material_breach", regexp.MustCompile(`(?i)material\s+breach`), model.CategoryTermination},
		{"cure_period", regexp.MustCompile(`(?i)cure\s+period|period\s+to\s+cure`), model.CategoryTermination},
		{"binding_arbitration", regexp.MustCompile(`(?i)binding\s+arbitration`), model.CategoryDisputeResolution},
		{"governing_law", regexp.MustCompile(`(?i)governing\s+law|governed\s+by\s+the\s+laws?`), model.CategoryGoverningLaw},
		{"assignment_consent", regexp.MustCompile(`(?i)assign\w*[^.]{0,60}consent|consent[^.]{0,60}assign`), model.CategoryObligation},
		{"modification_in_writing", regexp.MustCompile(`(?i)(?:modif|amend)\w*[^.]{0,60}in\s+writing`), model.CategoryObligation},
		{"confidentiality", regexp.MustCompile(`(?i)confidential`), model.CategoryConfidentiality},
		{"non_compete", regexp.MustCompile(`(?i)non[\s-]?compete|not\s+to\s+compete`), model.CategoryObligation},
		{"intellectual_property", regexp.MustCompile(`(?i)intellectual\s+property`), model.CategoryIntellectualProp},
	}

	positivePatterns = []riskPattern{
		{"warranty_provided", regexp.MustCompile(`(?i)warrants?\s+that|warranty\s+(?:is\s+)?provided`), model.CategoryWarranty},
		{"guarantee_quality", regexp.MustCompile(`(?i)guarantees?[^.]{0,40}quality`), model.CategoryWarranty},
		{"right_to_cure", regexp.MustCompile(`(?i)right\s+to\s+cure`), model.CategoryBenefit},
		{"notice_period", regexp.MustCompile(`(?i)notice\s+period|\d+\s+days'?\s+(?:prior\s+|written\s+)?notice`), model.CategoryBenefit},
		{"mutual_termination", regexp.MustCompile(`(?i)mutual\s+termination|terminat\w*[^.]{0,40}by\s+mutual`), model.CategoryTermination},
		{"fair_market_value", regexp.MustCompile(`(?i)fair\s+market\s+value`), model.CategoryFinancial},
		{"reasonable_compensation", regexp.MustCompile(`(?i)reasonable\s+compensation`), model.CategoryFinancial},
		{"protection_of_rights", regexp.MustCompile(`(?i)protect\w*[^.]{0,40}rights`), model.CategoryBenefit},
	}

	lowPatterns = []riskPattern{
		{"reasonable_efforts", regexp.MustCompile(`(?i)reasonable\s+(?:best\s+)?efforts`), model.CategoryObligation},
		{"good_faith", regexp.MustCompile(`(?i)good\s+faith`), model.CategoryObligation},
		{"mutual_agreement", regexp.MustCompile(`(?i)mutual\s+agreement|mutually\s+agree`), model.CategoryGeneral},
		{"written_notice", regexp.MustCompile(`(?i)written\s+notice`), model.CategoryObligation},
		{"business_days", regexp.MustCompile(`(?i)business\s+days`), model.CategoryGeneral},
		{"standard_terms", regexp.MustCompile(`(?i)standard\s+terms`), model.CategoryGeneral},
	}

	// importantTerms is the last-chance keyword fallback. A clause with
	// any of these is still emitted (low risk, neutral) rather than
	// silently dropped.
	importantTerms = regexp.MustCompile(`(?i)\b(?:shall|must|obligation|liability|agreement|party|parties|terms)\b`)
)

// Match describes the outcome of the risk-tier pass for one text unit
type Match struct {
	RiskLevel model.RiskLevel
	Type      model.ClauseType
	Category  model.Category
	Pattern   string // e.g. "high:unlimited_liability"
}

// ClassifyRisk applies the ordered risk pattern tiers to one text
// unit. The boolean is false when no tier matched, in which case the
// unit is not emitted as a clause for this pass (the caller may fall
// back to whole-document analysis).
//
// Deterministic: same input text always yields the same match.
func ClassifyRisk(text string) (Match, bool) {
	tiers := []struct {
		name     string
		risk     model.RiskLevel
		ctype    model.ClauseType
		patterns []riskPattern
	}{
		{"high", model.RiskHigh, model.TypeRisk, highPatterns},
		{"medium", model.RiskMedium, model.TypeRisk, mediumPatterns},
		{"positive", model.RiskPositive, model.TypePositive, positivePatterns},
		{"low", model.RiskLow, model.TypeNeutral, lowPatterns},
	}

	for _, tier := range tiers {
		for _, p := range tier.patterns {
			if p.re.MatchString(text) {
				return Match{
					RiskLevel: tier.risk,
					Type:      tier.ctype,
					Category:  p.category,
					Pattern:   tier.name + ":" + p.name,
				}, true
			}
		}
	}

	if importantTerms.MatchString(text) {
		return Match{
			RiskLevel: model.RiskLow,
			Type:      model.TypeNeutral,
			Category:  model.CategoryGeneral,
			Pattern:   "fallback:important_terms",
		}, true
	}

	return Match{}, false
}
