package classify

import (
	"strings"

	"github.com/clauselens/clauselens/internal/model"
)

// categoryRule is one substring rule of the category/flow pass.
// Priority is the slice order; first rule with any matching term wins.
type categoryRule struct {
	category model.Category
	terms    []string
}

// categoryRules drive the visualization view of a document. This pass
// is independent of the risk-tier pass in risk.go: the two tables look
// similar but have different precedence orders and category sets, and
// they can disagree on risk for the same text. They are deliberately
// kept separate rather than merged.
var categoryRules = []categoryRule{
	{model.CategoryFinancial, []string{"payment", "fee", "cost", "price", "compensation", "salary", "$", "invoice"}},
	{model.CategoryTermination, []string{"terminat", "expir", "cancel"}},
	{model.CategoryLiability, []string{"liab", "indemnif", "damages", "harmless"}},
	{model.CategoryIntellectualProp, []string{"intellectual property", "copyright", "patent", "trademark"}},
	{model.CategoryConfidentiality, []string{"confidential", "non-disclosure", "nondisclosure", "proprietary"}},
	{model.CategoryObligation, []string{"shall", "must", "obligat", "required", "responsible", "duty"}},
	{model.CategoryWarranty, []string{"warrant", "guarantee", "represent"}},
	{model.CategoryDisputeResolution, []string{"dispute", "arbitrat", "mediat", "litigation"}},
	{model.CategoryGoverningLaw, []string{"governing law", "jurisdiction", "governed by"}},
	{model.CategoryBenefit, []string{"benefit", "entitled", "right to"}},
}

// categoryDefaultRisk maps each category to its default risk level for
// the flow view.
var categoryDefaultRisk = map[model.Category]model.RiskLevel{
	model.CategoryFinancial:         model.RiskMedium,
	model.CategoryTermination:       model.RiskMedium,
	model.CategoryLiability:         model.RiskHigh,
	model.CategoryIntellectualProp:  model.RiskMedium,
	model.CategoryConfidentiality:   model.RiskMedium,
	model.CategoryObligation:        model.RiskMedium,
	model.CategoryWarranty:          model.RiskLow,
	model.CategoryDisputeResolution: model.RiskMedium,
	model.CategoryGoverningLaw:      model.RiskLow,
	model.CategoryBenefit:           model.RiskPositive,
	model.CategoryGeneral:           model.RiskLow,
}

// highRiskOverrides force riskLevel=high regardless of the category's
// default when any of these phrases appears in the lowercased text.
var highRiskOverrides = []string{
	"unlimited liability",
	"personal guarantee",
	"waive all rights",
	"no recourse",
	"as is",
	"without warranty",
	"sole discretion",
	"immediate termination",
	"liquidated damages",
	"penalty",
}

// ClassifyCategory assigns the flow-view category and risk level to
// one text unit: the first substring rule that matches wins, falling
// back to "general", then the high-risk override list is applied on
// top of the category's default risk.
func ClassifyCategory(text string) (model.Category, model.RiskLevel) {
	lower := strings.ToLower(text)

	category := model.CategoryGeneral
	for _, rule := range categoryRules {
		if containsAny(lower, rule.terms) {
			category = rule.category
			break
		}
	}

	risk := categoryDefaultRisk[category]
	for _, phrase := range highRiskOverrides {
		if strings.Contains(lower, phrase) {
			risk = model.RiskHigh
			break
		}
	}

	return category, risk
}

func containsAny(lower string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}
