package classify

import (
	"strings"

	"github.com/clauselens/clauselens/internal/model"
)

// explanationRule maps clause keywords to a canned rationale. Rules
// are tried in order; every term in the rule must be present.
type explanationRule struct {
	terms []string
	text  string
}

var explanationRules = []explanationRule{
	{[]string{"unlimited", "liability"},
		"This clause exposes you to unlimited financial liability. There is no cap on the damages you could be required to pay, which most parties consider unacceptable without negotiation."},
	{[]string{"indemnif"},
		"An indemnification clause requires one party to cover the other's losses or legal costs. Review carefully whose claims are covered and whether the obligation is mutual."},
	{[]string{"waive"},
		"This clause gives up legal rights you would otherwise have. Once waived, these rights generally cannot be recovered, so understand exactly what is being surrendered."},
	{[]string{"liquidated damages"},
		"Liquidated damages fix a penalty amount in advance for a breach. The amount applies regardless of actual harm, which can far exceed real losses."},
	{[]string{"penalty"},
		"A penalty provision imposes a financial punishment for certain conduct or breach. Confirm the trigger conditions and whether the amount is proportionate."},
	{[]string{"sole discretion"},
		"One party may act at its sole discretion here, meaning it can decide without your input or any obligation to be reasonable. This creates an imbalance of control."},
	{[]string{"terminat"},
		"This clause controls how and when the agreement can be ended. Check the notice requirements and what obligations survive termination."},
	{[]string{"confidential"},
		"This confidentiality provision restricts how information may be used or shared. Note its duration and what counts as confidential material."},
	{[]string{"arbitrat"},
		"Disputes under this clause go to arbitration instead of court. Arbitration limits appeal rights and may restrict discovery, but is usually faster."},
	{[]string{"governing law"},
		"This clause selects which jurisdiction's law governs the agreement. The chosen law affects how every other clause will be interpreted and enforced."},
	{[]string{"non-compete"},
		"A non-compete restricts future business or employment activity. Enforceability varies by jurisdiction; check the scope, territory, and duration."},
	{[]string{"warrant"},
		"This clause addresses warranties, the promises made about quality or performance. Disclaimers here shift risk onto the receiving party."},
	{[]string{"intellectual property"},
		"This clause allocates ownership or usage rights in intellectual property. Confirm who owns work product and what licenses are granted."},
	{[]string{"payment"},
		"This clause sets payment obligations, including amounts, timing, or methods. Late-payment consequences commonly attach to these terms."},
}

// genericExplanations keyed by risk level, the final fallback
var genericExplanations = map[model.RiskLevel]string{
	model.RiskHigh:     "This is a high risk clause that significantly favors the other party or creates substantial exposure. Consider negotiating its terms before signing.",
	model.RiskMedium:   "This is a medium risk clause with terms that warrant attention. It is common in commercial agreements but may need adjustment for your situation.",
	model.RiskLow:      "This is a standard clause with typical legal language. It carries low risk but should still be read in the context of the full agreement.",
	model.RiskPositive: "This clause works in your favor, providing protections or rights that benefit you. Favorable terms like this are worth preserving in negotiation.",
}

// Explain returns a one-to-three sentence rationale for a clause given
// its text and assigned risk level. Lookup is by substring-keyword
// priority with a generic risk-level fallback. Deterministic and
// side-effect-free.
func Explain(text string, risk model.RiskLevel) string {
	lower := strings.ToLower(text)

	for _, rule := range explanationRules {
		if containsAll(lower, rule.terms) {
			return rule.text
		}
	}

	if generic, ok := genericExplanations[risk]; ok {
		return generic
	}
	return genericExplanations[model.RiskLow]
}

func containsAll(lower string, terms []string) bool {
	for _, term := range terms {
		if !strings.Contains(lower, term) {
			return false
		}
	}
	return true
}
