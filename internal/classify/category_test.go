package classify

import (
	"strings"
	"testing"

	"github.com/clauselens/clauselens/internal/model"
)

func TestClassifyCategory_PriorityOrder(t *testing.T) {
	// Matches both financial (payment, fee) and termination (terminat)
	// terms; financial has higher priority
	category, _ := ClassifyCategory("Payment of the termination fee is due immediately")
	if category != model.CategoryFinancial {
		t.Errorf("Expected financial to win on priority, got %s", category)
	}
}

func TestClassifyCategory_LiabilityDefaultsHigh(t *testing.T) {
	category, risk := ClassifyCategory("Each side will indemnify the other against third party damages")
	if category != model.CategoryLiability {
		t.Errorf("Expected liability category, got %s", category)
	}
	if risk != model.RiskHigh {
		t.Errorf("Expected liability to default to high risk, got %s", risk)
	}
}

func TestClassifyCategory_HighRiskOverride(t *testing.T) {
	// No category rule matches, so the default would be general/low,
	// but the "as is" override forces high
	category, risk := ClassifyCategory("The property is delivered as is")
	if category != model.CategoryGeneral {
		t.Errorf("Expected general category, got %s", category)
	}
	if risk != model.RiskHigh {
		t.Errorf("Expected override to force high risk, got %s", risk)
	}
}

func TestClassifyCategory_GeneralFallback(t *testing.T) {
	category, risk := ClassifyCategory("Bananas are yellow and taste wonderful")
	if category != model.CategoryGeneral {
		t.Errorf("Expected general fallback, got %s", category)
	}
	if risk != model.RiskLow {
		t.Errorf("Expected low risk for general, got %s", risk)
	}
}

func TestClassifyCategory_BenefitIsPositive(t *testing.T) {
	category, risk := ClassifyCategory("The employee is entitled to additional vacation after one year")
	if category != model.CategoryBenefit {
		t.Errorf("Expected benefit category, got %s", category)
	}
	if risk != model.RiskPositive {
		t.Errorf("Expected positive risk for benefit, got %s", risk)
	}
}

func TestExplain_SpecificRule(t *testing.T) {
	explanation := Explain("The contractor accepts unlimited liability for any loss", model.RiskHigh)
	if !strings.Contains(explanation, "unlimited financial liability") {
		t.Errorf("Expected the unlimited-liability explanation, got %q", explanation)
	}
}

func TestExplain_AllTermsMustMatch(t *testing.T) {
	// "unlimited" alone must not trigger the unlimited+liability rule
	explanation := Explain("Unlimited data storage is included in the plan", model.RiskLow)
	if strings.Contains(explanation, "unlimited financial liability") {
		t.Errorf("Rule fired on a partial keyword match: %q", explanation)
	}
}

func TestExplain_GenericFallbackByRiskLevel(t *testing.T) {
	high := Explain("Some unusual text matching no rule", model.RiskHigh)
	positive := Explain("Some unusual text matching no rule", model.RiskPositive)

	if high == positive {
		t.Error("Expected risk level to select different generic explanations")
	}
	if !strings.Contains(high, "high risk") {
		t.Errorf("Expected high risk fallback wording, got %q", high)
	}
	if !strings.Contains(positive, "in your favor") {
		t.Errorf("Expected positive fallback wording, got %q", positive)
	}
}

func TestExplain_NeverEmpty(t *testing.T) {
	for _, risk := range []model.RiskLevel{model.RiskHigh, model.RiskMedium, model.RiskLow, model.RiskPositive} {
		if Explain("xyz", risk) == "" {
			t.Errorf("Empty explanation for risk level %s", risk)
		}
	}
}

func TestGeneralAnalysis_EmitsTopics(t *testing.T) {
	text := "This employment relationship includes payment terms and termination procedures for both sides"

	clauses := GeneralAnalysis(text)

	if len(clauses) != 3 {
		t.Fatalf("Expected 3 topic clauses, got %d", len(clauses))
	}
	if clauses[0].ID != "clause_1" || clauses[1].ID != "clause_2" || clauses[2].ID != "clause_3" {
		t.Errorf("Expected sequential clause IDs, got %s, %s, %s", clauses[0].ID, clauses[1].ID, clauses[2].ID)
	}
	for _, c := range clauses {
		if c.RiskLevel != model.RiskMedium || c.Type != model.TypeNeutral {
			t.Errorf("Expected medium/neutral synthetic clauses, got %s/%s", c.RiskLevel, c.Type)
		}
		if !strings.HasPrefix(c.Pattern, "general:") {
			t.Errorf("Expected general: pattern prefix, got %q", c.Pattern)
		}
	}
}

func TestGeneralAnalysis_NoTopics(t *testing.T) {
	if clauses := GeneralAnalysis("A short note about the weather"); len(clauses) != 0 {
		t.Errorf("Expected no synthetic clauses, got %d", len(clauses))
	}
}
