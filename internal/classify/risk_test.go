package classify

import (
	"testing"

	"github.com/clauselens/clauselens/internal/model"
)

func TestClassifyRisk_HighTier(t *testing.T) {
	match, ok := ClassifyRisk("The contractor assumes unlimited liability for all damages arising from performance")
	if !ok {
		t.Fatal("Expected a match for unlimited liability text")
	}
	if match.RiskLevel != model.RiskHigh {
		t.Errorf("Expected high risk, got %s", match.RiskLevel)
	}
	if match.Type != model.TypeRisk {
		t.Errorf("Expected risk type, got %s", match.Type)
	}
	if match.Category != model.CategoryLiability {
		t.Errorf("Expected liability category, got %s", match.Category)
	}
	if match.Pattern != "high:unlimited_liability" {
		t.Errorf("Expected pattern high:unlimited_liability, got %q", match.Pattern)
	}
}

func TestClassifyRisk_HighOutranksMedium(t *testing.T) {
	// Text matching both a high pattern (penalty) and a medium pattern
	// (limitation of liability): the high tier must win
	match, ok := ClassifyRisk("Any penalty remains payable despite the limitation of liability stated above")
	if !ok {
		t.Fatal("Expected a match")
	}
	if match.RiskLevel != model.RiskHigh {
		t.Errorf("Expected high tier to win, got %s (%s)", match.RiskLevel, match.Pattern)
	}
}

func TestClassifyRisk_PositiveOutranksLow(t *testing.T) {
	// "warrants that" (positive) plus "good faith" (low): favorable
	// language must not be downgraded to boilerplate
	match, ok := ClassifyRisk("The vendor warrants that the services will be performed in good faith")
	if !ok {
		t.Fatal("Expected a match")
	}
	if match.RiskLevel != model.RiskPositive {
		t.Errorf("Expected positive risk, got %s (%s)", match.RiskLevel, match.Pattern)
	}
	if match.Type != model.TypePositive {
		t.Errorf("Expected positive type, got %s", match.Type)
	}
}

func TestClassifyRisk_MediumTier(t *testing.T) {
	match, ok := ClassifyRisk("This agreement is governed by the laws of the State of Delaware")
	if !ok {
		t.Fatal("Expected a match for governing law text")
	}
	if match.RiskLevel != model.RiskMedium {
		t.Errorf("Expected medium risk, got %s", match.RiskLevel)
	}
	if match.Category != model.CategoryGoverningLaw {
		t.Errorf("Expected governing_law category, got %s", match.Category)
	}
}

func TestClassifyRisk_ImportantTermsFallback(t *testing.T) {
	match, ok := ClassifyRisk("The parties intend to cooperate throughout the engagement")
	if !ok {
		t.Fatal("Expected the important-terms fallback to match")
	}
	if match.RiskLevel != model.RiskLow {
		t.Errorf("Expected low risk from fallback, got %s", match.RiskLevel)
	}
	if match.Type != model.TypeNeutral {
		t.Errorf("Expected neutral type from fallback, got %s", match.Type)
	}
	if match.Category != model.CategoryGeneral {
		t.Errorf("Expected general category from fallback, got %s", match.Category)
	}
	if match.Pattern != "fallback:important_terms" {
		t.Errorf("Expected fallback pattern, got %q", match.Pattern)
	}
}

func TestClassifyRisk_NoMatch(t *testing.T) {
	if _, ok := ClassifyRisk("Bananas are yellow and taste wonderful in the morning"); ok {
		t.Error("Expected no match for non-legal text")
	}
}

func TestClassifyRisk_Deterministic(t *testing.T) {
	text := "Either side may demand binding arbitration of any dispute"

	first, ok1 := ClassifyRisk(text)
	second, ok2 := ClassifyRisk(text)

	if ok1 != ok2 || first != second {
		t.Errorf("Classification not deterministic: %+v vs %+v", first, second)
	}
}

func TestClassifyRisk_CaseInsensitive(t *testing.T) {
	lower, ok1 := ClassifyRisk("liquidated damages of $10,000 apply")
	upper, ok2 := ClassifyRisk("LIQUIDATED DAMAGES OF $10,000 APPLY")

	if !ok1 || !ok2 {
		t.Fatal("Expected both casings to match")
	}
	if lower.Pattern != upper.Pattern {
		t.Errorf("Case changed the matched pattern: %q vs %q", lower.Pattern, upper.Pattern)
	}
}
