package score

import (
	"math"

	"github.com/clauselens/clauselens/internal/model"
)

// defaultScore is returned for an empty clause list: a moderate risk
// assumption for a document nothing could be read out of.
const defaultScore = 30

// Scorer aggregates per-clause risk levels into a document score
type Scorer struct{}

// NewScorer creates a new scorer
func NewScorer() *Scorer {
	return &Scorer{}
}

// Calculate produces the 0-100 document risk score. Each clause
// contributes a base score by risk level (high 80, medium 50, low 20),
// adjusted by clause type (risk +10, positive -15), and is weighted
// 3/2/1 by risk level so high-risk clauses dominate over raw count.
// The weighted mean is clamped to [0,100] and rounded.
//
// Monotonic: raising any clause from low to high never lowers the result.
func (s *Scorer) Calculate(clauses []model.Clause) int {
	if len(clauses) == 0 {
		return defaultScore
	}

	var weightedSum, weightTotal float64
	for _, c := range clauses {
		base := baseScore(c.RiskLevel)
		base += typeAdjust(c.Type)
		w := weight(c.RiskLevel)

		weightedSum += base * w
		weightTotal += w
	}

	result := weightedSum / weightTotal
	result = math.Min(math.Max(result, 0), 100)
	return int(math.Round(result))
}

func baseScore(risk model.RiskLevel) float64 {
	switch risk {
	case model.RiskHigh:
		return 80
	case model.RiskMedium:
		return 50
	default:
		// low and positive share the low base; positive clauses are
		// further reduced by the type adjustment
		return 20
	}
}

func typeAdjust(t model.ClauseType) float64 {
	switch t {
	case model.TypeRisk:
		return 10
	case model.TypePositive:
		return -15
	default:
		return 0
	}
}

func weight(risk model.RiskLevel) float64 {
	switch risk {
	case model.RiskHigh:
		return 3
	case model.RiskMedium:
		return 2
	default:
		return 1
	}
}
