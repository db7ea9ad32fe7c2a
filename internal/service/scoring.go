package service

import (
	"math"
	"sort"

	"dealersurvey/internal/model"
)

// ScoringService turns raw answer selections into ranked product results.
// All methods are pure; the service carries no state beyond the product
// list it was built with.
type ScoringService struct {
	products []string
}

// NewScoringService creates a new scoring service over the fixed product list
func NewScoringService() *ScoringService {
	return &ScoringService{products: model.Products}
}

// ComputeScores folds the answer set against the catalog into a total
// score per product. Unanswered slots, slots beyond the catalog, missing
// product tables and missing option entries all contribute zero. Sums are
// not clamped to MaxScore; an overshooting catalog shows up as >100%.
func (s *ScoringService) ComputeScores(answers []*int, catalog []model.Question) map[string]int {
	scores := make(map[string]int, len(s.products))
	for _, product := range s.products {
		scores[product] = 0
	}

	for questionIndex, answer := range answers {
		if answer == nil || questionIndex >= len(catalog) {
			continue
		}
		question := catalog[questionIndex]
		for _, product := range s.products {
			table, ok := question.Scores[product]
			if !ok {
				continue
			}
			if *answer >= 0 && *answer < len(table) {
				scores[product] += table[*answer]
			}
		}
	}

	return scores
}

// Rank orders the products by score descending and assigns 1-based
// priorities. The sort is stable over the fixed product-list order, so
// tied products keep their list order; this is part of the contract.
func (s *ScoringService) Rank(scores map[string]int) []model.RankedResult {
	ranked := make([]model.RankedResult, 0, len(s.products))
	for _, product := range s.products {
		ranked = append(ranked, model.RankedResult{
			ProductName: product,
			Score:       scores[product],
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	for i := range ranked {
		ranked[i].Priority = i + 1
	}
	return ranked
}

// Percentize fills in scorePercent = round(score/maxScore*100).
func (s *ScoringService) Percentize(ranked []model.RankedResult, maxScore int) []model.RankedResult {
	for i := range ranked {
		ranked[i].ScorePercent = int(math.Round(float64(ranked[i].Score) / float64(maxScore) * 100))
	}
	return ranked
}
