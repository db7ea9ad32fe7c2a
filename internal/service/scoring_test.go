package service

import (
	"testing"

	"dealersurvey/internal/model"
)

func TestComputeScoresAllUnanswered(t *testing.T) {
	svc := NewScoringService()
	catalog := []model.Question{
		{Scores: map[string][]int{"Автодруг": {5, 5, 5}}},
		{Scores: map[string][]int{"ПитСтоп": {1}}},
	}

	scores := svc.ComputeScores(model.NewAnswerSet(len(catalog)), catalog)

	if len(scores) != len(model.Products) {
		t.Fatalf("expected %d products, got %d", len(model.Products), len(scores))
	}
	for _, product := range model.Products {
		if scores[product] != 0 {
			t.Errorf("product %q: expected 0, got %d", product, scores[product])
		}
	}
}

func TestComputeScoresTolerantOfGaps(t *testing.T) {
	svc := NewScoringService()
	catalog := []model.Question{
		// Only one product configured; option 1 missing for it
		{Scores: map[string][]int{"Автодруг": {2}}},
		// No score table at all
		{},
	}

	// Stale answer set: longer than the catalog, plus an option index
	// beyond the configured table
	answers := []*int{intPtr(1), intPtr(0), intPtr(0)}

	scores := svc.ComputeScores(answers, catalog)
	for _, product := range model.Products {
		if scores[product] != 0 {
			t.Errorf("product %q: expected 0, got %d", product, scores[product])
		}
	}

	// Same shape but with a valid selection
	answers[0] = intPtr(0)
	scores = svc.ComputeScores(answers, catalog)
	if scores["Автодруг"] != 2 {
		t.Errorf("expected Автодруг=2, got %d", scores["Автодруг"])
	}
}

func TestComputeScoresIsPure(t *testing.T) {
	svc := NewScoringService()
	catalog := []model.Question{
		{Scores: map[string][]int{"ПитСтоп": {1, 2}, "CAR GARANT": {3, 0}}},
	}
	answers := []*int{intPtr(1)}

	first := svc.ComputeScores(answers, catalog)
	second := svc.ComputeScores(answers, catalog)
	for _, product := range model.Products {
		if first[product] != second[product] {
			t.Errorf("product %q: %d != %d across calls", product, first[product], second[product])
		}
	}
}

func TestRankStableOnTies(t *testing.T) {
	svc := NewScoringService()

	scores := map[string]int{}
	for _, product := range model.Products {
		scores[product] = 3
	}

	ranked := svc.Rank(scores)
	if len(ranked) != len(model.Products) {
		t.Fatalf("expected %d entries, got %d", len(model.Products), len(ranked))
	}
	for i, r := range ranked {
		if r.ProductName != model.Products[i] {
			t.Errorf("position %d: expected %q (list order on ties), got %q", i, model.Products[i], r.ProductName)
		}
		if r.Priority != i+1 {
			t.Errorf("position %d: expected priority %d, got %d", i, i+1, r.Priority)
		}
	}
}

func TestRankDescendingWithPartialTies(t *testing.T) {
	svc := NewScoringService()

	scores := map[string]int{
		"Автодруг":             2,
		"Независимая Гарантия": 7,
		"ПитСтоп":              2,
		"CAR GARANT":           5,
	}

	ranked := svc.Rank(scores)
	wantOrder := []string{"Независимая Гарантия", "CAR GARANT", "Автодруг", "ПитСтоп"}
	for i, want := range wantOrder {
		if ranked[i].ProductName != want {
			t.Errorf("position %d: expected %q, got %q", i, want, ranked[i].ProductName)
		}
	}

	seen := map[int]bool{}
	for _, r := range ranked {
		if seen[r.Priority] {
			t.Errorf("duplicate priority %d", r.Priority)
		}
		seen[r.Priority] = true
	}
	for p := 1; p <= len(model.Products); p++ {
		if !seen[p] {
			t.Errorf("missing priority %d", p)
		}
	}
}

func TestPercentize(t *testing.T) {
	svc := NewScoringService()

	cases := []struct {
		score int
		want  int
	}{
		{9, 100},
		{0, 0},
		{4, 44},   // 44.44 rounds down
		{5, 56},   // 55.55 rounds up
		{10, 111}, // above MaxScore: no clamping
	}
	for _, tc := range cases {
		ranked := svc.Percentize([]model.RankedResult{{ProductName: "Автодруг", Score: tc.score}}, model.MaxScore)
		if got := ranked[0].ScorePercent; got != tc.want {
			t.Errorf("score %d: expected %d%%, got %d%%", tc.score, tc.want, got)
		}
	}
}

func TestPipelineEndToEnd(t *testing.T) {
	svc := NewScoringService()

	catalog := []model.Question{
		{Scores: map[string][]int{"Автодруг": {2}}},
		{Scores: map[string][]int{"Автодруг": {0, 3}}},
		{Scores: map[string][]int{"CAR GARANT": {9, 9, 9}}},
		{Scores: map[string][]int{"ПитСтоп": {0, 0, 1}}},
	}
	answers := []*int{intPtr(0), intPtr(1), nil, intPtr(2)}

	scores := svc.ComputeScores(answers, catalog)
	want := map[string]int{
		"Автодруг":             5,
		"Независимая Гарантия": 0,
		"ПитСтоп":              1,
		"CAR GARANT":           0,
	}
	for product, w := range want {
		if scores[product] != w {
			t.Errorf("product %q: expected %d, got %d", product, w, scores[product])
		}
	}

	ranked := svc.Percentize(svc.Rank(scores), model.MaxScore)

	wantRanked := []model.RankedResult{
		{ProductName: "Автодруг", Score: 5, Priority: 1, ScorePercent: 56},
		{ProductName: "ПитСтоп", Score: 1, Priority: 2, ScorePercent: 11},
		{ProductName: "Независимая Гарантия", Score: 0, Priority: 3, ScorePercent: 0},
		{ProductName: "CAR GARANT", Score: 0, Priority: 4, ScorePercent: 0},
	}
	for i, w := range wantRanked {
		if ranked[i] != w {
			t.Errorf("position %d: expected %+v, got %+v", i, w, ranked[i])
		}
	}
}
