package service

import (
	"context"
	"testing"
	"time"

	"dealersurvey/internal/model"
)

func fixedClock() time.Time {
	return time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
}

func newSubmitFixture(collector Collector) (*SubmitService, *fakeSessionCache, *fakeCatalogRepo, *fakeAttemptRepo, *fakeStatsCache) {
	sessions := newFakeSessionCache()
	catalog := &fakeCatalogRepo{questions: []model.Question{
		{Scores: map[string][]int{"Автодруг": {2}}},
		{Scores: map[string][]int{"Автодруг": {0, 3}, "ПитСтоп": {1, 0}}},
	}}
	attempts := &fakeAttemptRepo{}
	stats := newFakeStatsCache()
	svc := NewSubmitService(sessions, catalog, attempts, stats, NewScoringService(), collector, fixedClock)
	return svc, sessions, catalog, attempts, stats
}

func TestFormatPayloadFixedClock(t *testing.T) {
	svc, _, _, _, _ := newSubmitFixture(&fakeCollector{})

	payload := svc.FormatPayload(model.Respondent{DealerID: "42"}, nil)
	if payload.SurveyDate != "2024-03-15T10:30:00Z" {
		t.Errorf("expected fixed survey date, got %q", payload.SurveyDate)
	}
	if payload.DealerID != 42 {
		t.Errorf("expected dealer_id 42, got %d", payload.DealerID)
	}
}

func TestFormatPayloadDealerIDFallback(t *testing.T) {
	svc, _, _, _, _ := newSubmitFixture(&fakeCollector{})

	for _, dealerID := range []string{"abc", "", "12abc"} {
		payload := svc.FormatPayload(model.Respondent{DealerID: dealerID}, nil)
		if payload.DealerID != 0 {
			t.Errorf("dealer id %q: expected 0, got %d", dealerID, payload.DealerID)
		}
	}
}

func TestFormatPayloadPatronymic(t *testing.T) {
	svc, _, _, _, _ := newSubmitFixture(&fakeCollector{})

	// Whitespace-only collapses to null
	payload := svc.FormatPayload(model.Respondent{Patronymic: "   "}, nil)
	if payload.Client.Patronymic != nil {
		t.Errorf("expected nil patronymic, got %q", *payload.Client.Patronymic)
	}

	payload = svc.FormatPayload(model.Respondent{Patronymic: " Иванович "}, nil)
	if payload.Client.Patronymic == nil {
		t.Fatal("expected trimmed patronymic, got nil")
	}
	if *payload.Client.Patronymic != "Иванович" {
		t.Errorf("expected trimmed %q, got %q", "Иванович", *payload.Client.Patronymic)
	}
}

func TestFormatPayloadDropsRawScore(t *testing.T) {
	svc, _, _, _, _ := newSubmitFixture(&fakeCollector{})

	ranked := []model.RankedResult{
		{ProductName: "Автодруг", Score: 5, Priority: 1, ScorePercent: 56},
	}
	payload := svc.FormatPayload(model.Respondent{}, ranked)
	if len(payload.Results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(payload.Results))
	}
	want := model.PayloadResult{Priority: 1, ProductName: "Автодруг", ScorePercent: 56}
	if payload.Results[0] != want {
		t.Errorf("expected %+v, got %+v", want, payload.Results[0])
	}
}

func TestSubmitPipeline(t *testing.T) {
	collector := &fakeCollector{outcome: model.OkOutcome("OK", "")}
	svc, sessions, _, attempts, stats := newSubmitFixture(collector)
	broadcaster := &fakeBroadcaster{}
	svc.SetBroadcaster(broadcaster)

	session := &model.Session{
		ID: "s1",
		Respondent: model.Respondent{
			Surname: "Иванов", Name: "Иван", Phone: "+79990000000", DealerID: "7",
		},
		Answers: []*int{intPtr(0), intPtr(1)},
	}
	if err := sessions.Set(context.Background(), session); err != nil {
		t.Fatal(err)
	}

	outcome, err := svc.Submit(context.Background(), "s1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !outcome.Success || outcome.Code != model.CodeOK {
		t.Errorf("expected OK outcome, got %+v", outcome)
	}

	if len(collector.payloads) != 1 {
		t.Fatalf("expected 1 collector call, got %d", len(collector.payloads))
	}
	payload := collector.payloads[0]
	if payload.DealerID != 7 {
		t.Errorf("expected dealer_id 7, got %d", payload.DealerID)
	}
	// Автодруг 5, ПитСтоп 0 but listed, in ranked order
	if payload.Results[0].ProductName != "Автодруг" || payload.Results[0].Priority != 1 {
		t.Errorf("unexpected top result %+v", payload.Results[0])
	}
	if len(payload.Results) != len(model.Products) {
		t.Errorf("expected %d results, got %d", len(model.Products), len(payload.Results))
	}

	if len(attempts.attempts) != 1 {
		t.Fatalf("expected 1 logged attempt, got %d", len(attempts.attempts))
	}
	if attempts.attempts[0].Outcome.Code != model.CodeOK {
		t.Errorf("attempt should carry the classified outcome, got %+v", attempts.attempts[0].Outcome)
	}

	if stats.counts["7"][model.CodeOK] != 1 {
		t.Errorf("expected OK counter for dealer 7, got %+v", stats.counts)
	}
	if len(broadcaster.calls) != 1 || broadcaster.calls[0].dealerID != "7" {
		t.Errorf("expected one broadcast to dealer 7, got %+v", broadcaster.calls)
	}
}

func TestSubmitSideEffectFailuresKeepOutcome(t *testing.T) {
	collector := &fakeCollector{outcome: model.FailOutcome(model.CodeTimeout, model.MsgServiceUnavailable)}
	svc, sessions, _, attempts, stats := newSubmitFixture(collector)
	attempts.err = context.DeadlineExceeded
	stats.err = context.DeadlineExceeded

	session := &model.Session{ID: "s1", Answers: []*int{nil, nil}}
	if err := sessions.Set(context.Background(), session); err != nil {
		t.Fatal(err)
	}

	outcome, err := svc.Submit(context.Background(), "s1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome.Code != model.CodeTimeout {
		t.Errorf("side-effect failures must not alter the outcome, got %+v", outcome)
	}
}

func TestSubmitUnknownSession(t *testing.T) {
	svc, _, _, _, _ := newSubmitFixture(&fakeCollector{})

	if _, err := svc.Submit(context.Background(), "missing"); err != ErrSessionNotFound {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}
}
