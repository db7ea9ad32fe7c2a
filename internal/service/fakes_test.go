package service

import (
	"context"
	"encoding/json"

	"dealersurvey/internal/model"
)

/* ---------------- In-memory fakes for cache and repository interfaces ---------------- */

// fakeSessionCache round-trips sessions through JSON, like the real
// Redis-backed cache, so mutations only stick after Set.
type fakeSessionCache struct {
	data map[string][]byte
}

func newFakeSessionCache() *fakeSessionCache {
	return &fakeSessionCache{data: map[string][]byte{}}
}

func (c *fakeSessionCache) Set(_ context.Context, session *model.Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return err
	}
	c.data[session.ID] = raw
	return nil
}

func (c *fakeSessionCache) Get(_ context.Context, id string) (*model.Session, error) {
	raw, ok := c.data[id]
	if !ok {
		return nil, nil
	}
	var session model.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (c *fakeSessionCache) Delete(_ context.Context, id string) error {
	delete(c.data, id)
	return nil
}

type fakeCatalogRepo struct {
	questions []model.Question
	err       error
}

func (r *fakeCatalogRepo) List(_ context.Context) ([]model.Question, error) {
	return r.questions, r.err
}

func (r *fakeCatalogRepo) Count(_ context.Context) (int, error) {
	return len(r.questions), r.err
}

func (r *fakeCatalogRepo) Replace(_ context.Context, questions []model.Question) error {
	r.questions = questions
	return r.err
}

type fakeAttemptRepo struct {
	attempts []model.Attempt
	err      error
}

func (r *fakeAttemptRepo) Insert(_ context.Context, attempt *model.Attempt) error {
	if r.err != nil {
		return r.err
	}
	r.attempts = append(r.attempts, *attempt)
	return nil
}

func (r *fakeAttemptRepo) ListByDealer(_ context.Context, dealerID int, _ int64) ([]model.Attempt, error) {
	var out []model.Attempt
	for _, a := range r.attempts {
		if a.DealerID == dealerID {
			out = append(out, a)
		}
	}
	return out, r.err
}

type fakeStatsCache struct {
	counts map[string]map[string]int64
	err    error
}

func newFakeStatsCache() *fakeStatsCache {
	return &fakeStatsCache{counts: map[string]map[string]int64{}}
}

func (c *fakeStatsCache) IncrOutcome(_ context.Context, dealerID, code string) error {
	if c.err != nil {
		return c.err
	}
	if c.counts[dealerID] == nil {
		c.counts[dealerID] = map[string]int64{}
	}
	c.counts[dealerID][code]++
	return nil
}

func (c *fakeStatsCache) GetCounts(_ context.Context, dealerID string) (map[string]int64, error) {
	return c.counts[dealerID], c.err
}

// fakeCollector records payloads and returns a canned outcome.
type fakeCollector struct {
	outcome  model.Outcome
	payloads []*model.SubmissionPayload
}

func (c *fakeCollector) Submit(_ context.Context, payload *model.SubmissionPayload) model.Outcome {
	c.payloads = append(c.payloads, payload)
	return c.outcome
}

type broadcastCall struct {
	dealerID string
	msgType  string
}

type fakeBroadcaster struct {
	calls []broadcastCall
}

func (b *fakeBroadcaster) BroadcastToDealer(dealerID string, msgType string, _ interface{}) {
	b.calls = append(b.calls, broadcastCall{dealerID: dealerID, msgType: msgType})
}

func intPtr(v int) *int { return &v }
