package service

import (
	"context"
	"errors"
	"log"
	"strconv"
	"strings"
	"time"

	"dealersurvey/internal/cache"
	"dealersurvey/internal/model"
	"dealersurvey/internal/repository"
)

var ErrSessionNotFound = errors.New("session not found")

// Clock supplies the submission timestamp; injectable so tests can pin it.
type Clock func() time.Time

// Collector is the submission transport. Implemented by CollectorClient.
type Collector interface {
	Submit(ctx context.Context, payload *model.SubmissionPayload) model.Outcome
}

// SubmitService runs the whole pipeline for one session: scores, ranks,
// formats the payload, submits it, and records the classified outcome.
type SubmitService struct {
	sessions    cache.SessionCache
	catalog     repository.CatalogRepo
	attempts    repository.AttemptRepo
	stats       cache.StatsCache
	scoring     *ScoringService
	collector   Collector
	broadcaster Broadcaster
	now         Clock
}

// NewSubmitService creates a new submit service
func NewSubmitService(
	sessions cache.SessionCache,
	catalog repository.CatalogRepo,
	attempts repository.AttemptRepo,
	stats cache.StatsCache,
	scoring *ScoringService,
	collector Collector,
	now Clock,
) *SubmitService {
	if now == nil {
		now = time.Now
	}
	return &SubmitService{
		sessions:  sessions,
		catalog:   catalog,
		attempts:  attempts,
		stats:     stats,
		scoring:   scoring,
		collector: collector,
		now:       now,
	}
}

// SetBroadcaster sets the broadcaster for WebSocket events
func (s *SubmitService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// FormatPayload assembles the wire payload from the respondent and the
// ranked results. The timestamp is taken at call time, not at quiz
// completion. Raw scores are dropped; only the wire subset goes out.
func (s *SubmitService) FormatPayload(respondent model.Respondent, ranked []model.RankedResult) *model.SubmissionPayload {
	// Any unparseable dealer id collapses to 0 on purpose.
	dealerID, err := strconv.Atoi(strings.TrimSpace(respondent.DealerID))
	if err != nil {
		dealerID = 0
	}

	var patronymic *string
	if trimmed := strings.TrimSpace(respondent.Patronymic); trimmed != "" {
		patronymic = &trimmed
	}

	results := make([]model.PayloadResult, len(ranked))
	for i, r := range ranked {
		results[i] = model.PayloadResult{
			Priority:     r.Priority,
			ProductName:  r.ProductName,
			ScorePercent: r.ScorePercent,
		}
	}

	return &model.SubmissionPayload{
		SurveyDate: s.now().UTC().Format(time.RFC3339),
		DealerID:   dealerID,
		Client: model.PayloadClient{
			Surname:    respondent.Surname,
			Name:       respondent.Name,
			Patronymic: patronymic,
			Phone:      respondent.Phone,
		},
		Results: results,
	}
}

// Submit runs the pipeline for the given session and returns the
// classified outcome. Attempt logging, stats and broadcasting are side
// effects only; their failures never change the outcome.
func (s *SubmitService) Submit(ctx context.Context, sessionID string) (model.Outcome, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return model.Outcome{}, err
	}
	if session == nil {
		return model.Outcome{}, ErrSessionNotFound
	}

	catalog, err := s.catalog.List(ctx)
	if err != nil {
		return model.Outcome{}, err
	}

	scores := s.scoring.ComputeScores(session.Answers, catalog)
	ranked := s.scoring.Percentize(s.scoring.Rank(scores), model.MaxScore)
	payload := s.FormatPayload(session.Respondent, ranked)

	outcome := s.collector.Submit(ctx, payload)

	s.record(ctx, session.ID, payload, outcome)
	return outcome, nil
}

func (s *SubmitService) record(ctx context.Context, sessionID string, payload *model.SubmissionPayload, outcome model.Outcome) {
	attempt := &model.Attempt{
		SessionID:   sessionID,
		DealerID:    payload.DealerID,
		Payload:     *payload,
		Outcome:     outcome,
		AttemptedAt: s.now(),
	}
	if err := s.attempts.Insert(ctx, attempt); err != nil {
		log.Printf("[Submit] failed to store attempt for session %s: %v", sessionID, err)
	}

	dealerKey := strconv.Itoa(payload.DealerID)
	if err := s.stats.IncrOutcome(ctx, dealerKey, outcome.Code); err != nil {
		log.Printf("[Submit] failed to update stats for dealer %s: %v", dealerKey, err)
	}

	if s.broadcaster != nil {
		s.broadcaster.BroadcastToDealer(dealerKey, "submission_outcome", map[string]interface{}{
			"sessionId": sessionID,
			"outcome":   outcome,
			"results":   payload.Results,
		})
	}
}
