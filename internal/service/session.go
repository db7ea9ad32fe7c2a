package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"dealersurvey/internal/cache"
	"dealersurvey/internal/model"
	"dealersurvey/internal/repository"
)

var ErrQuestionIndex = errors.New("question index out of range")

// SessionService owns the survey session lifecycle: one respondent, one
// answer slot per catalog question, mutated only through these methods.
type SessionService struct {
	sessions cache.SessionCache
	catalog  repository.CatalogRepo
	auth     *AuthService
	now      Clock
}

// NewSessionService creates a new session service
func NewSessionService(sessions cache.SessionCache, catalog repository.CatalogRepo, auth *AuthService, now Clock) *SessionService {
	if now == nil {
		now = time.Now
	}
	return &SessionService{
		sessions: sessions,
		catalog:  catalog,
		auth:     auth,
		now:      now,
	}
}

// Start opens a session for the dealer link it was reached through. The
// answer set is sized to the catalog as it is right now.
func (s *SessionService) Start(ctx context.Context, dealerID string) (*model.StartSessionResponse, error) {
	catalogLen, err := s.catalog.Count(ctx)
	if err != nil {
		return nil, err
	}

	session := &model.Session{
		ID:         uuid.New().String(),
		Respondent: model.Respondent{DealerID: dealerID},
		Answers:    model.NewAnswerSet(catalogLen),
		CreatedAt:  s.now(),
		UpdatedAt:  s.now(),
	}
	if err := s.sessions.Set(ctx, session); err != nil {
		return nil, err
	}

	token, err := s.auth.GenerateSessionToken(session.ID, dealerID)
	if err != nil {
		return nil, err
	}

	return &model.StartSessionResponse{
		Token:     token,
		SessionID: session.ID,
		Questions: catalogLen,
	}, nil
}

// Get loads a session by id
func (s *SessionService) Get(ctx context.Context, sessionID string) (*model.Session, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// SetRespondent replaces the whole respondent record. There is no
// partial-field update.
func (s *SessionService) SetRespondent(ctx context.Context, sessionID, linkDealerID string, req model.IntakeRequest) error {
	session, err := s.Get(ctx, sessionID)
	if err != nil {
		return err
	}

	session.Respondent = req.Respondent(linkDealerID)
	session.UpdatedAt = s.now()
	return s.sessions.Set(ctx, session)
}

// SetAnswer records the selected option for one question. Revisits
// overwrite the slot; last write wins.
func (s *SessionService) SetAnswer(ctx context.Context, sessionID string, questionIndex, answerIndex int) error {
	session, err := s.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	if questionIndex < 0 || questionIndex >= len(session.Answers) {
		return ErrQuestionIndex
	}

	answer := answerIndex
	session.Answers[questionIndex] = &answer
	session.UpdatedAt = s.now()
	return s.sessions.Set(ctx, session)
}

// Reset clears the respondent (the dealer link identity survives) and
// re-initializes the answer set to the current catalog length, which may
// differ from the length the session started with.
func (s *SessionService) Reset(ctx context.Context, sessionID string) error {
	session, err := s.Get(ctx, sessionID)
	if err != nil {
		return err
	}

	catalogLen, err := s.catalog.Count(ctx)
	if err != nil {
		return err
	}

	session.Respondent = model.Respondent{DealerID: session.Respondent.DealerID}
	session.Answers = model.NewAnswerSet(catalogLen)
	session.UpdatedAt = s.now()
	return s.sessions.Set(ctx, session)
}
