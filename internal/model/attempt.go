package model

import "time"

// Attempt is the stored record of one submission attempt: what was sent
// and how the collector answered. Kept for observability only; the
// pipeline never reads attempts back.
type Attempt struct {
	ID          string            `json:"id" bson:"_id,omitempty"`
	SessionID   string            `json:"sessionId" bson:"sessionId"`
	DealerID    int               `json:"dealerId" bson:"dealerId"`
	Payload     SubmissionPayload `json:"payload" bson:"payload"`
	Outcome     Outcome           `json:"outcome" bson:"outcome"`
	AttemptedAt time.Time         `json:"attemptedAt" bson:"attemptedAt"`
}
