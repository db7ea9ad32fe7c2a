package model

import "github.com/golang-jwt/jwt/v5"

// SessionClaims are JWT claims for respondent session tokens.
type SessionClaims struct {
	SessionID string `json:"sessionId"`
	DealerID  string `json:"dealerId"`
	jwt.RegisteredClaims
}

// StartSessionResponse is returned when a survey session is opened.
type StartSessionResponse struct {
	Token     string `json:"token"`
	SessionID string `json:"sessionId"`
	Questions int    `json:"questions"`
}
