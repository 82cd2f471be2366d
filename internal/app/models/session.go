package models

import (
	"mediconnect-service/internal/pkg/constvars"
	"time"
)

// Session is the authenticated actor's identity, stored JSON-encoded in redis
// and injected into request context by the auth middleware. BackendToken is
// the bearer token issued by the platform backend at login; every outbound
// backend call carries it.
type Session struct {
	SessionID    string
	UserID       int
	Role         string
	BackendToken string
	ExpiresAt    time.Time
}

func (s *Session) IsPatient() bool {
	return s.Role == constvars.RolePatient
}

func (s *Session) IsDoctor() bool {
	return s.Role == constvars.RoleDoctor
}

func (s *Session) IsExpired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}
