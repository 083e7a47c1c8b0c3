package model

import "time"

// Session is the server side record behind the portal's session cookie.
type Session struct {
	ID         string    `json:"id"`
	Token      string    `json:"token"`
	Role       Role      `json:"role"`
	Identifier string    `json:"identifier,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// Valid reports whether the session still carries a usable backend token.
func (s *Session) Valid(now time.Time) bool {
	if s == nil || s.Token == "" {
		return false
	}
	return now.Before(s.ExpiresAt)
}

// FlashLevel is the severity of a one-shot message.
type FlashLevel string

const (
	FlashInfo  FlashLevel = "info"
	FlashError FlashLevel = "error"
)

// Flash is a message shown once on the next rendered page, the portal's stand-in for
// a browser alert.
type Flash struct {
	Level   FlashLevel `json:"level"`
	Message string     `json:"message"`
}
