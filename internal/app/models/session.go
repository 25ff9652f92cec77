package models

import "time"

type Session struct {
	SessionID string
	UserID    string
	Username  string
	Role      string
	ExpiresAt time.Time
}
