package models

import (
	"time"

	"gorm.io/gorm"
)

// APIKey grants the same access as the admin password. Used for scripted
// exports and report pulls.
type APIKey struct {
	gorm.Model
	Key        string     `json:"key" gorm:"uniqueIndex"`
	Name       string     `json:"name"`
	ExpiresAt  *time.Time `json:"expires_at"`
	LastUsedAt *time.Time `json:"last_used_at"`
}
