package models

import (
	"gorm.io/gorm"
)

// RegistrationHistory keeps a JSON snapshot of every write. Upserts
// overwrite the live row, so this is the only record of earlier versions.
type RegistrationHistory struct {
	gorm.Model
	RegistrationID string `json:"registration_id"`
	Mobile         string `json:"mobile" gorm:"index"`
	Data           string `json:"data"`
}
