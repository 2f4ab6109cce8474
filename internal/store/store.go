package store

import (
	"context"
	"errors"
	"strings"

	"github.com/satram-seva/registration-api/internal/models"
)

// ErrNotFound signals absence of a registration. Callers must distinguish
// it from real store failures: the duplicate check treats it as "no
// conflict" and the search flow as "no record", neither is an error.
var ErrNotFound = errors.New("registration not found")

// RegistrationStore is the persistence contract. Records are keyed by the
// normalized mobile number; Upsert overwrites any record sharing that key.
type RegistrationStore interface {
	GetByMobile(ctx context.Context, mobile string) (*models.Registration, error)
	Upsert(ctx context.Context, reg *models.Registration) error
	ListAll(ctx context.Context) ([]models.Registration, error)
	DeleteByMobile(ctx context.Context, mobile string) error
}

// NormalizeMobile strips every non-digit character. The result is the
// storage key, so "98765-43210" and "9876543210" address the same record.
func NormalizeMobile(mobile string) string {
	var b strings.Builder
	b.Grow(len(mobile))
	for _, r := range mobile {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
