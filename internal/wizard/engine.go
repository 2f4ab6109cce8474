package wizard

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/satram-seva/registration-api/internal/models"
	"github.com/satram-seva/registration-api/internal/store"
)

// Step identifies one screen of the registration flow.
type Step int

const (
	StepPrimary Step = iota
	StepAttendance
	StepGuests
	StepAccommodation
	StepFood
	StepReview
)

var stepNames = [...]string{"PRIMARY", "ATTENDANCE", "GUESTS", "ACCOMMODATION", "FOOD", "REVIEW"}

func (s Step) String() string {
	if s < StepPrimary || s > StepReview {
		return "UNKNOWN"
	}
	return stepNames[s]
}

// ParseStep maps a step name back to its Step value.
func ParseStep(name string) (Step, bool) {
	for i, n := range stepNames {
		if n == name {
			return Step(i), true
		}
	}
	return StepPrimary, false
}

// Engine drives one registration session through the step sequence. It
// holds the draft, the current step and a single-slot last error; every
// action clears the previous error before running.
type Engine struct {
	store   store.RegistrationStore
	step    Step
	draft   *models.Registration
	lastErr error
}

func NewEngine(st store.RegistrationStore) *Engine {
	return &Engine{
		store: st,
		step:  StepPrimary,
		draft: NewDraft(),
	}
}

// NewDraft builds an empty registration with fresh identity tokens.
func NewDraft() *models.Registration {
	return &models.Registration{
		RegistrationID: uuid.NewString(),
		SubmittedAt:    time.Now().UTC(),
		Primary: models.Participant{
			ID:     uuid.NewString(),
			Gender: models.GenderMale,
		},
		Status: models.StatusDraft,
	}
}

func (e *Engine) Step() Step                  { return e.step }
func (e *Engine) Draft() *models.Registration { return e.draft }
func (e *Engine) Err() error                  { return e.lastErr }

// Advance runs the guard for the current step and moves forward when it
// passes. The PRIMARY guard includes the remote uniqueness check, so
// Advance can block on the store; the call does not return until the
// lookup resolves one way or the other.
func (e *Engine) Advance(ctx context.Context) error {
	e.lastErr = nil

	if err := e.checkStep(ctx, e.step); err != nil {
		e.lastErr = err
		return err
	}

	if e.step == StepAccommodation {
		SyncFoodPickup(e.draft)
	}
	if e.step < StepReview {
		e.step++
	}
	return nil
}

// Back moves one step back without re-validation. It never fails.
func (e *Engine) Back() {
	e.lastErr = nil
	if e.step > StepPrimary {
		e.step--
	}
}

// Submit marks the draft submitted, refreshes the submission timestamp and
// persists it. The REVIEW step has no guard of its own; callers that need
// the full chain re-checked use ValidateSubmission first.
func (e *Engine) Submit(ctx context.Context) error {
	e.lastErr = nil
	e.draft.Status = models.StatusSubmitted
	e.draft.SubmittedAt = time.Now().UTC()
	if err := e.store.Upsert(ctx, e.draft); err != nil {
		e.lastErr = err
		return err
	}
	return nil
}

// Search is the side-channel entry point: it loads the registration stored
// under mobile and, on success, replaces the draft and resets the flow to
// PRIMARY. On any failure the wizard state is untouched.
func (e *Engine) Search(ctx context.Context, mobile string) error {
	e.lastErr = nil

	if len(store.NormalizeMobile(mobile)) < 10 {
		e.lastErr = &ValidationError{Step: e.step, Reason: "please enter a valid 10-digit mobile number"}
		return e.lastErr
	}

	found, err := e.store.GetByMobile(ctx, mobile)
	if errors.Is(err, store.ErrNotFound) {
		e.lastErr = &ValidationError{Step: e.step, Reason: "no registration found with this mobile number"}
		return e.lastErr
	}
	if err != nil {
		e.lastErr = &LookupError{Err: err}
		return e.lastErr
	}

	e.draft = found
	e.step = StepPrimary
	return nil
}

func (e *Engine) checkStep(ctx context.Context, step Step) error {
	switch step {
	case StepPrimary:
		if err := CheckPrimary(e.draft); err != nil {
			return err
		}
		return CheckMobileUnique(ctx, e.store, e.draft)
	case StepAttendance:
		return asErr(CheckAttendance(e.draft))
	case StepGuests:
		return asErr(CheckGuests(e.draft))
	case StepAccommodation:
		return asErr(CheckAccommodation(e.draft))
	case StepFood:
		return asErr(CheckFood(e.draft))
	default:
		// REVIEW: submit is unconditional.
		return nil
	}
}

// asErr keeps a nil *ValidationError from becoming a non-nil error.
func asErr(err *ValidationError) error {
	if err == nil {
		return nil
	}
	return err
}

// ValidateSubmission runs every step guard over reg, including the remote
// uniqueness check, and forces the food pickup synchronization. Used by
// the API layer, which cannot trust that the client walked the steps.
func ValidateSubmission(ctx context.Context, st store.RegistrationStore, reg *models.Registration) error {
	if err := CheckPrimary(reg); err != nil {
		return err
	}
	if err := CheckMobileUnique(ctx, st, reg); err != nil {
		return err
	}
	if err := asErr(CheckAttendance(reg)); err != nil {
		return err
	}
	if err := asErr(CheckGuests(reg)); err != nil {
		return err
	}
	if err := asErr(CheckAccommodation(reg)); err != nil {
		return err
	}
	SyncFoodPickup(reg)
	return asErr(CheckFood(reg))
}
