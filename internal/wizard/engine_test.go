package wizard

import (
	"context"
	"errors"
	"testing"

	"github.com/satram-seva/registration-api/internal/models"
	"github.com/satram-seva/registration-api/internal/store"
)

// stubStore is an in-memory RegistrationStore. Setting failErr makes every
// call fail, simulating an unreachable backend.
type stubStore struct {
	regs    map[string]*models.Registration
	failErr error
}

func newStubStore() *stubStore {
	return &stubStore{regs: make(map[string]*models.Registration)}
}

func (s *stubStore) GetByMobile(_ context.Context, mobile string) (*models.Registration, error) {
	if s.failErr != nil {
		return nil, s.failErr
	}
	reg, ok := s.regs[store.NormalizeMobile(mobile)]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *reg
	return &cp, nil
}

func (s *stubStore) Upsert(_ context.Context, reg *models.Registration) error {
	if s.failErr != nil {
		return s.failErr
	}
	cp := *reg
	s.regs[store.NormalizeMobile(reg.Primary.Mobile)] = &cp
	return nil
}

func (s *stubStore) ListAll(_ context.Context) ([]models.Registration, error) {
	if s.failErr != nil {
		return nil, s.failErr
	}
	var out []models.Registration
	for _, reg := range s.regs {
		out = append(out, *reg)
	}
	return out, nil
}

func (s *stubStore) DeleteByMobile(_ context.Context, mobile string) error {
	if s.failErr != nil {
		return s.failErr
	}
	delete(s.regs, store.NormalizeMobile(mobile))
	return nil
}

func TestEngineHappyPath(t *testing.T) {
	ctx := context.Background()
	st := newStubStore()
	e := NewEngine(st)

	draft := e.Draft()
	draft.Primary.FullName = "Asha Rao"
	draft.Primary.Mobile = "9876543210"
	draft.Primary.City = "Hyderabad"

	if err := e.Advance(ctx); err != nil {
		t.Fatalf("PRIMARY advance failed: %v", err)
	}
	if e.Step() != StepAttendance {
		t.Fatalf("expected ATTENDANCE, got %s", e.Step())
	}

	draft.AttendingDates = []string{"March 28, 2026 (Inauguration)"}
	if err := e.Advance(ctx); err != nil {
		t.Fatalf("ATTENDANCE advance failed: %v", err)
	}

	// No guests, no accommodation, no food.
	for _, want := range []Step{StepAccommodation, StepFood, StepReview} {
		if err := e.Advance(ctx); err != nil {
			t.Fatalf("advance to %s failed: %v", want, err)
		}
		if e.Step() != want {
			t.Fatalf("expected %s, got %s", want, e.Step())
		}
	}

	// REVIEW has no guard: advancing twice gives the same outcome both times.
	if err := e.Advance(ctx); err != nil {
		t.Fatalf("first REVIEW advance failed: %v", err)
	}
	if err := e.Advance(ctx); err != nil {
		t.Fatalf("second REVIEW advance failed: %v", err)
	}
	if e.Step() != StepReview {
		t.Fatalf("REVIEW should be terminal, got %s", e.Step())
	}

	if err := e.Submit(ctx); err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	saved, err := st.GetByMobile(ctx, "9876543210")
	if err != nil {
		t.Fatalf("submitted registration not stored: %v", err)
	}
	if saved.Status != models.StatusSubmitted {
		t.Errorf("expected submitted status, got %s", saved.Status)
	}
}

func TestEngineBlockedAdvance(t *testing.T) {
	ctx := context.Background()
	e := NewEngine(newStubStore())

	err := e.Advance(ctx)
	if err == nil {
		t.Fatal("expected validation error for empty primary step")
	}
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if e.Step() != StepPrimary {
		t.Errorf("blocked advance must not move, got %s", e.Step())
	}
	if e.Err() == nil {
		t.Error("last error slot should be set")
	}

	// Back clears the error slot even at the first step.
	e.Back()
	if e.Err() != nil {
		t.Error("back must clear the error slot")
	}
	if e.Step() != StepPrimary {
		t.Errorf("back at PRIMARY must stay, got %s", e.Step())
	}
}

func TestEngineDuplicateMobile(t *testing.T) {
	ctx := context.Background()
	st := newStubStore()
	existing := validReg()
	existing.RegistrationID = "someone-else"
	st.Upsert(ctx, existing)

	e := NewEngine(st)
	draft := e.Draft()
	draft.Primary.FullName = "New Person"
	draft.Primary.Mobile = "9876543210"
	draft.Primary.City = "Chennai"

	err := e.Advance(ctx)
	var dupErr *DuplicateMobileError
	if !errors.As(err, &dupErr) {
		t.Fatalf("expected DuplicateMobileError, got %v", err)
	}
	if e.Step() != StepPrimary {
		t.Error("duplicate mobile must block the step")
	}
}

func TestEngineOwnRecordPasses(t *testing.T) {
	ctx := context.Background()
	st := newStubStore()
	existing := validReg()
	st.Upsert(ctx, existing)

	e := NewEngine(st)
	e.draft = validReg() // same identity token as stored

	if err := e.Advance(ctx); err != nil {
		t.Fatalf("editing own record must pass the uniqueness check: %v", err)
	}
}

func TestEngineLookupFailureBlocks(t *testing.T) {
	ctx := context.Background()
	st := newStubStore()
	st.failErr = errors.New("connection refused")

	e := NewEngine(st)
	draft := e.Draft()
	draft.Primary.FullName = "Asha Rao"
	draft.Primary.Mobile = "9876543210"
	draft.Primary.City = "Hyderabad"

	err := e.Advance(ctx)
	var lookErr *LookupError
	if !errors.As(err, &lookErr) {
		t.Fatalf("expected LookupError, got %v", err)
	}
	if e.Step() != StepPrimary {
		t.Error("lookup failure must never allow a silent advance")
	}
}

func TestEngineSearch(t *testing.T) {
	ctx := context.Background()
	st := newStubStore()
	existing := validReg()
	st.Upsert(ctx, existing)

	t.Run("Found", func(t *testing.T) {
		e := NewEngine(st)
		// Move somewhere else first to prove the reset.
		e.step = StepFood

		if err := e.Search(ctx, "98765 43210"); err != nil {
			t.Fatalf("search failed: %v", err)
		}
		if e.Step() != StepPrimary {
			t.Errorf("search must reset to PRIMARY, got %s", e.Step())
		}
		if e.Draft().RegistrationID != existing.RegistrationID {
			t.Error("search must load the stored record")
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		e := NewEngine(st)
		before := e.Draft()
		err := e.Search(ctx, "1111111111")
		if err == nil {
			t.Fatal("expected not-found message")
		}
		if e.Draft() != before || e.Step() != StepPrimary {
			t.Error("failed search must not touch wizard state")
		}
	})

	t.Run("ShortMobile", func(t *testing.T) {
		e := NewEngine(st)
		if err := e.Search(ctx, "12345"); err == nil {
			t.Fatal("expected validation error for short mobile")
		}
	})
}

func TestParseStep(t *testing.T) {
	s, ok := ParseStep("ACCOMMODATION")
	if !ok || s != StepAccommodation {
		t.Errorf("expected ACCOMMODATION, got %v %v", s, ok)
	}
	if _, ok := ParseStep("NOPE"); ok {
		t.Error("unknown step name must not parse")
	}
}
