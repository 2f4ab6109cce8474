package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/satram-seva/registration-api/internal/models"
	"github.com/satram-seva/registration-api/internal/notifier"
	"github.com/satram-seva/registration-api/internal/store"
	"github.com/satram-seva/registration-api/internal/wizard"
)

type RegistrationHandler struct {
	store    store.RegistrationStore
	notifier notifier.Notifier
}

func NewRegistrationHandler(st store.RegistrationStore, n notifier.Notifier) *RegistrationHandler {
	return &RegistrationHandler{store: st, notifier: n}
}

// RegistrationPayload is the wire shape of one submission, mirroring the
// registration form.
type RegistrationPayload struct {
	ID                 string               `json:"id,omitempty" doc:"Client-generated registration token; assigned when empty"`
	PrimaryParticipant models.Participant   `json:"primaryParticipant"`
	AttendingDates     []string             `json:"attendingDates"`
	AdditionalGuests   []models.Guest       `json:"additionalGuests,omitempty"`
	Accommodation      models.Accommodation `json:"accommodation"`
	Food               models.Food          `json:"food"`
}

// RegistrationView is the read-side projection of a stored registration.
type RegistrationView struct {
	ID                 string               `json:"id"`
	SubmissionDate     time.Time            `json:"submissionDate"`
	PrimaryParticipant models.Participant   `json:"primaryParticipant"`
	AttendingDates     []string             `json:"attendingDates"`
	AdditionalGuests   []models.Guest       `json:"additionalGuests"`
	Accommodation      models.Accommodation `json:"accommodation"`
	Food               models.Food          `json:"food"`
	Status             models.Status        `json:"status"`
}

func toView(reg models.Registration) RegistrationView {
	return RegistrationView{
		ID:                 reg.RegistrationID,
		SubmissionDate:     reg.SubmittedAt,
		PrimaryParticipant: reg.Primary,
		AttendingDates:     reg.AttendingDates,
		AdditionalGuests:   reg.Guests,
		Accommodation:      reg.Accommodation,
		Food:               reg.Food,
		Status:             reg.Status,
	}
}

func (p RegistrationPayload) toModel() *models.Registration {
	reg := &models.Registration{
		RegistrationID: p.ID,
		Primary:        p.PrimaryParticipant,
		AttendingDates: p.AttendingDates,
		Guests:         p.AdditionalGuests,
		Accommodation:  p.Accommodation,
		Food:           p.Food,
	}
	if reg.RegistrationID == "" {
		reg.RegistrationID = uuid.NewString()
	}
	if reg.Primary.ID == "" {
		reg.Primary.ID = uuid.NewString()
	}
	for i := range reg.Guests {
		if reg.Guests[i].ID == "" {
			reg.Guests[i].ID = uuid.NewString()
		}
	}
	return reg
}

type SubmitRequest struct {
	Body RegistrationPayload
}

type SubmitResponse struct {
	Body struct {
		Message string `json:"message"`
		ID      string `json:"id"`
	}
}

// HandleSubmit validates the full guard chain and upserts the record
// under its normalized mobile. A second submit with the same mobile and
// the same registration token overwrites the first.
func (h *RegistrationHandler) HandleSubmit(ctx context.Context, input *SubmitRequest) (*SubmitResponse, error) {
	reg := input.Body.toModel()

	if err := wizard.ValidateSubmission(ctx, h.store, reg); err != nil {
		var vErr *wizard.ValidationError
		var dupErr *wizard.DuplicateMobileError
		var lookErr *wizard.LookupError
		switch {
		case errors.As(err, &dupErr):
			return nil, huma.Error409Conflict(dupErr.Error())
		case errors.As(err, &lookErr):
			return nil, huma.Error503ServiceUnavailable(lookErr.Error())
		case errors.As(err, &vErr):
			return nil, huma.Error422UnprocessableEntity(vErr.Reason)
		default:
			return nil, huma.Error500InternalServerError("Failed to validate registration: " + err.Error())
		}
	}

	reg.Status = models.StatusSubmitted
	reg.SubmittedAt = time.Now().UTC()

	if err := h.store.Upsert(ctx, reg); err != nil {
		return nil, huma.Error503ServiceUnavailable("Failed to save registration, please retry: " + err.Error())
	}

	if h.notifier != nil {
		if err := h.notifier.NotifyRegistration(*reg); err != nil {
			// Notification is best effort, the registration is already saved.
			log.Warn().Err(err).Str("mobile", reg.Mobile).Msg("registration notification failed")
		}
	}

	res := &SubmitResponse{}
	res.Body.Message = "Registration saved successfully"
	res.Body.ID = reg.RegistrationID
	return res, nil
}

type LookupRequest struct {
	Mobile string `path:"mobile" doc:"Registered mobile number, any formatting"`
}

type LookupResponse struct {
	Body RegistrationView
}

// HandleLookup backs the "modify registration" search flow.
func (h *RegistrationHandler) HandleLookup(ctx context.Context, input *LookupRequest) (*LookupResponse, error) {
	reg, err := h.store.GetByMobile(ctx, input.Mobile)
	if errors.Is(err, store.ErrNotFound) {
		return nil, huma.Error404NotFound("No registration found with this mobile number")
	}
	if err != nil {
		return nil, huma.Error503ServiceUnavailable("Unable to search: " + err.Error())
	}
	return &LookupResponse{Body: toView(*reg)}, nil
}
