package handlers

import (
	"context"
	"errors"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/satram-seva/registration-api/internal/auth"
	"github.com/satram-seva/registration-api/internal/models"
	"github.com/satram-seva/registration-api/internal/store"
)

type AdminHandler struct {
	store       store.RegistrationStore
	authHandler *auth.AuthHandler
}

func NewAdminHandler(st store.RegistrationStore, authHandler *auth.AuthHandler) *AdminHandler {
	return &AdminHandler{store: st, authHandler: authHandler}
}

// MatchesFilter reports whether a registration matches the admin search
// term: case-insensitive substring on name and city, plain substring on
// the mobile number. An empty term matches everything.
func MatchesFilter(reg models.Registration, term string) bool {
	if term == "" {
		return true
	}
	lower := strings.ToLower(term)
	return strings.Contains(strings.ToLower(reg.Primary.FullName), lower) ||
		strings.Contains(reg.Primary.Mobile, term) ||
		strings.Contains(strings.ToLower(reg.Primary.City), lower)
}

type ListRequest struct {
	auth.AuthInput
	Q string `query:"q" doc:"Filter by name, mobile or city"`
}

type ListResponse struct {
	Body []RegistrationView
}

// HandleList returns all registrations, newest first, optionally filtered.
func (h *AdminHandler) HandleList(ctx context.Context, input *ListRequest) (*ListResponse, error) {
	if err := h.authHandler.Authorize(ctx, input.AuthInput); err != nil {
		return nil, err
	}

	regs, err := h.store.ListAll(ctx)
	if err != nil {
		return nil, huma.Error503ServiceUnavailable("Failed to load registrations: " + err.Error())
	}

	views := make([]RegistrationView, 0, len(regs))
	for _, reg := range regs {
		if MatchesFilter(reg, input.Q) {
			views = append(views, toView(reg))
		}
	}
	return &ListResponse{Body: views}, nil
}

type DeleteRequest struct {
	auth.AuthInput
	Mobile string `path:"mobile"`
}

type DeleteResponse struct {
	Body struct {
		Message string `json:"message"`
	}
}

func (h *AdminHandler) HandleDelete(ctx context.Context, input *DeleteRequest) (*DeleteResponse, error) {
	if err := h.authHandler.Authorize(ctx, input.AuthInput); err != nil {
		return nil, err
	}

	err := h.store.DeleteByMobile(ctx, input.Mobile)
	if errors.Is(err, store.ErrNotFound) {
		return nil, huma.Error404NotFound("No registration found with this mobile number")
	}
	if err != nil {
		return nil, huma.Error503ServiceUnavailable("Failed to delete registration: " + err.Error())
	}

	res := &DeleteResponse{}
	res.Body.Message = "Registration deleted"
	return res, nil
}
