package handlers

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"github.com/satram-seva/registration-api/internal/auth"
	"github.com/satram-seva/registration-api/internal/config"
	"github.com/satram-seva/registration-api/internal/event"
	"github.com/satram-seva/registration-api/internal/report"
)

type ReportHandler struct {
	admin *AdminHandler
	cfg   *config.Config
}

func NewReportHandler(admin *AdminHandler, cfg *config.Config) *ReportHandler {
	return &ReportHandler{admin: admin, cfg: cfg}
}

type DailyReportRequest struct {
	auth.AuthInput
}

type DailyReportResponse struct {
	Body struct {
		Summary report.Summary     `json:"summary"`
		Days    []report.DailyStat `json:"days"`
	}
}

// HandleDailyReport computes the per-day aggregation over the full
// snapshot of registrations.
func (h *ReportHandler) HandleDailyReport(ctx context.Context, input *DailyReportRequest) (*DailyReportResponse, error) {
	if err := h.admin.authHandler.Authorize(ctx, input.AuthInput); err != nil {
		return nil, err
	}

	regs, err := h.admin.store.ListAll(ctx)
	if err != nil {
		return nil, huma.Error503ServiceUnavailable("Failed to load registrations: " + err.Error())
	}

	res := &DailyReportResponse{}
	res.Body.Summary = report.BuildSummary(regs)
	res.Body.Days = report.BuildDaily(event.Calendar, regs)
	return res, nil
}

// CalendarDay is one event day as the date pickers consume it.
type CalendarDay struct {
	Label   string      `json:"label"`
	Phase   event.Phase `json:"phase"`
	Date    string      `json:"date"`
	Display string      `json:"display"`
	Past    bool        `json:"past"`
}

type CalendarResponse struct {
	Body struct {
		Days []CalendarDay `json:"days"`
	}
}

// HandleCalendar serves the fixed event schedule, each day flagged past
// or not against event-local time.
func (h *ReportHandler) HandleCalendar(ctx context.Context, _ *struct{}) (*CalendarResponse, error) {
	res := &CalendarResponse{}
	for _, d := range event.Calendar {
		day := CalendarDay{
			Label: d.Label,
			Phase: d.Phase,
			Past:  event.IsPast(d.Label, h.cfg.EventTZOffsetMinutes),
		}
		if parsed, err := event.ParseLabel(d.Label); err == nil {
			day.Date = event.FormatInput(parsed)
			day.Display = event.FormatDisplay(parsed)
		}
		res.Body.Days = append(res.Body.Days, day)
	}
	return res, nil
}
