package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/GildedRose_Go/internal/domain"
	"github.com/osse101/GildedRose_Go/internal/event"
	"github.com/osse101/GildedRose_Go/internal/inventory"
)

// DayTrigger runs a single out-of-schedule aging day. The nightly worker implements it.
type DayTrigger interface {
	TriggerNow(ctx context.Context) (*domain.AgingReport, error)
}

// AgingHandler handles day advancement and report endpoints
type AgingHandler struct {
	service inventory.Service
	trigger DayTrigger
}

// NewAgingHandler creates a new aging handler. With a nil trigger, single-day
// advances go straight to the service.
func NewAgingHandler(service inventory.Service, trigger DayTrigger) *AgingHandler {
	return &AgingHandler{service: service, trigger: trigger}
}

// AdvanceRequest is the request body for advancing days.
// Days defaults to 1 when omitted.
type AdvanceRequest struct {
	Days *int `json:"days" validate:"omitempty,min=1,max=365"`
}

// AdvanceResponse lists the reports produced by an advance
type AdvanceResponse struct {
	Message    string                `json:"message"`
	CurrentDay int                   `json:"current_day"`
	Reports    []*domain.AgingReport `json:"reports"`
}

// ReportsResponse lists retained aging reports, newest first
type ReportsResponse struct {
	Reports []*domain.AgingReport `json:"reports"`
	Count   int                   `json:"count"`
}

// CurrentDayResponse reports how many days have been simulated
type CurrentDayResponse struct {
	Day int `json:"day"`
}

// HandleAdvance ages the whole inventory by the requested number of days
// @Summary Advance days
// @Description Age every stocked item by one or more days (default 1, max 365)
// @Tags aging
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body AdvanceRequest false "Days to advance"
// @Success 200 {object} AdvanceResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /aging/advance [post]
func (h *AgingHandler) HandleAdvance(w http.ResponseWriter, r *http.Request) {
	req := AdvanceRequest{}
	if r.ContentLength != 0 {
		if err := DecodeAndValidateRequest(r, w, &req, "Advance days"); err != nil {
			return
		}
	}

	days := 1
	if req.Days != nil {
		days = *req.Days
	}

	reports, err := h.advance(r.Context(), days)
	if err != nil {
		respondServiceError(w, r, ErrMsgAdvanceFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, AdvanceResponse{
		Message:    MsgDaysAdvanced,
		CurrentDay: h.service.CurrentDay(r.Context()),
		Reports:    reports,
	})
}

func (h *AgingHandler) advance(ctx context.Context, days int) ([]*domain.AgingReport, error) {
	if days == 1 && h.trigger != nil {
		report, err := h.trigger.TriggerNow(ctx)
		if err != nil {
			return nil, err
		}
		return []*domain.AgingReport{report}, nil
	}
	return h.service.AdvanceDays(inventory.WithTrigger(ctx, event.TriggerManual), days)
}

// HandleListReports returns retained reports, newest first
// @Summary List aging reports
// @Tags aging
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} ReportsResponse
// @Failure 401 {object} ErrorResponse
// @Router /aging/reports [get]
func (h *AgingHandler) HandleListReports(w http.ResponseWriter, r *http.Request) {
	reports := h.service.RecentReports(r.Context())
	respondJSON(w, http.StatusOK, ReportsResponse{Reports: reports, Count: len(reports)})
}

// HandleGetReport returns the report for /{day}
// @Summary Get aging report
// @Tags aging
// @Produce json
// @Security ApiKeyAuth
// @Param day path int true "Simulated day"
// @Success 200 {object} domain.AgingReport
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /aging/reports/{day} [get]
func (h *AgingHandler) HandleGetReport(w http.ResponseWriter, r *http.Request) {
	day, err := strconv.Atoi(chi.URLParam(r, "day"))
	if err != nil || day < 1 {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidDay)
		return
	}

	report, err := h.service.GetReport(r.Context(), day)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetReportFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, report)
}

// HandleCurrentDay returns the simulated day counter
// @Summary Current day
// @Tags aging
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} CurrentDayResponse
// @Router /aging/day [get]
func (h *AgingHandler) HandleCurrentDay(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, CurrentDayResponse{Day: h.service.CurrentDay(r.Context())})
}
