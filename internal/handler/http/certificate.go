package http

import (
	"net/http"
	"time"

	"github.com/opsview-hr/workforce-backend-go/internal/domain/certificate"
	"github.com/opsview-hr/workforce-backend-go/internal/domain/period"
	"github.com/opsview-hr/workforce-backend-go/internal/handler/http/response"
)

type CertificateHandler interface {
	// GetSummary returns the atestados KPI block
	GetSummary(w http.ResponseWriter, r *http.Request)
	// GetDistributions returns the per-dimension breakdowns
	GetDistributions(w http.ResponseWriter, r *http.Request)
	// GetTrend returns the daily trend series
	GetTrend(w http.ResponseWriter, r *http.Request)
	// GetRisk returns the top-offenders ranking
	GetRisk(w http.ResponseWriter, r *http.Request)
}

type certificateHandlerImpl struct {
	analyticsService certificate.AnalyticsService
}

func NewCertificateHandler(analyticsService certificate.AnalyticsService) CertificateHandler {
	return &certificateHandlerImpl{analyticsService: analyticsService}
}

// GetSummary handles GET /dashboard/atestados/resumo
func (h *certificateHandlerImpl) GetSummary(w http.ResponseWriter, r *http.Request) {
	start, end, ok := requirePeriod(w, r)
	if !ok {
		return
	}

	result, err := h.analyticsService.Summary(r.Context(), start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetDistributions handles GET /dashboard/atestados/distribuicoes
func (h *certificateHandlerImpl) GetDistributions(w http.ResponseWriter, r *http.Request) {
	start, end, ok := requirePeriod(w, r)
	if !ok {
		return
	}

	result, err := h.analyticsService.Distributions(r.Context(), start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetTrend handles GET /dashboard/atestados/tendencia
func (h *certificateHandlerImpl) GetTrend(w http.ResponseWriter, r *http.Request) {
	start, end, ok := requirePeriod(w, r)
	if !ok {
		return
	}

	result, err := h.analyticsService.Trend(r.Context(), start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetRisk handles GET /dashboard/atestados/risco
func (h *certificateHandlerImpl) GetRisk(w http.ResponseWriter, r *http.Request) {
	start, end, ok := requirePeriod(w, r)
	if !ok {
		return
	}

	result, err := h.analyticsService.Risk(r.Context(), start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// requirePeriod parses the mandatory inicio/fim bounds. Missing or malformed
// bounds reject the request before any computation starts.
func requirePeriod(w http.ResponseWriter, r *http.Request) (time.Time, time.Time, bool) {
	inicio := r.URL.Query().Get("inicio")
	fim := r.URL.Query().Get("fim")
	if inicio == "" || fim == "" {
		response.BadRequest(w, "inicio and fim are required (YYYY-MM-DD)")
		return time.Time{}, time.Time{}, false
	}

	start, err := period.ParseDay(inicio)
	if err != nil {
		response.BadRequest(w, err.Error())
		return time.Time{}, time.Time{}, false
	}
	end, err := period.ParseDay(fim)
	if err != nil {
		response.BadRequest(w, err.Error())
		return time.Time{}, time.Time{}, false
	}
	if end.Before(start) {
		response.BadRequest(w, "fim must not be before inicio")
		return time.Time{}, time.Time{}, false
	}

	rng := period.FromDays(start, end)
	return rng.Start, rng.End, true
}
