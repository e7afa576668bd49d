package http

import (
	"net/http"

	"github.com/opsview-hr/workforce-backend-go/internal/domain/dashboard"
	"github.com/opsview-hr/workforce-backend-go/internal/domain/period"
	"github.com/opsview-hr/workforce-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	// GetAdminDashboard returns the combined admin dashboard payload
	GetAdminDashboard(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.Service
}

func NewDashboardHandler(dashboardService dashboard.Service) DashboardHandler {
	return &dashboardHandlerImpl{dashboardService: dashboardService}
}

// GetAdminDashboard handles GET /dashboard/admin
func (h *dashboardHandlerImpl) GetAdminDashboard(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := dashboard.AdminQuery{
		Shift: q.Get("turno"),
		Period: period.Query{
			Date:      q.Get("data"),
			StartDate: q.Get("dataInicio"),
			EndDate:   q.Get("dataFim"),
			Preset:    q.Get("periodo"),
		},
	}

	result, err := h.dashboardService.GetAdminDashboard(r.Context(), query)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
