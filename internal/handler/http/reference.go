package http

import (
	"net/http"

	"github.com/opsview-hr/workforce-backend-go/internal/domain/company"
	"github.com/opsview-hr/workforce-backend-go/internal/domain/reference"
	"github.com/opsview-hr/workforce-backend-go/internal/handler/http/response"
)

// ReferenceHandler serves the lookup lists behind the dashboard filter
// dropdowns.
type ReferenceHandler interface {
	ListShifts(w http.ResponseWriter, r *http.Request)
	ListCompanies(w http.ResponseWriter, r *http.Request)
}

type referenceHandlerImpl struct {
	shifts    reference.ShiftRepository
	companies company.Repository
}

func NewReferenceHandler(shifts reference.ShiftRepository, companies company.Repository) ReferenceHandler {
	return &referenceHandlerImpl{shifts: shifts, companies: companies}
}

// ListShifts handles GET /turnos
func (h *referenceHandlerImpl) ListShifts(w http.ResponseWriter, r *http.Request) {
	shifts, err := h.shifts.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, shifts)
}

// ListCompanies handles GET /empresas
func (h *referenceHandlerImpl) ListCompanies(w http.ResponseWriter, r *http.Request) {
	companies, err := h.companies.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, companies)
}
