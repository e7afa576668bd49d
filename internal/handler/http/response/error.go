package response

import (
	"errors"
	"net/http"

	"github.com/opsview-hr/workforce-backend-go/internal/domain/employee"
)

// HandleError maps domain errors to HTTP responses. Upstream failures come
// out as a generic 500 with no internal detail.
func HandleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
