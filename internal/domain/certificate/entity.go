package certificate

import (
	"context"
	"time"
)

// Certificate is a medical certificate projection with the employee's
// dimensions joined, as the analytics distributions slice on all of them.
type Certificate struct {
	ID        string
	StartDate time.Time
	EndDate   time.Time
	Days      int
	CID       *string // diagnosis code, sensitive
	Status    Status

	EmployeeOpsID string
	EmployeeName  string
	Gender        string
	HireDate      time.Time
	CompanyName   *string
	SectorName    *string
	ShiftName     *string
	LeaderName    *string
}

type Status string

const (
	StatusActive    Status = "ACTIVE"
	StatusFinalized Status = "FINALIZED"
	StatusCancelled Status = "CANCELLED"
)

// Repository reads certificate projections.
type Repository interface {
	// ListByPeriod returns non-cancelled certificates whose start date
	// falls inside [start, end].
	ListByPeriod(ctx context.Context, start, end time.Time) ([]Certificate, error)
}
