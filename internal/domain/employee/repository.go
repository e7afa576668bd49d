package employee

import (
	"context"
	"time"
)

// Movement counts hires and terminations per company inside a period.
type Movement struct {
	CompanyName  string
	Hires        int64
	Terminations int64
}

// Repository reads roster projections for the analytics core.
type Repository interface {
	// ListWorkforce returns employees whose lifecycle status is one of the
	// given statuses, with company/sector/shift/schedule/leader joined.
	// shiftCode narrows to one shift; empty or "ALL" means every shift.
	ListWorkforce(ctx context.Context, shiftCode string, statuses ...LifecycleStatus) ([]Employee, error)

	// CountByStatus returns the number of employees in a lifecycle status.
	CountByStatus(ctx context.Context, status LifecycleStatus) (int64, error)

	// CountMovements returns hires and terminations per company in
	// [start, end], for turnover math.
	CountMovements(ctx context.Context, start, end time.Time) ([]Movement, error)
}
