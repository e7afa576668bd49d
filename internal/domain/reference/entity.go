package reference

import "context"

// Shift, WorkSchedule and Sector are pure lookup entities joined into the
// employee projection; the core reads them for filter dropdowns only.

type Shift struct {
	ID   string
	Code string
	Name string
}

type WorkSchedule struct {
	ID   string
	Name string
}

type Sector struct {
	ID   string
	Name string
}

type ShiftRepository interface {
	List(ctx context.Context) ([]Shift, error)
}
