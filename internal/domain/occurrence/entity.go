package occurrence

import (
	"context"
	"time"
)

// DisciplinaryAction and WorkplaceAccident feed the event timeline only.

type DisciplinaryAction struct {
	ID           string
	EmployeeName string
	CompanyName  *string
	SectorName   *string
	Date         time.Time
	Reason       string
}

type WorkplaceAccident struct {
	ID           string
	EmployeeName string
	CompanyName  *string
	SectorName   *string
	Date         time.Time
	Description  string
}

type Repository interface {
	ListDisciplinary(ctx context.Context, start, end time.Time) ([]DisciplinaryAction, error)
	ListAccidents(ctx context.Context, start, end time.Time) ([]WorkplaceAccident, error)
}
