package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/opsview-hr/workforce-backend-go/internal/domain/occurrence"
	"github.com/opsview-hr/workforce-backend-go/internal/pkg/database"
)

type occurrenceRepositoryImpl struct {
	db database.Querier
}

func NewOccurrenceRepository(db database.Querier) occurrence.Repository {
	return &occurrenceRepositoryImpl{db: db}
}

func (r *occurrenceRepositoryImpl) ListDisciplinary(ctx context.Context, start, end time.Time) ([]occurrence.DisciplinaryAction, error) {
	query := `
		SELECT
			da.id, e.full_name, c.name, sec.name, da.date, da.reason
		FROM disciplinary_actions da
		JOIN employees e ON e.ops_id = da.employee_ops_id
		LEFT JOIN companies c ON c.id = e.company_id
		LEFT JOIN sectors sec ON sec.id = e.sector_id
		WHERE da.date >= $1 AND da.date <= $2
		ORDER BY da.date DESC
	`

	rows, err := r.db.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list disciplinary actions: %w", err)
	}
	defer rows.Close()

	var actions []occurrence.DisciplinaryAction
	for rows.Next() {
		var a occurrence.DisciplinaryAction
		if err := rows.Scan(&a.ID, &a.EmployeeName, &a.CompanyName, &a.SectorName, &a.Date, &a.Reason); err != nil {
			return nil, fmt.Errorf("failed to scan disciplinary action: %w", err)
		}
		actions = append(actions, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read disciplinary rows: %w", err)
	}
	return actions, nil
}

func (r *occurrenceRepositoryImpl) ListAccidents(ctx context.Context, start, end time.Time) ([]occurrence.WorkplaceAccident, error) {
	query := `
		SELECT
			wa.id, e.full_name, c.name, sec.name, wa.date, wa.description
		FROM workplace_accidents wa
		JOIN employees e ON e.ops_id = wa.employee_ops_id
		LEFT JOIN companies c ON c.id = e.company_id
		LEFT JOIN sectors sec ON sec.id = e.sector_id
		WHERE wa.date >= $1 AND wa.date <= $2
		ORDER BY wa.date DESC
	`

	rows, err := r.db.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list workplace accidents: %w", err)
	}
	defer rows.Close()

	var accidents []occurrence.WorkplaceAccident
	for rows.Next() {
		var a occurrence.WorkplaceAccident
		if err := rows.Scan(&a.ID, &a.EmployeeName, &a.CompanyName, &a.SectorName, &a.Date, &a.Description); err != nil {
			return nil, fmt.Errorf("failed to scan workplace accident: %w", err)
		}
		accidents = append(accidents, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read accident rows: %w", err)
	}
	return accidents, nil
}
