package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/opsview-hr/workforce-backend-go/internal/domain/employee"
	"github.com/opsview-hr/workforce-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db database.Querier
}

func NewEmployeeRepository(db database.Querier) employee.Repository {
	return &employeeRepositoryImpl{db: db}
}

// ListWorkforce returns employees in the given lifecycle statuses with their
// reference data joined in one query.
func (r *employeeRepositoryImpl) ListWorkforce(ctx context.Context, shiftCode string, statuses ...employee.LifecycleStatus) ([]employee.Employee, error) {
	query := `
		SELECT
			e.ops_id, e.full_name, e.gender, e.birth_date, e.hire_date,
			e.termination_date, e.status,
			c.name AS company_name,
			sec.name AS sector_name,
			s.code AS shift_code,
			s.name AS shift_name,
			ws.name AS schedule_name,
			l.full_name AS leader_name
		FROM employees e
		LEFT JOIN companies c ON c.id = e.company_id
		LEFT JOIN sectors sec ON sec.id = e.sector_id
		LEFT JOIN shifts s ON s.id = e.shift_id
		LEFT JOIN work_schedules ws ON ws.id = e.work_schedule_id
		LEFT JOIN employees l ON l.ops_id = e.leader_ops_id
		WHERE e.status = ANY($1)
		AND ($2 = '' OR s.code = $2)
		ORDER BY e.full_name
	`

	codes := make([]string, len(statuses))
	for i, st := range statuses {
		codes[i] = string(st)
	}

	rows, err := r.db.Query(ctx, query, codes, normalizeShift(shiftCode))
	if err != nil {
		return nil, fmt.Errorf("failed to list workforce: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		var status string
		var gender *string
		err := rows.Scan(
			&emp.OpsID, &emp.FullName, &gender, &emp.BirthDate, &emp.HireDate,
			&emp.TerminationDate, &status,
			&emp.CompanyName, &emp.SectorName, &emp.ShiftCode, &emp.ShiftName,
			&emp.ScheduleName, &emp.LeaderName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		emp.Status = employee.LifecycleStatus(status)
		if gender != nil {
			emp.Gender = employee.Gender(*gender)
		}
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read workforce rows: %w", err)
	}
	return employees, nil
}

// CountByStatus returns the number of employees in one lifecycle status.
func (r *employeeRepositoryImpl) CountByStatus(ctx context.Context, status employee.LifecycleStatus) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM employees WHERE status = $1`,
		string(status),
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count employees by status: %w", err)
	}
	return count, nil
}

// CountMovements returns hires and terminations per company inside the
// period, in one query.
func (r *employeeRepositoryImpl) CountMovements(ctx context.Context, start, end time.Time) ([]employee.Movement, error) {
	query := `
		SELECT
			COALESCE(c.name, '') AS company_name,
			COALESCE(SUM(CASE WHEN e.hire_date >= $1 AND e.hire_date <= $2 THEN 1 ELSE 0 END), 0) AS hires,
			COALESCE(SUM(CASE WHEN e.termination_date >= $1 AND e.termination_date <= $2 THEN 1 ELSE 0 END), 0) AS terminations
		FROM employees e
		LEFT JOIN companies c ON c.id = e.company_id
		GROUP BY COALESCE(c.name, '')
		HAVING SUM(CASE WHEN e.hire_date >= $1 AND e.hire_date <= $2 THEN 1 ELSE 0 END) > 0
		OR SUM(CASE WHEN e.termination_date >= $1 AND e.termination_date <= $2 THEN 1 ELSE 0 END) > 0
	`

	rows, err := r.db.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to count movements: %w", err)
	}
	defer rows.Close()

	var movements []employee.Movement
	for rows.Next() {
		var mv employee.Movement
		if err := rows.Scan(&mv.CompanyName, &mv.Hires, &mv.Terminations); err != nil {
			return nil, fmt.Errorf("failed to scan movement: %w", err)
		}
		movements = append(movements, mv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read movement rows: %w", err)
	}
	return movements, nil
}

// normalizeShift maps the "ALL" sentinel to the empty filter.
func normalizeShift(shiftCode string) string {
	if strings.EqualFold(shiftCode, "ALL") {
		return ""
	}
	return shiftCode
}
