package postgresql

import (
	"context"
	"fmt"

	"github.com/opsview-hr/workforce-backend-go/internal/domain/company"
	"github.com/opsview-hr/workforce-backend-go/internal/domain/reference"
	"github.com/opsview-hr/workforce-backend-go/internal/pkg/database"
)

type companyRepositoryImpl struct {
	db database.Querier
}

func NewCompanyRepository(db database.Querier) company.Repository {
	return &companyRepositoryImpl{db: db}
}

func (r *companyRepositoryImpl) List(ctx context.Context) ([]company.Company, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, tax_id, active FROM companies WHERE active ORDER BY name`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	defer rows.Close()

	var companies []company.Company
	for rows.Next() {
		var c company.Company
		if err := rows.Scan(&c.ID, &c.Name, &c.TaxID, &c.Active); err != nil {
			return nil, fmt.Errorf("failed to scan company: %w", err)
		}
		companies = append(companies, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read company rows: %w", err)
	}
	return companies, nil
}

type shiftRepositoryImpl struct {
	db database.Querier
}

func NewShiftRepository(db database.Querier) reference.ShiftRepository {
	return &shiftRepositoryImpl{db: db}
}

func (r *shiftRepositoryImpl) List(ctx context.Context) ([]reference.Shift, error) {
	rows, err := r.db.Query(ctx, `SELECT id, code, name FROM shifts ORDER BY code`)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	defer rows.Close()

	var shifts []reference.Shift
	for rows.Next() {
		var s reference.Shift
		if err := rows.Scan(&s.ID, &s.Code, &s.Name); err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		shifts = append(shifts, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read shift rows: %w", err)
	}
	return shifts, nil
}
