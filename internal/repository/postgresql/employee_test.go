package postgresql

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/opsview-hr/workforce-backend-go/internal/domain/employee"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var workforceColumns = []string{
	"ops_id", "full_name", "gender", "birth_date", "hire_date",
	"termination_date", "status",
	"company_name", "sector_name", "shift_code", "shift_name",
	"schedule_name", "leader_name",
}

func TestListWorkforce(t *testing.T) {
	t.Parallel()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	opsID := uuid.NewString()
	gender := "F"
	company := "Acme"
	hireDate := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`FROM employees e`).
		WithArgs([]string{"ACTIVE", "ON_LEAVE"}, "T1").
		WillReturnRows(pgxmock.NewRows(workforceColumns).
			AddRow(
				opsID, "Ana Souza", &gender, (*time.Time)(nil), hireDate,
				(*time.Time)(nil), "ACTIVE",
				&company, (*string)(nil), (*string)(nil), (*string)(nil),
				(*string)(nil), (*string)(nil),
			))

	repo := NewEmployeeRepository(mock)
	employees, err := repo.ListWorkforce(context.Background(), "T1",
		employee.StatusActive, employee.StatusOnLeave)

	require.NoError(t, err)
	require.Len(t, employees, 1)
	assert.Equal(t, opsID, employees[0].OpsID)
	assert.Equal(t, employee.GenderFemale, employees[0].Gender)
	assert.Equal(t, employee.StatusActive, employees[0].Status)
	assert.Equal(t, "Acme", *employees[0].CompanyName)
	assert.Nil(t, employees[0].SectorName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// The "ALL" sentinel reaches the query as the empty filter.
func TestListWorkforce_AllShifts(t *testing.T) {
	t.Parallel()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`FROM employees e`).
		WithArgs([]string{"ACTIVE"}, "").
		WillReturnRows(pgxmock.NewRows(workforceColumns))

	repo := NewEmployeeRepository(mock)
	employees, err := repo.ListWorkforce(context.Background(), "ALL", employee.StatusActive)

	require.NoError(t, err)
	assert.Empty(t, employees)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListWorkforce_QueryError(t *testing.T) {
	t.Parallel()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`FROM employees e`).
		WithArgs([]string{"ACTIVE"}, "").
		WillReturnError(errors.New("connection refused"))

	repo := NewEmployeeRepository(mock)
	_, err = repo.ListWorkforce(context.Background(), "", employee.StatusActive)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list workforce")
}

func TestCountByStatus(t *testing.T) {
	t.Parallel()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM employees WHERE status = \$1`).
		WithArgs("INACTIVE").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(7)))

	repo := NewEmployeeRepository(mock)
	count, err := repo.CountByStatus(context.Background(), employee.StatusInactive)

	require.NoError(t, err)
	assert.Equal(t, int64(7), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountMovements(t *testing.T) {
	t.Parallel()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC)

	mock.ExpectQuery(`GROUP BY COALESCE\(c\.name, ''\)`).
		WithArgs(start, end).
		WillReturnRows(pgxmock.NewRows([]string{"company_name", "hires", "terminations"}).
			AddRow("Acme", int64(3), int64(1)).
			AddRow("Beta", int64(0), int64(2)))

	repo := NewEmployeeRepository(mock)
	movements, err := repo.CountMovements(context.Background(), start, end)

	require.NoError(t, err)
	require.Len(t, movements, 2)
	assert.Equal(t, employee.Movement{CompanyName: "Acme", Hires: 3, Terminations: 1}, movements[0])
	assert.NoError(t, mock.ExpectationsWereMet())
}
