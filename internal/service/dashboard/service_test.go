package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/opsview-hr/workforce-backend-go/internal/domain/attendance"
	"github.com/opsview-hr/workforce-backend-go/internal/domain/certificate"
	"github.com/opsview-hr/workforce-backend-go/internal/domain/dashboard"
	"github.com/opsview-hr/workforce-backend-go/internal/domain/employee"
	"github.com/opsview-hr/workforce-backend-go/internal/domain/occurrence"
	"github.com/opsview-hr/workforce-backend-go/internal/domain/period"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeRepo struct {
	workforce []employee.Employee
	inactive  int64
	movements []employee.Movement

	gotShift string
	err      error
}

func (f *fakeEmployeeRepo) ListWorkforce(_ context.Context, shiftCode string, _ ...employee.LifecycleStatus) ([]employee.Employee, error) {
	f.gotShift = shiftCode
	return f.workforce, f.err
}

func (f *fakeEmployeeRepo) CountByStatus(_ context.Context, _ employee.LifecycleStatus) (int64, error) {
	return f.inactive, f.err
}

func (f *fakeEmployeeRepo) CountMovements(_ context.Context, _, _ time.Time) ([]employee.Movement, error) {
	return f.movements, f.err
}

type fakeAttendanceRepo struct {
	records []attendance.Record
	err     error
}

func (f *fakeAttendanceRepo) ListByPeriod(_ context.Context, _, _ time.Time, _ string) ([]attendance.Record, error) {
	return f.records, f.err
}

type fakeCertificateRepo struct {
	certs []certificate.Certificate
	err   error
}

func (f *fakeCertificateRepo) ListByPeriod(_ context.Context, _, _ time.Time) ([]certificate.Certificate, error) {
	return f.certs, f.err
}

type fakeOccurrenceRepo struct {
	actions   []occurrence.DisciplinaryAction
	accidents []occurrence.WorkplaceAccident
	err       error
}

func (f *fakeOccurrenceRepo) ListDisciplinary(_ context.Context, _, _ time.Time) ([]occurrence.DisciplinaryAction, error) {
	return f.actions, f.err
}

func (f *fakeOccurrenceRepo) ListAccidents(_ context.Context, _, _ time.Time) ([]occurrence.WorkplaceAccident, error) {
	return f.accidents, f.err
}

func newService(emp *fakeEmployeeRepo, att *fakeAttendanceRepo, certs *fakeCertificateRepo, occ *fakeOccurrenceRepo, now time.Time) *DashboardServiceImpl {
	return &DashboardServiceImpl{
		employees:    emp,
		attendance:   att,
		certificates: certs,
		occurrences:  occ,
		now:          func() time.Time { return now },
	}
}

func TestGetAdminDashboard_AssemblesPayload(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	day1 := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	clockIn1 := day1.Add(8 * time.Hour)
	clockIn2 := day2.Add(8 * time.Hour)
	acme := "Acme"
	forte := "RH Forte Servicos"

	emp := &fakeEmployeeRepo{
		workforce: []employee.Employee{
			{
				OpsID: "A", FullName: "Ana", Gender: employee.GenderFemale,
				HireDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
				Status:   employee.StatusActive, CompanyName: &acme,
			},
			{
				OpsID: "B", FullName: "Bruno", Gender: employee.GenderMale,
				HireDate: time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC),
				Status:   employee.StatusOnLeave, CompanyName: &forte,
			},
		},
		inactive:  3,
		movements: []employee.Movement{{CompanyName: "Acme", Hires: 1, Terminations: 1}},
	}
	att := &fakeAttendanceRepo{
		records: []attendance.Record{
			{EmployeeOpsID: "A", Date: day1, ClockIn: &clockIn1},
			{EmployeeOpsID: "A", Date: day2, ClockIn: &clockIn2},
			{EmployeeOpsID: "B", Date: day1, AbsenceType: &attendance.AbsenceType{Code: attendance.AbsenceMandatoryRest}},
			// B has no record on day2: unjustified absence.
		},
	}
	certs := &fakeCertificateRepo{
		certs: []certificate.Certificate{{
			ID: "c1", EmployeeOpsID: "B", EmployeeName: "Bruno",
			StartDate: day1, EndDate: day1.AddDate(0, 0, 19), Days: 20,
		}},
	}
	occ := &fakeOccurrenceRepo{}

	svc := newService(emp, att, certs, occ, now)
	resp, err := svc.GetAdminDashboard(context.Background(), dashboard.AdminQuery{
		Shift:  "T1",
		Period: period.Query{StartDate: "2024-03-04", EndDate: "2024-03-05"},
	})

	require.NoError(t, err)
	assert.Equal(t, "T1", emp.gotShift, "shift filter reaches the roster read")

	assert.Equal(t, dashboard.PeriodInfo{Inicio: "2024-03-04", Fim: "2024-03-05", Dias: 2}, resp.Periodo)

	// A present both days; B has one administrative day and one missing day.
	assert.Equal(t, 2, resp.Kpis.TotalEscalados)
	assert.Equal(t, 1, resp.Kpis.Presentes)
	assert.Equal(t, 4, resp.Kpis.DiasEsperados)
	assert.Equal(t, 1, resp.Kpis.DiasAbsenteismo)
	assert.Equal(t, 25.0, resp.Kpis.Absenteismo)
	assert.Equal(t, 50.0, resp.Kpis.Turnover)
	assert.Equal(t, int64(1), resp.Kpis.Contratacoes)

	// B's 20 certificate days push them into the long-leave bucket.
	assert.Equal(t, 1, resp.StatusColaboradores.Ativos)
	assert.Equal(t, 1, resp.StatusColaboradores.AfastamentoLongo)
	assert.Equal(t, 0, resp.StatusColaboradores.AfastamentoCurto)
	assert.Equal(t, 3, resp.StatusColaboradores.Inativos)
	assert.Equal(t, 5, resp.StatusColaboradores.Total)
	assert.Equal(t, 20.0, resp.StatusColaboradores.PercentualIndisponiveis)

	// Two company rows plus the synthetic provider rollup for RH Forte.
	require.Len(t, resp.EmpresasResumo, 3)
	assert.Equal(t, "Acme", resp.EmpresasResumo[0].Empresa)
	assert.Equal(t, "RH Forte Servicos", resp.EmpresasResumo[1].Empresa)
	assert.Equal(t, "Total Terceirizadas", resp.EmpresasResumo[2].Empresa)
	assert.Equal(t, 1, resp.EmpresasResumo[2].Headcount)

	require.Len(t, resp.Eventos, 1)
	assert.Equal(t, "Bruno", resp.Eventos[0].Colaborador)
	assert.Equal(t, "ATESTADO", resp.Eventos[0].Tipo)
}

func TestGetAdminDashboard_PropagatesReadFailure(t *testing.T) {
	t.Parallel()

	readErr := errors.New("attendance query failed")
	emp := &fakeEmployeeRepo{}
	att := &fakeAttendanceRepo{err: readErr}
	svc := newService(emp, att, &fakeCertificateRepo{}, &fakeOccurrenceRepo{}, time.Now())

	resp, err := svc.GetAdminDashboard(context.Background(), dashboard.AdminQuery{})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, readErr)
}

func TestGetAdminDashboard_EmptyRoster(t *testing.T) {
	t.Parallel()

	svc := newService(&fakeEmployeeRepo{}, &fakeAttendanceRepo{}, &fakeCertificateRepo{}, &fakeOccurrenceRepo{}, time.Now())

	resp, err := svc.GetAdminDashboard(context.Background(), dashboard.AdminQuery{})

	require.NoError(t, err)
	assert.Zero(t, resp.Kpis.TotalEscalados)
	assert.Zero(t, resp.Kpis.Absenteismo, "zero denominator collapses to zero")
	assert.Empty(t, resp.EmpresasResumo)
	assert.NotNil(t, resp.Eventos)
}
