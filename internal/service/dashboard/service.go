package dashboard

import (
	"context"
	"time"

	"github.com/opsview-hr/workforce-backend-go/internal/domain/attendance"
	"github.com/opsview-hr/workforce-backend-go/internal/domain/certificate"
	"github.com/opsview-hr/workforce-backend-go/internal/domain/dashboard"
	"github.com/opsview-hr/workforce-backend-go/internal/domain/employee"
	"github.com/opsview-hr/workforce-backend-go/internal/domain/occurrence"
	"github.com/opsview-hr/workforce-backend-go/internal/domain/period"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	employees    employee.Repository
	attendance   attendance.Repository
	certificates certificate.Repository
	occurrences  occurrence.Repository
	now          func() time.Time
}

func NewDashboardService(
	employees employee.Repository,
	attendanceRepo attendance.Repository,
	certificates certificate.Repository,
	occurrences occurrence.Repository,
) dashboard.Service {
	return &DashboardServiceImpl{
		employees:    employees,
		attendance:   attendanceRepo,
		certificates: certificates,
		occurrences:  occurrences,
		now:          time.Now,
	}
}

// rosterStatuses are the lifecycle statuses that put an employee on the
// period grid. Inactive employees are counted separately.
var rosterStatuses = []employee.LifecycleStatus{
	employee.StatusActive,
	employee.StatusOnLeave,
	employee.StatusOnVacation,
}

// GetAdminDashboard fans out the independent reads, waits for all of them
// and folds the results into the admin payload. Any read failure fails the
// whole request; the reducers themselves never error.
func (s *DashboardServiceImpl) GetAdminDashboard(ctx context.Context, query dashboard.AdminQuery) (*dashboard.AdminResponse, error) {
	now := s.now()
	rng := period.Resolve(query.Period, now)

	var (
		workforce []employee.Employee
		inactive  int64
		movements []employee.Movement
		records   []attendance.Record
		certs     []certificate.Certificate
		actions   []occurrence.DisciplinaryAction
		accidents []occurrence.WorkplaceAccident
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		workforce, err = s.employees.ListWorkforce(gCtx, query.Shift, rosterStatuses...)
		return err
	})
	g.Go(func() error {
		var err error
		inactive, err = s.employees.CountByStatus(gCtx, employee.StatusInactive)
		return err
	})
	g.Go(func() error {
		var err error
		movements, err = s.employees.CountMovements(gCtx, rng.Start, rng.End)
		return err
	})
	g.Go(func() error {
		var err error
		records, err = s.attendance.ListByPeriod(gCtx, rng.Start, rng.End, query.Shift)
		return err
	})
	g.Go(func() error {
		var err error
		certs, err = s.certificates.ListByPeriod(gCtx, rng.Start, rng.End)
		return err
	})
	g.Go(func() error {
		var err error
		actions, err = s.occurrences.ListDisciplinary(gCtx, rng.Start, rng.End)
		return err
	})
	g.Go(func() error {
		var err error
		accidents, err = s.occurrences.ListAccidents(gCtx, rng.Start, rng.End)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	roster := make([]employee.Normalized, 0, len(workforce))
	for _, emp := range workforce {
		roster = append(roster, emp.Normalized())
	}

	days := buildPersonDays(roster, records, rng)
	certDays := certificateDaysByEmployee(certs)

	byCompany := make(map[string]movementCount, len(movements))
	var hires, terminations int64
	for _, mv := range movements {
		byCompany[mv.CompanyName] = movementCount{hires: mv.Hires, terminations: mv.Terminations}
		hires += mv.Hires
		terminations += mv.Terminations
	}

	periodDays := rng.Days()
	return &dashboard.AdminResponse{
		Periodo: dashboard.PeriodInfo{
			Inicio: rng.Start.Format(dayLayout),
			Fim:    rng.End.Format(dayLayout),
			Dias:   periodDays,
		},
		Kpis:                kpiFragment(days, periodDays, hires, terminations),
		StatusColaboradores: statusFragment(roster, certDays, inactive),
		Genero:              demographicsFragment(roster, now),
		EmpresasResumo:      companyFragment(roster, days, byCompany, periodDays, now),
		Escalas:             scheduleFragment(days),
		Lideres:             leaderFragment(days),
		Eventos:             buildTimeline(certs, actions, accidents),
	}, nil
}
