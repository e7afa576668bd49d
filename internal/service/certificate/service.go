package certificate

import (
	"context"
	"time"

	"github.com/opsview-hr/workforce-backend-go/internal/domain/certificate"
	"github.com/opsview-hr/workforce-backend-go/internal/domain/employee"
	"github.com/opsview-hr/workforce-backend-go/internal/pkg/numeric"
	"golang.org/x/sync/errgroup"
)

const dayLayout = "2006-01-02"

type AnalyticsServiceImpl struct {
	certificates certificate.Repository
	employees    employee.Repository
	now          func() time.Time
}

func NewAnalyticsService(certificates certificate.Repository, employees employee.Repository) certificate.AnalyticsService {
	return &AnalyticsServiceImpl{
		certificates: certificates,
		employees:    employees,
		now:          time.Now,
	}
}

// Summary computes the atestados KPI block. The certificate list and the
// active-headcount count are independent reads, issued together.
func (s *AnalyticsServiceImpl) Summary(ctx context.Context, start, end time.Time) (*certificate.SummaryResponse, error) {
	var (
		certs     []certificate.Certificate
		headcount int64
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		certs, err = s.certificates.ListByPeriod(gCtx, start, end)
		return err
	})
	g.Go(func() error {
		var err error
		headcount, err = s.employees.CountByStatus(gCtx, employee.StatusActive)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &certificate.SummaryResponse{
		Kpis: summarize(certs, headcount, s.now()),
	}, nil
}

func (s *AnalyticsServiceImpl) Distributions(ctx context.Context, start, end time.Time) (*certificate.DistributionsResponse, error) {
	certs, err := s.certificates.ListByPeriod(ctx, start, end)
	if err != nil {
		return nil, err
	}
	resp := distributions(certs, end)
	return &resp, nil
}

func (s *AnalyticsServiceImpl) Trend(ctx context.Context, start, end time.Time) ([]certificate.TrendPoint, error) {
	certs, err := s.certificates.ListByPeriod(ctx, start, end)
	if err != nil {
		return nil, err
	}
	return trend(certs), nil
}

func (s *AnalyticsServiceImpl) Risk(ctx context.Context, start, end time.Time) (*certificate.RiskResponse, error) {
	certs, err := s.certificates.ListByPeriod(ctx, start, end)
	if err != nil {
		return nil, err
	}
	return &certificate.RiskResponse{TopOfensores: rankOffenders(certs, end)}, nil
}

// summarize folds the period's certificates into the KPI block. Rolling
// counts (today, week from Monday, month) are relative to now, not to the
// queried period.
func summarize(certs []certificate.Certificate, activeHeadcount int64, now time.Time) certificate.SummaryKPIs {
	perEmployee := make(map[string]int, len(certs))
	kpis := certificate.SummaryKPIs{TotalPeriodo: len(certs)}

	today := startOfDay(now)
	weekStart := startOfWeek(now)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	for _, c := range certs {
		perEmployee[c.EmployeeOpsID]++
		kpis.DiasAfastados += c.Days

		day := startOfDay(c.StartDate)
		if day.Equal(today) {
			kpis.Hoje++
		}
		if !day.Before(weekStart) && !day.After(today) {
			kpis.Semana++
		}
		if !day.Before(monthStart) && !day.After(today) {
			kpis.Mes++
		}
	}

	recurrent := 0
	for _, n := range perEmployee {
		if n >= 2 {
			recurrent++
		}
	}

	kpis.ColaboradoresImpactados = len(perEmployee)
	kpis.Recorrencia = numeric.Percent(float64(recurrent), float64(len(perEmployee)))
	kpis.PercentualHC = numeric.Percent(float64(len(perEmployee)), float64(activeHeadcount))
	return kpis
}

// trend renders one point per calendar day, ascending.
func trend(certs []certificate.Certificate) []certificate.TrendPoint {
	counts := make(map[string]int, len(certs))
	for _, c := range certs {
		counts[c.StartDate.Format(dayLayout)]++
	}

	points := make([]certificate.TrendPoint, 0, len(counts))
	for day, total := range counts {
		points = append(points, certificate.TrendPoint{Data: day, Total: total})
	}
	sortTrend(points)
	return points
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// startOfWeek returns the Monday of t's week.
func startOfWeek(t time.Time) time.Time {
	day := startOfDay(t)
	offset := int(day.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7
	}
	return day.AddDate(0, 0, -offset)
}
