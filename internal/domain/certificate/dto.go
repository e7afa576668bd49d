package certificate

import (
	"context"
	"time"

	"github.com/opsview-hr/workforce-backend-go/internal/domain/dashboard"
)

// SummaryResponse is the atestados KPI block.
type SummaryResponse struct {
	Kpis SummaryKPIs `json:"kpis"`
}

type SummaryKPIs struct {
	TotalPeriodo            int     `json:"totalPeriodo"`
	Recorrencia             float64 `json:"recorrencia"` // percent, 2 decimals
	DiasAfastados           int     `json:"diasAfastados"`
	ColaboradoresImpactados int     `json:"colaboradoresImpactados"`
	PercentualHC            float64 `json:"percentualHC"`
	Hoje                    int     `json:"hoje"`
	Semana                  int     `json:"semana"` // week starts Monday
	Mes                     int     `json:"mes"`
}

// DistributionsResponse slices the period's certificates along every
// dimension the frontend charts.
type DistributionsResponse struct {
	PorEmpresa   []dashboard.NameValue `json:"porEmpresa"`
	PorSetor     []dashboard.NameValue `json:"porSetor"`
	PorTurno     []dashboard.NameValue `json:"porTurno"`
	PorGenero    []dashboard.NameValue `json:"porGenero"`
	PorLider     []dashboard.NameValue `json:"porLider"`
	PorCid       []dashboard.NameValue `json:"porCid"` // capped to top 10
	PorTempoCasa []dashboard.NameValue `json:"porTempoCasa"`
}

// TrendPoint is one day of the certificate trend series.
type TrendPoint struct {
	Data  string `json:"data"` // YYYY-MM-DD
	Total int    `json:"total"`
}

// RiskResponse carries the ranked top-offenders table.
type RiskResponse struct {
	TopOfensores []Offender `json:"topOfensores"`
}

// Offender is one row of the ranking: certificate count first, absence days
// as the tie-break, tenure bucketed against the period end.
type Offender struct {
	Rank           int    `json:"rank"`
	OpsID          string `json:"opsId"`
	Nome           string `json:"nome"`
	Empresa        string `json:"empresa"`
	Setor          string `json:"setor"`
	TotalAtestados int    `json:"totalAtestados"`
	DiasAfastados  int    `json:"diasAfastados"`
	DiasEmpresa    int    `json:"diasEmpresa"`
	TempoCasaFaixa string `json:"tempoCasaFaixa"`
}

// AnalyticsService computes the atestados dashboard payloads.
type AnalyticsService interface {
	Summary(ctx context.Context, start, end time.Time) (*SummaryResponse, error)
	Distributions(ctx context.Context, start, end time.Time) (*DistributionsResponse, error)
	Trend(ctx context.Context, start, end time.Time) ([]TrendPoint, error)
	Risk(ctx context.Context, start, end time.Time) (*RiskResponse, error)
}
