package dashboard

import (
	"github.com/opsview-hr/workforce-backend-go/internal/domain/period"
)

// AdminQuery carries the raw admin-dashboard request parameters.
type AdminQuery struct {
	Shift  string // turno=<code>|ALL
	Period period.Query
}

// NameValue is one slice of a descending-sorted distribution.
type NameValue struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// AdminResponse is the single payload the admin dashboard renders from.
type AdminResponse struct {
	Periodo             PeriodInfo           `json:"periodo"`
	Kpis                KPIFragment          `json:"kpis"`
	StatusColaboradores StatusFragment       `json:"statusColaboradores"`
	Genero              DemographicsFragment `json:"genero"`
	EmpresasResumo      []CompanyRow         `json:"empresasResumo"`
	Escalas             []ScheduleRow        `json:"escalas"`
	Lideres             []LeaderRow          `json:"lideres"`
	Eventos             []TimelineEvent      `json:"eventos"`
}

// PeriodInfo echoes the resolved range back to the frontend.
type PeriodInfo struct {
	Inicio string `json:"inicio"` // YYYY-MM-DD
	Fim    string `json:"fim"`    // YYYY-MM-DD
	Dias   int    `json:"dias"`
}

// KPIFragment is the headline block.
type KPIFragment struct {
	TotalEscalados  int     `json:"totalEscalados"`
	Presentes       int     `json:"presentes"`
	DiasEsperados   int     `json:"diasEsperados"`
	DiasAbsenteismo int     `json:"diasAbsenteismo"`
	Absenteismo     float64 `json:"absenteismo"` // percent, 2 decimals
	Turnover        float64 `json:"turnover"`    // percent, 2 decimals
	Contratacoes    int64   `json:"contratacoes"`
	Desligamentos   int64   `json:"desligamentos"`
}

// StatusFragment partitions the roster by availability.
type StatusFragment struct {
	Ativos                  int     `json:"ativos"`
	AfastamentoCurto        int     `json:"afastamentoCurto"`
	AfastamentoLongo        int     `json:"afastamentoLongo"`
	Ferias                  int     `json:"ferias"`
	Inativos                int     `json:"inativos"`
	Indisponiveis           int     `json:"indisponiveis"`
	PercentualIndisponiveis float64 `json:"percentualIndisponiveis"`
	Total                   int     `json:"total"`
}

// DemographicsFragment groups gender mix with the age/tenure means.
type DemographicsFragment struct {
	Distribuicao       []NameValue `json:"distribuicao"`
	IdadeMedia         float64     `json:"idadeMedia"`
	TempoCasaMedioDias float64     `json:"tempoCasaMedioDias"`
}

// CompanyRow is one company's rollup, including the synthetic
// outsourced-providers total row.
type CompanyRow struct {
	Empresa            string  `json:"empresa"`
	Headcount          int     `json:"headcount"`
	Escalados          int     `json:"escalados"`
	Presentes          int     `json:"presentes"`
	Absenteismo        float64 `json:"absenteismo"`
	Turnover           float64 `json:"turnover"`
	TempoCasaMedioDias float64 `json:"tempoCasaMedioDias"`
	Contratacoes       int64   `json:"contratacoes"`
	Desligamentos      int64   `json:"desligamentos"`
}

// ScheduleRow breaks absenteeism down by work schedule.
type ScheduleRow struct {
	Escala          string  `json:"escala"`
	DiasEscalados   int     `json:"diasEscalados"`
	DiasAbsenteismo int     `json:"diasAbsenteismo"`
	Absenteismo     float64 `json:"absenteismo"`
}

// LeaderRow breaks absenteeism down by direct leader, worst first.
type LeaderRow struct {
	Lider           string  `json:"lider"`
	DiasEscalados   int     `json:"diasEscalados"`
	DiasAbsenteismo int     `json:"diasAbsenteismo"`
	Absenteismo     float64 `json:"absenteismo"`
}

// TimelineEvent is one entry of the merged occurrence feed.
type TimelineEvent struct {
	ID          string `json:"id"`
	Colaborador string `json:"colaborador"`
	Empresa     string `json:"empresa"`
	Setor       string `json:"setor"`
	Tipo        string `json:"tipo"`
	Data        string `json:"data"` // YYYY-MM-DD
	Recorrente  bool   `json:"recorrente"`
	Ocorrencias int    `json:"ocorrencias"`
}
