package dashboard

import (
	"sort"
	"strings"
	"time"

	"github.com/opsview-hr/workforce-backend-go/internal/domain/attendance"
	"github.com/opsview-hr/workforce-backend-go/internal/domain/dashboard"
	"github.com/opsview-hr/workforce-backend-go/internal/domain/employee"
	"github.com/opsview-hr/workforce-backend-go/internal/pkg/numeric"
)

// Cumulative certificate days at or above this promote an on-leave employee
// into the long-term bucket. This clock counts certificate days in the
// period, not tenure.
const longLeaveThresholdDays = 16

// outsourcedProviders is the fixed allow-list of staffing-partner companies
// summarized by the synthetic rollup row.
var outsourcedProviders = []string{
	"RH Forte Servicos",
	"Connect Work RH",
	"Talento Estrategico",
}

const outsourcedRowName = "Total Terceirizadas"

// kpiFragment folds the classified grid into the headline block.
func kpiFragment(days []personDay, periodDays int, hires, terminations int64) dashboard.KPIFragment {
	scheduled := make(map[string]struct{})
	present := make(map[string]struct{})
	impacting := 0

	for _, d := range days {
		if d.class.CountsAsScheduled {
			scheduled[d.emp.OpsID] = struct{}{}
		}
		if d.class.Code == attendance.StatusPresent {
			present[d.emp.OpsID] = struct{}{}
		}
		if d.class.ImpactsAbsenteeism {
			impacting++
		}
	}

	expected := len(scheduled) * periodDays
	return dashboard.KPIFragment{
		TotalEscalados:  len(scheduled),
		Presentes:       len(present),
		DiasEsperados:   expected,
		DiasAbsenteismo: impacting,
		Absenteismo:     numeric.Percent(float64(impacting), float64(expected)),
		Turnover:        numeric.Percent(float64(hires+terminations)/2, float64(len(scheduled))),
		Contratacoes:    hires,
		Desligamentos:   terminations,
	}
}

// statusFragment partitions the roster by availability. certDays carries the
// period's cumulative certificate days per employee.
func statusFragment(roster []employee.Normalized, certDays map[string]int, inactive int64) dashboard.StatusFragment {
	var frag dashboard.StatusFragment
	for _, emp := range roster {
		switch emp.Status {
		case employee.StatusActive:
			frag.Ativos++
		case employee.StatusOnVacation:
			frag.Ferias++
		case employee.StatusOnLeave:
			if certDays[emp.OpsID] >= longLeaveThresholdDays {
				frag.AfastamentoLongo++
			} else {
				frag.AfastamentoCurto++
			}
		}
	}
	frag.Inativos = int(inactive)
	frag.Indisponiveis = frag.AfastamentoCurto + frag.AfastamentoLongo + frag.Ferias
	frag.Total = len(roster) + frag.Inativos
	frag.PercentualIndisponiveis = numeric.Percent(float64(frag.Indisponiveis), float64(frag.Total))
	return frag
}

// demographicsFragment computes the gender mix and the age/tenure means.
func demographicsFragment(roster []employee.Normalized, now time.Time) dashboard.DemographicsFragment {
	genders := make(map[string]int)
	ageSum, aged := 0.0, 0
	tenureSum := 0.0

	for _, emp := range roster {
		genders[genderLabel(emp.Gender)]++
		if emp.BirthDate != nil {
			ageSum += float64(emp.AgeYears(now))
			aged++
		}
		tenureSum += float64(employee.TenureDays(emp.HireDate, now))
	}

	return dashboard.DemographicsFragment{
		Distribuicao:       sortedNameValues(genders),
		IdadeMedia:         numeric.Mean(ageSum, aged),
		TempoCasaMedioDias: numeric.Mean(tenureSum, len(roster)),
	}
}

func genderLabel(g employee.Gender) string {
	switch g {
	case employee.GenderMale:
		return "Masculino"
	case employee.GenderFemale:
		return "Feminino"
	default:
		return employee.NotInformed
	}
}

// scheduleFragment groups scheduled person-days by work schedule.
func scheduleFragment(days []personDay) []dashboard.ScheduleRow {
	groups := groupScheduledDays(days, func(d personDay) string { return d.emp.Schedule })

	rows := make([]dashboard.ScheduleRow, 0, len(groups))
	for name, g := range groups {
		rows = append(rows, dashboard.ScheduleRow{
			Escala:          name,
			DiasEscalados:   g.scheduled,
			DiasAbsenteismo: g.impacting,
			Absenteismo:     numeric.Percent(float64(g.impacting), float64(g.scheduled)),
		})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Escala < rows[j].Escala })
	return rows
}

// leaderFragment groups scheduled person-days by leader, worst absenteeism
// first.
func leaderFragment(days []personDay) []dashboard.LeaderRow {
	groups := groupScheduledDays(days, func(d personDay) string { return d.emp.Leader })

	rows := make([]dashboard.LeaderRow, 0, len(groups))
	for name, g := range groups {
		rows = append(rows, dashboard.LeaderRow{
			Lider:           name,
			DiasEscalados:   g.scheduled,
			DiasAbsenteismo: g.impacting,
			Absenteismo:     numeric.Percent(float64(g.impacting), float64(g.scheduled)),
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Absenteismo != rows[j].Absenteismo {
			return rows[i].Absenteismo > rows[j].Absenteismo
		}
		return rows[i].Lider < rows[j].Lider
	})
	return rows
}

type dayGroup struct {
	scheduled int
	impacting int
}

// groupScheduledDays folds only the person-days that count as scheduled,
// keyed by the given dimension.
func groupScheduledDays(days []personDay, key func(personDay) string) map[string]*dayGroup {
	groups := make(map[string]*dayGroup)
	for _, d := range days {
		if !d.class.CountsAsScheduled {
			continue
		}
		g := groups[key(d)]
		if g == nil {
			g = &dayGroup{}
			groups[key(d)] = g
		}
		g.scheduled++
		if d.class.ImpactsAbsenteeism {
			g.impacting++
		}
	}
	return groups
}

// companyFragment rolls the grid up per company and appends the synthetic
// outsourced-providers total row.
func companyFragment(roster []employee.Normalized, days []personDay, movements map[string]movementCount, periodDays int, now time.Time) []dashboard.CompanyRow {
	type companyAgg struct {
		headcount int
		tenureSum float64
		scheduled map[string]struct{}
		present   map[string]struct{}
		impacting int
	}

	aggs := make(map[string]*companyAgg)
	agg := func(name string) *companyAgg {
		a := aggs[name]
		if a == nil {
			a = &companyAgg{scheduled: map[string]struct{}{}, present: map[string]struct{}{}}
			aggs[name] = a
		}
		return a
	}

	for _, emp := range roster {
		a := agg(emp.Company)
		a.headcount++
		a.tenureSum += float64(employee.TenureDays(emp.HireDate, now))
	}
	for _, d := range days {
		a := agg(d.emp.Company)
		if d.class.CountsAsScheduled {
			a.scheduled[d.emp.OpsID] = struct{}{}
		}
		if d.class.Code == attendance.StatusPresent {
			a.present[d.emp.OpsID] = struct{}{}
		}
		if d.class.ImpactsAbsenteeism {
			a.impacting++
		}
	}

	rows := make([]dashboard.CompanyRow, 0, len(aggs)+1)
	for name, a := range aggs {
		mv := movements[name]
		expected := len(a.scheduled) * periodDays
		rows = append(rows, dashboard.CompanyRow{
			Empresa:            name,
			Headcount:          a.headcount,
			Escalados:          len(a.scheduled),
			Presentes:          len(a.present),
			Absenteismo:        numeric.Percent(float64(a.impacting), float64(expected)),
			Turnover:           numeric.Percent(float64(mv.hires+mv.terminations)/2, float64(len(a.scheduled))),
			TempoCasaMedioDias: numeric.Mean(a.tenureSum, a.headcount),
			Contratacoes:       mv.hires,
			Desligamentos:      mv.terminations,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Headcount != rows[j].Headcount {
			return rows[i].Headcount > rows[j].Headcount
		}
		return rows[i].Empresa < rows[j].Empresa
	})

	if total, ok := outsourcedRollup(rows); ok {
		rows = append(rows, total)
	}
	return rows
}

type movementCount struct {
	hires        int64
	terminations int64
}

// outsourcedRollup aggregates the allow-listed provider rows into one
// synthetic row. Absenteeism and tenure are headcount-weighted averages of
// the member rows, so the number matches a direct re-aggregation of the
// same raw records.
func outsourcedRollup(rows []dashboard.CompanyRow) (dashboard.CompanyRow, bool) {
	members := make([]dashboard.CompanyRow, 0, len(outsourcedProviders))
	for _, row := range rows {
		for _, name := range outsourcedProviders {
			if strings.EqualFold(row.Empresa, name) {
				members = append(members, row)
				break
			}
		}
	}
	if len(members) == 0 {
		return dashboard.CompanyRow{}, false
	}

	total := dashboard.CompanyRow{Empresa: outsourcedRowName}
	absWeighted, tenureWeighted := 0.0, 0.0
	for _, m := range members {
		total.Headcount += m.Headcount
		total.Escalados += m.Escalados
		total.Presentes += m.Presentes
		total.Contratacoes += m.Contratacoes
		total.Desligamentos += m.Desligamentos
		absWeighted += m.Absenteismo * float64(m.Headcount)
		tenureWeighted += m.TempoCasaMedioDias * float64(m.Headcount)
	}
	total.Absenteismo = numeric.Mean(absWeighted, total.Headcount)
	total.TempoCasaMedioDias = numeric.Mean(tenureWeighted, total.Headcount)
	total.Turnover = numeric.Percent(float64(total.Contratacoes+total.Desligamentos)/2, float64(total.Escalados))
	return total, true
}

// sortedNameValues renders a counter as a descending {name, value} list with
// a stable name tie-break.
func sortedNameValues(counts map[string]int) []dashboard.NameValue {
	items := make([]dashboard.NameValue, 0, len(counts))
	for name, value := range counts {
		items = append(items, dashboard.NameValue{Name: name, Value: value})
	}
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Value != items[j].Value {
			return items[i].Value > items[j].Value
		}
		return items[i].Name < items[j].Name
	})
	return items
}
