package certificate

import (
	"sort"
	"time"

	"github.com/opsview-hr/workforce-backend-go/internal/domain/certificate"
	"github.com/opsview-hr/workforce-backend-go/internal/domain/dashboard"
	"github.com/opsview-hr/workforce-backend-go/internal/domain/employee"
)

// Diagnosis codes are sensitive; the distribution never exposes more than
// the ten most frequent.
const cidListCap = 10

// distributions slices the period's certificates along every charted
// dimension. Tenure buckets are computed against the period end to match
// the risk ranking.
func distributions(certs []certificate.Certificate, periodEnd time.Time) certificate.DistributionsResponse {
	byCompany := make(map[string]int)
	bySector := make(map[string]int)
	byShift := make(map[string]int)
	byGender := make(map[string]int)
	byLeader := make(map[string]int)
	byCID := make(map[string]int)
	byTenure := make(map[string]int)

	for _, c := range certs {
		byCompany[orNotInformed(c.CompanyName)]++
		bySector[orNotInformed(c.SectorName)]++
		byShift[orNotInformed(c.ShiftName)]++
		byGender[genderLabel(c.Gender)]++
		byLeader[orNotInformed(c.LeaderName)]++
		if c.CID != nil && *c.CID != "" {
			byCID[*c.CID]++
		}
		byTenure[tenureBucket(employee.TenureDays(c.HireDate, periodEnd))]++
	}

	return certificate.DistributionsResponse{
		PorEmpresa:   sortedNameValues(byCompany, 0),
		PorSetor:     sortedNameValues(bySector, 0),
		PorTurno:     sortedNameValues(byShift, 0),
		PorGenero:    sortedNameValues(byGender, 0),
		PorLider:     sortedNameValues(byLeader, 0),
		PorCid:       sortedNameValues(byCID, cidListCap),
		PorTempoCasa: sortedNameValues(byTenure, 0),
	}
}

func genderLabel(g string) string {
	switch g {
	case "M":
		return "Masculino"
	case "F":
		return "Feminino"
	default:
		return employee.NotInformed
	}
}

func orNotInformed(s *string) string {
	if s == nil || *s == "" {
		return employee.NotInformed
	}
	return *s
}

// sortedNameValues renders a counter as a descending {name, value} list.
// cap > 0 truncates after sorting.
func sortedNameValues(counts map[string]int, cap int) []dashboard.NameValue {
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
	if cap > 0 && len(items) > cap {
		items = items[:cap]
	}
	return items
}

func sortTrend(points []certificate.TrendPoint) {
	sort.SliceStable(points, func(i, j int) bool { return points[i].Data < points[j].Data })
}
