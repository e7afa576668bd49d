package certificate

import (
	"sort"
	"time"

	"github.com/opsview-hr/workforce-backend-go/internal/domain/certificate"
	"github.com/opsview-hr/workforce-backend-go/internal/domain/employee"
)

const topOffendersCap = 10

// Tenure bucket cutoffs, in days since hire relative to the period end.
// This clock is deliberately the query end, not "now".
const (
	tenureShortDays = 30
	tenureMidDays   = 90
)

const (
	bucketUnder30 = "< 30 dias"
	bucket30to89  = "30-89 dias"
	bucketOver90  = ">= 90 dias"
)

func tenureBucket(days int) string {
	switch {
	case days < tenureShortDays:
		return bucketUnder30
	case days < tenureMidDays:
		return bucket30to89
	default:
		return bucketOver90
	}
}

// rankOffenders groups the period's certificates per employee and ranks by
// certificate count, absence days breaking ties. The sort is stable and the
// ranks are a contiguous 1..N sequence after truncation.
func rankOffenders(certs []certificate.Certificate, periodEnd time.Time) []certificate.Offender {
	byEmployee := make(map[string]*certificate.Offender, len(certs))
	order := make([]string, 0, len(certs))

	for _, c := range certs {
		o := byEmployee[c.EmployeeOpsID]
		if o == nil {
			o = &certificate.Offender{
				OpsID:          c.EmployeeOpsID,
				Nome:           c.EmployeeName,
				Empresa:        orNotInformed(c.CompanyName),
				Setor:          orNotInformed(c.SectorName),
				DiasEmpresa:    employee.TenureDays(c.HireDate, periodEnd),
				TempoCasaFaixa: tenureBucket(employee.TenureDays(c.HireDate, periodEnd)),
			}
			byEmployee[c.EmployeeOpsID] = o
			order = append(order, c.EmployeeOpsID)
		}
		o.TotalAtestados++
		o.DiasAfastados += c.Days
	}

	offenders := make([]certificate.Offender, 0, len(order))
	for _, opsID := range order {
		offenders = append(offenders, *byEmployee[opsID])
	}

	sort.SliceStable(offenders, func(i, j int) bool {
		if offenders[i].TotalAtestados != offenders[j].TotalAtestados {
			return offenders[i].TotalAtestados > offenders[j].TotalAtestados
		}
		return offenders[i].DiasAfastados > offenders[j].DiasAfastados
	})

	if len(offenders) > topOffendersCap {
		offenders = offenders[:topOffendersCap]
	}
	for i := range offenders {
		offenders[i].Rank = i + 1
	}
	return offenders
}
