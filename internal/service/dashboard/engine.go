package dashboard

import (
	"time"

	"github.com/opsview-hr/workforce-backend-go/internal/domain/attendance"
	"github.com/opsview-hr/workforce-backend-go/internal/domain/certificate"
	"github.com/opsview-hr/workforce-backend-go/internal/domain/employee"
	"github.com/opsview-hr/workforce-backend-go/internal/domain/period"
)

const dayLayout = "2006-01-02"

// personDay is one classified (employee, date) cell of the period grid.
// Every reducer counts through these, so the classification policy is
// applied exactly once.
type personDay struct {
	emp   employee.Normalized
	date  time.Time
	class attendance.Classification
}

// buildPersonDays expands the roster over every day of the range, looking up
// the attendance record for each cell and classifying it. Days without a
// record classify as unjustified absences. Records whose employee is not on
// the roster are dropped.
func buildPersonDays(roster []employee.Normalized, records []attendance.Record, rng period.Range) []personDay {
	byKey := make(map[string]*attendance.Record, len(records))
	for i := range records {
		rec := &records[i]
		byKey[rec.EmployeeOpsID+"|"+rec.Date.Format(dayLayout)] = rec
	}

	days := make([]personDay, 0, len(roster)*rng.Days())
	for _, emp := range roster {
		for d := rng.Start; !d.After(rng.End); d = d.AddDate(0, 0, 1) {
			rec := byKey[emp.OpsID+"|"+d.Format(dayLayout)]
			days = append(days, personDay{
				emp:   emp,
				date:  d,
				class: attendance.Classify(rec),
			})
		}
	}
	return days
}

// certificateDaysByEmployee sums absence days per employee over the period's
// non-cancelled certificates, for the long-leave threshold.
func certificateDaysByEmployee(certs []certificate.Certificate) map[string]int {
	days := make(map[string]int, len(certs))
	for _, c := range certs {
		days[c.EmployeeOpsID] += c.Days
	}
	return days
}
