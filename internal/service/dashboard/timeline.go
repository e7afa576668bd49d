package dashboard

import (
	"sort"
	"time"

	"github.com/opsview-hr/workforce-backend-go/internal/domain/certificate"
	"github.com/opsview-hr/workforce-backend-go/internal/domain/dashboard"
	"github.com/opsview-hr/workforce-backend-go/internal/domain/employee"
	"github.com/opsview-hr/workforce-backend-go/internal/domain/occurrence"
)

const (
	eventCertificate  = "ATESTADO"
	eventDisciplinary = "MEDIDA_DISCIPLINAR"
	eventAccident     = "ACIDENTE"
)

type timelineEntry struct {
	event dashboard.TimelineEvent
	date  time.Time
}

// buildTimeline merges certificates, disciplinary actions and accidents into
// one feed, flags recurrence per (person, event type) and sorts newest first.
func buildTimeline(certs []certificate.Certificate, actions []occurrence.DisciplinaryAction, accidents []occurrence.WorkplaceAccident) []dashboard.TimelineEvent {
	entries := make([]timelineEntry, 0, len(certs)+len(actions)+len(accidents))

	for _, c := range certs {
		entries = append(entries, timelineEntry{
			date: c.StartDate,
			event: dashboard.TimelineEvent{
				ID:          c.ID,
				Colaborador: c.EmployeeName,
				Empresa:     placeholder(c.CompanyName),
				Setor:       placeholder(c.SectorName),
				Tipo:        eventCertificate,
				Data:        c.StartDate.Format(dayLayout),
			},
		})
	}
	for _, a := range actions {
		entries = append(entries, timelineEntry{
			date: a.Date,
			event: dashboard.TimelineEvent{
				ID:          a.ID,
				Colaborador: a.EmployeeName,
				Empresa:     placeholder(a.CompanyName),
				Setor:       placeholder(a.SectorName),
				Tipo:        eventDisciplinary,
				Data:        a.Date.Format(dayLayout),
			},
		})
	}
	for _, a := range accidents {
		entries = append(entries, timelineEntry{
			date: a.Date,
			event: dashboard.TimelineEvent{
				ID:          a.ID,
				Colaborador: a.EmployeeName,
				Empresa:     placeholder(a.CompanyName),
				Setor:       placeholder(a.SectorName),
				Tipo:        eventAccident,
				Data:        a.Date.Format(dayLayout),
			},
		})
	}

	counts := make(map[string]int, len(entries))
	for _, e := range entries {
		counts[e.event.Colaborador+"|"+e.event.Tipo]++
	}

	events := make([]dashboard.TimelineEvent, 0, len(entries))
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].date.After(entries[j].date) })
	for _, e := range entries {
		n := counts[e.event.Colaborador+"|"+e.event.Tipo]
		e.event.Ocorrencias = n
		e.event.Recorrente = n > 1
		events = append(events, e.event)
	}
	return events
}

func placeholder(s *string) string {
	if s == nil || *s == "" {
		return employee.NotInformed
	}
	return *s
}
