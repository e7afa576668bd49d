package dashboard

import (
	"testing"
	"time"

	"github.com/opsview-hr/workforce-backend-go/internal/domain/certificate"
	"github.com/opsview-hr/workforce-backend-go/internal/domain/occurrence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTimeline_MergesSortsAndFlagsRecurrence(t *testing.T) {
	t.Parallel()
	certs := []certificate.Certificate{
		{ID: "c1", EmployeeName: "Ana", StartDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "c2", EmployeeName: "Ana", StartDate: time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC)},
	}
	actions := []occurrence.DisciplinaryAction{
		{ID: "d1", EmployeeName: "Bruno", Date: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), Reason: "atraso"},
	}
	accidents := []occurrence.WorkplaceAccident{
		{ID: "a1", EmployeeName: "Ana", Date: time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC)},
	}

	events := buildTimeline(certs, actions, accidents)

	require.Len(t, events, 4)

	// Newest first.
	assert.Equal(t, "c2", events[0].ID)
	assert.Equal(t, "d1", events[1].ID)
	assert.Equal(t, "a1", events[2].ID)
	assert.Equal(t, "c1", events[3].ID)

	// Ana has two certificates: both flagged, her accident is not.
	assert.True(t, events[0].Recorrente)
	assert.Equal(t, 2, events[0].Ocorrencias)
	assert.True(t, events[3].Recorrente)
	assert.False(t, events[2].Recorrente, "recurrence is per event type")
	assert.False(t, events[1].Recorrente)
}

func TestBuildTimeline_PlaceholdersForMissingDimensions(t *testing.T) {
	t.Parallel()
	company := "Acme"
	certs := []certificate.Certificate{
		{ID: "c1", EmployeeName: "Ana", CompanyName: &company, StartDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
	}

	events := buildTimeline(certs, nil, nil)

	require.Len(t, events, 1)
	assert.Equal(t, "Acme", events[0].Empresa)
	assert.Equal(t, "N/I", events[0].Setor)
	assert.Equal(t, "2024-03-01", events[0].Data)
	assert.Equal(t, eventCertificate, events[0].Tipo)
}

func TestBuildTimeline_Empty(t *testing.T) {
	t.Parallel()

	events := buildTimeline(nil, nil, nil)

	assert.NotNil(t, events)
	assert.Empty(t, events)
}
