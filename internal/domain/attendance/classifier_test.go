package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func absence(kind AbsenceKind, impacts bool) *AbsenceType {
	return &AbsenceType{ID: "at-1", Code: kind, ImpactsAbsenteeism: impacts}
}

func TestClassify_ClockInWinsOverAbsenceType(t *testing.T) {
	t.Parallel()
	clockIn := time.Date(2024, 3, 1, 6, 2, 0, 0, time.UTC)

	got := Classify(&Record{ClockIn: &clockIn, AbsenceType: absence(AbsenceUnjustified, true)})

	assert.Equal(t, StatusPresent, got.Code)
	assert.True(t, got.CountsAsScheduled)
	assert.False(t, got.ImpactsAbsenteeism)
}

func TestClassify_AdministrativeAbsencesDropFromBothSides(t *testing.T) {
	t.Parallel()
	for _, kind := range []AbsenceKind{AbsenceDayOff, AbsenceMandatoryRest} {
		got := Classify(&Record{AbsenceType: absence(kind, false)})
		assert.False(t, got.CountsAsScheduled, "kind %s", kind)
		assert.False(t, got.ImpactsAbsenteeism, "kind %s", kind)
	}
}

func TestClassify_PunitiveAbsencesCountAgainst(t *testing.T) {
	t.Parallel()
	cases := []struct {
		kind AbsenceKind
		want DayStatus
	}{
		{AbsenceUnjustified, StatusUnjustified},
		{AbsenceJustified, StatusJustified},
		{AbsenceMedical, StatusMedical},
	}
	for _, c := range cases {
		got := Classify(&Record{AbsenceType: absence(c.kind, true)})
		assert.Equal(t, c.want, got.Code)
		assert.True(t, got.CountsAsScheduled)
		assert.True(t, got.ImpactsAbsenteeism)
	}
}

func TestClassify_MissingRecordIsUnjustifiedAbsence(t *testing.T) {
	t.Parallel()

	got := Classify(nil)

	assert.Equal(t, StatusUnjustified, got.Code)
	assert.True(t, got.CountsAsScheduled)
	assert.True(t, got.ImpactsAbsenteeism)
}

func TestClassify_RecordWithoutClockInOrType(t *testing.T) {
	t.Parallel()

	got := Classify(&Record{})

	assert.Equal(t, StatusUnjustified, got.Code)
	assert.True(t, got.CountsAsScheduled)
	assert.True(t, got.ImpactsAbsenteeism)
}

func TestClassify_UnknownKindFollowsItsFlags(t *testing.T) {
	t.Parallel()

	impacts := Classify(&Record{AbsenceType: absence("SUSPENSAO", true)})
	assert.True(t, impacts.CountsAsScheduled)
	assert.True(t, impacts.ImpactsAbsenteeism)

	neutral := Classify(&Record{AbsenceType: absence("TREINAMENTO", false)})
	assert.True(t, neutral.CountsAsScheduled)
	assert.False(t, neutral.ImpactsAbsenteeism)
}

// Every record shape keeps the implication: a day that counts against the
// employee always counts as scheduled.
func TestClassify_ImpactImpliesScheduled(t *testing.T) {
	t.Parallel()
	clockIn := time.Now()

	shapes := []*Record{
		nil,
		{},
		{ClockIn: &clockIn},
		{AbsenceType: absence(AbsenceDayOff, false)},
		{AbsenceType: absence(AbsenceMandatoryRest, false)},
		{AbsenceType: absence(AbsenceUnjustified, true)},
		{AbsenceType: absence(AbsenceJustified, true)},
		{AbsenceType: absence(AbsenceMedical, true)},
	}
	for _, rec := range shapes {
		got := Classify(rec)
		if got.ImpactsAbsenteeism {
			assert.True(t, got.CountsAsScheduled)
		}
	}
}
