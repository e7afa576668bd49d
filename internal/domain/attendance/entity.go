package attendance

import (
	"time"
)

// Record is one attendance row per (employee, reference date), read as a
// point-in-time projection. Clock fields are optional; a clock-out without a
// clock-in never occurs upstream.
type Record struct {
	ID            string
	EmployeeOpsID string
	Date          time.Time
	ClockIn       *time.Time
	ClockOut      *time.Time
	WorkedHours   *float64
	AbsenceType   *AbsenceType
	Justification *string
}

// AbsenceType explains a day without a clock-in.
type AbsenceType struct {
	ID                 string
	Code               AbsenceKind
	Description        string
	ImpactsAbsenteeism bool
	IsJustified        bool
}

// AbsenceKind is the closed set of absence codes the classifier understands.
type AbsenceKind string

const (
	AbsenceDayOff        AbsenceKind = "FOLGA"
	AbsenceMandatoryRest AbsenceKind = "DSR"
	AbsenceUnjustified   AbsenceKind = "FALTA_INJUSTIFICADA"
	AbsenceJustified     AbsenceKind = "FALTA_JUSTIFICADA"
	AbsenceMedical       AbsenceKind = "ATESTADO"
)

// Administrative reports whether the kind is one of the two non-punitive
// codes that drop the day from both sides of the absenteeism ratio.
func (k AbsenceKind) Administrative() bool {
	return k == AbsenceDayOff || k == AbsenceMandatoryRest
}
