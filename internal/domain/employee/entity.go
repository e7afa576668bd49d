package employee

import (
	"time"
)

// NotInformed is the placeholder every missing dimension normalizes to, so
// reducers never branch on empty reference data.
const NotInformed = "N/I"

// Employee is a read-only roster projection with its reference data already
// joined. Pointer fields are nullable upstream; Normalized() resolves them.
type Employee struct {
	OpsID           string
	FullName        string
	Gender          Gender
	BirthDate       *time.Time
	HireDate        time.Time
	TerminationDate *time.Time
	Status          LifecycleStatus

	CompanyName  *string
	SectorName   *string
	ShiftCode    *string
	ShiftName    *string
	ScheduleName *string
	LeaderName   *string
}

type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
)

type LifecycleStatus string

const (
	StatusActive     LifecycleStatus = "ACTIVE"
	StatusOnLeave    LifecycleStatus = "ON_LEAVE"
	StatusOnVacation LifecycleStatus = "ON_VACATION"
	StatusInactive   LifecycleStatus = "INACTIVE"
)

// Normalized is the employee shape the reducers see: every dimension field
// guaranteed non-empty, resolved once at join time instead of per reducer.
type Normalized struct {
	OpsID     string
	FullName  string
	Gender    Gender
	BirthDate *time.Time
	HireDate  time.Time
	Status    LifecycleStatus

	Company  string
	Sector   string
	Shift    string
	Schedule string
	Leader   string
}

// Normalized resolves nullable dimensions into placeholders.
func (e Employee) Normalized() Normalized {
	return Normalized{
		OpsID:     e.OpsID,
		FullName:  e.FullName,
		Gender:    e.Gender,
		BirthDate: e.BirthDate,
		HireDate:  e.HireDate,
		Status:    e.Status,
		Company:   orNotInformed(e.CompanyName),
		Sector:    orNotInformed(e.SectorName),
		Shift:     orNotInformed(e.ShiftName),
		Schedule:  orNotInformed(e.ScheduleName),
		Leader:    orNotInformed(e.LeaderName),
	}
}

// AgeYears returns completed years at ref, accounting for a birthday not yet
// reached in the current year. Returns 0 when the birth date is unknown.
func (e Normalized) AgeYears(ref time.Time) int {
	if e.BirthDate == nil {
		return 0
	}
	return wholeYearsBetween(*e.BirthDate, ref)
}

// TenureDays returns whole days since hire at ref, never negative.
func TenureDays(hire, ref time.Time) int {
	days := int(ref.Sub(hire).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

func wholeYearsBetween(from, to time.Time) int {
	years := to.Year() - from.Year()
	anniversary := from.AddDate(years, 0, 0)
	if anniversary.After(to) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}

func orNotInformed(s *string) string {
	if s == nil || *s == "" {
		return NotInformed
	}
	return *s
}
