package attendance

// DayStatus is the classified outcome of one person-day.
type DayStatus string

const (
	StatusPresent     DayStatus = "PRESENTE"
	StatusDayOff      DayStatus = "FOLGA"
	StatusRest        DayStatus = "DSR"
	StatusUnjustified DayStatus = "FALTA_INJUSTIFICADA"
	StatusJustified   DayStatus = "FALTA_JUSTIFICADA"
	StatusMedical     DayStatus = "ATESTADO"
)

// Classification decides whether a person-day counts in attendance KPIs.
// ImpactsAbsenteeism is never true without CountsAsScheduled.
type Classification struct {
	Code               DayStatus
	CountsAsScheduled  bool
	ImpactsAbsenteeism bool
}

// Classify resolves one attendance record (or its absence, rec == nil) into
// a day status. This is the single source of truth for the admin dashboard
// reducers: every aggregation counts person-days through it.
//
// Order matters: a clock-in wins over any absence type on the same row, and
// a day with neither a record nor an explanation is an unjustified absence,
// never silently dropped.
func Classify(rec *Record) Classification {
	if rec == nil {
		return Classification{Code: StatusUnjustified, CountsAsScheduled: true, ImpactsAbsenteeism: true}
	}

	if rec.ClockIn != nil {
		return Classification{Code: StatusPresent, CountsAsScheduled: true}
	}

	if rec.AbsenceType == nil {
		return Classification{Code: StatusUnjustified, CountsAsScheduled: true, ImpactsAbsenteeism: true}
	}

	switch rec.AbsenceType.Code {
	case AbsenceDayOff:
		// Administrative day: out of the denominator and the numerator.
		return Classification{Code: StatusDayOff}
	case AbsenceMandatoryRest:
		return Classification{Code: StatusRest}
	case AbsenceJustified:
		return Classification{Code: StatusJustified, CountsAsScheduled: true, ImpactsAbsenteeism: true}
	case AbsenceMedical:
		return Classification{Code: StatusMedical, CountsAsScheduled: true, ImpactsAbsenteeism: true}
	case AbsenceUnjustified:
		return Classification{Code: StatusUnjustified, CountsAsScheduled: true, ImpactsAbsenteeism: true}
	default:
		// Unknown codes behave like their flags say, keeping new absence
		// types conservative until they are added to the enum.
		code := DayStatus(rec.AbsenceType.Code)
		if rec.AbsenceType.ImpactsAbsenteeism {
			return Classification{Code: code, CountsAsScheduled: true, ImpactsAbsenteeism: true}
		}
		return Classification{Code: code, CountsAsScheduled: true}
	}
}
