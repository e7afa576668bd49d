package period

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// DefaultDays is the window used when the request carries no period hint.
const DefaultDays = 30

const dayLayout = "2006-01-02"

// Range is an inclusive [Start, End] instant range. Start is midnight local
// and End is the last representable instant of its day.
type Range struct {
	Start time.Time
	End   time.Time
}

// Days returns the number of calendar days covered by the range.
func (r Range) Days() int {
	start := startOfDay(r.Start)
	end := startOfDay(r.End)
	return int(math.Round(end.Sub(start).Hours()/24)) + 1
}

// Contains reports whether t falls inside the range.
func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

func (r Range) String() string {
	return fmt.Sprintf("[%s, %s]", r.Start.Format(dayLayout), r.End.Format(dayLayout))
}

// Query carries the raw date-ish request parameters, untouched.
type Query struct {
	Date      string // data=YYYY-MM-DD, a single day
	StartDate string // dataInicio=YYYY-MM-DD
	EndDate   string // dataFim=YYYY-MM-DD
	Preset    string // periodo=Nd, the N days ending today
}

// Resolve turns the query into a concrete range relative to now.
// Precedence: single date, explicit start+end, Nd preset, 30-day default.
// Unrecognized or malformed inputs fall through to the next rule; Resolve
// never fails.
func Resolve(q Query, now time.Time) Range {
	if q.Date != "" {
		if day, err := time.ParseInLocation(dayLayout, q.Date, now.Location()); err == nil {
			return dayRange(day, day)
		}
	}

	if q.StartDate != "" && q.EndDate != "" {
		start, errStart := time.ParseInLocation(dayLayout, q.StartDate, now.Location())
		end, errEnd := time.ParseInLocation(dayLayout, q.EndDate, now.Location())
		if errStart == nil && errEnd == nil && !end.Before(start) {
			return dayRange(start, end)
		}
	}

	days := DefaultDays
	if n, ok := parsePreset(q.Preset); ok {
		days = n
	}
	end := now
	start := now.AddDate(0, 0, -(days - 1))
	return dayRange(start, end)
}

// ParseDay parses a required YYYY-MM-DD parameter. Unlike Resolve it does
// fail, so handlers can reject requests with missing bounds.
func ParseDay(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("date parameter is required")
	}
	day, err := time.ParseInLocation(dayLayout, value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", value)
	}
	return day, nil
}

// FromDays builds the inclusive range covering [start, end] whole days.
func FromDays(start, end time.Time) Range {
	return dayRange(start, end)
}

func parsePreset(preset string) (int, bool) {
	preset = strings.TrimSpace(strings.ToLower(preset))
	if !strings.HasSuffix(preset, "d") {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSuffix(preset, "d"))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

func dayRange(start, end time.Time) Range {
	return Range{
		Start: startOfDay(start),
		End:   endOfDay(end),
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
}
