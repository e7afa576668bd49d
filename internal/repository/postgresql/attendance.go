package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/opsview-hr/workforce-backend-go/internal/domain/attendance"
	"github.com/opsview-hr/workforce-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db database.Querier
}

func NewAttendanceRepository(db database.Querier) attendance.Repository {
	return &attendanceRepositoryImpl{db: db}
}

// ListByPeriod returns attendance records dated inside [start, end] with the
// absence type joined.
func (r *attendanceRepositoryImpl) ListByPeriod(ctx context.Context, start, end time.Time, shiftCode string) ([]attendance.Record, error) {
	query := `
		SELECT
			ar.id, ar.employee_ops_id, ar.date, ar.clock_in, ar.clock_out,
			ar.worked_hours, ar.justification,
			at.id, at.code, at.description, at.impacts_absenteeism, at.is_justified
		FROM attendance_records ar
		LEFT JOIN absence_types at ON at.id = ar.absence_type_id
		JOIN employees e ON e.ops_id = ar.employee_ops_id
		LEFT JOIN shifts s ON s.id = e.shift_id
		WHERE ar.date >= $1 AND ar.date <= $2
		AND ($3 = '' OR s.code = $3)
		ORDER BY ar.date
	`

	rows, err := r.db.Query(ctx, query, start, end, normalizeShift(shiftCode))
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		var absenceID, absenceCode, absenceDesc *string
		var impacts, justified *bool
		err := rows.Scan(
			&rec.ID, &rec.EmployeeOpsID, &rec.Date, &rec.ClockIn, &rec.ClockOut,
			&rec.WorkedHours, &rec.Justification,
			&absenceID, &absenceCode, &absenceDesc, &impacts, &justified,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		if absenceID != nil {
			rec.AbsenceType = &attendance.AbsenceType{
				ID:                 *absenceID,
				Code:               attendance.AbsenceKind(deref(absenceCode)),
				Description:        deref(absenceDesc),
				ImpactsAbsenteeism: impacts != nil && *impacts,
				IsJustified:        justified != nil && *justified,
			}
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read attendance rows: %w", err)
	}
	return records, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
