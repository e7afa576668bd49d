package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/opsview-hr/workforce-backend-go/internal/domain/certificate"
	"github.com/opsview-hr/workforce-backend-go/internal/pkg/database"
)

type certificateRepositoryImpl struct {
	db database.Querier
}

func NewCertificateRepository(db database.Querier) certificate.Repository {
	return &certificateRepositoryImpl{db: db}
}

// ListByPeriod returns non-cancelled certificates starting inside
// [start, end] with the employee's dimensions joined.
func (r *certificateRepositoryImpl) ListByPeriod(ctx context.Context, start, end time.Time) ([]certificate.Certificate, error) {
	query := `
		SELECT
			mc.id, mc.start_date, mc.end_date, mc.days, mc.cid, mc.status,
			e.ops_id, e.full_name, COALESCE(e.gender, ''), e.hire_date,
			c.name AS company_name,
			sec.name AS sector_name,
			s.name AS shift_name,
			l.full_name AS leader_name
		FROM medical_certificates mc
		JOIN employees e ON e.ops_id = mc.employee_ops_id
		LEFT JOIN companies c ON c.id = e.company_id
		LEFT JOIN sectors sec ON sec.id = e.sector_id
		LEFT JOIN shifts s ON s.id = e.shift_id
		LEFT JOIN employees l ON l.ops_id = e.leader_ops_id
		WHERE mc.status <> 'CANCELLED'
		AND mc.start_date >= $1 AND mc.start_date <= $2
		ORDER BY mc.start_date
	`

	rows, err := r.db.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list certificates: %w", err)
	}
	defer rows.Close()

	var certs []certificate.Certificate
	for rows.Next() {
		var c certificate.Certificate
		var status string
		err := rows.Scan(
			&c.ID, &c.StartDate, &c.EndDate, &c.Days, &c.CID, &status,
			&c.EmployeeOpsID, &c.EmployeeName, &c.Gender, &c.HireDate,
			&c.CompanyName, &c.SectorName, &c.ShiftName, &c.LeaderName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan certificate: %w", err)
		}
		c.Status = certificate.Status(status)
		certs = append(certs, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read certificate rows: %w", err)
	}
	return certs, nil
}
