package attendance

import (
	"context"
	"time"
)

// Repository reads attendance projections. The analytics core never writes.
type Repository interface {
	// ListByPeriod returns records dated inside [start, end] with the
	// absence type joined. shiftCode narrows to one shift; empty or "ALL"
	// means every shift.
	ListByPeriod(ctx context.Context, start, end time.Time, shiftCode string) ([]Record, error)
}
