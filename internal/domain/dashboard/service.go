package dashboard

import "context"

// Service computes the admin dashboard payload for one request.
type Service interface {
	// GetAdminDashboard resolves the query period, fans out the reference
	// reads and folds them into one response.
	GetAdminDashboard(ctx context.Context, query AdminQuery) (*AdminResponse, error)
}
