// AngelaMos | 2026
// repository.go

package admin

import (
	"context"
	"fmt"

	"github.com/host-adarshdhiman-me/host.dginfotech.back/internal/core"
)

type Repository interface {
	DashboardStats(ctx context.Context) (DashboardStats, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

// DashboardStats gathers the landing-page counters in a single round trip.
// New enquiries count both enquiry forms and quick contacts submitted today.
func (r *repository) DashboardStats(
	ctx context.Context,
) (DashboardStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM enquiries
				WHERE submitted_at::date = CURRENT_DATE)
			+ (SELECT COUNT(*) FROM quickcontact
				WHERE created_at::date = CURRENT_DATE) AS new_enquiries,
			(SELECT COUNT(*) FROM active_clients
				WHERE status = 'active') AS active_projects,
			(SELECT COUNT(*) FROM active_clients
				WHERE status = 'completed') AS completed_projects`

	var stats DashboardStats
	if err := r.db.GetContext(ctx, &stats, query); err != nil {
		return DashboardStats{}, fmt.Errorf("query dashboard stats: %w", err)
	}

	return stats, nil
}
