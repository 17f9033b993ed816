package healthclient

import (
	"context"

	"github.com/vfg2006/customer-health-api/internal/domain"
)

func (c *HealthClient) GetDashboardMetrics(ctx context.Context) (*domain.DashboardMetrics, error) {
	metrics := &domain.DashboardMetrics{}
	if err := c.getJSON(ctx, "/v1/dashboard/metrics", nil, metrics); err != nil {
		return nil, err
	}

	return metrics, nil
}
