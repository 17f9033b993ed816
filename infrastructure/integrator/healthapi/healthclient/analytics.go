package healthclient

import (
	"context"
	"net/url"
	"strconv"

	"github.com/vfg2006/customer-health-api/internal/domain"
)

func (c *HealthClient) GetChurnPredictions(ctx context.Context, limit int) ([]*domain.ChurnPrediction, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	predictions := make([]*domain.ChurnPrediction, 0)
	if err := c.getJSON(ctx, "/v1/analytics/churn-predictions", query, &predictions); err != nil {
		return nil, err
	}

	return predictions, nil
}

func (c *HealthClient) GetRevenueTrends(ctx context.Context) (*domain.RevenueTrendsResponse, error) {
	trends := &domain.RevenueTrendsResponse{}
	if err := c.getJSON(ctx, "/v1/analytics/revenue-trends", nil, trends); err != nil {
		return nil, err
	}

	return trends, nil
}
