package healthclient

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/vfg2006/customer-health-api/internal/domain"
)

func (c *HealthClient) ListCustomers(ctx context.Context, filters *domain.CustomerFilters) ([]*domain.Customer, error) {
	query := url.Values{}

	if filters != nil {
		if filters.Skip > 0 {
			query.Set("skip", strconv.Itoa(filters.Skip))
		}
		if filters.Limit > 0 {
			query.Set("limit", strconv.Itoa(filters.Limit))
		}
		if filters.ChurnRisk != nil {
			query.Set("churn_risk", *filters.ChurnRisk)
		}
		if filters.CustomerTier != nil {
			query.Set("customer_tier", *filters.CustomerTier)
		}
		if filters.Region != nil {
			query.Set("region", *filters.Region)
		}
	}

	customers := make([]*domain.Customer, 0)
	if err := c.getJSON(ctx, "/v1/customers", query, &customers); err != nil {
		return nil, err
	}

	return customers, nil
}

func (c *HealthClient) GetCustomerDetail(ctx context.Context, customerID string) (*domain.CustomerDetail, error) {
	detail := &domain.CustomerDetail{}
	if err := c.getJSON(ctx, "/v1/customers/"+url.PathEscape(customerID), nil, detail); err != nil {
		return nil, err
	}

	return detail, nil
}

// ExportCustomers retorna o stream CSV da base de clientes. O caller é
// responsável por fechar o reader.
func (c *HealthClient) ExportCustomers(ctx context.Context) (io.ReadCloser, error) {
	resp, err := c.do(ctx, http.MethodGet, "/v1/export/customers", nil)
	if err != nil {
		return nil, err
	}

	return resp.Body, nil
}
