package healthclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

func (c *HealthClient) GenerateSampleData(ctx context.Context, numCustomers int) error {
	query := url.Values{}
	if numCustomers > 0 {
		query.Set("num_customers", strconv.Itoa(numCustomers))
	}

	resp, err := c.do(ctx, http.MethodPost, "/v1/sample-data/generate", query)
	if err != nil {
		return err
	}
	resp.Body.Close()

	return nil
}
