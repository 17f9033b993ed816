package healthclient_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/customer-health-api/infrastructure/integrator/healthapi/healthclient"
	"github.com/vfg2006/customer-health-api/internal/config"
	"github.com/vfg2006/customer-health-api/internal/domain"
)

func newTestClient(baseURL string, timeoutSeconds int) healthclient.Client {
	return healthclient.NewClient(&config.HealthAPI{
		BaseURL:        baseURL,
		AccessToken:    "test-token",
		TimeoutSeconds: timeoutSeconds,
	})
}

func TestGetDashboardMetrics(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/dashboard/metrics", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"total_customers": 120,
			"high_risk_customers": 12,
			"medium_risk_customers": 30,
			"low_risk_customers": 78,
			"total_revenue": 54000.5,
			"avg_lifetime_value": 830.25,
			"churn_rate": 10.0
		}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, 5)

	metrics, err := client.GetDashboardMetrics(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 120, metrics.TotalCustomers)
	assert.Equal(t, 12, metrics.HighRiskCustomers)
	assert.InDelta(t, 54000.5, metrics.TotalRevenue, 0.001)
	assert.InDelta(t, 10.0, metrics.ChurnRate, 0.001)
}

func TestListCustomersSendsFilters(t *testing.T) {
	risk := "High"
	tier := "Gold"

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		assert.Equal(t, "50", query.Get("limit"))
		assert.Equal(t, "High", query.Get("churn_risk"))
		assert.Equal(t, "Gold", query.Get("customer_tier"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"customer_id": "cus-1", "name": "Acme Corp", "health_score": 35.5}]`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, 5)

	customers, err := client.ListCustomers(context.Background(), &domain.CustomerFilters{
		Limit:        50,
		ChurnRisk:    &risk,
		CustomerTier: &tier,
	})
	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, "cus-1", customers[0].CustomerID)
	assert.InDelta(t, 35.5, customers[0].HealthScore, 0.001)
}

func TestServerErrorCarriesStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(server.URL, 5)

	_, err := client.GetRevenueTrends(context.Background())
	require.Error(t, err)

	var serverErr *healthclient.ServerError
	require.ErrorAs(t, err, &serverErr)
	assert.Equal(t, http.StatusInternalServerError, serverErr.Status)
}

func TestNetworkErrorWhenUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // derruba o servidor antes da chamada

	client := newTestClient(server.URL, 5)

	_, err := client.GetDashboardMetrics(context.Background())
	require.Error(t, err)

	var networkErr *healthclient.NetworkError
	assert.ErrorAs(t, err, &networkErr)
}

func TestTimeoutError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	client := newTestClient(server.URL, 5)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := client.GetDashboardMetrics(ctx)
	require.Error(t, err)

	var timeoutErr *healthclient.TimeoutError
	assert.ErrorAs(t, err, &timeoutErr)
}

func TestExportCustomersStreamsCSV(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/export/customers", r.URL.Path)

		w.Header().Set("Content-Type", "text/csv")
		w.Write([]byte("customer_id,name\ncus-1,Acme Corp\n"))
	}))
	defer server.Close()

	client := newTestClient(server.URL, 5)

	body, err := client.ExportCustomers(context.Background())
	require.NoError(t, err)
	defer body.Close()

	content, err := io.ReadAll(body)
	require.NoError(t, err)
	assert.Contains(t, string(content), "cus-1,Acme Corp")
}

func TestGenerateSampleData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/sample-data/generate", r.URL.Path)
		assert.Equal(t, "50", r.URL.Query().Get("num_customers"))

		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := newTestClient(server.URL, 5)

	err := client.GenerateSampleData(context.Background(), 50)
	assert.NoError(t, err)
}
