package healthclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/customer-health-api/internal/config"
	"github.com/vfg2006/customer-health-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Client é o cliente tipado de uma instância remota da API de customer
// health. Toda requisição usa a base URL e o timeout injetados via config.
type Client interface {
	GetDashboardMetrics(ctx context.Context) (*domain.DashboardMetrics, error)
	ListCustomers(ctx context.Context, filters *domain.CustomerFilters) ([]*domain.Customer, error)
	GetCustomerDetail(ctx context.Context, customerID string) (*domain.CustomerDetail, error)
	GetChurnPredictions(ctx context.Context, limit int) ([]*domain.ChurnPrediction, error)
	GetRevenueTrends(ctx context.Context) (*domain.RevenueTrendsResponse, error)
	ExportCustomers(ctx context.Context) (io.ReadCloser, error)
	GenerateSampleData(ctx context.Context, numCustomers int) error
}

type HealthClient struct {
	httpClient *http.Client
	cfg        *config.HealthAPI
}

func NewClient(cfg *config.HealthAPI) Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &HealthClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		cfg: cfg,
	}
}

// buildURL monta a URL do endpoint sempre a partir da base configurada
func (c *HealthClient) buildURL(endpointPath string, query url.Values) (string, error) {
	endpoint, err := url.Parse(c.cfg.BaseURL)
	if err != nil {
		return "", fmt.Errorf("erro ao analisar a URL base: %w", err)
	}

	endpoint.Path = path.Join(endpoint.Path, endpointPath)
	if query != nil {
		endpoint.RawQuery = query.Encode()
	}

	return endpoint.String(), nil
}

// do executa a requisição e traduz falhas para a taxonomia de erros do
// client: NetworkError, TimeoutError ou ServerError.
func (c *HealthClient) do(ctx context.Context, method, endpointPath string, query url.Values) (*http.Response, error) {
	requestURL, err := c.buildURL(endpointPath, query)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if c.cfg.AccessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.AccessToken)
	}

	started := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		classified := classifyTransportError(err)
		logrus.WithFields(logrus.Fields{
			"method": method,
			"path":   endpointPath,
			"error":  classified.Error(),
		}).Error("healthapi: request failed")
		return nil, classified
	}

	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		resp.Body.Close()

		logrus.WithFields(logrus.Fields{
			"method": method,
			"path":   endpointPath,
			"status": resp.StatusCode,
		}).Error("healthapi: server returned error status")

		return nil, &ServerError{Status: resp.StatusCode, Body: string(body)}
	}

	logrus.WithFields(logrus.Fields{
		"method":      method,
		"path":        endpointPath,
		"status":      resp.StatusCode,
		"duration_ms": time.Since(started).Milliseconds(),
	}).Debug("healthapi: request completed")

	return resp, nil
}

// getJSON executa um GET e decodifica o corpo em out
func (c *HealthClient) getJSON(ctx context.Context, endpointPath string, query url.Values, out any) error {
	resp, err := c.do(ctx, http.MethodGet, endpointPath, query)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return nil
}
