package healthapi

import (
	"context"
	"errors"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/customer-health-api/infrastructure/integrator/healthapi/healthclient"
	"github.com/vfg2006/customer-health-api/internal/config"
	"github.com/vfg2006/customer-health-api/internal/domain"
	"github.com/vfg2006/customer-health-api/pkg/utils"
)

// ErrStaleSnapshot indica que um FetchDashboard mais novo substituiu este
// enquanto as leituras ainda estavam em andamento
var ErrStaleSnapshot = errors.New("dashboard snapshot superseded by a newer request")

// DashboardSnapshot reúne as quatro leituras independentes do dashboard,
// identificadas pelo token da requisição que as produziu.
type DashboardSnapshot struct {
	RequestToken string                      `json:"request_token"`
	Metrics      *domain.DashboardMetrics    `json:"metrics"`
	Customers    []*domain.Customer          `json:"customers"`
	Predictions  []*domain.ChurnPrediction   `json:"predictions"`
	Trends       []*domain.RevenueTrendPoint `json:"trends"`
}

type HealthAPIIntegrator struct {
	cfg    *config.Config
	Client healthclient.Client

	mu           sync.Mutex
	currentToken string
}

func New(cfg *config.Config, client healthclient.Client) *HealthAPIIntegrator {
	return &HealthAPIIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// FetchDashboard dispara as quatro leituras do dashboard em paralelo. Cada
// chamada recebe um token novo; se outra chamada começar antes desta
// terminar, o resultado antigo é descartado com ErrStaleSnapshot.
func (s *HealthAPIIntegrator) FetchDashboard(ctx context.Context, customerLimit int) (*DashboardSnapshot, error) {
	token, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.currentToken = token
	s.mu.Unlock()

	snapshot := &DashboardSnapshot{RequestToken: token}

	var (
		wg   sync.WaitGroup
		errs [4]error
	)

	wg.Add(4)

	go func() {
		defer wg.Done()
		snapshot.Metrics, errs[0] = s.Client.GetDashboardMetrics(ctx)
	}()

	go func() {
		defer wg.Done()
		snapshot.Customers, errs[1] = s.Client.ListCustomers(ctx, &domain.CustomerFilters{Limit: customerLimit})
	}()

	go func() {
		defer wg.Done()
		snapshot.Predictions, errs[2] = s.Client.GetChurnPredictions(ctx, 0)
	}()

	go func() {
		defer wg.Done()
		var trends *domain.RevenueTrendsResponse
		trends, errs[3] = s.Client.GetRevenueTrends(ctx)
		if trends != nil {
			snapshot.Trends = trends.Trends
		}
	}()

	wg.Wait()

	if stale := s.isStale(token); stale {
		logrus.WithField("request_token", token).Debug("healthapi: discarding stale dashboard snapshot")
		return nil, ErrStaleSnapshot
	}

	for _, err := range errs {
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"request_token": token,
				"error":         err.Error(),
			}).Error("healthapi: dashboard fetch failed")
			return nil, err
		}
	}

	return snapshot, nil
}

// Invalidate descarta o token corrente; fetches em andamento retornarão
// ErrStaleSnapshot ao concluir
func (s *HealthAPIIntegrator) Invalidate() {
	s.mu.Lock()
	s.currentToken = ""
	s.mu.Unlock()
}

func (s *HealthAPIIntegrator) isStale(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentToken != token
}
