package predicting

import (
	"time"

	"github.com/vfg2006/customer-health-api/infrastructure/repository"
	"github.com/vfg2006/customer-health-api/internal/domain"
	"github.com/vfg2006/customer-health-api/pkg/utils"
)

const defaultPredictionLimit = 10

// Predictor calcula risco de churn para os clientes mais vulneráveis
type Predictor interface {
	TopPredictions(limit int) ([]*domain.ChurnPrediction, error)
	BuildPrediction(customer *domain.Customer, now time.Time) *domain.ChurnPrediction
}

type Service struct {
	customerRepository repository.CustomerRepository
}

func NewService(customerRepository repository.CustomerRepository) Predictor {
	return &Service{
		customerRepository: customerRepository,
	}
}

// TopPredictions retorna previsões para os clientes de menor health score
func (s *Service) TopPredictions(limit int) ([]*domain.ChurnPrediction, error) {
	if limit <= 0 {
		limit = defaultPredictionLimit
	}

	customers, err := s.customerRepository.ListHighRiskCustomers(limit)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	predictions := make([]*domain.ChurnPrediction, 0, len(customers))
	for _, customer := range customers {
		predictions = append(predictions, s.BuildPrediction(customer, now))
	}

	return predictions, nil
}

// BuildPrediction monta os fatores de risco e as ações recomendadas do cliente
func (s *Service) BuildPrediction(customer *domain.Customer, now time.Time) *domain.ChurnPrediction {
	factors := make([]string, 0, 4)
	recommendations := make([]string, 0, 4)

	if customer.TotalOrders < 2 {
		factors = append(factors, "Low purchase frequency")
		recommendations = append(recommendations, "Send personalized product recommendations")
	}

	if customer.SupportTickets > 3 {
		factors = append(factors, "High support ticket volume")
		recommendations = append(recommendations, "Assign dedicated account manager")
	}

	if customer.AvgRating < 3 {
		factors = append(factors, "Low product satisfaction")
		recommendations = append(recommendations, "Offer product training or alternatives")
	}

	if customer.LastActivity != nil && now.Sub(*customer.LastActivity) > 90*24*time.Hour {
		factors = append(factors, "No recent purchases")
		recommendations = append(recommendations, "Send re-engagement campaign with discount")
	}

	return &domain.ChurnPrediction{
		CustomerID:         customer.CustomerID,
		Name:               customer.Name,
		ChurnProbability:   utils.RoundWithTwoDecimalPlace((100 - customer.HealthScore) / 100),
		KeyFactors:         factors,
		RecommendedActions: recommendations,
	}
}
