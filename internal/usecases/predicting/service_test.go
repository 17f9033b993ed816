package predicting_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/customer-health-api/infrastructure/repository/mocks"
	"github.com/vfg2006/customer-health-api/internal/domain"
	"github.com/vfg2006/customer-health-api/internal/usecases/predicting"
	"go.uber.org/mock/gomock"
)

func TestBuildPrediction(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	recent := now.AddDate(0, 0, -10)
	stale := now.AddDate(0, 0, -120)

	tests := []struct {
		name                string
		customer            *domain.Customer
		expectedProbability float64
		expectedFactors     []string
		expectedActions     []string
	}{
		{
			name: "healthy customer has no risk factors",
			customer: &domain.Customer{
				CustomerID:   "cus-1",
				Name:         "Acme Corp",
				HealthScore:  88,
				TotalOrders:  12,
				AvgRating:    4.5,
				LastActivity: &recent,
			},
			expectedProbability: 0.12,
			expectedFactors:     []string{},
			expectedActions:     []string{},
		},
		{
			name: "every factor fires for an abandoned account",
			customer: &domain.Customer{
				CustomerID:     "cus-2",
				Name:           "Globex",
				HealthScore:    15,
				TotalOrders:    1,
				SupportTickets: 5,
				AvgRating:      2.1,
				LastActivity:   &stale,
			},
			expectedProbability: 0.85,
			expectedFactors: []string{
				"Low purchase frequency",
				"High support ticket volume",
				"Low product satisfaction",
				"No recent purchases",
			},
			expectedActions: []string{
				"Send personalized product recommendations",
				"Assign dedicated account manager",
				"Offer product training or alternatives",
				"Send re-engagement campaign with discount",
			},
		},
		{
			name: "no last activity skips the recency factor",
			customer: &domain.Customer{
				CustomerID:  "cus-3",
				Name:        "Initech",
				HealthScore: 50,
				TotalOrders: 1,
				AvgRating:   4.0,
			},
			expectedProbability: 0.5,
			expectedFactors:     []string{"Low purchase frequency"},
			expectedActions:     []string{"Send personalized product recommendations"},
		},
	}

	ctrl := gomock.NewController(t)
	service := predicting.NewService(mocks.NewMockCustomerRepository(ctrl))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prediction := service.BuildPrediction(tt.customer, now)

			assert.Equal(t, tt.customer.CustomerID, prediction.CustomerID)
			assert.Equal(t, tt.customer.Name, prediction.Name)
			assert.InDelta(t, tt.expectedProbability, prediction.ChurnProbability, 0.001)
			assert.Equal(t, tt.expectedFactors, prediction.KeyFactors)
			assert.Equal(t, tt.expectedActions, prediction.RecommendedActions)
		})
	}
}

func TestTopPredictions(t *testing.T) {
	ctrl := gomock.NewController(t)
	customerRepository := mocks.NewMockCustomerRepository(ctrl)
	service := predicting.NewService(customerRepository)

	customers := []*domain.Customer{
		{CustomerID: "cus-1", Name: "Globex", HealthScore: 20, TotalOrders: 1, AvgRating: 4.0},
		{CustomerID: "cus-2", Name: "Initech", HealthScore: 35, TotalOrders: 8, AvgRating: 4.2},
	}

	customerRepository.EXPECT().ListHighRiskCustomers(5).Return(customers, nil)

	predictions, err := service.TopPredictions(5)
	require.NoError(t, err)
	require.Len(t, predictions, 2)

	assert.Equal(t, "cus-1", predictions[0].CustomerID)
	assert.InDelta(t, 0.8, predictions[0].ChurnProbability, 0.001)
	assert.Contains(t, predictions[0].KeyFactors, "Low purchase frequency")

	assert.Equal(t, "cus-2", predictions[1].CustomerID)
	assert.InDelta(t, 0.65, predictions[1].ChurnProbability, 0.001)
	assert.Empty(t, predictions[1].KeyFactors)
}

func TestTopPredictionsDefaultLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	customerRepository := mocks.NewMockCustomerRepository(ctrl)
	service := predicting.NewService(customerRepository)

	customerRepository.EXPECT().ListHighRiskCustomers(10).Return([]*domain.Customer{}, nil)

	predictions, err := service.TopPredictions(0)
	require.NoError(t, err)
	assert.Empty(t, predictions)
}
