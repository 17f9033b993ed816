package reporting_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/customer-health-api/infrastructure/repository/mocks"
	"github.com/vfg2006/customer-health-api/internal/domain"
	"github.com/vfg2006/customer-health-api/internal/usecases/analyzing"
	"github.com/vfg2006/customer-health-api/internal/usecases/reporting"
	"go.uber.org/mock/gomock"
)

func newReporterWithMocks(t *testing.T) (reporting.Reporter, *mocks.MockCustomerRepository, *mocks.MockOrderRepository, *mocks.MockSupportTicketRepository, *mocks.MockFeedbackRepository) {
	ctrl := gomock.NewController(t)

	customerRepository := mocks.NewMockCustomerRepository(ctrl)
	orderRepository := mocks.NewMockOrderRepository(ctrl)
	ticketRepository := mocks.NewMockSupportTicketRepository(ctrl)
	feedbackRepository := mocks.NewMockFeedbackRepository(ctrl)

	reporter := reporting.NewService(
		customerRepository,
		orderRepository,
		ticketRepository,
		feedbackRepository,
		analyzing.NewService(),
	)

	return reporter, customerRepository, orderRepository, ticketRepository, feedbackRepository
}

func TestGetCustomerDetail(t *testing.T) {
	reporter, customerRepository, orderRepository, ticketRepository, feedbackRepository := newReporterWithMocks(t)

	customer := &domain.Customer{CustomerID: "cus-1", Name: "Acme Corp"}

	customerRepository.EXPECT().GetCustomerByID("cus-1").Return(customer, nil)
	orderRepository.EXPECT().ListOrdersByCustomer("cus-1").Return([]*domain.Order{{OrderID: "ord-1"}}, nil)
	ticketRepository.EXPECT().ListTicketsByCustomer("cus-1").Return([]*domain.SupportTicket{}, nil)
	feedbackRepository.EXPECT().ListFeedbackByCustomer("cus-1").Return([]*domain.Feedback{{FeedbackID: "fbk-1"}}, nil)

	detail, err := reporter.GetCustomerDetail("cus-1")
	require.NoError(t, err)
	require.NotNil(t, detail)

	assert.Equal(t, "Acme Corp", detail.Customer.Name)
	assert.Len(t, detail.Orders, 1)
	assert.Empty(t, detail.SupportTickets)
	assert.Len(t, detail.Feedback, 1)
}

func TestGetCustomerDetailNotFound(t *testing.T) {
	reporter, customerRepository, _, _, _ := newReporterWithMocks(t)

	customerRepository.EXPECT().GetCustomerByID("missing").Return(nil, nil)

	detail, err := reporter.GetCustomerDetail("missing")
	require.NoError(t, err)
	assert.Nil(t, detail)
}

func TestRevenueForecastDefaultsToSixPeriods(t *testing.T) {
	reporter, _, orderRepository, _, _ := newReporterWithMocks(t)

	orderRepository.EXPECT().GetRevenueTrends().Return([]*domain.RevenueTrendPoint{
		{Year: 2024, Month: 1, Revenue: 100},
		{Year: 2024, Month: 2, Revenue: 110},
	}, nil)

	forecast, err := reporter.RevenueForecast(0)
	require.NoError(t, err)

	// 2 pontos reais + 6 projetados
	require.Len(t, forecast, 8)
	assert.False(t, forecast[1].Projected)
	assert.True(t, forecast[2].Projected)
	assert.Equal(t, "Prediction 1", forecast[2].Period)
}

func TestInsightsCombinesMetricsAndCustomers(t *testing.T) {
	reporter, customerRepository, _, _, _ := newReporterWithMocks(t)

	metrics := &domain.DashboardMetrics{ChurnRate: 25}
	customers := []*domain.Customer{
		{CustomerID: "cus-1", Region: "North", HealthScore: 80, ChurnRisk: domain.RiskLow},
	}

	customerRepository.EXPECT().GetDashboardMetrics().Return(metrics, nil)
	customerRepository.EXPECT().ListAllCustomers().Return(customers, nil)

	insights, err := reporter.Insights()
	require.NoError(t, err)
	require.NotEmpty(t, insights)
	assert.Equal(t, domain.InsightAlert, insights[0].Kind)
}

func TestWriteCustomersCSV(t *testing.T) {
	reporter, customerRepository, _, _, _ := newReporterWithMocks(t)

	lastActivity := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

	customerRepository.EXPECT().ListAllCustomers().Return([]*domain.Customer{
		{
			CustomerID:    "cus-1",
			Name:          "Acme Corp",
			Email:         "acme@example.com",
			Region:        "North",
			CustomerTier:  domain.TierGold,
			HealthScore:   82.5,
			ChurnRisk:     domain.RiskLow,
			TotalOrders:   12,
			TotalSpent:    3400.5,
			LifetimeValue: 6205.91,
			LastActivity:  &lastActivity,
		},
	}, nil)

	var buf bytes.Buffer
	err := reporter.WriteCustomersCSV(&buf)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "customer_id,name,email,region,customer_tier")
	assert.Contains(t, output, "cus-1,Acme Corp,acme@example.com,North,Gold,82.50,Low,12,3400.50,6205.91,2024-05-10")
}
