package generating_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/customer-health-api/infrastructure/repository/mocks"
	"github.com/vfg2006/customer-health-api/internal/config"
	"github.com/vfg2006/customer-health-api/internal/domain"
	"github.com/vfg2006/customer-health-api/internal/usecases/generating"
	"github.com/vfg2006/customer-health-api/internal/usecases/scoring"
	"go.uber.org/mock/gomock"
)

func newServiceWithMocks(t *testing.T) (generating.Generator, *mocks.MockCustomerRepository, *mocks.MockOrderRepository, *mocks.MockSupportTicketRepository, *mocks.MockFeedbackRepository) {
	ctrl := gomock.NewController(t)

	customerRepository := mocks.NewMockCustomerRepository(ctrl)
	orderRepository := mocks.NewMockOrderRepository(ctrl)
	ticketRepository := mocks.NewMockSupportTicketRepository(ctrl)
	feedbackRepository := mocks.NewMockFeedbackRepository(ctrl)

	service := generating.NewService(
		&config.SampleData{DefaultCustomers: 7},
		customerRepository,
		orderRepository,
		ticketRepository,
		feedbackRepository,
		scoring.NewService(),
	)

	return service, customerRepository, orderRepository, ticketRepository, feedbackRepository
}

func expectWipe(customerRepository *mocks.MockCustomerRepository, orderRepository *mocks.MockOrderRepository, ticketRepository *mocks.MockSupportTicketRepository, feedbackRepository *mocks.MockFeedbackRepository) {
	feedbackRepository.EXPECT().DeleteAllFeedback().Return(nil)
	ticketRepository.EXPECT().DeleteAllTickets().Return(nil)
	orderRepository.EXPECT().DeleteAllOrders().Return(nil)
	customerRepository.EXPECT().DeleteAllCustomers().Return(nil)
}

func TestGenerate(t *testing.T) {
	service, customerRepository, orderRepository, ticketRepository, feedbackRepository := newServiceWithMocks(t)

	expectWipe(customerRepository, orderRepository, ticketRepository, feedbackRepository)

	created := make([]*domain.Customer, 0, 3)
	customerRepository.EXPECT().
		CreateCustomer(gomock.Any()).
		DoAndReturn(func(customer *domain.Customer) error {
			created = append(created, customer)
			return nil
		}).
		Times(3)

	orderRepository.EXPECT().CreateOrder(gomock.Any()).Return(nil).AnyTimes()
	ticketRepository.EXPECT().CreateTicket(gomock.Any()).Return(nil).AnyTimes()
	feedbackRepository.EXPECT().CreateFeedback(gomock.Any()).Return(nil).AnyTimes()

	count, err := service.Generate(3)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
	require.Len(t, created, 3)

	validTiers := []string{domain.TierBronze, domain.TierSilver, domain.TierGold, domain.TierPlatinum}
	validRisks := []string{domain.RiskLow, domain.RiskMedium, domain.RiskHigh}
	validRegions := []string{"North", "South", "East", "West"}

	for _, customer := range created {
		assert.NotEmpty(t, customer.CustomerID)
		assert.NotEmpty(t, customer.Name)
		assert.Contains(t, customer.Email, "@example.com")
		assert.Contains(t, validTiers, customer.CustomerTier)
		assert.Contains(t, validRisks, customer.ChurnRisk)
		assert.Contains(t, validRegions, customer.Region)
		assert.GreaterOrEqual(t, customer.HealthScore, 0.0)
		assert.LessOrEqual(t, customer.HealthScore, 100.0)
		assert.GreaterOrEqual(t, customer.LifetimeValue, customer.TotalSpent)
	}
}

func TestGenerateUsesDefaultWhenCountMissing(t *testing.T) {
	service, customerRepository, orderRepository, ticketRepository, feedbackRepository := newServiceWithMocks(t)

	expectWipe(customerRepository, orderRepository, ticketRepository, feedbackRepository)

	customerRepository.EXPECT().CreateCustomer(gomock.Any()).Return(nil).Times(7)
	orderRepository.EXPECT().CreateOrder(gomock.Any()).Return(nil).AnyTimes()
	ticketRepository.EXPECT().CreateTicket(gomock.Any()).Return(nil).AnyTimes()
	feedbackRepository.EXPECT().CreateFeedback(gomock.Any()).Return(nil).AnyTimes()

	count, err := service.Generate(0)
	require.NoError(t, err)
	assert.Equal(t, 7, count)
}

func TestGenerateStopsWhenWipeFails(t *testing.T) {
	service, _, _, _, feedbackRepository := newServiceWithMocks(t)

	feedbackRepository.EXPECT().DeleteAllFeedback().Return(assert.AnError)

	count, err := service.Generate(3)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Zero(t, count)
}
