package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/customer-health-api/infrastructure/repository/mocks"
	"github.com/vfg2006/customer-health-api/internal/domain"
	"github.com/vfg2006/customer-health-api/internal/usecases/scoring"
	"go.uber.org/mock/gomock"
)

func newSyncServiceWithMocks(ctrl *gomock.Controller) (*HealthScoreSyncService, *mocks.MockCustomerRepository, *mocks.MockOrderRepository, *mocks.MockSupportTicketRepository, *mocks.MockFeedbackRepository) {
	customerRepo := mocks.NewMockCustomerRepository(ctrl)
	orderRepo := mocks.NewMockOrderRepository(ctrl)
	ticketRepo := mocks.NewMockSupportTicketRepository(ctrl)
	feedbackRepo := mocks.NewMockFeedbackRepository(ctrl)

	service := &HealthScoreSyncService{
		customerRepo: customerRepo,
		orderRepo:    orderRepo,
		ticketRepo:   ticketRepo,
		feedbackRepo: feedbackRepo,
		scorer:       scoring.NewService(),
	}

	return service, customerRepo, orderRepo, ticketRepo, feedbackRepo
}

func TestRecomputeCustomer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, customerRepo, orderRepo, ticketRepo, feedbackRepo := newSyncServiceWithMocks(ctrl)

	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	recentOrder := now.AddDate(0, 0, -5)
	olderOrder := now.AddDate(0, 0, -40)

	customer := &domain.Customer{CustomerID: "cus-1", Name: "Acme Corp"}

	orderRepo.EXPECT().ListOrdersByCustomer("cus-1").Return([]*domain.Order{
		{OrderDate: olderOrder, TotalAmount: 500, Status: domain.OrderCompleted},
		{OrderDate: recentOrder, TotalAmount: 300, Status: domain.OrderCompleted},
		{OrderDate: recentOrder, TotalAmount: 900, Status: domain.OrderCancelled}, // não conta
	}, nil)

	ticketRepo.EXPECT().ListTicketsByCustomer("cus-1").Return([]*domain.SupportTicket{
		{TicketID: "tic-1"},
	}, nil)

	feedbackRepo.EXPECT().ListFeedbackByCustomer("cus-1").Return([]*domain.Feedback{
		{Rating: 4},
		{Rating: 5},
	}, nil)

	// recência 25 (5 dias) + frequência 4 (2 pedidos) + monetário 8 (800/100)
	// + suporte 9 (1 ticket) + avaliação 9 (média 4.5 x 2) = 55
	customerRepo.EXPECT().UpdateCustomerHealth("cus-1", 55.0, domain.RiskMedium, 1240.0).Return(nil)

	err := service.recomputeCustomer(customer, now)
	assert.NoError(t, err)
}

func TestRecomputeCustomerWithoutHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, customerRepo, orderRepo, ticketRepo, feedbackRepo := newSyncServiceWithMocks(ctrl)

	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	customer := &domain.Customer{CustomerID: "cus-2"}

	orderRepo.EXPECT().ListOrdersByCustomer("cus-2").Return([]*domain.Order{}, nil)
	ticketRepo.EXPECT().ListTicketsByCustomer("cus-2").Return([]*domain.SupportTicket{}, nil)
	feedbackRepo.EXPECT().ListFeedbackByCustomer("cus-2").Return([]*domain.Feedback{}, nil)

	// Sem pedidos o fator de recência assume 365 dias: só resta o fator de
	// suporte (10 pontos)
	customerRepo.EXPECT().UpdateCustomerHealth("cus-2", 10.0, domain.RiskHigh, 0.0).Return(nil)

	err := service.recomputeCustomer(customer, now)
	assert.NoError(t, err)
}

func TestSyncAllHealthScores(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, customerRepo, orderRepo, ticketRepo, feedbackRepo := newSyncServiceWithMocks(ctrl)

	customers := []*domain.Customer{
		{CustomerID: "cus-1"},
		{CustomerID: "cus-2"},
	}

	customerRepo.EXPECT().ListAllCustomers().Return(customers, nil)

	for _, customer := range customers {
		orderRepo.EXPECT().ListOrdersByCustomer(customer.CustomerID).Return([]*domain.Order{}, nil)
		ticketRepo.EXPECT().ListTicketsByCustomer(customer.CustomerID).Return([]*domain.SupportTicket{}, nil)
		feedbackRepo.EXPECT().ListFeedbackByCustomer(customer.CustomerID).Return([]*domain.Feedback{}, nil)
		customerRepo.EXPECT().UpdateCustomerHealth(customer.CustomerID, gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	}

	service.syncAllHealthScores()

	assert.False(t, service.lastSyncStartedAt.IsZero())
	assert.False(t, service.lastSyncCompletedAt.IsZero())
}

func TestGetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, _, _, _ := newSyncServiceWithMocks(ctrl)
	service.config = HealthScoreSyncConfig{
		CronSchedule: "0 3 * * *",
		SyncEnabled:  true,
	}

	status := service.GetStatus()

	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, "0 3 * * *", status["sync_cron"])
}
