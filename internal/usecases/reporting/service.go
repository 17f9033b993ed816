package reporting

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/vfg2006/customer-health-api/infrastructure/repository"
	"github.com/vfg2006/customer-health-api/internal/domain"
	"github.com/vfg2006/customer-health-api/internal/usecases/analyzing"
)

const defaultForecastPeriods = 6

var csvHeader = []string{
	"customer_id", "name", "email", "region", "customer_tier",
	"health_score", "churn_risk", "total_orders", "total_spent",
	"lifetime_value", "last_activity",
}

// Reporter expõe as leituras do dashboard: listagens, métricas agregadas e
// os artefatos derivados pelo motor de agregação.
type Reporter interface {
	ListCustomers(filters *domain.CustomerFilters) ([]*domain.Customer, error)
	GetCustomerDetail(customerID string) (*domain.CustomerDetail, error)
	DashboardMetrics() (*domain.DashboardMetrics, error)
	RevenueTrends() (*domain.RevenueTrendsResponse, error)
	RevenueForecast(periods int) ([]*domain.ForecastPoint, error)
	Insights() ([]*domain.Insight, error)
	Segments() ([]*domain.Segment, error)
	Cohorts() ([]*domain.CohortBucket, error)
	WriteCustomersCSV(w io.Writer) error
}

type Service struct {
	customerRepository repository.CustomerRepository
	orderRepository    repository.OrderRepository
	ticketRepository   repository.SupportTicketRepository
	feedbackRepository repository.FeedbackRepository
	analyzer           analyzing.Analyzer
}

func NewService(
	customerRepository repository.CustomerRepository,
	orderRepository repository.OrderRepository,
	ticketRepository repository.SupportTicketRepository,
	feedbackRepository repository.FeedbackRepository,
	analyzer analyzing.Analyzer,
) Reporter {
	return &Service{
		customerRepository: customerRepository,
		orderRepository:    orderRepository,
		ticketRepository:   ticketRepository,
		feedbackRepository: feedbackRepository,
		analyzer:           analyzer,
	}
}

func (s *Service) ListCustomers(filters *domain.CustomerFilters) ([]*domain.Customer, error) {
	return s.customerRepository.ListCustomers(filters)
}

// GetCustomerDetail agrega o cliente com seu histórico de pedidos, tickets e
// avaliações
func (s *Service) GetCustomerDetail(customerID string) (*domain.CustomerDetail, error) {
	customer, err := s.customerRepository.GetCustomerByID(customerID)
	if err != nil {
		return nil, err
	}

	if customer == nil {
		return nil, nil
	}

	orders, err := s.orderRepository.ListOrdersByCustomer(customerID)
	if err != nil {
		return nil, err
	}

	tickets, err := s.ticketRepository.ListTicketsByCustomer(customerID)
	if err != nil {
		return nil, err
	}

	feedback, err := s.feedbackRepository.ListFeedbackByCustomer(customerID)
	if err != nil {
		return nil, err
	}

	return &domain.CustomerDetail{
		Customer:       customer,
		Orders:         orders,
		SupportTickets: tickets,
		Feedback:       feedback,
	}, nil
}

func (s *Service) DashboardMetrics() (*domain.DashboardMetrics, error) {
	return s.customerRepository.GetDashboardMetrics()
}

func (s *Service) RevenueTrends() (*domain.RevenueTrendsResponse, error) {
	trends, err := s.orderRepository.GetRevenueTrends()
	if err != nil {
		return nil, err
	}

	return &domain.RevenueTrendsResponse{Trends: trends}, nil
}

func (s *Service) RevenueForecast(periods int) ([]*domain.ForecastPoint, error) {
	if periods <= 0 {
		periods = defaultForecastPeriods
	}

	trends, err := s.orderRepository.GetRevenueTrends()
	if err != nil {
		return nil, err
	}

	return s.analyzer.DeriveRevenueForecast(trends, periods), nil
}

func (s *Service) Insights() ([]*domain.Insight, error) {
	metrics, err := s.customerRepository.GetDashboardMetrics()
	if err != nil {
		return nil, err
	}

	customers, err := s.customerRepository.ListAllCustomers()
	if err != nil {
		return nil, err
	}

	return s.analyzer.DeriveInsights(metrics, customers), nil
}

func (s *Service) Segments() ([]*domain.Segment, error) {
	customers, err := s.customerRepository.ListAllCustomers()
	if err != nil {
		return nil, err
	}

	return s.analyzer.DeriveSegmentation(customers), nil
}

func (s *Service) Cohorts() ([]*domain.CohortBucket, error) {
	customers, err := s.customerRepository.ListAllCustomers()
	if err != nil {
		return nil, err
	}

	return s.analyzer.DeriveCohorts(customers), nil
}

// WriteCustomersCSV escreve a base completa de clientes como CSV
func (s *Service) WriteCustomersCSV(w io.Writer) error {
	customers, err := s.customerRepository.ListAllCustomers()
	if err != nil {
		return err
	}

	writer := csv.NewWriter(w)

	if err := writer.Write(csvHeader); err != nil {
		return err
	}

	for _, customer := range customers {
		lastActivity := ""
		if customer.LastActivity != nil {
			lastActivity = customer.LastActivity.Format(time.DateOnly)
		}

		record := []string{
			customer.CustomerID,
			customer.Name,
			customer.Email,
			customer.Region,
			customer.CustomerTier,
			fmt.Sprintf("%.2f", customer.HealthScore),
			customer.ChurnRisk,
			strconv.Itoa(customer.TotalOrders),
			fmt.Sprintf("%.2f", customer.TotalSpent),
			fmt.Sprintf("%.2f", customer.LifetimeValue),
			lastActivity,
		}

		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
