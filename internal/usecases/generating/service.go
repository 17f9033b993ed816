package generating

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/customer-health-api/infrastructure/repository"
	"github.com/vfg2006/customer-health-api/internal/config"
	"github.com/vfg2006/customer-health-api/internal/domain"
	"github.com/vfg2006/customer-health-api/internal/usecases/scoring"
	"github.com/vfg2006/customer-health-api/pkg/utils"
)

var (
	firstNames = []string{
		"Ana", "Bruno", "Carla", "Daniel", "Elena", "Felipe", "Grace", "Henry",
		"Isabela", "John", "Karen", "Lucas", "Maria", "Nathan", "Olivia", "Paulo",
		"Quinn", "Rafael", "Sofia", "Thomas",
	}
	lastNames = []string{
		"Almeida", "Brown", "Costa", "Davis", "Evans", "Ferreira", "Garcia",
		"Harris", "Ito", "Johnson", "Klein", "Lima", "Martins", "Nguyen",
		"Oliveira", "Pereira", "Rocha", "Silva", "Torres", "Wilson",
	}
	regions       = []string{"North", "South", "East", "West"}
	issueTypes    = []string{"Technical", "Billing", "General"}
	feedbackNotes = []string{
		"Great product, exactly what we needed.",
		"Delivery took longer than expected.",
		"Support was quick to resolve my issue.",
		"The quality dropped compared to last order.",
		"Would recommend to other teams.",
		"Pricing is fair for what is offered.",
	}
)

// Generator popula o banco com dados de demonstração
type Generator interface {
	Generate(numCustomers int) (int, error)
}

type Service struct {
	cfg                *config.SampleData
	customerRepository repository.CustomerRepository
	orderRepository    repository.OrderRepository
	ticketRepository   repository.SupportTicketRepository
	feedbackRepository repository.FeedbackRepository
	scorer             scoring.Scorer
	rnd                *rand.Rand
}

func NewService(
	cfg *config.SampleData,
	customerRepository repository.CustomerRepository,
	orderRepository repository.OrderRepository,
	ticketRepository repository.SupportTicketRepository,
	feedbackRepository repository.FeedbackRepository,
	scorer scoring.Scorer,
) Generator {
	return &Service{
		cfg:                cfg,
		customerRepository: customerRepository,
		orderRepository:    orderRepository,
		ticketRepository:   ticketRepository,
		feedbackRepository: feedbackRepository,
		scorer:             scorer,
		rnd:                rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Generate descarta os dados atuais e insere numCustomers clientes novos com
// pedidos, tickets e avaliações. Retorna quantos clientes foram criados.
func (s *Service) Generate(numCustomers int) (int, error) {
	if numCustomers <= 0 {
		numCustomers = s.cfg.DefaultCustomers
	}

	if err := s.wipe(); err != nil {
		return 0, err
	}

	now := time.Now()

	for i := 0; i < numCustomers; i++ {
		customer, orders, tickets, feedback := s.buildCustomer(now)

		if err := s.customerRepository.CreateCustomer(customer); err != nil {
			return i, err
		}

		for _, order := range orders {
			if err := s.orderRepository.CreateOrder(order); err != nil {
				return i, err
			}
		}

		for _, ticket := range tickets {
			if err := s.ticketRepository.CreateTicket(ticket); err != nil {
				return i, err
			}
		}

		for _, item := range feedback {
			if err := s.feedbackRepository.CreateFeedback(item); err != nil {
				return i, err
			}
		}
	}

	logrus.WithField("customers", numCustomers).Info("Sample data generated")

	return numCustomers, nil
}

func (s *Service) wipe() error {
	if err := s.feedbackRepository.DeleteAllFeedback(); err != nil {
		return err
	}

	if err := s.ticketRepository.DeleteAllTickets(); err != nil {
		return err
	}

	if err := s.orderRepository.DeleteAllOrders(); err != nil {
		return err
	}

	return s.customerRepository.DeleteAllCustomers()
}

func (s *Service) buildCustomer(now time.Time) (*domain.Customer, []*domain.Order, []*domain.SupportTicket, []*domain.Feedback) {
	customerID := uuid.NewString()
	registration := now.AddDate(-2, 0, 0).Add(time.Duration(s.rnd.Int63n(int64(2 * 365 * 24 * time.Hour))))
	firstName := firstNames[s.rnd.Intn(len(firstNames))]
	lastName := lastNames[s.rnd.Intn(len(lastNames))]

	customer := &domain.Customer{
		CustomerID:       customerID,
		Name:             firstName + " " + lastName,
		Email:            fmt.Sprintf("%s.%s%d@example.com", strings.ToLower(firstName), strings.ToLower(lastName), s.rnd.Intn(1000)),
		Phone:            fmt.Sprintf("+1-555-%04d", s.rnd.Intn(10000)),
		Region:           regions[s.rnd.Intn(len(regions))],
		RegistrationDate: registration,
		CustomerTier:     s.pickTier(),
	}

	orders := s.buildOrders(customerID, registration, now)

	var lastOrderDate *time.Time
	for _, order := range orders {
		if lastOrderDate == nil || order.OrderDate.After(*lastOrderDate) {
			orderDate := order.OrderDate
			lastOrderDate = &orderDate
		}

		if order.Status == domain.OrderCompleted {
			customer.TotalOrders++
			customer.TotalSpent += order.TotalAmount
		}
	}
	customer.TotalSpent = utils.RoundWithTwoDecimalPlace(customer.TotalSpent)
	customer.LastActivity = lastOrderDate

	tickets := s.buildTickets(customerID, registration, now)
	customer.SupportTickets = len(tickets)

	feedback := s.buildFeedback(customerID, registration, now)
	if len(feedback) > 0 {
		var sum int
		for _, item := range feedback {
			sum += item.Rating
		}
		customer.AvgRating = utils.RoundWithTwoDecimalPlace(float64(sum) / float64(len(feedback)))
	}

	result := s.scorer.Score(scoring.Input{
		LastOrderDate:  customer.LastActivity,
		TotalOrders:    customer.TotalOrders,
		TotalSpent:     customer.TotalSpent,
		SupportTickets: customer.SupportTickets,
		AvgRating:      customer.AvgRating,
	}, now)

	customer.HealthScore = result.HealthScore
	customer.ChurnRisk = result.ChurnRisk
	customer.LifetimeValue = result.LifetimeValue

	return customer, orders, tickets, feedback
}

func (s *Service) buildOrders(customerID string, registration, now time.Time) []*domain.Order {
	numOrders := s.poisson(5)
	orders := make([]*domain.Order, 0, numOrders)

	for i := 0; i < numOrders; i++ {
		amount := math.Exp(s.rnd.NormFloat64() + 4)

		orders = append(orders, &domain.Order{
			OrderID:     uuid.NewString(),
			CustomerID:  customerID,
			OrderDate:   s.dateBetween(registration, now),
			TotalAmount: utils.RoundWithTwoDecimalPlace(amount),
			ItemsCount:  1 + s.rnd.Intn(9),
			Status:      s.pickOrderStatus(),
		})
	}

	return orders
}

func (s *Service) buildTickets(customerID string, registration, now time.Time) []*domain.SupportTicket {
	numTickets := s.poisson(1)
	tickets := make([]*domain.SupportTicket, 0, numTickets)

	for i := 0; i < numTickets; i++ {
		ticket := &domain.SupportTicket{
			TicketID:    uuid.NewString(),
			CustomerID:  customerID,
			CreatedDate: s.dateBetween(registration, now),
			IssueType:   issueTypes[s.rnd.Intn(len(issueTypes))],
			Priority:    s.pickWeighted([]string{"Low", "Medium", "High"}, []float64{0.5, 0.3, 0.2}),
			Status:      s.pickWeighted([]string{"Open", "In Progress", "Resolved"}, []float64{0.1, 0.2, 0.7}),
		}

		if s.rnd.Float64() > 0.3 {
			hours := 1 + s.rnd.Intn(71)
			ticket.ResolutionTime = &hours
		}

		tickets = append(tickets, ticket)
	}

	return tickets
}

func (s *Service) buildFeedback(customerID string, registration, now time.Time) []*domain.Feedback {
	numFeedback := s.poisson(2)
	feedback := make([]*domain.Feedback, 0, numFeedback)

	for i := 0; i < numFeedback; i++ {
		feedback = append(feedback, &domain.Feedback{
			FeedbackID: uuid.NewString(),
			CustomerID: customerID,
			Rating:     1 + s.rnd.Intn(5),
			Comment:    feedbackNotes[s.rnd.Intn(len(feedbackNotes))],
			Date:       s.dateBetween(registration, now),
			ProductID:  uuid.NewString(),
		})
	}

	return feedback
}

func (s *Service) pickTier() string {
	return s.pickWeighted(
		[]string{domain.TierBronze, domain.TierSilver, domain.TierGold, domain.TierPlatinum},
		[]float64{0.4, 0.3, 0.2, 0.1},
	)
}

func (s *Service) pickOrderStatus() string {
	return s.pickWeighted(
		[]string{domain.OrderCompleted, domain.OrderCancelled, domain.OrderRefunded},
		[]float64{0.85, 0.10, 0.05},
	)
}

func (s *Service) pickWeighted(values []string, weights []float64) string {
	roll := s.rnd.Float64()

	var cumulative float64
	for i, weight := range weights {
		cumulative += weight
		if roll < cumulative {
			return values[i]
		}
	}

	return values[len(values)-1]
}

// poisson usa o método multiplicativo de Knuth, suficiente para médias baixas
func (s *Service) poisson(mean float64) int {
	limit := math.Exp(-mean)
	product := s.rnd.Float64()

	var count int
	for product > limit {
		count++
		product *= s.rnd.Float64()
	}

	return count
}

func (s *Service) dateBetween(start, end time.Time) time.Time {
	if !end.After(start) {
		return start
	}

	return start.Add(time.Duration(s.rnd.Int63n(int64(end.Sub(start)))))
}
