package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/customer-health-api/infrastructure/repository"
	"github.com/vfg2006/customer-health-api/internal/config"
	"github.com/vfg2006/customer-health-api/internal/domain"
	"github.com/vfg2006/customer-health-api/internal/usecases/scoring"
)

// HealthScoreSyncConfig representa a configuração do agendador de recálculo de health scores
type HealthScoreSyncConfig struct {
	CronSchedule        string
	RequestDelaySeconds int
	SyncEnabled         bool
}

// HealthScoreSyncService recalcula periodicamente o health score de todos os
// clientes a partir de pedidos, tickets e avaliações. Os scores gravados na
// geração de dados envelhecem: o fator de recência muda todo dia mesmo sem
// nenhum evento novo.
type HealthScoreSyncService struct {
	scheduler           *gocron.Scheduler
	config              HealthScoreSyncConfig
	customerRepo        repository.CustomerRepository
	orderRepo           repository.OrderRepository
	ticketRepo          repository.SupportTicketRepository
	feedbackRepo        repository.FeedbackRepository
	scorer              scoring.Scorer
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewHealthScoreSyncService cria uma nova instância do serviço de recálculo de health scores
func NewHealthScoreSyncService(
	customerRepo repository.CustomerRepository,
	orderRepo repository.OrderRepository,
	ticketRepo repository.SupportTicketRepository,
	feedbackRepo repository.FeedbackRepository,
	scorer scoring.Scorer,
	appConfig *config.Config,
) *HealthScoreSyncService {
	syncConfig := HealthScoreSyncConfig{
		CronSchedule:        appConfig.HealthScoreSync.CronSchedule,
		RequestDelaySeconds: appConfig.HealthScoreSync.RequestDelaySeconds,
		SyncEnabled:         appConfig.HealthScoreSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         syncConfig.CronSchedule,
		"request_delay_seconds": syncConfig.RequestDelaySeconds,
		"sync_enabled":          syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de health scores carregada")

	return &HealthScoreSyncService{
		scheduler:    scheduler,
		config:       syncConfig,
		customerRepo: customerRepo,
		orderRepo:    orderRepo,
		ticketRepo:   ticketRepo,
		feedbackRepo: feedbackRepo,
		scorer:       scorer,
		syncRunning:  false,
	}
}

// Start inicia o agendador
func (s *HealthScoreSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Recálculo de health scores desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de recálculo de health scores")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllHealthScores()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar recálculo de health scores: %w", err)
	}

	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de recálculo de health scores")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllHealthScores recalcula o score de todos os clientes da base
func (s *HealthScoreSyncService) syncAllHealthScores() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Recálculo de health scores já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando recálculo de health scores para todos os clientes")

	customers, err := s.customerRepo.ListAllCustomers()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar clientes para recálculo de health scores")
		return
	}

	if len(customers) == 0 {
		logrus.Info("Nenhum cliente encontrado para recálculo de health scores")
		return
	}

	var updated, failed int
	for _, customer := range customers {
		if err := s.recomputeCustomer(customer, startTime); err != nil {
			failed++
			logrus.WithFields(logrus.Fields{
				"customer_id": customer.CustomerID,
				"error":       err.Error(),
			}).Error("Erro ao recalcular health score do cliente")
		} else {
			updated++
		}

		if s.config.RequestDelaySeconds > 0 {
			time.Sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
		}
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration": duration.String(),
		"updated":  updated,
		"failed":   failed,
	}).Info("Recálculo de health scores concluído")

	s.lastSyncCompletedAt = time.Now()
}

// recomputeCustomer refaz os agregados do cliente a partir do histórico e
// grava o score resultante
func (s *HealthScoreSyncService) recomputeCustomer(customer *domain.Customer, now time.Time) error {
	orders, err := s.orderRepo.ListOrdersByCustomer(customer.CustomerID)
	if err != nil {
		return err
	}

	tickets, err := s.ticketRepo.ListTicketsByCustomer(customer.CustomerID)
	if err != nil {
		return err
	}

	feedback, err := s.feedbackRepo.ListFeedbackByCustomer(customer.CustomerID)
	if err != nil {
		return err
	}

	var (
		lastOrderDate *time.Time
		totalOrders   int
		totalSpent    float64
	)

	for _, order := range orders {
		if lastOrderDate == nil || order.OrderDate.After(*lastOrderDate) {
			orderDate := order.OrderDate
			lastOrderDate = &orderDate
		}

		if order.Status == domain.OrderCompleted {
			totalOrders++
			totalSpent += order.TotalAmount
		}
	}

	var avgRating float64
	if len(feedback) > 0 {
		var sum int
		for _, item := range feedback {
			sum += item.Rating
		}
		avgRating = float64(sum) / float64(len(feedback))
	}

	result := s.scorer.Score(scoring.Input{
		LastOrderDate:  lastOrderDate,
		TotalOrders:    totalOrders,
		TotalSpent:     totalSpent,
		SupportTickets: len(tickets),
		AvgRating:      avgRating,
	}, now)

	return s.customerRepo.UpdateCustomerHealth(
		customer.CustomerID,
		result.HealthScore,
		result.ChurnRisk,
		result.LifetimeValue,
	)
}

// TriggerManualSync inicia manualmente um recálculo de health scores
func (s *HealthScoreSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Recálculo de health scores já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando recálculo manual de health scores")
	go s.syncAllHealthScores()
}

// GetStatus retorna o status atual do agendador
func (s *HealthScoreSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_request_delay_s":   s.config.RequestDelaySeconds,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
