package analyzing

import (
	"github.com/vfg2006/customer-health-api/internal/domain"
)

// Analyzer define a interface do motor de agregação do dashboard. Todas as
// operações são puras e síncronas: recebem snapshots imutáveis já buscados
// e devolvem artefatos de apresentação recalculados do zero.
type Analyzer interface {
	// DeriveInsights avalia as regras de insight na ordem fixa e devolve os
	// cartões que dispararam
	DeriveInsights(metrics *domain.DashboardMetrics, customers []*domain.Customer) []*domain.Insight

	// DeriveSegmentation classifica a base nos seis segmentos fixos
	DeriveSegmentation(customers []*domain.Customer) []*domain.Segment

	// DeriveCohorts agrupa clientes pelo mês da última atividade
	DeriveCohorts(customers []*domain.Customer) []*domain.CohortBucket

	// DeriveRevenueForecast projeta a receita futura a partir da cauda da
	// série mensal
	DeriveRevenueForecast(series []*domain.RevenueTrendPoint, periods int) []*domain.ForecastPoint
}
